package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name         string `gorm:"size:120;not null" json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `gorm:"index;not null;default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"not null" json:"isActive"`
	CreatedBy    uint   `json:"createdBy"`

	// not preloaded by the list endpoints
	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
