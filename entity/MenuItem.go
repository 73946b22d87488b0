package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	CategoryID      uint            `gorm:"index;not null" json:"categoryId"`
	Name            string          `gorm:"size:160;not null" json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CostPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"costPrice"`
	ImageURL        string          `json:"imageUrl"`
	HSNCode         string          `gorm:"size:16" json:"hsnCode"`
	GSTRate         decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"gstRate"`
	PreparationTime int             `gorm:"not null;default:0" json:"preparationTime"` // minutes
	IsVegetarian    bool            `gorm:"not null" json:"isVegetarian"`
	IsAvailable     bool            `gorm:"not null" json:"isAvailable"`
	IsActive        bool            `gorm:"not null" json:"isActive"`
	DisplayOrder    int             `gorm:"index;not null;default:0" json:"displayOrder"`
	CreatedBy       uint            `json:"createdBy"`
}
