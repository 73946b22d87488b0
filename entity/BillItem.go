package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillItem is a snapshot of the menu item at the time of sale. Later edits
// to the menu item are not reflected here.
type BillItem struct {
	gorm.Model
	BillID     uint            `gorm:"index;not null" json:"billId"`
	MenuItemID uint            `gorm:"index;not null" json:"menuItemId"`
	ItemName   string          `gorm:"not null" json:"itemName"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
}
