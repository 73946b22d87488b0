package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Bill struct {
	gorm.Model
	BillNumber    string          `gorm:"size:32;uniqueIndex;not null" json:"billNumber"`
	BillDate      time.Time       `gorm:"index;not null" json:"billDate"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"taxAmount"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	PaymentStatus PaymentStatus   `gorm:"size:16;not null;default:paid" json:"paymentStatus"`
	PaymentMethod PaymentMethod   `gorm:"size:16;not null;default:cash" json:"paymentMethod"`
	Notes         string          `json:"notes"`
	CreatedBy     uint            `json:"createdBy"`

	Items []BillItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
