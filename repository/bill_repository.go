package repository

import (
	"context"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"gorm.io/gorm"
)

type BillRepository struct {
	DB *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{DB: db}
}

// ---------------- Bills ----------------

func (r *BillRepository) CreateBill(tx *gorm.DB, b *entity.Bill) error {
	// items are written one by one by CreateBillItem
	return tx.Omit("Items").Create(b).Error
}

// List returns bills newest first with their items. limit <= 0 returns
// every bill from offset on.
func (r *BillRepository) List(ctx context.Context, limit, offset int) ([]entity.Bill, error) {
	q := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("bill_date DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var bills []entity.Bill
	err := q.Find(&bills).Error
	return bills, err
}

// BillNumberTaken includes soft-deleted bills since the unique index does.
func (r *BillRepository) BillNumberTaken(tx *gorm.DB, number string) (bool, error) {
	var n int64
	err := tx.Model(&entity.Bill{}).Unscoped().Where("bill_number = ?", number).Count(&n).Error
	return n > 0, err
}

func (r *BillRepository) FindByID(ctx context.Context, id uint) (*entity.Bill, error) {
	var b entity.Bill
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ---------------- Bill Items ----------------

func (r *BillRepository) CreateBillItem(tx *gorm.DB, bi *entity.BillItem) error {
	return tx.Create(bi).Error
}
