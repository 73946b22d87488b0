package repository

import (
	"context"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// List returns every item by display order.
func (r *MenuItemRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.WithContext(ctx).
		Order("display_order ASC").Order("id ASC").
		Find(&items).Error
	return items, err
}

// ListAvailable returns the items that can be sold, by name.
func (r *MenuItemRepository) ListAvailable(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("is_active = ? AND is_available = ?", true, true).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs loads the items keyed by id. Missing ids are simply absent.
func (r *MenuItemRepository) FindByIDs(tx *gorm.DB, ids []uint) (map[uint]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := tx.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]entity.MenuItem, len(items))
	for _, it := range items {
		out[it.ID] = it
	}
	return out, nil
}

func (r *MenuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// Update writes the given columns; zero values are written too.
func (r *MenuItemRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuItemRepository) CountByCategory(tx *gorm.DB, categoryID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *MenuItemRepository) DeleteByCategory(tx *gorm.DB, categoryID uint) error {
	return tx.Where("category_id = ?", categoryID).Delete(&entity.MenuItem{}).Error
}
