package repository

import (
	"context"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"gorm.io/gorm"
)

type MenuCategoryRepository struct {
	DB *gorm.DB
}

func NewMenuCategoryRepository(db *gorm.DB) *MenuCategoryRepository {
	return &MenuCategoryRepository{DB: db}
}

// List returns every category by display order.
func (r *MenuCategoryRepository) List(ctx context.Context) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.WithContext(ctx).
		Order("display_order ASC").Order("id ASC").
		Find(&cats).Error
	return cats, err
}

func (r *MenuCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.MenuCategory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *MenuCategoryRepository) Create(ctx context.Context, cat *entity.MenuCategory) error {
	return r.DB.WithContext(ctx).Create(cat).Error
}

// Update writes the given columns; zero values are written too.
func (r *MenuCategoryRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&entity.MenuCategory{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuCategoryRepository) Delete(tx *gorm.DB, id uint) error {
	res := tx.Delete(&entity.MenuCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
