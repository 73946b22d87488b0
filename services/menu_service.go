// services/menu_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryDeletePolicy decides what happens to items of a deleted category.
type CategoryDeletePolicy string

const (
	// DeleteOrphan leaves items pointing at the deleted category.
	DeleteOrphan  CategoryDeletePolicy = "orphan"
	DeleteBlock   CategoryDeletePolicy = "block"
	DeleteCascade CategoryDeletePolicy = "cascade"
)

func ParseCategoryDeletePolicy(v string) (CategoryDeletePolicy, error) {
	switch p := CategoryDeletePolicy(strings.ToLower(strings.TrimSpace(v))); p {
	case "":
		return DeleteOrphan, nil
	case DeleteOrphan, DeleteBlock, DeleteCascade:
		return p, nil
	}
	return DeleteOrphan, fmt.Errorf("unknown category delete policy %q", v)
}

// ----- Forms -----

type CategoryForm struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

func NewCategoryForm() CategoryForm {
	return CategoryForm{IsActive: true}
}

func CategoryFormFrom(c entity.MenuCategory) CategoryForm {
	return CategoryForm{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
}

type ItemForm struct {
	ID              uint            `json:"id"`
	CategoryID      uint            `json:"categoryId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	ImageURL        string          `json:"imageUrl"`
	HSNCode         string          `json:"hsnCode"`
	GSTRate         decimal.Decimal `json:"gstRate"`
	PreparationTime int             `json:"preparationTime"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsAvailable     bool            `json:"isAvailable"`
	IsActive        bool            `json:"isActive"`
	DisplayOrder    int             `json:"displayOrder"`
}

func NewItemForm(categoryID uint) ItemForm {
	return ItemForm{CategoryID: categoryID, IsAvailable: true, IsActive: true}
}

func ItemFormFrom(it entity.MenuItem) ItemForm {
	return ItemForm{
		ID:              it.ID,
		CategoryID:      it.CategoryID,
		Name:            it.Name,
		Description:     it.Description,
		Price:           it.Price,
		CostPrice:       it.CostPrice,
		ImageURL:        it.ImageURL,
		HSNCode:         it.HSNCode,
		GSTRate:         it.GSTRate,
		PreparationTime: it.PreparationTime,
		IsVegetarian:    it.IsVegetarian,
		IsAvailable:     it.IsAvailable,
		IsActive:        it.IsActive,
		DisplayOrder:    it.DisplayOrder,
	}
}

var hundred = decimal.NewFromInt(100)

func (f *ItemForm) validate() error {
	f.Name = strings.TrimSpace(f.Name)
	switch {
	case f.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case f.CategoryID == 0:
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	case f.Price.IsNegative():
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	case f.CostPrice.IsNegative():
		return fmt.Errorf("%w: cost price must be >= 0", ErrInvalidInput)
	case f.GSTRate.IsNegative() || f.GSTRate.GreaterThan(hundred):
		return fmt.Errorf("%w: gst rate must be between 0 and 100", ErrInvalidInput)
	case f.PreparationTime < 0:
		return fmt.Errorf("%w: preparation time must be >= 0", ErrInvalidInput)
	}
	return nil
}

func (f ItemForm) fields() map[string]any {
	return map[string]any{
		"category_id":      f.CategoryID,
		"name":             f.Name,
		"description":      f.Description,
		"price":            f.Price.Round(2),
		"cost_price":       f.CostPrice.Round(2),
		"image_url":        strings.TrimSpace(f.ImageURL),
		"hsn_code":         strings.TrimSpace(f.HSNCode),
		"gst_rate":         f.GSTRate.Round(2),
		"preparation_time": f.PreparationTime,
		"is_vegetarian":    f.IsVegetarian,
		"is_available":     f.IsAvailable,
		"is_active":        f.IsActive,
		"display_order":    f.DisplayOrder,
	}
}

// ----- Service -----

type MenuService struct {
	DB           *gorm.DB
	CategoryRepo *repository.MenuCategoryRepository
	ItemRepo     *repository.MenuItemRepository
	DeletePolicy CategoryDeletePolicy
	Events       EventPublisher
}

func NewMenuService(
	db *gorm.DB,
	catRepo *repository.MenuCategoryRepository,
	itemRepo *repository.MenuItemRepository,
	policy CategoryDeletePolicy,
	events EventPublisher,
) *MenuService {
	if policy == "" {
		policy = DeleteOrphan
	}
	return &MenuService{DB: db, CategoryRepo: catRepo, ItemRepo: itemRepo, DeletePolicy: policy, Events: events}
}

func (s *MenuService) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	return s.CategoryRepo.List(ctx)
}

func (s *MenuService) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.ItemRepo.List(ctx)
}

func (s *MenuService) ListAvailableItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.ItemRepo.ListAvailable(ctx)
}

func (s *MenuService) GetItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	it, err := s.ItemRepo.FindByID(ctx, id)
	return it, notFound(err)
}

// SaveCategory inserts when form.ID is zero, otherwise updates by id.
func (s *MenuService) SaveCategory(ctx context.Context, userID uint, f CategoryForm) (*entity.MenuCategory, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if f.ID == 0 {
		cat := entity.MenuCategory{
			Name:         f.Name,
			Description:  strings.TrimSpace(f.Description),
			DisplayOrder: f.DisplayOrder,
			IsActive:     f.IsActive,
			CreatedBy:    userID,
		}
		if err := s.CategoryRepo.Create(ctx, &cat); err != nil {
			return nil, err
		}
		publish(ctx, s.Events, CollectionMenuCategories, ActionCreated, cat.ID, cat)
		return &cat, nil
	}

	err := s.CategoryRepo.Update(ctx, f.ID, map[string]any{
		"name":          f.Name,
		"description":   strings.TrimSpace(f.Description),
		"display_order": f.DisplayOrder,
		"is_active":     f.IsActive,
	})
	if err != nil {
		return nil, notFound(err)
	}
	cat, err := s.CategoryRepo.FindByID(ctx, f.ID)
	if err != nil {
		return nil, notFound(err)
	}
	publish(ctx, s.Events, CollectionMenuCategories, ActionUpdated, cat.ID, cat)
	return cat, nil
}

// SaveItem inserts when form.ID is zero, otherwise updates by id. The
// category must exist.
func (s *MenuService) SaveItem(ctx context.Context, userID uint, f ItemForm) (*entity.MenuItem, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	ok, err := s.CategoryRepo.Exists(ctx, f.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: category %d not found", ErrInvalidInput, f.CategoryID)
	}

	if f.ID == 0 {
		item := entity.MenuItem{
			CategoryID:      f.CategoryID,
			Name:            f.Name,
			Description:     f.Description,
			Price:           f.Price.Round(2),
			CostPrice:       f.CostPrice.Round(2),
			ImageURL:        strings.TrimSpace(f.ImageURL),
			HSNCode:         strings.TrimSpace(f.HSNCode),
			GSTRate:         f.GSTRate.Round(2),
			PreparationTime: f.PreparationTime,
			IsVegetarian:    f.IsVegetarian,
			IsAvailable:     f.IsAvailable,
			IsActive:        f.IsActive,
			DisplayOrder:    f.DisplayOrder,
			CreatedBy:       userID,
		}
		if err := s.ItemRepo.Create(ctx, &item); err != nil {
			return nil, err
		}
		publish(ctx, s.Events, CollectionMenuItems, ActionCreated, item.ID, item)
		return &item, nil
	}

	if err := s.ItemRepo.Update(ctx, f.ID, f.fields()); err != nil {
		return nil, notFound(err)
	}
	item, err := s.ItemRepo.FindByID(ctx, f.ID)
	if err != nil {
		return nil, notFound(err)
	}
	publish(ctx, s.Events, CollectionMenuItems, ActionUpdated, item.ID, item)
	return item, nil
}

// DeleteCategory removes the category according to the delete policy.
func (s *MenuService) DeleteCategory(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch s.DeletePolicy {
		case DeleteBlock:
			n, err := s.ItemRepo.CountByCategory(tx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: %d item(s)", ErrCategoryInUse, n)
			}
		case DeleteCascade:
			if err := s.ItemRepo.DeleteByCategory(tx, id); err != nil {
				return err
			}
		}
		return s.CategoryRepo.Delete(tx, id)
	})
	if err != nil {
		if errors.Is(err, ErrCategoryInUse) {
			return err
		}
		return notFound(err)
	}
	publish(ctx, s.Events, CollectionMenuCategories, ActionDeleted, id, nil)
	return nil
}

// DeleteItem removes a menu item. Bill items keep their snapshot.
func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.ItemRepo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	publish(ctx, s.Events, CollectionMenuItems, ActionDeleted, id, nil)
	return nil
}
