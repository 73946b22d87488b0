// Package screens holds the state of the two admin screens, menu catalog
// and billing, for one user at a time. Screens talk to the store only
// through the backend interfaces below.
package screens

import (
	"context"
	"errors"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/services"
)

var (
	ErrNotConfirmed     = errors.New("action not confirmed")
	ErrNoForm           = errors.New("no form is open")
	ErrNoAvailableItems = errors.New("no menu items available")
	ErrRowOutOfRange    = errors.New("bill row out of range")
)

// Prompter asks the user to confirm an action or shows a blocking alert.
type Prompter interface {
	Confirm(msg string) bool
	Alert(msg string)
}

type MenuBackend interface {
	ListCategories(ctx context.Context) ([]entity.MenuCategory, error)
	ListItems(ctx context.Context) ([]entity.MenuItem, error)
	SaveCategory(ctx context.Context, userID uint, f services.CategoryForm) (*entity.MenuCategory, error)
	SaveItem(ctx context.Context, userID uint, f services.ItemForm) (*entity.MenuItem, error)
	DeleteCategory(ctx context.Context, id uint) error
	DeleteItem(ctx context.Context, id uint) error
}

type BillingBackend interface {
	ListBills(ctx context.Context) ([]entity.Bill, error)
	ListAvailableItems(ctx context.Context) ([]entity.MenuItem, error)
	CreateBill(ctx context.Context, userID uint, d services.BillDraft) (*entity.Bill, error)
}

// Backend joins the two services into one value satisfying both interfaces.
type Backend struct {
	Menu    *services.MenuService
	Billing *services.BillingService
}

func (b Backend) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	return b.Menu.ListCategories(ctx)
}
func (b Backend) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return b.Menu.ListItems(ctx)
}
func (b Backend) ListAvailableItems(ctx context.Context) ([]entity.MenuItem, error) {
	return b.Menu.ListAvailableItems(ctx)
}
func (b Backend) SaveCategory(ctx context.Context, userID uint, f services.CategoryForm) (*entity.MenuCategory, error) {
	return b.Menu.SaveCategory(ctx, userID, f)
}
func (b Backend) SaveItem(ctx context.Context, userID uint, f services.ItemForm) (*entity.MenuItem, error) {
	return b.Menu.SaveItem(ctx, userID, f)
}
func (b Backend) DeleteCategory(ctx context.Context, id uint) error {
	return b.Menu.DeleteCategory(ctx, id)
}
func (b Backend) DeleteItem(ctx context.Context, id uint) error {
	return b.Menu.DeleteItem(ctx, id)
}
func (b Backend) ListBills(ctx context.Context) ([]entity.Bill, error) {
	return b.Billing.ListBills(ctx)
}
func (b Backend) CreateBill(ctx context.Context, userID uint, d services.BillDraft) (*entity.Bill, error) {
	return b.Billing.CreateBill(ctx, userID, d)
}
