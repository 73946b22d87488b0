package services

import (
	"context"
	"sync"
	"testing"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. One connection keeps every
// query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Bill{}, &entity.BillItem{},
	))
	return db
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Publish(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

type fixture struct {
	db      *gorm.DB
	menu    *MenuService
	billing *BillingService
	events  *recorder
}

func newFixture(t *testing.T, policy CategoryDeletePolicy) *fixture {
	t.Helper()
	db := newTestDB(t)
	rec := &recorder{}
	itemRepo := repository.NewMenuItemRepository(db)
	return &fixture{
		db:      db,
		menu:    NewMenuService(db, repository.NewMenuCategoryRepository(db), itemRepo, policy, rec),
		billing: NewBillingService(db, repository.NewBillRepository(db), itemRepo, DefaultTaxRate, rec),
		events:  rec,
	}
}

func (f *fixture) category(t *testing.T, name string, order int) *entity.MenuCategory {
	t.Helper()
	form := NewCategoryForm()
	form.Name, form.DisplayOrder = name, order
	cat, err := f.menu.SaveCategory(context.Background(), 1, form)
	require.NoError(t, err)
	return cat
}

func (f *fixture) item(t *testing.T, catID uint, name, price string) *entity.MenuItem {
	t.Helper()
	form := NewItemForm(catID)
	form.Name, form.Price = name, dec(price)
	it, err := f.menu.SaveItem(context.Background(), 1, form)
	require.NoError(t, err)
	return it
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
