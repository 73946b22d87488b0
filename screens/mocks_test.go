package screens

import (
	"context"
	"sync"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/stretchr/testify/mock"
)

type MockMenuBackend struct {
	mock.Mock
}

func (m *MockMenuBackend) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MenuCategory), args.Error(1)
}

func (m *MockMenuBackend) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MenuItem), args.Error(1)
}

func (m *MockMenuBackend) SaveCategory(ctx context.Context, userID uint, f services.CategoryForm) (*entity.MenuCategory, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MenuCategory), args.Error(1)
}

func (m *MockMenuBackend) SaveItem(ctx context.Context, userID uint, f services.ItemForm) (*entity.MenuItem, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MenuItem), args.Error(1)
}

func (m *MockMenuBackend) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuBackend) DeleteItem(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockBillingBackend struct {
	mock.Mock
}

func (m *MockBillingBackend) ListBills(ctx context.Context) ([]entity.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Bill), args.Error(1)
}

func (m *MockBillingBackend) ListAvailableItems(ctx context.Context) ([]entity.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MenuItem), args.Error(1)
}

func (m *MockBillingBackend) CreateBill(ctx context.Context, userID uint, d services.BillDraft) (*entity.Bill, error) {
	args := m.Called(ctx, userID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

// fakePrompter answers every confirmation with answer and records what it
// was asked and shown.
type fakePrompter struct {
	mu      sync.Mutex
	answer  bool
	asked   []string
	alerted []string
}

func (p *fakePrompter) Confirm(msg string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, msg)
	return p.answer
}

func (p *fakePrompter) Alert(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerted = append(p.alerted, msg)
}
