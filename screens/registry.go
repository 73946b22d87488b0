package screens

import (
	"context"
	"sync"

	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/shopspring/decimal"
)

// Registry keeps one menu screen and one billing screen per user. It also
// listens to change events so screens of other users reload on next use.
type Registry struct {
	mu      sync.Mutex
	menu    map[uint]*MenuScreen
	billing map[uint]*BillingScreen

	menuBackend    MenuBackend
	billingBackend BillingBackend
	taxRate        decimal.Decimal
}

func NewRegistry(menu MenuBackend, billing BillingBackend, taxRate decimal.Decimal) *Registry {
	return &Registry{
		menu:           map[uint]*MenuScreen{},
		billing:        map[uint]*BillingScreen{},
		menuBackend:    menu,
		billingBackend: billing,
		taxRate:        taxRate,
	}
}

// Menu returns the user's menu screen, loading it when needed.
func (r *Registry) Menu(ctx context.Context, userID uint) *MenuScreen {
	r.mu.Lock()
	s, ok := r.menu[userID]
	if !ok {
		s = NewMenuScreen(r.menuBackend, userID)
		r.menu[userID] = s
	}
	r.mu.Unlock()

	s.Refresh(ctx)
	return s
}

// Billing returns the user's billing screen, loading it when needed.
func (r *Registry) Billing(ctx context.Context, userID uint) *BillingScreen {
	r.mu.Lock()
	s, ok := r.billing[userID]
	if !ok {
		s = NewBillingScreen(r.billingBackend, userID, r.taxRate)
		r.billing[userID] = s
	}
	r.mu.Unlock()

	s.Refresh(ctx)
	return s
}

// Forget drops the user's screens and any open forms.
func (r *Registry) Forget(userID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.menu, userID)
	delete(r.billing, userID)
}

// Publish marks the screens that show the changed collection as stale.
func (r *Registry) Publish(_ context.Context, ev services.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch ev.Collection {
	case services.CollectionMenuCategories:
		for _, s := range r.menu {
			s.Invalidate()
		}
	case services.CollectionMenuItems:
		for _, s := range r.menu {
			s.Invalidate()
		}
		// sellable items feed the billing form
		for _, s := range r.billing {
			s.Invalidate()
		}
	case services.CollectionBills:
		for _, s := range r.billing {
			s.Invalidate()
		}
	}
	return nil
}
