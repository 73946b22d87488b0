package screens

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const msgEmptyBill = "Please add at least one item to the bill."

// BillRow is one editable line of the bill form.
type BillRow struct {
	MenuItemID uint            `json:"menuItemId"`
	ItemName   string          `json:"itemName"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

type BillForm struct {
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
	Rows          []BillRow            `json:"rows"`
}

func newBillForm() *BillForm {
	return &BillForm{
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: entity.PaymentMethodCash,
		Rows:          []BillRow{},
	}
}

func (f *BillForm) lines() []services.BillLine {
	out := make([]services.BillLine, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, services.BillLine{MenuItemID: r.MenuItemID, Quantity: r.Quantity, UnitPrice: r.UnitPrice})
	}
	return out
}

// BillingScreen lists bills and builds new ones.
type BillingScreen struct {
	mu      sync.Mutex
	backend BillingBackend
	userID  uint
	taxRate decimal.Decimal
	stale   atomic.Bool

	bills     []entity.Bill
	available []entity.MenuItem
	form      *BillForm
}

func NewBillingScreen(backend BillingBackend, userID uint, taxRate decimal.Decimal) *BillingScreen {
	if taxRate.IsZero() {
		taxRate = services.DefaultTaxRate
	}
	s := &BillingScreen{backend: backend, userID: userID, taxRate: taxRate}
	s.stale.Store(true)
	return s
}

// Load fetches bills and sellable items together. A failure is logged and
// leaves both lists empty.
func (s *BillingScreen) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale.Store(false)

	var bills []entity.Bill
	var items []entity.MenuItem
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = s.backend.ListBills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.backend.ListAvailableItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("billing screen: load failed: %v", err)
		bills, items = nil, nil
	}
	s.bills, s.available = bills, items
}

func (s *BillingScreen) reloadBills(ctx context.Context) {
	bills, err := s.backend.ListBills(ctx)
	if err != nil {
		log.Printf("billing screen: reload bills: %v", err)
		bills = nil
	}
	s.bills = bills
}

func (s *BillingScreen) Invalidate() { s.stale.Store(true) }

func (s *BillingScreen) Refresh(ctx context.Context) {
	if !s.stale.Load() {
		return
	}
	s.Load(ctx)
}

// ----- Form -----

// OpenForm starts a new empty bill, replacing any open one.
func (s *BillingScreen) OpenForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = newBillForm()
}

// EditForm changes the header fields. Rows are edited through the row
// methods; whatever edit does to the rows it is given is discarded.
func (s *BillingScreen) EditForm(edit func(*BillForm)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return ErrNoForm
	}
	rows := s.form.Rows
	s.form.Rows = slices.Clone(rows)
	edit(s.form)
	s.form.Rows = rows
	return nil
}

// AddRow appends the first available item with quantity 1 at its menu price.
func (s *BillingScreen) AddRow() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return 0, ErrNoForm
	}
	if len(s.available) == 0 {
		return 0, ErrNoAvailableItems
	}
	it := s.available[0]
	s.form.Rows = append(s.form.Rows, BillRow{
		MenuItemID: it.ID,
		ItemName:   it.Name,
		Quantity:   1,
		UnitPrice:  it.Price,
	})
	return len(s.form.Rows) - 1, nil
}

// RowChange is a partial edit of one bill row. The item is applied before
// the quantity and price so an explicit price wins over the menu price.
type RowChange struct {
	MenuItemID *uint            `json:"menuItemId"`
	Quantity   *int             `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
}

// ChangeRow applies the whole change or, when any part is invalid, nothing.
func (s *BillingScreen) ChangeRow(row int, ch RowChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.row(row)
	if err != nil {
		return err
	}

	next := *r
	if ch.MenuItemID != nil {
		it, ok := s.findAvailable(*ch.MenuItemID)
		if !ok {
			return fmt.Errorf("menu item %d: %w", *ch.MenuItemID, services.ErrNotFound)
		}
		next.MenuItemID, next.ItemName, next.UnitPrice = it.ID, it.Name, it.Price
	}
	if ch.Quantity != nil {
		if *ch.Quantity < 0 {
			return fmt.Errorf("%w: quantity must be >= 0", services.ErrInvalidInput)
		}
		next.Quantity = *ch.Quantity
	}
	if ch.UnitPrice != nil {
		if ch.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: unit price must be >= 0", services.ErrInvalidInput)
		}
		next.UnitPrice = *ch.UnitPrice
	}
	*r = next
	return nil
}

// SelectItem switches the row to another item and takes that item's price.
func (s *BillingScreen) SelectItem(row int, itemID uint) error {
	return s.ChangeRow(row, RowChange{MenuItemID: &itemID})
}

func (s *BillingScreen) SetQuantity(row, qty int) error {
	return s.ChangeRow(row, RowChange{Quantity: &qty})
}

// SetUnitPrice overrides the row price; the menu price is not re-applied.
func (s *BillingScreen) SetUnitPrice(row int, price decimal.Decimal) error {
	return s.ChangeRow(row, RowChange{UnitPrice: &price})
}

func (s *BillingScreen) RemoveRow(row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.row(row); err != nil {
		return err
	}
	s.form.Rows = append(s.form.Rows[:row], s.form.Rows[row+1:]...)
	return nil
}

// Totals is computed from the current rows every time.
func (s *BillingScreen) Totals() services.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals()
}

func (s *BillingScreen) totals() services.Totals {
	if s.form == nil {
		return services.CalculateTotals(nil, s.taxRate)
	}
	return services.CalculateTotals(s.form.lines(), s.taxRate)
}

// Submit creates the bill. An empty bill is refused before the backend is
// called. On success the form closes and the bill list is reloaded.
func (s *BillingScreen) Submit(ctx context.Context, p Prompter) (*entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return nil, ErrNoForm
	}
	if len(s.form.Rows) == 0 {
		p.Alert(msgEmptyBill)
		return nil, services.ErrEmptyBill
	}

	draft := services.BillDraft{
		CustomerName:  s.form.CustomerName,
		CustomerPhone: s.form.CustomerPhone,
		PaymentStatus: s.form.PaymentStatus,
		PaymentMethod: s.form.PaymentMethod,
		Notes:         s.form.Notes,
		Lines:         s.form.lines(),
	}
	bill, err := s.backend.CreateBill(ctx, s.userID, draft)
	if err != nil {
		log.Printf("billing screen: create bill: %v", err)
		p.Alert(msgSaveFailed)
		return nil, err
	}
	s.form = nil
	s.reloadBills(ctx)
	return bill, nil
}

func (s *BillingScreen) CancelForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = nil
}

// ----- View -----

type BillingView struct {
	Bills     []entity.Bill     `json:"bills"`
	Available []entity.MenuItem `json:"availableItems"`
	Form      *BillForm         `json:"form,omitempty"`
	Totals    services.Totals   `json:"totals"`
}

func (s *BillingScreen) View() BillingView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := BillingView{
		Bills:     s.bills,
		Available: s.available,
		Totals:    s.totals(),
	}
	if v.Bills == nil {
		v.Bills = []entity.Bill{}
	}
	if v.Available == nil {
		v.Available = []entity.MenuItem{}
	}
	if s.form != nil {
		f := *s.form
		f.Rows = make([]BillRow, len(s.form.Rows))
		for i, r := range s.form.Rows {
			r.LineTotal = services.BillLine{Quantity: r.Quantity, UnitPrice: r.UnitPrice}.LineTotal()
			f.Rows[i] = r
		}
		v.Form = &f
	}
	return v
}

func (s *BillingScreen) row(i int) (*BillRow, error) {
	if s.form == nil {
		return nil, ErrNoForm
	}
	if i < 0 || i >= len(s.form.Rows) {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	return &s.form.Rows[i], nil
}

func (s *BillingScreen) findAvailable(id uint) (entity.MenuItem, bool) {
	for _, it := range s.available {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

// IsFormError reports errors caused by the form state rather than the store.
func IsFormError(err error) bool {
	return errors.Is(err, ErrNoForm) || errors.Is(err, ErrRowOutOfRange) || errors.Is(err, ErrNoAvailableItems)
}
