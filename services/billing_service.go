package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillDraft is what the billing form submits.
type BillDraft struct {
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
	Lines         []BillLine           `json:"items"`
}

func (d *BillDraft) validate() error {
	if len(d.Lines) == 0 {
		return ErrEmptyBill
	}
	if d.PaymentStatus == "" {
		d.PaymentStatus = entity.PaymentStatusPaid
	}
	if d.PaymentMethod == "" {
		d.PaymentMethod = entity.PaymentMethodCash
	}
	if !d.PaymentStatus.Valid() {
		return fmt.Errorf("%w: payment status %q", ErrInvalidInput, d.PaymentStatus)
	}
	if !d.PaymentMethod.Valid() {
		return fmt.Errorf("%w: payment method %q", ErrInvalidInput, d.PaymentMethod)
	}
	d.Lines = slices.Clone(d.Lines)
	for i, l := range d.Lines {
		switch {
		case l.MenuItemID == 0:
			return fmt.Errorf("%w: item %d: menu item is required", ErrInvalidInput, i+1)
		case l.Quantity < 1:
			return fmt.Errorf("%w: item %d: quantity must be > 0", ErrInvalidInput, i+1)
		case l.UnitPrice.IsNegative():
			return fmt.Errorf("%w: item %d: unit price must be >= 0", ErrInvalidInput, i+1)
		}
		d.Lines[i].UnitPrice = l.UnitPrice.Round(2)
	}
	return nil
}

// billNumberAttempts bounds the search for a free bill number.
const billNumberAttempts = 100

type BillingService struct {
	DB       *gorm.DB
	Repo     *repository.BillRepository
	MenuRepo *repository.MenuItemRepository
	Events   EventPublisher
	TaxRate  decimal.Decimal
	Now      func() time.Time
}

func NewBillingService(
	db *gorm.DB,
	repo *repository.BillRepository,
	menuRepo *repository.MenuItemRepository,
	taxRate decimal.Decimal,
	events EventPublisher,
) *BillingService {
	if taxRate.IsZero() {
		taxRate = DefaultTaxRate
	}
	return &BillingService{
		DB:       db,
		Repo:     repo,
		MenuRepo: menuRepo,
		Events:   events,
		TaxRate:  taxRate,
		Now:      time.Now,
	}
}

// ----- List & Detail -----

func (s *BillingService) ListBills(ctx context.Context) ([]entity.Bill, error) {
	return s.Repo.List(ctx, 0, 0)
}

// ListBillsPage is ListBills with paging. limit <= 0 means no limit.
func (s *BillingService) ListBillsPage(ctx context.Context, limit, offset int) ([]entity.Bill, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *BillingService) GetBill(ctx context.Context, id uint) (*entity.Bill, error) {
	b, err := s.Repo.FindByID(ctx, id)
	return b, notFound(err)
}

// Preview computes totals without writing anything.
func (s *BillingService) Preview(lines []BillLine) Totals {
	return CalculateTotals(lines, s.TaxRate)
}

// ----- Create -----

// CreateBill writes the bill and its items in one transaction. Item names
// are copied from the menu at this moment.
func (s *BillingService) CreateBill(ctx context.Context, userID uint, d BillDraft) (*entity.Bill, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	now := s.Now()
	totals := CalculateTotals(d.Lines, s.TaxRate)
	bill := entity.Bill{
		BillDate:      now,
		CustomerName:  strings.TrimSpace(d.CustomerName),
		CustomerPhone: strings.TrimSpace(d.CustomerPhone),
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.Tax,
		TotalAmount:   totals.Total,
		PaymentStatus: d.PaymentStatus,
		PaymentMethod: d.PaymentMethod,
		Notes:         strings.TrimSpace(d.Notes),
		CreatedBy:     userID,
	}

	ids := make([]uint, 0, len(d.Lines))
	for _, l := range d.Lines {
		ids = append(ids, l.MenuItemID)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		menu, err := s.MenuRepo.FindByIDs(tx, ids)
		if err != nil {
			return err
		}
		for _, l := range d.Lines {
			if _, ok := menu[l.MenuItemID]; !ok {
				return fmt.Errorf("%w: menu item %d not found", ErrInvalidInput, l.MenuItemID)
			}
		}

		if bill.BillNumber, err = s.freeBillNumber(tx, now); err != nil {
			return err
		}
		if err := s.Repo.CreateBill(tx, &bill); err != nil {
			return err
		}
		for _, l := range d.Lines {
			bi := entity.BillItem{
				BillID:     bill.ID,
				MenuItemID: l.MenuItemID,
				ItemName:   menu[l.MenuItemID].Name,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				TotalPrice: l.LineTotal(),
			}
			if err := s.Repo.CreateBillItem(tx, &bi); err != nil {
				return err
			}
			bill.Items = append(bill.Items, bi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, CollectionBills, ActionCreated, bill.ID, bill)
	return &bill, nil
}

// freeBillNumber returns the number for t, moving t forward a millisecond at
// a time while the number is already used. The suffix repeats every 10^6 ms.
func (s *BillingService) freeBillNumber(tx *gorm.DB, t time.Time) (string, error) {
	for i := 0; i < billNumberAttempts; i++ {
		number := GenerateBillNumber(t)
		taken, err := s.Repo.BillNumberTaken(tx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
		t = t.Add(time.Millisecond)
	}
	return "", fmt.Errorf("no free bill number after %d attempts", billNumberAttempts)
}
