package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func loadedBilling(t *testing.T, bills []entity.Bill, items []entity.MenuItem) (*BillingScreen, *MockBillingBackend) {
	t.Helper()
	m := new(MockBillingBackend)
	m.On("ListBills", mock.Anything).Return(bills, nil).Once()
	m.On("ListAvailableItems", mock.Anything).Return(items, nil).Once()
	s := NewBillingScreen(m, 5, services.DefaultTaxRate)
	s.Load(context.Background())
	return s, m
}

func sellable() []entity.MenuItem {
	return []entity.MenuItem{menuItem(10, 1, "Margherita", "100.00"), menuItem(11, 1, "Garlic Bread", "50.00")}
}

func TestBillingScreen_SubmitEmptyMakesNoCall(t *testing.T) {
	s, m := loadedBilling(t, nil, sellable())
	p := &fakePrompter{}

	s.OpenForm()
	bill, err := s.Submit(context.Background(), p)

	assert.Nil(t, bill)
	assert.ErrorIs(t, err, services.ErrEmptyBill)
	assert.Equal(t, []string{msgEmptyBill}, p.alerted)
	m.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything, mock.Anything)
	assert.NotNil(t, s.View().Form, "form stays open")
}

func TestBillingScreen_AddRowDefaults(t *testing.T) {
	s, _ := loadedBilling(t, nil, sellable())

	_, err := s.AddRow()
	assert.ErrorIs(t, err, ErrNoForm)

	s.OpenForm()
	row, err := s.AddRow()
	require.NoError(t, err)
	assert.Equal(t, 0, row)

	f := s.View().Form
	require.Len(t, f.Rows, 1)
	assert.Equal(t, uint(10), f.Rows[0].MenuItemID)
	assert.Equal(t, "Margherita", f.Rows[0].ItemName)
	assert.Equal(t, 1, f.Rows[0].Quantity)
	assert.Equal(t, "100.00", f.Rows[0].UnitPrice.StringFixed(2))
	assert.Equal(t, entity.PaymentStatusPaid, f.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCash, f.PaymentMethod)
}

func TestBillingScreen_AddRowWithoutItems(t *testing.T) {
	s, _ := loadedBilling(t, nil, nil)
	s.OpenForm()
	_, err := s.AddRow()
	assert.ErrorIs(t, err, ErrNoAvailableItems)
}

func TestBillingScreen_PricesAndTotals(t *testing.T) {
	s, _ := loadedBilling(t, nil, sellable())
	s.OpenForm()
	r0, _ := s.AddRow()
	r1, _ := s.AddRow()

	require.NoError(t, s.SetQuantity(r0, 2))
	require.NoError(t, s.SelectItem(r1, 11))
	tot := s.Totals()
	assert.Equal(t, "250.00", tot.Subtotal.StringFixed(2))
	assert.Equal(t, "12.50", tot.Tax.StringFixed(2))
	assert.Equal(t, "262.50", tot.Total.StringFixed(2))

	// override sticks until another item is selected
	require.NoError(t, s.SetUnitPrice(r1, decimal.RequireFromString("40")))
	assert.Equal(t, "240.00", s.Totals().Subtotal.StringFixed(2))
	require.NoError(t, s.SelectItem(r1, 10))
	assert.Equal(t, "300.00", s.Totals().Subtotal.StringFixed(2))

	assert.ErrorIs(t, s.SetQuantity(r0, -1), services.ErrInvalidInput)
	assert.ErrorIs(t, s.SetUnitPrice(r0, decimal.NewFromInt(-5)), services.ErrInvalidInput)
	assert.ErrorIs(t, s.SelectItem(r0, 404), services.ErrNotFound)
	assert.ErrorIs(t, s.SetQuantity(9, 1), ErrRowOutOfRange)
	assert.True(t, IsFormError(s.RemoveRow(9)))

	require.NoError(t, s.RemoveRow(r0))
	f := s.View().Form
	require.Len(t, f.Rows, 1)
	assert.Equal(t, "100.00", f.Rows[0].LineTotal.StringFixed(2))
}

func TestBillingScreen_EditFormKeepsRows(t *testing.T) {
	s, _ := loadedBilling(t, nil, sellable())
	s.OpenForm()
	_, _ = s.AddRow()

	require.NoError(t, s.EditForm(func(f *BillForm) {
		f.CustomerName = "Ravi"
		f.PaymentMethod = entity.PaymentMethodUPI
		f.Rows = nil
	}))
	f := s.View().Form
	assert.Equal(t, "Ravi", f.CustomerName)
	assert.Equal(t, entity.PaymentMethodUPI, f.PaymentMethod)
	assert.Len(t, f.Rows, 1)
}

func TestBillingScreen_EditFormCannotTouchRowsInPlace(t *testing.T) {
	s, _ := loadedBilling(t, nil, sellable())
	s.OpenForm()
	_, _ = s.AddRow()

	require.NoError(t, s.EditForm(func(f *BillForm) {
		f.Rows[0].Quantity = -5
		f.Rows[0].ItemName = "X"
		f.Rows[0].UnitPrice = decimal.NewFromInt(-1)
	}))

	f := s.View().Form
	require.Len(t, f.Rows, 1)
	assert.Equal(t, 1, f.Rows[0].Quantity)
	assert.Equal(t, "Margherita", f.Rows[0].ItemName)
	assert.Equal(t, "100.00", f.Rows[0].UnitPrice.StringFixed(2))
}

func TestBillingScreen_ChangeRowIsAllOrNothing(t *testing.T) {
	s, _ := loadedBilling(t, nil, sellable())
	s.OpenForm()
	r, _ := s.AddRow()

	garlic, qty, price := uint(11), -2, decimal.NewFromInt(-3)
	err := s.ChangeRow(r, RowChange{MenuItemID: &garlic, Quantity: &qty})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	err = s.ChangeRow(r, RowChange{MenuItemID: &garlic, UnitPrice: &price})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	f := s.View().Form
	require.Len(t, f.Rows, 1)
	assert.Equal(t, uint(10), f.Rows[0].MenuItemID, "item selection was not applied")
	assert.Equal(t, 1, f.Rows[0].Quantity)

	qty, price = 2, decimal.RequireFromString("45")
	require.NoError(t, s.ChangeRow(r, RowChange{MenuItemID: &garlic, Quantity: &qty, UnitPrice: &price}))
	f = s.View().Form
	assert.Equal(t, "Garlic Bread", f.Rows[0].ItemName)
	assert.Equal(t, 2, f.Rows[0].Quantity)
	assert.Equal(t, "90.00", f.Rows[0].LineTotal.StringFixed(2))
}

func TestBillingScreen_SubmitCreatesAndReloads(t *testing.T) {
	s, m := loadedBilling(t, nil, sellable())
	ctx := context.Background()
	s.OpenForm()
	r, _ := s.AddRow()
	require.NoError(t, s.SetQuantity(r, 3))
	require.NoError(t, s.EditForm(func(f *BillForm) { f.CustomerName = "Meera" }))

	created := &entity.Bill{Model: gorm.Model{ID: 1}, BillNumber: "BILL-202401-000001"}
	m.On("CreateBill", mock.Anything, uint(5), mock.MatchedBy(func(d services.BillDraft) bool {
		return d.CustomerName == "Meera" &&
			len(d.Lines) == 1 &&
			d.Lines[0].MenuItemID == 10 &&
			d.Lines[0].Quantity == 3 &&
			d.PaymentStatus == entity.PaymentStatusPaid
	})).Return(created, nil).Once()
	m.On("ListBills", mock.Anything).Return([]entity.Bill{*created}, nil).Once()

	bill, err := s.Submit(ctx, &fakePrompter{})
	require.NoError(t, err)
	assert.Equal(t, created, bill)

	v := s.View()
	assert.Nil(t, v.Form)
	require.Len(t, v.Bills, 1)
	assert.Equal(t, "BILL-202401-000001", v.Bills[0].BillNumber)
	m.AssertExpectations(t)
}

func TestBillingScreen_SubmitFailureAlerts(t *testing.T) {
	s, m := loadedBilling(t, nil, sellable())
	s.OpenForm()
	_, _ = s.AddRow()
	m.On("CreateBill", mock.Anything, uint(5), mock.Anything).Return(nil, errors.New("tx aborted"))
	p := &fakePrompter{}

	_, err := s.Submit(context.Background(), p)
	assert.Error(t, err)
	assert.Equal(t, []string{msgSaveFailed}, p.alerted)
	assert.NotNil(t, s.View().Form)
}

func TestBillingScreen_LoadFailure(t *testing.T) {
	m := new(MockBillingBackend)
	m.On("ListBills", mock.Anything).Return(nil, errors.New("timeout"))
	m.On("ListAvailableItems", mock.Anything).Return(sellable(), nil).Maybe()

	s := NewBillingScreen(m, 5, decimal.Zero)
	s.Load(context.Background())

	v := s.View()
	assert.Empty(t, v.Bills)
	assert.Empty(t, v.Available)
	assert.True(t, v.Totals.Total.IsZero())
}
