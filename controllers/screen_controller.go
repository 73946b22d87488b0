package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rashidrk201111/badshahpizzahub/pkg/resp"
	"github.com/rashidrk201111/badshahpizzahub/screens"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/rashidrk201111/badshahpizzahub/utils"
)

// httpPrompter answers confirmations from the ?confirm query flag and keeps
// the alerts so they can be sent back with the view.
type httpPrompter struct {
	confirmed bool
	prompt    string
	alerts    []string
}

func newPrompter(c *gin.Context) *httpPrompter {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return &httpPrompter{confirmed: ok}
}

func (p *httpPrompter) Confirm(msg string) bool {
	p.prompt = msg
	return p.confirmed
}

func (p *httpPrompter) Alert(msg string) { p.alerts = append(p.alerts, msg) }

type ScreenController struct {
	Screens *screens.Registry
}

func NewScreenController(r *screens.Registry) *ScreenController {
	return &ScreenController{Screens: r}
}

func screenStatus(err error) int {
	switch {
	case errors.Is(err, screens.ErrRowOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, screens.ErrNotConfirmed), screens.IsFormError(err):
		return http.StatusConflict
	}
	return resp.StatusOf(err)
}

func (ctl *ScreenController) menu(c *gin.Context) *screens.MenuScreen {
	return ctl.Screens.Menu(c.Request.Context(), utils.CurrentUserID(c))
}

func (ctl *ScreenController) billing(c *gin.Context) *screens.BillingScreen {
	return ctl.Screens.Billing(c.Request.Context(), utils.CurrentUserID(c))
}

func (ctl *ScreenController) menuResult(c *gin.Context, s *screens.MenuScreen, p *httpPrompter, err error) {
	if err == nil {
		resp.Screen(c, http.StatusOK, s.View(), p.alerts, nil)
		return
	}
	if errors.Is(err, screens.ErrNotConfirmed) {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error(), "prompt": p.prompt})
		return
	}
	resp.Screen(c, screenStatus(err), s.View(), p.alerts, err)
}

func (ctl *ScreenController) billingResult(c *gin.Context, s *screens.BillingScreen, p *httpPrompter, err error) {
	if err == nil {
		resp.Screen(c, http.StatusOK, s.View(), p.alerts, nil)
		return
	}
	resp.Screen(c, screenStatus(err), s.View(), p.alerts, err)
}

// ====== Menu screen ======

// GET /screens/menu
func (ctl *ScreenController) MenuView(c *gin.Context) {
	ctl.menuResult(c, ctl.menu(c), newPrompter(c), nil)
}

// POST /screens/menu/reload
func (ctl *ScreenController) MenuReload(c *gin.Context) {
	s := ctl.menu(c)
	s.Load(c.Request.Context())
	ctl.menuResult(c, s, newPrompter(c), nil)
}

// POST /screens/menu/categories/:id/toggle
func (ctl *ScreenController) ToggleCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s := ctl.menu(c)
	s.ToggleCategory(id)
	ctl.menuResult(c, s, newPrompter(c), nil)
}

// POST /screens/menu/categories/form?id=
func (ctl *ScreenController) OpenCategoryForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s := ctl.menu(c)
	ctl.menuResult(c, s, newPrompter(c), s.OpenCategoryForm(id))
}

// PATCH /screens/menu/categories/form
func (ctl *ScreenController) EditCategoryForm(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s := ctl.menu(c)
	var bindErr error
	err = s.EditCategoryForm(func(f *services.CategoryForm) {
		next := *f
		if bindErr = binding.JSON.BindBody(body, &next); bindErr == nil {
			*f = next
		}
	})
	if err == nil && bindErr != nil {
		resp.BadRequest(c, bindErr.Error())
		return
	}
	ctl.menuResult(c, s, newPrompter(c), err)
}

// POST /screens/menu/categories/form/submit
func (ctl *ScreenController) SubmitCategory(c *gin.Context) {
	s, p := ctl.menu(c), newPrompter(c)
	ctl.menuResult(c, s, p, s.SubmitCategory(c.Request.Context(), p))
}

// POST /screens/menu/items/form?id=
func (ctl *ScreenController) OpenItemForm(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s := ctl.menu(c)
	ctl.menuResult(c, s, newPrompter(c), s.OpenItemForm(id))
}

// PATCH /screens/menu/items/form
func (ctl *ScreenController) EditItemForm(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s := ctl.menu(c)
	var bindErr error
	err = s.EditItemForm(func(f *services.ItemForm) {
		next := *f
		if bindErr = binding.JSON.BindBody(body, &next); bindErr == nil {
			*f = next
		}
	})
	if err == nil && bindErr != nil {
		resp.BadRequest(c, bindErr.Error())
		return
	}
	ctl.menuResult(c, s, newPrompter(c), err)
}

// POST /screens/menu/items/form/submit
func (ctl *ScreenController) SubmitItem(c *gin.Context) {
	s, p := ctl.menu(c), newPrompter(c)
	ctl.menuResult(c, s, p, s.SubmitItem(c.Request.Context(), p))
}

// DELETE /screens/menu/form
func (ctl *ScreenController) CancelMenuForm(c *gin.Context) {
	s := ctl.menu(c)
	s.CancelForm()
	ctl.menuResult(c, s, newPrompter(c), nil)
}

// DELETE /screens/menu/categories/:id?confirm=true
func (ctl *ScreenController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s, p := ctl.menu(c), newPrompter(c)
	ctl.menuResult(c, s, p, s.DeleteCategory(c.Request.Context(), id, p))
}

// DELETE /screens/menu/items/:id?confirm=true
func (ctl *ScreenController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s, p := ctl.menu(c), newPrompter(c)
	ctl.menuResult(c, s, p, s.DeleteItem(c.Request.Context(), id, p))
}

// ====== Billing screen ======

// GET /screens/billing
func (ctl *ScreenController) BillingView(c *gin.Context) {
	ctl.billingResult(c, ctl.billing(c), newPrompter(c), nil)
}

// POST /screens/billing/reload
func (ctl *ScreenController) BillingReload(c *gin.Context) {
	s := ctl.billing(c)
	s.Load(c.Request.Context())
	ctl.billingResult(c, s, newPrompter(c), nil)
}

// POST /screens/billing/form
func (ctl *ScreenController) OpenBillForm(c *gin.Context) {
	s := ctl.billing(c)
	s.OpenForm()
	ctl.billingResult(c, s, newPrompter(c), nil)
}

// PATCH /screens/billing/form
func (ctl *ScreenController) EditBillForm(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s := ctl.billing(c)
	var bindErr error
	err = s.EditForm(func(f *screens.BillForm) {
		next := *f
		if bindErr = binding.JSON.BindBody(body, &next); bindErr == nil {
			*f = next
		}
	})
	if err == nil && bindErr != nil {
		resp.BadRequest(c, bindErr.Error())
		return
	}
	ctl.billingResult(c, s, newPrompter(c), err)
}

// POST /screens/billing/form/rows
func (ctl *ScreenController) AddBillRow(c *gin.Context) {
	s := ctl.billing(c)
	_, err := s.AddRow()
	ctl.billingResult(c, s, newPrompter(c), err)
}

// PATCH /screens/billing/form/rows/:row
func (ctl *ScreenController) EditBillRow(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		resp.BadRequest(c, "invalid row")
		return
	}
	var req screens.RowChange
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s := ctl.billing(c)
	ctl.billingResult(c, s, newPrompter(c), s.ChangeRow(row, req))
}

// DELETE /screens/billing/form/rows/:row
func (ctl *ScreenController) RemoveBillRow(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		resp.BadRequest(c, "invalid row")
		return
	}
	s := ctl.billing(c)
	ctl.billingResult(c, s, newPrompter(c), s.RemoveRow(row))
}

// POST /screens/billing/form/submit
func (ctl *ScreenController) SubmitBill(c *gin.Context) {
	s, p := ctl.billing(c), newPrompter(c)
	_, err := s.Submit(c.Request.Context(), p)
	ctl.billingResult(c, s, p, err)
}

// DELETE /screens/billing/form
func (ctl *ScreenController) CancelBillForm(c *gin.Context) {
	s := ctl.billing(c)
	s.CancelForm()
	ctl.billingResult(c, s, newPrompter(c), nil)
}

func queryID(c *gin.Context) (uint, bool) {
	v := c.Query("id")
	if v == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
