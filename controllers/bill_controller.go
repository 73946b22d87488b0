package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/pkg/resp"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/rashidrk201111/badshahpizzahub/utils"
)

type BillController struct {
	Service *services.BillingService
}

func NewBillController(s *services.BillingService) *BillController {
	return &BillController{Service: s}
}

// GET /bills?limit=&offset=
// Without limit every bill is returned.
func (ctl *BillController) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		resp.BadRequest(c, "invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		resp.BadRequest(c, "invalid offset")
		return
	}

	bills, err := ctl.Service.ListBillsPage(c.Request.Context(), limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": bills})
}

// GET /bills/:id
func (ctl *BillController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	bill, err := ctl.Service.GetBill(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, bill)
}

// POST /bills
func (ctl *BillController) Create(c *gin.Context) {
	var req services.BillDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bill, err := ctl.Service.CreateBill(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, bill)
}

type PreviewRequest struct {
	Items []services.BillLine `json:"items"`
}

// POST /bills/preview
func (ctl *BillController) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, ctl.Service.Preview(req.Items))
}
