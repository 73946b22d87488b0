package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/pkg/resp"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/rashidrk201111/badshahpizzahub/utils"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// ====== Categories ======

// GET /menu/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	cats, err := ctl.Service.ListCategories(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /menu/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	f := services.NewCategoryForm()
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f.ID = 0

	cat, err := ctl.Service.SaveCategory(c.Request.Context(), utils.CurrentUserID(c), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /menu/categories/:id
func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f services.CategoryForm
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f.ID = id

	cat, err := ctl.Service.SaveCategory(c.Request.Context(), utils.CurrentUserID(c), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /menu/categories/:id
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteCategory(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// ====== Items ======

// GET /menu/items
func (ctl *MenuController) ListItems(c *gin.Context) {
	items, err := ctl.Service.ListItems(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/items/available
func (ctl *MenuController) ListAvailableItems(c *gin.Context) {
	items, err := ctl.Service.ListAvailableItems(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/items/:id
func (ctl *MenuController) GetItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := ctl.Service.GetItem(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	f := services.NewItemForm(0)
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f.ID = 0

	item, err := ctl.Service.SaveItem(c.Request.Context(), utils.CurrentUserID(c), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/items/:id
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f services.ItemForm
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f.ID = id

	item, err := ctl.Service.SaveItem(c.Request.Context(), utils.CurrentUserID(c), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/items/:id
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteItem(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
