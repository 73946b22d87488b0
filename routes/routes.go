package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/controllers"
	"github.com/rashidrk201111/badshahpizzahub/middlewares"
)

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(middlewares.CORSMiddleware(d.Config.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	secret := d.Config.JWTSecret

	// Controllers
	authCtrl := controllers.NewAuthController(d.Auth, d.Screens)
	menuCtrl := controllers.NewMenuController(d.Menu)
	billCtrl := controllers.NewBillController(d.Billing)
	screenCtrl := controllers.NewScreenController(d.Screens)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(secret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Menu
	m := r.Group("/menu", middlewares.AuthMiddleware(secret))
	{
		m.GET("/categories", menuCtrl.ListCategories)
		m.POST("/categories", menuCtrl.CreateCategory)
		m.PUT("/categories/:id", menuCtrl.UpdateCategory)
		m.DELETE("/categories/:id", menuCtrl.DeleteCategory)

		m.GET("/items", menuCtrl.ListItems)
		m.GET("/items/available", menuCtrl.ListAvailableItems)
		m.GET("/items/:id", menuCtrl.GetItem)
		m.POST("/items", menuCtrl.CreateItem)
		m.PUT("/items/:id", menuCtrl.UpdateItem)
		m.DELETE("/items/:id", menuCtrl.DeleteItem)
	}

	// Bills
	b := r.Group("/bills", middlewares.AuthMiddleware(secret))
	{
		b.GET("", billCtrl.List)
		b.POST("", billCtrl.Create)
		b.POST("/preview", billCtrl.Preview)
		b.GET("/:id", billCtrl.Detail)
	}

	// Screens (per-user view state)
	sm := r.Group("/screens/menu", middlewares.AuthMiddleware(secret))
	{
		sm.GET("", screenCtrl.MenuView)
		sm.POST("/reload", screenCtrl.MenuReload)
		sm.DELETE("/form", screenCtrl.CancelMenuForm)

		sm.POST("/categories/:id/toggle", screenCtrl.ToggleCategory)
		sm.POST("/categories/form", screenCtrl.OpenCategoryForm)
		sm.PATCH("/categories/form", screenCtrl.EditCategoryForm)
		sm.POST("/categories/form/submit", screenCtrl.SubmitCategory)
		sm.DELETE("/categories/:id", screenCtrl.DeleteCategory)

		sm.POST("/items/form", screenCtrl.OpenItemForm)
		sm.PATCH("/items/form", screenCtrl.EditItemForm)
		sm.POST("/items/form/submit", screenCtrl.SubmitItem)
		sm.DELETE("/items/:id", screenCtrl.DeleteItem)
	}

	sb := r.Group("/screens/billing", middlewares.AuthMiddleware(secret))
	{
		sb.GET("", screenCtrl.BillingView)
		sb.POST("/reload", screenCtrl.BillingReload)
		sb.POST("/form", screenCtrl.OpenBillForm)
		sb.PATCH("/form", screenCtrl.EditBillForm)
		sb.DELETE("/form", screenCtrl.CancelBillForm)
		sb.POST("/form/submit", screenCtrl.SubmitBill)
		sb.POST("/form/rows", screenCtrl.AddBillRow)
		sb.PATCH("/form/rows/:row", screenCtrl.EditBillRow)
		sb.DELETE("/form/rows/:row", screenCtrl.RemoveBillRow)
	}

	// WebSocket change feed
	r.GET("/ws/changes", middlewares.WSAuthMiddleware(secret), d.Hub.HandleWebSocket)
}
