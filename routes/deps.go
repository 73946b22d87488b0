package routes

import (
	"log"

	"github.com/rashidrk201111/badshahpizzahub/configs"
	"github.com/rashidrk201111/badshahpizzahub/repository"
	"github.com/rashidrk201111/badshahpizzahub/screens"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/rashidrk201111/badshahpizzahub/ws"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Config  *configs.Config
	Auth    *services.AuthService
	Menu    *services.MenuService
	Billing *services.BillingService
	Screens *screens.Registry
	Hub     *ws.ChangeHub
}

// NewDeps builds repositories, services and the screen registry on db.
// Change events go to the hub, the registry and the extra publisher (Kafka
// or log), in that order.
func NewDeps(db *gorm.DB, cfg *configs.Config, extra services.EventPublisher) *Deps {
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewMenuCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	billRepo := repository.NewBillRepository(db)

	policy, err := services.ParseCategoryDeletePolicy(cfg.CategoryDeletePolicy)
	if err != nil {
		log.Printf("config: %v, using %s", err, policy)
	}

	menuSvc := services.NewMenuService(db, catRepo, itemRepo, policy, nil)
	billingSvc := services.NewBillingService(db, billRepo, itemRepo, cfg.TaxRate, nil)

	backend := screens.Backend{Menu: menuSvc, Billing: billingSvc}
	registry := screens.NewRegistry(backend, backend, billingSvc.TaxRate)
	hub := ws.NewChangeHub()

	events := services.Publishers{hub, registry}
	if extra != nil {
		events = append(events, extra)
	}
	menuSvc.Events = events
	billingSvc.Events = events

	return &Deps{
		Config:  cfg,
		Auth:    services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL),
		Menu:    menuSvc,
		Billing: billingSvc,
		Screens: registry,
		Hub:     hub,
	}
}
