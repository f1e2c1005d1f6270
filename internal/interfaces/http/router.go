package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-minorista/internal/application/auth"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/application/usecase"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	SaleUC     *usecase.SaleUseCase
	PurchaseUC *usecase.PurchaseUseCase
	StatsUC    *usecase.StatsUseCase
	Users      repository.UserRepository
	PDF        ports.ReportPDFGenerator
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	dashboardHandler := NewDashboardHandler(deps.StatsUC, deps.PDF)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/reports/summary.pdf", dashboardHandler.ExportPDF)
	protected.Get("/inventory/replenishment", dashboardHandler.GetReplenishment)

	userHandler := NewUserHandler(deps.Users)
	protected.Get("/navigation", userHandler.Navigation)
	protected.Get("/users", RequireRole(entity.RoleAdministrador), userHandler.List)
}
