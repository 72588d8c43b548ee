package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bike-ledgers/internal/application/analytics"
	"github.com/jhoicas/bike-ledgers/internal/application/auth"
	"github.com/jhoicas/bike-ledgers/internal/application/billing"
	"github.com/jhoicas/bike-ledgers/internal/application/inventory"
	"github.com/jhoicas/bike-ledgers/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	InventoryUC   *inventory.InventoryUseCase
	Replenishment *inventory.ReplenishmentUseCase
	BillingUC     *billing.BillingUseCase
	InvoicePDF    *billing.PDFUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	AIUC          *usecase.AIUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)

	// Rutas protegidas (requieren Bearer Token y una cuenta existente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadProfile(deps.AuthUC))

	companyHandler := NewCompanyHandler(deps.AuthUC)
	protected.Get("/settings", companyHandler.GetSettings)
	protected.Put("/settings", companyHandler.UpdateSettings)

	// Catálogo e inventario
	productHandler := NewProductHandler(deps.InventoryUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Replenishment)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/categories", productHandler.Categories)
	products.Get("/replenishment", inventoryHandler.Replenishment)
	products.Put("/:id/stock", inventoryHandler.UpdateStock)
	products.Delete("/:id", productHandler.Delete)
	protected.Get("/stock-log", inventoryHandler.StockLog)

	// Facturas
	invoiceHandler := NewInvoiceHandler(deps.BillingUC, deps.InvoicePDF)
	bills := protected.Group("/bills")
	bills.Post("/lines", invoiceHandler.DraftLine)
	bills.Post("/", invoiceHandler.Create)
	bills.Get("/", invoiceHandler.List)
	bills.Get("/:id", invoiceHandler.GetByID)
	bills.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	bills.Delete("/:id", invoiceHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	aiHandler := NewAIHandler(deps.AIUC)
	assistant := protected.Group("/assistant")
	assistant.Post("/analyze", aiHandler.Analyze)
	assistant.Get("/chat", aiHandler.Chat)
}
