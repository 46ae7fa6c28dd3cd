package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/cart"
	"github.com/jhoicas/tienda-pos/internal/application/purchase"
	"github.com/jhoicas/tienda-pos/internal/application/transfer"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	StoreUC     *usecase.StoreUseCase
	PriceRuleUC *usecase.PriceRuleUseCase
	PurchaseUC  *purchase.UseCase
	TransferUC  *transfer.UseCase
	CartUC      *cart.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole("admin"), productHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/default", storeHandler.Default)
	stores.Get("/:id", storeHandler.GetByID)

	// Purchases (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Edit)
	purchases.Post("/:id/revert", purchaseHandler.Revert)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", transferHandler.Edit)
	transfers.Post("/:id/revert", transferHandler.Revert)

	// Price rules (protegido)
	rules := protected.Group("/price-rules")
	ruleHandler := NewPriceRuleHandler(deps.PriceRuleUC)
	rules.Post("/", ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Get("/:id", ruleHandler.GetByID)
	rules.Put("/:id", ruleHandler.Update)
	rules.Delete("/:id", ruleHandler.Delete)

	// Cart (protegido)
	cartGroup := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Put("/store", cartHandler.SetStore)
	cartGroup.Post("/checkout", cartHandler.Checkout)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Get("/items/:productId/rules", cartHandler.LineRules)
	cartGroup.Post("/items/:productId/rule", cartHandler.ApplyRule)
	cartGroup.Put("/items/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)
}
