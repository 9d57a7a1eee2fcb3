package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jquiroga/tienda-api/internal/application/auth"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ColorUC     *usecase.ColorUseCase
	CategoryUC  *usecase.CategoryUseCase
	BrandUC     *usecase.BrandUseCase
	PromotionUC *usecase.PromotionUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas del catálogo son públicas;
// toda mutación exige Bearer Token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	admin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)

	// Products y filas asociativas (producto, color)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/colors/:colorId", productHandler.GetPair)
	products.Post("/", append(admin, productHandler.Create)...)
	products.Put("/:id", append(admin, productHandler.Update)...)
	products.Delete("/:id", append(admin, productHandler.Delete)...)
	products.Put("/:id/colors/:colorId/stock", append(admin, productHandler.SetPairStock)...)
	products.Post("/:id/colors/:colorId/images", append(admin, productHandler.AddPairImage)...)
	products.Delete("/:id/colors/:colorId/images/:imageId", append(admin, productHandler.RemovePairImage)...)
	products.Delete("/:id/colors/:colorId", append(admin, productHandler.RemovePair)...)

	// Colors
	colors := api.Group("/colors")
	colorHandler := NewColorHandler(deps.ColorUC)
	colors.Get("/", colorHandler.List)
	colors.Get("/:id", colorHandler.GetByID)
	colors.Post("/", append(admin, colorHandler.Create)...)
	colors.Put("/:id", append(admin, colorHandler.Update)...)
	colors.Delete("/:id", append(admin, colorHandler.Delete)...)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", append(admin, categoryHandler.Create)...)
	categories.Put("/:id", append(admin, categoryHandler.Update)...)
	categories.Delete("/:id", append(admin, categoryHandler.Delete)...)

	// Brands
	brands := api.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Post("/", append(admin, brandHandler.Create)...)
	brands.Put("/:id", append(admin, brandHandler.Update)...)
	brands.Put("/:id/logo", append(admin, brandHandler.SetLogo)...)
	brands.Delete("/:id", append(admin, brandHandler.Delete)...)

	// Promotions. Las rutas fijas van antes de /:id.
	promotions := api.Group("/promotions")
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	promotions.Get("/", promotionHandler.List)
	promotions.Get("/ongoing", promotionHandler.ListOngoing)
	promotions.Get("/ongoing/:productId", promotionHandler.ListOngoingForProduct)
	promotions.Get("/banner/:name", promotionHandler.ServeBanner)
	promotions.Get("/:id", promotionHandler.GetByID)
	promotions.Post("/", append(admin, promotionHandler.Create)...)
	promotions.Put("/:id", append(admin, promotionHandler.Update)...)
	promotions.Put("/:id/banner", append(admin, promotionHandler.AddBanner)...)
	promotions.Delete("/:id", append(admin, promotionHandler.Delete)...)
}
