package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ImageUC    *usecase.ProductImageUseCase
	CatalogUC  *usecase.CatalogUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.CatalogUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/products", categoryHandler.GetWithProducts)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/images", productHandler.GetWithImages)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	images := api.Group("/product-images")
	imageHandler := NewProductImageHandler(deps.ImageUC)
	images.Post("/", imageHandler.Create)
	images.Get("/", imageHandler.List)
	images.Get("/product/:productId", imageHandler.ListByProduct)
	images.Get("/:id", imageHandler.GetByID)
	images.Patch("/:id", imageHandler.Update)
	images.Patch("/:id/primary", imageHandler.SetPrimary)
	images.Delete("/:id", imageHandler.Delete)
}
