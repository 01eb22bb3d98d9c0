package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price y Stock omitidos
// quedan en 0. CategoryID vacío crea el producto sin categoría.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"category_id"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
// CategoryID distingue tres casos: nil no cambia la asociación, puntero a ""
// desasocia, puntero a un id reasocia (verificando que la categoría exista).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *string          `json:"category_id"`
}

// ProductResponse salida de un producto, con su categoría resuelta (nil si
// no tiene).
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int               `json:"stock"`
	CategoryID  string            `json:"category_id,omitempty"`
	Category    *CategoryResponse `json:"category"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Count int               `json:"count"`
	Page  PageResponse      `json:"page"`
}

// ProductWithImagesResponse producto junto a una página de sus imágenes.
type ProductWithImagesResponse struct {
	Product ProductResponse          `json:"product"`
	Images  ProductImageListResponse `json:"images"`
}
