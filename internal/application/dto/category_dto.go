package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (parcial:
// los campos nil no se tocan).
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImagePath   *string `json:"image_path"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías. Count es el total de
// filas, no el tamaño de la página.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Count int                `json:"count"`
	Page  PageResponse       `json:"page"`
}

// CategoryWithProductsResponse categoría junto a una página de sus productos.
type CategoryWithProductsResponse struct {
	Category CategoryResponse    `json:"category"`
	Products ProductListResponse `json:"products"`
}
