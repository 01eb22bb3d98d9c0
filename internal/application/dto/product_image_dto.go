package dto

import "time"

// CreateProductImageRequest entrada para crear una imagen de producto.
// FilePath es la ruta que entrega el colaborador de uploads cuando hubo
// archivo; si viene, tiene prioridad sobre ImageURL. Al menos uno de los dos
// debe estar presente.
type CreateProductImageRequest struct {
	ProductID string `json:"product_id"`
	ImageURL  string `json:"image_url"`
	FilePath  string `json:"file_path"`
	IsPrimary bool   `json:"is_primary"`
	AltText   string `json:"alt_text"`
}

// UpdateProductImageRequest entrada para actualizar una imagen (parcial).
// ProductID presente reasigna la imagen a otro producto existente.
type UpdateProductImageRequest struct {
	ProductID *string `json:"product_id"`
	ImageURL  *string `json:"image_url"`
	IsPrimary *bool   `json:"is_primary"`
	AltText   *string `json:"alt_text"`
}

// ProductImageResponse salida de una imagen, con su producto resuelto.
type ProductImageResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	ImageURL  string           `json:"image_url"`
	IsPrimary bool             `json:"is_primary"`
	AltText   string           `json:"alt_text,omitempty"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ProductImageListResponse lista paginada de imágenes.
type ProductImageListResponse struct {
	Items []ProductImageResponse `json:"items"`
	Count int                    `json:"count"`
	Page  PageResponse           `json:"page"`
}
