package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductImageRepository define el puerto de persistencia para ProductImage (DIP).
// Las lecturas resuelven el producto asociado.
type ProductImageRepository interface {
	Create(ctx context.Context, image *entity.ProductImage) error
	GetByID(ctx context.Context, id string) (*entity.ProductImage, error)
	// GetPrimaryByProduct devuelve la imagen primaria del producto, o (nil, nil)
	// si el producto no tiene primaria.
	GetPrimaryByProduct(ctx context.Context, productID string) (*entity.ProductImage, error)
	Update(ctx context.Context, image *entity.ProductImage) error
	List(ctx context.Context, limit, offset int) ([]*entity.ProductImage, int, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.ProductImage, int, error)
	Delete(ctx context.Context, id string) error
	// DeleteByProduct elimina todas las imágenes de un producto. Usado por el
	// cascade de borrado de productos.
	DeleteByProduct(ctx context.Context, productID string) error
}
