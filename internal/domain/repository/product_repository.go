package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas resuelven la categoría asociada (LEFT JOIN); Product.Category
// es nil cuando el producto no tiene categoría.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// List devuelve una página ordenada por created_at DESC y el total de filas.
	List(ctx context.Context, limit, offset int) ([]*entity.Product, int, error)
	// ListByCategory filtra por categoría, con el mismo orden y total.
	ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, int, error)
	// DetachCategory desasocia todos los productos de una categoría
	// (category_id a NULL). Usado por el cascade de borrado de categorías.
	DetachCategory(ctx context.Context, categoryID string) error
	Delete(ctx context.Context, id string) error
}
