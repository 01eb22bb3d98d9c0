package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Todas las lecturas hacen LEFT JOIN a categories.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id,
	       p.created_at, p.updated_at,
	       c.id, c.name, c.description, c.image_path, c.created_at, c.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// Create persiste un nuevo producto. category_id vacío se guarda como NULL.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		nullIfEmpty(product.CategoryID), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, con su categoría resuelta.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id)
	p, err := scanProductRow(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByName obtiene un producto por nombre (comparación exacta).
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, productSelect+` WHERE p.name = $1`, name)
	p, err := scanProductRow(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente, incluida su asociación a categoría.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5, category_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		nullIfEmpty(product.CategoryID), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List devuelve productos ordenados por created_at DESC y el total de filas.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	list, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByCategory devuelve productos de una categoría ordenados por created_at
// DESC y el total de filas que matchean el filtro.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE category_id = $1`, categoryID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products by category: %w", err)
	}
	rows, err := r.q.Query(ctx,
		productSelect+` WHERE p.category_id = $1 ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`,
		categoryID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list products by category: %w", err)
	}
	list, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// DetachCategory pone en NULL la categoría de todos los productos asociados.
func (r *ProductRepo) DetachCategory(ctx context.Context, categoryID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET category_id = NULL, updated_at = now() WHERE category_id = $1`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("detach category: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProductRow escanea una fila del productSelect. Las columnas de la
// categoría vienen de un LEFT JOIN y pueden ser NULL.
func scanProductRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	var catID, catName, catDesc, catImg *string
	var catCreated, catUpdated *time.Time
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &categoryID,
		&p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catDesc, &catImg, &catCreated, &catUpdated,
	)
	if err != nil {
		return nil, err
	}
	p.CategoryID = derefOrEmpty(categoryID)
	if catID != nil {
		p.Category = &entity.Category{
			ID:          *catID,
			Name:        derefOrEmpty(catName),
			Description: derefOrEmpty(catDesc),
			ImagePath:   derefOrEmpty(catImg),
			CreatedAt:   *catCreated,
			UpdatedAt:   *catUpdated,
		}
	}
	return &p, nil
}
