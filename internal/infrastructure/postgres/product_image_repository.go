package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductImageRepository = (*ProductImageRepo)(nil)

// ProductImageRepo implementación del puerto ProductImageRepository sobre
// PostgreSQL (usable con pool o tx). El índice único parcial sobre
// (product_id) WHERE is_primary respalda el invariante de primaria única
// incluso ante promociones en carrera.
type ProductImageRepo struct {
	q Querier
}

// NewProductImageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductImageRepository(q Querier) *ProductImageRepo {
	return &ProductImageRepo{q: q}
}

const imageSelect = `
	SELECT i.id, i.product_id, i.image_url, i.is_primary, i.alt_text,
	       i.created_at, i.updated_at,
	       p.id, p.name, p.description, p.price, p.stock, p.created_at, p.updated_at
	FROM product_images i
	JOIN products p ON p.id = i.product_id`

// Create persiste una nueva imagen. Una segunda primaria para el mismo
// producto viola el índice parcial y se traduce a ErrConflict.
func (r *ProductImageRepo) Create(ctx context.Context, image *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, image_url, is_primary, alt_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		image.ID, image.ProductID, image.ImageURL, image.IsPrimary, image.AltText,
		image.CreatedAt, image.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID, con su producto resuelto.
func (r *ProductImageRepo) GetByID(ctx context.Context, id string) (*entity.ProductImage, error) {
	row := r.q.QueryRow(ctx, imageSelect+` WHERE i.id = $1`, id)
	img, err := scanImageRow(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return img, nil
}

// GetPrimaryByProduct obtiene la imagen primaria de un producto, o (nil, nil)
// si no hay primaria.
func (r *ProductImageRepo) GetPrimaryByProduct(ctx context.Context, productID string) (*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, image_url, is_primary, alt_text, created_at, updated_at
		FROM product_images WHERE product_id = $1 AND is_primary`
	var img entity.ProductImage
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&img.ID, &img.ProductID, &img.ImageURL, &img.IsPrimary, &img.AltText,
		&img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get primary image: %w", err)
	}
	return &img, nil
}

// Update actualiza una imagen existente, incluida su asignación de producto.
func (r *ProductImageRepo) Update(ctx context.Context, image *entity.ProductImage) error {
	query := `
		UPDATE product_images SET product_id = $2, image_url = $3, is_primary = $4, alt_text = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		image.ID, image.ProductID, image.ImageURL, image.IsPrimary, image.AltText, image.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

// List devuelve imágenes de todos los productos, por created_at ASC, y el
// total de filas.
func (r *ProductImageRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProductImage, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM product_images`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count product images: %w", err)
	}
	rows, err := r.q.Query(ctx, imageSelect+` ORDER BY i.created_at ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list product images: %w", err)
	}
	list, err := collectImages(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByProduct devuelve imágenes de un producto, por created_at ASC, y el
// total de filas que matchean el filtro.
func (r *ProductImageRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.ProductImage, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM product_images WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count images by product: %w", err)
	}
	rows, err := r.q.Query(ctx,
		imageSelect+` WHERE i.product_id = $1 ORDER BY i.created_at ASC LIMIT $2 OFFSET $3`,
		productID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list images by product: %w", err)
	}
	list, err := collectImages(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Delete elimina una imagen por ID.
func (r *ProductImageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product image: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las imágenes de un producto.
func (r *ProductImageRepo) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete images by product: %w", err)
	}
	return nil
}

func collectImages(rows pgx.Rows) ([]*entity.ProductImage, error) {
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		img, err := scanImageRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		list = append(list, img)
	}
	return list, rows.Err()
}

// scanImageRow escanea una fila del imageSelect (JOIN interno: product_id
// siempre referencia un producto existente).
func scanImageRow(row pgx.Row) (*entity.ProductImage, error) {
	var img entity.ProductImage
	var p entity.Product
	err := row.Scan(
		&img.ID, &img.ProductID, &img.ImageURL, &img.IsPrimary, &img.AltText,
		&img.CreatedAt, &img.UpdatedAt,
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	img.Product = &p
	return &img, nil
}
