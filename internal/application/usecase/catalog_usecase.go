package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CatalogUseCase fachada de consultas relacionales del catálogo. Pura
// composición sobre los repositorios: no agrega invariantes, solo garantiza
// defaults de paginación y orden consistentes por tipo de entidad.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	imageRepo    repository.ProductImageRepository
}

// NewCatalogUseCase construye la fachada.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	imageRepo repository.ProductImageRepository,
) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, productRepo: productRepo, imageRepo: imageRepo}
}

// GetCategoryWithProducts devuelve una categoría existente junto a una página
// de sus productos (created_at DESC) y el total.
func (uc *CatalogUseCase) GetCategoryWithProducts(ctx context.Context, id string, page dto.PageRequest) (*dto.CategoryWithProductsResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	page.Normalize()
	products, total, err := uc.productRepo.ListByCategory(ctx, id, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryWithProductsResponse{
		Category: *toCategoryResponse(category),
		Products: *toProductListResponse(products, total, page),
	}, nil
}

// GetProductWithImages devuelve un producto existente junto a una página de
// sus imágenes y el total.
func (uc *CatalogUseCase) GetProductWithImages(ctx context.Context, id string, page dto.PageRequest) (*dto.ProductWithImagesResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	page.Normalize()
	images, total, err := uc.imageRepo.ListByProduct(ctx, id, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	// El producto ya viene en la raíz; no repetirlo dentro de cada imagen.
	resp := toProductImageListResponse(images, total, page)
	for i := range resp.Items {
		resp.Items[i].Product = nil
	}
	return &dto.ProductWithImagesResponse{
		Product: *toProductResponse(product),
		Images:  *resp,
	}, nil
}
