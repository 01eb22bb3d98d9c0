package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

func TestCatalogGetCategoryWithProducts(t *testing.T) {
	categoryUC, productUC, _, catalogUC := newCatalogFakes()
	ctx := context.Background()

	category, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	for _, name := range []string{"Phone", "Tablet", "Laptop"} {
		_, err = productUC.Create(ctx, dto.CreateProductRequest{
			Name: name, Description: "d", CategoryID: category.ID,
		})
		require.NoError(t, err)
	}

	out, err := catalogUC.GetCategoryWithProducts(ctx, category.ID, dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", out.Category.Name)
	assert.Equal(t, 3, out.Products.Count)
	require.Len(t, out.Products.Items, 2)
	// created_at descendente: el más nuevo primero.
	assert.Equal(t, "Laptop", out.Products.Items[0].Name)
	assert.Equal(t, "Tablet", out.Products.Items[1].Name)
}

func TestCatalogGetCategoryWithProducts_NoExiste(t *testing.T) {
	_, _, _, catalogUC := newCatalogFakes()

	_, err := catalogUC.GetCategoryWithProducts(context.Background(), "no-existe", dto.PageRequest{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogGetProductWithImages(t *testing.T) {
	_, productUC, imageUC, catalogUC := newCatalogFakes()
	ctx := context.Background()

	product, err := productUC.Create(ctx, dto.CreateProductRequest{Name: "Phone", Description: "d"})
	require.NoError(t, err)
	_, err = imageUC.Create(ctx, dto.CreateProductImageRequest{
		ProductID: product.ID, ImageURL: "/a.png", IsPrimary: true,
	})
	require.NoError(t, err)
	_, err = imageUC.Create(ctx, dto.CreateProductImageRequest{ProductID: product.ID, ImageURL: "/b.png"})
	require.NoError(t, err)

	out, err := catalogUC.GetProductWithImages(ctx, product.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Phone", out.Product.Name)
	assert.Equal(t, 2, out.Images.Count)
	require.Len(t, out.Images.Items, 2)
	// El producto va en la raíz, no repetido dentro de cada imagen.
	for _, img := range out.Images.Items {
		assert.Nil(t, img.Product)
	}
}

func TestCatalogGetProductWithImages_NoExiste(t *testing.T) {
	_, _, _, catalogUC := newCatalogFakes()

	_, err := catalogUC.GetProductWithImages(context.Background(), "no-existe", dto.PageRequest{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogDefaultsDePaginacion(t *testing.T) {
	categoryUC, _, _, catalogUC := newCatalogFakes()
	ctx := context.Background()

	category, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	out, err := catalogUC.GetCategoryWithProducts(ctx, category.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Products.Page.Limit)
	assert.Equal(t, 0, out.Products.Page.Offset)
}
