package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()
	ctx := context.Background()

	first, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.ErrorIs(t, err, domain.ErrConflict)

	// La colisión no debe dejar registro.
	out, err := categoryUC.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
}

func TestCategoryCreate_NombreMuyCorto(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()

	_, err := categoryUC.Create(context.Background(), dto.CreateCategoryRequest{Name: "ab"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()

	_, err := categoryUC.GetByID(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryList_OrdenYPaginacion(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()
	ctx := context.Background()

	for _, name := range []string{"Audio", "Hogar", "Juguetes"} {
		_, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := categoryUC.List(ctx, dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count, "count es el total de filas, no el tamaño de página")
	require.Len(t, out.Items, 2)
	// created_at ascendente: el orden de creación se conserva.
	assert.Equal(t, "Audio", out.Items[0].Name)
	assert.Equal(t, "Hogar", out.Items[1].Name)

	out, err = categoryUC.List(ctx, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Juguetes", out.Items[0].Name)
}

func TestCategoryList_PaginacionNegativaSeRecorta(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()
	ctx := context.Background()

	_, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Audio"})
	require.NoError(t, err)

	out, err := categoryUC.List(ctx, dto.PageRequest{Limit: -5, Offset: -1})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
	assert.Len(t, out.Items, 1)
}

func TestCategoryUpdate_Parcial(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()
	ctx := context.Background()

	created, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{
		Name:        "Electronics",
		Description: "original",
		ImagePath:   "/uploads/categories/e.png",
	})
	require.NoError(t, err)

	desc := "actualizada"
	out, err := categoryUC.Update(ctx, created.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "actualizada", out.Description)
	// Los campos ausentes del patch no se tocan.
	assert.Equal(t, "Electronics", out.Name)
	assert.Equal(t, "/uploads/categories/e.png", out.ImagePath)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
}

func TestCategoryUpdate_ColisionDeNombre(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()
	ctx := context.Background()

	_, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Audio"})
	require.NoError(t, err)
	second, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)

	name := "Audio"
	_, err = categoryUC.Update(ctx, second.ID, dto.UpdateCategoryRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrConflict)

	// Renombrar al mismo nombre propio no es colisión.
	name = "Hogar"
	out, err := categoryUC.Update(ctx, second.ID, dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Hogar", out.Name)
}

func TestCategoryDelete_DesasociaProductos(t *testing.T) {
	categoryUC, productUC, _, _ := newCatalogFakes()
	ctx := context.Background()

	category, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	product, err := productUC.Create(ctx, dto.CreateProductRequest{
		Name:        "Phone",
		Description: "un teléfono",
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, categoryUC.Delete(ctx, category.ID))

	_, err = categoryUC.GetByID(ctx, category.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// El producto sobrevive, sin categoría (política: nullify, nunca cascade).
	out, err := productUC.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID)
	assert.Nil(t, out.Category)
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	categoryUC, _, _, _ := newCatalogFakes()

	err := categoryUC.Delete(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
