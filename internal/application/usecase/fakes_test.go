package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Replican el
// contrato de los adaptadores de PostgreSQL: (nil, nil) cuando no existe,
// ErrConflict ante violación de unicidad y orden por created_at.

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.items {
		if existing.Name == c.Name {
			return domain.ErrConflict
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	for id, existing := range r.items {
		if id != c.ID && existing.Name == c.Name {
			return domain.ErrConflict
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, int, error) {
	all := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return pageOf(all, limit, offset), len(all), nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	items      map[string]*entity.Product
	categories *fakeCategoryRepo
}

func newFakeProductRepo(categories *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*entity.Product), categories: categories}
}

// resolve imita el LEFT JOIN a categories de las lecturas reales.
func (r *fakeProductRepo) resolve(p *entity.Product) *entity.Product {
	cp := *p
	cp.Category = nil
	if cp.CategoryID != "" {
		if c, ok := r.categories.items[cp.CategoryID]; ok {
			cc := *c
			cp.Category = &cc
		}
	}
	return &cp
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.items {
		if existing.Name == p.Name {
			return domain.ErrConflict
		}
	}
	cp := *p
	cp.Category = nil
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(p), nil
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Name == name {
			return r.resolve(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	for id, existing := range r.items {
		if id != p.ID && existing.Name == p.Name {
			return domain.ErrConflict
		}
	}
	cp := *p
	cp.Category = nil
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, int, error) {
	return r.listWhere(func(*entity.Product) bool { return true }, limit, offset)
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID string, limit, offset int) ([]*entity.Product, int, error) {
	return r.listWhere(func(p *entity.Product) bool { return p.CategoryID == categoryID }, limit, offset)
}

func (r *fakeProductRepo) listWhere(match func(*entity.Product) bool, limit, offset int) ([]*entity.Product, int, error) {
	var all []*entity.Product
	for _, p := range r.items {
		if match(p) {
			all = append(all, r.resolve(p))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageOf(all, limit, offset), len(all), nil
}

func (r *fakeProductRepo) DetachCategory(_ context.Context, categoryID string) error {
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			p.CategoryID = ""
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeImageRepo struct {
	items    map[string]*entity.ProductImage
	products *fakeProductRepo
}

func newFakeImageRepo(products *fakeProductRepo) *fakeImageRepo {
	return &fakeImageRepo{items: make(map[string]*entity.ProductImage), products: products}
}

func (r *fakeImageRepo) resolve(img *entity.ProductImage) *entity.ProductImage {
	cp := *img
	cp.Product = nil
	if p, ok := r.products.items[cp.ProductID]; ok {
		pp := *p
		cp.Product = &pp
	}
	return &cp
}

func (r *fakeImageRepo) Create(_ context.Context, img *entity.ProductImage) error {
	if img.IsPrimary {
		for _, existing := range r.items {
			if existing.ProductID == img.ProductID && existing.IsPrimary {
				return domain.ErrConflict // índice único parcial
			}
		}
	}
	cp := *img
	cp.Product = nil
	r.items[img.ID] = &cp
	return nil
}

func (r *fakeImageRepo) GetByID(_ context.Context, id string) (*entity.ProductImage, error) {
	img, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(img), nil
}

func (r *fakeImageRepo) GetPrimaryByProduct(_ context.Context, productID string) (*entity.ProductImage, error) {
	for _, img := range r.items {
		if img.ProductID == productID && img.IsPrimary {
			return r.resolve(img), nil
		}
	}
	return nil, nil
}

func (r *fakeImageRepo) Update(_ context.Context, img *entity.ProductImage) error {
	if img.IsPrimary {
		for id, existing := range r.items {
			if id != img.ID && existing.ProductID == img.ProductID && existing.IsPrimary {
				return domain.ErrConflict
			}
		}
	}
	cp := *img
	cp.Product = nil
	r.items[img.ID] = &cp
	return nil
}

func (r *fakeImageRepo) List(_ context.Context, limit, offset int) ([]*entity.ProductImage, int, error) {
	return r.listWhere(func(*entity.ProductImage) bool { return true }, limit, offset)
}

func (r *fakeImageRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.ProductImage, int, error) {
	return r.listWhere(func(img *entity.ProductImage) bool { return img.ProductID == productID }, limit, offset)
}

func (r *fakeImageRepo) listWhere(match func(*entity.ProductImage) bool, limit, offset int) ([]*entity.ProductImage, int, error) {
	var all []*entity.ProductImage
	for _, img := range r.items {
		if match(img) {
			all = append(all, r.resolve(img))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return pageOf(all, limit, offset), len(all), nil
}

func (r *fakeImageRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeImageRepo) DeleteByProduct(_ context.Context, productID string) error {
	for id, img := range r.items {
		if img.ProductID == productID {
			delete(r.items, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directo sobre los mismos fakes: el test
// unitario no valida aislamiento de transacciones, solo la secuencia lógica.
type fakeTxRunner struct {
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	images     *fakeImageRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	imageRepo repository.ProductImageRepository,
) error) error {
	return fn(t.categories, t.products, t.images)
}

func pageOf[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// newCatalogFakes arma el juego completo de fakes y los casos de uso sobre ellos.
func newCatalogFakes() (*CategoryUseCase, *ProductUseCase, *ProductImageUseCase, *CatalogUseCase) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo(categories)
	images := newFakeImageRepo(products)
	tx := &fakeTxRunner{categories: categories, products: products, images: images}
	return NewCategoryUseCase(categories, tx),
		NewProductUseCase(products, categories, tx),
		NewProductImageUseCase(images, products, tx),
		NewCatalogUseCase(categories, products, images)
}
