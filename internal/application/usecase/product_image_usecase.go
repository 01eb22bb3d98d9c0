package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductImageUseCase casos de uso para imágenes de producto. Mantiene el
// invariante de imagen primaria única: el demote de la primaria anterior y el
// promote de la nueva ocurren siempre dentro de una misma transacción.
type ProductImageUseCase struct {
	repo        repository.ProductImageRepository
	productRepo repository.ProductRepository
	tx          TxRunner
}

// NewProductImageUseCase construye el caso de uso.
func NewProductImageUseCase(repo repository.ProductImageRepository, productRepo repository.ProductRepository, tx TxRunner) *ProductImageUseCase {
	return &ProductImageUseCase{repo: repo, productRepo: productRepo, tx: tx}
}

// Create crea una imagen para un producto existente. FilePath (entregado por
// el colaborador de uploads) tiene prioridad sobre ImageURL; sin ninguno de
// los dos la entrada es inválida. Con IsPrimary=true, si el producto ya tiene
// una primaria la creación falla: crear nunca degrada una primaria existente.
func (uc *ProductImageUseCase) Create(ctx context.Context, in dto.CreateProductImageRequest) (*dto.ProductImageResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	imageURL := in.ImageURL
	if in.FilePath != "" {
		imageURL = in.FilePath
	}
	if imageURL == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.IsPrimary {
		existingPrimary, err := uc.repo.GetPrimaryByProduct(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if existingPrimary != nil {
			return nil, domain.ErrConflict
		}
	}
	now := time.Now()
	image := &entity.ProductImage{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		ImageURL:  imageURL,
		IsPrimary: in.IsPrimary,
		AltText:   in.AltText,
		Product:   product,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	return toProductImageResponse(image), nil
}

// GetByID obtiene una imagen por ID, con su producto resuelto.
func (uc *ProductImageUseCase) GetByID(ctx context.Context, id string) (*dto.ProductImageResponse, error) {
	image, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, domain.ErrNotFound
	}
	return toProductImageResponse(image), nil
}

// List devuelve una página de imágenes de todos los productos, junto al total.
func (uc *ProductImageUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductImageListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductImageListResponse(list, total, page), nil
}

// ListByProduct devuelve una página de imágenes de un producto. No verifica
// la existencia del producto: un producto desconocido da página vacía.
func (uc *ProductImageUseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) (*dto.ProductImageListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductImageListResponse(list, total, page), nil
}

// Update actualiza una imagen (parcial). ProductID presente reasigna la imagen
// a otro producto existente. IsPrimary=true degrada la primaria vigente del
// producto (si es otra imagen) dentro de la misma transacción: ambas
// escrituras se confirman juntas o ninguna.
func (uc *ProductImageUseCase) Update(ctx context.Context, id string, in dto.UpdateProductImageRequest) (*dto.ProductImageResponse, error) {
	var out *dto.ProductImageResponse
	err := uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		productRepo repository.ProductRepository,
		imageRepo repository.ProductImageRepository,
	) error {
		image, err := imageRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if image == nil {
			return domain.ErrNotFound
		}
		if in.ProductID != nil && *in.ProductID != image.ProductID {
			product, err := productRepo.GetByID(ctx, *in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			image.ProductID = *in.ProductID
			image.Product = product
		}
		if in.IsPrimary != nil && *in.IsPrimary {
			if err := demotePrimary(ctx, imageRepo, image.ProductID, image.ID); err != nil {
				return err
			}
		}
		if in.ImageURL != nil {
			if *in.ImageURL == "" {
				return domain.ErrInvalidInput
			}
			image.ImageURL = *in.ImageURL
		}
		if in.IsPrimary != nil {
			image.IsPrimary = *in.IsPrimary
		}
		if in.AltText != nil {
			image.AltText = *in.AltText
		}
		image.UpdatedAt = time.Now()
		if err := imageRepo.Update(ctx, image); err != nil {
			return err
		}
		out = toProductImageResponse(image)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetPrimary promueve una imagen a primaria de su producto, degradando la
// primaria vigente si es otra. Idempotente: repetir la llamada sobre la misma
// imagen deja el mismo estado sin error.
func (uc *ProductImageUseCase) SetPrimary(ctx context.Context, id string) (*dto.ProductImageResponse, error) {
	var out *dto.ProductImageResponse
	err := uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		_ repository.ProductRepository,
		imageRepo repository.ProductImageRepository,
	) error {
		image, err := imageRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if image == nil {
			return domain.ErrNotFound
		}
		if image.IsPrimary {
			out = toProductImageResponse(image)
			return nil
		}
		if err := demotePrimary(ctx, imageRepo, image.ProductID, image.ID); err != nil {
			return err
		}
		image.IsPrimary = true
		image.UpdatedAt = time.Now()
		if err := imageRepo.Update(ctx, image); err != nil {
			return err
		}
		out = toProductImageResponse(image)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una imagen. Borrar la primaria no promueve otra: el producto
// queda sin primaria hasta que se designe una explícitamente.
func (uc *ProductImageUseCase) Delete(ctx context.Context, id string) error {
	image, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if image == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// demotePrimary degrada la primaria vigente de un producto si existe y no es
// la imagen excluida. Debe llamarse con un repo atado a la transacción en
// curso: el índice único parcial exige que el demote preceda al promote.
func demotePrimary(ctx context.Context, imageRepo repository.ProductImageRepository, productID, excludeID string) error {
	current, err := imageRepo.GetPrimaryByProduct(ctx, productID)
	if err != nil {
		return err
	}
	if current == nil || current.ID == excludeID {
		return nil
	}
	current.IsPrimary = false
	current.UpdatedAt = time.Now()
	return imageRepo.Update(ctx, current)
}

func toProductImageResponse(img *entity.ProductImage) *dto.ProductImageResponse {
	if img == nil {
		return nil
	}
	return &dto.ProductImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		ImageURL:  img.ImageURL,
		IsPrimary: img.IsPrimary,
		AltText:   img.AltText,
		Product:   toProductResponse(img.Product),
		CreatedAt: img.CreatedAt,
		UpdatedAt: img.UpdatedAt,
	}
}

func toProductImageListResponse(list []*entity.ProductImage, total int, page dto.PageRequest) *dto.ProductImageListResponse {
	items := make([]dto.ProductImageResponse, 0, len(list))
	for _, img := range list {
		items = append(items, *toProductImageResponse(img))
	}
	return &dto.ProductImageListResponse{
		Items: items,
		Count: total,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
