package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ProductImageHandler maneja las peticiones HTTP para ProductImage. El guardado
// de archivos es responsabilidad del colaborador de uploads: acá solo llegan
// rutas (file_path) o URLs (image_url).
type ProductImageHandler struct {
	uc *usecase.ProductImageUseCase
}

// NewProductImageHandler construye el handler.
func NewProductImageHandler(uc *usecase.ProductImageUseCase) *ProductImageHandler {
	return &ProductImageHandler{uc: uc}
}

// Create crea una imagen para un producto existente.
func (h *ProductImageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista imágenes de todos los productos.
func (h *ProductImageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct lista imágenes de un producto. Un producto desconocido
// devuelve página vacía.
func (h *ProductImageHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.UserContext(), c.Params("productId"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una imagen por ID.
func (h *ProductImageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una imagen (parcial). is_primary=true degrada la primaria
// vigente del producto en la misma operación.
func (h *ProductImageHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPrimary promueve una imagen a primaria de su producto.
func (h *ProductImageHandler) SetPrimary(c *fiber.Ctx) error {
	out, err := h.uc.SetPrimary(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una imagen. No promueve otra en su lugar.
func (h *ProductImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "imagen eliminada"})
}
