package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/usecase"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// SaleHandler ventas (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  El total debe coincidir con la suma de cantidad × precio unitario de los ítems.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleInput  true  "Venta"
// @Success      201   {object}  dto.APIResponse[entity.Sale]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, *out, "Sale created successfully")
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[[]entity.Sale]
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []entity.Sale{}
	}
	return respond(c, fiber.StatusOK, out, "Sales retrieved successfully")
}

// PurchaseHandler compras a proveedores (protegido).
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseInput  true  "Compra"
// @Success      201   {object}  dto.APIResponse[entity.Purchase]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, *out, "Purchase created successfully")
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[[]entity.Purchase]
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []entity.Purchase{}
	}
	return respond(c, fiber.StatusOK, out, "Purchases retrieved successfully")
}
