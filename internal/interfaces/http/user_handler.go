package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-minorista/internal/application/navigation"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

// UserHandler usuarios (solo Administrador) y menú por rol.
type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[[]entity.User]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.repo.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []entity.User{}
	}
	return respond(c, fiber.StatusOK, out, "Users retrieved successfully")
}

// Navigation godoc
// @Summary      Menú lateral para el rol del token
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse[[]navigation.Item]
// @Router       /api/navigation [get]
func (h *UserHandler) Navigation(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, navigation.ForRole(GetRole(c)), "Navigation retrieved successfully")
}
