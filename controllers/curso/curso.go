package controllers

import (
	"strings"

	"academia/middleware"
	"academia/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CursoController exposes the /cursos handlers
type CursoController struct {
	service *services.CursoService
}

func NewCursoController(db *gorm.DB) *CursoController {
	return &CursoController{service: services.NewCursoService(db)}
}

// List handles GET /cursos?nome=
func (ctrl *CursoController) List(c *fiber.Ctx) error {
	cursos, err := ctrl.service.List(strings.TrimSpace(c.Query("nome")))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, cursos)
}

// Get handles GET /cursos/:id, returning the curso with its inscricoes
func (ctrl *CursoController) Get(c *fiber.Ctx) error {
	id := c.Locals("cursoID").(uint)

	curso, err := ctrl.service.Get(id)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, curso)
}

// Create handles POST /cursos
func (ctrl *CursoController) Create(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedCurso").(services.CreateCursoInput)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	curso, err := ctrl.service.Create(data)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, curso)
}

// Update handles PUT /cursos/:id
func (ctrl *CursoController) Update(c *fiber.Ctx) error {
	id := c.Locals("cursoID").(uint)
	data, ok := c.Locals("validatedCursoUpdate").(services.UpdateCursoInput)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	curso, err := ctrl.service.Update(id, data)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, curso)
}

// Delete handles DELETE /cursos/:id
func (ctrl *CursoController) Delete(c *fiber.Ctx) error {
	id := c.Locals("cursoID").(uint)

	if err := ctrl.service.Delete(id); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
