package controllers

import (
	"academia/middleware"
	"academia/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PessoaController exposes the /pessoas handlers
type PessoaController struct {
	service *services.PessoaService
}

func NewPessoaController(db *gorm.DB) *PessoaController {
	return &PessoaController{service: services.NewPessoaService(db)}
}

// List handles GET /pessoas
func (ctrl *PessoaController) List(c *fiber.Ctx) error {
	pessoas, err := ctrl.service.List()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, pessoas)
}

// Get handles GET /pessoas/:id
func (ctrl *PessoaController) Get(c *fiber.Ctx) error {
	id := c.Locals("pessoaID").(uint)

	pessoa, err := ctrl.service.Get(id)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, pessoa)
}

// Create handles POST /pessoas
func (ctrl *PessoaController) Create(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedPessoa").(services.CreatePessoaInput)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	pessoa, err := ctrl.service.Create(data)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, pessoa)
}

// Update handles PUT /pessoas/:id
func (ctrl *PessoaController) Update(c *fiber.Ctx) error {
	id := c.Locals("pessoaID").(uint)
	data, ok := c.Locals("validatedPessoaUpdate").(services.UpdatePessoaInput)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	pessoa, err := ctrl.service.Update(id, data)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, pessoa)
}

// Delete handles DELETE /pessoas/:id
func (ctrl *PessoaController) Delete(c *fiber.Ctx) error {
	id := c.Locals("pessoaID").(uint)

	if err := ctrl.service.Delete(id); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
