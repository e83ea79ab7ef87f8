package controllers

import (
	"academia/middleware"
	"academia/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InscricaoController exposes the /inscricoes handlers
type InscricaoController struct {
	service *services.InscricaoService
}

func NewInscricaoController(db *gorm.DB) *InscricaoController {
	return &InscricaoController{service: services.NewInscricaoService(db)}
}

// List handles GET /inscricoes?ativo=&cursoId=&pessoaId=
func (ctrl *InscricaoController) List(c *fiber.Ctx) error {
	filter, ok := c.Locals("inscricaoFilter").(services.ListInscricoesFilter)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	inscricoes, err := ctrl.service.List(filter)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, inscricoes)
}

// Get handles GET /inscricoes/:id
func (ctrl *InscricaoController) Get(c *fiber.Ctx) error {
	id := c.Locals("inscricaoID").(uint)

	inscricao, err := ctrl.service.Get(id)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, inscricao)
}

// Create handles POST /inscricoes
func (ctrl *InscricaoController) Create(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedInscricao").(services.CreateInscricaoInput)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	inscricao, err := ctrl.service.Create(data)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, inscricao)
}

// Update handles PUT /inscricoes/:id
func (ctrl *InscricaoController) Update(c *fiber.Ctx) error {
	id := c.Locals("inscricaoID").(uint)
	data, ok := c.Locals("validatedInscricaoUpdate").(services.UpdateInscricaoInput)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Dados da requisição inválidos.")
	}

	inscricao, err := ctrl.service.Update(id, data)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, inscricao)
}

// Delete handles DELETE /inscricoes/:id
func (ctrl *InscricaoController) Delete(c *fiber.Ctx) error {
	id := c.Locals("inscricaoID").(uint)

	if err := ctrl.service.Delete(id); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
