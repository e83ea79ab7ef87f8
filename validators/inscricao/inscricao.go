package inscricaoValidator

import (
	"strconv"
	"strings"

	"academia/middleware"
	"academia/services"
	"academia/utils"

	"github.com/gofiber/fiber/v2"
)

// IDParam validates the :id path parameter
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParseID(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID inválido.")
		}
		c.Locals("inscricaoID", id)
		return c.Next()
	}
}

// Create validates the enrollment payload: both referenced ids must be
// positive integers. Whether they exist is the service's guard, not ours.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PessoaID *int `json:"pessoaId"`
			CursoID  *int `json:"cursoId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		errors := make(map[string][]string)

		if reqData.PessoaID == nil || *reqData.PessoaID <= 0 {
			errors["pessoaId"] = append(errors["pessoaId"], "ID da pessoa inválido.")
		}
		if reqData.CursoID == nil || *reqData.CursoID <= 0 {
			errors["cursoId"] = append(errors["cursoId"], "ID do curso inválido.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInscricao", services.CreateInscricaoInput{
			PessoaID: uint(*reqData.PessoaID),
			CursoID:  uint(*reqData.CursoID),
		})
		return c.Next()
	}
}

// Update validates the mutable fields. Nota may arrive as a number or as a
// string with up to two decimal places; either way it must land in [0, 10].
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Ativo *bool       `json:"ativo"`
			Nota  interface{} `json:"nota"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		errors := make(map[string][]string)
		data := services.UpdateInscricaoInput{Ativo: reqData.Ativo}

		switch nota := reqData.Nota.(type) {
		case nil:
			// not supplied
		case float64:
			if nota < 0 || nota > 10 {
				errors["nota"] = append(errors["nota"], "Nota deve ser entre 0 e 10")
			} else {
				data.Nota = &nota
			}
		case string:
			parsed, err := utils.ParseNota(nota)
			if err != nil {
				errors["nota"] = append(errors["nota"], "Nota inválida (esperado 0 a 10 com até duas casas decimais).")
			} else {
				data.Nota = &parsed
			}
		default:
			errors["nota"] = append(errors["nota"], "Nota inválida (esperado 0 a 10 com até duas casas decimais).")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInscricaoUpdate", data)
		return c.Next()
	}
}

// List validates the optional ativo, cursoId and pessoaId query filters
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string][]string)
		filter := services.ListInscricoesFilter{}

		if raw := strings.TrimSpace(c.Query("ativo")); raw != "" {
			ativo, err := strconv.ParseBool(raw)
			if err != nil {
				errors["ativo"] = append(errors["ativo"], "Filtro ativo deve ser true ou false.")
			} else {
				filter.Ativo = &ativo
			}
		}
		if raw := strings.TrimSpace(c.Query("cursoId")); raw != "" {
			cursoID, err := utils.ParseID(raw)
			if err != nil {
				errors["cursoId"] = append(errors["cursoId"], "ID do curso inválido.")
			} else {
				filter.CursoID = &cursoID
			}
		}
		if raw := strings.TrimSpace(c.Query("pessoaId")); raw != "" {
			pessoaID, err := utils.ParseID(raw)
			if err != nil {
				errors["pessoaId"] = append(errors["pessoaId"], "ID da pessoa inválido.")
			} else {
				filter.PessoaID = &pessoaID
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("inscricaoFilter", filter)
		return c.Next()
	}
}
