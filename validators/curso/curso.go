package cursoValidator

import (
	"strings"
	"time"

	"academia/middleware"
	"academia/services"
	"academia/utils"

	"github.com/gofiber/fiber/v2"
)

func parseData(raw string) (time.Time, bool) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// IDParam validates the :id path parameter
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParseID(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID inválido.")
		}
		c.Locals("cursoID", id)
		return c.Next()
	}
}

// Create validates the curso creation payload
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Nome         string `json:"nome"`
			Descricao    string `json:"descricao"`
			CargaHoraria int    `json:"carga_horaria"`
			DataInicio   string `json:"data_inicio"`
			DataFim      string `json:"data_fim"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		errors := make(map[string][]string)

		reqData.Nome = strings.TrimSpace(reqData.Nome)
		if len(reqData.Nome) < 3 {
			errors["nome"] = append(errors["nome"], "Nome do curso é obrigatório.")
		}

		if reqData.CargaHoraria <= 0 {
			errors["carga_horaria"] = append(errors["carga_horaria"], "Carga horária deve ser um número positivo.")
		}

		inicio, okInicio := parseData(reqData.DataInicio)
		if !okInicio {
			errors["data_inicio"] = append(errors["data_inicio"], "Data de início inválida (formato ISO 8601 esperado).")
		}
		fim, okFim := parseData(reqData.DataFim)
		if !okFim {
			errors["data_fim"] = append(errors["data_fim"], "Data de fim inválida (formato ISO 8601 esperado).")
		}
		if okInicio && okFim && !fim.After(inicio) {
			errors["data_fim"] = append(errors["data_fim"], "A data de fim deve ser posterior à data de início.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCurso", services.CreateCursoInput{
			Nome:         reqData.Nome,
			Descricao:    strings.TrimSpace(reqData.Descricao),
			CargaHoraria: reqData.CargaHoraria,
			DataInicio:   inicio,
			DataFim:      fim,
		})
		return c.Next()
	}
}

// Update validates a partial curso payload. The date-order rule only runs
// when both dates are supplied; a lone date is checked against nothing here
// and lands as-is.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Nome         *string `json:"nome"`
			Descricao    *string `json:"descricao"`
			CargaHoraria *int    `json:"carga_horaria"`
			DataInicio   *string `json:"data_inicio"`
			DataFim      *string `json:"data_fim"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		errors := make(map[string][]string)
		data := services.UpdateCursoInput{}

		if reqData.Nome != nil {
			nome := strings.TrimSpace(*reqData.Nome)
			if len(nome) < 3 {
				errors["nome"] = append(errors["nome"], "Nome do curso é obrigatório.")
			}
			data.Nome = &nome
		}
		if reqData.Descricao != nil {
			descricao := strings.TrimSpace(*reqData.Descricao)
			data.Descricao = &descricao
		}
		if reqData.CargaHoraria != nil {
			if *reqData.CargaHoraria <= 0 {
				errors["carga_horaria"] = append(errors["carga_horaria"], "Carga horária deve ser um número positivo.")
			}
			data.CargaHoraria = reqData.CargaHoraria
		}
		if reqData.DataInicio != nil {
			inicio, ok := parseData(*reqData.DataInicio)
			if !ok {
				errors["data_inicio"] = append(errors["data_inicio"], "Data de início inválida (formato ISO 8601 esperado).")
			} else {
				data.DataInicio = &inicio
			}
		}
		if reqData.DataFim != nil {
			fim, ok := parseData(*reqData.DataFim)
			if !ok {
				errors["data_fim"] = append(errors["data_fim"], "Data de fim inválida (formato ISO 8601 esperado).")
			} else {
				data.DataFim = &fim
			}
		}
		if data.DataInicio != nil && data.DataFim != nil && !data.DataFim.After(*data.DataInicio) {
			errors["data_fim"] = append(errors["data_fim"], "A data de fim deve ser posterior à data de início.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCursoUpdate", data)
		return c.Next()
	}
}
