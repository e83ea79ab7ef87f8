package pessoaValidator

import (
	"regexp"
	"strings"

	"academia/middleware"
	"academia/services"
	"academia/utils"

	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = playground.New()

var cpfPattern = regexp.MustCompile(`^\d{11}$`)

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IDParam validates the :id path parameter
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParseID(c.Params("id"))
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID inválido.")
		}
		c.Locals("pessoaID", id)
		return c.Next()
	}
}

// Create validates the pessoa creation payload
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Nome  string `json:"nome"`
			Email string `json:"email"`
			CPF   string `json:"cpf"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		errors := make(map[string][]string)

		reqData.Nome = strings.TrimSpace(reqData.Nome)
		if len(reqData.Nome) < 3 {
			errors["nome"] = append(errors["nome"], "Nome deve ter no mínimo 3 caracteres")
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if !isValidEmail(reqData.Email) {
			errors["email"] = append(errors["email"], "Formato de e-mail inválido")
		}

		reqData.CPF = strings.TrimSpace(reqData.CPF)
		if !cpfPattern.MatchString(reqData.CPF) {
			errors["cpf"] = append(errors["cpf"], "CPF deve conter 11 dígitos.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPessoa", services.CreatePessoaInput{
			Nome:  reqData.Nome,
			Email: reqData.Email,
			CPF:   reqData.CPF,
		})
		return c.Next()
	}
}

// Update validates a partial pessoa payload; only supplied fields are checked
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Nome  *string `json:"nome"`
			Email *string `json:"email"`
			CPF   *string `json:"cpf"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		errors := make(map[string][]string)
		data := services.UpdatePessoaInput{}

		if reqData.Nome != nil {
			nome := strings.TrimSpace(*reqData.Nome)
			if len(nome) < 3 {
				errors["nome"] = append(errors["nome"], "Nome deve ter no mínimo 3 caracteres")
			}
			data.Nome = &nome
		}
		if reqData.Email != nil {
			email := strings.TrimSpace(*reqData.Email)
			if !isValidEmail(email) {
				errors["email"] = append(errors["email"], "Formato de e-mail inválido")
			}
			data.Email = &email
		}
		if reqData.CPF != nil {
			cpf := strings.TrimSpace(*reqData.CPF)
			if !cpfPattern.MatchString(cpf) {
				errors["cpf"] = append(errors["cpf"], "CPF deve conter 11 dígitos.")
			}
			data.CPF = &cpf
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPessoaUpdate", data)
		return c.Next()
	}
}
