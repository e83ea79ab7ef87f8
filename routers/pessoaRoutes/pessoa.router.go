package pessoaRoutes

import (
	controllers "academia/controllers/pessoa"
	validators "academia/validators/pessoa"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPessoaRoutes wires the /pessoas resource
func SetupPessoaRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.NewPessoaController(db)

	pessoas := app.Group("/pessoas")

	pessoas.Get("/", ctrl.List)
	pessoas.Get("/:id", validators.IDParam(), ctrl.Get)
	pessoas.Post("/", validators.Create(), ctrl.Create)
	pessoas.Put("/:id", validators.IDParam(), validators.Update(), ctrl.Update)
	pessoas.Delete("/:id", validators.IDParam(), ctrl.Delete)
}
