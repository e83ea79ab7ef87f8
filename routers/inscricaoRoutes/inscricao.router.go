package inscricaoRoutes

import (
	controllers "academia/controllers/inscricao"
	validators "academia/validators/inscricao"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupInscricaoRoutes wires the /inscricoes resource
func SetupInscricaoRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.NewInscricaoController(db)

	inscricoes := app.Group("/inscricoes")

	inscricoes.Get("/", validators.List(), ctrl.List)
	inscricoes.Get("/:id", validators.IDParam(), ctrl.Get)
	inscricoes.Post("/", validators.Create(), ctrl.Create)
	inscricoes.Put("/:id", validators.IDParam(), validators.Update(), ctrl.Update)
	inscricoes.Delete("/:id", validators.IDParam(), ctrl.Delete)
}
