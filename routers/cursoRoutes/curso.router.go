package cursoRoutes

import (
	controllers "academia/controllers/curso"
	validators "academia/validators/curso"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCursoRoutes wires the /cursos resource
func SetupCursoRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.NewCursoController(db)

	cursos := app.Group("/cursos")

	cursos.Get("/", ctrl.List)
	cursos.Get("/:id", validators.IDParam(), ctrl.Get)
	cursos.Post("/", validators.Create(), ctrl.Create)
	cursos.Put("/:id", validators.IDParam(), validators.Update(), ctrl.Update)
	cursos.Delete("/:id", validators.IDParam(), ctrl.Delete)
}
