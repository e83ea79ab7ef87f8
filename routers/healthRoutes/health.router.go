package healthRoutes

import (
	controllers "academia/controllers/health"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupHealthRoutes wires the liveness endpoint
func SetupHealthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.NewHealthController(db)

	app.Get("/health", ctrl.Check)
}
