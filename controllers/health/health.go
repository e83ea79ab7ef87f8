package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthController answers liveness probes
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check handles GET /health and pings the database
func (ctrl *HealthController) Check(c *fiber.Ctx) error {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": "down",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "up",
	})
}
