package main

import (
	"log"

	"academia/config"
	"academia/database"
	cursoRoutes "academia/routers/cursoRoutes"
	healthRoutes "academia/routers/healthRoutes"
	inscricaoRoutes "academia/routers/inscricaoRoutes"
	pessoaRoutes "academia/routers/pessoaRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CorsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestid}\n",
	}))

	db := database.Database.Db
	pessoaRoutes.SetupPessoaRoutes(app, db)
	cursoRoutes.SetupCursoRoutes(app, db)
	inscricaoRoutes.SetupInscricaoRoutes(app, db)
	healthRoutes.SetupHealthRoutes(app, db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
