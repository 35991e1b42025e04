package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
	"inventori/internal/handlers"
)

func SetupAuthRouter(app *fiber.App, server *cmd.Server) {
	authHandler := server.AuthHandler
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/password", handlers.AuthRequired(server.AuthService), authHandler.ChangePassword)
}
