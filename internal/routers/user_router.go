package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
	"inventori/internal/handlers"
)

func SetupUserRouter(app *fiber.App, server *cmd.Server) {
	userHandler := server.UserHandler
	auth := handlers.AuthRequired(server.AuthService)
	app.Get("/profile", auth, userHandler.GetProfile)
	app.Put("/profile", auth, userHandler.UpdateProfile)
	app.Post("/profile/picture", auth, userHandler.UploadProfilePicture)
}
