package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
)

func SetupImageRouter(app *fiber.App, server *cmd.Server) {
	imageHandler := server.ImageHandler
	app.Get("/images/*", imageHandler.GetImage)
}
