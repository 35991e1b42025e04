package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
	"inventori/internal/handlers"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	exportHandler := server.ExportHandler
	auth := handlers.AuthRequired(server.AuthService)
	app.Get("/boxes", auth, boxHandler.ListBoxes)
	app.Post("/boxes", auth, boxHandler.CreateBox)
	app.Get("/boxes/:id", auth, boxHandler.GetBoxByID)
	app.Put("/boxes/:id", auth, boxHandler.UpdateBox)
	app.Delete("/boxes/:id", auth, boxHandler.DeleteBox)
	app.Post("/boxes/:id/image", auth, boxHandler.UploadBoxImage)
	app.Get("/boxes/:id/export", auth, exportHandler.ExportBox)
}
