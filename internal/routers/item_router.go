package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
	"inventori/internal/handlers"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	auth := handlers.AuthRequired(server.AuthService)
	app.Get("/boxes/:boxId/items", auth, itemHandler.ListItems)
	app.Post("/boxes/:boxId/items", auth, itemHandler.CreateItem)
	app.Get("/boxes/:boxId/items/:id", auth, itemHandler.GetItemByID)
	app.Put("/boxes/:boxId/items/:id", auth, itemHandler.UpdateItem)
	app.Delete("/boxes/:boxId/items/:id", auth, itemHandler.DeleteItem)
	app.Post("/boxes/:boxId/items/:id/image", auth, itemHandler.UploadItemImage)
}
