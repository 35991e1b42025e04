package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
	"inventori/internal/handlers"
)

func SetupDashboardRouter(app *fiber.App, server *cmd.Server) {
	dashboardHandler := server.DashboardHandler
	app.Get("/dashboard", handlers.AuthRequired(server.AuthService), dashboardHandler.GetDashboard)
}
