package routers

import (
	"github.com/gofiber/fiber/v2"

	"inventori/cmd"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupAuthRouter(app, server)
	SetupDashboardRouter(app, server)
	SetupBoxRouter(app, server)
	SetupItemRouter(app, server)
	SetupUserRouter(app, server)
	SetupImageRouter(app, server)
	SetupJanitorRouter(app, server)
}
