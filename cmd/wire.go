package cmd

import (
	"gorm.io/gorm"

	"inventori/internal/handlers"
	"inventori/internal/services"
)

type Server struct {
	DB               *gorm.DB
	AuthService      services.AuthService
	AuthHandler      *handlers.AuthHandler
	UserService      services.UserService
	UserHandler      *handlers.UserHandler
	BoxService       services.BoxService
	BoxHandler       *handlers.BoxHandler
	ItemService      services.ItemService
	ItemHandler      *handlers.ItemHandler
	DashboardService services.DashboardService
	DashboardHandler *handlers.DashboardHandler
	ExportService    services.ExportService
	ExportHandler    *handlers.ExportHandler
	ImageService     services.ImageService
	ImageHandler     *handlers.ImageHandler
	LogService       services.LogService
	JanitorService   *services.Janitor
}

func NewServer(
	db *gorm.DB,
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	userService services.UserService,
	userHandler *handlers.UserHandler,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	dashboardService services.DashboardService,
	dashboardHandler *handlers.DashboardHandler,
	exportService services.ExportService,
	exportHandler *handlers.ExportHandler,
	imageService services.ImageService,
	imageHandler *handlers.ImageHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		DB:               db,
		AuthService:      authService,
		AuthHandler:      authHandler,
		UserService:      userService,
		UserHandler:      userHandler,
		BoxService:       boxService,
		BoxHandler:       boxHandler,
		ItemService:      itemService,
		ItemHandler:      itemHandler,
		DashboardService: dashboardService,
		DashboardHandler: dashboardHandler,
		ExportService:    exportService,
		ExportHandler:    exportHandler,
		ImageService:     imageService,
		ImageHandler:     imageHandler,
		LogService:       logService,
		JanitorService:   janitorService,
	}
}
