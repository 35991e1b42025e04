//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"inventori/cmd"
	"inventori/database"
	"inventori/internal/config"
	"inventori/internal/handlers"
	"inventori/internal/repository"
	"inventori/internal/services"
	"inventori/internal/storage"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("inventori.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		Provider,
		database.SetupDatabase,
		storage.NewStore,
		repository.NewUserRepository,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		services.NewLogService,
		services.NewImageService,
		services.NewAuthService,
		services.NewUserService,
		services.NewBoxService,
		services.NewItemService,
		services.NewDashboardService,
		services.NewExportService,
		services.NewJanitorService,
		handlers.NewAuthHandler,
		handlers.NewUserHandler,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewDashboardHandler,
		handlers.NewExportHandler,
		handlers.NewImageHandler,
	)
	return nil, nil
}
