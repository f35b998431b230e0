package main

import (
	"os"

	"github.com/beautix-tech/admin-panel/internal/app"
	config "github.com/beautix-tech/admin-panel/internal/cfg"
	"github.com/beautix-tech/admin-panel/pkg/logger"
)

//	@title			Beautix Admin Panel API
//	@version		1.0
//	@description	JSON API панели администрирования: загрузка изображений для форм продуктов и категорий.

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
