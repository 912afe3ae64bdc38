package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"victorianails-backend/config"
	"victorianails-backend/controllers"
	"victorianails-backend/routes"
	"victorianails-backend/services"
	"victorianails-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.InitLogger()
	defer func() { _ = config.Logger.Sync() }()

	storage, err := config.OpenStorage(os.Getenv("STORAGE_PATH"))
	if err != nil {
		config.Logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer func() { _ = storage.Close() }()
	config.Storage = storage

	appointments := store.NewAppointmentStore(storage, config.Logger)
	catalog := store.NewServiceCatalog(storage, config.Logger)

	auth, err := controllers.NewAuthController()
	if err != nil {
		config.Logger.Fatal("failed to set up login gate", zap.Error(err))
	}

	backup := services.NewBackupService(storage, config.Logger)
	if err := backup.StartScheduler(); err != nil {
		config.Logger.Fatal("failed to start backup scheduler", zap.Error(err))
	}
	defer backup.Stop()

	r := routes.SetupRouter(routes.Controllers{
		Auth:         auth,
		Appointments: &controllers.AppointmentController{Store: appointments},
		Services:     &controllers.ServiceController{Catalog: catalog},
		Dashboard:    &controllers.DashboardController{Store: appointments},
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
