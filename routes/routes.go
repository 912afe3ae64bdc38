package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"victorianails-backend/config"
	"victorianails-backend/controllers"
	"victorianails-backend/utils"
)

// Controllers groups the handler sets the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Appointments *controllers.AppointmentController
	Services     *controllers.ServiceController
	Dashboard    *controllers.DashboardController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctrl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", ctrl.Appointments.CreateAppointment)
			appointments.GET("", ctrl.Appointments.GetAppointments)
			appointments.GET("/:id", ctrl.Appointments.GetAppointment)
			appointments.PUT("/:id", ctrl.Appointments.UpdateAppointment)
			appointments.PUT("/:id/status", ctrl.Appointments.UpdateStatus)
			appointments.DELETE("/:id", ctrl.Appointments.DeleteAppointment)
		}

		// Service catalog routes
		services := api.Group("/services")
		{
			services.POST("", ctrl.Services.CreateService)
			services.GET("", ctrl.Services.GetServices)
			services.GET("/:id", ctrl.Services.GetService)
			services.PUT("/:id", ctrl.Services.UpdateService)
			services.DELETE("/:id", ctrl.Services.DeleteService)
		}

		// Dashboard routes
		api.GET("/dashboard", ctrl.Dashboard.GetDashboardOverview)
	}

	return r
}
