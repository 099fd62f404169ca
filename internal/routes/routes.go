package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"hospital-queue-server/internal/config"
	"hospital-queue-server/internal/handlers"
	"hospital-queue-server/internal/middleware"
	"hospital-queue-server/internal/queue"
	"hospital-queue-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, engine *queue.Engine, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	departmentHandler := handlers.NewDepartmentHandler(db, engine)
	queueHandler := handlers.NewQueueHandler(engine, store.NewAppointments(db))
	prescriptionHandler := handlers.NewPrescriptionHandler(db)

	// Public routes: reception desk and waiting-room displays
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)

		public.POST("/patients", patientHandler.RegisterPatient)
		public.GET("/patients/:id", patientHandler.GetPatient)

		public.GET("/departments", departmentHandler.GetDepartments)
		public.GET("/departments/:id/doctors", departmentHandler.GetDepartmentDoctors)

		public.POST("/appointments/book", queueHandler.BookAppointment)
		public.POST("/appointments/:id/cancel", queueHandler.CancelAppointment)
		public.GET("/appointments/:id/prescription", prescriptionHandler.GetPrescription)

		public.GET("/queue", queueHandler.GetQueue)
		public.GET("/stats/dashboard", queueHandler.GetDashboardStats)
	}

	// Doctor routes (session token required)
	doctor := router.Group("/api/v1")
	doctor.Use(middleware.DoctorAuthMiddleware(cfg))
	{
		doctor.GET("/auth/profile", authHandler.GetProfile)

		doctor.POST("/doctors/:id/call-next", queueHandler.CallNext)
		doctor.GET("/doctors/:id/queue", queueHandler.GetDoctorQueue)

		doctor.POST("/appointments/:id/complete", queueHandler.CompleteAppointment)
		doctor.POST("/appointments/:id/prescription", prescriptionHandler.SavePrescription)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
