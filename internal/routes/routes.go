package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huellitas-app/petcare-api/internal/audit"
	"github.com/huellitas-app/petcare-api/internal/cache"
	"github.com/huellitas-app/petcare-api/internal/calendar"
	"github.com/huellitas-app/petcare-api/internal/config"
	"github.com/huellitas-app/petcare-api/internal/handlers"
	infraRepo "github.com/huellitas-app/petcare-api/internal/infra/repository"
	"github.com/huellitas-app/petcare-api/internal/middleware"
	"github.com/huellitas-app/petcare-api/internal/storage"
	ucAppointment "github.com/huellitas-app/petcare-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	calendarMirror := calendar.NewGoogleMirror()
	statsCache := cache.New(cfg)
	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		calendarMirror,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		calendarMirror,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		calendarMirror,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointmentsForUser(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	petHandler := handlers.NewPetHandler(db, auditDispatcher)
	petPhotoHandler := handlers.NewPetPhotoHandler(db, photoStore)

	productHandler := handlers.NewProductHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	statsHandler := handlers.NewStatsHandler(db, statsCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/categories", categoryHandler.List)
		api.GET("/appointments/slots", appointmentHandler.Slots)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/google", authHandler.GoogleSignIn)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PETS
			// ------------------------------
			secured.GET("/me/pets", petHandler.ListMine)
			secured.POST("/me/pets", petHandler.Create)
			secured.PATCH("/me/pets/:id", petHandler.Update)
			secured.DELETE("/me/pets/:id", petHandler.Delete)
			secured.POST("/me/pets/:id/photo", petPhotoHandler.Upload)

			// Vista de staff del dashboard
			secured.GET("/pets", petHandler.ListAll)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CATÁLOGO (mutaciones)
			// ------------------------------
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			secured.POST("/categories", categoryHandler.Create)
			secured.PATCH("/categories/:id", categoryHandler.Update)
			secured.DELETE("/categories/:id", categoryHandler.Delete)

			// ------------------------------
			// INVENTARIO
			// ------------------------------
			secured.GET("/inventory", inventoryHandler.ListByBranch)
			secured.POST("/inventory", inventoryHandler.Create)
			secured.PATCH("/inventory/:id", inventoryHandler.Update)
			secured.DELETE("/inventory/:id", inventoryHandler.Delete)

			// ------------------------------
			// STATS / AUDIT
			// ------------------------------
			secured.GET("/stats/overview", statsHandler.Overview)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
