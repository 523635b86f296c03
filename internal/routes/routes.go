package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/audit"
	"github.com/onligro/salon-scheduler/internal/config"
	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/handlers"
	infraRepo "github.com/onligro/salon-scheduler/internal/infra/repository"
	"github.com/onligro/salon-scheduler/internal/middleware"
	ucBooking "github.com/onligro/salon-scheduler/internal/usecase/booking"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// gin engine. The notifier is owned by main since it holds the redis
// connection.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier domain.Notifier, auditDispatcher *audit.Dispatcher) {

	r.Use(middleware.CORSMiddleware())

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ------------------------------
	// USE CASES
	// ------------------------------
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, notifier, auditDispatcher)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(bookingRepo, notifier, auditDispatcher)
	deleteAppointmentUC := ucBooking.NewDeleteAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointmentsByDate(bookingRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	ownerHandler := handlers.NewOwnerHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	slotHandler := handlers.NewSlotHandler(availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createAppointmentUC)

	// ------------------------------
	// PUBLIC API
	// ------------------------------
	public := r.Group("/public")
	{
		public.GET("/salons", publicHandler.ListSalons)
		public.GET("/salons/:id", publicHandler.GetSalon)
		public.GET("/services/:salonId", publicHandler.ServicesBySalon)
		public.GET("/working-hours/:salonId", publicHandler.WorkingHoursBySalon)
		public.POST("/slots", publicHandler.Slots)
		public.POST("/appointments/create", publicHandler.CreateAppointment)
		public.GET("/appointments/:reference", publicHandler.GetAppointment)
	}

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ------------------------------
	// OWNER API (JWT)
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/auth/verify", authHandler.Verify)
		secured.GET("/owner/profile", ownerHandler.Profile)

		secured.POST("/salon/create", salonHandler.Create)
		secured.GET("/salon/my-salon", salonHandler.MySalon)
		secured.PUT("/salon/update", salonHandler.Update)

		secured.POST("/staff/add", staffHandler.Add)
		secured.GET("/staff/all", staffHandler.List)
		secured.DELETE("/staff/delete/:id", staffHandler.Delete)

		secured.POST("/service/add", serviceHandler.Add)
		secured.GET("/service/all", serviceHandler.List)
		secured.DELETE("/service/delete/:id", serviceHandler.Delete)

		secured.POST("/hours/set", workingHoursHandler.Set)
		secured.GET("/hours/get", workingHoursHandler.Get)

		secured.POST("/slots/available", slotHandler.Available)

		secured.POST("/appointments/create", appointmentHandler.Create)
		secured.GET("/appointments/all", appointmentHandler.All)
		secured.GET("/appointments/by-date", appointmentHandler.ByDate)
		secured.POST("/appointments/cancel/:id", appointmentHandler.Cancel)
		secured.DELETE("/appointments/delete/:id", appointmentHandler.Delete)
	}
}
