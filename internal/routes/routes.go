package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/inshape-booking/internal/audit"
	"github.com/BruksfildServices01/inshape-booking/internal/config"
	domain "github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
	"github.com/BruksfildServices01/inshape-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/inshape-booking/internal/infra/repository"
	"github.com/BruksfildServices01/inshape-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/inshape-booking/internal/usecase/booking"
)

// Deps are the long-lived clients built once in main.
type Deps struct {
	Calendar domain.Calendar
	Sheet    domain.Sheet
	Mailer   domain.Mailer // nil when EMAIL_PROVIDER=none
	Audit    *audit.Dispatcher
	DB       *gorm.DB // nil when DATABASE_URL is unset
	Location *time.Location
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(deps.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		deps.Calendar,
		deps.Sheet,
		deps.Mailer,
		deps.Audit,
		deps.Log,
		ucBooking.Settings{
			CalendarID:        cfg.CalendarID,
			Timezone:          cfg.Timezone,
			Location:          deps.Location,
			SpreadsheetID:     cfg.SpreadsheetID,
			SheetRange:        cfg.SheetRange,
			SourceLabel:       cfg.SourceLabel,
			TeamEmail:         cfg.TeamEmail,
			FromEmail:         cfg.FromEmail,
			EmailFailureFatal: cfg.EmailFailureFatal,
		},
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(createBookingUC, deps.Log)

	// ======================================================
	// 🌐 ROUTES
	// ======================================================
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)

	r.POST("/book", bookingHandler.Book)

	r.POST("/reschedule", handlers.Placeholder("Reschedule"))
	r.POST("/cancel", handlers.Placeholder("Cancel"))
	r.POST("/save-lead", handlers.Placeholder("Lead saved"))

	// ------------------------------
	// 🔐 ADMIN
	// ------------------------------
	if deps.DB != nil && cfg.AdminJWTSecret != "" {
		listAttemptsUC := ucBooking.NewListBookingAttempts(
			infraRepo.NewBookingAttemptGormRepository(deps.DB),
		)
		attemptsHandler := handlers.NewBookingAttemptsHandler(
			listAttemptsUC,
			deps.Location,
			deps.Log,
		)

		admin := r.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
		{
			admin.GET("/booking-attempts", attemptsHandler.List)
		}
	}
}
