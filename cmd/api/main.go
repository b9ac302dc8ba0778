package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/inshape-booking/internal/audit"
	"github.com/BruksfildServices01/inshape-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/inshape-booking/internal/db"
	domain "github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
	"github.com/BruksfildServices01/inshape-booking/internal/infra/gworkspace"
	infraRepo "github.com/BruksfildServices01/inshape-booking/internal/infra/repository"
	"github.com/BruksfildServices01/inshape-booking/internal/logger"
	"github.com/BruksfildServices01/inshape-booking/internal/notification"
	"github.com/BruksfildServices01/inshape-booking/internal/routes"
)

const (
	shutdownTimeout   = 10 * time.Second
	auditDrainTimeout = 5 * time.Second
)

func main() {

	cfg := config.Load()

	zl, err := logger.NewZapLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	var cerr *config.ConfigurationError
	if err := cfg.Validate(); err != nil {
		if errors.As(err, &cerr) {
			zl.Fatal("refusing to start",
				zap.Strings("missing", cerr.Missing),
				zap.Strings("invalid", cerr.Invalid),
			)
		}
		zl.Fatal("refusing to start", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 COLLABORATORS
	// ======================================================
	sa, err := cfg.ServiceAccount()
	if err != nil {
		zl.Fatal("invalid google credentials", zap.Error(err))
	}
	googleHTTP := gworkspace.HTTPClient(context.Background(), sa)

	calendarClient, err := gworkspace.NewCalendarClient(ctx, option.WithHTTPClient(googleHTTP))
	if err != nil {
		zl.Fatal("calendar client", zap.Error(err))
	}
	sheetsClient, err := gworkspace.NewSheetsClient(ctx, option.WithHTTPClient(googleHTTP))
	if err != nil {
		zl.Fatal("sheets client", zap.Error(err))
	}

	loc, err := cfg.Location()
	if err != nil {
		zl.Fatal("invalid timezone", zap.Error(err))
	}

	mailer := newMailer(cfg)

	var db *gorm.DB
	var sink audit.Sink = audit.NewLogSink(zl)
	if cfg.AuditEnabled() {
		db = dbpkg.NewDB(cfg, zl)
		sink = audit.New(infraRepo.NewBookingAttemptGormRepository(db))
	}
	dispatcher := audit.NewDispatcher(sink, zl)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Calendar: calendarClient,
		Sheet:    sheetsClient,
		Mailer:   mailer,
		Audit:    dispatcher,
		DB:       db,
		Location: loc,
		Log:      zl,
	})
	zl.Info("admin api", zap.Bool("enabled", cfg.AdminEnabled()))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}

	// handlers still running past the deadline may dispatch late; those
	// attempts are dropped by the closed dispatcher
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), auditDrainTimeout)
	defer cancelDrain()

	if err := dispatcher.Close(drainCtx); err != nil {
		zl.Error("audit drain", zap.Error(err))
	}
}

// newMailer returns nil when notifications are disabled. The explicit nil
// return keeps the interface itself nil.
func newMailer(cfg *config.Config) domain.Mailer {
	if !cfg.EmailEnabled() {
		return nil
	}
	switch cfg.EmailProvider {
	case config.EmailProviderResend:
		return notification.NewResendMailer(cfg.ResendAPIKey)
	case config.EmailProviderSMTP:
		return notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort)
	default:
		return nil
	}
}
