// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"dental_clinic_api/internal/config"
	"dental_clinic_api/internal/handlers"
	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/repository"
	"dental_clinic_api/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// A plain text logger until the config decides the real handler.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", cfg.App.Name))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection. Everything is constructed here and passed down
	// explicitly; no package-level singletons.
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormRefreshTokenRepository()
	apptRepo := repository.NewGormAppointmentRepository()
	contactRepo := repository.NewGormContactRepository()

	dispatcher := service.NewMailDispatcher(service.NewMailer(cfg), cfg.App.FrontendURL, logger)
	defer dispatcher.Close()

	codeGen := service.NewCodeGenerator()
	tokenIssuer := service.NewTokenIssuer(cfg)

	authService := service.NewAuthService(db, userRepo, tokenRepo, codeGen, tokenIssuer, dispatcher)
	apptService := service.NewAppointmentService(db, apptRepo)
	contactService := service.NewContactService(db, contactRepo)

	authHandler := handlers.NewAuthHandler(authService)
	apptHandler := handlers.NewAppointmentHandler(apptService)
	contactHandler := handlers.NewContactHandler(contactService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/activate", authHandler.Activate)
			r.Post("/resend-activation", authHandler.ResendActivation)
			r.Post("/password/request-reset", authHandler.RequestPasswordReset)
			r.Post("/password/verify-code", authHandler.VerifyResetCode)
			r.Post("/password/reset", authHandler.ResetPassword)
			r.Post("/token/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})
		r.Post("/contact", contactHandler.Submit)
		r.Get("/dentists/{dentistID}/slots", apptHandler.ListOpenSlots)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(cfg))

			r.Get("/me", authHandler.GetMe)
			r.Put("/me", authHandler.UpdateMe)

			r.Post("/appointments", apptHandler.Book)
			r.Get("/appointments", apptHandler.ListMine)
			r.Delete("/appointments/{appointmentID}", apptHandler.Cancel)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleDentist))
				r.Post("/availability", apptHandler.CreateSlot)
				r.Get("/schedule", apptHandler.ListSchedule)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleAdmin))
				r.Get("/admin/users", authHandler.ListUsers)
				r.Get("/admin/contact", contactHandler.List)
			})
		})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}

// newLogger builds the application logger from the configured level, with
// a tint handler in dev and JSON otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
