package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/jaiganesh5555/arcade/internal/config"
	"github.com/jaiganesh5555/arcade/internal/handler"
	"github.com/jaiganesh5555/arcade/internal/middleware"
	"github.com/jaiganesh5555/arcade/internal/repository"
	"github.com/jaiganesh5555/arcade/internal/service"
	"github.com/jaiganesh5555/arcade/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	uploader, err := storage.NewS3Uploader(context.Background(), cfg)
	if err != nil {
		slog.Error("object storage client setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	demoRepo := repository.NewDemoRepository(db)
	demoService := service.NewDemoService(demoRepo)
	demoHandler := handler.NewDemoHandler(demoService)

	uploadHandler := handler.NewUploadHandler(uploader)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/signup", authHandler.HandleSignup)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/auth/me", authHandler.HandleMe)

		r.Post("/api/demos", demoHandler.HandleCreate)
		r.Get("/api/demos", demoHandler.HandleList)
		r.Get("/api/demos/{id}", demoHandler.HandleGet)
		r.Put("/api/demos/{id}", demoHandler.HandleUpdate)
		r.Delete("/api/demos/{id}", demoHandler.HandleDelete)

		r.Post("/api/upload-image", uploadHandler.HandleUploadImage)
	})

	// Optional prebuilt frontend bundle.
	if cfg.WebDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.WebDir)))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
