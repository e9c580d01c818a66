package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/pixiapp/pixi-go/internal/config"
	"github.com/pixiapp/pixi-go/internal/handler"
	"github.com/pixiapp/pixi-go/internal/middleware"
	"github.com/pixiapp/pixi-go/internal/policy"
	"github.com/pixiapp/pixi-go/internal/repository"
	"github.com/pixiapp/pixi-go/internal/service"
	"github.com/pixiapp/pixi-go/internal/storage"
	"github.com/pixiapp/pixi-go/internal/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx := context.Background()
	client, err := repository.Connect(ctx, cfg.MongoURL)
	if err != nil {
		slog.Error("database connection failed", "url", cfg.MongoURL, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("database disconnect failed", "error", err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		slog.Error("creating indexes failed", "error", err)
		os.Exit(1)
	}
	pictureRepo := repository.NewPictureRepository(db)

	priv, pub, err := token.LoadKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath, cfg.Env != "production")
	if err != nil {
		slog.Error("loading key pair failed", "error", err)
		os.Exit(1)
	}
	codec := token.NewCodec(priv, pub, cfg.TokenExpiry)

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		slog.Error("preparing upload dir failed", "error", err)
		os.Exit(1)
	}

	pol := policy.New(cfg.LegacyAuthz)
	if cfg.LegacyAuthz {
		slog.Warn("legacy authorization mode enabled: ownership and admin checks are OFF")
	}

	authService := service.NewAuthService(userRepo, codec, pol)
	userService := service.NewUserService(userRepo, pol)
	pictureService := service.NewPictureService(pictureRepo, userRepo, files, pol)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, pictureService)
	pictureHandler := handler.NewPictureHandler(pictureService)
	adminHandler := handler.NewAdminHandler(userService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/user/register", authHandler.HandleRegister)
		r.Post("/api/user/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenCheck(codec))
		r.Get("/api/user/info", userHandler.HandleInfo)
		r.Put("/api/user/edit_info", userHandler.HandleEdit)
		r.Get("/api/user/pictures", userHandler.HandleOwnPictures)

		r.Post("/api/picture/upload", pictureHandler.HandleUpload)
		r.Delete("/api/picture/{pictureid}", pictureHandler.HandleDelete)

		r.Get("/api/admin/all_users", adminHandler.HandleAllUsers)
		r.Delete("/api/admin/user/{id}", adminHandler.HandleDeleteUser)
	})

	// Uploaded pictures are served statically, same as the upload dir layout.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(files.Dir()))))

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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
