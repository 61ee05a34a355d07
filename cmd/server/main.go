package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/johnzhangfit/verttracker/internal/api"
	"github.com/johnzhangfit/verttracker/internal/api/controller"
	"github.com/johnzhangfit/verttracker/internal/config"
	"github.com/johnzhangfit/verttracker/internal/infrastructure/database"
	"github.com/johnzhangfit/verttracker/internal/repository"
	"github.com/johnzhangfit/verttracker/internal/service"
)

// @title           VertTracker API
// @version         1.0
// @description     REST API for logging vertical-jump measurements and tracking progress.

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer <token>" (with a space between Bearer and the token)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	db := database.NewMySQLConnection(conf.Database.DSN)

	userRepo := repository.NewUserRepo(db)
	jumpRepo := repository.NewJumpRepo(db)

	authSvc := service.NewAuthService(userRepo)
	jumpSvc := service.NewJumpService(jumpRepo, userRepo)

	authCtrl := controller.NewAuthController(authSvc)
	jumpCtrl := controller.NewJumpController(jumpSvc)

	if conf.Server.Port != ":8080" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	api.RegisterRoutes(r, authCtrl, jumpCtrl)

	slog.Info("VertTracker starting", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
	}
}
