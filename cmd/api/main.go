package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/core/auth"
	"taskboard-api/internal/core/cache"
	"taskboard-api/internal/core/config"
	"taskboard-api/internal/core/database"
	"taskboard-api/internal/core/logger"
	"taskboard-api/internal/core/server"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/repo"
	"taskboard-api/internal/service"
	"taskboard-api/internal/transport/http/handler"
	"taskboard-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Board{},
			&domain.Task{},
			&domain.Label{},
			&domain.Comment{},
			&domain.Collaborator{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 读缓存（可选）
	var c *cache.Cache
	if cfg.Cache.Enabled && cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Cache.TTLSec)*time.Second)
		defer c.Close()
		log.Info("cache enabled", zap.String("redis", cfg.Redis.Addr))
	}

	// 仓储在启动时构造一次，按引用注入服务，无全局注册表
	userRepo := repo.NewUserRepo(db)
	boardRepo := repo.NewBoardRepo(db)
	taskRepo := repo.NewTaskRepo(db)
	labelRepo := repo.NewLabelRepo(db)
	commentRepo := repo.NewCommentRepo(db)
	collabRepo := repo.NewCollaboratorRepo(db)

	h := router.Handlers{
		Users:         handler.NewUserHandler(service.NewUserService(userRepo, jwter)),
		Boards:        handler.NewBoardHandler(service.NewBoardService(boardRepo, userRepo, c)),
		Tasks:         handler.NewTaskHandler(service.NewTaskService(taskRepo, userRepo, boardRepo, labelRepo, c)),
		Labels:        handler.NewLabelHandler(service.NewLabelService(labelRepo)),
		Comments:      handler.NewCommentHandler(service.NewCommentService(commentRepo, userRepo, taskRepo)),
		Collaborators: handler.NewCollaboratorHandler(service.NewCollaboratorService(collabRepo, userRepo, boardRepo)),
	}

	r := router.NewAPIEngine(log, jwter, h)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("taskboard api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("taskboard api start FAILED", zap.Error(err))
		}
	}()
	log.Info("taskboard api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("taskboard api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
