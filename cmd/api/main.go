package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	myPostgres "github.com/vmalgo/researchlab/internal/adapters/db/postgres"
	myRedis "github.com/vmalgo/researchlab/internal/adapters/db/redis"
	httptransport "github.com/vmalgo/researchlab/internal/adapters/transport/http"
	"github.com/vmalgo/researchlab/internal/adapters/transport/http/middleware"
	"github.com/vmalgo/researchlab/internal/app/auth/jwt"
	"github.com/vmalgo/researchlab/internal/app/auth/password"
	"github.com/vmalgo/researchlab/internal/app/auth/service"
	"github.com/vmalgo/researchlab/internal/infra/config"
	lg "github.com/vmalgo/researchlab/internal/infra/log"
	"github.com/vmalgo/researchlab/internal/infra/migrate"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	redisCli := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisCli.Close()

	validate := validator.New()

	userRepo := myPostgres.NewUserRepo(db)
	strategyRepo := myPostgres.NewStrategyRepo(db)
	tokenRepo := myRedis.NewTokenRepo(redisCli)
	codec := jwt.NewCodec(cfg)
	hasher := password.NewHasher(cfg.PasswordPepper)
	svc := service.New(userRepo, tokenRepo, codec, hasher, cfg, validate)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zapLog))
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimitPerIP(50, 100, 10_000, time.Hour))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	handler := httptransport.NewHandler(svc, strategyRepo, zapLog)
	handler.Routes(router)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
