package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fathima-sithara/auth-service/internal/config"
	"github.com/fathima-sithara/auth-service/internal/database"
	"github.com/fathima-sithara/auth-service/internal/handlers"
	"github.com/fathima-sithara/auth-service/internal/middleware"
	"github.com/fathima-sithara/auth-service/internal/repository"
	"github.com/fathima-sithara/auth-service/internal/services"
	"github.com/fathima-sithara/auth-service/internal/utils"
)

type AppContext struct {
	Config       *config.Config
	Logger       *zap.Logger
	Sugar        *zap.SugaredLogger
	Mongo        *mongo.Client
	Redis        *redis.Client
	Handler      *handlers.Handler
	RequireAuth  fiber.Handler
	LoginLimiter fiber.Handler
}

type CleanupFn func(context.Context)

func Init(configPath string) (*AppContext, CleanupFn, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	var logger *zap.Logger
	if cfg.App.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	sugar := logger.Sugar()

	app := &AppContext{Config: cfg, Logger: logger, Sugar: sugar}
	sugar.Infof("Starting auth-service in %s environment", cfg.App.Env)

	var userRepo repository.UserRepository
	if cfg.Mongo.URI != "" {
		db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, cfg.MongoConnectTimeout, logger)
		if err != nil {
			return nil, nil, err
		}
		app.Mongo = mongoClient
		userRepo = repository.NewMongoUserRepo(db, cfg.Mongo.Collection, logger)
	} else {
		sugar.Warn("MONGO_URI not set, using in-memory user store. Data will not survive a restart.")
		userRepo = repository.NewMemoryUserRepo()
	}

	if cfg.Redis.Addr != "" {
		rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.RedisConnectTimeout, logger)
		if err != nil {
			return nil, nil, err
		}
		app.Redis = rdb
		limiter := middleware.NewRateLimiter(rdb, "login_rate", cfg.Security.LoginRateLimit, cfg.LoginRateWindow)
		app.LoginLimiter = limiter.MiddlewareByKey(func(c *fiber.Ctx) string { return c.IP() })
	} else {
		sugar.Warn("REDIS_ADDR not set, login rate limiting is disabled.")
	}

	sessions := utils.NewSessionManager(cfg.Session.Secret, cfg.SessionTTL)
	authSvc := services.NewAuthService(userRepo, sessions, cfg.Security.PasswordHashCost, logger)

	app.Handler = handlers.NewHandler(authSvc, handlers.CookieSettings{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure || cfg.App.Env != "development",
		TTL:    cfg.SessionTTL,
	}, logger)
	app.RequireAuth = middleware.RequireAuth(authSvc, cfg.Session.CookieName)

	return app, func(ctx context.Context) {
		if cerr := logger.Sync(); cerr != nil {
			log.Printf("Logger sync error: %v", cerr)
		}
		if app.Mongo != nil {
			if cerr := app.Mongo.Disconnect(ctx); cerr != nil {
				sugar.Errorf("MongoDB disconnect error: %v", cerr)
			}
		}
		if app.Redis != nil {
			if cerr := app.Redis.Close(); cerr != nil {
				sugar.Errorf("Redis client close error: %v", cerr)
			}
		}
	}, nil
}
