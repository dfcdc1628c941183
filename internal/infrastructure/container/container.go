// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	chatapp "github.com/novamoonx/demmi/internal/application/chat"
	"github.com/novamoonx/demmi/internal/application/ingredient"
	"github.com/novamoonx/demmi/internal/application/meal"
	"github.com/novamoonx/demmi/internal/application/mealplan"
	"github.com/novamoonx/demmi/internal/application/user"
	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/infrastructure/email"
	"github.com/novamoonx/demmi/internal/infrastructure/http/apiserver"
	"github.com/novamoonx/demmi/internal/infrastructure/http/realtime"
	gormRepo "github.com/novamoonx/demmi/internal/infrastructure/persistence/gorm"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/memory"
	redisRepo "github.com/novamoonx/demmi/internal/infrastructure/persistence/redis"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/seed"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/sqlite"
	"github.com/novamoonx/demmi/internal/infrastructure/security"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/healthcheck"
	"github.com/novamoonx/demmi/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	SecurityModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// Storage bundles the selected persistence backend. The database
// handle is nil in memory mode.
type Storage struct {
	Meals         outbound.MealRepository
	Plans         outbound.MealPlanRepository
	Ingredients   outbound.IngredientRepository
	Conversations outbound.ConversationRepository
	Users         outbound.UserRepository
	Cache         outbound.CacheRepository

	db          *gorm.DB
	redisClient *redis.Client
	closers     []func() error
}

// Close releases database and cache resources
func (s *Storage) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// DB exposes the gorm handle for health checks; nil in memory mode
func (s *Storage) DB() *gorm.DB {
	return s.db
}

// Redis exposes the redis connection for health checks; nil when the
// in-memory cache is selected
func (s *Storage) Redis() *redis.Client {
	return s.redisClient
}

// NewStorage selects the persistence backend from configuration
func NewStorage(cfg *config.Config, log *zap.Logger) (*Storage, error) {
	s := &Storage{}

	switch cfg.Database.Driver {
	case "memory":
		meals := memory.NewMealRepository()
		plans := memory.NewMealPlanRepository()
		ingredients := memory.NewIngredientRepository()
		conversations := memory.NewConversationRepository()

		s.Meals = meals
		s.Plans = plans
		s.Ingredients = ingredients
		s.Conversations = conversations
		s.Users = memory.NewUserRepository()

		if cfg.Database.SeedDemoData {
			if err := seed.Demo(context.Background(), meals, plans, ingredients, conversations); err != nil {
				return nil, fmt.Errorf("failed to seed demo data: %w", err)
			}
		}
		log.Info("Using in-memory persistence")

	case "sqlite":
		// An explicit database log level wins; otherwise debug mode decides.
		logLevel := gormLogger.Silent
		switch cfg.Database.LogLevel {
		case "info":
			logLevel = gormLogger.Info
		case "warn":
			logLevel = gormLogger.Warn
		case "error":
			logLevel = gormLogger.Error
		default:
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
		}

		db, err := sqlite.SetupDatabase(cfg.Database, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}
		s.db = db
		s.closers = append(s.closers, func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})

		if cfg.Database.SeedDemoData {
			if err := sqlite.SeedDatabase(context.Background(), db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		s.Meals = gormRepo.NewMealRepository(db)
		s.Plans = gormRepo.NewMealPlanRepository(db)
		s.Ingredients = gormRepo.NewIngredientRepository(db)
		s.Conversations = gormRepo.NewConversationRepository(db)
		s.Users = gormRepo.NewUserRepository(db)

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("in_memory", cfg.Database.Path == ""),
		)

	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}

	if cfg.Redis.Enabled {
		cache, err := redisRepo.NewCacheRepository(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.Cache = cache
		s.redisClient = cache.Client()
		s.closers = append(s.closers, cache.Close)
		log.Info("Connected to Redis cache", zap.String("addr", cfg.RedisAddr()))
	} else {
		cache := memory.NewCacheRepository()
		s.Cache = cache
		s.closers = append(s.closers, cache.Close)
		log.Info("Using in-memory cache")
	}

	return s, nil
}

// StorageModule provides the persistence backend and its repositories
var StorageModule = fx.Provide(
	NewStorage,
	func(s *Storage) outbound.MealRepository { return s.Meals },
	func(s *Storage) outbound.MealPlanRepository { return s.Plans },
	func(s *Storage) outbound.IngredientRepository { return s.Ingredients },
	func(s *Storage) outbound.ConversationRepository { return s.Conversations },
	func(s *Storage) outbound.UserRepository { return s.Users },
	func(s *Storage) outbound.CacheRepository { return s.Cache },
)

// SecurityModule provides token issuing, password hashing, identity
// verification and outbound mail
var SecurityModule = fx.Provide(
	func(cfg *config.Config, cache outbound.CacheRepository, log *zap.Logger) outbound.TokenService {
		return security.NewTokenService(cfg, cache, log)
	},
	func(cfg *config.Config) outbound.PasswordHasher {
		return security.NewBcryptHasher(cfg.Auth.BCryptCost)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.IdentityVerifier {
		return security.NewGoogleVerifier(cfg, log)
	},
	email.NewMailer,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(cfg *config.Config) *chat.Responder {
		return chat.NewResponder(cfg.Chat.ResponderSeed)
	},
	realtime.NewHub,
	func(hub *realtime.Hub) outbound.ReplyPublisher { return hub },

	meal.NewMealService,
	mealplan.NewMealPlanService,
	ingredient.NewIngredientService,
	user.NewUserService,

	func(
		conversations outbound.ConversationRepository,
		publisher outbound.ReplyPublisher,
		responder *chat.Responder,
		cfg *config.Config,
		log *zap.Logger,
	) *chatapp.ChatService {
		return chatapp.NewChatService(conversations, publisher, responder, cfg.Chat.ReplyDelay, log)
	},
	func(svc *chatapp.ChatService) inbound.ChatService { return svc },
)

// HTTPModule provides the HTTP server, health checks and metrics
var HTTPModule = fx.Provide(
	func() *prometheus.Registry {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return registry
	},

	func(cfg *config.Config, storage *Storage, log *zap.Logger) *healthcheck.HealthCheck {
		health := healthcheck.New(cfg.App.Version, log)
		if db := storage.DB(); db != nil {
			health.Register("database", healthcheck.NewDatabaseChecker(db))
		}
		if client := storage.Redis(); client != nil {
			health.Register("redis", healthcheck.NewRedisChecker(client))
		}
		return health
	},

	func(
		meals inbound.MealService,
		plans inbound.MealPlanService,
		ingredients inbound.IngredientService,
		chatSvc inbound.ChatService,
		users inbound.UserService,
	) apiserver.Services {
		return apiserver.Services{
			Meals:       meals,
			Plans:       plans,
			Ingredients: ingredients,
			Chat:        chatSvc,
			Users:       users,
		}
	},

	apiserver.New,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(RegisterLifecycleHooks)

// RegisterLifecycleHooks starts the HTTP server and tears everything
// down in reverse dependency order on shutdown
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	storage *Storage,
	chatService *chatapp.ChatService,
	hub *realtime.Hub,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			cfg.Watch(func(updated *config.Config, err error) {
				if err != nil {
					log.Warn("Ignoring invalid config change", zap.Error(err))
					return
				}
				log.Info("Configuration reloaded",
					zap.String("log_level", updated.App.LogLevel),
				)
			})

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}
			if err := chatService.Close(); err != nil {
				log.Error("Failed to close chat service", zap.Error(err))
			}
			if err := hub.Close(); err != nil {
				log.Error("Failed to close realtime hub", zap.Error(err))
			}
			if err := storage.Close(); err != nil {
				log.Error("Failed to close storage", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}
