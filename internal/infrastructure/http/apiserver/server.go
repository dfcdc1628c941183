// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/infrastructure/http/handlers"
	"github.com/novamoonx/demmi/internal/infrastructure/http/middleware"
	"github.com/novamoonx/demmi/internal/infrastructure/http/realtime"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/healthcheck"
)

// Services bundles the application services the server exposes
type Services struct {
	Meals       inbound.MealService
	Plans       inbound.MealPlanService
	Ingredients inbound.IngredientService
	Chat        inbound.ChatService
	Users       inbound.UserService
}

// Server is the JSON API HTTP server
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	router   *chi.Mux
	services Services
	tokens   outbound.TokenService
	hub      *realtime.Hub
	health   *healthcheck.HealthCheck
	registry *prometheus.Registry
}

// New creates a new API server instance
func New(
	cfg *config.Config,
	logger *zap.Logger,
	services Services,
	tokens outbound.TokenService,
	hub *realtime.Hub,
	health *healthcheck.HealthCheck,
	registry *prometheus.Registry,
) *Server {
	s := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
		tokens:   tokens,
		hub:      hub,
		health:   health,
		registry: registry,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	if s.config.RateLimit.Enable {
		r.Use(middleware.RateLimit(s.config.RateLimit))
	}
	if s.config.Monitoring.EnableMetrics {
		r.Use(middleware.NewMetrics(s.registry).Handler())
	}

	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())

	if s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", s.setupAPIV1Routes)

	return r
}

func (s *Server) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthHandlers(s.services.Users, s.logger)
	mealH := handlers.NewMealHandlers(s.services.Meals, s.logger)
	planH := handlers.NewMealPlanHandlers(s.services.Plans, s.logger)
	ingredientH := handlers.NewIngredientHandlers(s.services.Ingredients, s.logger)
	chatH := handlers.NewChatHandlers(s.services.Chat, s.logger)

	authenticate := middleware.Authenticate(s.tokens)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/google", authH.LoginWithGoogle)
		r.Post("/refresh", authH.Refresh)
		r.Get("/verify", authH.VerifyEmail)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/logout", authH.Logout)
			r.Post("/verify/resend", authH.ResendVerification)
			r.Get("/profile", authH.GetProfile)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/meals", func(r chi.Router) {
			r.Get("/", mealH.List)
			r.Post("/", mealH.Create)
			r.Get("/{id}", mealH.Get)
			r.Put("/{id}", mealH.Update)
			r.Delete("/{id}", mealH.Delete)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", planH.List)
			r.Post("/", planH.Create)
			r.Get("/calendar", planH.Calendar)
			r.Get("/{id}", planH.Get)
			r.Put("/{id}", planH.Update)
			r.Delete("/{id}", planH.Delete)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredientH.List)
			r.Post("/", ingredientH.Create)
			r.Get("/{id}", ingredientH.Get)
			r.Put("/{id}", ingredientH.Update)
			r.Delete("/{id}", ingredientH.Delete)
			r.Post("/{id}/products", ingredientH.AddProduct)
			r.Delete("/{id}/products/{productID}", ingredientH.RemoveProduct)
			r.Put("/{id}/products/{productID}/default", ingredientH.SetDefaultProduct)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/conversations", chatH.List)
			r.Get("/conversations/{id}", chatH.Get)
			r.Put("/conversations/{id}/title", chatH.Rename)
			r.Post("/conversations/{id}/pin", chatH.TogglePin)
			r.Delete("/conversations/{id}", chatH.Delete)
			r.Post("/messages", chatH.SendMessage)
			r.Get("/stream", s.hub.HandleWS)
		})
	})
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Router exposes the handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}
