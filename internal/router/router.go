package router

import (
	"time"

	"github.com/gin-gonic/gin"

	authhandler "github.com/healthone/clinic-api/internal/handler/auth"
	"github.com/healthone/clinic-api/internal/handler/health"
	"github.com/healthone/clinic-api/internal/handler/prometheus"
	"github.com/healthone/clinic-api/internal/middleware"
)

const APIVersion = "1.0"

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// Resource is a handler mounted behind authentication. Clinical resources
// carry a name so that access to them is logged.
type Resource struct {
	Name    string
	Handler Handler
}

type Handlers struct {
	Auth      *authhandler.Handler
	Health    *health.Handler
	Metrics   *prometheus.Handler
	Resources []Resource
}

type RouterConfig struct {
	AllowOrigins   []string
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	// AuthRateLimit throttles signup and login per client IP. Nil disables it.
	AuthRateLimit *middleware.RateLimiterConfig
	Security      middleware.SecurityConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
	config   RouterConfig
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, config RouterConfig) *Router {
	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
		config:   config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorLogger(),
	)
	if handlers.Metrics != nil {
		engine.Use(handlers.Metrics.Middleware())
	}
	engine.Use(
		middleware.SecurityHeaders(config.Security),
		middleware.CORS(config.AllowOrigins),
		middleware.Compress(),
	)

	return r
}

func (r *Router) Setup() {
	r.setupOperationalRoutes()

	api := r.engine.Group("/api")
	api.Use(
		middleware.Version(APIVersion),
		middleware.NoStore(),
		middleware.SizeLimit(r.config.MaxBodyBytes),
		middleware.Timeout(r.config.RequestTimeout),
	)

	// Public routes
	public := api.Group("")
	if r.config.AuthRateLimit != nil {
		public.Use(middleware.NewRateLimiter(*r.config.AuthRateLimit).RateLimit())
	}
	r.handlers.Auth.RegisterPublicRoutes(public)

	// Protected routes
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.handlers.Auth.RegisterRoutes(protected)
	r.setupProtectedRoutes(protected)
}

func (r *Router) setupOperationalRoutes() {
	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(&r.engine.RouterGroup)
	}
	if r.handlers.Metrics != nil {
		r.engine.GET("/metrics", r.handlers.Metrics.Handler())
	}
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	for _, res := range r.handlers.Resources {
		group := rg
		if res.Name != "" {
			group = rg.Group("", middleware.AccessLog(res.Name))
		}
		res.Handler.RegisterRoutes(group)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
