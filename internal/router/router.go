package router

import (
	"time"

	"github.com/gin-gonic/gin"

	apptH "github.com/wizardXds/medicare/internal/handler/appointment"
	authH "github.com/wizardXds/medicare/internal/handler/auth"
	"github.com/wizardXds/medicare/internal/handler/health"
	hospitalH "github.com/wizardXds/medicare/internal/handler/hospital"
	messageH "github.com/wizardXds/medicare/internal/handler/message"
	paymentH "github.com/wizardXds/medicare/internal/handler/payment"
	prescriptionH "github.com/wizardXds/medicare/internal/handler/prescription"
	promH "github.com/wizardXds/medicare/internal/handler/prometheus"
	recordH "github.com/wizardXds/medicare/internal/handler/record"
	userH "github.com/wizardXds/medicare/internal/handler/user"
	"github.com/wizardXds/medicare/internal/middleware"
	"github.com/wizardXds/medicare/pkg/httputil"
)

// Handler registers a group of related routes.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	Timeout        time.Duration
	CacheEnabled   bool
	CacheTTL       time.Duration
	CORS           middleware.CORSConfig
}

type Handlers struct {
	User         *userH.Handler
	Hospital     *hospitalH.Handler
	Appointment  *apptH.Handler
	Record       *recordH.Handler
	Prescription *prescriptionH.Handler
	Message      *messageH.Handler
	Payment      *paymentH.Handler
	Auth         *authH.Handler
	Health       *health.Handler
	Prometheus   *promH.Handler
}

type Router struct {
	engine *gin.Engine
}

// New assembles the engine: recovery, request ids, logging, CORS, timeout
// and rate limiting ahead of every route, HTTP metrics over the whole
// chain, and a short response cache on the public directory routes.
func New(handlers Handlers, authMw *middleware.AuthMiddleware, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	httputil.RegisterTagNameFunc()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(handlers.Prometheus.Middleware())
	engine.Use(middleware.CORS(config.CORS))
	engine.Use(middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}))

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(limiter.RateLimit())

	root := engine.Group("")
	handlers.Health.RegisterRoutes(root)
	engine.GET("/metrics", handlers.Prometheus.Handler())

	api := engine.Group("/api")

	if config.CacheEnabled {
		cache := middleware.NewResponseCache(config.CacheTTL)
		cached := api.Group("", cache.Cache())
		cached.GET("/doctors", handlers.User.ListDoctors)
		cached.GET("/hospitals", handlers.Hospital.ListHospitals)
	} else {
		api.GET("/doctors", handlers.User.ListDoctors)
		api.GET("/hospitals", handlers.Hospital.ListHospitals)
	}

	api.GET("/hospitals/:id", handlers.Hospital.GetHospital)
	api.POST("/hospitals", handlers.Hospital.CreateHospital)
	api.PATCH("/hospitals/:id", handlers.Hospital.UpdateHospital)

	users := api.Group("/users")
	{
		users.GET("/:id", handlers.User.GetUser)
		users.PATCH("/:id", handlers.User.UpdateUser)
	}

	handlers.Appointment.RegisterRoutes(api)
	handlers.Record.RegisterRoutes(api)
	handlers.Prescription.RegisterRoutes(api)
	handlers.Message.RegisterRoutes(api)
	handlers.Payment.RegisterRoutes(api)
	handlers.Auth.RegisterRoutes(api, authMw)

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
