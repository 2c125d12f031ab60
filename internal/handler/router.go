package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booth-booking/internal/domain/staff"
	"booth-booking/internal/handler/api"
	"booth-booking/internal/handler/middleware"
	"booth-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Holds        *api.HoldHandler
	Checkout     *api.CheckoutHandler
	GuestList    *api.GuestListHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, auth *middleware.AuthMiddleware, limiter middleware.RateLimiter) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, auth, limiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		availability := apiGroup.Group("/availability")
		addRoutes(availability, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.Grid},
			{Method: http.MethodGet, Path: "/booths", Handler: h.Availability.BoothsForSlot},
		})

		holds := apiGroup.Group("/holds")
		holds.Use(auth.RequireSession())
		{
			addRoutes(holds, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Holds.Create, Mw: []gin.HandlerFunc{middleware.RateLimit(limiter)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Holds.Get},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: h.Holds.Extend},
				{Method: http.MethodPost, Path: "/:id/release", Handler: h.Holds.Release},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(auth.RequireSession())
		addRoutes(checkout, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Checkout.Finalize},
		})

		apiGroup.GET("/bookings/:id/guests", h.GuestList.List)

		staffGroup := apiGroup.Group("/staff")
		staffGroup.Use(auth.RequireStaff(), auth.RequireRoleAtLeast(staff.RoleOperator))
		addRoutes(staffGroup, []route{
			{Method: http.MethodPost, Path: "/holds/:id/release", Handler: h.Holds.StaffRelease},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
