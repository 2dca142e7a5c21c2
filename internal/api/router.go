package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/homeaid/care-portal/docs"
	"github.com/homeaid/care-portal/internal/api/handler"
	"github.com/homeaid/care-portal/internal/api/middleware"
	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
	"github.com/homeaid/care-portal/internal/core/service"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Screens    *service.ScreenRegistry
	Sessions   *service.SessionService
	Dashboards ports.DashboardService
	Schedule   ports.ScheduleService
	// Demo is nil when demo logins are disabled.
	Demo ports.DemoDirectory
	// Ready lists the backends checked by the readiness probe.
	Ready map[string]handler.Pinger

	Cookie        handler.CookieConfig
	LoginRate     float64
	Logger        zerolog.Logger
	EnableSwagger bool
}

// dashboardSubScreens are the action routes of each dashboard.
var dashboardSubScreens = map[domain.Role][]string{
	domain.RoleAdmin:    {"users", "settings", "finance", "audit", "clients", "caregivers", "analytics", "notifications"},
	domain.RoleManager:  {"clients", "caregivers", "schedule", "schedule/new", "quality", "reports", "communication", "assign"},
	domain.RoleProvider: {"start-visit", "end-visit", "report", "notes", "visit/:id"},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddleware("careportal"))
	e.Use(middleware.Session(deps.Sessions, deps.Cookie.Name))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Screens, deps.Demo, deps.Cookie)
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Cookie)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboards)
	scheduleHandler := handler.NewScheduleHandler(deps.Schedule)

	// --- Screens ---
	e.GET("/", handler.Landing)

	login := e.Group("/login", loginRateLimiter(deps.LoginRate))
	login.GET("", authHandler.Screen)
	login.POST("", authHandler.Login)
	login.POST("/screens", authHandler.OpenScreen)
	login.DELETE("/screens/:id", authHandler.CloseScreen)
	if deps.Demo != nil {
		login.POST("/demo/:role", authHandler.DemoLogin)
	}

	e.POST("/logout", sessionHandler.Logout)

	for _, role := range domain.Roles {
		base := "/" + string(role)
		e.GET(base, dashboardHandler.Show(role))

		sub := e.Group(base, middleware.RBAC(role))
		for _, path := range dashboardSubScreens[role] {
			sub.GET("/"+path, dashboardHandler.NotImplemented)
		}
		if role == domain.RoleProvider {
			sub.POST("/visits/:id/start", dashboardHandler.StartVisit)
		}
	}

	e.GET("/schedule", scheduleHandler.List)
	e.GET("/schedule/new", dashboardHandler.NotImplemented)
	e.GET("/schedule/:id", scheduleHandler.Get)

	// --- Operations ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Ready)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	if deps.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// loginRateLimiter limits login traffic per client IP.
func loginRateLimiter(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
