package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tablemesa/restaurant-api/docs"
	"github.com/tablemesa/restaurant-api/internal/api/handler"
	"github.com/tablemesa/restaurant-api/internal/api/middleware"
	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
	"github.com/tablemesa/restaurant-api/internal/core/service"
	"github.com/tablemesa/restaurant-api/internal/infrastructure/config"
	mongodb "github.com/tablemesa/restaurant-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tablemesa/restaurant-api/internal/infrastructure/db/redis"
	"github.com/tablemesa/restaurant-api/internal/infrastructure/identity"
	"github.com/tablemesa/restaurant-api/internal/infrastructure/queue"
)

// route is one protected endpoint. An empty roles list means any authenticated
// user; restaurant marks endpoints that additionally require a restaurant
// affiliation. Guards run in order: authentication, role, restaurant scope.
type route struct {
	method     string
	path       string
	handler    echo.HandlerFunc
	roles      []domain.Role
	restaurant bool
}

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the webhook dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("restaurant"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	restaurantRepo := mongodb.NewRestaurantRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	shiftRepo := mongodb.NewShiftRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	campaignRepo := mongodb.NewCampaignRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db)
	cache := redisdb.NewCache(rdb)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Identity ---
	identityClient := identity.NewClient(cfg.Identity.APIURL, cfg.Identity.SecretKey, cfg.FrontendURL)
	verifiers := make([]ports.TokenVerifier, 0, 2)
	if cfg.Identity.SecretKey != "" && cfg.Identity.Issuer != "" {
		verifiers = append(verifiers, identity.NewProviderVerifier(cfg.Identity.Issuer))
	}
	verifiers = append(verifiers, identity.NewLegacyVerifier(cfg.JWTSecret))

	// --- Services ---
	resolver := service.NewPrincipalResolver(userRepo, restaurantRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	menuService := service.NewMenuService(menuRepo, cache, log)
	orderService := service.NewOrderService(orderRepo, menuRepo, cfg.TaxRate, log)
	teamService := service.NewTeamService(userRepo, identityClient, log)
	shiftService := service.NewShiftService(shiftRepo, userRepo)
	reservationService := service.NewReservationService(reservationRepo)
	campaignService := service.NewCampaignService(campaignRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	onboardingService := service.NewOnboardingService(restaurantRepo, userRepo, identityClient, log)
	webhookService := service.NewWebhookService(orderService, orderRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.Webhook.Workers, webhookService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)
	teamHandler := handler.NewTeamHandler(teamService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)
	webhookHandler := handler.NewWebhookHandler(dispatcher, log)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- Public routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/onboarding", onboardingHandler.Onboard)
	e.POST("/invitation/accept", onboardingHandler.AcceptInvitation)

	// Delivery platforms authenticate out of band; their callbacks are public.
	e.POST("/webhook/ubereats", webhookHandler.UberEats)
	e.POST("/webhook/doordash", webhookHandler.DoorDash)

	// --- Protected routes ---
	manager := []domain.Role{domain.RoleManager}
	authenticate := middleware.Authenticate(verifiers, resolver, log)

	routes := []route{
		{http.MethodGet, "/orders", orderHandler.List, nil, true},
		{http.MethodPost, "/orders", orderHandler.Create, []domain.Role{domain.RoleManager, domain.RoleChef, domain.RoleServer}, true},
		{http.MethodPut, "/orders/:id/status", orderHandler.UpdateStatus, nil, false},

		{http.MethodGet, "/menu", menuHandler.List, nil, true},
		{http.MethodPost, "/menu", menuHandler.Create, []domain.Role{domain.RoleManager, domain.RoleChef}, true},
		{http.MethodPut, "/menu/:id", menuHandler.Update, []domain.Role{domain.RoleManager, domain.RoleChef}, true},
		{http.MethodDelete, "/menu/:id", menuHandler.Delete, manager, true},

		{http.MethodGet, "/team", teamHandler.List, nil, true},
		{http.MethodPost, "/team", teamHandler.Invite, manager, true},
		{http.MethodPut, "/team/:userId", teamHandler.UpdateRole, manager, true},
		{http.MethodDelete, "/team/:userId", teamHandler.Remove, manager, true},

		{http.MethodGet, "/shifts", shiftHandler.List, nil, true},
		{http.MethodPost, "/shifts", shiftHandler.Create, manager, true},

		{http.MethodGet, "/reservations", reservationHandler.List, nil, true},
		{http.MethodPost, "/reservations", reservationHandler.Create, []domain.Role{domain.RoleManager, domain.RoleHost}, true},

		{http.MethodGet, "/campaigns", campaignHandler.List, manager, true},
		{http.MethodPost, "/campaigns", campaignHandler.Create, manager, true},
		{http.MethodGet, "/analytics", analyticsHandler.Recent, manager, true},
	}

	for _, r := range routes {
		guards := []echo.MiddlewareFunc{authenticate}
		if len(r.roles) > 0 {
			guards = append(guards, middleware.RequireRole(r.roles...))
		}
		if r.restaurant {
			guards = append(guards, middleware.RequireRestaurant())
		}
		e.Add(r.method, r.path, r.handler, guards...)
	}

	return e, dispatcher
}
