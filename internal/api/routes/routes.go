package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"frota-backend/internal/api/handlers"
	"frota-backend/internal/api/middleware"
	"frota-backend/internal/config"
	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/internal/services"
	"frota-backend/pkg/cache"
	"frota-backend/pkg/geocode"
	"frota-backend/pkg/jwt"
	"frota-backend/pkg/ratelimit"
)

// Permissions is the route-level access table. Routes absent from the
// table are open to any authenticated caller; listed routes require one
// of the named roles, with no implicit hierarchy.
var Permissions = middleware.PermissionTable{
	"PATCH /trip-requests/:id/validate": {models.RoleAdmin},
	"GET /admin":                        {models.RoleManager, models.RoleAdmin},
}

type Dependencies struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	JWTUtil     *jwt.JWTUtil
	Geocoder    *geocode.Client
	Logger      *zap.Logger
	Config      *config.Config
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	departmentRepo := repository.NewDepartmentRepository(deps.DB)
	addressRepo := repository.NewAddressRepository(deps.DB)
	driverRepo := repository.NewDriverRepository(deps.DB)
	vehicleRepo := repository.NewVehicleRepository(deps.DB)
	tripRepo := repository.NewTripRequestRepository(deps.DB)
	auditRepo := repository.NewAuditLogRepository(deps.DB)

	// Redis-backed helpers degrade gracefully when redis is down.
	var departmentCache *cache.Cache
	var loginLimiter *ratelimit.RedisLimiter
	if deps.RedisClient != nil {
		departmentCache = cache.New(deps.RedisClient, "frota")
		loginLimiter = ratelimit.NewRedisLimiter(deps.RedisClient, "frota:ratelimit:login", deps.Config.LoginRateLimit, time.Minute)
	}

	// Services
	audit := services.NewAuditRecorder(auditRepo)
	authService := services.NewAuthService(userRepo, deps.JWTUtil)
	accountsService := services.NewAccountsService(userRepo)
	profileService := services.NewProfileService(userRepo)
	departmentsService := services.NewDepartmentsService(departmentRepo, departmentCache, deps.Logger)
	addressesService := services.NewAddressesService(addressRepo, audit, deps.Geocoder)
	driversService := services.NewDriversService(driverRepo, audit)
	vehiclesService := services.NewVehiclesService(vehicleRepo, audit)
	tripRequestsService := services.NewTripRequestsService(tripRepo, addressRepo, driverRepo, vehicleRepo)

	// Handlers
	secureCookies := deps.Config.Environment == "production"
	authHandler := handlers.NewAuthHandler(authService, secureCookies)
	accountsHandler := handlers.NewAccountsHandler(accountsService)
	profileHandler := handlers.NewProfileHandler(profileService)
	departmentsHandler := handlers.NewDepartmentsHandler(departmentsService)
	addressesHandler := handlers.NewAddressesHandler(addressesService)
	driversHandler := handlers.NewDriversHandler(driversService)
	vehiclesHandler := handlers.NewVehiclesHandler(vehiclesService)
	tripRequestsHandler := handlers.NewTripRequestsHandler(tripRequestsService)
	adminHandler := handlers.NewAdminHandler()
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.RedisClient)

	// Public routes
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/departments", departmentsHandler.List)
	router.POST("/accounts", accountsHandler.Create)
	router.POST("/auth/login", middleware.LoginRateLimit(loginLimiter, deps.Logger), authHandler.Login)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.JWTUtil))
	protected.Use(middleware.Authorize(Permissions))
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		protected.GET("/me", profileHandler.Get)
		protected.PUT("/me", profileHandler.Update)

		vehicles := protected.Group("/vehicles")
		{
			vehicles.POST("", vehiclesHandler.Create)
			vehicles.GET("", vehiclesHandler.FetchRecent)
			vehicles.GET("/:id", vehiclesHandler.Get)
			vehicles.PATCH("/:id", vehiclesHandler.Update)
			vehicles.DELETE("/:id", vehiclesHandler.Delete)
		}

		drivers := protected.Group("/drivers")
		{
			drivers.POST("", driversHandler.Create)
			drivers.GET("/:id", driversHandler.Get)
			drivers.PATCH("/:id", driversHandler.Update)
			drivers.DELETE("/:id", driversHandler.Delete)
		}

		addresses := protected.Group("/addresses")
		{
			addresses.POST("", addressesHandler.Create)
			addresses.GET("/search", addressesHandler.Search)
			addresses.GET("/:id", addressesHandler.Get)
		}

		trips := protected.Group("/trip-requests")
		{
			trips.POST("", tripRequestsHandler.Create)
			trips.GET("/:id", tripRequestsHandler.Get)
			trips.PATCH("/:id/validate", tripRequestsHandler.Validate)
		}

		protected.GET("/admin", adminHandler.Resource)
	}
}
