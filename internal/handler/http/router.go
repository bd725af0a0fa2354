package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pregen/shop-api/internal/handler/http/dto"
	"github.com/pregen/shop-api/internal/handler/http/middleware"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

type Router struct {
	userHandler  *UserHandler
	authHandler  *AuthHandler
	adminHandler *AdminHandler
	userUsecase  usecasecontract.IUserUseCase
	config       usecasecontract.IConfigProvider
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		userHandler:  NewUserHandler(userUsecase, config),
		authHandler:  NewAuthHandler(userUsecase, config),
		adminHandler: NewAdminHandler(userUsecase, config),
		userUsecase:  userUsecase,
		config:       config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	// rate limiter configuration
	if perSecond := r.config.GetRateLimitPerSecond(); perSecond > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(perSecond)))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "pregen API is running")
	})
	router.GET("/api/health", r.health)

	errs := middleware.ErrorResponder{Verbose: !r.config.IsProduction()}
	requireAuth := middleware.AuthMiddleWare(r.userUsecase, errs)

	users := router.Group("/api/users")
	{
		// Public routes (no authentication required)
		users.POST("/signup", middleware.OptionalAuth(r.userUsecase), r.userHandler.Signup)
		users.POST("/login", r.authHandler.Login)
		users.POST("/logout", r.authHandler.Logout)

		// Protected routes (authentication required)
		users.GET("/checkAuth", requireAuth, r.authHandler.CheckAuth)
		users.GET("/profile", requireAuth, r.userHandler.GetCurrentUser)
		users.PUT("/profile/:userId", requireAuth, r.userHandler.UpdateProfile)
		users.GET("/users", requireAuth, r.userHandler.ListUsers)
		users.GET("/users/id/:userId", requireAuth, r.userHandler.GetUser)
	}

	admin := users.Group("/admin")
	admin.Use(requireAuth)
	{
		admin.PUT("/update-user/:id", middleware.RequireAdmin, r.adminHandler.UpdateUser)
		admin.DELETE("/delete/:id", middleware.RequireSuperAdmin, r.adminHandler.DeleteUser)
		admin.PUT("/restore/:id", middleware.RequireAdmin, r.adminHandler.RestoreUser)
		admin.PUT("/toggle-block/:id", middleware.RequireAdmin, r.adminHandler.ToggleBlock)
	}
}

func (r *Router) health(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{OK: true, Environment: r.config.GetEnvironment()})
}
