// Package router assembles the gin engine.
package router

import (
	"context"
	"net/http"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/config"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/handler"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/middleware"
	"furls/dashboard/internal/models"
	"furls/dashboard/internal/service"
	"furls/dashboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Registers the OpenAPI document served under /swagger.
	_ "furls/dashboard/docs"
)

// maxUploadBytes caps a plugin upload body. A full payload with two 10x10
// grids is a few kilobytes.
const maxUploadBytes = 256 << 10

// authenticateAPIKey resolves plugin keys against whatever database.DB is
// current at request time.
func authenticateAPIKey(ctx context.Context, key string) (*models.User, error) {
	return service.NewIdentityService(database.DB).AuthenticateAPIKey(ctx, key)
}

// SetupRouter wires every route under /api plus /ping, /metrics and the
// swagger UI.
func SetupRouter() *gin.Engine {
	if err := validation.Setup(); err != nil {
		logging.Fatal().Err(err).Msg("failed to register validation rules")
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logging.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Msg("recovered from panic")
			c.AbortWithStatusJSON(http.StatusInternalServerError, handler.ErrorResponse{Error: "Internal server error"})
		}),
	)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	uploadLimiter := middleware.NewUploadLimiter(config.Current().UploadRatePerMinute)

	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.GET("/me", auth.AuthMiddleware(), handler.GetMe)
			authRoutes.GET("/api-key", auth.AuthMiddleware(), handler.GetAPIKey)
			authRoutes.POST("/regenerate-api-key", auth.AuthMiddleware(), handler.RegenerateAPIKey)
		}

		// Plugin routes
		statsRoutes := api.Group("/stats")
		{
			statsRoutes.POST("/upload", middleware.BodyLimit(maxUploadBytes), auth.APIKeyMiddleware(authenticateAPIKey), uploadLimiter.Middleware(), handler.UploadStats)
			statsRoutes.GET("/plugin-status", auth.EitherMiddleware(authenticateAPIKey), handler.GetPluginStatus)
			statsRoutes.GET("/latest", handler.GetLatestStats)
			statsRoutes.GET("/recent", handler.GetRecentStats)
		}

		// Dashboard routes (protected)
		userRoutes := api.Group("/user")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/stats/history", handler.GetHistory)
			userRoutes.GET("/stats/alltime", handler.GetAllTimeStats)
			userRoutes.GET("/stats/session/:id", handler.GetSession)
			userRoutes.GET("/stats/friend/:friendId", handler.GetFriendStats)
			userRoutes.GET("/stats/leaderboard", handler.GetLeaderboard)
			userRoutes.GET("/stats/heatmap", handler.GetHeatmap)

			userRoutes.GET("/settings", handler.GetSettings)
			userRoutes.PUT("/settings", handler.UpdateSettings)
			userRoutes.PUT("/profile", handler.UpdateProfile)
			userRoutes.POST("/avatar", handler.UploadAvatar)
		}

		// Friendship routes (protected)
		friendRoutes := api.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("", handler.ListFriends)
			friendRoutes.GET("/requests", handler.ListIncomingRequests)
			friendRoutes.GET("/requests/sent", handler.ListSentRequests)
			friendRoutes.GET("/search", handler.SearchUsers)
			friendRoutes.POST("/request", handler.SendFriendRequest)
			friendRoutes.POST("/accept/:id", handler.AcceptFriendRequest)
			friendRoutes.DELETE("/:id", handler.RemoveFriend)
		}

		// Public routes, the bearer token only refines visibility
		publicRoutes := api.Group("/public")
		publicRoutes.Use(auth.OptionalAuthMiddleware())
		{
			publicRoutes.GET("/profile/:username", handler.GetPublicProfile)
			publicRoutes.GET("/search", handler.SearchPublicProfiles)
			publicRoutes.GET("/leaderboard/:stat", handler.GetPublicLeaderboard)
		}
	}

	return router
}
