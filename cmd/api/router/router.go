package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"revana/cmd/api/auth"
	"revana/cmd/api/clients/sentimentclient"
	"revana/cmd/api/handlers"
	"revana/cmd/api/middleware"
	"revana/cmd/api/services"
	"revana/db"
	_ "revana/docs"
)

// Deps bundles the wired services the router exposes.
type Deps struct {
	Videos     *services.VideoService
	Products   *services.ProductService
	Users      *services.UserService
	JWT        *auth.JWTManager
	Classifier *sentimentclient.Client
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down"})
			return
		}
		if deps.Classifier != nil {
			if err := deps.Classifier.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "classifier": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.RequireAuth(deps.JWT)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/search", handlers.SearchVideosHandler(deps.Videos))
		api.GET("/videos/detail", handlers.GetVideoDetailHandler(deps.Videos))
		api.GET("/comments/:videoId", handlers.GetVideoCommentsHandler(deps.Videos))
		api.POST("/comments/:videoId", requireAuth, handlers.AddVideoCommentHandler(deps.Videos))

		api.GET("/reviews/:asin", handlers.GetProductReviewsHandler(deps.Products))
		api.POST("/reviews/:asin", requireAuth, handlers.AddProductReviewHandler(deps.Products))

		api.POST("/auth/signin", handlers.SigninHandler(deps.Users))
		api.GET("/users/profile", requireAuth, handlers.ProfileHandler(deps.Users))
	}

	return r
}
