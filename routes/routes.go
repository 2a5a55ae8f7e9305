package routes

import (
	"net/http"

	"inkwell/controllers"
	"inkwell/handlers"
	"inkwell/middleware"
	"inkwell/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Auth endpoints get a per-IP limiter so credential stuffing is slowed
// down without touching the read paths.
const (
	authRateLimit = rate.Limit(1)
	authRateBurst = 5
)

func SetupRoutes(
	r *gin.Engine,
	authService *services.AuthService,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	userController *controllers.UserController,
	feedHandler *handlers.FeedHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limiter := middleware.NewIPRateLimiter(authRateLimit, authRateBurst)

	api := r.Group("/api")
	{
		api.POST("/register", middleware.RateLimit(limiter), authController.Register)
		api.POST("/login", middleware.RateLimit(limiter), authController.Login)
		api.POST("/logout", middleware.AuthRequired(authService), authController.Logout)

		api.GET("/posts", middleware.AuthOptional(authService), postController.Index)
		api.GET("/posts/:id", middleware.AuthOptional(authService), postController.Show)
		api.GET("/posts/:id/comments", commentController.Index)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired(authService))
		{
			protected.POST("/posts", postController.Create)
			protected.PUT("/posts/:id", postController.Update)
			protected.DELETE("/posts/:id", postController.Delete)

			protected.POST("/posts/:id/comments", commentController.Create)
			protected.PUT("/comments/:id", commentController.Update)
			protected.DELETE("/comments/:id", commentController.Delete)

			user := protected.Group("/user")
			{
				user.GET("/profile", userController.Profile)
				user.GET("/posts", userController.Posts)
				user.GET("/drafts", userController.Drafts)
			}
		}
	}

	r.GET("/ws", middleware.AuthOptional(authService), feedHandler.HandleFeed)
}
