package routes

import (
	"time"

	"buddyscript/handlers"
	"buddyscript/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:5500", "http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public auth routes, rate limited
	auth := router.Group("/api/auth")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/register", handlers.Register)
	auth.POST("/login", handlers.Login)

	// Read routes resolve the viewer when a token is present but never
	// require one
	public := router.Group("/api")
	public.Use(middleware.OptionalAuthMiddleware())
	public.GET("/posts", handlers.ListPosts)
	public.GET("/posts/:postId", handlers.GetPost)
	public.GET("/posts/:postId/comments", handlers.ListComments)
	public.GET("/comments/:commentId/replies", handlers.ListReplies)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Posts
	protected.POST("/posts", handlers.CreatePost)
	protected.DELETE("/posts/:postId", handlers.DeletePost)

	// Likes
	protected.POST("/posts/:postId/likes", handlers.LikePost)
	protected.DELETE("/posts/:postId/likes", handlers.UnlikePost)
	protected.POST("/comments/:commentId/likes", handlers.LikeComment)
	protected.DELETE("/comments/:commentId/likes", handlers.UnlikeComment)

	// Comments
	protected.POST("/posts/:postId/comments", handlers.CreateComment)
	protected.POST("/comments/:commentId/replies", handlers.CreateReply)
	protected.DELETE("/comments/:commentId", handlers.DeleteComment)

	// Image upload
	protected.POST("/upload-image", handlers.UploadImage)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"code":    "NOT_FOUND",
				"message": "Endpoint not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
