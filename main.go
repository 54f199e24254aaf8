package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buddyscript/cache"
	"buddyscript/database"
	"buddyscript/handlers"
	"buddyscript/repository"
	"buddyscript/routes"
	"buddyscript/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.Println("🚀 Starting BuddyScript API...")

	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	dsn := os.Getenv("DATABASE_URL")
	if jwtSecret == "" || dsn == "" {
		log.Fatal("❌ JWT_SECRET and DATABASE_URL must be set")
	}

	// ===== CONNECT TO POSTGRES WITH RETRY =====
	log.Println("🔌 Connecting to Postgres...")

	gdb, dbErr := database.Connect(dsn)
	for attempt := 2; dbErr != nil && attempt <= 3; attempt++ {
		log.Printf("❌ Postgres connection failed: %v (retrying)", dbErr)
		time.Sleep(2 * time.Second)
		gdb, dbErr = database.Connect(dsn)
	}
	if dbErr != nil {
		log.Fatal("❌ Failed to connect to Postgres:", dbErr)
	}

	log.Println("✅ Postgres connected and migrated")

	// ===== CACHE =====
	var appCache cache.Cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal("❌ Invalid REDIS_URL:", err)
		}
		appCache = cache.NewRedisCache(redis.NewClient(opts))
		log.Println("✅ Redis cache enabled")
	} else {
		appCache = cache.NewNoopCache()
		log.Println("⚠️ REDIS_URL not set, running without cache")
	}

	// ===== WIRING =====
	users := repository.NewUserRepository(gdb)
	posts := repository.NewPostRepository(gdb)
	comments := repository.NewCommentRepository(gdb)
	postLikes := repository.NewPostLikeRepository(gdb)
	commentLikes := repository.NewCommentLikeRepository(gdb)

	handlers.SetServices(&handlers.Services{
		Auth:         services.NewAuthService(users, []byte(jwtSecret)),
		Posts:        services.NewPostService(posts, postLikes, comments, appCache),
		Comments:     services.NewCommentService(comments, posts, commentLikes, appCache),
		PostLikes:    services.NewPostLikeService(posts, postLikes, appCache),
		CommentLikes: services.NewCommentLikeService(comments, commentLikes, appCache),
	})

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "buddyscript-api"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
