package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"

	"github.com/shivamraghav1010/Player/internal/bootstrap"
	"github.com/shivamraghav1010/Player/internal/config"
	"github.com/shivamraghav1010/Player/internal/handler"
	"github.com/shivamraghav1010/Player/internal/middleware"
	"github.com/shivamraghav1010/Player/internal/model"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/internal/service"
	"github.com/shivamraghav1010/Player/pkg/database"
	"github.com/shivamraghav1010/Player/pkg/storage"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect(cfg.DatabaseURL)
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedSports(db); err != nil {
		log.Fatalf("failed to seed sports: %v", err)
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	redisClient := newRedisClient(cfg.RedisURL)
	meiliClient := newMeiliClient(cfg)

	mediaStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	sportRepo := repository.NewSportRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, userRepo, redisClient)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	followService := service.NewFollowService(followRepo, userRepo, notificationService, redisClient)
	profileService := service.NewProfileService(userRepo, followRepo, mediaStorage)
	userHandler := handler.NewUserHandler(profileService, followService)

	searchService := service.NewSearchService(meiliClient)
	searchHandler := handler.NewSearchHandler(searchService, userRepo)

	videoService := service.NewVideoService(videoRepo, userRepo, searchService, mediaStorage)
	videoHandler := handler.NewVideoHandler(videoService)

	sportService := service.NewSportService(sportRepo)
	sportHandler := handler.NewSportHandler(sportService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes
	api.GET("/sports", sportHandler.GetAll)
	api.GET("/videos/all", videoHandler.GetAll)
	api.GET("/videos/sport/:sport", videoHandler.GetBySport)
	api.GET("/videos/user/:userId", videoHandler.GetByUser)
	api.GET("/videos/:id/details", videoHandler.GetDetails)
	api.POST("/videos/:id/view", videoHandler.IncrementViews)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/users/profile/:id", userHandler.GetProfile)
		protected.PUT("/users/profile", userHandler.UpdateProfile)
		protected.POST("/users/upload-profile-pic", userHandler.UploadProfilePic)
		protected.POST("/users/follow/:id", userHandler.ToggleFollow)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/mark-read", notificationHandler.MarkAllAsRead)

		protected.POST("/videos/upload", videoHandler.Upload)
		protected.POST("/videos/:id/like", videoHandler.ToggleLike)
		protected.POST("/videos/:id/comment", videoHandler.AddComment)
		protected.DELETE("/videos/:id", videoHandler.Delete)

		protected.GET("/search/token", searchHandler.GetSearchToken)

		// Admin routes
		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/notifications", notificationHandler.CreateBroadcast)
			admin.POST("/notifications/direct", notificationHandler.CreateDirect)
			admin.PUT("/notifications/:id", notificationHandler.UpdateNotification)
			admin.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

			admin.GET("/sports/admin", sportHandler.GetAllAdmin)
			admin.POST("/sports", sportHandler.Create)
			admin.PUT("/sports/:id", sportHandler.Update)
			admin.DELETE("/sports/:id", sportHandler.Delete)
		}
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Notification{},
		&model.Video{},
		&model.Comment{},
		&model.VideoLike{},
		&model.Sport{},
	)
}

func newRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("REDIS_URL not set, running without redis caches")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without redis caches: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}

func newMeiliClient(cfg *config.Config) meilisearch.ServiceManager {
	if cfg.MeiliSearchHost == "" {
		log.Println("MEILISEARCH_HOST not set, running without search")
		return nil
	}

	host := cfg.MeiliSearchHost
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}

	return meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
