package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "encheres-api/internal/app"
	"encheres-api/internal/bootstrap"
	"encheres-api/internal/cache"
	"encheres-api/internal/pkg/jwtutil"
	"encheres-api/internal/pkg/passhash"
	"encheres-api/internal/platform/rabbitmq"
	"encheres-api/internal/repository"
	"encheres-api/internal/transport/http/handler"
	"encheres-api/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)
	router.Static("/uploads", app.Uploads.Dir())

	userRepo := repository.NewUserRepository(app.MySQL)
	articleRepo := repository.NewArticleRepository(app.MySQL)
	imageRepo := repository.NewImageRepository(app.MySQL)

	tokens := jwtutil.NewIssuer(
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireHour)*time.Hour,
	)
	hasher := passhash.New(app.Config.Auth.BcryptCost)
	listingCache := cache.NewListingCache(
		app.Redis,
		time.Duration(app.Config.Redis.ListingTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.ListingDirtyTTLSeconds)*time.Second,
	)
	cleanupPublisher := rabbitmq.NewCleanupPublisher(app.MQConn, app.Config.RabbitMQ.ImageCleanupQueue)

	authService := appsvc.NewAuthService(userRepo, hasher, tokens)
	articleService := appsvc.NewArticleService(articleRepo, imageRepo, listingCache, cleanupPublisher)
	imageService := appsvc.NewImageService(articleRepo, imageRepo, app.Uploads)

	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	imageHandler := handler.NewImageHandler(imageService, app.Uploads, app.Config.MaxImageSizeBytes())

	authRequired := middleware.AuthJWT(tokens)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authRequired, authHandler.Logout)
	authGroup.GET("/profile", authRequired, authHandler.Profile)

	articleGroup := v1.Group("/articles")
	articleGroup.Use(authRequired)
	articleGroup.GET("", articleHandler.List)
	articleGroup.GET("/my", articleHandler.ListMine)
	articleGroup.GET("/:id", articleHandler.Get)
	articleGroup.POST("", articleHandler.Create)
	articleGroup.DELETE("/:id", articleHandler.Delete)
	articleGroup.GET("/:id/images", imageHandler.ListByArticle)
	articleGroup.POST("/:id/images", imageHandler.Upload)

	return router
}
