package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"backoffice/internal/caching"
	"backoffice/internal/common"
	"backoffice/internal/handlers"
	"backoffice/internal/jobs/background"
	"backoffice/internal/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/pkg/database"
)

const version = "1.0.0"

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(databaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	storageSvc, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	for _, bucket := range []string{services.ImageBucket, services.ProcessFileBucket} {
		if err := storageSvc.EnsureBucket(context.Background(), bucket); err != nil {
			log.Fatalf("Failed to ensure bucket %s: %v", bucket, err)
		}
	}

	// Create repositories
	languageRepo := repositories.NewLanguageRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	categoryProductRepo := repositories.NewCategoryProductRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	announcementRepo := repositories.NewAnnouncementRepo(pool)
	featureRepo := repositories.NewFeatureRepo(pool)
	popupRepo := repositories.NewPopupRepo(pool)
	midBannerRepo := repositories.NewMidBannerRepo(pool)
	sliderRepo := repositories.NewSliderRepo(pool)
	instagramRepo := repositories.NewInstagramRepo(pool)
	homeWebRepo := repositories.NewHomeWebRepo(pool)
	menuSettingsRepo := repositories.NewMenuSettingsRepo(pool)
	mailchimpRepo := repositories.NewMailchimpRepo(pool)
	processRepo := repositories.NewProcessRepo(pool)
	auditLogsRepo := repositories.NewAuditLogsRepo(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create services
	categorySvc := services.NewCategoryService(categoryRepo, cacheSvc)
	categoryProductSvc := services.NewCategoryProductService(categoryRepo, categoryProductRepo, productRepo)
	processSvc := services.NewProcessService(processRepo, productRepo, orderRepo, storageSvc)
	auditLogsSvc := services.NewAuditLogsService(auditLogsRepo)

	// Background jobs
	scheduler := background.NewJobScheduler(processSvc, cacheSvc, languageRepo)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create handlers
	categoryHandlers := handlers.NewCategoryHandlers(categorySvc)
	categoryProductHandlers := handlers.NewCategoryProductHandlers(categoryProductSvc)
	productHandlers := handlers.NewProductHandlers(productRepo)
	languageHandlers := handlers.NewLanguageHandlers(languageRepo, cacheSvc)
	announcementHandlers := handlers.NewAnnouncementHandlers(announcementRepo)
	featureHandlers := handlers.NewFeatureHandlers(featureRepo)
	popupHandlers := handlers.NewPopupHandlers(popupRepo)
	midBannerHandlers := handlers.NewMidBannerHandlers(midBannerRepo)
	sliderHandlers := handlers.NewSliderHandlers(sliderRepo)
	instagramHandlers := handlers.NewInstagramHandlers(instagramRepo)
	homeWebHandlers := handlers.NewHomeWebHandlers(homeWebRepo)
	menuSettingsHandlers := handlers.NewMenuSettingsHandlers(menuSettingsRepo)
	mailchimpHandlers := handlers.NewMailchimpHandlers(mailchimpRepo)
	processHandlers := handlers.NewProcessHandlers(processSvc)
	auditLogsHandlers := handlers.NewAuditLogsHandlers(auditLogsSvc)
	mediaHandlers := handlers.NewMediaHandlers(storageSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Create Echo instance
	e := echo.New()
	e.Validator = common.NewRequestValidator()
	e.HTTPErrorHandler = errorHandler

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	versionMiddleware := middleware.NewVersionMiddleware()

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.Ready)

	// Protected API routes
	v1 := versionMiddleware.VersionRoute(e, "v1")
	v1.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(jwtSecret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			sub, _ := claims["sub"].(string)
			if userID, err := uuid.Parse(sub); err == nil {
				ctx := context.WithValue(c.Request().Context(), common.UserIDKey, userID)
				c.SetRequest(c.Request().WithContext(ctx))
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))

	auditMiddleware := middleware.NewAuditMiddleware(auditLogsSvc)
	v1.Use(auditMiddleware.AuditRequest())

	// Language routes
	v1.GET("/languages", languageHandlers.List)

	// Category routes
	v1.GET("/categories/tree", categoryHandlers.GetTree)
	v1.GET("/categories/options", categoryHandlers.GetOptions)
	v1.PUT("/categories/positions", categoryHandlers.UpdatePositions)
	v1.POST("/categories", categoryHandlers.CreateCategory)
	v1.GET("/categories/:id", categoryHandlers.GetCategory)
	v1.PUT("/categories/:id", categoryHandlers.UpdateCategory)
	v1.DELETE("/categories/:id", categoryHandlers.DeleteCategory)

	// Category product routes
	v1.GET("/categories/:id/products", categoryProductHandlers.List)
	v1.POST("/categories/:id/products", categoryProductHandlers.Attach)
	v1.DELETE("/categories/:id/products", categoryProductHandlers.BulkDetach)
	v1.PUT("/categories/:id/products/positions", categoryProductHandlers.UpdatePositions)
	v1.POST("/categories/:id/products/reorder", categoryProductHandlers.Reorder)
	v1.POST("/categories/:id/products/move-row", categoryProductHandlers.MoveRow)
	v1.PUT("/categories/:id/products/:productId/position", categoryProductHandlers.UpdatePosition)
	v1.DELETE("/categories/:id/products/:productId", categoryProductHandlers.Detach)

	// Product routes
	v1.GET("/products", productHandlers.List)
	v1.GET("/products/:id", productHandlers.Get)

	// Announcement routes
	v1.GET("/announcements", announcementHandlers.List)
	v1.POST("/announcements", announcementHandlers.Create)
	v1.GET("/announcements/:id", announcementHandlers.Get)
	v1.PUT("/announcements/:id", announcementHandlers.Update)
	v1.DELETE("/announcements/:id", announcementHandlers.Delete)

	// Feature routes
	v1.GET("/features", featureHandlers.List)
	v1.POST("/features", featureHandlers.Create)
	v1.GET("/features/:id", featureHandlers.Get)
	v1.PUT("/features/:id", featureHandlers.Update)
	v1.DELETE("/features/:id", featureHandlers.Delete)

	// Popup routes
	v1.GET("/popups", popupHandlers.List)
	v1.POST("/popups", popupHandlers.Create)
	v1.GET("/popups/:id", popupHandlers.Get)
	v1.PUT("/popups/:id", popupHandlers.Update)
	v1.DELETE("/popups/:id", popupHandlers.Delete)

	// Mid banner routes
	v1.GET("/mid-banners", midBannerHandlers.List)
	v1.POST("/mid-banners", midBannerHandlers.Create)
	v1.GET("/mid-banners/:id", midBannerHandlers.Get)
	v1.PUT("/mid-banners/:id", midBannerHandlers.Update)
	v1.DELETE("/mid-banners/:id", midBannerHandlers.Delete)

	// Slider routes
	v1.GET("/sliders", sliderHandlers.List)
	v1.POST("/sliders", sliderHandlers.Create)
	v1.GET("/sliders/:id", sliderHandlers.Get)
	v1.PUT("/sliders/:id", sliderHandlers.Update)
	v1.DELETE("/sliders/:id", sliderHandlers.Delete)
	v1.POST("/sliders/:id/items", sliderHandlers.CreateItem)
	v1.PUT("/sliders/:id/items/positions", sliderHandlers.UpdateItemPositions)
	v1.PUT("/sliders/:id/items/:itemId", sliderHandlers.UpdateItem)
	v1.DELETE("/sliders/:id/items/:itemId", sliderHandlers.DeleteItem)

	// Instagram routes
	v1.GET("/instagram", instagramHandlers.List)
	v1.POST("/instagram", instagramHandlers.Create)
	v1.GET("/instagram/:id", instagramHandlers.Get)
	v1.PUT("/instagram/:id", instagramHandlers.Update)
	v1.DELETE("/instagram/:id", instagramHandlers.Delete)
	v1.POST("/instagram/:id/items", instagramHandlers.CreateItem)
	v1.PUT("/instagram/:id/items/positions", instagramHandlers.UpdateItemPositions)
	v1.PUT("/instagram/:id/items/:itemId", instagramHandlers.UpdateItem)
	v1.DELETE("/instagram/:id/items/:itemId", instagramHandlers.DeleteItem)

	// Home page routes
	v1.GET("/home-webs", homeWebHandlers.List)
	v1.POST("/home-webs", homeWebHandlers.Create)
	v1.GET("/home-webs/:id", homeWebHandlers.Get)
	v1.PUT("/home-webs/:id", homeWebHandlers.Update)
	v1.DELETE("/home-webs/:id", homeWebHandlers.Delete)
	v1.PUT("/home-webs/:id/layouts", homeWebHandlers.ReplaceLayouts)

	// Menu routes
	v1.GET("/menu-settings", menuSettingsHandlers.List)
	v1.POST("/menu-settings", menuSettingsHandlers.Create)
	v1.PUT("/menu-settings/positions", menuSettingsHandlers.UpdatePositions)
	v1.GET("/menu-settings/:id", menuSettingsHandlers.Get)
	v1.PUT("/menu-settings/:id", menuSettingsHandlers.Update)
	v1.DELETE("/menu-settings/:id", menuSettingsHandlers.Delete)

	// Mailchimp routes
	v1.GET("/mailchimp/campaigns", mailchimpHandlers.List)
	v1.POST("/mailchimp/campaigns", mailchimpHandlers.Create)
	v1.GET("/mailchimp/campaigns/:id", mailchimpHandlers.Get)
	v1.PUT("/mailchimp/campaigns/:id", mailchimpHandlers.Update)
	v1.DELETE("/mailchimp/campaigns/:id", mailchimpHandlers.Delete)

	// Process routes
	v1.GET("/processes", processHandlers.List)
	v1.POST("/processes", processHandlers.Create)
	v1.GET("/processes/:id", processHandlers.Get)
	v1.POST("/processes/:id/execute", processHandlers.Execute)

	// Upload and audit routes
	v1.POST("/uploads/images", mediaHandlers.Upload)
	v1.GET("/audit-logs", auditLogsHandlers.List)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Back office API v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}

// errorHandler renders uncaught errors into the standard error envelope so
// echo.NewHTTPError responses match the handler-level Send helpers.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	envelopeCode := "SERVER_ERROR"
	switch {
	case code == http.StatusNotFound:
		envelopeCode = "NOT_FOUND"
	case code == http.StatusUnauthorized:
		envelopeCode = "UNAUTHORIZED"
	case code >= 400 && code < 500:
		envelopeCode = "CLIENT_ERROR"
	}

	if sendErr := c.JSON(code, common.NewErrorResponse(envelopeCode, message, nil)); sendErr != nil {
		c.Logger().Error(sendErr)
	}
}
