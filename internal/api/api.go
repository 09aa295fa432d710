package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vansh1703/cars/internal/api/handlers"
	"github.com/vansh1703/cars/internal/api/middleware"
	"github.com/vansh1703/cars/internal/auth"
	"github.com/vansh1703/cars/internal/service"
	"github.com/vansh1703/cars/internal/storage"
)

type Services struct {
	Cars      *service.CarService
	Dashboard *service.DashboardService
	Enquiries *service.EnquiryService
	Sessions  *auth.SessionManager
	Storage   storage.ObjectStorage
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	carHandler := handlers.NewCarHandler(services.Cars)
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
	enquiryHandler := handlers.NewEnquiryHandler(services.Enquiries)
	authHandler := handlers.NewAuthHandler(services.Sessions)
	uploadHandler := handlers.NewUploadHandler(services.Storage)

	apiGroup := router.Group("/api/v1")

	// Public storefront routes.
	{
		apiGroup.GET("/cars", carHandler.ListCars)
		apiGroup.GET("/cars/:id", carHandler.GetCar)
		apiGroup.POST("/enquiries", enquiryHandler.CreateEnquiry)
		apiGroup.POST("/messages", enquiryHandler.CreateMessage)
	}

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", middleware.RequireAdmin(services.Sessions), authHandler.Me)
	}

	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(services.Sessions))
	{
		adminGroup.GET("/dashboard", dashboardHandler.GetDashboard)

		adminGroup.POST("/cars", carHandler.CreateCar)
		adminGroup.PUT("/cars/:id", carHandler.UpdateCar)
		adminGroup.DELETE("/cars/:id", carHandler.DeleteCar)
		adminGroup.POST("/cars/:id/sold", carHandler.MarkSold)
		adminGroup.GET("/cars/sold", carHandler.ListSoldCars)

		adminGroup.POST("/sales", dashboardHandler.CreateManualSale)
		adminGroup.GET("/sales", dashboardHandler.ListManualSales)

		adminGroup.GET("/enquiries", enquiryHandler.ListEnquiries)
		adminGroup.PATCH("/enquiries/:id", enquiryHandler.SetEnquiryRead)
		adminGroup.GET("/messages", enquiryHandler.ListMessages)
		adminGroup.PATCH("/messages/:id", enquiryHandler.SetMessageRead)

		adminGroup.POST("/uploads", uploadHandler.UploadImage)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
