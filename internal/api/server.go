package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/atelierhq/atelier/internal/api/handler"
	"github.com/atelierhq/atelier/internal/api/middleware"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/core/service"
	"github.com/atelierhq/atelier/pkg/config"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	dashboardService *service.DashboardService,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	priceRepo repository.PriceRepository,
	slideRepo repository.SlideRepository,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientRepo)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	priceHandler := handler.NewPriceHandler(priceRepo)
	slideHandler := handler.NewSlideHandler(slideRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMiddleware := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireAdmin()

	// Uploaded assets (public)
	router.Static("/assets", cfg.AssetsDir)

	// Auth
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authMiddleware, authHandler.Me)
	}

	// Prices: reads are public, mutations are admin-only
	prices := router.Group("/prices")
	{
		prices.GET("", priceHandler.ListPrices)
		prices.GET("/:id", priceHandler.GetPrice)
		prices.POST("", authMiddleware, adminOnly, priceHandler.CreatePrice)
		prices.PUT("/:id", authMiddleware, adminOnly, priceHandler.UpdatePrice)
		prices.DELETE("/:id", authMiddleware, adminOnly, priceHandler.DeletePrice)
		prices.POST("/:id/photos", authMiddleware, adminOnly, priceHandler.UploadPhotos)
		prices.DELETE("/:id/photos", authMiddleware, adminOnly, priceHandler.RemovePhoto)
	}

	// Slides: reads are public, mutations are admin-only
	slides := router.Group("/slides")
	{
		slides.GET("", slideHandler.ListSlides)
		slides.GET("/:id", slideHandler.GetSlide)
		slides.POST("", authMiddleware, adminOnly, slideHandler.CreateSlide)
		slides.PUT("/:id", authMiddleware, adminOnly, slideHandler.UpdateSlide)
		slides.DELETE("/:id", authMiddleware, adminOnly, slideHandler.DeleteSlide)
	}

	// Clients (admin-only)
	clients := router.Group("/clients")
	clients.Use(authMiddleware, adminOnly)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Services (admin-only)
	services := router.Group("/services")
	services.Use(authMiddleware, adminOnly)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.POST("/:id/photos", serviceHandler.UploadPhotos)
	}

	// Dashboard (admin-only)
	router.GET("/dashboard", authMiddleware, adminOnly, dashboardHandler.Overview)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	server := &Server{
		router: router,
		config: cfg,
	}

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
