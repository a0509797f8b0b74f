package handler

import (
	"fmt"
	"log/slog"

	_ "MeAPI_Playground/docs"
	"MeAPI_Playground/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterOptions struct {
	// Empty allows every origin.
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// Empty makes the socket address the client IP for rate limiting.
	TrustedProxies []string
	WritesEnabled  bool
	Logger         *slog.Logger
}

// NewRouter wires middleware and every route under /api.
func NewRouter(h *Handler, opts RouterOptions) (*gin.Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("setting trusted proxies: %w", err)
	}
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	config := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.AllowedOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, middleware.RequestIDHeader)
	config.ExposeHeaders = append(config.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(config))

	api := router.Group("/api")
	api.GET("/health", h.Health)

	limited := api.Group("", middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	{
		limited.GET("/profile", h.GetProfile)
		limited.GET("/projects", h.ListProjects)
		limited.GET("/search", h.Search)
		limited.GET("/skills/top", h.TopSkills)
	}

	writes := limited.Group("", middleware.WriteGuard(opts.WritesEnabled))
	{
		writes.POST("/profile", h.CreateProfile)
		writes.PUT("/profile", h.UpdateProfile)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router, nil
}
