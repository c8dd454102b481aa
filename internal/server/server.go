package server

import (
	"context"
	"net/http"

	"classorder/internal/auth"
	"classorder/internal/booking"
	"classorder/internal/coach"
	"classorder/internal/config"
	"classorder/internal/upload"
	"classorder/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	coachHandler := coach.NewHandler(db)
	bookingHandler := booking.NewHandler(db)
	uploadHandler := upload.NewHandler(cfg.UploadDir, cfg.UploadBaseURL)

	// Uploaded avatars are served straight from disk.
	router.Static(cfg.UploadBaseURL, cfg.UploadDir)

	api := router.Group("/api")

	api.POST("/login", RateLimitMiddleware(cfg.LoginRateRPS, cfg.LoginRateBurst), userHandler.Login)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	api.POST("/upload", authMiddleware, uploadHandler.Upload)

	coaches := api.Group("/coaches")
	{
		// Listing is public: the login screen shows coach names.
		coaches.GET("", coachHandler.List)
		coaches.GET("/:id", coachHandler.Get)

		adminCoaches := coaches.Group("", authMiddleware, auth.RequireRole(auth.RoleAdmin))
		{
			adminCoaches.POST("", coachHandler.Create)
			adminCoaches.PUT("/:id", coachHandler.Update)
			adminCoaches.DELETE("/:id", coachHandler.Delete)
		}
	}

	bookings := api.Group("/bookings", authMiddleware)
	{
		bookings.GET("", bookingHandler.List)
		bookings.POST("", bookingHandler.Create)
		bookings.PUT("/:id", bookingHandler.Update)
		bookings.DELETE("/:id", bookingHandler.Delete)
	}

	api.GET("/coach/profile", authMiddleware, coachHandler.GetProfile)
	api.PUT("/coach/profile", authMiddleware, coachHandler.UpdateProfile)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
