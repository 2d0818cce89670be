package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zoh007/claims-management-system/internal/config"
	"github.com/Zoh007/claims-management-system/internal/handler"
	"github.com/Zoh007/claims-management-system/internal/middleware"
	"github.com/Zoh007/claims-management-system/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log zerolog.Logger,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	claimH *handler.ClaimHandler,
	flagH *handler.FlagHandler,
	noteH *handler.NoteHandler,
	statsH *handler.StatsHandler,
	eventsH *handler.EventsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Read-only claim and dashboard routes are public
	v1.GET("/claims", claimH.List)
	v1.GET("/claims/filters", claimH.FilterOptions)
	v1.GET("/claims/:claimID", claimH.Get)
	v1.GET("/claims/:claimID/flags", flagH.ListByClaim)
	v1.GET("/claims/:claimID/notes", noteH.ListByClaim)
	v1.GET("/flags/recent", flagH.ListRecent)
	v1.GET("/stats", statsH.GetStats)
	v1.GET("/events", eventsH.Stream)

	// Mutations and exports require a valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.GET("/claims/export", claimH.Export)
	protected.POST("/claims/:claimID/flags", flagH.Create)
	protected.POST("/claims/:claimID/notes", noteH.Create)
	protected.DELETE("/flags/:id", flagH.Delete)
	protected.DELETE("/notes/:id", noteH.Delete)

	return r
}
