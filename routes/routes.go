package routes

import (
	"time"

	"meetsync/handlers"
	"meetsync/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the direct proposal-engine endpoints.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/propose", sh.Propose)
	}
}

// RegisterAssistantRoutes registers the conversational endpoints.
func RegisterAssistantRoutes(r *gin.Engine, ah *handlers.AssistantHandler) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/message", ah.Message)
		api.POST("/more", ah.More)
		api.DELETE("/sessions/:id", ah.End)
	}
}

// RegisterParticipantRoutes registers busy-period sync endpoints.
func RegisterParticipantRoutes(r *gin.Engine, bh *handlers.BusyHandler) {
	api := r.Group("/api/participants")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/:id/busy", bh.Replace)
		api.POST("/:id/busy", bh.Add)
		api.GET("/:id/busy", bh.List)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// SetupCORS applies the default CORS policy.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}
