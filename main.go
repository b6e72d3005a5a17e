// File: meetsync/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetsync/config"
	"meetsync/cron"
	"meetsync/database"
	busyRepo "meetsync/database/repository/busy"
	"meetsync/handlers"
	"meetsync/middleware"
	"meetsync/routes"
	"meetsync/services/assistant"
	"meetsync/services/calendar"
	"meetsync/services/intelligence"
	"meetsync/services/scheduling"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.SetupCORS(router)

	// repositories.
	busyPeriodRepo := busyRepo.NewMongoBusyPeriodRepo()

	// services.
	calendarProvider := &calendar.DefaultProvider{
		Repo:   busyPeriodRepo,
		Logger: logger,
	}

	engine := &scheduling.DefaultEngine{
		Logger: logger,
	}

	var intentService intelligence.IntentService
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := intelligence.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		intentService = &intelligence.GeminiIntentParser{
			Client: client,
			Logger: logger,
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, using keyword intent parser")
		intentService = intelligence.KeywordIntentParser{}
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := assistant.NewSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	assistantService := &assistant.DefaultAssistantService{
		Intent:   intentService,
		Calendar: calendarProvider,
		Engine:   engine,
		Sessions: sessionStore,
		Logger:   logger,
	}

	// handlers.
	scheduleHandler := handlers.NewScheduleHandler(engine, calendarProvider, utils.GetCacheClient())
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	busyHandler := handlers.NewBusyHandler(busyPeriodRepo)

	// routes.
	routes.RegisterScheduleRoutes(router, scheduleHandler)
	routes.RegisterAssistantRoutes(router, assistantHandler)
	routes.RegisterParticipantRoutes(router, busyHandler)
	routes.RegisterHealthRoute(router)

	// background workers and monitoring.
	cron.InitJanitorWorker(busyPeriodRepo)
	utils.StartHealthMonitor(database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
