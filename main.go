package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/config"
	"tripwise/fixtures"
	"tripwise/handlers"
	"tripwise/middleware"
	"tripwise/routes"
	"tripwise/services/agent"
	"tripwise/services/planner"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The fixture store must be complete at startup; a missing or corrupt
	// file is fatal.
	store, err := fixtures.Load(config.AppConfig.DataDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load fixture store: %v", err)
	}

	utils.InitSessionCache()
	ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessions := agent.NewRedisSessionStore(utils.GetSessionClient(), ttl)

	// Tool declarations are derived from the planner specs once; the
	// authorization gate is bound per session turn, not here.
	specs := planner.Specs()
	systemPrompt := agent.LoadSystemPrompt(config.AppConfig.PromptPath)

	ctx := context.Background()
	llm, err := agent.NewGeminiClient(ctx,
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		systemPrompt,
		agent.Declarations(specs),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	chatService := &agent.DefaultChatService{
		Sessions: sessions,
		Catalog:  store,
		LLM:      llm,
		Logger:   logger,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	paymentHandler := handlers.NewPaymentHandler(sessions)
	bookingsHandler := handlers.NewBookingsHandler(sessions)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, chatHandler, paymentHandler, bookingsHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
