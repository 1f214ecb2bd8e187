package routes

import (
	"time"

	"tripwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, ch *handlers.ChatHandler, ph *handlers.PaymentHandler, bh *handlers.BookingsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	chat := r.Group("/api/chat")
	{
		chat.POST("", ch.ChatMessageHandler)
		chat.DELETE("/:session_id", ch.ClearChatHandler)
	}

	payment := r.Group("/api/payment")
	{
		payment.POST("/configure", ph.ConfigurePaymentHandler)
		payment.GET("/status/:session_id", ph.PaymentStatusHandler)
		payment.DELETE("/:session_id", ph.RevokePaymentHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.GET("/:session_id", bh.BookingsSummaryHandler)
	}
}
