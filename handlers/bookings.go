package handlers

import (
	"net/http"

	"tripwise/services/agent"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

// BookingsHandler exposes the per-session bookings summary.
type BookingsHandler struct {
	Sessions agent.SessionStore
}

func NewBookingsHandler(sessions agent.SessionStore) *BookingsHandler {
	return &BookingsHandler{Sessions: sessions}
}

// BookingsSummaryHandler returns the session's confirmed bookings with the
// running total.
func (h *BookingsHandler) BookingsSummaryHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	sess, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}

	var total float64
	for _, b := range sess.Bookings {
		total += b.Amount
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(sess.Bookings),
		"total_spent": total,
		"bookings":    sess.Bookings,
	})
}
