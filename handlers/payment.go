package handlers

import (
	"net/http"

	"tripwise/services/agent"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentConfigRequest is the payload for configuring payment on a session.
// Card details are validated for presence only and never stored; only the
// last four digits and the cardholder name are kept for display.
type PaymentConfigRequest struct {
	SessionID  string `json:"session_id"`
	CardNumber string `json:"card_number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	Cardholder string `json:"cardholder" binding:"required"`
	Authorize  bool   `json:"authorize"`
}

// PaymentHandler manages the per-session payment authorization fact. The
// planner consumes it only at tool-set construction time; nothing the agent
// does can reach these endpoints.
type PaymentHandler struct {
	Sessions agent.SessionStore
}

func NewPaymentHandler(sessions agent.SessionStore) *PaymentHandler {
	return &PaymentHandler{Sessions: sessions}
}

// ConfigurePaymentHandler stores payment info and grants booking
// authorization for the session.
func (h *PaymentHandler) ConfigurePaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req PaymentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment configuration", err.Error())
		return
	}
	if !req.Authorize {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment configuration",
			"the booking authorization box must be checked")
		return
	}
	if len(req.CardNumber) < 4 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment configuration", "card number too short")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	sess, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}
	sess.PaymentAuthorized = true
	sess.CardLast4 = req.CardNumber[len(req.CardNumber)-4:]
	sess.Cardholder = req.Cardholder
	if err := h.Sessions.Set(c.Request.Context(), sessionID, sess); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save session", err.Error())
		return
	}

	logger.Info("payment authorized", zap.String("session_id", sessionID))
	c.JSON(http.StatusOK, gin.H{
		"status":     "authorized",
		"session_id": sessionID,
		"card_last4": sess.CardLast4,
		"cardholder": sess.Cardholder,
	})
}

// PaymentStatusHandler reports whether a session is authorized to book.
func (h *PaymentHandler) PaymentStatusHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	sess, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authorized": sess.PaymentAuthorized,
		"card_last4": sess.CardLast4,
		"cardholder": sess.Cardholder,
	})
}

// RevokePaymentHandler withdraws booking authorization and forgets the
// stored card display info. Tool sets constructed after this see the gate
// closed.
func (h *PaymentHandler) RevokePaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	sessionID := c.Param("session_id")
	sess, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}
	sess.PaymentAuthorized = false
	sess.CardLast4 = ""
	sess.Cardholder = ""
	if err := h.Sessions.Set(c.Request.Context(), sessionID, sess); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save session", err.Error())
		return
	}

	logger.Info("payment authorization revoked", zap.String("session_id", sessionID))
	c.JSON(http.StatusOK, gin.H{"status": "revoked", "session_id": sessionID})
}
