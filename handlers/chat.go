package handlers

import (
	"net/http"

	"tripwise/models"
	"tripwise/services/agent"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational endpoint.
type ChatHandler struct {
	Service agent.ChatService
}

func NewChatHandler(service agent.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// ChatMessageHandler handles a single conversational turn.
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "message is required")
		return
	}

	resp, err := h.Service.ProcessMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		logger.Error("chat turn failed", zap.Error(err), zap.String("session_id", req.SessionID))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearChatHandler wipes a session's history, bookings and authorization.
func (h *ChatHandler) ClearChatHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "session_id is required")
		return
	}
	if err := h.Service.ClearSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared", "session_id": sessionID})
}
