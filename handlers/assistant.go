package handlers

import (
	"errors"
	"net/http"

	"meetsync/models"
	"meetsync/services/assistant"
	"meetsync/services/scheduling"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the conversational scheduling surface.
type AssistantHandler struct {
	Service assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// Message handles POST /api/assistant/message.
func (h *AssistantHandler) Message(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.HandleMessage(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// More handles POST /api/assistant/more.
func (h *AssistantHandler) More(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Count     int    `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.MoreOptions(c.Request.Context(), req.SessionID, req.Count)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// End handles DELETE /api/assistant/sessions/:id.
func (h *AssistantHandler) End(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.Service.EndSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to end session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "ended": true})
}

func (h *AssistantHandler) writeError(c *gin.Context, err error) {
	var ve *scheduling.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "field": ve.Field, "details": ve.Message})
	case errors.Is(err, assistant.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
	default:
		utils.JSONError(c, http.StatusBadGateway, "failed to process request", err.Error())
	}
}
