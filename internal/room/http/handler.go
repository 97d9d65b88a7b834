package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/advertomedia/room-booking-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

// Status reports whether the room is free right now, the meeting in
// progress (if any) and the next one coming up today.
func (h *Handler) Status(c *gin.Context) {
	t := time.Now()
	today := t.Format("2006-01-02")
	now := t.Format("15:04")

	st, err := h.service.Status(c.Request.Context(), today, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve room status"})
		return
	}

	c.JSON(http.StatusOK, NewStatusResponse(st))
}
