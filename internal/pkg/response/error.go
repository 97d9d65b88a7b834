package response

import (
	"errors"
	"net/http"

	"github.com/advertomedia/room-booking-backend/internal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// If err is an AppError its status code is used, otherwise 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
