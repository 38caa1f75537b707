package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithData sends a 200 response carrying data only
func RespondWithData(c *gin.Context, data interface{}) {
	RespondWithSuccess(c, http.StatusOK, "", data)
}

// RespondWithList sends a 200 response with the item count alongside the data
func RespondWithList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// RespondWithMessage sends a success response without data
func RespondWithMessage(c *gin.Context, message string) {
	RespondWithSuccess(c, http.StatusOK, message, nil)
}

// RespondWithError records err on the context for the error middleware and
// sends the mapped public envelope. The underlying cause never reaches the
// client.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.As(err)
	_ = c.Error(err)

	c.AbortWithStatusJSON(appErr.StatusCode(), Response{
		Success: false,
		Message: appErr.PublicMessage(),
		Error:   appErr.Code(),
	})
}
