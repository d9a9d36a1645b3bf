package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricetrail/pricetrail/internal/domain/dto"
	"github.com/pricetrail/pricetrail/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON response, when no handler
// has written a response of its own.
//
// Handlers that translate domain errors themselves are unaffected; this is
// the safety net for errors that fall through.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the handler chain and writes a standardized JSON
// error response with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
