package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nepsepulse/internal/domain/dto"
	"github.com/guttosm/nepsepulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context via c.Error() into a standardized 500 JSON response.
//
// Behavior:
//   - Lets the handler chain run first.
//   - If any handler attached errors and no response was written yet,
//     logs the last error and responds with dto.ErrorResponse.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError aborts the current request with the given status and a
// standardized error body, and records the error on the context for the
// request logger.
//
// Parameters:
//   - c: Current request context.
//   - status: HTTP status code to respond with.
//   - message: Human-readable message for the response body.
//   - err: Underlying error; may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
