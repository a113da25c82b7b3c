package middleware

import (
	"log/slog"
	"net/http"

	"resqcart/internal/handler/httperr"
	"resqcart/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached with c.Error when the handler left the response unwritten.
// Public errors carry their envelope in Meta; anything else becomes a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || (len(c.Errors) == 0 && c.Writer.Status() == http.StatusOK) {
			return
		}

		// newest error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		for _, ginErr := range c.Errors.ByType(gin.ErrorTypePrivate) {
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				"error", ginErr.Err,
				"method", c.Request.Method,
				"path", c.FullPath(),
			)
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = errs.Newf("panic: %v", rec)
				}
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
