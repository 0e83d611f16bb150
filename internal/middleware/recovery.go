package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery converts panics into the generic failure response. The raw error
// text is included only outside production so internals never leak to users.
func Recovery(log zerolog.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("request panicked")
				body := gin.H{
					"success": false,
					"message": "Failed to submit, please try again or contact us directly",
				}
				if !production {
					body["error"] = fmt.Sprintf("%v", r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
