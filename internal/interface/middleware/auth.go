package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpsalviano/todolists/internal/application"
	"github.com/jpsalviano/todolists/pkg/helpers"
	"github.com/jpsalviano/todolists/pkg/response"
)

// CtxUserID is the gin context key holding the authorized user id.
const CtxUserID = "userID"

// CtxSessionToken holds the raw token so logout can revoke it.
const CtxSessionToken = "sessionToken"

// Auth resolves the session-token cookie to a user id before any
// protected handler runs. The token shape is checked before the store
// lookup, so malformed cookies never reach Redis.
func Auth(sessions *application.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized.", nil)
			return
		}
		userID, err := sessions.Authorize(c.Request.Context(), token)
		if err != nil {
			var appErr *application.Error
			if errors.As(err, &appErr) {
				response.AbortError(c, http.StatusUnauthorized, appErr.Message, nil)
				return
			}
			response.AbortError(c, http.StatusInternalServerError, "Unexpected error.", nil)
			return
		}
		c.Set(CtxUserID, userID)
		c.Set(CtxSessionToken, token)
		c.Next()
	}
}
