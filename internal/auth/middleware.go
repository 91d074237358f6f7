package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guessquest/guessquest/pkg/sdk"
)

// ContextUserKey is the gin context key the middleware stores the
// authenticated user ID under
const ContextUserKey = "userId"

// Middleware returns a gin handler that rejects requests without a valid
// bearer token. A missing token is a 403, a bad one a 401, matching the
// contract the frontend was written against.
func Middleware(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(sdk.NewErrorResponse(http.StatusForbidden, "No token provided", nil).AsGinResponse())
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(sdk.NewErrorResponse(http.StatusUnauthorized, "Unauthorized", nil).AsGinResponse())
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// UserID retrieves the authenticated user ID stored by the middleware
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}
