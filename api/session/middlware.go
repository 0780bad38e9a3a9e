package sessionapi

import (
	"net/http"
	"strings"

	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextSessionID is the key used to store the layout session id in the Gin context.
	ContextSessionID = "sessionID"
)

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		// Validate the token and resolve the session it names.
		sessionID, err := ts.Verify(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach the session id to the request context for further use.
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// SessionID pulls the session id the authorization middleware stored on the
// request context.
func SessionID(ctx *gin.Context) (uuid.UUID, bool) {
	value, ok := ctx.Get(ContextSessionID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
