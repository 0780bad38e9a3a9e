package i

import (
	"time"

	"github.com/google/uuid"
)

// Tokenizer defines methods for session token operations.
type Tokenizer interface {
	// Issue creates a signed token binding the given session id, valid for
	// the given duration.
	Issue(sessionID uuid.UUID, expTime time.Duration) (string, error)

	// Verify validates a token and returns the session id it carries.
	Verify(token string) (uuid.UUID, error)
}
