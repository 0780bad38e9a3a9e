package token

import (
	"errors"
	"time"

	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// sessionIDClaim is the claim key carrying the layout session id.
const sessionIDClaim = "session_id"

// JwtService signs and verifies layout session tokens.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT service with the provided signing configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Issue creates a signed token binding the given session id, valid for the
// given duration.
func (s *JwtService) Issue(sessionID uuid.UUID, expTime time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"exp":          time.Now().UTC().Add(expTime).Unix(),
		"iss":          s.issuer,
		sessionIDClaim: sessionID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Verify parses and validates a token, returning the session id it carries.
func (s *JwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}
	if issuer, _ := claims["iss"].(string); issuer != s.issuer {
		return uuid.Nil, errors.New("unexpected issuer")
	}

	raw, ok := claims[sessionIDClaim].(string)
	if !ok {
		return uuid.Nil, errors.New("token carries no session id")
	}
	return uuid.Parse(raw)
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
