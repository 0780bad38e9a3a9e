// Package sessionapi opens layout sessions and authorizes the requests that
// operate on them.
package sessionapi

// SessionResponse carries a freshly opened layout session and its bearer token.
type SessionResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}
