package i

import "errors"

// ErrSessionNotFound reports an operation aimed at a session id no live
// session carries. Expired and never-created sessions are indistinguishable.
var ErrSessionNotFound = errors.New("layout session not found")
