// Package session mints the per-invocation correlation identifier attached
// to diagnostics emitted during one compile. It has no bearing on parsing
// or checking semantics; it exists purely so verbose CLI output and
// diagnostics can be traced back to the run that produced them.
package session

import "github.com/google/uuid"

// Session is a single front-end invocation.
type Session struct {
	ID uuid.UUID
}

// New mints a fresh session with a random v4 identifier.
func New() Session {
	return Session{ID: uuid.New()}
}

func (s Session) String() string {
	return s.ID.String()
}
