package model

// Participant is created once at join time and immutable for the session.
// It is persisted client-side (keyed globally, not per contest) and
// overwritten on each join.
type Participant struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
