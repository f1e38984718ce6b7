package model

// Contest is fetched once per contest id. The problem order is the server's
// and is preserved; the first problem is the default selection.
type Contest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Problems    []Problem `json:"problems"`
}
