package model

// Problem is a read-only snapshot owned by the server; immutable once fetched.
type Problem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	SampleInput    string `json:"sampleInput"`
	ExpectedOutput string `json:"expectedOutput"`
	Points         int    `json:"points"`
}
