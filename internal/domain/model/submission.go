package model

import "time"

// SubmissionStatus is the closed set of statuses the judge contract defines.
// Anything else coming off the wire is carried verbatim but is never treated
// as terminal; callers detect that case with Known.
type SubmissionStatus string

const (
	StatusPending     SubmissionStatus = "PENDING"
	StatusRunning     SubmissionStatus = "RUNNING"
	StatusAccepted    SubmissionStatus = "ACCEPTED"
	StatusWrongAnswer SubmissionStatus = "WRONG_ANSWER"
)

// Known reports whether s is part of the contract's closed enumeration.
func (s SubmissionStatus) Known() bool {
	switch s {
	case StatusPending, StatusRunning, StatusAccepted, StatusWrongAnswer:
		return true
	}
	return false
}

// Terminal reports whether the judge will never update the record again.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusWrongAnswer
}

// Active reports whether the submission is still expected to change and
// therefore worth polling. Exactly PENDING or RUNNING; an unrecognized
// status is neither active nor terminal.
func (s SubmissionStatus) Active() bool {
	return s == StatusPending || s == StatusRunning
}

type Submission struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	ProblemID   int64            `json:"problemId"`
	Code        string           `json:"code"`
	Language    Language         `json:"language"`
	Status      SubmissionStatus `json:"status"`
	Result      *string          `json:"result,omitempty"`
	Score       *int             `json:"score,omitempty"`
	SubmittedAt time.Time        `json:"submittedAt"`
}
