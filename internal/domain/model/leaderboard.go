package model

// LeaderboardEntry is a server-computed view. The client never mutates
// entries, it only replaces the whole ordered sequence on each refresh.
type LeaderboardEntry struct {
	Username       string `json:"username"`
	TotalScore     int    `json:"totalScore"`
	SolvedProblems int    `json:"solvedProblems"`
}
