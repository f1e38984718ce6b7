package session

import (
	"testing"

	"contest_client/internal/common"
	"contest_client/internal/domain/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContest() *model.Contest {
	return &model.Contest{
		ID:   1,
		Name: "Sample Contest",
		Problems: []model.Problem{
			{ID: 101, Title: "Sum It Up", Points: 100},
			{ID: 102, Title: "Graph Hopper", Points: 200},
		},
	}
}

func TestSession_SetContestSelectsFirstProblem(t *testing.T) {
	s := New(zerolog.Nop())
	s.SetContest(testContest())

	problem, ok := s.SelectedProblem()
	require.True(t, ok)
	assert.Equal(t, int64(101), problem.ID)
}

func TestSession_SetContestKeepsExistingSelection(t *testing.T) {
	s := New(zerolog.Nop())
	s.SetContest(testContest())
	require.NoError(t, s.SelectProblem(102))

	// A reload must not reset the user's selection.
	s.SetContest(testContest())
	problem, ok := s.SelectedProblem()
	require.True(t, ok)
	assert.Equal(t, int64(102), problem.ID)
}

func TestSession_SelectProblemUnknownID(t *testing.T) {
	s := New(zerolog.Nop())
	s.SetContest(testContest())

	err := s.SelectProblem(999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSession_SelectProblemBeforeLoad(t *testing.T) {
	s := New(zerolog.Nop())
	err := s.SelectProblem(101)
	assert.ErrorIs(t, err, common.ErrNotLoaded)
}

func TestSession_ParticipantLifecycle(t *testing.T) {
	s := New(zerolog.Nop())

	_, ok := s.Participant()
	assert.False(t, ok)

	s.SetParticipant(&model.Participant{ID: 7, Username: "alice"})
	p, ok := s.Participant()
	require.True(t, ok)
	assert.Equal(t, "alice", p.Username)

	s.ClearParticipant()
	_, ok = s.Participant()
	assert.False(t, ok)
}

func TestSession_ReplaceLeaderboardPreservesServerOrder(t *testing.T) {
	s := New(zerolog.Nop())
	entries := []model.LeaderboardEntry{
		{Username: "bob", TotalScore: 50, SolvedProblems: 1},
		{Username: "alice", TotalScore: 300, SolvedProblems: 3},
	}
	s.ReplaceLeaderboard(entries)

	got := s.Leaderboard()
	require.Len(t, got, 2)
	// Not re-sorted by the client, even if the server order looks odd.
	assert.Equal(t, "bob", got[0].Username)
	assert.Equal(t, "alice", got[1].Username)
}

func TestSession_LeaderboardReturnsCopy(t *testing.T) {
	s := New(zerolog.Nop())
	s.ReplaceLeaderboard([]model.LeaderboardEntry{{Username: "alice"}})

	got := s.Leaderboard()
	got[0].Username = "mallory"

	assert.Equal(t, "alice", s.Leaderboard()[0].Username)
}
