package session

import (
	"sync"

	"contest_client/internal/common"
	"contest_client/internal/domain/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is the explicit view-state object for one contest session:
// participant identity, the contest snapshot, the selected problem, the
// submission registry and the current leaderboard. It replaces the ambient
// page state of a browser client so that everything is testable without a
// rendering environment.
type Session struct {
	ID string

	mu          sync.RWMutex
	participant *model.Participant
	contest     *model.Contest
	selectedID  int64
	leaderboard []model.LeaderboardEntry

	registry *Registry
	log      zerolog.Logger
}

func New(log zerolog.Logger) *Session {
	return &Session{
		ID:       uuid.NewString(),
		registry: NewRegistry(),
		log:      log.With().Str("component", "session").Logger(),
	}
}

// SetParticipant installs the identity for the remainder of the session.
func (s *Session) SetParticipant(p *model.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participant = p
}

// ClearParticipant detaches the in-memory identity (exit contest). The
// durable store is untouched.
func (s *Session) ClearParticipant() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participant = nil
}

func (s *Session) Participant() (*model.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.participant == nil {
		return nil, false
	}
	p := *s.participant
	return &p, true
}

// SetContest stores the read-only contest snapshot and selects the first
// problem if none is selected yet.
func (s *Session) SetContest(c *model.Contest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contest = c
	if s.selectedID == 0 && len(c.Problems) > 0 {
		s.selectedID = c.Problems[0].ID
	}
}

func (s *Session) Contest() (*model.Contest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contest == nil {
		return nil, false
	}
	c := *s.contest
	return &c, true
}

// SelectProblem switches the selected problem to the given id.
func (s *Session) SelectProblem(problemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contest == nil {
		return common.ErrNotLoaded
	}
	for _, p := range s.contest.Problems {
		if p.ID == problemID {
			s.selectedID = problemID
			return nil
		}
	}
	return common.Errorf("problem %d is not part of contest %d: %w", problemID, s.contest.ID, common.ErrNotFound)
}

func (s *Session) SelectedProblem() (*model.Problem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contest == nil {
		return nil, false
	}
	for _, p := range s.contest.Problems {
		if p.ID == s.selectedID {
			problem := p
			return &problem, true
		}
	}
	return nil, false
}

// InsertSubmission prepends a freshly created submission to the registry.
func (s *Session) InsertSubmission(sub model.Submission) {
	outcome := s.registry.Insert(sub)
	if outcome.UnknownStatus {
		s.log.Error().
			Int64("submission_id", sub.ID).
			Str("status", string(sub.Status)).
			Msg("server returned a status outside the contract enumeration")
	}
}

// ApplySubmission replaces the registry record with the server's latest
// snapshot and reports the outcome. Unknown statuses and regressions are
// contract violations on the server side; they are applied verbatim but
// logged loudly instead of being silently polled forever.
func (s *Session) ApplySubmission(sub model.Submission) ApplyOutcome {
	outcome := s.registry.Apply(sub)
	if outcome.UnknownStatus {
		s.log.Error().
			Int64("submission_id", sub.ID).
			Str("status", string(sub.Status)).
			Msg("unrecognized submission status, record kept verbatim and excluded from polling")
	}
	if outcome.Regressed {
		s.log.Warn().
			Int64("submission_id", sub.ID).
			Str("status", string(sub.Status)).
			Msg("submission status regressed from a terminal value")
	}
	return outcome
}

func (s *Session) Submissions() []model.Submission {
	return s.registry.List()
}

func (s *Session) Submission(id int64) (model.Submission, bool) {
	return s.registry.Get(id)
}

// ActiveSubmissionIDs lists the ids the poller should fetch this tick.
func (s *Session) ActiveSubmissionIDs() []int64 {
	return s.registry.ActiveIDs()
}

// ReplaceLeaderboard swaps in the server's latest ranking wholesale. The
// server's ordering is preserved as-is.
func (s *Session) ReplaceLeaderboard(entries []model.LeaderboardEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard = entries
}

func (s *Session) Leaderboard() []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]model.LeaderboardEntry, len(s.leaderboard))
	copy(entries, s.leaderboard)
	return entries
}
