package service

import (
	"context"

	"contest_client/internal/app/backend"
	"contest_client/internal/app/session"
	"contest_client/internal/domain/model"

	"github.com/rs/zerolog"
)

// ContestService loads the contest snapshot and the initial leaderboard,
// once per contest id. A failed load leaves the session not-loaded; the
// caller decides when to try again.
type ContestService struct {
	client    *backend.Client
	session   *session.Session
	contestID int64
	log       zerolog.Logger
}

func NewContestService(client *backend.Client, sess *session.Session, contestID int64, log zerolog.Logger) *ContestService {
	return &ContestService{
		client:    client,
		session:   sess,
		contestID: contestID,
		log:       log.With().Str("component", "contest_loader").Logger(),
	}
}

// Load fetches the contest metadata and the initial leaderboard snapshot.
// Contest failure aborts the load; a leaderboard failure only logs, since
// the syncer cadence heals it within one interval.
func (s *ContestService) Load(ctx context.Context) error {
	contest, err := s.client.GetContest(ctx, s.contestID)
	if err != nil {
		s.log.Error().Err(err).Int64("contest_id", s.contestID).Msg("contest load failed")
		return err
	}
	s.session.SetContest(contest)
	s.log.Info().
		Int64("contest_id", contest.ID).
		Str("name", contest.Name).
		Int("problems", len(contest.Problems)).
		Msg("contest loaded")

	entries, err := s.client.GetLeaderboard(ctx, s.contestID)
	if err != nil {
		s.log.Warn().Err(err).Msg("initial leaderboard fetch failed, syncer will retry")
		return nil
	}
	s.session.ReplaceLeaderboard(entries)
	return nil
}

// Loaded reports whether the contest snapshot is available.
func (s *ContestService) Loaded() bool {
	_, ok := s.session.Contest()
	return ok
}

// SelectProblem switches the session's selected problem.
func (s *ContestService) SelectProblem(problemID int64) (*model.Problem, error) {
	if err := s.session.SelectProblem(problemID); err != nil {
		return nil, err
	}
	problem, _ := s.session.SelectedProblem()
	return problem, nil
}
