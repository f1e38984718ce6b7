package service

import (
	"context"
	"strings"

	"contest_client/internal/app/backend"
	"contest_client/internal/app/metrics"
	"contest_client/internal/app/session"
	"contest_client/internal/common"
	"contest_client/internal/domain/model"

	"github.com/rs/zerolog"
)

// SubmitService issues new submissions. Empty code is rejected locally
// before any network call; a failed submit leaves the registry untouched
// and is only retried by the user.
type SubmitService struct {
	client  *backend.Client
	session *session.Session
	log     zerolog.Logger
}

func NewSubmitService(client *backend.Client, sess *session.Session, log zerolog.Logger) *SubmitService {
	return &SubmitService{
		client:  client,
		session: sess,
		log:     log.With().Str("component", "submitter").Logger(),
	}
}

func (s *SubmitService) Submit(ctx context.Context, problemID int64, code string, language model.Language) (*model.Submission, error) {
	if strings.TrimSpace(code) == "" {
		metrics.SubmissionsRejected.Inc()
		return nil, common.Errorf("code must not be empty: %w", common.ErrValidation)
	}

	participant, ok := s.session.Participant()
	if !ok {
		return nil, common.ErrJoinRequired
	}

	contest, ok := s.session.Contest()
	if !ok {
		return nil, common.ErrNotLoaded
	}
	found := false
	for _, p := range contest.Problems {
		if p.ID == problemID {
			found = true
			break
		}
	}
	if !found {
		return nil, common.Errorf("problem %d is not part of contest %d: %w", problemID, contest.ID, common.ErrNotFound)
	}

	if language == "" {
		language = model.DefaultLanguage
	}

	submission, err := s.client.CreateSubmission(ctx, backend.CreateSubmissionRequest{
		UserID:    participant.ID,
		ProblemID: problemID,
		Code:      code,
		Language:  language,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("problem_id", problemID).Msg("submit failed")
		return nil, err
	}

	// The returned record is the task of record from here on; it is
	// prepended and thereafter only replaced by poll responses.
	s.session.InsertSubmission(*submission)
	metrics.SubmissionsCreated.Inc()
	s.log.Info().
		Int64("submission_id", submission.ID).
		Int64("problem_id", problemID).
		Str("language", string(language)).
		Str("status", string(submission.Status)).
		Msg("submission created")
	return submission, nil
}
