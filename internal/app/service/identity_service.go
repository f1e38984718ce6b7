package service

import (
	"context"
	"errors"
	"strings"

	"contest_client/internal/app/backend"
	"contest_client/internal/app/session"
	"contest_client/internal/common"
	"contest_client/internal/domain/model"
	"contest_client/internal/platform/store"

	"github.com/rs/zerolog"
)

// IdentityService resolves the participant identity from durable storage
// and runs the join flow against the backend.
type IdentityService struct {
	store     store.IdentityStore
	client    *backend.Client
	session   *session.Session
	contestID int64
	log       zerolog.Logger
}

func NewIdentityService(st store.IdentityStore, client *backend.Client, sess *session.Session, contestID int64, log zerolog.Logger) *IdentityService {
	return &IdentityService{
		store:     st,
		client:    client,
		session:   sess,
		contestID: contestID,
		log:       log.With().Str("component", "identity").Logger(),
	}
}

// Bootstrap reads the persisted participant, if any, into the session.
// A missing identity is not an error: the session simply starts unjoined
// and submitting is gated until a join happens.
func (s *IdentityService) Bootstrap(ctx context.Context) error {
	participant, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoIdentity) {
			s.log.Info().Msg("no stored identity, waiting for join")
			return nil
		}
		return common.Errorf("failed to load stored identity: %w", err)
	}
	s.session.SetParticipant(participant)
	s.log.Info().
		Int64("user_id", participant.ID).
		Str("username", participant.Username).
		Msg("restored participant identity")
	return nil
}

// Join registers the username with the configured contest, overwrites the
// stored identity with the server-issued participant, and installs it into
// the session.
func (s *IdentityService) Join(ctx context.Context, username string) (*model.Participant, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.Errorf("username must not be empty: %w", common.ErrValidation)
	}

	participant, err := s.client.Join(ctx, username, s.contestID)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, participant); err != nil {
		// The join succeeded server-side; keep the session usable and
		// surface the persistence failure in the log only.
		s.log.Error().Err(err).Msg("failed to persist identity, session continues in-memory")
	}

	s.session.SetParticipant(participant)
	s.log.Info().
		Int64("user_id", participant.ID).
		Str("username", participant.Username).
		Int64("contest_id", s.contestID).
		Msg("joined contest")
	return participant, nil
}

// Leave clears the in-memory identity. The durable store keeps the last
// joined participant, matching the original client's exit behavior.
func (s *IdentityService) Leave() {
	s.session.ClearParticipant()
	s.log.Info().Msg("left contest session")
}
