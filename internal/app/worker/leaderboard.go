package worker

import (
	"context"
	"time"

	"contest_client/internal/app/backend"
	"contest_client/internal/app/metrics"
	"contest_client/internal/app/session"

	"github.com/rs/zerolog"
)

// LeaderboardSyncer refreshes the shared ranking on its own cadence and
// whenever the poller signals a terminal transition. Each successful fetch
// replaces the displayed sequence wholesale in the server's order.
type LeaderboardSyncer struct {
	client    *backend.Client
	session   *session.Session
	contestID int64
	interval  time.Duration
	refresh   <-chan struct{}
	log       zerolog.Logger
}

func NewLeaderboardSyncer(client *backend.Client, sess *session.Session, contestID int64, interval time.Duration, refresh <-chan struct{}, log zerolog.Logger) *LeaderboardSyncer {
	return &LeaderboardSyncer{
		client:    client,
		session:   sess,
		contestID: contestID,
		interval:  interval,
		refresh:   refresh,
		log:       log.With().Str("component", "leaderboard_syncer").Logger(),
	}
}

func (s *LeaderboardSyncer) Start(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Msg("leaderboard syncer started")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("leaderboard syncer stopping")
			return
		case <-ticker.C:
			// Refreshes run detached so a slow fetch never delays the
			// next trigger; overlapping responses race and the last one
			// processed wins, which the next tick self-heals.
			go s.refreshOnce(ctx, metrics.TriggerTimer)
		case <-s.refresh:
			go s.refreshOnce(ctx, metrics.TriggerEvent)
		}
	}
}

func (s *LeaderboardSyncer) refreshOnce(ctx context.Context, trigger string) {
	entries, err := s.client.GetLeaderboard(ctx, s.contestID)
	if err != nil {
		metrics.LeaderboardErrors.Inc()
		s.log.Warn().Err(err).Str("trigger", trigger).Msg("leaderboard refresh failed, next tick retries")
		return
	}
	s.session.ReplaceLeaderboard(entries)
	metrics.LeaderboardRefreshes.WithLabelValues(trigger).Inc()
	s.log.Debug().Str("trigger", trigger).Int("entries", len(entries)).Msg("leaderboard refreshed")
}
