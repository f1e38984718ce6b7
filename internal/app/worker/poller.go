package worker

import (
	"context"
	"time"

	"contest_client/internal/app/backend"
	"contest_client/internal/app/metrics"
	"contest_client/internal/app/session"

	"github.com/rs/zerolog"
)

// SubmissionPoller is the central recurring task: on a fixed cadence it
// fetches the latest status of every submission still in an active state
// and merges each response into the registry wholesale. The poller keeps no
// per-submission bookkeeping of its own; the registry's current contents
// drive each tick, so polling stops implicitly once a record leaves the
// active set.
type SubmissionPoller struct {
	client   *backend.Client
	session  *session.Session
	interval time.Duration
	refresh  chan<- struct{}
	log      zerolog.Logger
}

func NewSubmissionPoller(client *backend.Client, sess *session.Session, interval time.Duration, refresh chan<- struct{}, log zerolog.Logger) *SubmissionPoller {
	return &SubmissionPoller{
		client:   client,
		session:  sess,
		interval: interval,
		refresh:  refresh,
		log:      log.With().Str("component", "poller").Logger(),
	}
}

// Start runs until ctx is cancelled. Cancellation stops scheduling new
// ticks; fetches already in flight are not aborted and their responses
// still land in the registry.
func (p *SubmissionPoller) Start(ctx context.Context) {
	p.log.Info().Dur("interval", p.interval).Msg("submission poller started")
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("submission poller stopping")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick issues one independent fetch per active submission. Requests are
// not coalesced: two in-flight fetches for the same id may race and the
// later-arriving response wins.
func (p *SubmissionPoller) tick(ctx context.Context) {
	metrics.PollCycles.Inc()
	for _, id := range p.session.ActiveSubmissionIDs() {
		go p.pollOne(ctx, id)
	}
}

func (p *SubmissionPoller) pollOne(ctx context.Context, id int64) {
	metrics.PollFetches.Inc()

	sub, err := p.client.GetSubmission(ctx, id)
	if err != nil {
		// The cadence is the outer retry: state stays unchanged and the
		// next tick fetches this id again.
		metrics.PollErrors.Inc()
		p.log.Warn().Err(err).Int64("submission_id", id).Msg("status fetch failed, next tick retries")
		return
	}

	outcome := p.session.ApplySubmission(*sub)
	if outcome.TerminalTransition {
		metrics.TerminalTransitions.Inc()
		p.log.Info().
			Int64("submission_id", sub.ID).
			Str("status", string(sub.Status)).
			Msg("submission reached terminal status")
		// Fire-and-forget: one signal per transition. If the buffer is
		// full a refresh is already queued and will observe this result.
		select {
		case p.refresh <- struct{}{}:
		default:
		}
	}
}
