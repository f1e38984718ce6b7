package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the two recurring tasks and the submit path. Exposed on the
// gateway's /metrics endpoint.
var (
	PollCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_poll_cycles_total",
		Help: "Submission poller ticks executed.",
	})

	PollFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_poll_fetches_total",
		Help: "Individual submission status fetches issued by the poller.",
	})

	PollErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_poll_errors_total",
		Help: "Submission status fetches that failed after retries.",
	})

	TerminalTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_terminal_transitions_total",
		Help: "Submissions observed transitioning into a terminal status.",
	})

	LeaderboardRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contest_client_leaderboard_refreshes_total",
		Help: "Leaderboard refreshes by trigger.",
	}, []string{"trigger"})

	LeaderboardErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_leaderboard_errors_total",
		Help: "Leaderboard refreshes that failed after retries.",
	})

	SubmissionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_submissions_created_total",
		Help: "Submissions accepted by the backend.",
	})

	SubmissionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_client_submissions_rejected_total",
		Help: "Submissions rejected locally before any network call.",
	})
)

const (
	TriggerTimer = "timer"
	TriggerEvent = "event"
)
