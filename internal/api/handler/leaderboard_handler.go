package handler

import (
	"net/http"

	"contest_client/internal/app/session"
	"contest_client/internal/common"

	"github.com/go-chi/chi/v5"
)

type LeaderboardHandler struct {
	session *session.Session
}

func NewLeaderboardHandler(sess *session.Session) *LeaderboardHandler {
	return &LeaderboardHandler{session: sess}
}

func (h *LeaderboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getLeaderboard)
}

// getLeaderboard serves the last synced ranking in server order. It never
// fetches: the syncer owns freshness.
func (h *LeaderboardHandler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.session.Leaderboard())
}
