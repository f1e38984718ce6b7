package handler

import (
	"encoding/json"
	"net/http"

	"contest_client/internal/app/service"
	"contest_client/internal/app/session"
	"contest_client/internal/common"
	"contest_client/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type SessionHandler struct {
	identityService *service.IdentityService
	session         *session.Session
}

func NewSessionHandler(is *service.IdentityService, sess *session.Session) *SessionHandler {
	return &SessionHandler{identityService: is, session: sess}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/join", h.join)
	r.Post("/leave", h.leave)
	r.Get("/session", h.getSession)
}

type JoinRequest struct {
	Username string `json:"username"`
}

func (h *SessionHandler) join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	participant, err := h.identityService.Join(r.Context(), req.Username)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, participant)
}

func (h *SessionHandler) leave(w http.ResponseWriter, r *http.Request) {
	h.identityService.Leave()
	w.WriteHeader(http.StatusNoContent)
}

type SessionResponse struct {
	Joined            bool               `json:"joined"`
	Participant       *model.Participant `json:"participant,omitempty"`
	ContestLoaded     bool               `json:"contestLoaded"`
	SelectedProblemID *int64             `json:"selectedProblemId,omitempty"`
}

func (h *SessionHandler) getSession(w http.ResponseWriter, r *http.Request) {
	resp := SessionResponse{}
	if participant, ok := h.session.Participant(); ok {
		resp.Joined = true
		resp.Participant = participant
	}
	_, resp.ContestLoaded = h.session.Contest()
	if problem, ok := h.session.SelectedProblem(); ok {
		resp.SelectedProblemID = &problem.ID
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
