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

type SubmissionHandler struct {
	submitService *service.SubmitService
	session       *session.Session
}

func NewSubmissionHandler(ss *service.SubmitService, sess *session.Session) *SubmissionHandler {
	return &SubmissionHandler{submitService: ss, session: sess}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listSubmissions)
	r.Post("/", h.createSubmission)
}

// listSubmissions serves the registry, most recent first.
func (h *SubmissionHandler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.session.Submissions())
}

type CreateSubmissionRequest struct {
	ProblemID int64          `json:"problemId"`
	Code      string         `json:"code"`
	Language  model.Language `json:"language"`
}

func (h *SubmissionHandler) createSubmission(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	submission, err := h.submitService.Submit(r.Context(), req.ProblemID, req.Code, req.Language)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	// 202: judging is asynchronous, the poller tracks it from here.
	common.RespondWithJSON(w, http.StatusAccepted, submission)
}
