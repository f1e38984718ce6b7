package handler

import (
	"net/http"
	"strconv"

	"contest_client/internal/app/service"
	"contest_client/internal/app/session"
	"contest_client/internal/common"
	"contest_client/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ContestHandler struct {
	contestService *service.ContestService
	session        *session.Session
}

func NewContestHandler(cs *service.ContestService, sess *session.Session) *ContestHandler {
	return &ContestHandler{contestService: cs, session: sess}
}

func (h *ContestHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getContest)
	r.Post("/problems/{problemID}/select", h.selectProblem)
	r.Get("/problems/{problemID}/template", h.getTemplate)
}

// getContest serves the loaded snapshot. A nil contest means still loading,
// never an empty one.
func (h *ContestHandler) getContest(w http.ResponseWriter, r *http.Request) {
	contest, ok := h.session.Contest()
	if !ok {
		common.RespondWithError(w, common.HTTPStatusFromError(common.ErrNotLoaded), common.ErrNotLoaded.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, contest)
}

func (h *ContestHandler) selectProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.ParseInt(chi.URLParam(r, "problemID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid problem id")
		return
	}

	problem, err := h.contestService.SelectProblem(problemID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

type TemplateResponse struct {
	ProblemID int64          `json:"problemId"`
	Language  model.Language `json:"language"`
	Code      string         `json:"code"`
}

// getTemplate is only hit on an explicit problem/language change, so the
// returned starter code never overwrites edits on unrelated refreshes.
func (h *ContestHandler) getTemplate(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.ParseInt(chi.URLParam(r, "problemID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid problem id")
		return
	}

	contest, ok := h.session.Contest()
	if !ok {
		common.RespondWithError(w, common.HTTPStatusFromError(common.ErrNotLoaded), common.ErrNotLoaded.Error())
		return
	}
	var problem *model.Problem
	for i := range contest.Problems {
		if contest.Problems[i].ID == problemID {
			problem = &contest.Problems[i]
			break
		}
	}
	if problem == nil {
		common.RespondWithError(w, http.StatusNotFound, "Problem not found in contest")
		return
	}

	language := model.Language(r.URL.Query().Get("language"))
	if language == "" {
		language = model.DefaultLanguage
	}
	code, err := service.TemplateFor(problem, language)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, TemplateResponse{ProblemID: problemID, Language: language, Code: code})
}
