package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"contest_client/internal/app/backend"
	"contest_client/internal/app/service"
	"contest_client/internal/app/session"
	"contest_client/internal/domain/model"
	"contest_client/internal/platform/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gatewayFixture struct {
	router         http.Handler
	session        *session.Session
	contestService *service.ContestService
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/contests/join", func(w http.ResponseWriter, r *http.Request) {
		var req backend.JoinRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(model.Participant{ID: 7, Username: req.Username})
	})
	mux.HandleFunc("/contests/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.Contest{
			ID:       1,
			Name:     "Sample Contest",
			Problems: []model.Problem{{ID: 101, Title: "Sum It Up", Points: 100}},
		})
	})
	mux.HandleFunc("/contests/1/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.LeaderboardEntry{})
	})
	mux.HandleFunc("/submissions", func(w http.ResponseWriter, r *http.Request) {
		var req backend.CreateSubmissionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(model.Submission{
			ID:          501,
			UserID:      req.UserID,
			ProblemID:   req.ProblemID,
			Code:        req.Code,
			Language:    req.Language,
			Status:      model.StatusPending,
			SubmittedAt: time.Now(),
		})
	})
	backendServer := httptest.NewServer(mux)
	t.Cleanup(backendServer.Close)

	client := backend.NewClient(backendServer.URL, 2*time.Second, 1, time.Millisecond, zerolog.Nop())
	sess := session.New(zerolog.Nop())
	fileStore := store.NewFileStore(filepath.Join(t.TempDir(), "identity.json"))

	identityService := service.NewIdentityService(fileStore, client, sess, 1, zerolog.Nop())
	contestService := service.NewContestService(client, sess, 1, zerolog.Nop())
	submitService := service.NewSubmitService(client, sess, zerolog.Nop())

	return &gatewayFixture{
		router:         NewRouter(sess, identityService, contestService, submitService),
		session:        sess,
		contestService: contestService,
	}
}

func (f *gatewayFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGateway_ContestIsLoadingUntilLoaded(t *testing.T) {
	f := newGatewayFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/contest", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	require.NoError(t, f.contestService.Load(context.Background()))

	w = f.do(t, http.MethodGet, "/api/v1/contest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var contest model.Contest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contest))
	assert.Equal(t, "Sample Contest", contest.Name)
}

func TestGateway_SubmitRequiresJoin(t *testing.T) {
	f := newGatewayFixture(t)
	require.NoError(t, f.contestService.Load(context.Background()))

	w := f.do(t, http.MethodPost, "/api/v1/submissions", map[string]interface{}{
		"problemId": 101, "code": "print(1)", "language": "JAVA",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateway_JoinSubmitListFlow(t *testing.T) {
	f := newGatewayFixture(t)
	require.NoError(t, f.contestService.Load(context.Background()))

	w := f.do(t, http.MethodPost, "/api/v1/join", map[string]string{"username": "alice"})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/submissions", map[string]interface{}{
		"problemId": 101, "code": "print(1)", "language": "JAVA",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/submissions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subs []model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, int64(501), subs[0].ID)
	assert.Equal(t, model.StatusPending, subs[0].Status)
}

func TestGateway_EmptyCodeIsBadRequest(t *testing.T) {
	f := newGatewayFixture(t)
	require.NoError(t, f.contestService.Load(context.Background()))
	f.session.SetParticipant(&model.Participant{ID: 7, Username: "alice"})

	w := f.do(t, http.MethodPost, "/api/v1/submissions", map[string]interface{}{
		"problemId": 101, "code": "   ", "language": "JAVA",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGateway_TemplateByProblemAndLanguage(t *testing.T) {
	f := newGatewayFixture(t)
	require.NoError(t, f.contestService.Load(context.Background()))

	w := f.do(t, http.MethodGet, "/api/v1/contest/problems/101/template?language=CPP", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Language model.Language `json:"language"`
		Code     string         `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.LanguageCpp, resp.Language)
	assert.Contains(t, resp.Code, "#include <iostream>")
}

func TestGateway_SessionReflectsJoinAndLeave(t *testing.T) {
	f := newGatewayFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"joined":false`)

	f.do(t, http.MethodPost, "/api/v1/join", map[string]string{"username": "alice"})
	w = f.do(t, http.MethodGet, "/api/v1/session", nil)
	assert.Contains(t, w.Body.String(), `"joined":true`)

	resp := f.do(t, http.MethodPost, "/api/v1/leave", nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	w = f.do(t, http.MethodGet, "/api/v1/session", nil)
	assert.Contains(t, w.Body.String(), `"joined":false`)
}
