package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contest_client/internal/common"
	"contest_client/internal/domain/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is the typed HTTP client for the contest backend. Read paths go
// through a bounded exponential-backoff retry; the submit path performs
// exactly one attempt so a failed submit is never silently duplicated.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger

	retryAttempts  int
	retryBaseDelay time.Duration
}

func NewClient(baseURL string, timeout time.Duration, retryAttempts int, retryBaseDelay time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: timeout},
		log:            log.With().Str("component", "backend_client").Logger(),
		retryAttempts:  retryAttempts,
		retryBaseDelay: retryBaseDelay,
	}
}

type JoinRequest struct {
	Username  string `json:"username"`
	ContestID int64  `json:"contestId"`
}

type CreateSubmissionRequest struct {
	UserID    int64          `json:"userId"`
	ProblemID int64          `json:"problemId"`
	Code      string         `json:"code"`
	Language  model.Language `json:"language"`
}

// Join registers the participant with the backend. Not retried: the server
// owns username/contest conflicts and the user drives any repeat attempt.
func (c *Client) Join(ctx context.Context, username string, contestID int64) (*model.Participant, error) {
	var participant model.Participant
	err := c.doJSON(ctx, http.MethodPost, "/contests/join", JoinRequest{Username: username, ContestID: contestID}, &participant)
	if err != nil {
		return nil, common.Errorf("join contest %d: %w", contestID, err)
	}
	return &participant, nil
}

func (c *Client) GetContest(ctx context.Context, contestID int64) (*model.Contest, error) {
	var contest model.Contest
	err := c.withRetry(ctx, "get_contest", func() error {
		return c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/contests/%d", contestID), nil, &contest)
	})
	if err != nil {
		return nil, common.Errorf("fetch contest %d: %w", contestID, err)
	}
	return &contest, nil
}

func (c *Client) GetLeaderboard(ctx context.Context, contestID int64) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := c.withRetry(ctx, "get_leaderboard", func() error {
		return c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/contests/%d/leaderboard", contestID), nil, &entries)
	})
	if err != nil {
		return nil, common.Errorf("fetch leaderboard for contest %d: %w", contestID, err)
	}
	return entries, nil
}

// CreateSubmission performs a single attempt; the caller surfaces failures
// to the user and the registry stays untouched.
func (c *Client) CreateSubmission(ctx context.Context, req CreateSubmissionRequest) (*model.Submission, error) {
	var submission model.Submission
	if err := c.doJSON(ctx, http.MethodPost, "/submissions", req, &submission); err != nil {
		return nil, common.Errorf("create submission for problem %d: %w", req.ProblemID, err)
	}
	return &submission, nil
}

func (c *Client) GetSubmission(ctx context.Context, submissionID int64) (*model.Submission, error) {
	var submission model.Submission
	err := c.withRetry(ctx, "get_submission", func() error {
		return c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/submissions/%d", submissionID), nil, &submission)
	})
	if err != nil {
		return nil, common.Errorf("fetch submission %d: %w", submissionID, err)
	}
	return &submission, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return common.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return common.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.Errorf("%s %s: %v: %w", method, path, err, common.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return common.Errorf("%s %s: %w", method, path, common.ErrNotFound)
	}
	if resp.StatusCode >= 500 {
		return common.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, common.ErrServiceUnavailable)
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return common.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return common.Errorf("%s %s: failed to decode response: %w", method, path, err)
		}
	}
	return nil
}
