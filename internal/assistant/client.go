// Package assistant provides HTTP clients for the externally hosted AI
// collaborators: the conversational health assistant, the symptom triage
// model, and the severity scorer. The collaborators' internal behavior is
// opaque; this package only speaks their wire contracts, enforces bounded
// timeouts, and validates responses at the boundary.
//
// No logging happens in this package (callers decide how/what to log);
// observability is limited to Prometheus call metrics.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// ErrUnavailable indicates that a collaborator call failed (network error,
// timeout, non-2xx status, or malformed payload). Callers treat it as a
// retryable, non-fatal condition: chat degrades to a fallback message and
// triage surfaces the failure to the user.
var ErrUnavailable = errors.New("collaborator unavailable")

// DefaultTimeout bounds every collaborator call. The upstream models have no
// retry/timeout discipline of their own, so an unresponsive endpoint must not
// leave the caller blocked indefinitely.
const DefaultTimeout = 15 * time.Second

// Turn is one prior utterance passed to the assistant as context.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assessment is the triage collaborator's response for one symptom report.
type Assessment struct {
	TriageLevel       string `json:"triage_level"`
	Confidence        string `json:"confidence"`
	Reasoning         string `json:"reasoning"`
	RecommendedAction string `json:"recommended_action"`
	DetailedAnalysis  string `json:"detailed_analysis,omitempty"`
}

// Client calls the AI collaborator endpoints. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

// NewClient builds a Client for the collaborator service at baseURL. apiKey
// may be empty when the upstream does not require one. timeout <= 0 falls
// back to DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
	}
}

// chatRequest is the assistant wire request: the new message plus a bounded
// trailing window of prior history, oldest first.
type chatRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat sends a user message with its prior-context window and returns the
// assistant's reply text. history must already be bounded by the caller and
// must not include the message being sent.
func (c *Client) Chat(ctx context.Context, message string, history []Turn) (string, error) {
	if history == nil {
		history = []Turn{}
	}
	var out chatResponse
	err := c.post(ctx, "/v1/chat", "chat", chatRequest{Message: message, History: history}, &out)
	if err != nil {
		return "", err
	}
	if out.Response == "" {
		return "", fmt.Errorf("%w: empty chat response", ErrUnavailable)
	}
	return out.Response, nil
}

type triageRequest struct {
	Symptoms string `json:"symptoms"`
}

// Assess submits a symptom description for triage. The returned level is
// validated against the known enum; an out-of-contract level is an error,
// never silently coerced.
func (c *Client) Assess(ctx context.Context, symptoms string) (Assessment, error) {
	var out Assessment
	if err := c.post(ctx, "/v1/triage", "triage", triageRequest{Symptoms: symptoms}, &out); err != nil {
		return Assessment{}, err
	}
	switch out.TriageLevel {
	case domain.TriageSelfMonitor, domain.TriageVisitDoctor:
	default:
		return Assessment{}, fmt.Errorf("%w: unknown triage level %q", ErrUnavailable, out.TriageLevel)
	}
	if out.Confidence == "" {
		return Assessment{}, fmt.Errorf("%w: missing confidence label", ErrUnavailable)
	}
	return out, nil
}

type scoreResponse struct {
	Score int `json:"score"`
}

// Score asks the scoring collaborator for a severity score in [0,100].
func (c *Client) Score(ctx context.Context, symptoms string) (int, error) {
	var out scoreResponse
	if err := c.post(ctx, "/v1/score", "score", triageRequest{Symptoms: symptoms}, &out); err != nil {
		return 0, err
	}
	if out.Score < 0 || out.Score > 100 {
		return 0, fmt.Errorf("%w: score %d out of range", ErrUnavailable, out.Score)
	}
	return out.Score, nil
}

// post marshals in, POSTs it to path, and decodes the JSON response into out.
// All failure modes collapse into ErrUnavailable wrappers so callers only
// branch on one sentinel.
func (c *Client) post(ctx context.Context, path, op string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observeCall(op, "error", time.Since(start))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observeCall(op, "error", time.Since(start))
		// Drain a little of the body for the error message; ignore failures.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		observeCall(op, "error", time.Since(start))
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	observeCall(op, "ok", time.Since(start))
	return nil
}
