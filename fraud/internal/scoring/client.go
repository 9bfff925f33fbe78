// Package scoring calls the remote fraud scoring model.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/riskstream-systems/riskstream-stack/common/models"
)

// Result is the scoring service's answer for one transaction. FraudScore is
// always in the canonical 0.0-1.0 range after normalization.
type Result struct {
	FraudScore  float64 `json:"fraudScore"`
	Explanation string  `json:"explanation,omitempty"`
}

// RemoteError is a transport or remote-side scoring failure. StatusCode is
// zero when the remote never answered (connection failure, timeout).
type RemoteError struct {
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scoring service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("scoring service unreachable: %v", e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Client scores transactions against a remote model endpoint with a bounded
// timeout per call.
type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a scoring client. endpoint is the full score URL
// (e.g. "http://localhost:5000/score"); timeout bounds each call.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Score posts the full transaction to the scoring endpoint and returns the
// normalized result. The timeout is enforced as a hard cancellation of the
// outstanding call. Failures are classified: *RemoteError for transport and
// remote-side failures, any other error is unexpected. No retry either way.
func (c *Client) Score(ctx context.Context, txn *models.Transaction) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(txn)
	if err != nil {
		return nil, fmt.Errorf("encode transaction %s: %w", txn.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode scoring response: %w", err)
	}

	result.FraudScore = normalize(result.FraudScore)
	return &result, nil
}

// normalize converts a score to the canonical 0.0-1.0 range. Model variants
// disagree on the range: some report a 0-100 percentage. Anything above 1 is
// treated as a percentage and divided by 100.
func normalize(score float64) float64 {
	if score > 1 {
		return score / 100
	}
	return score
}
