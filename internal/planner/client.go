package planner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/afuentes/planear/internal/util"
)

// DefaultBaseURL is the planning service address used when no server is
// configured.
const DefaultBaseURL = "http://localhost:8000"

// framePrefix marks the payload lines of the streaming response. Lines
// without it (blank keep-alive lines and the like) are not frames.
const framePrefix = "data: "

// streamLostMessage is the fixed user-facing message for a network failure
// while the stream is being read.
const streamLostMessage = "Lost connection to the planning service"

// Client talks to the planning service.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL. The underlying HTTP client has no timeout: streams
// are read until the server closes them.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// GeneratePlan submits the project statement and returns a channel of
// status events decoded from the streaming response. The channel is closed
// when the stream ends. Events are delivered in the order they are read.
//
// A malformed frame is logged and skipped without aborting the stream; a
// network failure mid-stream surfaces as a final synthetic error event.
func (c *Client) GeneratePlan(ctx context.Context, statement string) (<-chan StatusEvent, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return nil, ErrEmptyStatement
	}

	body, err := json.Marshal(Request{ProjectStatement: statement})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-plan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := util.NewRequestID()
	log := logrus.WithField("request", requestID)
	log.WithField("statement_len", len(statement)).Debug("Submitting plan request")

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.WithError(err).Warn("Plan request failed to connect")
		return nil, &ConnectError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		log.WithField("status", resp.StatusCode).Warn("Plan request rejected")
		return nil, &TransportError{Code: resp.StatusCode}
	}

	events := make(chan StatusEvent, 100)

	go func() {
		defer close(events)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		// Completed frames carry the whole plan in one line.
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)

		for scanner.Scan() {
			payload, ok := strings.CutPrefix(scanner.Text(), framePrefix)
			if !ok {
				continue
			}

			var event StatusEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				log.WithError(err).Warn("Skipping malformed frame")
				continue
			}
			if event.Status == "" {
				log.Warn("Skipping frame without status")
				continue
			}

			events <- event
		}

		if err := scanner.Err(); err != nil {
			log.WithError(err).Warn("Stream read failed")
			events <- StatusEvent{
				Status:  StatusError,
				Agent:   AgentSystem,
				Message: streamLostMessage,
			}
		} else {
			log.Debug("Stream ended")
		}
	}()

	return events, nil
}

// healthResponse is the body of the service health endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

// Health checks the planning service health endpoint. A nil return means
// the service answered healthy.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &ConnectError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{Code: resp.StatusCode}
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}
	if health.Status != "healthy" {
		return fmt.Errorf("planning service reported status %q", health.Status)
	}

	return nil
}
