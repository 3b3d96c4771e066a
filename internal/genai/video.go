package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"
)

// VideoClient talks to the promo-video rendering service: submit a script,
// poll until the render finishes, fetch the binary.
type VideoClient struct {
	client  *resty.Client
	baseURL string
}

// VideoClientOptions tunes retry/timeout behavior.
type VideoClientOptions struct {
	Timeout       time.Duration
	RetryCount    int
	RetryWaitTime time.Duration
}

// NewVideoClient creates a client for the given service base URL.
func NewVideoClient(baseURL string, opts VideoClientOptions) *VideoClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RetryCount <= 0 {
		opts.RetryCount = 3
	}
	if opts.RetryWaitTime <= 0 {
		opts.RetryWaitTime = 2 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWaitTime).
		SetTimeout(opts.Timeout)

	return &VideoClient{client: client, baseURL: baseURL}
}

// Close releases the underlying HTTP client.
func (c *VideoClient) Close() error {
	return c.client.Close()
}

type submitVideoRequest struct {
	Script string `json:"script"`
}

type videoJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Submit sends the script for rendering and returns the job ID.
func (c *VideoClient) Submit(ctx context.Context, script string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(submitVideoRequest{Script: script}).
		Post("/v1/videos")
	if err != nil {
		return "", fmt.Errorf("failed to submit video job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return "", fmt.Errorf("video service rejected the job: status %d", resp.StatusCode())
	}

	buff := new(bytes.Buffer)
	if _, err := buff.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read submit response: %w", err)
	}
	var job videoJobResponse
	if err := json.Unmarshal(buff.Bytes(), &job); err != nil {
		return "", fmt.Errorf("failed to parse submit response: %w", err)
	}
	if job.JobID == "" {
		return "", fmt.Errorf("video service returned no job id")
	}
	return job.JobID, nil
}

// Poll checks the job until it is ready, then fetches and returns the video
// binary. It respects ctx for cancellation between polls.
func (c *VideoClient) Poll(ctx context.Context, jobID string, interval time.Duration) ([]byte, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.status(ctx, jobID)
		if err != nil {
			return nil, err
		}
		switch status.Status {
		case "ready":
			return c.fetch(ctx, jobID)
		case "failed":
			return nil, fmt.Errorf("video render failed: %s", status.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *VideoClient) status(ctx context.Context, jobID string) (*videoJobResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/v1/videos/" + jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to poll video job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("video service poll failed: status %d", resp.StatusCode())
	}

	buff := new(bytes.Buffer)
	if _, err := buff.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read poll response: %w", err)
	}
	var job videoJobResponse
	if err := json.Unmarshal(buff.Bytes(), &job); err != nil {
		return nil, fmt.Errorf("failed to parse poll response: %w", err)
	}
	return &job, nil
}

func (c *VideoClient) fetch(ctx context.Context, jobID string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/v1/videos/" + jobID + "/content")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("video fetch failed: status %d", resp.StatusCode())
	}

	buff := new(bytes.Buffer)
	if _, err := buff.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read video data: %w", err)
	}
	if buff.Len() == 0 {
		return nil, fmt.Errorf("video service returned empty content")
	}
	return buff.Bytes(), nil
}
