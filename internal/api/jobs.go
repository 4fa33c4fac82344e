package api

import (
	"encoding/json"
	"fmt"
)

// SubmitQuoteJob enqueues an asynchronous quote-computation job and returns
// its correlation identifier. Fire-and-forget: a returned id says nothing
// about eventual completion, and this client never polls.
func (c *Client) SubmitQuoteJob(symbol string) (string, error) {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"symbol": symbol}).
		Post(c.baseURL + "/jobs/quote")
	if err != nil {
		return "", fmt.Errorf("submit quote job: %w", err)
	}
	if !resp.IsSuccess() {
		return "", &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	var result struct {
		JobID string `json:"job_id"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode job response: %w", err)
	}
	return result.JobID, nil
}

// JobState is a one-shot snapshot of a submitted job.
type JobState struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// JobStatus looks up a previously submitted job once. It is a plain query,
// not a polling loop.
func (c *Client) JobStatus(jobID string) (*JobState, error) {
	resp, err := c.http.R().Get(c.baseURL + "/jobs/" + jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch job status: %w", err)
	}
	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	var state JobState
	if err := json.Unmarshal(resp.Body(), &state); err != nil {
		return nil, fmt.Errorf("decode job status: %w", err)
	}
	return &state, nil
}
