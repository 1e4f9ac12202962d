package subformer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// DefaultPollInterval is the default delay between completion polls.
const DefaultPollInterval = 2 * time.Second

// MaxDeleteJobs is the server-side cap on ids per delete call.
const MaxDeleteJobs = 50

// ErrWaitTimeout is returned (wrapped) by Wait when the job does not
// complete within the configured timeout. It originates client-side and is
// distinct from the API error taxonomy.
var ErrWaitTimeout = errors.New("wait for job timed out")

// JobsService provides job query, deletion and completion-wait operations.
type JobsService struct {
	client *Client
}

// newJobsService creates a new jobs service.
func newJobsService(client *Client) *JobsService {
	return &JobsService{client: client}
}

// Get fetches a job by ID.
func (s *JobsService) Get(ctx context.Context, jobID string) (*Job, error) {
	var job Job
	if err := s.client.http.request(ctx, "GET", "/jobs/"+url.PathEscape(jobID), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobsOptions controls job listing.
type ListJobsOptions struct {
	// Offset is the number of items to skip.
	Offset int

	// Limit is the maximum number of items to return. Defaults to 12.
	Limit int

	// Type filters by job type when non-empty.
	Type JobType
}

// List returns a page of the authenticated user's jobs.
func (s *JobsService) List(ctx context.Context, opts *ListJobsOptions) (*PaginatedJobs, error) {
	if opts == nil {
		opts = &ListJobsOptions{}
	}
	limit := opts.Limit
	if limit == 0 {
		limit = 12
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(opts.Offset))
	query.Set("limit", strconv.Itoa(limit))
	if opts.Type != "" {
		query.Set("type", string(opts.Type))
	}

	var page PaginatedJobs
	if err := s.client.http.request(ctx, "GET", "/jobs", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// successEnvelope is the response wrapper used by delete endpoints.
type successEnvelope struct {
	Success bool `json:"success"`
}

// Delete deletes jobs by ID. The server accepts at most MaxDeleteJobs ids
// per call.
func (s *JobsService) Delete(ctx context.Context, jobIDs []string) (bool, error) {
	if len(jobIDs) > MaxDeleteJobs {
		return false, fmt.Errorf("at most %d job ids per delete, got %d", MaxDeleteJobs, len(jobIDs))
	}

	body := struct {
		JobIDs []string `json:"jobIds"`
	}{
		JobIDs: jobIDs,
	}

	var resp successEnvelope
	if err := s.client.http.request(ctx, "DELETE", "/jobs", nil, body, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// WaitOptions controls the Wait polling loop.
type WaitOptions struct {
	// PollInterval is the delay between polls. Defaults to
	// DefaultPollInterval.
	PollInterval time.Duration

	// Timeout is the maximum total time to wait. Zero means wait forever.
	Timeout time.Duration
}

// Wait polls the job until it reaches a terminal state and returns it,
// using the default poll interval and no timeout. The context is the only
// other way to stop waiting.
func (s *JobsService) Wait(ctx context.Context, jobID string) (*Job, error) {
	return s.WaitWithOptions(ctx, jobID, WaitOptions{})
}

// WaitWithOptions polls the job until it reaches a terminal state.
//
// The job is fetched immediately, so an already-complete job returns on the
// first poll without sleeping. Polling is unconditional: no backoff, no
// jitter. The timeout is measured as wall-clock time from the start of the
// call and checked after each poll; when it elapses, the returned error
// wraps ErrWaitTimeout.
func (s *JobsService) WaitWithOptions(ctx context.Context, jobID string, opts WaitOptions) (*Job, error) {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := time.Now()

	for {
		job, err := s.Get(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job.IsComplete() {
			return job, nil
		}

		if opts.Timeout > 0 && time.Since(start) > opts.Timeout {
			return nil, fmt.Errorf("%w: job %s did not complete within %s", ErrWaitTimeout, jobID, opts.Timeout)
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
