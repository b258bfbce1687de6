package ports

import (
	"context"
	"encoding/json"
	"time"
)

// WorkKind names what a background worker does with a WorkRequest.
type WorkKind string

const (
	// WorkPost POSTs Payload as JSON to URL.
	WorkPost WorkKind = "gossip.post"
	// WorkVerifyCompany GETs the node owner at URL and reconciles it with the
	// local company Subject.
	WorkVerifyCompany WorkKind = "company.verify"
)

// WorkRequest is the unit of outbound work the core emits. It carries
// everything the worker needs so it does not depend on later state.
type WorkRequest struct {
	Kind    WorkKind
	URL     string
	Payload json.RawMessage
	Subject string
}

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

type Job struct {
	ID         string
	Request    WorkRequest
	Status     JobStatus
	Attempts   int
	LastError  string
	QueuedAt   time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// Dispatcher accepts work for eventual, at-least-once execution.
type Dispatcher interface {
	Submit(ctx context.Context, req WorkRequest) (jobID string, err error)
}

// JobRepository supports claiming and updating gossip jobs.
type JobRepository interface {
	Dispatcher
	// ClaimNext marks the oldest claimable job running. A job left running
	// longer than the repository's lease is claimable again, so work held by
	// a crashed worker is not lost.
	ClaimNext(ctx context.Context) (job Job, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	// Requeue hands a running job back to the queue without counting it as
	// finished. reason is kept as LastError.
	Requeue(ctx context.Context, jobID string, reason string) error
	GetJob(ctx context.Context, jobID string) (Job, error)
}

// DefaultJobLease is how long a claimed job may run before another worker
// may claim it again.
const DefaultJobLease = 5 * time.Minute
