package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
)

// JobQueue is a process-local ports.JobRepository. Jobs do not survive a
// restart; use the Postgres queue for durable delivery.
type JobQueue struct {
	// Lease is how long a running job stays claimed. Zero never reclaims.
	Lease time.Duration

	mu    sync.Mutex
	jobs  map[string]*ports.Job
	order []string
	now   func() time.Time
}

func NewJobQueue() *JobQueue {
	return &JobQueue{
		Lease: ports.DefaultJobLease,
		jobs:  make(map[string]*ports.Job),
		now:   time.Now,
	}
}

func (q *JobQueue) Submit(ctx context.Context, req ports.WorkRequest) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := uuid.NewString()
	q.jobs[id] = &ports.Job{
		ID:       id,
		Request:  req,
		Status:   ports.JobQueued,
		QueuedAt: q.now().UTC(),
	}
	q.order = append(q.order, id)
	return id, nil
}

// ClaimNext hands out the oldest queued job, or a running one whose lease
// ran out, and marks it running.
func (q *JobQueue) ClaimNext(ctx context.Context) (ports.Job, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now().UTC()
	for _, id := range q.order {
		job := q.jobs[id]
		if !q.claimable(job, now) {
			continue
		}
		job.Status = ports.JobRunning
		job.Attempts++
		job.StartedAt = &now
		return *job, true, nil
	}
	return ports.Job{}, false, nil
}

func (q *JobQueue) claimable(job *ports.Job, now time.Time) bool {
	switch job.Status {
	case ports.JobQueued:
		return true
	case ports.JobRunning:
		return q.Lease > 0 && job.StartedAt != nil && now.Sub(*job.StartedAt) > q.Lease
	}
	return false
}

func (q *JobQueue) Requeue(ctx context.Context, jobID string, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[jobID]
	if !ok || job.Status != ports.JobRunning {
		return domain.NotFound("running job %s not found", jobID)
	}
	job.Status = ports.JobQueued
	job.StartedAt = nil
	job.LastError = reason
	return nil
}

func (q *JobQueue) MarkCompleted(ctx context.Context, jobID string) error {
	return q.finish(jobID, ports.JobCompleted, "")
}

func (q *JobQueue) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return q.finish(jobID, ports.JobFailed, reason)
}

func (q *JobQueue) finish(jobID string, status ports.JobStatus, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[jobID]
	if !ok {
		return domain.NotFound("job %s not found", jobID)
	}
	now := q.now().UTC()
	job.Status = status
	job.LastError = reason
	job.FinishedAt = &now
	for i, id := range q.order {
		if id == jobID {
			q.order = append(q.order[:i:i], q.order[i+1:]...)
			break
		}
	}
	return nil
}

func (q *JobQueue) GetJob(ctx context.Context, jobID string) (ports.Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[jobID]
	if !ok {
		return ports.Job{}, domain.NotFound("job %s not found", jobID)
	}
	return *job, nil
}

// Pending reports how many jobs are queued or running.
func (q *JobQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, job := range q.jobs {
		if job.Status == ports.JobQueued || job.Status == ports.JobRunning {
			n++
		}
	}
	return n
}
