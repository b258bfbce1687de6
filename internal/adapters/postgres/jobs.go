package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"eonpeers/internal/ports"
)

// Submit queues work. Called inside InTx, the job commits with the change
// that produced it.
func (db *DB) Submit(ctx context.Context, req ports.WorkRequest) (string, error) {
	id := uuid.NewString()
	_, err := db.conn(ctx).Exec(ctx, `
		INSERT INTO gossip_jobs (id, kind, url, payload, subject)
		VALUES ($1, $2, $3, $4, $5)
	`, id, string(req.Kind), req.URL, []byte(req.Payload), req.Subject)
	if err != nil {
		return "", mapErr(err, "job")
	}
	return id, nil
}

// ClaimNext selects the next queued job, or a running one older than the
// lease, using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.Job, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, mapErr(err, "job")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	lease := db.JobLease
	if lease <= 0 {
		lease = ports.DefaultJobLease
	}
	// Lock the next claimable job
	var id string
	err = tx.QueryRow(ctx, `
		SELECT id FROM gossip_jobs
		WHERE status = 'queued'
		   OR (status = 'running' AND started_at < now() - make_interval(secs => $1))
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`, lease.Seconds()).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, mapErr(err, "job")
	}

	err = scanJob(tx.QueryRow(ctx, `
		UPDATE gossip_jobs SET status = 'running', started_at = now(), attempts = attempts + 1
		WHERE id = $1
		RETURNING `+jobColumns, id), &job)
	if err != nil {
		return job, false, mapErr(err, "job "+id)
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	return db.finish(ctx, jobID, ports.JobCompleted, "")
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return db.finish(ctx, jobID, ports.JobFailed, reason)
}

func (db *DB) Requeue(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE gossip_jobs SET status = 'queued', started_at = NULL, last_error = $2
		WHERE id = $1 AND status = 'running'
	`, jobID, reason)
	return affected(tag, err, "running job "+jobID)
}

func (db *DB) finish(ctx context.Context, jobID string, status ports.JobStatus, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE gossip_jobs SET status = $2, last_error = $3, finished_at = now() WHERE id = $1
	`, jobID, string(status), reason)
	return affected(tag, err, "job "+jobID)
}

func (db *DB) GetJob(ctx context.Context, jobID string) (ports.Job, error) {
	var job ports.Job
	err := scanJob(db.Pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM gossip_jobs WHERE id = $1`, jobID), &job)
	if err != nil {
		return job, mapErr(err, "job "+jobID)
	}
	return job, nil
}

const jobColumns = `id, kind, url, payload, subject, status, attempts, last_error, queued_at, started_at, finished_at`

func scanJob(row pgx.Row, j *ports.Job) error {
	var kind, status string
	var payload []byte
	if err := row.Scan(&j.ID, &kind, &j.Request.URL, &payload, &j.Request.Subject, &status,
		&j.Attempts, &j.LastError, &j.QueuedAt, &j.StartedAt, &j.FinishedAt); err != nil {
		return err
	}
	j.Request.Kind = ports.WorkKind(kind)
	j.Request.Payload = payload
	j.Status = ports.JobStatus(status)
	return nil
}
