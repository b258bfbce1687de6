// Package gossiprunner delivers queued work to peer nodes.
package gossiprunner

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"eonpeers/internal/ports"
)

// Processor performs the work of one job.
type Processor interface {
	Process(ctx context.Context, job ports.Job) error
}

// Run claims queued jobs every pollInterval and hands them to concurrency
// workers. It returns once ctx is done and the workers have drained.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, log logrus.FieldLogger) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.Job, concurrency)

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							log.WithError(err).Error("job claim error")
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						settle(ctx, repo, job, ctx.Err(), log)
						return
					}
				}
			}
		}
	}()

	// workers
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				err := processor.Process(ctx, job)
				settle(ctx, repo, job, err, log.WithField("worker", idx))
			}
		}(i)
	}
	wg.Wait()
}

// ProcessPending runs every queued job inline with the same processor the
// workers use and reports how many it handled.
func ProcessPending(ctx context.Context, repo ports.JobRepository, processor Processor, log logrus.FieldLogger) (int, error) {
	n := 0
	for {
		job, found, err := repo.ClaimNext(ctx)
		if err != nil {
			return n, err
		}
		if !found {
			return n, nil
		}
		settle(ctx, repo, job, processor.Process(ctx, job), log)
		n++
	}
}

// settle records the outcome of a job. Bookkeeping outlives a cancelled ctx.
// A job cut short by ctx goes back to the queue for the next run.
func settle(ctx context.Context, repo ports.JobRepository, job ports.Job, err error, log logrus.FieldLogger) {
	interrupted := ctx.Err() != nil
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	entry := log.WithFields(logrus.Fields{"job_id": job.ID, "kind": job.Request.Kind, "url": job.Request.URL})
	if err != nil && interrupted {
		entry.WithError(err).Info("job interrupted, requeued")
		if rerr := repo.Requeue(ctx, job.ID, err.Error()); rerr != nil {
			entry.WithError(rerr).Error("requeue")
		}
		return
	}
	if err != nil {
		entry.WithError(err).Warn("job failed")
		if merr := repo.MarkFailed(ctx, job.ID, err.Error()); merr != nil {
			entry.WithError(merr).Error("mark failed")
		}
		return
	}
	if err := repo.MarkCompleted(ctx, job.ID); err != nil {
		entry.WithError(err).Error("mark completed")
		return
	}
	entry.Debug("job completed")
}
