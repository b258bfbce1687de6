package gossiprunner

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"

	"eonpeers/internal/adapters/peer"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
)

// PeerClient is the outbound HTTP capability.
type PeerClient interface {
	PostJSON(ctx context.Context, url string, body []byte) error
	Get(ctx context.Context, url string) ([]byte, error)
}

// Reconciler checks a registered company against the owner record of its node.
type Reconciler interface {
	ReconcilePayload(ctx context.Context, companyID string, body []byte) error
}

// Delivery executes gossip jobs with exponential backoff. Peer rejections
// (4xx) and domain errors stop retrying at once. A post answered with 409
// after an earlier attempt counts as delivered: the peer kept the earlier
// copy even though its answer was lost.
type Delivery struct {
	Peer       PeerClient
	Companies  Reconciler
	MaxRetries uint64
	Base       time.Duration
	Log        logrus.FieldLogger
}

func (d *Delivery) Process(ctx context.Context, job ports.Job) error {
	base := d.Base
	if base <= 0 {
		base = time.Second
	}
	b := retry.NewExponential(base)
	b = retry.WithJitterPercent(20, b)
	b = retry.WithMaxRetries(d.MaxRetries, b)

	attempt := 0
	return retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		err := d.once(ctx, job.Request)
		if err != nil && redelivered(job, attempt, err) {
			d.Log.WithFields(logrus.Fields{"job_id": job.ID, "attempt": attempt, "url": job.Request.URL}).Info("peer already holds the payload")
			return nil
		}
		if err == nil || !retryable(err) {
			return err
		}
		d.Log.WithFields(logrus.Fields{"job_id": job.ID, "attempt": attempt}).WithError(err).Info("delivery failed, retrying")
		return retry.RetryableError(err)
	})
}

func (d *Delivery) once(ctx context.Context, req ports.WorkRequest) error {
	switch req.Kind {
	case ports.WorkPost:
		return d.Peer.PostJSON(ctx, req.URL, req.Payload)
	case ports.WorkVerifyCompany:
		body, err := d.Peer.Get(ctx, req.URL)
		if err != nil {
			return err
		}
		return d.Companies.ReconcilePayload(ctx, req.Subject, body)
	default:
		return domain.Invalid("unknown work kind %q", req.Kind)
	}
}

// redelivered reports whether err is a peer's duplicate rejection of a post
// this job may already have delivered.
func redelivered(job ports.Job, attempt int, err error) bool {
	if job.Request.Kind != ports.WorkPost || (attempt < 2 && job.Attempts < 2) {
		return false
	}
	var se *peer.StatusError
	return errors.As(err, &se) && se.Code == http.StatusConflict
}

func retryable(err error) bool {
	var se *peer.StatusError
	if errors.As(err, &se) {
		return !se.Permanent()
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Kind == domain.KindInternal
	}
	return !errors.Is(err, context.Canceled)
}

