package gossiprunner

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/adapters/memory"
	"eonpeers/internal/adapters/peer"
	"eonpeers/internal/domain"
	"eonpeers/internal/logging"
	"eonpeers/internal/ports"
)

type fakePeer struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
	body  []byte
}

func newFakePeer() *fakePeer {
	return &fakePeer{calls: map[string]int{}, fail: map[string]error{}}
}

func (f *fakePeer) PostJSON(ctx context.Context, url string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	return f.fail[url]
}

func (f *fakePeer) Get(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	return f.body, f.fail[url]
}

func (f *fakePeer) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

type fakeReconciler struct {
	companyID string
	body      string
	err       error
}

func (f *fakeReconciler) ReconcilePayload(ctx context.Context, companyID string, body []byte) error {
	f.companyID, f.body = companyID, string(body)
	return f.err
}

func delivery(p PeerClient, r Reconciler) *Delivery {
	return &Delivery{Peer: p, Companies: r, MaxRetries: 3, Base: time.Millisecond, Log: logging.Discard()}
}

func job(kind ports.WorkKind, url string) ports.Job {
	return ports.Job{ID: "j1", Request: ports.WorkRequest{Kind: kind, URL: url, Payload: []byte(`{}`), Subject: "c1"}}
}

func TestDeliverySucceeds(t *testing.T) {
	p := newFakePeer()
	require.NoError(t, delivery(p, nil).Process(context.Background(), job(ports.WorkPost, "http://b/x")))
	assert.Equal(t, 1, p.count("http://b/x"))
}

func TestDeliveryStopsOnRejection(t *testing.T) {
	p := newFakePeer()
	p.fail["http://b/x"] = &peer.StatusError{Method: "POST", URL: "http://b/x", Code: 409}

	err := delivery(p, nil).Process(context.Background(), job(ports.WorkPost, "http://b/x"))
	var se *peer.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, p.count("http://b/x"))
}

func TestDeliveryConflictAfterLostAnswerIsDelivered(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Stored, but the answer arrives after the client gave up.
			time.Sleep(150 * time.Millisecond)
			w.WriteHeader(http.StatusCreated)
			return
		}
		http.Error(w, "shipment already exists", http.StatusConflict)
	}))
	defer srv.Close()

	d := &Delivery{Peer: peer.New(50*time.Millisecond, 0), MaxRetries: 2, Base: time.Millisecond, Log: logging.Discard()}
	err := d.Process(context.Background(), job(ports.WorkPost, srv.URL+"/shipment/rpc/import"))
	assert.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestDeliveryConflictOnRedeliveredJobIsDelivered(t *testing.T) {
	p := newFakePeer()
	p.fail["http://b/x"] = &peer.StatusError{Method: "POST", URL: "http://b/x", Code: http.StatusConflict}
	j := job(ports.WorkPost, "http://b/x")
	j.Attempts = 2

	assert.NoError(t, delivery(p, nil).Process(context.Background(), j))
	assert.Equal(t, 1, p.count("http://b/x"))

	j.Request.Kind = ports.WorkVerifyCompany
	assert.Error(t, delivery(p, &fakeReconciler{}).Process(context.Background(), j), "only posts are idempotent this way")
}

func TestDeliveryRetriesTransientFailures(t *testing.T) {
	p := newFakePeer()
	p.fail["http://b/x"] = &peer.StatusError{Method: "POST", URL: "http://b/x", Code: 503}

	err := delivery(p, nil).Process(context.Background(), job(ports.WorkPost, "http://b/x"))
	require.Error(t, err)
	assert.Equal(t, 4, p.count("http://b/x"), "first attempt plus three retries")
}

func TestDeliveryVerifiesCompany(t *testing.T) {
	p := newFakePeer()
	p.body = []byte(`{"vat_number":"DE002"}`)
	r := &fakeReconciler{}

	require.NoError(t, delivery(p, r).Process(context.Background(), job(ports.WorkVerifyCompany, "http://b/company/node-owner")))
	assert.Equal(t, "c1", r.companyID)
	assert.JSONEq(t, `{"vat_number":"DE002"}`, r.body)

	r.err = domain.Integrity("mismatch")
	err := delivery(p, r).Process(context.Background(), job(ports.WorkVerifyCompany, "http://b/company/node-owner"))
	assert.ErrorIs(t, err, domain.ErrIntegrity)
	assert.Equal(t, 2, p.count("http://b/company/node-owner"), "domain errors are not retried")
}

func TestProcessPendingRecordsOutcome(t *testing.T) {
	ctx := context.Background()
	q := memory.NewJobQueue()
	p := newFakePeer()
	p.fail["http://down/x"] = &peer.StatusError{Method: "POST", URL: "http://down/x", Code: 400, Body: "bad"}

	ok, err := q.Submit(ctx, ports.WorkRequest{Kind: ports.WorkPost, URL: "http://up/x"})
	require.NoError(t, err)
	bad, err := q.Submit(ctx, ports.WorkRequest{Kind: ports.WorkPost, URL: "http://down/x"})
	require.NoError(t, err)

	n, err := ProcessPending(ctx, q, delivery(p, nil), logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := q.GetJob(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, ports.JobCompleted, got.Status)

	got, err = q.GetJob(ctx, bad)
	require.NoError(t, err)
	assert.Equal(t, ports.JobFailed, got.Status)
	assert.Contains(t, got.LastError, "status 400")
}

func TestRunDrainsQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := memory.NewJobQueue()
	p := newFakePeer()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := q.Submit(ctx, ports.WorkRequest{Kind: ports.WorkPost, URL: "http://b/x"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	done := make(chan struct{})
	go func() {
		Run(ctx, q, delivery(p, nil), 2, 5*time.Millisecond, logging.Discard())
		close(done)
	}()

	require.Eventually(t, func() bool { return p.count("http://b/x") == 5 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		for _, id := range ids {
			j, err := q.GetJob(context.Background(), id)
			if err != nil || j.Status != ports.JobCompleted {
				return false
			}
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// blockingProcessor holds every job until ctx ends.
type blockingProcessor struct {
	started chan string
}

func (b *blockingProcessor) Process(ctx context.Context, job ports.Job) error {
	b.started <- job.ID
	<-ctx.Done()
	return ctx.Err()
}

func TestRunRequeuesJobsCutShortByShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := memory.NewJobQueue()
	id, err := q.Submit(ctx, ports.WorkRequest{Kind: ports.WorkPost, URL: "http://b/x"})
	require.NoError(t, err)

	bp := &blockingProcessor{started: make(chan string, 1)}
	done := make(chan struct{})
	go func() {
		Run(ctx, q, bp, 1, 5*time.Millisecond, logging.Discard())
		close(done)
	}()

	select {
	case got := <-bp.started:
		require.Equal(t, id, got)
	case <-time.After(2 * time.Second):
		t.Fatal("job was never claimed")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	got, err := q.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ports.JobQueued, got.Status)
	assert.Equal(t, context.Canceled.Error(), got.LastError)
	assert.Nil(t, got.FinishedAt)

	p := newFakePeer()
	n, err := ProcessPending(context.Background(), q, delivery(p, nil), logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got, err = q.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ports.JobCompleted, got.Status)
	assert.Equal(t, 2, got.Attempts)
}
