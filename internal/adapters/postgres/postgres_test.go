package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
)

var _ ports.Repository = (*DB)(nil)
var _ ports.JobRepository = (*DB)(nil)

// open connects to TEST_DATABASE_URL, migrates and empties every table.
func open(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE gossip_jobs, validations, positions, shipments, locations, companies`)
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, db *DB) (domain.Company, domain.Shipment) {
	t.Helper()
	ctx := context.Background()
	c := domain.Company{Name: "Acme", VATNumber: "IT001", IsLocal: true}
	require.NoError(t, db.CreateCompany(ctx, &c))
	sh := domain.Shipment{HashID: "h1", Name: "ACME-001", CurrentCompanyID: c.ID}
	require.NoError(t, db.CreateShipment(ctx, &sh))
	return c, sh
}

func TestCompanyConstraints(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	c, _ := seed(t, db)

	dup := domain.Company{Name: "Other", VATNumber: "IT001"}
	assert.ErrorIs(t, db.CreateCompany(ctx, &dup), domain.ErrConflict)
	second := domain.Company{Name: "Second", VATNumber: "DE002", IsLocal: true}
	assert.ErrorIs(t, db.CreateCompany(ctx, &second), domain.ErrConflict)

	local, found, err := db.LocalCompany(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, c.ID, local.ID)

	_, err = db.GetCompany(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, db.DeleteCompany(ctx, c.ID), domain.ErrConflict, "still holds a shipment")
}

func TestPositionTripleAndOrder(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	c, sh := seed(t, db)

	for _, idx := range []int{2, 0, 1} {
		p := domain.Position{HashID: "p" + string(rune('0'+idx)), CompanyID: c.ID, ShipmentID: sh.ID, Index: idx, Role: domain.RoleCarrier}
		require.NoError(t, db.CreatePosition(ctx, &p))
	}
	again := domain.Position{HashID: "other", CompanyID: c.ID, ShipmentID: sh.ID, Index: 1}
	assert.ErrorIs(t, db.CreatePosition(ctx, &again), domain.ErrConflict)

	chain, err := db.ListPositions(ctx, sh.ID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	for i, p := range chain {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, domain.RoleCarrier, p.Role)
	}
}

func TestInTxRollsBack(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	c, _ := seed(t, db)

	err := db.InTx(ctx, func(ctx context.Context) error {
		sh := domain.Shipment{HashID: "h2", Name: "ACME-002", CurrentCompanyID: c.ID}
		require.NoError(t, db.CreateShipment(ctx, &sh))
		return domain.Invalid("abort")
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, found, err := db.FindShipmentByHash(ctx, "h2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestValidationSignedOnce(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	c, _ := seed(t, db)

	loc := domain.Location{Name: "Dock", LocationData: "d", LocationKey: "k", CompanyID: c.ID}
	require.NoError(t, db.CreateLocation(ctx, &loc))
	v := domain.Validation{LocationID: loc.ID}
	require.NoError(t, db.CreateValidation(ctx, &v))

	require.NoError(t, db.MarkValidationSigned(ctx, v.ID, "sig", c.ID))
	assert.ErrorIs(t, db.MarkValidationSigned(ctx, v.ID, "sig2", c.ID), domain.ErrConflict)
	assert.ErrorIs(t, db.MarkValidationSigned(ctx, "missing", "sig", c.ID), domain.ErrNotFound)

	got, err := db.GetValidation(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationSigned, got.Status())
	assert.Equal(t, c.ID, got.SignerCompanyID)
}

func TestJobQueue(t *testing.T) {
	db := open(t)
	ctx := context.Background()

	id, err := db.Submit(ctx, ports.WorkRequest{Kind: ports.WorkPost, URL: "http://peer/x", Payload: []byte(`{"a":1}`)})
	require.NoError(t, err)

	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, 1, job.Attempts)
	assert.JSONEq(t, `{"a":1}`, string(job.Request.Payload))

	_, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.MarkFailed(ctx, id, "peer down"))
	got, err := db.GetJob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ports.JobFailed, got.Status)
	assert.Equal(t, "peer down", got.LastError)
	assert.NotNil(t, got.FinishedAt)
}

func TestJobQueueLeaseAndRequeue(t *testing.T) {
	db := open(t)
	ctx := context.Background()

	id, err := db.Submit(ctx, ports.WorkRequest{Kind: ports.WorkPost, URL: "http://peer/x"})
	require.NoError(t, err)
	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, job.StartedAt)

	require.NoError(t, db.Requeue(ctx, id, "context canceled"))
	assert.ErrorIs(t, db.Requeue(ctx, id, "again"), domain.ErrNotFound, "only running jobs go back")
	got, err := db.GetJob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ports.JobQueued, got.Status)
	assert.Nil(t, got.StartedAt)
	assert.Nil(t, got.FinishedAt)

	job, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, job.Attempts)

	// A worker that died holding the job leaves it running past the lease.
	_, err = db.Pool.Exec(ctx, `UPDATE gossip_jobs SET started_at = now() - interval '10 minutes' WHERE id = $1`, id)
	require.NoError(t, err)
	job, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, 3, job.Attempts)

	_, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found, "a fresh claim holds the lease")
}

func TestLockShipmentBlocksOtherTransactions(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	_, sh := seed(t, db)

	_, err := db.LockShipment(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	locked := make(chan struct{})
	release := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		first <- db.InTx(ctx, func(ctx context.Context) error {
			if _, err := db.LockShipment(ctx, sh.ID); err != nil {
				close(locked)
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	second := make(chan error, 1)
	go func() {
		second <- db.InTx(ctx, func(ctx context.Context) error {
			_, err := db.LockShipment(ctx, sh.ID)
			return err
		})
	}()

	select {
	case err := <-second:
		t.Fatalf("second lock returned while the first was held: %v", err)
	case <-time.After(200 * time.Millisecond):
	}
	close(release)
	require.NoError(t, <-first)
	require.NoError(t, <-second)
}
