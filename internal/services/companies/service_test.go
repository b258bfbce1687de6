package companies

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/adapters/memory"
	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/domain"
	"eonpeers/internal/logging"
	"eonpeers/internal/ports"
)

func setup(t *testing.T) (*Service, *memory.Store, *memory.JobQueue) {
	t.Helper()
	signer, err := attest.NewEd25519Signer(bytes.Repeat([]byte{1}, attest.SeedSize))
	require.NoError(t, err)
	store := memory.New()
	jobs := memory.NewJobQueue()
	return New(store, store, jobs, attest.NewAttestor(signer), logging.Discard()), store, jobs
}

func TestEnsureOwner(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.EnsureOwner(ctx, Owner{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	owner, err := svc.EnsureOwner(ctx, Owner{Name: "Acme", VATNumber: "IT001", BaseURL: "http://a.example"})
	require.NoError(t, err)
	assert.True(t, owner.IsLocal)
	assert.Equal(t, svc.attestor.PublicKeyHex(), owner.PublicKey)

	again, err := svc.EnsureOwner(ctx, Owner{Name: "Acme Srl", VATNumber: "IT001"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, again.ID)
	assert.Equal(t, "Acme Srl", again.Name)
	assert.Equal(t, "http://a.example", again.BaseURL)

	_, err = svc.EnsureOwner(ctx, Owner{Name: "Acme", VATNumber: "IT999"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.NodeOwner(ctx)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.ID)
}

func TestNodeOwnerMissing(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.NodeOwner(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterQueuesVerification(t *testing.T) {
	svc, _, jobs := setup(t)
	ctx := context.Background()

	c, err := svc.Register(ctx, api.NewCompany{Name: "Carrier", VATNumber: "DE002", BaseURL: "http://b.example"})
	require.NoError(t, err)
	assert.False(t, c.IsLocal)

	job, found, err := jobs.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, ports.WorkVerifyCompany, job.Request.Kind)
	assert.Equal(t, "http://b.example/company/node-owner", job.Request.URL)
	assert.Equal(t, c.ID, job.Request.Subject)

	_, err = svc.Register(ctx, api.NewCompany{Name: "Other", VATNumber: "DE002"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Register(ctx, api.NewCompany{Name: "No VAT"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegisterWithoutBaseURLQueuesNothing(t *testing.T) {
	svc, _, jobs := setup(t)
	_, err := svc.Register(context.Background(), api.NewCompany{Name: "Carrier", VATNumber: "DE002"})
	require.NoError(t, err)
	assert.Equal(t, 0, jobs.Pending())
}

func TestReconcileFillsMissingFields(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	c, err := svc.Register(ctx, api.NewCompany{Name: "Carrier", VATNumber: "DE002"})
	require.NoError(t, err)

	require.NoError(t, svc.ReconcilePayload(ctx, c.ID, []byte(`{"name":"Carrier","vat_number":"DE002","public_key":"abcd"}`)))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "abcd", got.PublicKey)
}

func TestReconcileMismatchRemovesCompany(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	c, err := svc.Register(ctx, api.NewCompany{Name: "Carrier", VATNumber: "DE002"})
	require.NoError(t, err)

	err = svc.Reconcile(ctx, c.ID, api.NodeOwner{Name: "Carrier", VATNumber: "FR003"})
	assert.ErrorIs(t, err, domain.ErrIntegrity)

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSkipsNodeOwner(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	_, err := svc.EnsureOwner(ctx, Owner{Name: "Acme", VATNumber: "IT001"})
	require.NoError(t, err)
	remote, err := svc.Register(ctx, api.NewCompany{Name: "Carrier", VATNumber: "DE002"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, remote.ID, all[0].ID)

	locs, err := svc.Locations(ctx, remote.ID)
	require.NoError(t, err)
	assert.Empty(t, locs)
	_, err = svc.Locations(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
