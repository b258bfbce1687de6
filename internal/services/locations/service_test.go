package locations

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
)

func attestor(t *testing.T, fill byte) *attest.Attestor {
	t.Helper()
	signer, err := attest.NewEd25519Signer(bytes.Repeat([]byte{fill}, attest.SeedSize))
	require.NoError(t, err)
	return attest.NewAttestor(signer)
}

func setup(t *testing.T) (*Service, domain.Company, domain.Company, *attest.Attestor) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	self, peer := attestor(t, 1), attestor(t, 2)

	local := domain.Company{Name: "Acme", VATNumber: "IT001", PublicKey: self.PublicKeyHex(), IsLocal: true}
	require.NoError(t, store.CreateCompany(ctx, &local))
	remote := domain.Company{Name: "Carrier", VATNumber: "DE002", PublicKey: peer.PublicKeyHex()}
	require.NoError(t, store.CreateCompany(ctx, &remote))
	return New(store, self, logging.Discard()), local, remote, peer
}

func TestCreateSignsWithLocalKey(t *testing.T) {
	svc, local, _, _ := setup(t)
	ctx := context.Background()

	loc, err := svc.Create(ctx, api.NewLocation{Name: "Dock 1", LocationData: "45.46,9.19"})
	require.NoError(t, err)
	assert.Equal(t, local.ID, loc.CompanyID)
	require.NoError(t, svc.attestor.VerifyLocationKey(loc.LocationData, loc.LocationKey, local))

	_, err = svc.Create(ctx, api.NewLocation{Name: "Dock 1", LocationData: "elsewhere"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateForRemoteCompanyRejected(t *testing.T) {
	svc, _, remote, _ := setup(t)
	_, err := svc.Create(context.Background(), api.NewLocation{Name: "Depot", CompanyID: remote.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestImportVerifiesOwnerSignature(t *testing.T) {
	svc, local, remote, peer := setup(t)
	ctx := context.Background()

	key, err := peer.SignLocationData("53.55,9.99")
	require.NoError(t, err)

	_, err = svc.Import(ctx, External{Name: "Depot", LocationData: "tampered", LocationKey: key, CompanyID: remote.ID})
	assert.ErrorIs(t, err, domain.ErrAttestation)

	loc, err := svc.Import(ctx, External{Name: "Depot", LocationData: "53.55,9.99", LocationKey: key, CompanyID: remote.ID})
	require.NoError(t, err)

	byOwner, err := svc.ListByCompany(ctx, remote.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, loc.ID, byOwner[0].ID)

	_, err = svc.Import(ctx, External{Name: "Depot", LocationData: "53.55,9.99", LocationKey: key, CompanyID: remote.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Import(ctx, External{Name: "Mine", LocationData: "x", LocationKey: key, CompanyID: local.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
