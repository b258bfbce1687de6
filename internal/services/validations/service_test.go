package validations

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/adapters/memory"
	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/domain"
	"eonpeers/internal/logging"
	"eonpeers/internal/ports"
	"eonpeers/internal/services/locations"
)

type node struct {
	store       *memory.Store
	jobs        *memory.JobQueue
	locations   *locations.Service
	validations *Service
	attestor    *attest.Attestor
	self        domain.Company
}

func newNode(t *testing.T, fill byte, vat, baseURL string) *node {
	t.Helper()
	signer, err := attest.NewEd25519Signer(bytes.Repeat([]byte{fill}, attest.SeedSize))
	require.NoError(t, err)
	a := attest.NewAttestor(signer)
	store := memory.New()
	jobs := memory.NewJobQueue()
	log := logging.Discard()
	locs := locations.New(store, a, log)

	self := domain.Company{Name: vat, VATNumber: vat, BaseURL: baseURL, PublicKey: a.PublicKeyHex(), IsLocal: true}
	require.NoError(t, store.CreateCompany(context.Background(), &self))
	return &node{
		store:       store,
		jobs:        jobs,
		locations:   locs,
		validations: New(store, locs, jobs, a, log),
		attestor:    a,
		self:        self,
	}
}

func (n *node) knows(t *testing.T, other *node) domain.Company {
	t.Helper()
	c := other.self
	c.ID = ""
	c.IsLocal = false
	require.NoError(t, n.store.CreateCompany(context.Background(), &c))
	return c
}

func payload[T any](t *testing.T, n *node, jobID string) (ports.WorkRequest, T) {
	t.Helper()
	job, err := n.jobs.GetJob(context.Background(), jobID)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(job.Request.Payload, &out))
	return job.Request, out
}

type handshake struct {
	requester, signer *node
	signerAtRequester domain.Company
	location          domain.Location
	request           api.ValidationRequest
}

func setup(t *testing.T) handshake {
	t.Helper()
	ctx := context.Background()
	r := newNode(t, 1, "IT001", "http://requester.example")
	s := newNode(t, 2, "DE002", "http://signer.example")
	h := handshake{requester: r, signer: s, signerAtRequester: r.knows(t, s)}
	s.knows(t, r)

	loc, err := r.locations.Create(ctx, api.NewLocation{Name: "Dock 1", LocationData: `{"lat":45.46,"lon":9.19}`})
	require.NoError(t, err)
	h.location = loc

	jobID, err := r.validations.Invite(ctx, loc.ID, h.signerAtRequester.ID)
	require.NoError(t, err)
	req, body := payload[api.ValidationRequest](t, r, jobID)
	assert.Equal(t, "http://signer.example/validation/rpc/request-validation", req.URL)
	h.request = body
	return h
}

func TestHandshakeEndsSignedOnBothSides(t *testing.T) {
	ctx := context.Background()
	h := setup(t)

	pending, err := h.signer.validations.Request(ctx, h.request)
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationPending, pending.Status())

	signed, jobID, err := h.signer.validations.Sign(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationSigned, signed.Status())
	assert.Equal(t, h.signer.self.ID, signed.SignerCompanyID)

	req, result := payload[api.ValidationResult](t, h.signer, jobID)
	assert.Equal(t, "http://requester.example/validation/", req.URL)
	assert.Equal(t, pending.ID, result.SignerValidationID)

	received, err := h.requester.validations.Receive(ctx, result)
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationSigned, received.Status())
	assert.Equal(t, h.signerAtRequester.ID, received.SignerCompanyID)

	atRequester, err := h.requester.validations.ListByLocation(ctx, h.location.ID)
	require.NoError(t, err)
	require.Len(t, atRequester, 1)
	assert.Equal(t, domain.ValidationSigned, atRequester[0].Status())

	atSigner, err := h.signer.validations.ListByLocation(ctx, pending.LocationID)
	require.NoError(t, err)
	require.Len(t, atSigner, 1)
	assert.Equal(t, domain.ValidationSigned, atSigner[0].Status())

	_, _, err = h.signer.validations.Sign(ctx, pending.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = h.requester.validations.Receive(ctx, result)
	assert.ErrorIs(t, err, domain.ErrConflict, "redelivery is rejected")
}

func TestRequestImportsLocationOnce(t *testing.T) {
	ctx := context.Background()
	h := setup(t)

	first, err := h.signer.validations.Request(ctx, h.request)
	require.NoError(t, err)
	second, err := h.signer.validations.Request(ctx, h.request)
	require.NoError(t, err)
	assert.Equal(t, first.LocationID, second.LocationID)
}

func TestRequestFromUnknownCompany(t *testing.T) {
	ctx := context.Background()
	h := setup(t)
	stranger := newNode(t, 7, "XX999", "")

	req := h.request
	req.CompanyPublicKey = stranger.attestor.PublicKeyHex()
	_, err := h.signer.validations.Request(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestWithForgedLocationKey(t *testing.T) {
	ctx := context.Background()
	h := setup(t)

	req := h.request
	req.LocationData = "somewhere else"
	_, err := h.signer.validations.Request(ctx, req)
	assert.ErrorIs(t, err, domain.ErrAttestation)
}

func TestSignUnknownValidation(t *testing.T) {
	h := setup(t)
	_, _, err := h.signer.validations.Sign(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiveRejects(t *testing.T) {
	ctx := context.Background()
	h := setup(t)
	pending, err := h.signer.validations.Request(ctx, h.request)
	require.NoError(t, err)
	_, jobID, err := h.signer.validations.Sign(ctx, pending.ID)
	require.NoError(t, err)
	_, result := payload[api.ValidationResult](t, h.signer, jobID)

	t.Run("unknown location", func(t *testing.T) {
		bad := result
		bad.LocationKey = "00"
		_, err := h.requester.validations.Receive(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown signer", func(t *testing.T) {
		bad := result
		bad.SignerPublicKey = "abcd"
		_, err := h.requester.validations.Receive(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("bad attestation", func(t *testing.T) {
		bad := result
		bad.SignedLocationKey = h.requester.self.PublicKey
		_, err := h.requester.validations.Receive(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrAttestation)
	})

	all, err := h.requester.validations.ListByLocation(ctx, h.location.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInviteRequiresRemoteSigner(t *testing.T) {
	ctx := context.Background()
	h := setup(t)

	_, err := h.requester.validations.Invite(ctx, h.location.ID, h.requester.self.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = h.requester.validations.Invite(ctx, "nope", h.signerAtRequester.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
