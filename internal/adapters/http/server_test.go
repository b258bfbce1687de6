package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/adapters/memory"
	"eonpeers/internal/adapters/peer"
	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/domain"
	"eonpeers/internal/logging"
	"eonpeers/internal/services/companies"
	"eonpeers/internal/services/gossip"
	"eonpeers/internal/services/ledger"
	"eonpeers/internal/services/locations"
	"eonpeers/internal/services/validations"
	"eonpeers/internal/workers/gossiprunner"
)

const token = "s3cret"

type node struct {
	t         *testing.T
	ts        *httptest.Server
	jobs      *memory.JobQueue
	processor gossiprunner.Processor
	self      domain.Company
}

// newNode starts a full node backed by the memory store behind httptest.
func newNode(t *testing.T, fill byte, name, vat string) *node {
	t.Helper()
	ts := httptest.NewServer(nil)
	t.Cleanup(ts.Close)

	signer, err := attest.NewEd25519Signer(bytes.Repeat([]byte{fill}, attest.SeedSize))
	require.NoError(t, err)
	a := attest.NewAttestor(signer)
	store := memory.New()
	jobs := memory.NewJobQueue()
	log := logging.Discard()

	comps := companies.New(store, store, jobs, a, log)
	l := ledger.New(store, a, log)
	locs := locations.New(store, a, log)
	self, err := comps.EnsureOwner(context.Background(), companies.Owner{Name: name, VATNumber: vat, BaseURL: ts.URL})
	require.NoError(t, err)

	processor := &gossiprunner.Delivery{Peer: peer.New(5*time.Second, 0), Companies: comps, Base: 10 * time.Millisecond, Log: log}
	srv := New(Services{
		Companies:   comps,
		Locations:   locs,
		Ledger:      l,
		Validations: validations.New(store, locs, jobs, a, log),
		Gossip:      gossip.New(store, l, jobs, log),
	}, jobs, processor, token, log)
	ts.Config.Handler = srv.Routes()
	return &node{t: t, ts: ts, jobs: jobs, processor: processor, self: self}
}

func (n *node) call(method, path string, body any, out any) int {
	n.t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(n.t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, n.ts.URL+path, rd)
	require.NoError(n.t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(n.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(n.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// drain runs every queued job of n the way the workers would.
func (n *node) drain() {
	n.t.Helper()
	_, err := gossiprunner.ProcessPending(context.Background(), n.jobs, n.processor, logging.Discard())
	require.NoError(n.t, err)
}

// register makes other known to n and returns its id at n.
func (n *node) register(other *node) string {
	n.t.Helper()
	var res api.Created
	code := n.call(http.MethodPost, "/company/", api.NewCompany{
		Name: other.self.Name, VATNumber: other.self.VATNumber, BaseURL: other.ts.URL,
	}, &res)
	require.Equal(n.t, http.StatusCreated, code)
	return res.PublicID
}

func TestHealthzAndOwner(t *testing.T) {
	n := newNode(t, 1, "Acme", "IT001")

	var h api.Health
	assert.Equal(t, http.StatusOK, n.call(http.MethodGet, "/healthz", nil, &h))
	assert.Equal(t, "ok", h.Status)

	var owner api.NodeOwner
	require.Equal(t, http.StatusOK, n.call(http.MethodGet, "/company/node-owner", nil, &owner))
	assert.Equal(t, "IT001", owner.VATNumber)
	assert.Equal(t, n.self.PublicKey, owner.PublicKey)
	assert.NotEmpty(t, owner.PublicKey)
}

func TestAdminToken(t *testing.T) {
	n := newNode(t, 1, "Acme", "IT001")

	resp, err := http.Post(n.ts.URL+"/company/", "application/json", bytes.NewReader([]byte(`{"name":"x","vat_number":"y"}`)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Post(n.ts.URL+"/shipment/", "application/json", bytes.NewReader([]byte(`{"name":`)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "checked before the body is read")

	resp, err = http.Get(n.ts.URL + "/company/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "reads stay public")

	resp, err = http.Post(n.ts.URL+"/shipment/rpc/import", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "peer calls need no token")
}

func TestErrorMapping(t *testing.T) {
	n := newNode(t, 1, "Acme", "IT001")
	var e api.Error

	assert.Equal(t, http.StatusNotFound, n.call(http.MethodGet, "/shipment/missing", nil, &e))
	assert.Equal(t, "error", e.Status)

	assert.Equal(t, http.StatusBadRequest, n.call(http.MethodPost, "/company/", api.NewCompany{Name: "NoVat"}, &e))

	req := api.NewCompany{Name: "Carrier", VATNumber: "DE002"}
	assert.Equal(t, http.StatusCreated, n.call(http.MethodPost, "/company/", req, nil))
	assert.Equal(t, http.StatusConflict, n.call(http.MethodPost, "/company/", req, &e))

	for name, tc := range map[string]struct {
		path string
		body []byte
		want int
	}{
		"malformed body": {"/shipment/", []byte(`{"name":`), http.StatusBadRequest},
		"missing body":   {"/shipment/", nil, http.StatusBadRequest},
		"oversized body": {"/shipment/", bytes.Repeat([]byte(" "), maxBody+1), http.StatusRequestEntityTooLarge},
		"bad wait flag":  {"/shipment/x/rpc/send?wait=maybe", nil, http.StatusBadRequest},
		"unknown send":   {"/shipment/missing/rpc/send", nil, http.StatusBadRequest},
	} {
		r, err := http.NewRequest(http.MethodPost, n.ts.URL+tc.path, bytes.NewReader(tc.body))
		require.NoError(t, err)
		r.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(r)
		require.NoError(t, err)
		var body api.Error
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), name)
		resp.Body.Close()
		assert.Equal(t, tc.want, resp.StatusCode, name)
		assert.Equal(t, "error", body.Status, name)
	}
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		errUnauthorized:                        http.StatusUnauthorized,
		domain.NotFound("x"):                   http.StatusNotFound,
		domain.Conflict("x"):                   http.StatusConflict,
		domain.Invalid("x"):                    http.StatusBadRequest,
		domain.Integrity("x"):                  http.StatusBadRequest,
		domain.Attestation("x"):                http.StatusBadRequest,
		domain.Internal("x", context.Canceled): http.StatusInternalServerError,
		assert.AnError:                         http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusOf(err), err.Error())
	}
}

// TestTwoNodeTransfer drives a shipment from A to B over real HTTP.
func TestTwoNodeTransfer(t *testing.T) {
	a := newNode(t, 1, "Acme", "IT001")
	b := newNode(t, 2, "Carrier", "DE002")
	bAtA := a.register(b)
	b.register(a)
	a.drain()
	b.drain()

	var known api.Company
	require.Equal(t, http.StatusOK, a.call(http.MethodGet, "/company/"+bAtA, nil, &known))
	assert.Equal(t, b.self.PublicKey, known.PublicKey, "verification filled in the peer key")

	var sh api.Created
	require.Equal(t, http.StatusCreated, a.call(http.MethodPost, "/shipment/", api.NewShipment{
		Name:         "ACME-001",
		ShipmentDate: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Origin:       "Milano",
		Destination:  "Hamburg",
	}, &sh))
	for i, company := range []string{a.self.ID, bAtA} {
		code := a.call(http.MethodPost, "/position/", api.NewPosition{
			CompanyID: company, ShipmentID: sh.PublicID, Position: i, Role: int(domain.RoleProducer) + i,
		}, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	var queued api.Accepted
	require.Equal(t, http.StatusAccepted, a.call(http.MethodPost, "/shipment/"+sh.PublicID+"/rpc/send", nil, &queued))
	assert.NotEmpty(t, queued.JobID)
	a.drain()

	var job api.Job
	require.Equal(t, http.StatusOK, a.call(http.MethodGet, "/jobs/"+queued.JobID, nil, &job))
	assert.Equal(t, "completed", job.Status, job.LastError)
	assert.NotNil(t, job.StartedAt)
	assert.NotNil(t, job.FinishedAt)

	var atB []api.Shipment
	require.Equal(t, http.StatusOK, b.call(http.MethodGet, "/shipment/", nil, &atB))
	require.Len(t, atB, 1)
	assert.Equal(t, "ACME-001", atB[0].Name)
	assert.Equal(t, b.self.ID, atB[0].CurrentCompanyID)

	var atA api.Shipment
	require.Equal(t, http.StatusOK, a.call(http.MethodGet, "/shipment/"+sh.PublicID, nil, &atA))
	assert.Equal(t, atA.HashID, atB[0].HashID)

	var chain []api.Position
	require.Equal(t, http.StatusOK, b.call(http.MethodGet, "/shipment/"+atB[0].PublicID+"/positions", nil, &chain))
	require.Len(t, chain, 2)
	assert.NotEmpty(t, chain[0].SignedHash)
	assert.Empty(t, chain[1].SignedHash)

	// Resending the same shipment is rejected by B.
	require.Equal(t, http.StatusOK, a.call(http.MethodPost, "/shipment/"+sh.PublicID+"/rpc/send?wait=true", nil, &job))
	assert.Equal(t, "failed", job.Status)
	assert.Contains(t, job.LastError, "409")
}

// TestTwoNodeValidation runs the invite, request, sign and receive handshake.
func TestTwoNodeValidation(t *testing.T) {
	a := newNode(t, 1, "Acme", "IT001")
	b := newNode(t, 2, "Carrier", "DE002")
	bAtA := a.register(b)
	aAtB := b.register(a)
	a.drain()
	b.drain()

	var loc api.Created
	require.Equal(t, http.StatusCreated, a.call(http.MethodPost, "/location/", api.NewLocation{Name: "Dock 4", LocationData: "45.46,9.19"}, &loc))

	var job api.Job
	require.Equal(t, http.StatusOK, a.call(http.MethodPost, "/location/"+loc.PublicID+"/rpc/request-validation?wait=true",
		api.ValidationInvite{SignerCompanyID: bAtA}, &job))
	require.Equal(t, "completed", job.Status, job.LastError)

	var imported []api.Location
	require.Equal(t, http.StatusOK, b.call(http.MethodGet, "/company/"+aAtB+"/locations", nil, &imported))
	require.Len(t, imported, 1)
	var pending []api.Validation
	require.Equal(t, http.StatusOK, b.call(http.MethodGet, "/location/"+imported[0].PublicID+"/validations", nil, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "pending", pending[0].Status)

	require.Equal(t, http.StatusOK, b.call(http.MethodPut, "/validation/"+pending[0].PublicID+"/rpc/sign?wait=true", nil, &job))
	require.Equal(t, "completed", job.Status, job.LastError)

	var e api.Error
	assert.Equal(t, http.StatusConflict, b.call(http.MethodPut, "/validation/"+pending[0].PublicID+"/rpc/sign", nil, &e))

	var atA []api.Validation
	require.Equal(t, http.StatusOK, a.call(http.MethodGet, "/location/"+loc.PublicID+"/validations", nil, &atA))
	require.Len(t, atA, 1)
	assert.Equal(t, "signed", atA[0].Status)
	assert.Equal(t, bAtA, atA[0].SignerCompanyID)
	assert.Equal(t, pending[0].PublicID, atA[0].SignerValidationID)
}
