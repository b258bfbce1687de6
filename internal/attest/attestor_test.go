package attest

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/domain"
)

func newTestSigner(t *testing.T, fill byte) *Ed25519Signer {
	t.Helper()
	s, err := NewEd25519Signer(bytes.Repeat([]byte{fill}, SeedSize))
	require.NoError(t, err)
	return s
}

func TestAttestPositionRoundTrip(t *testing.T) {
	a := NewAttestor(newTestSigner(t, 1))
	holder := domain.Company{ID: "c1", VATNumber: "VAT-A", IsLocal: true, PublicKey: a.PublicKeyHex()}
	pos := domain.Position{ID: "p1", CompanyID: "c1", HashID: "00ff"}

	sig, err := a.AttestPosition(pos, holder)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	assert.NoError(t, a.VerifyPosition(pos.HashID, sig, holder))
	err = a.VerifyPosition("00fe", sig, holder)
	assert.True(t, errors.Is(err, domain.ErrAttestation))
}

func TestAttestPositionRequiresLocalHolder(t *testing.T) {
	a := NewAttestor(newTestSigner(t, 1))
	remote := domain.Company{ID: "c2", VATNumber: "VAT-B"}

	_, err := a.AttestPosition(domain.Position{CompanyID: "c2", HashID: "aa"}, remote)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestVerifyAgainstOtherCompanyKey(t *testing.T) {
	a := NewAttestor(newTestSigner(t, 1))
	b := NewAttestor(newTestSigner(t, 2))

	key, err := a.SignLocationData("lat=45.4;lon=9.1")
	require.NoError(t, err)

	ownerA := domain.Company{VATNumber: "VAT-A", PublicKey: a.PublicKeyHex()}
	ownerB := domain.Company{VATNumber: "VAT-B", PublicKey: b.PublicKeyHex()}

	// b verifies a's signature with a's public key.
	assert.NoError(t, b.VerifyLocationKey("lat=45.4;lon=9.1", key, ownerA))
	assert.ErrorIs(t, b.VerifyLocationKey("lat=45.4;lon=9.1", key, ownerB), domain.ErrAttestation)
	assert.ErrorIs(t, b.VerifyLocationKey("tampered", key, ownerA), domain.ErrAttestation)
}

func TestVerifyWithoutPublicKey(t *testing.T) {
	a := NewAttestor(newTestSigner(t, 1))
	err := a.VerifyPosition("aa", "bb", domain.Company{VATNumber: "VAT-X"})
	assert.ErrorIs(t, err, domain.ErrAttestation)
}

func TestLocationAttestation(t *testing.T) {
	a := NewAttestor(newTestSigner(t, 3))
	signer := domain.Company{VATNumber: "VAT-S", PublicKey: a.PublicKeyHex()}
	loc := domain.Location{Name: "Warehouse 7", LocationKey: "abcd"}

	sig, err := a.AttestLocation(loc)
	require.NoError(t, err)
	assert.NoError(t, a.VerifyLocationAttestation(loc, sig, signer))

	loc.Name = "Warehouse 8"
	assert.ErrorIs(t, a.VerifyLocationAttestation(loc, sig, signer), domain.ErrAttestation)
}

func TestKeyFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "node.key")
	seed, err := GenerateSeed()
	require.NoError(t, err)
	require.NoError(t, WriteKeyFile(path, seed))

	s, err := LoadSigner(SchemeEd25519, path)
	require.NoError(t, err)
	want, err := NewEd25519Signer(seed)
	require.NoError(t, err)
	assert.Equal(t, want.PublicKey(), s.PublicKey())

	assert.Error(t, WriteKeyFile(path, seed), "existing key must not be overwritten")
}

func TestNewSignerUnknownScheme(t *testing.T) {
	_, err := NewSigner("rsa", make([]byte, SeedSize))
	assert.Error(t, err)
}
