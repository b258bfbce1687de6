//go:build cgo

package attest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eonpeers/internal/digest"
)

func TestBLSSignVerify(t *testing.T) {
	s, err := NewSigner(SchemeBLS, bytes.Repeat([]byte{7}, SeedSize))
	require.NoError(t, err)
	assert.Len(t, s.PublicKey(), BLSPublicKeySize)

	d := digest.Sum([]byte("position"))
	sig, err := s.Sign(d.Bytes())
	require.NoError(t, err)
	assert.Len(t, sig, BLSSignatureSize)

	assert.True(t, s.Verify(sig, d.Bytes(), s.PublicKey()))
	other := digest.Sum([]byte("other"))
	assert.False(t, s.Verify(sig, other.Bytes(), s.PublicKey()))
	assert.False(t, s.Verify(sig[:10], d.Bytes(), s.PublicKey()))
}

func TestBLSDeterministicFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{9}, SeedSize)
	a, err := NewBLSSigner(seed)
	require.NoError(t, err)
	b, err := NewBLSSigner(seed)
	require.NoError(t, err)
	assert.Equal(t, a.PublicKey(), b.PublicKey())
}
