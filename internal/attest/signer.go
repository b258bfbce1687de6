// Package attest signs and verifies digests on behalf of the node's company.
package attest

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	SchemeEd25519 = "ed25519"
	SchemeBLS     = "bls"

	// SeedSize is the length of the secret seed every scheme derives its key from.
	SeedSize = 32
)

// Verifier checks a signature over a digest against a public key.
type Verifier interface {
	Verify(signature, digest, publicKey []byte) bool
}

// Signer is the node's key-management capability.
type Signer interface {
	Verifier
	Sign(digest []byte) ([]byte, error)
	PublicKey() []byte
	Scheme() string
}

// Ed25519Signer signs with an ed25519 key derived from a seed.
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

func NewEd25519Signer(seed []byte) (*Ed25519Signer, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *Ed25519Signer) Sign(digest []byte) ([]byte, error) {
	return ed25519.Sign(s.key, digest), nil
}

func (s *Ed25519Signer) Verify(signature, digest, publicKey []byte) bool {
	return VerifyEd25519(signature, digest, publicKey)
}

func (s *Ed25519Signer) PublicKey() []byte {
	return []byte(s.key.Public().(ed25519.PublicKey))
}

func (s *Ed25519Signer) Scheme() string { return SchemeEd25519 }

// VerifyEd25519 is the scheme's verification predicate.
func VerifyEd25519(signature, digest, publicKey []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), digest, signature)
}

// NewSigner builds the signer for scheme from seed.
func NewSigner(scheme string, seed []byte) (Signer, error) {
	switch strings.ToLower(scheme) {
	case "", SchemeEd25519:
		return NewEd25519Signer(seed)
	case SchemeBLS:
		return NewBLSSigner(seed)
	default:
		return nil, fmt.Errorf("unknown signing scheme %q", scheme)
	}
}

// GenerateSeed returns a fresh random seed.
func GenerateSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generate seed: %w", err)
	}
	return seed, nil
}

// WriteKeyFile stores seed hex-encoded with owner-only permissions. It refuses
// to overwrite an existing key.
func WriteKeyFile(path string, seed []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create key file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(hex.EncodeToString(seed) + "\n"); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// LoadSigner reads the seed at path and builds the signer for scheme.
func LoadSigner(scheme, path string) (Signer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	seed, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode key file %s: %w", path, err)
	}
	return NewSigner(scheme, seed)
}
