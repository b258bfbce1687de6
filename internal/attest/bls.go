//go:build cgo

package attest

import (
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

const (
	BLSPublicKeySize = 48
	BLSSignatureSize = 96
)

var blsDST = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_")

// BLSSigner signs with a BLS12-381 key (public keys in G1, signatures in G2).
type BLSSigner struct {
	secret *blst.SecretKey
	public *blst.P1Affine
}

func NewBLSSigner(seed []byte) (Signer, error) {
	if len(seed) < SeedSize {
		return nil, fmt.Errorf("bls seed must be at least %d bytes", SeedSize)
	}
	secret := blst.KeyGen(seed)
	if secret == nil {
		return nil, fmt.Errorf("failed to generate BLS key")
	}
	return &BLSSigner{
		secret: secret,
		public: new(blst.P1Affine).From(secret),
	}, nil
}

func (s *BLSSigner) Sign(digest []byte) ([]byte, error) {
	sig := new(blst.P2Affine).Sign(s.secret, digest, blsDST)
	if sig == nil {
		return nil, fmt.Errorf("bls sign failed")
	}
	return sig.Compress(), nil
}

func (s *BLSSigner) Verify(signature, digest, publicKey []byte) bool {
	return VerifyBLS(signature, digest, publicKey)
}

func (s *BLSSigner) PublicKey() []byte { return s.public.Compress() }

func (s *BLSSigner) Scheme() string { return SchemeBLS }

func VerifyBLS(signature, digest, publicKey []byte) bool {
	if len(signature) != BLSSignatureSize || len(publicKey) != BLSPublicKeySize {
		return false
	}
	sig := new(blst.P2Affine).Uncompress(signature)
	if sig == nil {
		return false
	}
	pk := new(blst.P1Affine).Uncompress(publicKey)
	if pk == nil {
		return false
	}
	return sig.Verify(true, pk, true, digest, blsDST)
}
