//go:build !cgo

package attest

import "errors"

// NewBLSSigner is unavailable without cgo: the BLS bindings are C.
func NewBLSSigner(seed []byte) (Signer, error) {
	return nil, errors.New("bls signing requires a cgo build")
}
