package attest

import (
	"encoding/hex"

	"eonpeers/internal/digest"
	"eonpeers/internal/domain"
)

// Attestor applies the node's Signer to positions and locations. All peers of a
// network are expected to share one scheme, so the local Signer verifies remote
// signatures too.
type Attestor struct {
	signer Signer
}

func NewAttestor(signer Signer) *Attestor {
	return &Attestor{signer: signer}
}

// PublicKeyHex is the local company's public key as stored on Company rows.
func (a *Attestor) PublicKeyHex() string {
	return hex.EncodeToString(a.signer.PublicKey())
}

// AttestPosition signs a position held by the local company.
func (a *Attestor) AttestPosition(p domain.Position, holder domain.Company) (string, error) {
	if !holder.IsLocal || holder.ID != p.CompanyID {
		return "", domain.Invalid("only positions held by the local company can be signed")
	}
	return a.sign(digest.Sum([]byte(p.HashID)))
}

// VerifyPosition checks signedHash against the holder's public key.
func (a *Attestor) VerifyPosition(hashID, signedHash string, holder domain.Company) error {
	return a.verify(signedHash, digest.Sum([]byte(hashID)), holder, "position "+hashID)
}

// SignLocationData produces the location key of a locally owned location.
func (a *Attestor) SignLocationData(locationData string) (string, error) {
	return a.sign(digest.Sum([]byte(locationData)))
}

// VerifyLocationKey checks that owner signed locationData.
func (a *Attestor) VerifyLocationKey(locationData, locationKey string, owner domain.Company) error {
	return a.verify(locationKey, digest.Sum([]byte(locationData)), owner, "location key")
}

// AttestLocation vouches for a location on behalf of the local company.
func (a *Attestor) AttestLocation(loc domain.Location) (string, error) {
	return a.sign(digest.LocationAttestation(loc.Name, loc.LocationKey))
}

// VerifyLocationAttestation checks a third-party validation signature.
func (a *Attestor) VerifyLocationAttestation(loc domain.Location, signature string, signer domain.Company) error {
	return a.verify(signature, digest.LocationAttestation(loc.Name, loc.LocationKey), signer, "location attestation")
}

func (a *Attestor) sign(d digest.Digest) (string, error) {
	sig, err := a.signer.Sign(d.Bytes())
	if err != nil {
		return "", domain.Internal("signing failed", err)
	}
	return hex.EncodeToString(sig), nil
}

func (a *Attestor) verify(signatureHex string, d digest.Digest, by domain.Company, what string) error {
	if by.PublicKey == "" {
		return domain.Attestation("company %s has no known public key", by.VATNumber)
	}
	pub, err := hex.DecodeString(by.PublicKey)
	if err != nil {
		return domain.Attestation("company %s has a malformed public key", by.VATNumber)
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return domain.Attestation("%s: signature is not hex", what)
	}
	if !a.signer.Verify(sig, d.Bytes(), pub) {
		return domain.Attestation("%s: signature does not match company %s", what, by.VATNumber)
	}
	return nil
}
