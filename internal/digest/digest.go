// Package digest computes the content identifiers of shipments and positions.
//
// Every field is written with an 8-byte big-endian length prefix after a domain
// tag, so two different field tuples can never hash to the same preimage.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/zeebo/blake3"
)

// Size is the length in bytes of a digest.
const Size = 32

const (
	positionTag = "eonpeers/position/v1"
	shipmentTag = "eonpeers/shipment/v1"
	locationTag = "eonpeers/location/v1"
)

type Digest [Size]byte

func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

func (d Digest) Bytes() []byte { return d[:] }

// Sum hashes raw bytes. It is the signing input for attestations.
func Sum(data []byte) Digest {
	return blake3.Sum256(data)
}

// Fields hashes a tagged, length-prefixed encoding of fields.
func Fields(tag string, fields ...string) Digest {
	h := blake3.New()
	var n [8]byte
	write := func(s string) {
		binary.BigEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}
	write(tag)
	for _, f := range fields {
		write(f)
	}
	var d Digest
	h.Sum(d[:0])
	return d
}

// Position returns the hex identifier of a chain entry.
func Position(index, role int, holderVAT, shipmentHash string) string {
	return Fields(positionTag,
		strconv.Itoa(index),
		strconv.Itoa(role),
		holderVAT,
		shipmentHash,
	).Hex()
}

// Shipment returns the hex identifier of a shipment. Only the origin node calls
// it; peers keep the value they received.
func Shipment(name string, createdAt, shipmentDate time.Time, origin, destination, hsCode, description string) string {
	return Fields(shipmentTag,
		name,
		Timestamp(createdAt),
		Timestamp(shipmentDate),
		origin,
		destination,
		hsCode,
		description,
	).Hex()
}

// LocationAttestation is the digest a validator signs to vouch for a location.
func LocationAttestation(name, locationKey string) Digest {
	return Fields(locationTag, name, locationKey)
}

// Timestamp is the canonical text form of a time inside a digest.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseHex decodes a hex digest and checks its length.
func ParseHex(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("decode digest: %w", err)
	}
	if len(b) != Size {
		return d, fmt.Errorf("digest must be %d bytes, got %d", Size, len(b))
	}
	copy(d[:], b)
	return d, nil
}
