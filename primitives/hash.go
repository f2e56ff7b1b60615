package primitives

import (
	"encoding/hex"
	"fmt"
)

// Hash28 is a 28-byte opaque digest: policy IDs, key hashes, script hashes,
// pool IDs. Modeled on apollo's Policy.PolicyId (a hex-string wrapper) but
// kept as a fixed-size byte array here so equality and map-keying are free.
type Hash28 [28]byte

func (h Hash28) String() string { return hex.EncodeToString(h[:]) }

// Hash32 is a 32-byte opaque digest: transaction IDs, script-data hash,
// auxiliary-data hash, block hashes.
type Hash32 [32]byte

func (h Hash32) String() string { return hex.EncodeToString(h[:]) }

// Less imposes the lexicographic byte order every canonical-encoding rule
// (§3 "Canonical form", §5 "Ordering guarantees") requires for hash-keyed
// collections.
func (h Hash32) Less(other Hash32) bool {
	for i := range h {
		if h[i] != other[i] {
			return h[i] < other[i]
		}
	}
	return false
}

func (h Hash28) Less(other Hash28) bool {
	for i := range h {
		if h[i] != other[i] {
			return h[i] < other[i]
		}
	}
	return false
}

// NewHash32FromHex decodes a 64-character hex string into a Hash32.
func NewHash32FromHex(s string) (Hash32, error) {
	var h Hash32
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != 32 {
		return h, fmt.Errorf("primitives: expected 32 bytes, got %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}

// NewHash28FromHex decodes a 56-character hex string into a Hash28.
func NewHash28FromHex(s string) (Hash28, error) {
	var h Hash28
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != 28 {
		return h, fmt.Errorf("primitives: expected 28 bytes, got %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}
