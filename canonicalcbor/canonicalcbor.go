// Package canonicalcbor wraps Salvionied/cbor/v2 (the same codec the teacher
// uses for decoding inline datums, cf. blockfrost/adapter.go's
// cbor.Unmarshal(datumBytes, &pd)) with canonical encoding options, for the
// two places §4.5 and §4.2.1 require a byte-exact re-encoding: the
// script-data hash's datum/cost-model component, and TransactionSize /
// OutputsHaveTooBigValueStorageSize size checks.
//
// The binary transaction/Value/Data wire format itself is decoded by the
// external CBOR-codec collaborator (§1, §6); this package only re-encodes
// values the core already holds in memory, and only when canonical byte
// order (sorted map keys, minimal integer widths) matters for hashing or
// sizing.
package canonicalcbor

import (
	"sync"

	"github.com/Salvionied/cbor/v2"
)

var (
	modeOnce sync.Once
	encMode  cbor.EncMode
	encErr   error
)

func mode() (cbor.EncMode, error) {
	modeOnce.Do(func() {
		opts := cbor.CanonicalEncOptions()
		encMode, encErr = opts.EncMode()
	})
	return encMode, encErr
}

// Marshal produces the canonical CBOR encoding of v: sorted map keys,
// minimal-width integers, definite-length containers. Any value the core
// constructs from its own types must round-trip through this exactly,
// per §8 invariant 8.
func Marshal(v interface{}) ([]byte, error) {
	m, err := mode()
	if err != nil {
		return nil, err
	}
	return m.Marshal(v)
}

// Size returns len(Marshal(v)), used by size-bound validators so callers
// don't need to discard the byte slice themselves.
func Size(v interface{}) (int, error) {
	b, err := Marshal(v)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
