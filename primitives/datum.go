package primitives

import "github.com/zenGate-Global/cardano-ledger-core/plutusdata"

// DatumOptionKind distinguishes a hash-only datum reference from an inline
// datum, mirroring apollo's PlutusData.DatumOptionHash/DatumOptionInline
// constructors.
type DatumOptionKind uint8

const (
	DatumOptionNone DatumOptionKind = iota
	DatumOptionHashKind
	DatumOptionInlineKind
)

// DatumOption is the optional datum attached to a TransactionOutput: either
// absent, a 32-byte hash of a datum supplied elsewhere in witnesses, or an
// inline Data value stored directly on-chain (§3 "DatumOption (Hash |
// Inline)").
type DatumOption struct {
	Kind   DatumOptionKind
	Hash   Hash32
	Inline *plutusdata.Data
}

// IsHash reports whether this is a hash-only datum reference.
func (d DatumOption) IsHash() bool { return d.Kind == DatumOptionHashKind }

// IsInline reports whether this is an inline datum.
func (d DatumOption) IsInline() bool { return d.Kind == DatumOptionInlineKind }
