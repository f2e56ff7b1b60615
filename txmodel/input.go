// Package txmodel implements the transaction model of §3: TransactionInput,
// TransactionOutput, the Body, WitnessSet, and Transaction itself, plus the
// redeemer/certificate/withdrawal/voting/proposal sub-structures §2 lists.
// Field names and shapes are grounded on apollo's
// serialization/{TransactionInput,TransactionOutput,Redeemer} packages,
// which every teacher adapter constructs directly (cf.
// blockfrost/adapter.go's TransactionInput.TransactionInput{TransactionId,
// Index} and TransactionOutput.TransactionOutput{IsPostAlonzo, PostAlonzo,
// PreAlonzo}).
package txmodel

import (
	"sort"

	"github.com/zenGate-Global/cardano-ledger-core/primitives"
)

// TransactionInput is (TransactionId, Index), mirroring apollo's
// TransactionInput.TransactionInput{TransactionId []byte, Index int}.
type TransactionInput struct {
	TransactionId primitives.Hash32
	Index         uint16
}

// Less imposes the canonical lexicographic order §3 requires
// ("Ordered lexicographically for canonical encoding").
func (in TransactionInput) Less(other TransactionInput) bool {
	if in.TransactionId != other.TransactionId {
		return in.TransactionId.Less(other.TransactionId)
	}
	return in.Index < other.Index
}

// SortInputs returns a new, canonically-ordered copy of ins.
func SortInputs(ins []TransactionInput) []TransactionInput {
	out := append([]TransactionInput{}, ins...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// InputSet is a convenience set view over a slice of inputs, used by
// disjointness/subset validators.
type InputSet map[TransactionInput]struct{}

func NewInputSet(ins []TransactionInput) InputSet {
	s := make(InputSet, len(ins))
	for _, in := range ins {
		s[in] = struct{}{}
	}
	return s
}

func (s InputSet) Contains(in TransactionInput) bool {
	_, ok := s[in]
	return ok
}

// Intersects reports whether s and other share any element.
func (s InputSet) Intersects(other InputSet) bool {
	small, big := s, other
	if len(other) < len(s) {
		small, big = other, s
	}
	for in := range small {
		if _, ok := big[in]; ok {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every element of s is in other.
func (s InputSet) IsSubsetOf(other InputSet) bool {
	for in := range s {
		if _, ok := other[in]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the elements of s not present in other, in canonical
// order (used to report the offending inputs on AllInputsMustBeInUtxo
// failures).
func (s InputSet) Missing(other InputSet) []TransactionInput {
	var out []TransactionInput
	for in := range s {
		if _, ok := other[in]; !ok {
			out = append(out, in)
		}
	}
	return SortInputs(out)
}
