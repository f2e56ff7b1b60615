// Package ledgerstate implements the persistent/transient state split §3
// describes: Utxos, CertState, the accumulated-fee/donation/governance
// State, and the Context a single validation run carries (protocol
// parameters, slot configuration, network, and the mandatory Epoch field
// Open Question (a) resolves — see SPEC_FULL.md).
package ledgerstate

import (
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// Utxos maps TransactionInput to TransactionOutput (§3). It is owned by
// State and mutated only through the mutator pipeline (§4.2.4); resolvers
// elsewhere in the engine take a read-only view via Get/Has.
type Utxos map[txmodel.TransactionInput]txmodel.TransactionOutput

// Get returns the output for in and whether it was present.
func (u Utxos) Get(in txmodel.TransactionInput) (txmodel.TransactionOutput, bool) {
	out, ok := u[in]
	return out, ok
}

// Has reports whether in is a key of u.
func (u Utxos) Has(in txmodel.TransactionInput) bool {
	_, ok := u[in]
	return ok
}

// Clone returns a shallow copy of u, used by mutators that must not alias
// the caller's map (State is logically immutable between pipeline runs).
func (u Utxos) Clone() Utxos {
	out := make(Utxos, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Remove returns a new Utxos with the given inputs deleted.
func (u Utxos) Remove(ins []txmodel.TransactionInput) Utxos {
	out := u.Clone()
	for _, in := range ins {
		delete(out, in)
	}
	return out
}

// Insert returns a new Utxos with the given outputs added at
// (txId, index), index starting at 0, mirroring AddOutputsToUtxo (§4.2.4).
func (u Utxos) Insert(txId primitives.Hash32, outputs []txmodel.TransactionOutput) Utxos {
	out := u.Clone()
	for i, o := range outputs {
		out[txmodel.TransactionInput{TransactionId: txId, Index: uint16(i)}] = o
	}
	return out
}

// Resolve looks up every input in ins, returning an error naming the first
// missing one (callers needing the full missing set should use
// txmodel.InputSet.Missing against u's key set instead).
func (u Utxos) Resolve(ins []txmodel.TransactionInput) ([]txmodel.TransactionOutput, error) {
	outs := make([]txmodel.TransactionOutput, 0, len(ins))
	for _, in := range ins {
		out, ok := u.Get(in)
		if !ok {
			return nil, &ErrUnresolvedInput{Input: in}
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// ErrUnresolvedInput is returned by Resolve for the first input absent
// from the map.
type ErrUnresolvedInput struct {
	Input txmodel.TransactionInput
}

func (e *ErrUnresolvedInput) Error() string {
	return "ledgerstate: input not found in utxo set"
}
