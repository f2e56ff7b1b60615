package sts

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// Validator is the first polymorphic shape §4.1 specifies: a pure
// predicate over (Context, State, Event) returning nil on success or a
// *TransactionException on failure. It never mutates state.
type Validator func(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error

// Mutator is the second shape: a pure function from (Context, State,
// Event) to a new State.
type Mutator func(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error)

// ValidateAll runs every validator in order against the same (unmutated)
// state and short-circuits on the first failure (§4.1 "Sequential
// validation short-circuits on first failure; state is not altered").
func ValidateAll(validators []Validator, ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	for _, v := range validators {
		if err := v(ctx, state, tx); err != nil {
			return err
		}
	}
	return nil
}

// MutateAll threads state through every mutator in order, each seeing the
// previous mutator's output (§4.1 "Sequential mutation threads state; each
// mutator sees the output of the previous one"). Pipeline order is fixed
// by §4.2.4 and must never be reordered or reflection-scanned (§9 Open
// Question (b)).
func MutateAll(mutators []Mutator, ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error) {
	current := state
	for _, m := range mutators {
		next, err := m(ctx, current, tx)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// ValidateThenMutate runs every validator against the initial state (never
// against each other's — there are none — outputs, since validators don't
// produce state), then, only if all pass, runs every mutator in order
// (§4.1 "A combined 'validate-then-mutate' runs all validators against the
// initial state, then runs mutators in order").
func ValidateThenMutate(
	validators []Validator,
	mutators []Mutator,
	ctx ledgerstate.Context,
	state *ledgerstate.State,
	tx *txmodel.Transaction,
) (*ledgerstate.State, error) {
	if err := ValidateAll(validators, ctx, state, tx); err != nil {
		return nil, err
	}
	return MutateAll(mutators, ctx, state, tx)
}
