// Package rules implements the phase-1 (non-script) validators and
// mutators §4.2 enumerates, plus the fixed-order pipeline §4.2.4
// assembles them into. Each validator/mutator is grounded in the sts
// package's Validator/Mutator shapes and returns a *sts.TransactionException
// of the named Kind on failure.
package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// EmptyInputs rejects a transaction with no spend inputs at all.
func EmptyInputs(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	if len(tx.Body.Inputs) == 0 {
		return sts.New(tx.Id, sts.KindEmptyInputs, "transaction has no inputs", nil)
	}
	return nil
}

// AllInputsMustBeInUtxo rejects a transaction whose declared spend inputs
// are not wholly present in the current Utxo set (§4.2.1 "BadInputsUTxO").
func AllInputsMustBeInUtxo(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	missing := tx.Body.InputSetOf().Missing(newInputSetFromUtxos(state.Utxos))
	if len(missing) > 0 {
		return sts.New(tx.Id, sts.KindBadInputsUTxO, "inputs not found in the utxo set", missing)
	}
	return nil
}

// BadCollateralInputsUTxO rejects a transaction whose collateral inputs
// are not wholly present in the current Utxo set.
func BadCollateralInputsUTxO(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	missing := tx.Body.CollateralSetOf().Missing(newInputSetFromUtxos(state.Utxos))
	if len(missing) > 0 {
		return sts.New(tx.Id, sts.KindBadCollateralInputsUTxO, "collateral inputs not found in the utxo set", missing)
	}
	return nil
}

// BadReferenceInputsUTxO rejects a transaction whose reference inputs are
// not wholly present in the current Utxo set.
func BadReferenceInputsUTxO(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	missing := tx.Body.ReferenceSetOf().Missing(newInputSetFromUtxos(state.Utxos))
	if len(missing) > 0 {
		return sts.New(tx.Id, sts.KindBadReferenceInputsUTxO, "reference inputs not found in the utxo set", missing)
	}
	return nil
}

// InputsAndReferenceInputsDisjoint rejects a transaction that names the
// same UTxO as both a spend input and a reference input, which would make
// the spend-vs-read intent ambiguous.
func InputsAndReferenceInputsDisjoint(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	inputs := tx.Body.InputSetOf()
	refs := tx.Body.ReferenceSetOf()
	if inputs.Intersects(refs) {
		return sts.New(tx.Id, sts.KindNonDisjointInputsAndReference, "an input is also listed as a reference input", nil)
	}
	return nil
}

func newInputSetFromUtxos(utxos ledgerstate.Utxos) txmodel.InputSet {
	ins := make([]txmodel.TransactionInput, 0, len(utxos))
	for in := range utxos {
		ins = append(ins, in)
	}
	return txmodel.NewInputSet(ins)
}
