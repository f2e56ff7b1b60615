// Package ledger exposes the three root entry points §6 names:
// ApplyTransaction runs the full STS pipeline (phase-1 validation then
// phase-1+phase-2 mutation), EvaluatePlutusScripts runs only the
// phase-2 evaluator and reports measured ExUnits per redeemer, and
// ComputeScriptDataHash recomputes §4.5's hash for a caller building a
// transaction rather than validating one. All three take
// ledgerstate.Utxos directly rather than a chainview.Resolver — per §6,
// Resolver is the seam a caller uses to populate that map before calling
// in, mirroring the teacher's "provider populates data, connector
// validates" division of labor.
package ledger

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutusexec"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/rules"
	"github.com/zenGate-Global/cardano-ledger-core/scripthash"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// ApplyTransaction validates tx against state under ctx, then applies the
// five canonical-order mutators, returning the successor state (§4.1
// "ValidateThenMutate", §4.2.4 pipeline order). programs supplies every
// Plutus script the transaction's redeemers need, already decoded into
// CEK terms by the caller's script-decoding collaborator (§1).
func ApplyTransaction(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction, programs plutusexec.Programs) (*ledgerstate.State, error) {
	validators := rules.DefaultValidators()
	mutators := rules.DefaultMutators(programs, plutusexec.ModeValidate)
	return sts.ValidateThenMutate(validators, mutators, ctx, state, tx)
}

// EvaluatePlutusScripts runs only the phase-2 evaluator against tx,
// reporting the measured ExUnits for every witnessed redeemer keyed by
// (tag, index), using the unbounded EvaluateAndComputeCost budget
// discipline (§4.3.1 "mode ∈ {Validate, EvaluateAndComputeCost}") so a
// caller building a transaction can learn the true cost before setting
// the redeemer's declared ExUnits.
func EvaluatePlutusScripts(tx *txmodel.Transaction, utxos ledgerstate.Utxos, params ledgerstate.Params, programs plutusexec.Programs) (map[txmodel.RedeemerKey]primitives.ExUnits, error) {
	state := &ledgerstate.State{Utxos: utxos}
	results := plutusexec.EvaluateAll(tx, state, params, programs, plutusexec.ModeEvaluateAndComputeCost)
	out := make(map[txmodel.RedeemerKey]primitives.ExUnits, len(results))
	var firstErr error
	for _, r := range results {
		out[r.Key] = r.ExUnits
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
		}
	}
	return out, firstErr
}

// ComputeScriptDataHash recomputes §4.5's script-data hash for tx against
// models, for a transaction builder assembling a body before signing
// rather than validating an already-built one.
func ComputeScriptDataHash(tx *txmodel.Transaction, models ledgerstate.CostModels) (*primitives.Hash32, error) {
	return scripthash.Compute(tx, models)
}
