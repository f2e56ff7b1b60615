// Package plutusexec implements the per-redeemer execution driver §4.3.4
// describes: script resolution, argument assembly, script-context
// construction, and CEK evaluation, wired together into one entry point
// per redeemer and one that runs every redeemer in a transaction.
//
// Decoding a script's on-chain bytes into a *plutuscore.Term is a
// collaborator concern — the evaluator "consumes already-compiled Plutus
// Core" (spec.md Non-goals) exactly as CBOR transaction decoding does — so
// every entry point here takes already-decoded Programs rather than raw
// PlutusScript.CBOR bytes.
package plutusexec

import (
	"fmt"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutuscore"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/scriptcontext"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// Programs maps a script hash to its already-decoded Plutus Core program,
// the seam a caller populates from whatever script-decoding collaborator
// it uses before calling into this package.
type Programs map[primitives.Hash28]*plutuscore.Term

// Mode selects the budget discipline §4.3.4 step 5 describes: Validate
// splits the protocol's per-transaction ceiling evenly across redeemers;
// EvaluateAndComputeCost gives each redeemer the full ceiling so the
// caller can measure true cost even when the declared ExUnits undercount
// it.
type Mode uint8

const (
	ModeValidate Mode = iota
	ModeEvaluateAndComputeCost
)

// ErrScriptUnresolved is returned when no PlutusScript for a required
// script hash can be found in the witness set or any resolvable
// reference/spend/collateral input's ScriptRef.
type ErrScriptUnresolved struct {
	Key  txmodel.RedeemerKey
	Hash primitives.Hash28
}

func (e *ErrScriptUnresolved) Error() string {
	return fmt.Sprintf("plutusexec: no plutus script found for redeemer %+v (hash %x)", e.Key, e.Hash)
}

// ErrProgramMissing is returned when Programs has no entry for a script
// hash that did resolve to a PlutusScript witness or reference.
type ErrProgramMissing struct {
	Hash primitives.Hash28
}

func (e *ErrProgramMissing) Error() string {
	return fmt.Sprintf("plutusexec: no decoded program supplied for script hash %x", e.Hash)
}

// ErrNotUnit is returned when a script evaluates successfully but to a
// value other than Unit (§4.3.4 step 6 "assert the final value is unit").
type ErrNotUnit struct {
	Key txmodel.RedeemerKey
}

func (e *ErrNotUnit) Error() string {
	return fmt.Sprintf("plutusexec: redeemer %+v evaluated to a non-unit value", e.Key)
}

// Result is one redeemer's evaluation outcome.
type Result struct {
	Key     txmodel.RedeemerKey
	ExUnits primitives.ExUnits
	Err     error
}

// EvaluateAll runs every witnessed redeemer in tx and returns one Result
// per redeemer, in tx.WitnessSet.Redeemers order (§4.3.4, §4.3.1 "every
// script must return unit within its per-script budget slice").
func EvaluateAll(tx *txmodel.Transaction, state *ledgerstate.State, params ledgerstate.Params, programs Programs, mode Mode) []Result {
	n := len(tx.WitnessSet.Redeemers)
	results := make([]Result, n)
	budget := perRedeemerBudget(params.MaxTxExecutionUnits, n, mode)
	for i, r := range tx.WitnessSet.Redeemers {
		exUnits, err := EvaluateRedeemer(tx, state, params, programs, r.Key, budget)
		results[i] = Result{Key: r.Key, ExUnits: exUnits, Err: err}
	}
	return results
}

func perRedeemerBudget(max primitives.ExUnits, n int, mode Mode) primitives.ExUnits {
	if mode == ModeEvaluateAndComputeCost || n <= 1 {
		return max
	}
	return primitives.ExUnits{Memory: max.Memory / int64(n), Steps: max.Steps / int64(n)}
}

// EvaluateRedeemer resolves, assembles, and evaluates a single redeemer,
// returning the measured ExUnits (valid even on a budget-exhausted partial
// run, §8 scenario 5) and any evaluation error.
func EvaluateRedeemer(tx *txmodel.Transaction, state *ledgerstate.State, params ledgerstate.Params, programs Programs, key txmodel.RedeemerKey, budget primitives.ExUnits) (primitives.ExUnits, error) {
	redeemer, ok := tx.RedeemerByKey()[key]
	if !ok {
		return primitives.ExUnits{}, fmt.Errorf("plutusexec: no redeemer witnessed for %+v", key)
	}

	scriptHash, ok := scriptHashFor(state, tx, key)
	if !ok {
		return primitives.ExUnits{}, &ErrScriptUnresolved{Key: key}
	}
	script, ok := resolvePlutusScript(state, tx, scriptHash)
	if !ok {
		return primitives.ExUnits{}, &ErrScriptUnresolved{Key: key, Hash: scriptHash}
	}
	program, ok := programs[scriptHash]
	if !ok {
		return primitives.ExUnits{}, &ErrProgramMissing{Hash: scriptHash}
	}

	term := assembleTerm(program, tx, state.Utxos, script.Language, key, redeemer)

	costs := plutuscore.StepCostsFromModel(params.CostModels.For(script.Language))
	spender := plutuscore.NewBudgetSpender(budget, costs)
	table := plutuscore.NewBuiltinTable()
	machine := plutuscore.NewMachine(spender, table)

	value, err := machine.Run(term, plutuscore.EmptyEnv())
	spent := spender.Spent()
	if err != nil {
		return spent, err
	}
	if !value.IsUnit() {
		return spent, &ErrNotUnit{Key: key}
	}
	return spent, nil
}

func assembleTerm(program *plutuscore.Term, tx *txmodel.Transaction, utxos ledgerstate.Utxos, lang primitives.ScriptLanguage, key txmodel.RedeemerKey, redeemer txmodel.Redeemer) *plutuscore.Term {
	if lang == primitives.ScriptPlutusV3 {
		ctx := scriptcontext.BuildV3(tx, utxos, key)
		return plutuscore.Apply(program, dataTerm(ctx))
	}

	var ctx plutusdata.Data
	if lang == primitives.ScriptPlutusV2 {
		ctx = scriptcontext.BuildV2(tx, utxos, key)
	} else {
		ctx = scriptcontext.BuildV1(tx, utxos, key)
	}

	term := program
	if key.Tag == txmodel.TagSpend {
		datum := spendDatum(tx, utxos, key)
		term = plutuscore.Apply(term, dataTerm(datum))
	}
	term = plutuscore.Apply(term, dataTerm(redeemer.Data))
	term = plutuscore.Apply(term, dataTerm(ctx))
	return term
}

func dataTerm(d plutusdata.Data) *plutuscore.Term {
	return plutuscore.Const(plutuscore.Value{Kind: plutuscore.ValData, Data: d})
}

func spendDatum(tx *txmodel.Transaction, utxos ledgerstate.Utxos, key txmodel.RedeemerKey) plutusdata.Data {
	if int(key.Index) >= len(tx.Body.Inputs) {
		return plutusdata.Constr(0)
	}
	out, ok := utxos.Get(tx.Body.Inputs[key.Index])
	if !ok {
		return plutusdata.Constr(0)
	}
	if out.Datum.IsInline() && out.Datum.Inline != nil {
		return *out.Datum.Inline
	}
	if out.Datum.IsHash() {
		if raw, ok := tx.WitnessSet.Datums[out.Datum.Hash]; ok {
			if d, ok := plutusdata.Decode(raw); ok {
				return d
			}
		}
	}
	return plutusdata.Constr(0)
}

// scriptHashFor resolves the script hash a given redeemer key targets
// (§4.3.4 step 1).
func scriptHashFor(state *ledgerstate.State, tx *txmodel.Transaction, key txmodel.RedeemerKey) (primitives.Hash28, bool) {
	switch key.Tag {
	case txmodel.TagSpend:
		if int(key.Index) >= len(tx.Body.Inputs) {
			return primitives.Hash28{}, false
		}
		out, ok := state.Utxos.Get(tx.Body.Inputs[key.Index])
		if !ok || !out.Address.Payment.IsScript() {
			return primitives.Hash28{}, false
		}
		return out.Address.Payment.Hash, true
	case txmodel.TagMint:
		policies := tx.Body.Mint.PolicyIds()
		if int(key.Index) >= len(policies) {
			return primitives.Hash28{}, false
		}
		return policies[key.Index], true
	case txmodel.TagCert:
		if int(key.Index) >= len(tx.Body.Certificates) {
			return primitives.Hash28{}, false
		}
		cred := tx.Body.Certificates[key.Index].StakeCredential
		if !cred.IsScript() {
			return primitives.Hash28{}, false
		}
		return cred.Hash, true
	case txmodel.TagReward:
		if int(key.Index) >= len(tx.Body.Withdrawals) {
			return primitives.Hash28{}, false
		}
		acct := tx.Body.Withdrawals[key.Index].RewardAccount
		if acct.Reward == nil || !acct.Reward.IsScript() {
			return primitives.Hash28{}, false
		}
		return acct.Reward.Hash, true
	default:
		return primitives.Hash28{}, false
	}
}

// resolvePlutusScript finds the PlutusScript witness for hash, checking
// the witness set directly and then every resolvable input/reference/
// collateral UTxO's reference script.
func resolvePlutusScript(state *ledgerstate.State, tx *txmodel.Transaction, hash primitives.Hash28) (primitives.PlutusScript, bool) {
	if s, ok := tx.WitnessSet.AllPlutusScripts()[hash]; ok {
		return s, true
	}
	allRefs := append(append(append([]txmodel.TransactionInput{}, tx.Body.Inputs...), tx.Body.ReferenceInputs...), tx.Body.CollateralInputs...)
	for _, in := range allRefs {
		o, ok := state.Utxos.Get(in)
		if !ok || o.ScriptRef == nil || o.ScriptRef.IsNative || o.ScriptRef.Plutus == nil {
			continue
		}
		if o.ScriptRef.Plutus.Hash == hash {
			return *o.ScriptRef.Plutus, true
		}
	}
	return primitives.PlutusScript{}, false
}
