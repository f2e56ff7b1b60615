package plutusexec

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutuscore"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func scriptLockedFixture(hash primitives.Hash28) (*txmodel.Transaction, *ledgerstate.State) {
	in := txmodel.TransactionInput{TransactionId: primitives.Hash32{0x01}, Index: 0}
	out := txmodel.TransactionOutput{
		Address: primitives.Address{Payment: primitives.Credential{Kind: primitives.CredentialScriptHash, Hash: hash}},
		Value:   primitives.Value{Coin: 1_000_000},
	}
	tx := &txmodel.Transaction{
		Id:   primitives.Hash32{0x02},
		Body: txmodel.TransactionBody{Inputs: []txmodel.TransactionInput{in}},
		WitnessSet: txmodel.WitnessSet{
			PlutusV1Scripts: []primitives.PlutusScript{{Language: primitives.ScriptPlutusV1, CBOR: []byte{0x01}, Hash: hash}},
			Redeemers: []txmodel.Redeemer{
				{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, Data: plutusdata.Int(1)},
			},
		},
	}
	return tx, ledgerstate.NewState(ledgerstate.Utxos{in: out})
}

func unlimitedParams() ledgerstate.Params {
	return ledgerstate.Params{
		MaxTxExecutionUnits: primitives.ExUnits{Memory: 10_000_000, Steps: 10_000_000_000},
		CostModels:          ledgerstate.CostModels{V1: ledgerstate.CostModel{Params: []int64{}}},
	}
}

func TestEvaluateAllSucceedsForAlwaysTrueScript(t *testing.T) {
	hash := primitives.Hash28{0x03}
	tx, state := scriptLockedFixture(hash)

	// \datum redeemer ctx -> () : always accepts regardless of arguments.
	program := plutuscore.LamAbs(plutuscore.LamAbs(plutuscore.LamAbs(plutuscore.Const(plutuscore.Unit))))
	programs := Programs{hash: program}

	results := EvaluateAll(tx, state, unlimitedParams(), programs, ModeValidate)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, nil, results[0].Err)
}

func TestEvaluateAllReportsScriptUnresolved(t *testing.T) {
	hash := primitives.Hash28{0x04}
	tx, state := scriptLockedFixture(hash)
	tx.WitnessSet.PlutusV1Scripts = nil // script witness withdrawn

	programs := Programs{hash: plutuscore.ErrorTerm()}
	results := EvaluateAll(tx, state, unlimitedParams(), programs, ModeValidate)
	assert.Equal(t, 1, len(results))
	_, ok := results[0].Err.(*ErrScriptUnresolved)
	assert.True(t, ok, "expected *ErrScriptUnresolved, got %T", results[0].Err)
}

func TestEvaluateAllReportsProgramMissing(t *testing.T) {
	hash := primitives.Hash28{0x05}
	tx, state := scriptLockedFixture(hash)

	results := EvaluateAll(tx, state, unlimitedParams(), Programs{}, ModeValidate)
	assert.Equal(t, 1, len(results))
	_, ok := results[0].Err.(*ErrProgramMissing)
	assert.True(t, ok, "expected *ErrProgramMissing, got %T", results[0].Err)
}

func TestEvaluateAllReportsNonUnitResult(t *testing.T) {
	hash := primitives.Hash28{0x06}
	tx, state := scriptLockedFixture(hash)

	// \datum redeemer ctx -> 42 : evaluates successfully but not to unit.
	program := plutuscore.LamAbs(plutuscore.LamAbs(plutuscore.LamAbs(plutuscore.Const(plutuscore.IntegerValue(42)))))
	programs := Programs{hash: program}

	results := EvaluateAll(tx, state, unlimitedParams(), programs, ModeValidate)
	_, ok := results[0].Err.(*ErrNotUnit)
	assert.True(t, ok, "expected *ErrNotUnit, got %T", results[0].Err)
}

func TestPerRedeemerBudgetSplitsEvenlyUnderModeValidate(t *testing.T) {
	max := primitives.ExUnits{Memory: 100, Steps: 200}
	got := perRedeemerBudget(max, 4, ModeValidate)
	assert.Equal(t, int64(25), got.Memory)
	assert.Equal(t, int64(50), got.Steps)
}

func TestPerRedeemerBudgetGivesFullCeilingUnderEvaluateAndComputeCost(t *testing.T) {
	max := primitives.ExUnits{Memory: 100, Steps: 200}
	got := perRedeemerBudget(max, 4, ModeEvaluateAndComputeCost)
	assert.Equal(t, max, got)
}
