package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func TestFeesOkRejectsFeeBelowMinimum(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Fee: 1}}

	err := FeesOk(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindFeesNotOk))
}

func TestFeesOkAcceptsFeeAtMinimum(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Fee: 500_000}}

	err := FeesOk(ctx, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestFeesOkSkipsCollateralChecksWithZeroTotalExUnits(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0, CollateralPercentage: 150}}
	// A datum witness with no redeemers: HasPlutusScripts would be true,
	// but totalExUnits is (0,0) so collateral checks must not fire even
	// though no collateral inputs are supplied.
	tx := &txmodel.Transaction{
		Body: txmodel.TransactionBody{Fee: 500_000},
		WitnessSet: txmodel.WitnessSet{Datums: map[primitives.Hash32][]byte{
			{0x01}: {0x01},
		}},
	}

	err := FeesOk(ctx, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestFeesOkRejectsNoCollateralInputsWhenExUnitsNonzero(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0, CollateralPercentage: 150}}
	tx := &txmodel.Transaction{
		Body: txmodel.TransactionBody{Fee: 500_000},
		WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
			{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, ExUnits: primitives.ExUnits{Memory: 1, Steps: 1}},
		}},
	}

	err := FeesOk(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindFeesNotOk))
}

func TestFeesOkRejectsCollateralInsufficient(t *testing.T) {
	in := sampleInput(0)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0, CollateralPercentage: 150}}
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(100_000)})
	tx := &txmodel.Transaction{
		Body: txmodel.TransactionBody{Fee: 500_000, CollateralInputs: []txmodel.TransactionInput{in}},
		WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
			{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, ExUnits: primitives.ExUnits{Memory: 1, Steps: 1}},
		}},
	}

	err := FeesOk(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindFeesNotOk))
}

func TestFeesOkAcceptsSufficientAdaOnlyKeyHashCollateral(t *testing.T) {
	in := sampleInput(0)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0, CollateralPercentage: 150}}
	out := txmodel.TransactionOutput{
		Address: primitives.Address{Payment: primitives.Credential{Kind: primitives.CredentialKeyHash, Hash: primitives.Hash28{0x01}}},
		Value:   primitives.Value{Coin: 1_000_000},
	}
	state := ledgerstate.NewState(ledgerstate.Utxos{in: out})
	tx := &txmodel.Transaction{
		Body: txmodel.TransactionBody{Fee: 500_000, CollateralInputs: []txmodel.TransactionInput{in}},
		WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
			{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, ExUnits: primitives.ExUnits{Memory: 1, Steps: 1}},
		}},
	}

	err := FeesOk(ctx, state, tx)
	assert.Equal(t, nil, err)
}

func TestFeesOkRejectsScriptLockedCollateral(t *testing.T) {
	in := sampleInput(0)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0, CollateralPercentage: 150}}
	out := txmodel.TransactionOutput{
		Address: primitives.Address{Payment: primitives.Credential{Kind: primitives.CredentialScriptHash, Hash: primitives.Hash28{0x01}}},
		Value:   primitives.Value{Coin: 1_000_000},
	}
	state := ledgerstate.NewState(ledgerstate.Utxos{in: out})
	tx := &txmodel.Transaction{
		Body: txmodel.TransactionBody{Fee: 500_000, CollateralInputs: []txmodel.TransactionInput{in}},
		WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
			{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, ExUnits: primitives.ExUnits{Memory: 1, Steps: 1}},
		}},
	}

	err := FeesOk(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindFeesNotOk))
}

func TestFeesOkRejectsTotalCollateralMismatch(t *testing.T) {
	in := sampleInput(0)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinFeeConstant: 500_000, MinFeeCoefficient: 0, CollateralPercentage: 150}}
	out := txmodel.TransactionOutput{
		Address: primitives.Address{Payment: primitives.Credential{Kind: primitives.CredentialKeyHash, Hash: primitives.Hash28{0x01}}},
		Value:   primitives.Value{Coin: 1_000_000},
	}
	declared := primitives.Coin(1)
	state := ledgerstate.NewState(ledgerstate.Utxos{in: out})
	tx := &txmodel.Transaction{
		Body: txmodel.TransactionBody{Fee: 500_000, CollateralInputs: []txmodel.TransactionInput{in}, TotalCollateral: &declared},
		WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
			{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, ExUnits: primitives.ExUnits{Memory: 1, Steps: 1}},
		}},
	}

	err := FeesOk(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindFeesNotOk))
}
