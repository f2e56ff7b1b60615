package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func TestExUnitsTooBigRejectsOverLimit(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MaxTxExecutionUnits: primitives.ExUnits{Memory: 100, Steps: 100}}}
	tx := &txmodel.Transaction{WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
		{ExUnits: primitives.ExUnits{Memory: 200, Steps: 50}},
	}}}

	err := ExUnitsTooBig(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindExUnitsExceedMax))
}

func TestExUnitsTooBigAcceptsWithinLimit(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MaxTxExecutionUnits: primitives.ExUnits{Memory: 100, Steps: 100}}}
	tx := &txmodel.Transaction{WitnessSet: txmodel.WitnessSet{Redeemers: []txmodel.Redeemer{
		{ExUnits: primitives.ExUnits{Memory: 50, Steps: 50}},
	}}}

	err := ExUnitsTooBig(ctx, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestTooManyCollateralInputsRejectsOverLimit(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MaxCollateralInputs: 1}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{CollateralInputs: []txmodel.TransactionInput{
		sampleInput(0), sampleInput(1),
	}}}

	err := TooManyCollateralInputs(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindTooManyCollateralInputs))
}

func TestTooManyCollateralInputsAcceptsWithinLimit(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MaxCollateralInputs: 3}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{CollateralInputs: []txmodel.TransactionInput{sampleInput(0)}}}

	err := TooManyCollateralInputs(ctx, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}
