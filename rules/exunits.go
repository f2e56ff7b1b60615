package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// ExUnitsTooBig rejects a transaction whose declared total ExUnits across
// every redeemer exceed the protocol's per-transaction execution budget
// (§4.2.1, §4.2.2 "totalExUnits").
func ExUnitsTooBig(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	total := tx.TotalExUnits()
	if total.Memory > ctx.Params.MaxTxExecutionUnits.Memory || total.Steps > ctx.Params.MaxTxExecutionUnits.Steps {
		return sts.New(tx.Id, sts.KindExUnitsExceedMax, "declared execution units exceed the transaction-level maximum", total)
	}
	return nil
}

// TooManyCollateralInputs rejects a transaction whose collateral input
// count exceeds Params.MaxCollateralInputs.
func TooManyCollateralInputs(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	if len(tx.Body.CollateralInputs) > ctx.Params.MaxCollateralInputs {
		return sts.New(tx.Id, sts.KindTooManyCollateralInputs, "too many collateral inputs", len(tx.Body.CollateralInputs))
	}
	return nil
}
