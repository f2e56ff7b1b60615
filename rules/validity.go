package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// OutsideValidityInterval rejects a transaction whose validity interval
// does not contain the current slot (§4.2.1, upper bound exclusive).
func OutsideValidityInterval(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	if !tx.Body.ValidityInterval.Contains(ctx.CurrentSlot) {
		return sts.New(tx.Id, sts.KindOutsideValidityInterval, "current slot is outside the transaction's validity interval", tx.Body.ValidityInterval)
	}
	return nil
}

// OutsideForecast rejects a transaction whose upper validity bound falls
// beyond the slot-to-time forecast window a Plutus script's POSIXTimeRange
// can reliably be computed against (§4.2.1, §6 "ForecastSlot").
func OutsideForecast(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	if !tx.HasPlutusScripts() {
		return nil
	}
	if tx.Body.ValidityInterval.To != nil && *tx.Body.ValidityInterval.To > ctx.ForecastSlot {
		return sts.New(tx.Id, sts.KindOutsideForecast, "validity interval upper bound exceeds the forecast window", struct {
			Upper, Forecast uint64
		}{*tx.Body.ValidityInterval.To, ctx.ForecastSlot})
	}
	return nil
}
