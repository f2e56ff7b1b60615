package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// outputFloorViolation reports whether out fails the minimum-ADA floor for
// its serialized size, or carries a multi-asset value with a negative
// entry (§4.2.1 "assets have no negative entries").
func outputFloorViolation(ctx ledgerstate.Context, out txmodel.TransactionOutput) (bool, error) {
	if out.Value.MultiAsset.HasNegativeEntries() {
		return true, nil
	}
	size, err := out.SerializedSize()
	if err != nil {
		return false, err
	}
	return out.Value.Coin < ctx.Params.MinUtxoCoin(size), nil
}

// OutputsHaveNotEnoughCoins rejects a transaction with an output — or a
// collateral return — whose declared coin is below the minimum-ADA floor
// for its serialized size, or whose value carries a negative asset
// quantity (§4.2.1).
func OutputsHaveNotEnoughCoins(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	var offending []int
	for i, out := range tx.Body.Outputs {
		bad, err := outputFloorViolation(ctx, out)
		if err != nil {
			return sts.Wrap(tx.Id, sts.KindOutputsHaveNotEnoughCoins, "failed to measure output size", err)
		}
		if bad {
			offending = append(offending, i)
		}
	}
	collateralBad := false
	if tx.Body.CollateralReturn != nil {
		bad, err := outputFloorViolation(ctx, *tx.Body.CollateralReturn)
		if err != nil {
			return sts.Wrap(tx.Id, sts.KindOutputsHaveNotEnoughCoins, "failed to measure collateral return size", err)
		}
		collateralBad = bad
	}
	if len(offending) > 0 || collateralBad {
		return sts.New(tx.Id, sts.KindOutputsHaveNotEnoughCoins, "one or more outputs carry less than the minimum required ADA or a negative asset quantity", struct {
			Outputs          []int
			CollateralReturn bool
		}{offending, collateralBad})
	}
	return nil
}

// OutputsHaveTooBigValueStorageSize rejects a transaction with an output
// whose Value component exceeds Params.MaxValueSize once serialized
// (§4.2.1).
func OutputsHaveTooBigValueStorageSize(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	var offending []int
	for i, out := range tx.Body.Outputs {
		size, err := out.ValueSerializedSize()
		if err != nil {
			return sts.Wrap(tx.Id, sts.KindOutputsHaveTooBigValueStorage, "failed to measure output value size", err)
		}
		if size > ctx.Params.MaxValueSize {
			offending = append(offending, i)
		}
	}
	if len(offending) > 0 {
		return sts.New(tx.Id, sts.KindOutputsHaveTooBigValueStorage, "one or more outputs carry a value exceeding the maximum storage size", offending)
	}
	return nil
}

// outputBootAddrAttrsMaxBytes is the combined Byron derivation-path plus
// unknown-attribute byte budget, excluding network magic (§4.2.1
// "OutputBootAddrAttrsTooBig").
const outputBootAddrAttrsMaxBytes = 64

// OutputBootAddrAttrsSize rejects a transaction with a Byron-style output
// whose address attributes exceed the fixed byte budget.
func OutputBootAddrAttrsSize(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	var offending []int
	for i, out := range tx.Body.Outputs {
		if out.Address.Kind == primitives.AddressByron && len(out.Address.ByronAttributes) > outputBootAddrAttrsMaxBytes {
			offending = append(offending, i)
		}
	}
	if len(offending) > 0 {
		return sts.New(tx.Id, sts.KindOutputBootAddrAttrsTooBig, "one or more Byron outputs exceed the address attribute size budget", offending)
	}
	return nil
}
