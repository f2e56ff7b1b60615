package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// FeesOk is the compound validator §4.2.2 describes: up to six
// independent sub-checks bundled into one sts.FeesNotOkDetails, reported
// together rather than short-circuiting on the first.
func FeesOk(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	var d sts.FeesNotOkDetails

	size, err := estimatedSize(tx)
	if err != nil {
		return sts.Wrap(tx.Id, sts.KindFeesNotOk, "failed to measure transaction size for fee check", err)
	}
	minFee := ctx.Params.BaseFee(size)
	d.ActualFee, d.MinFee = tx.Body.Fee, minFee
	if tx.Body.Fee < minFee {
		d.IsFeeTooSmall = true
	}

	totalExUnits := tx.TotalExUnits()
	if totalExUnits.Memory != 0 || totalExUnits.Steps != 0 {
		if len(tx.Body.CollateralInputs) == 0 {
			d.IsNoCollateralInputs = true
		}
		for _, in := range tx.Body.CollateralInputs {
			out, ok := state.Utxos.Get(in)
			if !ok {
				continue
			}
			if out.Address.HasScriptPaymentCredential() {
				d.HasNonKeyHashCollateral = true
				d.NonKeyHashCollateralAddrs++
			}
			if len(out.Value.MultiAsset.Canonical()) > 0 {
				d.IsCollateralNotAdaOnly = true
			}
		}

		collateralTotal := primitives.Coin(0)
		for _, in := range tx.Body.CollateralInputs {
			out, ok := state.Utxos.Get(in)
			if !ok {
				continue
			}
			collateralTotal += out.Value.Coin
		}
		if tx.Body.CollateralReturn != nil {
			collateralTotal -= tx.Body.CollateralReturn.Value.Coin
		}
		d.CollateralTotal = collateralTotal
		d.ComputedTotalCollateral = collateralTotal
		d.RequiredCollateral = requiredCollateral(tx.Body.Fee, ctx.Params.CollateralPercentage)
		if collateralTotal < d.RequiredCollateral {
			d.IsCollateralInsufficient = true
		}

		if tx.Body.TotalCollateral != nil {
			d.DeclaredTotalCollateral = tx.Body.TotalCollateral
			if *tx.Body.TotalCollateral != collateralTotal {
				d.IsTotalCollateralMismatch = true
			}
		}
	}

	if d.Any() {
		return sts.New(tx.Id, sts.KindFeesNotOk, "fee or collateral requirements not satisfied", d)
	}
	return nil
}

func requiredCollateral(fee primitives.Coin, percentage int) primitives.Coin {
	numerator := int64(fee) * int64(percentage)
	required := numerator / 100
	if numerator%100 != 0 {
		required++
	}
	return primitives.Coin(required)
}
