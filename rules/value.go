package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// ValueNotConservedUTxO rejects a transaction for which the conservation
// equation does not hold:
//
//	Σ inputs + mint + Σ withdrawals + Σ deregistration refunds
//	    == Σ outputs + fee + donation + Σ new registration deposits
//
// Both sides are accumulated with raw (error-free, sign-permissive)
// arithmetic rather than primitives.Value.Add/Coin.Add, since a burn
// (negative mint entry) or a withdrawal can legitimately make an
// intermediate partial sum negative — only the final equality matters
// (§4.2.1 "ValueNotConservedUTxO"; see DESIGN.md for why Coin.Add's
// non-negative guard is unsuitable here).
func ValueNotConservedUTxO(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	consumed := rawValue{}
	for _, in := range tx.Body.Inputs {
		out, ok := state.Utxos.Get(in)
		if !ok {
			continue // reported by AllInputsMustBeInUtxo; don't double-fail here
		}
		consumed.addValue(out.Value)
	}
	consumed.addMultiAsset(tx.Body.Mint)
	for _, w := range tx.Body.Withdrawals {
		consumed.coin += int64(w.Amount)
	}
	for _, cert := range tx.Body.Certificates {
		if cert.Kind == txmodel.CertStakeDeregistration || cert.Kind == txmodel.CertPoolRetirement {
			if deposit, ok := state.CertState.Delegation.Deposits[cert.StakeCredential]; ok {
				consumed.coin += int64(deposit)
			}
		}
	}

	produced := rawValue{}
	for _, out := range tx.Body.Outputs {
		produced.addValue(out.Value)
	}
	produced.coin += int64(tx.Body.Fee)
	produced.coin += int64(tx.Body.Donation)
	produced.coin += int64(tx.Body.TreasuryDonation)
	for _, cert := range tx.Body.Certificates {
		switch cert.Kind {
		case txmodel.CertStakeRegistration:
			produced.coin += int64(cert.Deposit)
		case txmodel.CertPoolRegistration:
			produced.coin += int64(ctx.Params.PoolDeposit)
		}
	}

	if !consumed.equal(produced) {
		return sts.New(tx.Id, sts.KindValueNotConservedUTxO, "consumed value does not equal produced value", struct {
			ConsumedCoin, ProducedCoin int64
		}{consumed.coin, produced.coin})
	}
	return nil
}

// rawValue accumulates a Coin/MultiAsset pair with raw int64 arithmetic,
// deliberately bypassing the non-negative guard primitives.Coin.Add
// enforces.
type rawValue struct {
	coin  int64
	asset map[primitives.PolicyId]map[primitives.AssetName]int64
}

func (r *rawValue) addValue(v primitives.Value) {
	r.coin += int64(v.Coin)
	r.addMultiAsset(v.MultiAsset)
}

func (r *rawValue) addMultiAsset(m primitives.MultiAsset) {
	if r.asset == nil {
		r.asset = map[primitives.PolicyId]map[primitives.AssetName]int64{}
	}
	for policy, asset := range m {
		inner, ok := r.asset[policy]
		if !ok {
			inner = map[primitives.AssetName]int64{}
			r.asset[policy] = inner
		}
		for name, qty := range asset {
			inner[name] += qty
		}
	}
}

func (r rawValue) equal(other rawValue) bool {
	if r.coin != other.coin {
		return false
	}
	return canonicalAssetEqual(r.asset, other.asset)
}

func canonicalAssetEqual(a, b map[primitives.PolicyId]map[primitives.AssetName]int64) bool {
	ac, bc := canonicalizeAsset(a), canonicalizeAsset(b)
	if len(ac) != len(bc) {
		return false
	}
	for policy, inner := range ac {
		bInner, ok := bc[policy]
		if !ok || len(inner) != len(bInner) {
			return false
		}
		for name, qty := range inner {
			if bInner[name] != qty {
				return false
			}
		}
	}
	return true
}

func canonicalizeAsset(m map[primitives.PolicyId]map[primitives.AssetName]int64) map[primitives.PolicyId]map[primitives.AssetName]int64 {
	out := map[primitives.PolicyId]map[primitives.AssetName]int64{}
	for policy, asset := range m {
		inner := map[primitives.AssetName]int64{}
		for name, qty := range asset {
			if qty != 0 {
				inner[name] = qty
			}
		}
		if len(inner) > 0 {
			out[policy] = inner
		}
	}
	return out
}
