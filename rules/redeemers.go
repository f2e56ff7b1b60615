package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/scripthash"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// requiredRedeemerKeys is the set of (tag, index) pairs a correctly formed
// transaction must carry exactly one redeemer for: one per script-locked
// spend input, one per minted policy id, one per script-credentialed
// certificate, and one per script-credentialed withdrawal (§4.2.1
// "ExactSetOfRedeemers").
func requiredRedeemerKeys(state *ledgerstate.State, tx *txmodel.Transaction) map[txmodel.RedeemerKey]bool {
	out := map[txmodel.RedeemerKey]bool{}
	for i, in := range tx.Body.Inputs {
		if o, ok := state.Utxos.Get(in); ok && o.Address.Payment.IsScript() {
			out[txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: uint32(i)}] = true
		}
	}
	for i := range tx.Body.Mint.PolicyIds() {
		out[txmodel.RedeemerKey{Tag: txmodel.TagMint, Index: uint32(i)}] = true
	}
	for i, cert := range tx.Body.Certificates {
		if cert.StakeCredential.IsScript() {
			out[txmodel.RedeemerKey{Tag: txmodel.TagCert, Index: uint32(i)}] = true
		}
	}
	for i, w := range tx.Body.Withdrawals {
		if w.RewardAccount.Reward != nil && w.RewardAccount.Reward.IsScript() {
			out[txmodel.RedeemerKey{Tag: txmodel.TagReward, Index: uint32(i)}] = true
		}
	}
	return out
}

// ExactSetOfRedeemers rejects a transaction whose witnessed redeemer keys
// do not exactly match the set its script-locked inputs, mints,
// certificates, and withdrawals require — neither missing nor superfluous.
func ExactSetOfRedeemers(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	required := requiredRedeemerKeys(state, tx)
	witnessed := map[txmodel.RedeemerKey]bool{}
	for _, r := range tx.WitnessSet.Redeemers {
		witnessed[r.Key] = true
	}

	var missing, extra []txmodel.RedeemerKey
	for k := range required {
		if !witnessed[k] {
			missing = append(missing, k)
		}
	}
	for k := range witnessed {
		if !required[k] {
			extra = append(extra, k)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return sts.New(tx.Id, sts.KindExactSetOfRedeemers, "witnessed redeemers do not exactly match the required set", struct{ Missing, Extra []txmodel.RedeemerKey }{missing, extra})
	}
	return nil
}

// allowedDatumHashes collects every datum hash a witnessed preimage is
// permitted to correspond to beyond the required ones (script-locked spend
// inputs, collected separately by the caller): this transaction's own
// outputs, reference inputs' outputs, and collateral return (§4.2.1 "no
// supplemental datum hash appears outside outputs/referenceOutputs/
// collateralReturn" — a preimage supplied for one of these is a legitimate
// supplement, not an orphan).
func allowedDatumHashes(state *ledgerstate.State, tx *txmodel.Transaction) map[primitives.Hash32]bool {
	out := map[primitives.Hash32]bool{}
	for _, o := range tx.Body.Outputs {
		if o.Datum.IsHash() {
			out[o.Datum.Hash] = true
		}
	}
	for _, in := range tx.Body.ReferenceInputs {
		if o, ok := state.Utxos.Get(in); ok && o.Datum.IsHash() {
			out[o.Datum.Hash] = true
		}
	}
	if tx.Body.CollateralReturn != nil && tx.Body.CollateralReturn.Datum.IsHash() {
		out[tx.Body.CollateralReturn.Datum.Hash] = true
	}
	return out
}

// MissingRequiredDatums rejects a transaction whose script-locked inputs
// declare a datum hash with no corresponding preimage in the witness set's
// Datums map, and flags any supplied datum preimage that corresponds to no
// script-locked input and no output, reference-input output, or collateral
// return either — a true orphan (§4.2.1 "Datums").
func MissingRequiredDatums(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	required := map[primitives.Hash32]bool{}
	for _, in := range tx.Body.Inputs {
		o, ok := state.Utxos.Get(in)
		if !ok || !o.Address.Payment.IsScript() {
			continue
		}
		if o.Datum.IsHash() {
			required[o.Datum.Hash] = true
		}
	}
	allowed := allowedDatumHashes(state, tx)

	var missing, extra []primitives.Hash32
	for h := range required {
		if _, ok := tx.WitnessSet.Datums[h]; !ok {
			missing = append(missing, h)
		}
	}
	for h := range tx.WitnessSet.Datums {
		if !required[h] && !allowed[h] {
			extra = append(extra, h)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return sts.New(tx.Id, sts.KindDatums, "script-input datum hashes and witnessed datum preimages do not match exactly", struct{ Missing, Extra []primitives.Hash32 }{missing, extra})
	}
	return nil
}

// ProtocolParamsViewHashesMatch rejects a transaction whose declared
// ScriptDataHash does not match the hash recomputed from its own
// redeemers, datums, and the cost-model subset for the language versions
// it uses (§4.5, §4.2.1 "InvalidScriptDataHash").
func ProtocolParamsViewHashesMatch(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	expected, err := scripthash.Compute(tx, ctx.Params.CostModels)
	if err != nil {
		return sts.Wrap(tx.Id, sts.KindInvalidScriptDataHash, "failed to recompute script-data hash", err)
	}

	switch {
	case expected == nil && tx.Body.ScriptDataHash == nil:
		return nil
	case expected == nil && tx.Body.ScriptDataHash != nil:
		return sts.New(tx.Id, sts.KindInvalidScriptDataHash, "transaction declares a script-data hash but carries no Plutus scripts or redeemers", *tx.Body.ScriptDataHash)
	case expected != nil && tx.Body.ScriptDataHash == nil:
		return sts.New(tx.Id, sts.KindInvalidScriptDataHash, "transaction carries Plutus scripts or redeemers but declares no script-data hash", *expected)
	case *expected != *tx.Body.ScriptDataHash:
		return sts.New(tx.Id, sts.KindInvalidScriptDataHash, "declared script-data hash does not match the recomputed hash", struct{ Expected, Declared primitives.Hash32 }{*expected, *tx.Body.ScriptDataHash})
	}
	return nil
}
