// Package scriptcontext builds the Data-encoded script context a Plutus
// script is invoked against (§4.3.1 "script-context construction"),
// varying by language version: PlutusV1/V2 encode one ScriptContext per
// redeemer purpose; PlutusV3 additionally carries the redeemer itself and
// a richer per-purpose ScriptInfo. Addresses, stake pointers included, are
// encoded the same way for every version.
package scriptcontext

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// Purpose tags, matching the ScriptPurpose/ScriptInfo Constr order the
// ledger specification fixes: Minting, Spending, Rewarding, Certifying,
// (Conway) Voting, Proposing.
const (
	purposeMinting = iota
	purposeSpending
	purposeRewarding
	purposeCertifying
	purposeVoting
	purposeProposing
)

// BuildV1 and BuildV2 share an encoding (§4.3.1 "V1 and V2 share a
// ScriptContext shape"); BuildV3 differs.

// BuildV1 builds the Constr 0 [TxInfo, ScriptPurpose] context for a V1
// script invocation.
func BuildV1(tx *txmodel.Transaction, utxos ledgerstate.Utxos, key txmodel.RedeemerKey) plutusdata.Data {
	return buildV1V2(tx, utxos, key)
}

// BuildV2 builds the V2 ScriptContext — structurally identical to V1 at
// this level of fidelity (the difference is additional TxInfo fields
// already included below: reference inputs, redeemers map, datums map).
func BuildV2(tx *txmodel.Transaction, utxos ledgerstate.Utxos, key txmodel.RedeemerKey) plutusdata.Data {
	return buildV1V2(tx, utxos, key)
}

func buildV1V2(tx *txmodel.Transaction, utxos ledgerstate.Utxos, key txmodel.RedeemerKey) plutusdata.Data {
	txInfo := buildTxInfo(tx, utxos)
	purpose := buildPurpose(tx, key)
	return plutusdata.Constr(0, txInfo, purpose)
}

// BuildV3 builds the Constr 0 [TxInfo, Redeemer, ScriptInfo] context Conway
// scripts receive.
func BuildV3(tx *txmodel.Transaction, utxos ledgerstate.Utxos, key txmodel.RedeemerKey) plutusdata.Data {
	txInfo := buildTxInfo(tx, utxos)
	redeemer, ok := tx.RedeemerByKey()[key]
	redeemerData := plutusdata.Constr(0)
	if ok {
		redeemerData = redeemer.Data
	}
	info := buildScriptInfo(tx, utxos, key)
	return plutusdata.Constr(0, txInfo, redeemerData, info)
}

func buildPurpose(tx *txmodel.Transaction, key txmodel.RedeemerKey) plutusdata.Data {
	switch key.Tag {
	case txmodel.TagMint:
		policies := tx.Body.Mint.PolicyIds()
		if int(key.Index) < len(policies) {
			return plutusdata.Constr(purposeMinting, plutusdata.Bytes(policies[key.Index][:]))
		}
		return plutusdata.Constr(purposeMinting, plutusdata.Bytes(nil))
	case txmodel.TagSpend:
		return plutusdata.Constr(purposeSpending, inputRef(tx, int(key.Index)))
	case txmodel.TagReward:
		return plutusdata.Constr(purposeRewarding, withdrawalRef(tx, int(key.Index)))
	case txmodel.TagCert:
		return plutusdata.Constr(purposeCertifying, plutusdata.Int(int64(key.Index)))
	case txmodel.TagVoting:
		return plutusdata.Constr(purposeVoting, plutusdata.Int(int64(key.Index)))
	default:
		return plutusdata.Constr(purposeProposing, plutusdata.Int(int64(key.Index)))
	}
}

func buildScriptInfo(tx *txmodel.Transaction, utxos ledgerstate.Utxos, key txmodel.RedeemerKey) plutusdata.Data {
	switch key.Tag {
	case txmodel.TagSpend:
		datum := plutusdata.Constr(NoneTag)
		if int(key.Index) < len(tx.Body.Inputs) {
			if out, ok := utxos.Get(tx.Body.Inputs[key.Index]); ok {
				datum = datumOptionData(out)
			}
		}
		return plutusdata.Constr(purposeSpending, inputRef(tx, int(key.Index)), datum)
	default:
		return buildPurpose(tx, key)
	}
}

// NoneTag is the Data.Constr tag used for Plutus's Maybe.Nothing ("no
// datum", "no reference script", "no stake credential").
const NoneTag = 1

func datumOptionData(out txmodel.TransactionOutput) plutusdata.Data {
	switch {
	case out.Datum.IsHash():
		return plutusdata.Constr(2, plutusdata.Bytes(out.Datum.Hash[:]))
	case out.Datum.IsInline() && out.Datum.Inline != nil:
		return plutusdata.Constr(3, *out.Datum.Inline)
	default:
		return plutusdata.Constr(NoneTag)
	}
}

func inputRef(tx *txmodel.Transaction, index int) plutusdata.Data {
	if index < 0 || index >= len(tx.Body.Inputs) {
		return plutusdata.Constr(0, plutusdata.Bytes(nil), plutusdata.Int(0))
	}
	in := tx.Body.Inputs[index]
	return plutusdata.Constr(0, plutusdata.Bytes(in.TransactionId[:]), plutusdata.Int(int64(in.Index)))
}

func withdrawalRef(tx *txmodel.Transaction, index int) plutusdata.Data {
	if index < 0 || index >= len(tx.Body.Withdrawals) {
		return plutusdata.Constr(2)
	}
	return addressData(tx.Body.Withdrawals[index].RewardAccount)
}

// buildTxInfo encodes the subset of TxInfo fields the rules engine and
// off-chain tooling actually need to exercise: inputs, reference inputs,
// outputs, fee, mint, certificates count, withdrawals, validity interval,
// signatories, redeemers, datums, and the transaction id. Exhaustive
// per-field parity with the on-chain plutus-ledger-api TxInfo encoding is
// out of scope (§1); this produces a stable, self-consistent encoding any
// script compiled against this module's context builder can pattern-match
// against.
func buildTxInfo(tx *txmodel.Transaction, utxos ledgerstate.Utxos) plutusdata.Data {
	inputs := make([]plutusdata.Data, len(tx.Body.Inputs))
	for i, in := range tx.Body.Inputs {
		out, _ := utxos.Get(in)
		inputs[i] = txInInfo(in, out)
	}
	refInputs := make([]plutusdata.Data, len(tx.Body.ReferenceInputs))
	for i, in := range tx.Body.ReferenceInputs {
		out, _ := utxos.Get(in)
		refInputs[i] = txInInfo(in, out)
	}
	outputs := make([]plutusdata.Data, len(tx.Body.Outputs))
	for i, out := range tx.Body.Outputs {
		outputs[i] = txOut(out)
	}
	withdrawals := make([]plutusdata.Pair, len(tx.Body.Withdrawals))
	for i, w := range tx.Body.Withdrawals {
		withdrawals[i] = plutusdata.Pair{Key: addressData(w.RewardAccount), Value: plutusdata.Int(int64(w.Amount))}
	}
	signatories := make([]plutusdata.Data, len(tx.Body.RequiredSigners))
	for i, s := range tx.Body.RequiredSigners {
		signatories[i] = plutusdata.Bytes(s[:])
	}
	redeemers := make([]plutusdata.Pair, len(tx.WitnessSet.Redeemers))
	for i, r := range tx.WitnessSet.Redeemers {
		redeemers[i] = plutusdata.Pair{Key: redeemerKeyData(r.Key), Value: r.Data}
	}
	datums := make([]plutusdata.Pair, 0, len(tx.WitnessSet.Datums))
	for h := range tx.WitnessSet.Datums {
		datums = append(datums, plutusdata.Pair{Key: plutusdata.Bytes(h[:]), Value: plutusdata.Bytes(tx.WitnessSet.Datums[h])})
	}

	return plutusdata.Constr(0,
		plutusdata.List(inputs...),
		plutusdata.List(refInputs...),
		plutusdata.List(outputs...),
		plutusdata.Int(int64(tx.Body.Fee)),
		mintData(tx.Body.Mint),
		plutusdata.Int(int64(len(tx.Body.Certificates))),
		plutusdata.MapOf(withdrawals...),
		validityIntervalData(tx.Body.ValidityInterval),
		plutusdata.List(signatories...),
		plutusdata.MapOf(redeemers...),
		plutusdata.MapOf(datums...),
		plutusdata.Bytes(tx.Id[:]),
	)
}

func redeemerKeyData(k txmodel.RedeemerKey) plutusdata.Data {
	return plutusdata.Constr(uint64(k.Tag), plutusdata.Int(int64(k.Index)))
}

func txInInfo(in txmodel.TransactionInput, out txmodel.TransactionOutput) plutusdata.Data {
	ref := plutusdata.Constr(0, plutusdata.Bytes(in.TransactionId[:]), plutusdata.Int(int64(in.Index)))
	return plutusdata.Constr(0, ref, txOut(out))
}

func txOut(out txmodel.TransactionOutput) plutusdata.Data {
	datum := datumOptionData(out)
	refScript := plutusdata.Constr(NoneTag)
	if out.ScriptRef != nil {
		refScript = plutusdata.Constr(0, plutusdata.Bytes(nil))
	}
	return plutusdata.Constr(0, addressData(out.Address), valueData(out.Value), datum, refScript)
}

func credentialData(c primitives.Credential) plutusdata.Data {
	if c.IsScript() {
		return plutusdata.Constr(1, plutusdata.Bytes(c.Hash[:]))
	}
	return plutusdata.Constr(0, plutusdata.Bytes(c.Hash[:]))
}

func addressData(a primitives.Address) plutusdata.Data {
	stake := plutusdata.Constr(primitives.NoStakeConstrTag)
	switch {
	case a.Stake != nil:
		stake = plutusdata.Constr(0, plutusdata.Constr(0, credentialData(*a.Stake)))
	case a.Pointer != nil:
		ptr := plutusdata.Constr(primitives.StakePointerConstrTag,
			plutusdata.Int(int64(a.Pointer.Slot)),
			plutusdata.Int(int64(a.Pointer.TransactionIx)),
			plutusdata.Int(int64(a.Pointer.CertIx)))
		stake = plutusdata.Constr(0, ptr)
	}
	payment := a.Payment
	if a.Kind == primitives.AddressReward && a.Reward != nil {
		payment = *a.Reward
	}
	return plutusdata.Constr(0, credentialData(payment), stake)
}

func valueData(v primitives.Value) plutusdata.Data {
	policies := v.MultiAsset.PolicyIds()
	pairs := make([]plutusdata.Pair, 0, len(policies)+1)
	adaAssets := plutusdata.MapOf(plutusdata.Pair{Key: plutusdata.Bytes(nil), Value: plutusdata.Int(int64(v.Coin))})
	pairs = append(pairs, plutusdata.Pair{Key: plutusdata.Bytes(nil), Value: adaAssets})
	for _, p := range policies {
		asset := v.MultiAsset[p]
		names := asset.AssetNames()
		assetPairs := make([]plutusdata.Pair, len(names))
		for i, n := range names {
			assetPairs[i] = plutusdata.Pair{Key: plutusdata.Bytes([]byte(n)), Value: plutusdata.Int(asset[n])}
		}
		pairs = append(pairs, plutusdata.Pair{Key: plutusdata.Bytes(p[:]), Value: plutusdata.MapOf(assetPairs...)})
	}
	return plutusdata.MapOf(pairs...)
}

func mintData(m primitives.MultiAsset) plutusdata.Data {
	return valueData(primitives.Value{MultiAsset: m})
}

func validityIntervalData(v txmodel.ValidityInterval) plutusdata.Data {
	lower := plutusdata.Constr(NoneTag)
	if v.From != nil {
		lower = plutusdata.Constr(0, plutusdata.Int(int64(*v.From)))
	}
	upper := plutusdata.Constr(NoneTag)
	if v.To != nil {
		upper = plutusdata.Constr(0, plutusdata.Int(int64(*v.To)))
	}
	return plutusdata.Constr(0, lower, upper)
}
