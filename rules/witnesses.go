package rules

import (
	"sort"

	"github.com/zenGate-Global/cardano-ledger-core/cryptoimpl"
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// requiredKeyHashes collects every key-hash credential the transaction
// demands a VKey witness for: key-locked spend/collateral inputs,
// RequiredSigners, withdrawal reward accounts, and certificate stake
// credentials (§4.2.1 "MissingKeyHashes").
func requiredKeyHashes(state *ledgerstate.State, tx *txmodel.Transaction) map[primitives.Hash28]struct{} {
	out := map[primitives.Hash28]struct{}{}
	addCred := func(c primitives.Credential) {
		if !c.IsScript() {
			out[c.Hash] = struct{}{}
		}
	}
	for _, in := range append(append([]txmodel.TransactionInput{}, tx.Body.Inputs...), tx.Body.CollateralInputs...) {
		if out2, ok := state.Utxos.Get(in); ok {
			addCred(out2.Address.Payment)
		}
	}
	for _, h := range tx.Body.RequiredSigners {
		out[h] = struct{}{}
	}
	for _, w := range tx.Body.Withdrawals {
		if w.RewardAccount.Reward != nil {
			addCred(*w.RewardAccount.Reward)
		}
	}
	for _, cert := range tx.Body.Certificates {
		addCred(cert.StakeCredential)
	}
	return out
}

// MissingKeyHashes rejects a transaction lacking a VKey (or bootstrap)
// witness for any key hash the transaction's inputs, signers, withdrawals,
// or certificates require.
func MissingKeyHashes(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	required := requiredKeyHashes(state, tx)
	witnessed := witnessedKeyHashes(tx)
	var missing []primitives.Hash28
	for h := range required {
		if _, ok := witnessed[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i].Less(missing[j]) })
		return sts.New(tx.Id, sts.KindMissingKeyHashes, "required key hashes have no corresponding witness", missing)
	}
	return nil
}

func witnessedKeyHashes(tx *txmodel.Transaction) map[primitives.Hash28]struct{} {
	out := map[primitives.Hash28]struct{}{}
	for _, w := range tx.WitnessSet.VKeyWitnesses {
		out[cryptoimpl.Blake2b224(w.VKey[:])] = struct{}{}
	}
	for _, w := range tx.WitnessSet.BootstrapWitnesses {
		out[cryptoimpl.Blake2b224(w.VKey[:])] = struct{}{}
	}
	return out
}

// VerifiedSignaturesInWitnesses rejects a transaction carrying any VKey or
// bootstrap witness whose signature does not verify against the
// transaction id (§4.2.1).
func VerifiedSignaturesInWitnesses(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	message := tx.Id[:]
	var bad []int
	for i, w := range tx.WitnessSet.VKeyWitnesses {
		if !cryptoimpl.VerifyEd25519(w.VKey[:], message, w.Signature[:]) {
			bad = append(bad, i)
		}
	}
	for i, w := range tx.WitnessSet.BootstrapWitnesses {
		if !cryptoimpl.VerifyEd25519Extended(w.VKey[:], message, w.Signature[:]) {
			bad = append(bad, len(tx.WitnessSet.VKeyWitnesses)+i)
		}
	}
	if len(bad) > 0 {
		return sts.New(tx.Id, sts.KindInvalidSignaturesInWitnesses, "one or more witness signatures do not verify", bad)
	}
	return nil
}

// requiredScriptHashes collects every script-hash credential the
// transaction demands a script for: script-locked spend inputs,
// certificate stake credentials, withdrawal reward accounts, and minted
// policy ids.
func requiredScriptHashes(state *ledgerstate.State, tx *txmodel.Transaction) map[primitives.Hash28]struct{} {
	out := map[primitives.Hash28]struct{}{}
	for _, in := range tx.Body.Inputs {
		if o, ok := state.Utxos.Get(in); ok && o.Address.Payment.IsScript() {
			out[o.Address.Payment.Hash] = struct{}{}
		}
	}
	for _, cert := range tx.Body.Certificates {
		if cert.StakeCredential.IsScript() {
			out[cert.StakeCredential.Hash] = struct{}{}
		}
	}
	for _, w := range tx.Body.Withdrawals {
		if w.RewardAccount.Reward != nil && w.RewardAccount.Reward.IsScript() {
			out[w.RewardAccount.Reward.Hash] = struct{}{}
		}
	}
	for _, policy := range tx.Body.Mint.PolicyIds() {
		out[policy] = struct{}{}
	}
	return out
}

// availableScriptHashes is every script hash the witness set carries
// directly, plus any reference script attached to a resolvable reference,
// spend, or collateral input (Babbage+, §3 "ScriptRef").
func availableScriptHashes(state *ledgerstate.State, tx *txmodel.Transaction) map[primitives.Hash28]struct{} {
	out := map[primitives.Hash28]struct{}{}
	for h := range tx.WitnessSet.AllPlutusScripts() {
		out[h] = struct{}{}
	}
	for _, s := range tx.WitnessSet.NativeScripts {
		out[nativeScriptHash(s)] = struct{}{}
	}
	allRefs := append(append(append([]txmodel.TransactionInput{}, tx.Body.Inputs...), tx.Body.ReferenceInputs...), tx.Body.CollateralInputs...)
	for _, in := range allRefs {
		o, ok := state.Utxos.Get(in)
		if !ok || o.ScriptRef == nil {
			continue
		}
		if o.ScriptRef.IsNative && o.ScriptRef.Native != nil {
			out[nativeScriptHash(*o.ScriptRef.Native)] = struct{}{}
		}
		if !o.ScriptRef.IsNative && o.ScriptRef.Plutus != nil {
			out[o.ScriptRef.Plutus.Hash] = struct{}{}
		}
	}
	return out
}

// nativeScriptHash is a placeholder hashing seam: real script hashing
// requires the script's CBOR serialization, a collaborator concern (§1);
// this hashes the already-decoded tree's key material as a stand-in that
// stays consistent within a single validation run.
func nativeScriptHash(s primitives.NativeScript) primitives.Hash28 {
	return cryptoimpl.Blake2b224(nativeScriptSeed(s))
}

func nativeScriptSeed(s primitives.NativeScript) []byte {
	var out []byte
	out = append(out, byte(s.Kind))
	out = append(out, s.KeyHash[:]...)
	for _, child := range s.Scripts {
		out = append(out, nativeScriptSeed(child)...)
	}
	return out
}

// MissingOrExtraScriptHashes rejects a transaction that doesn't supply a
// script (witnessed or referenced) for every script-hash credential it
// requires, or that supplies an unused script.
func MissingOrExtraScriptHashes(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	required := requiredScriptHashes(state, tx)
	available := availableScriptHashes(state, tx)

	var missing, extra []primitives.Hash28
	for h := range required {
		if _, ok := available[h]; !ok {
			missing = append(missing, h)
		}
	}
	for h := range available {
		if _, ok := required[h]; !ok {
			extra = append(extra, h)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i].Less(missing[j]) })
		sort.Slice(extra, func(i, j int) bool { return extra[i].Less(extra[j]) })
		return sts.New(tx.Id, sts.KindMissingOrExtraScriptHashes, "required and witnessed script hashes do not match exactly", struct{ Missing, Extra []primitives.Hash28 }{missing, extra})
	}
	return nil
}

// NativeScripts rejects a transaction carrying a native script witness
// that does not evaluate to true against the current slot and the set of
// verifying VKey signatories.
func NativeScripts(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	signatories := map[primitives.Hash28]bool{}
	for h := range witnessedKeyHashes(tx) {
		signatories[h] = true
	}
	var failing []int
	for i, s := range tx.WitnessSet.NativeScripts {
		if !s.Evaluate(ctx.CurrentSlot, signatories) {
			failing = append(failing, i)
		}
	}
	if len(failing) > 0 {
		return sts.New(tx.Id, sts.KindNativeScripts, "one or more native scripts did not evaluate to true", failing)
	}
	return nil
}

// ScriptsWellFormed rejects a transaction carrying a Plutus script witness
// with an empty program or an unrecognized language tag.
func ScriptsWellFormed(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	for h, s := range tx.WitnessSet.AllPlutusScripts() {
		if len(s.CBOR) == 0 {
			return sts.New(tx.Id, sts.KindIllFormedScripts, "a plutus script witness has an empty program", h)
		}
		switch s.Language {
		case primitives.ScriptPlutusV1, primitives.ScriptPlutusV2, primitives.ScriptPlutusV3:
		default:
			return sts.New(tx.Id, sts.KindIllFormedScripts, "a plutus script witness has an unrecognized language tag", h)
		}
	}
	return nil
}
