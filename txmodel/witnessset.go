package txmodel

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// VKeyWitness is an Ed25519 verification-key witness: a public key plus a
// signature over the transaction body hash.
type VKeyWitness struct {
	VKey      [32]byte
	Signature [64]byte
}

// BootstrapWitness is a Byron-era extended-key witness (Ed25519-extended
// verification, carrying chain code and address attributes).
type BootstrapWitness struct {
	VKey      [32]byte
	Signature [64]byte
	ChainCode [32]byte
	Attributes []byte
}

// WitnessSet carries every witness a transaction can attach: VKey and
// bootstrap signatures, native and Plutus scripts, redeemers, and datums.
type WitnessSet struct {
	VKeyWitnesses      []VKeyWitness
	BootstrapWitnesses []BootstrapWitness
	NativeScripts      []primitives.NativeScript
	PlutusV1Scripts    []primitives.PlutusScript
	PlutusV2Scripts    []primitives.PlutusScript
	PlutusV3Scripts    []primitives.PlutusScript
	Redeemers          []Redeemer
	Datums             map[primitives.Hash32][]byte // hash -> raw Data bytes (preimages)
}

// AllPlutusScripts returns every witness Plutus script regardless of
// version, keyed by hash.
func (w WitnessSet) AllPlutusScripts() map[primitives.Hash28]primitives.PlutusScript {
	out := make(map[primitives.Hash28]primitives.PlutusScript)
	for _, s := range w.PlutusV1Scripts {
		out[s.Hash] = s
	}
	for _, s := range w.PlutusV2Scripts {
		out[s.Hash] = s
	}
	for _, s := range w.PlutusV3Scripts {
		out[s.Hash] = s
	}
	return out
}

// NativeScriptByHash returns the witness set's native scripts keyed by
// their hash (hashing delegated to the caller via the hash argument,
// since hashing is a cryptoimpl concern not a txmodel one).
func (w WitnessSet) NativeScriptByHash(hash func(primitives.NativeScript) primitives.Hash28) map[primitives.Hash28]primitives.NativeScript {
	out := make(map[primitives.Hash28]primitives.NativeScript, len(w.NativeScripts))
	for _, s := range w.NativeScripts {
		out[hash(s)] = s
	}
	return out
}
