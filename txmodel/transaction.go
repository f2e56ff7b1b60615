package txmodel

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// Transaction is (Body, WitnessSet, isValid, AuxiliaryData?), per §3.
// AuxiliaryData is kept as an opaque byte blob plus its declared hash
// (Body.AuxiliaryDataHash); interpreting metadata contents is not a core
// concern, only presence/hash-matching (Metadata validator, §4.2.1).
//
// Id is the transaction's hash, computed by the CBOR/hash collaborator at
// the system boundary (§1 "CBOR decoding/encoding of the binary
// transaction format" is out of scope) and supplied here so every
// validator and exception can name the transaction without the core
// needing its own body-CBOR serializer.
type Transaction struct {
	Id            primitives.Hash32
	Body          TransactionBody
	WitnessSet    WitnessSet
	IsValid       bool
	AuxiliaryData []byte
}

// RedeemerByKey indexes the witness redeemers by (tag, index) for quick
// lookup during phase-2 (per-redeemer execution) and script-context
// construction.
func (t Transaction) RedeemerByKey() map[RedeemerKey]Redeemer {
	out := make(map[RedeemerKey]Redeemer, len(t.WitnessSet.Redeemers))
	for _, r := range t.WitnessSet.Redeemers {
		out[r.Key] = r
	}
	return out
}

// TotalExUnits sums every redeemer's declared ExUnits (§4.2.2 "Let
// totalExUnits = Σ redeemers.exUnits").
func (t Transaction) TotalExUnits() (sum struct{ Memory, Steps int64 }) {
	for _, r := range t.WitnessSet.Redeemers {
		sum.Memory += r.ExUnits.Memory
		sum.Steps += r.ExUnits.Steps
	}
	return sum
}

// HasPlutusScripts reports whether the witness set carries any Plutus
// script, redeemer or datum, used by the Transaction.scriptDataHash presence invariant (§3)
// and by §4.5's "Absent if no Plutus scripts are involved".
func (t Transaction) HasPlutusScripts() bool {
	return len(t.WitnessSet.PlutusV1Scripts) > 0 ||
		len(t.WitnessSet.PlutusV2Scripts) > 0 ||
		len(t.WitnessSet.PlutusV3Scripts) > 0 ||
		len(t.WitnessSet.Redeemers) > 0 ||
		len(t.WitnessSet.Datums) > 0
}
