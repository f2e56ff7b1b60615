// Package scripthash computes the script-data hash §4.5 describes: a
// single BLAKE2b-256 digest binding a transaction's redeemers, datums, and
// the cost-model subset for the Plutus language versions it actually uses,
// so a single field in the signed transaction body commits to all
// phase-2-relevant inputs without embedding them directly.
package scripthash

import (
	"sort"

	"github.com/zenGate-Global/cardano-ledger-core/canonicalcbor"
	"github.com/zenGate-Global/cardano-ledger-core/cryptoimpl"
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// Compute returns the script-data hash for tx, or nil if tx carries no
// Plutus scripts and no redeemers (§4.5 "absent when no Plutus scripts are
// involved").
func Compute(tx *txmodel.Transaction, models ledgerstate.CostModels) (*primitives.Hash32, error) {
	if !tx.HasPlutusScripts() && len(tx.WitnessSet.Redeemers) == 0 {
		return nil, nil
	}

	usesV1 := len(tx.WitnessSet.PlutusV1Scripts) > 0
	usesV2 := len(tx.WitnessSet.PlutusV2Scripts) > 0
	usesV3 := len(tx.WitnessSet.PlutusV3Scripts) > 0

	var buf []byte

	redeemersBytes, err := encodeRedeemers(tx.WitnessSet.Redeemers)
	if err != nil {
		return nil, err
	}
	buf = append(buf, redeemersBytes...)

	buf = append(buf, encodeDatums(tx.WitnessSet.Datums)...)

	costBytes, err := encodeCostModels(models.Restrict(usesV1, usesV2, usesV3))
	if err != nil {
		return nil, err
	}
	buf = append(buf, costBytes...)

	digest := cryptoimpl.Blake2b256(buf)
	h := primitives.Hash32(digest)
	return &h, nil
}

type cborRedeemer struct {
	Tag     uint8
	Index   uint32
	Data    []byte
	ExUnits [2]int64
}

func encodeRedeemers(redeemers []txmodel.Redeemer) ([]byte, error) {
	sorted := append([]txmodel.Redeemer{}, redeemers...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key.Tag != sorted[j].Key.Tag {
			return sorted[i].Key.Tag < sorted[j].Key.Tag
		}
		return sorted[i].Key.Index < sorted[j].Key.Index
	})
	out := make([]cborRedeemer, len(sorted))
	for i, r := range sorted {
		out[i] = cborRedeemer{
			Tag:     uint8(r.Key.Tag),
			Index:   r.Key.Index,
			Data:    plutusdata.Encode(r.Data),
			ExUnits: [2]int64{r.ExUnits.Memory, r.ExUnits.Steps},
		}
	}
	return canonicalcbor.Marshal(out)
}

func encodeDatums(datums map[primitives.Hash32][]byte) []byte {
	hashes := make([]primitives.Hash32, 0, len(datums))
	for h := range datums {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i].Less(hashes[j]) })
	var out []byte
	for _, h := range hashes {
		out = append(out, datums[h]...)
	}
	return out
}

func encodeCostModels(models []ledgerstate.LanguageCostModel) ([]byte, error) {
	type cborCostModel struct {
		Language uint8
		Params   []int64
	}
	out := make([]cborCostModel, len(models))
	for i, m := range models {
		out[i] = cborCostModel{Language: uint8(m.Language), Params: m.Model.Params}
	}
	return canonicalcbor.Marshal(out)
}
