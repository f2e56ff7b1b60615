package scripthash

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func sampleModels() ledgerstate.CostModels {
	return ledgerstate.CostModels{
		V1: ledgerstate.CostModel{Params: []int64{1, 2, 3}},
		V2: ledgerstate.CostModel{Params: []int64{4, 5, 6}},
		V3: ledgerstate.CostModel{Params: []int64{7, 8, 9}},
	}
}

func TestComputeAbsentWithoutPlutus(t *testing.T) {
	tx := &txmodel.Transaction{}
	h, err := Compute(tx, sampleModels())
	assert.Equal(t, nil, err)
	assert.True(t, h == nil)
}

func TestComputeIsDeterministic(t *testing.T) {
	tx := &txmodel.Transaction{
		WitnessSet: txmodel.WitnessSet{
			PlutusV1Scripts: []primitives.PlutusScript{{Language: primitives.ScriptPlutusV1, CBOR: []byte{0x01}}},
			Redeemers: []txmodel.Redeemer{
				{Key: txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: 0}, Data: plutusdata.Int(1), ExUnits: primitives.ExUnits{Memory: 100, Steps: 200}},
			},
		},
	}

	h1, err := Compute(tx, sampleModels())
	assert.Equal(t, nil, err)
	h2, err := Compute(tx, sampleModels())
	assert.Equal(t, nil, err)
	assert.True(t, h1 != nil && h2 != nil)
	assert.Equal(t, *h1, *h2)
}

func TestComputeIsRedeemerOrderInsensitive(t *testing.T) {
	base := func(order []int) *txmodel.Transaction {
		var redeemers []txmodel.Redeemer
		for _, idx := range order {
			redeemers = append(redeemers, txmodel.Redeemer{
				Key:     txmodel.RedeemerKey{Tag: txmodel.TagSpend, Index: uint32(idx)},
				Data:    plutusdata.Int(int64(idx)),
				ExUnits: primitives.ExUnits{Memory: int64(idx), Steps: int64(idx)},
			})
		}
		return &txmodel.Transaction{
			WitnessSet: txmodel.WitnessSet{
				PlutusV1Scripts: []primitives.PlutusScript{{Language: primitives.ScriptPlutusV1}},
				Redeemers:       redeemers,
			},
		}
	}

	h1, err := Compute(base([]int{0, 1, 2}), sampleModels())
	assert.Equal(t, nil, err)
	h2, err := Compute(base([]int{2, 1, 0}), sampleModels())
	assert.Equal(t, nil, err)
	assert.True(t, h1 != nil && h2 != nil)
	assert.Equal(t, *h1, *h2, "redeemer encoding order must be canonical (sorted by tag,index), not witness-set order")
}

func TestComputeDiffersAcrossCostModelSubsets(t *testing.T) {
	txV1 := &txmodel.Transaction{
		WitnessSet: txmodel.WitnessSet{PlutusV1Scripts: []primitives.PlutusScript{{Language: primitives.ScriptPlutusV1}}},
	}
	txV2 := &txmodel.Transaction{
		WitnessSet: txmodel.WitnessSet{PlutusV2Scripts: []primitives.PlutusScript{{Language: primitives.ScriptPlutusV2}}},
	}

	h1, err := Compute(txV1, sampleModels())
	assert.Equal(t, nil, err)
	h2, err := Compute(txV2, sampleModels())
	assert.Equal(t, nil, err)
	assert.True(t, *h1 != *h2, "restricted cost-model subset differs between V1-only and V2-only transactions")
}
