package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func sampleInput(index uint16) txmodel.TransactionInput {
	return txmodel.TransactionInput{TransactionId: primitives.Hash32{0x01}, Index: index}
}

func sampleOutput(coin int64) txmodel.TransactionOutput {
	return txmodel.TransactionOutput{Value: primitives.Value{Coin: primitives.Coin(coin)}}
}

func TestEmptyInputsRejectsNoInputs(t *testing.T) {
	tx := &txmodel.Transaction{}
	err := EmptyInputs(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsEmptyInputs(err))
}

func TestEmptyInputsAcceptsNonEmpty(t *testing.T) {
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Inputs: []txmodel.TransactionInput{sampleInput(0)}}}
	err := EmptyInputs(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestAllInputsMustBeInUtxoRejectsMissing(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Inputs: []txmodel.TransactionInput{in}}}

	err := AllInputsMustBeInUtxo(ledgerstate.Context{}, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindBadInputsUTxO))
}

func TestAllInputsMustBeInUtxoAcceptsResolved(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(1_000_000)})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Inputs: []txmodel.TransactionInput{in}}}

	err := AllInputsMustBeInUtxo(ledgerstate.Context{}, state, tx)
	assert.Equal(t, nil, err)
}

func TestInputsAndReferenceInputsDisjointRejectsOverlap(t *testing.T) {
	in := sampleInput(0)
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{
		Inputs:          []txmodel.TransactionInput{in},
		ReferenceInputs: []txmodel.TransactionInput{in},
	}}

	err := InputsAndReferenceInputsDisjoint(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindNonDisjointInputsAndReference))
}

func TestInputsAndReferenceInputsDisjointAcceptsDisjoint(t *testing.T) {
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{
		Inputs:          []txmodel.TransactionInput{sampleInput(0)},
		ReferenceInputs: []txmodel.TransactionInput{sampleInput(1)},
	}}

	err := InputsAndReferenceInputsDisjoint(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestBadCollateralInputsUTxORejectsMissing(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{CollateralInputs: []txmodel.TransactionInput{in}}}

	err := BadCollateralInputsUTxO(ledgerstate.Context{}, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindBadCollateralInputsUTxO))
}

func TestBadCollateralInputsUTxOAcceptsResolved(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(1_000_000)})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{CollateralInputs: []txmodel.TransactionInput{in}}}

	err := BadCollateralInputsUTxO(ledgerstate.Context{}, state, tx)
	assert.Equal(t, nil, err)
}

func TestBadReferenceInputsUTxORejectsMissing(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{ReferenceInputs: []txmodel.TransactionInput{in}}}

	err := BadReferenceInputsUTxO(ledgerstate.Context{}, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindBadReferenceInputsUTxO))
}
