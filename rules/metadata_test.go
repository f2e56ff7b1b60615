package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/cryptoimpl"
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func TestMetadataAcceptsAbsent(t *testing.T) {
	tx := &txmodel.Transaction{}
	err := Metadata(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestMetadataRejectsHashWithoutData(t *testing.T) {
	hash := primitives.Hash32{0x01}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{AuxiliaryDataHash: &hash}}
	err := Metadata(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindMetadataMissing))
}

func TestMetadataRejectsDataWithoutHash(t *testing.T) {
	tx := &txmodel.Transaction{AuxiliaryData: []byte("hello")}
	err := Metadata(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindMetadataMissingHash))
}

func TestMetadataRejectsHashMismatch(t *testing.T) {
	wrong := primitives.Hash32{0xff}
	tx := &txmodel.Transaction{AuxiliaryData: []byte("hello"), Body: txmodel.TransactionBody{AuxiliaryDataHash: &wrong}}
	err := Metadata(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindMetadataHashMismatch))
}

func TestMetadataAcceptsMatchingHash(t *testing.T) {
	data := []byte("hello")
	hash := primitives.Hash32(cryptoimpl.Blake2b256(data))
	tx := &txmodel.Transaction{AuxiliaryData: data, Body: txmodel.TransactionBody{AuxiliaryDataHash: &hash}}
	err := Metadata(ledgerstate.Context{}, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}
