package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/cryptoimpl"
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// Metadata rejects a transaction with a mismatched or missing
// auxiliary-data/hash pairing (§4.2.1 "MetadataMissing",
// "MetadataMissingHash", "MetadataHashMismatch").
func Metadata(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	hasData := len(tx.AuxiliaryData) > 0
	hasHash := tx.Body.AuxiliaryDataHash != nil

	switch {
	case hasHash && !hasData:
		return sts.New(tx.Id, sts.KindMetadataMissing, "transaction body declares an auxiliary data hash but no auxiliary data was supplied", nil)
	case hasData && !hasHash:
		return sts.New(tx.Id, sts.KindMetadataMissingHash, "auxiliary data was supplied but the transaction body declares no hash", nil)
	case hasData && hasHash:
		actual := primitives.Hash32(cryptoimpl.Blake2b256(tx.AuxiliaryData))
		if actual != *tx.Body.AuxiliaryDataHash {
			return sts.New(tx.Id, sts.KindMetadataHashMismatch, "auxiliary data does not hash to the declared hash", struct{ Actual, Declared primitives.Hash32 }{actual, *tx.Body.AuxiliaryDataHash})
		}
	}
	return nil
}
