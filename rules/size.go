package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// TransactionSize rejects a transaction whose canonical CBOR encoding
// would exceed Params.MaxTxSize (§4.2.1 "InvalidTransactionSize").
// Encoding the full Transaction (body + witness set) is a CBOR-codec
// concern at the system boundary (§1); this validator sums, as a cheap,
// deterministic stand-in, each output's SerializedSize (the measure
// OutputsHaveNotEnoughCoins uses per output), each redeemer's Data encoding
// plus 16 bytes, and the auxiliary-data length, noting
// in DESIGN.md that a caller driving this against the real wire encoding
// should pass the actual serialized size through Context instead.
func TransactionSize(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	size, err := estimatedSize(tx)
	if err != nil {
		return sts.Wrap(tx.Id, sts.KindInvalidTransactionSize, "failed to measure transaction size", err)
	}
	if size > ctx.Params.MaxTxSize {
		return sts.New(tx.Id, sts.KindInvalidTransactionSize, "transaction exceeds the maximum size", struct{ Size, Max int }{size, ctx.Params.MaxTxSize})
	}
	return nil
}

func estimatedSize(tx *txmodel.Transaction) (int, error) {
	total := 0
	for _, out := range tx.Body.Outputs {
		n, err := out.SerializedSize()
		if err != nil {
			return 0, err
		}
		total += n
	}
	redeemerSize := 0
	for _, r := range tx.WitnessSet.Redeemers {
		redeemerSize += len(plutusdata.Encode(r.Data)) + 16 // +16: tag/index/ExUnits overhead
	}
	return total + redeemerSize + len(tx.AuxiliaryData), nil
}
