package txmodel

import (
	"github.com/zenGate-Global/cardano-ledger-core/canonicalcbor"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
)

// TransactionOutput is (Address, Value, DatumOption?, ScriptRef?), mirroring
// apollo's TransactionOutput.TransactionOutput — collapsed here into one
// shape rather than apollo's IsPostAlonzo/PreAlonzo split, since phase-1
// validators (§4.2) reason about the post-Alonzo fields uniformly and a
// Shelley-era output is simply one with both optional fields absent.
type TransactionOutput struct {
	Address   primitives.Address
	Value     primitives.Value
	Datum     primitives.DatumOption
	ScriptRef *primitives.ScriptRef
}

// cborOutput is the wire-shape projection used only for canonical-size
// computation; it exists so SerializedSize doesn't depend on cbor struct
// tags leaking into the domain type above.
type cborOutput struct {
	AddressBytes []byte            `cbor:"0,keyasint"`
	Coin         int64             `cbor:"1,keyasint"`
	Assets       map[string]int64  `cbor:"2,keyasint,omitempty"`
	DatumHash    []byte            `cbor:"3,keyasint,omitempty"`
	DatumInline  []byte            `cbor:"4,keyasint,omitempty"`
	ScriptRef    []byte            `cbor:"5,keyasint,omitempty"`
}

// SerializedSize returns the canonical-CBOR-encoded size in bytes of a
// projection holding the coin, the assets and the datum hash, the quantity
// OutputsHaveNotEnoughCoins bounds and TransactionSize sums (§4.2.1). The
// address, an inline datum and a script reference are not encoded, so
// they add nothing to the result.
func (o TransactionOutput) SerializedSize() (int, error) {
	flat := map[string]int64{}
	for _, policy := range o.Value.MultiAsset.PolicyIds() {
		for _, name := range o.Value.MultiAsset[policy].AssetNames() {
			flat[policy.String()+string(name)] = o.Value.MultiAsset[policy][name]
		}
	}
	proj := cborOutput{Coin: int64(o.Value.Coin), Assets: flat}
	if o.Datum.IsHash() {
		h := o.Datum.Hash
		proj.DatumHash = h[:]
	}
	return canonicalcbor.Size(proj)
}

// ValueSerializedSize returns the canonical-CBOR-encoded size of just the
// Value component, the quantity OutputsHaveTooBigValueStorageSize bounds
// independently of the rest of the output.
func (o TransactionOutput) ValueSerializedSize() (int, error) {
	flat := map[string]int64{}
	for _, policy := range o.Value.MultiAsset.PolicyIds() {
		for _, name := range o.Value.MultiAsset[policy].AssetNames() {
			flat[policy.String()+string(name)] = o.Value.MultiAsset[policy][name]
		}
	}
	return canonicalcbor.Size(struct {
		Coin   int64            `cbor:"0,keyasint"`
		Assets map[string]int64 `cbor:"1,keyasint,omitempty"`
	}{Coin: int64(o.Value.Coin), Assets: flat})
}
