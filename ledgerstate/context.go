package ledgerstate

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// Context is the transient, per-transaction information the STS pipeline
// needs that isn't part of the persistent State (§3 "Ownership": "Context
// (transient, per-transaction) exclusively owns mutable fee accumulators
// and configuration").
//
// Epoch is carried explicitly rather than derived from CurrentSlot, per
// §9 Open Question (a): "Implementers must decide whether epoch = slot /
// epochLength is acceptable or whether Context must carry epoch explicitly
// — do not guess; surface as a mandatory Context field." SPEC_FULL.md
// resolves this by making it mandatory.
type Context struct {
	Network     primitives.Network
	CurrentSlot uint64
	Epoch       int
	Params      Params
	SlotConfig  SlotConfig

	// ForecastSlot is the latest slot the time-conversion forecast window
	// can reliably predict; OutsideForecast (§4.2.1) rejects any redeemer
	// whose deadline falls beyond it.
	ForecastSlot uint64
}
