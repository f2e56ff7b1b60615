package txmodel

import (
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
)

// RedeemerTag names the four (pre-Conway) plus two (Conway) script
// purposes a redeemer can be tagged with, mirroring apollo's
// Redeemer.RedeemerTag constants (SPEND, MINT, CERT, REWARD).
type RedeemerTag uint8

const (
	TagSpend RedeemerTag = iota
	TagMint
	TagCert
	TagReward
	TagVoting
	TagProposing
)

// RedeemerKey identifies a redeemer by (tag, index) — the index into the
// corresponding ordered list (inputs for Spend, policy IDs for Mint, etc.).
type RedeemerKey struct {
	Tag   RedeemerTag
	Index uint32
}

// Redeemer is a Data value supplied by the spender, tagged by purpose, with
// the ExUnits budget the submitter declares for it (refined by phase-2
// evaluation into the measured cost).
type Redeemer struct {
	Key     RedeemerKey
	Data    plutusdata.Data
	ExUnits primitives.ExUnits
}
