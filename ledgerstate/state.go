package ledgerstate

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// State is the persistent ledger state the STS pipeline threads through
// mutators (§3 "Ownership": "shared by reference across the validator
// pipeline but mutated only by mutators"). It is passed by reference but
// every mutator returns a new *State rather than editing in place, so a
// caller retaining the pre-pipeline State still observes a consistent
// view (§8 invariant 1).
type State struct {
	Utxos     Utxos
	CertState CertState
	Fees      primitives.Coin
	Donations primitives.Coin

	// StakeDistribution and governance tallies are out of scope (§1
	// Non-goals: rewards/epoch boundary computation, governance tally);
	// GovernanceDeposits holds a proposal-deposit total that no validator
	// or mutator reads or updates.
	GovernanceDeposits primitives.Coin
}

// NewState returns an initial State seeded with the given Utxos.
func NewState(utxos Utxos) *State {
	return &State{Utxos: utxos, CertState: NewCertState()}
}

// Clone returns a deep-enough copy for a mutator to build its successor
// state from without aliasing the caller's maps.
func (s *State) Clone() *State {
	return &State{
		Utxos:              s.Utxos.Clone(),
		CertState:           s.CertState.Clone(),
		Fees:                s.Fees,
		Donations:           s.Donations,
		GovernanceDeposits:  s.GovernanceDeposits,
	}
}
