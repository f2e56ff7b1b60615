package ledgerstate

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// DelegationState tracks, per stake credential, deposit/rewards/pool- and
// DRep-delegation (§3). Invariants (checked by Validate, not enforced by
// construction — callers own constructing a consistent State): a
// credential in Deposits must also be in Rewards; StakePools/DReps keys
// must be subsets of Deposits keys.
type DelegationState struct {
	Deposits   map[primitives.Credential]primitives.Coin
	Rewards    map[primitives.Credential]primitives.Coin
	StakePools map[primitives.Credential]primitives.Hash28
	DReps      map[primitives.Credential]primitives.Hash28
}

// NewDelegationState returns an empty, internally-consistent state.
func NewDelegationState() DelegationState {
	return DelegationState{
		Deposits:   map[primitives.Credential]primitives.Coin{},
		Rewards:    map[primitives.Credential]primitives.Coin{},
		StakePools: map[primitives.Credential]primitives.Hash28{},
		DReps:      map[primitives.Credential]primitives.Hash28{},
	}
}

// Validate checks the two subset invariants §3 states.
func (d DelegationState) Validate() error {
	for cred := range d.Deposits {
		if _, ok := d.Rewards[cred]; !ok {
			return &ErrInconsistentDelegationState{Credential: cred, Reason: "deposit without rewards entry"}
		}
	}
	for cred := range d.StakePools {
		if _, ok := d.Deposits[cred]; !ok {
			return &ErrInconsistentDelegationState{Credential: cred, Reason: "pool delegation for unregistered credential"}
		}
	}
	for cred := range d.DReps {
		if _, ok := d.Deposits[cred]; !ok {
			return &ErrInconsistentDelegationState{Credential: cred, Reason: "drep delegation for unregistered credential"}
		}
	}
	return nil
}

// Clone returns a copy of d with independent maps.
func (d DelegationState) Clone() DelegationState {
	out := NewDelegationState()
	for k, v := range d.Deposits {
		out.Deposits[k] = v
	}
	for k, v := range d.Rewards {
		out.Rewards[k] = v
	}
	for k, v := range d.StakePools {
		out.StakePools[k] = v
	}
	for k, v := range d.DReps {
		out.DReps[k] = v
	}
	return out
}

// IsRegistered reports whether cred currently has a deposit on record.
func (d DelegationState) IsRegistered(cred primitives.Credential) bool {
	_, ok := d.Deposits[cred]
	return ok
}

type ErrInconsistentDelegationState struct {
	Credential primitives.Credential
	Reason     string
}

func (e *ErrInconsistentDelegationState) Error() string {
	return "ledgerstate: inconsistent delegation state: " + e.Reason
}

// PoolParams records one registered stake pool: cost, pledge, and a
// pending retirement epoch if one has been certified.
type PoolParams struct {
	Cost            primitives.Coin
	Pledge          primitives.Coin
	RetirementEpoch *int
}

type PoolsState struct {
	Pools map[primitives.Hash28]PoolParams
}

func NewPoolsState() PoolsState {
	return PoolsState{Pools: map[primitives.Hash28]PoolParams{}}
}

// VotingState is an explicit placeholder for DRep/committee registration
// bookkeeping; governance tally itself is a Non-goal (§1). No validator or
// mutator reads or writes RegisteredDReps.
type VotingState struct {
	RegisteredDReps map[primitives.Hash28]struct{}
}

func NewVotingState() VotingState {
	return VotingState{RegisteredDReps: map[primitives.Hash28]struct{}{}}
}

// CertState composes the three sub-states (§3 "CertState = (VotingState,
// PoolsState, DelegationState)").
type CertState struct {
	Voting     VotingState
	Pools      PoolsState
	Delegation DelegationState
}

func NewCertState() CertState {
	return CertState{Voting: NewVotingState(), Pools: NewPoolsState(), Delegation: NewDelegationState()}
}

// Clone returns a copy of c with independent Delegation and Pools maps
// (Voting is never written by a mutator, so it is shared).
func (c CertState) Clone() CertState {
	pools := NewPoolsState()
	for k, v := range c.Pools.Pools {
		pools.Pools[k] = v
	}
	return CertState{Voting: c.Voting, Pools: pools, Delegation: c.Delegation.Clone()}
}
