package txmodel

import (
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
)

// Voter identifies a governance-action voter: a constitutional committee
// member, a DRep, or a stake pool, addressed by credential.
type Voter struct {
	Kind       VoterKind
	Credential primitives.Credential
}

type VoterKind uint8

const (
	VoterConstitutionalCommittee VoterKind = iota
	VoterDRep
	VoterStakePool
)

// GovActionId identifies a governance action by the transaction that
// proposed it and an index into its proposal list.
type GovActionId struct {
	TransactionId primitives.Hash32
	Index         uint32
}

// VotingProcedure is a single vote cast by a Voter on a GovActionId. Vote
// tallying is an explicit Non-goal (§1). MissingKeyHashes,
// ExactSetOfRedeemers and MissingOrExtraScriptHashes do not read voting or
// proposal procedures: voters add no required signer, and no Voting or
// Proposing redeemer is required for them.
type VotingProcedure struct {
	Voter   Voter
	Action  GovActionId
	Vote    Vote
	Anchor  []byte
}

type Vote uint8

const (
	VoteNo Vote = iota
	VoteYes
	VoteAbstain
)

// ProposalProcedure is a single governance-action proposal. Only the
// deposit and reward address are modeled; the action payload itself
// (parameter-change, treasury-withdrawal, ...) is opaque Data, since
// interpreting it is part of the governance-tally Non-goal.
type ProposalProcedure struct {
	Deposit       primitives.Coin
	RewardAccount primitives.Address
	Action        plutusdata.Data
	Anchor        []byte
}
