package txmodel

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// CertificateKind enumerates the certificate shapes StakeCertificates and
// StakePoolCertificates (§4.2.1) reason about.
type CertificateKind uint8

const (
	CertStakeRegistration CertificateKind = iota
	CertStakeDeregistration
	CertStakeDelegation
	CertVoteDelegation
	CertPoolRegistration
	CertPoolRetirement
)

// Certificate is a single certificate in the body's certificate sequence.
// Only the fields relevant to the validators in §4.2.3 are modeled; pool
// metadata, relays, and owners are out of scope (not consumed by any
// validator).
type Certificate struct {
	Kind CertificateKind

	// StakeCredential is set for all stake-related certificate kinds.
	StakeCredential primitives.Credential

	// Deposit is the caller-declared deposit (registration) or refund
	// (deregistration) amount.
	Deposit primitives.Coin

	// PoolId is set for CertStakeDelegation and the two pool certificates.
	PoolId primitives.Hash28

	// DRepId is set for CertVoteDelegation.
	DRepId primitives.Hash28

	// PoolCost/PoolPledge are set for CertPoolRegistration.
	PoolCost   primitives.Coin
	PoolPledge primitives.Coin

	// RetirementEpoch is set for CertPoolRetirement.
	RetirementEpoch int
}

// Withdrawal is a single reward-account withdrawal, keyed by the reward
// address so WrongNetworkWithdrawal can inspect its network tag.
type Withdrawal struct {
	RewardAccount primitives.Address
	Amount        primitives.Coin
}
