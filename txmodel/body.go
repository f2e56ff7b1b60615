package txmodel

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// ValidityInterval is the [from, to) slot window a transaction is valid in
// (§4.2.1 OutsideValidityInterval: upper bound exclusive).
type ValidityInterval struct {
	From *uint64 // nil means unbounded below
	To   *uint64 // nil means unbounded above
}

// Contains reports whether slot lies within [From, To).
func (v ValidityInterval) Contains(slot uint64) bool {
	if v.From != nil && slot < *v.From {
		return false
	}
	if v.To != nil && slot >= *v.To {
		return false
	}
	return true
}

// TransactionBody carries everything §2 lists: inputs, collateral,
// reference inputs, outputs, fee, mint, certificates, withdrawals, voting
// and proposal procedures, required signers, network id, validity
// interval, and the optional script-data hash.
type TransactionBody struct {
	Inputs            []TransactionInput
	CollateralInputs  []TransactionInput
	ReferenceInputs   []TransactionInput
	Outputs           []TransactionOutput
	CollateralReturn  *TransactionOutput
	TotalCollateral   *primitives.Coin
	Fee               primitives.Coin
	Mint              primitives.MultiAsset
	Certificates      []Certificate
	Withdrawals       []Withdrawal
	VotingProcedures  []VotingProcedure
	ProposalProcedures []ProposalProcedure
	RequiredSigners   []primitives.Hash28
	NetworkId         *primitives.NetworkId
	ValidityInterval  ValidityInterval
	ScriptDataHash    *primitives.Hash32
	AuxiliaryDataHash *primitives.Hash32
	Donation          primitives.Coin
	TreasuryDonation  primitives.Coin
}

// InputSetOf returns the Inputs field as a set.
func (b TransactionBody) InputSetOf() InputSet { return NewInputSet(b.Inputs) }

// CollateralSetOf returns the CollateralInputs field as a set.
func (b TransactionBody) CollateralSetOf() InputSet { return NewInputSet(b.CollateralInputs) }

// ReferenceSetOf returns the ReferenceInputs field as a set.
func (b TransactionBody) ReferenceSetOf() InputSet { return NewInputSet(b.ReferenceInputs) }
