package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// StakeCertificates rejects a transaction whose stake-credential
// certificates are inconsistent with CertState.Delegation: registering an
// already-registered credential, deregistering or delegating an
// unregistered one, or declaring a registration deposit that doesn't match
// the protocol parameter (§4.2.3). Certificates are walked in body order
// and a running "registered in this tx" set is threaded alongside
// CertState so a register-then-delegate sequence within the same
// transaction validates correctly.
func StakeCertificates(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	registered := map[primitives.Credential]bool{}
	isRegistered := func(cred primitives.Credential) bool {
		if v, ok := registered[cred]; ok {
			return v
		}
		return state.CertState.Delegation.IsRegistered(cred)
	}

	for i, cert := range tx.Body.Certificates {
		cred := cert.StakeCredential
		switch cert.Kind {
		case txmodel.CertStakeRegistration:
			if isRegistered(cred) {
				return sts.New(tx.Id, sts.KindStakeCertificates, "stake credential is already registered", struct {
					Index int
					Cred  primitives.Credential
				}{i, cred})
			}
			if cert.Deposit != ctx.Params.StakeAddressDeposit {
				return sts.New(tx.Id, sts.KindStakeCertificates, "registration deposit does not match the protocol parameter", struct {
					Index      int
					Declared   primitives.Coin
					Required   primitives.Coin
				}{i, cert.Deposit, ctx.Params.StakeAddressDeposit})
			}
			registered[cred] = true

		case txmodel.CertStakeDeregistration:
			if !isRegistered(cred) {
				return sts.New(tx.Id, sts.KindStakeCertificates, "cannot deregister an unregistered stake credential", struct {
					Index int
					Cred  primitives.Credential
				}{i, cred})
			}
			if deposit, ok := state.CertState.Delegation.Deposits[cred]; ok && cert.Deposit != deposit {
				return sts.New(tx.Id, sts.KindStakeCertificates, "deregistration refund does not match the recorded deposit", struct {
					Index    int
					Declared primitives.Coin
					Deposit  primitives.Coin
				}{i, cert.Deposit, deposit})
			}
			if reward := state.CertState.Delegation.Rewards[cred]; reward != 0 {
				return sts.New(tx.Id, sts.KindStakeCertificates, "cannot deregister a stake credential with a nonzero reward balance", struct {
					Index  int
					Reward primitives.Coin
				}{i, reward})
			}
			registered[cred] = false

		case txmodel.CertStakeDelegation, txmodel.CertVoteDelegation:
			if !isRegistered(cred) {
				return sts.New(tx.Id, sts.KindStakeCertificates, "cannot delegate an unregistered stake credential", struct {
					Index int
					Cred  primitives.Credential
				}{i, cred})
			}
		}
	}
	return nil
}

// StakePoolCertificates rejects a pool registration declaring a pool cost
// below the protocol minimum, and a pool retirement certificate naming an
// unregistered pool or an epoch outside the permitted retirement window
// (§4.2.3, §9 Open Question (a): epoch comparisons use Context.Epoch
// directly rather than deriving epoch from CurrentSlot).
func StakePoolCertificates(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	for i, cert := range tx.Body.Certificates {
		switch cert.Kind {
		case txmodel.CertPoolRegistration:
			if cert.PoolCost < ctx.Params.MinPoolCost {
				return sts.New(tx.Id, sts.KindStakePool, "pool registration cost is below the protocol minimum", struct {
					Index    int
					Declared primitives.Coin
					Minimum  primitives.Coin
				}{i, cert.PoolCost, ctx.Params.MinPoolCost})
			}
			if cert.Deposit != ctx.Params.PoolDeposit {
				return sts.New(tx.Id, sts.KindStakePool, "pool registration deposit does not match the protocol parameter", struct {
					Index    int
					Declared primitives.Coin
					Required primitives.Coin
				}{i, cert.Deposit, ctx.Params.PoolDeposit})
			}

		case txmodel.CertPoolRetirement:
			if _, ok := state.CertState.Pools.Pools[cert.PoolId]; !ok {
				return sts.New(tx.Id, sts.KindStakePool, "cannot retire an unregistered stake pool", struct {
					Index  int
					PoolId primitives.Hash28
				}{i, cert.PoolId})
			}
			if cert.RetirementEpoch <= ctx.Epoch || cert.RetirementEpoch > ctx.Epoch+ctx.Params.PoolRetireMaxEpoch {
				return sts.New(tx.Id, sts.KindStakePool, "pool retirement epoch is outside the permitted window", struct {
					Index           int
					CurrentEpoch    int
					RetirementEpoch int
					MaxEpoch        int
				}{i, ctx.Epoch, cert.RetirementEpoch, ctx.Params.PoolRetireMaxEpoch})
			}
		}
	}
	return nil
}
