package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func sampleCred(b byte) primitives.Credential {
	return primitives.Credential{Kind: primitives.CredentialKeyHash, Hash: primitives.Hash28{b}}
}

func TestStakeCertificatesRegisterThenDelegateSameTx(t *testing.T) {
	cred := sampleCred(0x01)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{StakeAddressDeposit: 2_000_000}}
	state := ledgerstate.NewState(nil)

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeRegistration, StakeCredential: cred, Deposit: 2_000_000},
		{Kind: txmodel.CertStakeDelegation, StakeCredential: cred, PoolId: primitives.Hash28{0xaa}},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.Equal(t, nil, err)
}

func TestStakeCertificatesRejectsDelegateWithoutRegistration(t *testing.T) {
	cred := sampleCred(0x02)
	ctx := ledgerstate.Context{}
	state := ledgerstate.NewState(nil)

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeDelegation, StakeCredential: cred, PoolId: primitives.Hash28{0xaa}},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakeCertificates))
}

func TestStakeCertificatesRejectsDoubleRegistration(t *testing.T) {
	cred := sampleCred(0x03)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{StakeAddressDeposit: 2_000_000}}
	state := ledgerstate.NewState(nil)
	state.CertState.Delegation.Deposits[cred] = 2_000_000
	state.CertState.Delegation.Rewards[cred] = 0

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeRegistration, StakeCredential: cred, Deposit: 2_000_000},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakeCertificates))
}

func TestStakeCertificatesRejectsWrongDeposit(t *testing.T) {
	cred := sampleCred(0x04)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{StakeAddressDeposit: 2_000_000}}
	state := ledgerstate.NewState(nil)

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeRegistration, StakeCredential: cred, Deposit: 1_000_000},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakeCertificates))
}

func TestStakeCertificatesAcceptsDeregistrationWithZeroRewards(t *testing.T) {
	cred := sampleCred(0x05)
	ctx := ledgerstate.Context{}
	state := ledgerstate.NewState(nil)
	state.CertState.Delegation.Deposits[cred] = 2_000_000
	state.CertState.Delegation.Rewards[cred] = 0

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeDeregistration, StakeCredential: cred, Deposit: 2_000_000},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.Equal(t, nil, err)
}

func TestStakeCertificatesRejectsDeregistrationRefundMismatch(t *testing.T) {
	cred := sampleCred(0x06)
	ctx := ledgerstate.Context{}
	state := ledgerstate.NewState(nil)
	state.CertState.Delegation.Deposits[cred] = 2_000_000
	state.CertState.Delegation.Rewards[cred] = 0

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeDeregistration, StakeCredential: cred, Deposit: 1_000_000},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakeCertificates))
}

func TestStakeCertificatesRejectsDeregistrationWithNonzeroRewards(t *testing.T) {
	cred := sampleCred(0x07)
	ctx := ledgerstate.Context{}
	state := ledgerstate.NewState(nil)
	state.CertState.Delegation.Deposits[cred] = 2_000_000
	state.CertState.Delegation.Rewards[cred] = 500_000

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertStakeDeregistration, StakeCredential: cred, Deposit: 2_000_000},
	}}}

	err := StakeCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakeCertificates))
}

func TestStakePoolCertificatesRejectsDepositMismatch(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinPoolCost: 0, PoolDeposit: 500_000_000}}
	state := ledgerstate.NewState(nil)

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertPoolRegistration, PoolCost: 340_000_000, Deposit: 100_000_000},
	}}}

	err := StakePoolCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakePool))
}

func TestStakePoolCertificatesAcceptsMatchingDeposit(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinPoolCost: 0, PoolDeposit: 500_000_000}}
	state := ledgerstate.NewState(nil)

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertPoolRegistration, PoolCost: 340_000_000, Deposit: 500_000_000},
	}}}

	err := StakePoolCertificates(ctx, state, tx)
	assert.Equal(t, nil, err)
}

func TestStakePoolCertificatesRejectsRetirementOutsideWindow(t *testing.T) {
	poolId := primitives.Hash28{0xbb}
	ctx := ledgerstate.Context{Epoch: 100, Params: ledgerstate.Params{PoolRetireMaxEpoch: 10}}
	state := ledgerstate.NewState(nil)
	state.CertState.Pools.Pools[poolId] = ledgerstate.PoolParams{}

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertPoolRetirement, PoolId: poolId, RetirementEpoch: 120},
	}}}

	err := StakePoolCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakePool))
}

func TestStakePoolCertificatesAcceptsRetirementWithinWindow(t *testing.T) {
	poolId := primitives.Hash28{0xcc}
	ctx := ledgerstate.Context{Epoch: 100, Params: ledgerstate.Params{PoolRetireMaxEpoch: 10}}
	state := ledgerstate.NewState(nil)
	state.CertState.Pools.Pools[poolId] = ledgerstate.PoolParams{}

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertPoolRetirement, PoolId: poolId, RetirementEpoch: 105},
	}}}

	err := StakePoolCertificates(ctx, state, tx)
	assert.Equal(t, nil, err)
}

func TestStakePoolCertificatesRejectsCostBelowMinimum(t *testing.T) {
	ctx := ledgerstate.Context{Params: ledgerstate.Params{MinPoolCost: 340_000_000}}
	state := ledgerstate.NewState(nil)

	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Certificates: []txmodel.Certificate{
		{Kind: txmodel.CertPoolRegistration, PoolCost: 100_000_000},
	}}}

	err := StakePoolCertificates(ctx, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindStakePool))
}
