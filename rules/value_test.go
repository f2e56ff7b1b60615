package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func TestValueNotConservedUTxORejectsImbalance(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(1_000_000)})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{
		Inputs:  []txmodel.TransactionInput{in},
		Outputs: []txmodel.TransactionOutput{sampleOutput(900_000)},
		Fee:     50_000, // 950_000 != 1_000_000
	}}

	err := ValueNotConservedUTxO(ledgerstate.Context{}, state, tx)
	assert.True(t, sts.IsKind(err, sts.KindValueNotConservedUTxO))
}

func TestValueNotConservedUTxOAcceptsExactBalance(t *testing.T) {
	in := sampleInput(0)
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(1_000_000)})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{
		Inputs:  []txmodel.TransactionInput{in},
		Outputs: []txmodel.TransactionOutput{sampleOutput(900_000)},
		Fee:     100_000,
	}}

	err := ValueNotConservedUTxO(ledgerstate.Context{}, state, tx)
	assert.Equal(t, nil, err)
}

func TestValueNotConservedUTxOAccountsForStakeRegistrationDeposit(t *testing.T) {
	in := sampleInput(0)
	cred := sampleCred(0x05)
	ctx := ledgerstate.Context{Params: ledgerstate.Params{StakeAddressDeposit: 2_000_000}}
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(5_000_000)})
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{
		Inputs:       []txmodel.TransactionInput{in},
		Outputs:      []txmodel.TransactionOutput{sampleOutput(2_900_000)},
		Fee:          100_000,
		Certificates: []txmodel.Certificate{{Kind: txmodel.CertStakeRegistration, StakeCredential: cred, Deposit: 2_000_000}},
	}}

	// 5,000,000 consumed == 2,900,000 + 100,000 + 2,000,000 produced
	err := ValueNotConservedUTxO(ctx, state, tx)
	assert.Equal(t, nil, err)
}

func TestValueNotConservedUTxOAccountsForDeregistrationRefund(t *testing.T) {
	in := sampleInput(0)
	cred := sampleCred(0x06)
	state := ledgerstate.NewState(ledgerstate.Utxos{in: sampleOutput(1_000_000)})
	state.CertState.Delegation.Deposits[cred] = 2_000_000
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{
		Inputs:       []txmodel.TransactionInput{in},
		Outputs:      []txmodel.TransactionOutput{sampleOutput(2_900_000)},
		Fee:          100_000,
		Certificates: []txmodel.Certificate{{Kind: txmodel.CertStakeDeregistration, StakeCredential: cred}},
	}}

	// 1,000,000 input + 2,000,000 refunded deposit == 2,900,000 + 100,000 produced
	err := ValueNotConservedUTxO(ledgerstate.Context{}, state, tx)
	assert.Equal(t, nil, err)
}
