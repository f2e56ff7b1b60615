package rules

import (
	"testing"

	"github.com/tj/assert"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

func TestWrongNetworkAddressRejectsMismatch(t *testing.T) {
	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkMainnet}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Outputs: []txmodel.TransactionOutput{
		{Address: primitives.Address{Network: primitives.NetworkTestnet}},
	}}}

	err := WrongNetworkAddress(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindWrongNetworkAddress))
}

func TestWrongNetworkAddressAcceptsMatch(t *testing.T) {
	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkMainnet}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Outputs: []txmodel.TransactionOutput{
		{Address: primitives.Address{Network: primitives.NetworkMainnet}},
	}}}

	err := WrongNetworkAddress(ctx, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}

func TestWrongNetworkWithdrawalRejectsMismatch(t *testing.T) {
	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkMainnet}}
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{Withdrawals: []txmodel.Withdrawal{
		{RewardAccount: primitives.Address{Network: primitives.NetworkTestnet}},
	}}}

	err := WrongNetworkWithdrawal(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindWrongNetworkWithdrawal))
}

func TestWrongNetworkInTxBodyRejectsMismatch(t *testing.T) {
	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkMainnet}}
	declared := primitives.NetworkTestnet
	tx := &txmodel.Transaction{Body: txmodel.TransactionBody{NetworkId: &declared}}

	err := WrongNetworkInTxBody(ctx, ledgerstate.NewState(nil), tx)
	assert.True(t, sts.IsKind(err, sts.KindWrongNetworkInTxBody))
}

func TestWrongNetworkInTxBodyAcceptsNilDeclaration(t *testing.T) {
	ctx := ledgerstate.Context{Network: primitives.Network{Id: primitives.NetworkMainnet}}
	tx := &txmodel.Transaction{}

	err := WrongNetworkInTxBody(ctx, ledgerstate.NewState(nil), tx)
	assert.Equal(t, nil, err)
}
