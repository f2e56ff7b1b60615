package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// WrongNetworkAddress rejects a transaction with an output address tagged
// for a different network than the one this validation run is for
// (§4.2.1).
func WrongNetworkAddress(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	var offending []int
	for i, out := range tx.Body.Outputs {
		if out.Address.Network != ctx.Network.Id {
			offending = append(offending, i)
		}
	}
	if len(offending) > 0 {
		return sts.New(tx.Id, sts.KindWrongNetworkAddress, "one or more output addresses target the wrong network", offending)
	}
	return nil
}

// WrongNetworkWithdrawal rejects a transaction whose withdrawal reward
// account targets the wrong network.
func WrongNetworkWithdrawal(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	var offending []int
	for i, w := range tx.Body.Withdrawals {
		if w.RewardAccount.Network != ctx.Network.Id {
			offending = append(offending, i)
		}
	}
	if len(offending) > 0 {
		return sts.New(tx.Id, sts.KindWrongNetworkWithdrawal, "one or more withdrawal reward accounts target the wrong network", offending)
	}
	return nil
}

// WrongNetworkInTxBody rejects a transaction whose body declares an
// explicit NetworkId different from the validation run's network.
func WrongNetworkInTxBody(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) error {
	if tx.Body.NetworkId != nil && *tx.Body.NetworkId != ctx.Network.Id {
		return sts.New(tx.Id, sts.KindWrongNetworkInTxBody, "transaction body network id does not match the validation network", *tx.Body.NetworkId)
	}
	return nil
}
