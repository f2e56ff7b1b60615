package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/plutusexec"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// RemoveInputsFromUtxo removes the transaction's spend inputs from the
// UTxO set (§4.2.4, first mutator in pipeline order). Removal happens only
// when isValid is true: on phase-2 failure only the collateral inputs, not
// the spend inputs, are consumed, and AddOutputsToUtxo removes those.
func RemoveInputsFromUtxo(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error) {
	next := state.Clone()
	if tx.IsValid {
		next.Utxos = next.Utxos.Remove(tx.Body.Inputs)
	}
	return next, nil
}

// PlutusScriptsTransactionMutator runs every witnessed redeemer through
// the phase-2 evaluator and enforces §4.3.5's outcome rules: if
// tx.IsValid every script must evaluate to unit within its budget slice;
// if !tx.IsValid at least one script must fail. It never itself mutates
// Utxos or CertState — a caller needing the measured per-redeemer
// ExUnits (e.g. to report alongside a successful validation) calls
// plutusexec.EvaluateAll directly, as the root ledger package's
// EvaluatePlutusScripts entry point does.
//
// Programs is a closure parameter rather than a hidden package global:
// decoding a script's on-chain bytes into a *plutuscore.Term is a
// collaborator concern (§1), so the caller assembling the pipeline
// supplies the already-decoded set.
func PlutusScriptsTransactionMutator(programs plutusexec.Programs, mode plutusexec.Mode) sts.Mutator {
	return func(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error) {
		if !tx.HasPlutusScripts() {
			return state, nil
		}

		results := plutusexec.EvaluateAll(tx, state, ctx.Params, programs, mode)
		anyFailed := false
		for _, r := range results {
			if r.Err != nil {
				anyFailed = true
				break
			}
		}

		switch {
		case tx.IsValid && anyFailed:
			return nil, sts.Wrap(tx.Id, sts.KindPlutusScriptValidation, "transaction declares isValid=true but a witnessed script failed", firstError(results))
		case !tx.IsValid && !anyFailed:
			return nil, sts.New(tx.Id, sts.KindPlutusScriptValidation, "transaction declares isValid=false but every witnessed script succeeded", nil)
		}

		return state.Clone(), nil
	}
}

func firstError(results []plutusexec.Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// AddOutputsToUtxo adds the transaction's outputs to the UTxO set on
// success, or the collateral return output on phase-2 failure (§4.2.4,
// §4.3.5).
func AddOutputsToUtxo(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error) {
	next := state.Clone()
	if tx.IsValid {
		next.Utxos = next.Utxos.Insert(tx.Id, tx.Body.Outputs)
		return next, nil
	}
	next.Utxos = next.Utxos.Remove(tx.Body.CollateralInputs)
	if tx.Body.CollateralReturn != nil {
		next.Utxos = next.Utxos.Insert(tx.Id, []txmodel.TransactionOutput{*tx.Body.CollateralReturn})
	}
	return next, nil
}

// FeeMutator credits the transaction's fee (and, on phase-2 failure, the
// excess collateral over the return output) into State.Fees, and credits
// any treasury donation into State.Donations (§4.2.4, §4.3.5 "credit
// fee += Σcollateral − collateralReturn.coin").
func FeeMutator(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error) {
	next := state.Clone()
	if tx.IsValid {
		next.Fees += tx.Body.Fee
		next.Donations += tx.Body.Donation + tx.Body.TreasuryDonation
		return next, nil
	}

	collateralTotal := primitives.Coin(0)
	for _, in := range tx.Body.CollateralInputs {
		if out, ok := state.Utxos.Get(in); ok {
			collateralTotal += out.Value.Coin
		}
	}
	returned := primitives.Coin(0)
	if tx.Body.CollateralReturn != nil {
		returned = tx.Body.CollateralReturn.Value.Coin
	}
	next.Fees += collateralTotal - returned
	return next, nil
}

// CertsMutator applies every certificate in tx.Body.Certificates to
// CertState in order, mirroring the transitions StakeCertificates and
// StakePoolCertificates already validated (§4.2.4): register/deregister
// stake credentials, record delegations, and register/retire pools.
func CertsMutator(ctx ledgerstate.Context, state *ledgerstate.State, tx *txmodel.Transaction) (*ledgerstate.State, error) {
	next := state.Clone()
	for _, cert := range tx.Body.Certificates {
		cred := cert.StakeCredential
		switch cert.Kind {
		case txmodel.CertStakeRegistration:
			next.CertState.Delegation.Deposits[cred] = cert.Deposit
			next.CertState.Delegation.Rewards[cred] = 0

		case txmodel.CertStakeDeregistration:
			delete(next.CertState.Delegation.Deposits, cred)
			delete(next.CertState.Delegation.Rewards, cred)
			delete(next.CertState.Delegation.StakePools, cred)
			delete(next.CertState.Delegation.DReps, cred)

		case txmodel.CertStakeDelegation:
			next.CertState.Delegation.StakePools[cred] = cert.PoolId

		case txmodel.CertVoteDelegation:
			next.CertState.Delegation.DReps[cred] = cert.DRepId

		case txmodel.CertPoolRegistration:
			next.CertState.Pools.Pools[cert.PoolId] = ledgerstate.PoolParams{
				Cost:   cert.PoolCost,
				Pledge: cert.PoolPledge,
			}

		case txmodel.CertPoolRetirement:
			if p, ok := next.CertState.Pools.Pools[cert.PoolId]; ok {
				epoch := cert.RetirementEpoch
				p.RetirementEpoch = &epoch
				next.CertState.Pools.Pools[cert.PoolId] = p
			}
		}
	}
	return next, nil
}
