package rules

import (
	"github.com/zenGate-Global/cardano-ledger-core/plutusexec"
	"github.com/zenGate-Global/cardano-ledger-core/sts"
)

// DefaultValidators returns the 29-predicate phase-1 catalogue in the
// fixed order §4.2.4 specifies. Validators run against the unmutated
// State and short-circuit on first failure (§4.1); order here is never
// derived by reflection or registration, per §9 Open Question (b).
func DefaultValidators() []sts.Validator {
	return []sts.Validator{
		EmptyInputs,
		AllInputsMustBeInUtxo,
		BadCollateralInputsUTxO,
		BadReferenceInputsUTxO,
		InputsAndReferenceInputsDisjoint,
		TransactionSize,
		OutsideValidityInterval,
		OutsideForecast,
		OutputsHaveNotEnoughCoins,
		OutputsHaveTooBigValueStorageSize,
		OutputBootAddrAttrsSize,
		WrongNetworkAddress,
		WrongNetworkWithdrawal,
		WrongNetworkInTxBody,
		ValueNotConservedUTxO,
		FeesOk,
		ExUnitsTooBig,
		TooManyCollateralInputs,
		Metadata,
		MissingKeyHashes,
		VerifiedSignaturesInWitnesses,
		MissingOrExtraScriptHashes,
		NativeScripts,
		ScriptsWellFormed,
		ExactSetOfRedeemers,
		MissingRequiredDatums,
		ProtocolParamsViewHashesMatch,
		StakeCertificates,
		StakePoolCertificates,
	}
}

// DefaultMutators returns the five canonical-order mutators §4.2.4
// specifies: input removal, phase-2 script evaluation, fee/donation
// crediting, output insertion, and certificate-state application. Each
// sees the previous mutator's output state (§4.1 "sequential mutation
// threads state"). FeeMutator runs before AddOutputsToUtxo specifically
// so that, on a phase-2 failure, it can still read the collateral
// inputs' value out of Utxos before AddOutputsToUtxo removes them.
func DefaultMutators(programs plutusexec.Programs, mode plutusexec.Mode) []sts.Mutator {
	return []sts.Mutator{
		RemoveInputsFromUtxo,
		PlutusScriptsTransactionMutator(programs, mode),
		FeeMutator,
		AddOutputsToUtxo,
		CertsMutator,
	}
}
