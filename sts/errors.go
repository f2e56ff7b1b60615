// Package sts implements the State Transition System framework §4.1
// describes: the Validator/Mutator shapes, their composition combinators,
// and the closed TransactionException error sum §7 specifies. The error
// design mirrors the teacher's errors.go: named sentinel-like Kind values,
// a single wrapping struct carrying the transactionId plus kind-specific
// payload, and errors.Is-based IsXxx helpers (cf. connector.ErrNotFound,
// connector.APIError, connector.IsNotFound).
package sts

import (
	"errors"
	"fmt"

	"github.com/zenGate-Global/cardano-ledger-core/primitives"
)

// Kind identifies one of the named exception kinds §7 lists.
type Kind string

const (
	KindEmptyInputs                   Kind = "EmptyInputs"
	KindBadAllInputsUTxO              Kind = "BadAllInputsUTxO"
	KindBadInputsUTxO                 Kind = "BadInputsUTxO"
	KindBadCollateralInputsUTxO       Kind = "BadCollateralInputsUTxO"
	KindBadReferenceInputsUTxO        Kind = "BadReferenceInputsUTxO"
	KindNonDisjointInputsAndReference Kind = "NonDisjointInputsAndReferenceInputs"
	KindInvalidTransactionSize        Kind = "InvalidTransactionSize"
	KindOutsideValidityInterval       Kind = "OutsideValidityInterval"
	KindOutsideForecast               Kind = "OutsideForecast"
	KindOutputsHaveNotEnoughCoins     Kind = "OutputsHaveNotEnoughCoins"
	KindOutputsHaveTooBigValueStorage Kind = "OutputsHaveTooBigValueStorageSize"
	KindOutputBootAddrAttrsTooBig     Kind = "OutputBootAddrAttrsTooBig"
	KindWrongNetworkAddress           Kind = "WrongNetworkAddress"
	KindWrongNetworkWithdrawal        Kind = "WrongNetworkWithdrawal"
	KindWrongNetworkInTxBody          Kind = "WrongNetworkInTxBody"
	KindValueNotConservedUTxO         Kind = "ValueNotConservedUTxO"
	KindFeesNotOk                     Kind = "FeesOk"
	KindExUnitsExceedMax              Kind = "ExUnitsExceedMax"
	KindTooManyCollateralInputs       Kind = "TooManyCollateralInputs"
	KindMetadataMissing               Kind = "MetadataMissing"
	KindMetadataMissingHash           Kind = "MetadataMissingHash"
	KindMetadataHashMismatch          Kind = "MetadataHashMismatch"
	KindInvalidSignaturesInWitnesses  Kind = "InvalidSignaturesInWitnesses"
	KindMissingKeyHashes              Kind = "MissingKeyHashes"
	KindMissingOrExtraScriptHashes    Kind = "MissingOrExtraScriptHashes"
	KindNativeScripts                 Kind = "NativeScripts"
	KindIllFormedScripts              Kind = "IllFormedScripts"
	KindExactSetOfRedeemers           Kind = "ExactSetOfRedeemers"
	KindDatums                        Kind = "Datums"
	KindInvalidScriptDataHash         Kind = "InvalidScriptDataHash"
	KindStakeCertificates             Kind = "StakeCertificates"
	KindStakePool                     Kind = "StakePool"
	KindPlutusScriptValidation        Kind = "PlutusScriptValidation"
)

// TransactionException is the closed error sum every validator and mutator
// returns (§7). It always carries the transactionId, the Kind, and an
// opaque kind-specific Details payload (sets of missing hashes,
// actual-vs-expected values, offending outputs).
type TransactionException struct {
	TransactionId primitives.Hash32
	Kind          Kind
	Message       string
	Details       interface{}
	Underlying    error
}

func (e *TransactionException) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("tx %s: %s: %s (%v)", e.TransactionId, e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("tx %s: %s: %s", e.TransactionId, e.Kind, e.Message)
}

func (e *TransactionException) Unwrap() error { return e.Underlying }

// Is reports whether target is a *TransactionException with the same Kind,
// so errors.Is(err, &TransactionException{Kind: KindEmptyInputs}) works
// without comparing Message/Details/TransactionId.
func (e *TransactionException) Is(target error) bool {
	var other *TransactionException
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs a TransactionException of the given kind.
func New(txId primitives.Hash32, kind Kind, message string, details interface{}) *TransactionException {
	return &TransactionException{TransactionId: txId, Kind: kind, Message: message, Details: details}
}

// Wrap constructs a TransactionException that wraps an underlying error
// (used by mutators translating interpreter panics/errors, §7
// "Propagation").
func Wrap(txId primitives.Hash32, kind Kind, message string, underlying error) *TransactionException {
	return &TransactionException{TransactionId: txId, Kind: kind, Message: message, Underlying: underlying}
}

// sentinel is a Kind-only exception used as the comparison target for IsXxx
// helpers.
func sentinel(kind Kind) *TransactionException { return &TransactionException{Kind: kind} }

// IsKind reports whether err is, or wraps, a TransactionException of kind.
func IsKind(err error, kind Kind) bool {
	return errors.Is(err, sentinel(kind))
}

// IsEmptyInputs, IsFeesNotOk, etc. are thin named wrappers over IsKind for
// the handful of kinds callers most commonly branch on, mirroring the
// teacher's IsNotFound/IsRateLimited/IsEvaluationFailed precedent.
func IsEmptyInputs(err error) bool          { return IsKind(err, KindEmptyInputs) }
func IsFeesNotOk(err error) bool            { return IsKind(err, KindFeesNotOk) }
func IsValueNotConserved(err error) bool    { return IsKind(err, KindValueNotConservedUTxO) }
func IsMissingKeyHashes(err error) bool     { return IsKind(err, KindMissingKeyHashes) }
func IsPlutusScriptValidation(err error) bool { return IsKind(err, KindPlutusScriptValidation) }
