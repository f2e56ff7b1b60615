package sts

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// FeesNotOkDetails bundles the up-to-six independent sub-violations
// FeesOk (§4.2.2) can report simultaneously, mirroring the teacher's
// APIError{StatusCode, ProviderCode, Message, Details, UnderlyingErr}
// pattern of carrying compound structured detail on one error value.
type FeesNotOkDetails struct {
	IsFeeTooSmall             bool
	ActualFee, MinFee         primitives.Coin
	HasNonKeyHashCollateral   bool
	NonKeyHashCollateralAddrs int
	IsCollateralNotAdaOnly    bool
	IsCollateralInsufficient  bool
	CollateralTotal           primitives.Coin
	RequiredCollateral        primitives.Coin
	IsTotalCollateralMismatch bool
	DeclaredTotalCollateral   *primitives.Coin
	ComputedTotalCollateral   primitives.Coin
	IsNoCollateralInputs      bool
}

// Any reports whether at least one sub-violation is set — the bundling
// predicate FeesOk's validator uses to decide whether to return an error
// at all.
func (d FeesNotOkDetails) Any() bool {
	return d.IsFeeTooSmall || d.HasNonKeyHashCollateral || d.IsCollateralNotAdaOnly ||
		d.IsCollateralInsufficient || d.IsTotalCollateralMismatch || d.IsNoCollateralInputs
}
