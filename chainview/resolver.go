// Package chainview defines the read-only contract a caller uses to
// populate the in-memory inputs ApplyTransaction/EvaluatePlutusScripts/
// ComputeScriptDataHash need, adapted from the teacher's connector.Provider
// (§6). Every chain-I/O method the teacher's Provider carries —
// SubmitTx, AwaitTx, GetTip, GetDelegation, the unit/address UTxO
// queries, the four provider constructors — is out of scope here: the
// core engine only ever consumes an already-resolved ledgerstate.Utxos
// map and a *ledgerstate.Params, never reaches out over the network
// itself (§5 "no I/O on the hot path").
package chainview

import (
	"context"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
	"github.com/zenGate-Global/cardano-ledger-core/txmodel"
)

// GenesisParams carries the genesis-derived constants a validation run
// needs to convert between slots and POSIX time, mirroring the subset of
// the teacher's Base.GenesisParameters the rules engine actually
// consumes (network magic, slot zero-point, slot length) — rewards,
// protocol-update, and era-transition bookkeeping are a Non-goal (§1).
type GenesisParams struct {
	NetworkMagic int
	SlotConfig   ledgerstate.SlotConfig
}

// Resolver is the read-only contract populate-then-validate callers
// implement: one method for current protocol parameters, one for genesis
// parameters, one each for the current network and epoch, and one for
// resolving a set of inputs to their outputs. A caller backed by
// blockfrost/kupmios/maestro/utxorpc (or an in-memory fixture, for
// tests) implements this to feed ApplyTransaction without the core ever
// importing a chain client itself.
type Resolver interface {
	ProtocolParams(ctx context.Context) (ledgerstate.Params, error)
	GenesisParams(ctx context.Context) (GenesisParams, error)
	Network(ctx context.Context) (primitives.Network, error)
	Epoch(ctx context.Context) (int, error)

	// ResolveUtxos returns the TransactionOutput for every input in ins
	// that exists, as a ledgerstate.Utxos map keyed by TransactionInput;
	// inputs absent on-chain are simply omitted, exactly as
	// AllInputsMustBeInUtxo/BadCollateralInputsUTxO/BadReferenceInputsUTxO
	// expect to detect via Utxos.Get/Has rather than an error return.
	ResolveUtxos(ctx context.Context, ins []txmodel.TransactionInput) (ledgerstate.Utxos, error)
}
