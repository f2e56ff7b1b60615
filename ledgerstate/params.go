package ledgerstate

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// Params is the protocol-parameters struct §6 describes, field-named after
// the teacher's Base.ProtocolParameters (MinFeeConstant, MinFeeCoefficient,
// MaxTxSize, ...) but widened with every field the rules engine itself
// needs that the tx-builder-oriented Base.ProtocolParameters doesn't carry
// (MaxCollateralInputs, CollateralPercentage, StakeAddressDeposit,
// PoolRetireMaxEpoch, MinPoolCost, UtxoCostPerByte, MaxValueSize,
// MaxTxExecutionUnits, CostModels).
type Params struct {
	MinFeeConstant    int64
	MinFeeCoefficient int64
	MaxTxSize         int
	MaxBlockSize      int

	UtxoCostPerByte primitives.Coin
	MaxValueSize    int

	MaxCollateralInputs  int
	CollateralPercentage int

	MaxTxExecutionUnits primitives.ExUnits

	StakeAddressDeposit primitives.Coin
	PoolDeposit         primitives.Coin
	PoolRetireMaxEpoch  int
	MinPoolCost         primitives.Coin

	GovActionDeposit primitives.Coin

	ProtocolMajorVersion int
	ProtocolMinorVersion int

	CostModels CostModels
}

// BaseFee computes the linear part of the minimum fee: the teacher-named
// MinFeeConstant + MinFeeCoefficient*size formula apollo's tx builder uses
// (§4.2.2 "minFee = baseFee(txSize) + ...").
func (p Params) BaseFee(txSize int) primitives.Coin {
	return primitives.Coin(p.MinFeeConstant) + primitives.Coin(p.MinFeeCoefficient)*primitives.Coin(txSize)
}

// MinUtxoCoin computes the minimum ADA an output of serializedSize bytes
// must carry (§4.2.1 OutputsHaveNotEnoughCoins: "coin >= (constantOverhead
// + outputSize) * utxoCostPerByte").
func (p Params) MinUtxoCoin(serializedSize int) primitives.Coin {
	const constantOverhead = 160
	return primitives.Coin(int64(constantOverhead+serializedSize)) * p.UtxoCostPerByte
}

// SlotConfig converts slots to POSIX-ms timestamps for validity-interval
// and redeemer-deadline (forecast window) evaluation (§6 "slotToTime").
type SlotConfig struct {
	ZeroSlot    uint64
	ZeroTimeMs  int64
	SlotLengthMs int64
}

// SlotToTime implements the linear slotToTime(slot) -> POSIX-ms mapping.
func (s SlotConfig) SlotToTime(slot uint64) int64 {
	delta := int64(slot) - int64(s.ZeroSlot)
	return s.ZeroTimeMs + delta*s.SlotLengthMs
}
