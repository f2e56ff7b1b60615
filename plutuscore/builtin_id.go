package plutuscore

// BuiltinId enumerates every Plutus Core builtin function §4.3.2's
// catalogue lists, across the integer, bytestring, string, Data, list,
// pair, cryptographic, and BLS12-381 families, plus the v3 CIP additions
// (IntegerToByteString and friends).
type BuiltinId uint16

const (
	AddInteger BuiltinId = iota
	SubtractInteger
	MultiplyInteger
	DivideInteger
	QuotientInteger
	RemainderInteger
	ModInteger
	EqualsInteger
	LessThanInteger
	LessThanEqualsInteger

	AppendByteString
	ConsByteString
	SliceByteString
	LengthOfByteString
	IndexByteString
	EqualsByteString
	LessThanByteString
	LessThanEqualsByteString

	Sha2_256
	Sha3_256
	Blake2b_256
	Keccak_256
	Blake2b_224
	Ripemd_160
	VerifyEd25519Signature
	VerifyEcdsaSecp256k1Signature
	VerifySchnorrSecp256k1Signature

	AppendString
	EqualsString
	EncodeUtf8
	DecodeUtf8

	IfThenElse
	ChooseUnit
	Trace

	FstPair
	SndPair

	ChooseList
	MkCons
	HeadList
	TailList
	NullList

	ChooseData
	ConstrData
	MapData
	ListData
	IData
	BData
	UnConstrData
	UnMapData
	UnListData
	UnIData
	UnBData
	EqualsData
	SerialiseData

	MkPairData
	MkNilData
	MkNilPairData

	Bls12_381_G1_add
	Bls12_381_G1_neg
	Bls12_381_G1_scalarMul
	Bls12_381_G1_equal
	Bls12_381_G1_compress
	Bls12_381_G1_uncompress
	Bls12_381_G1_hashToGroup

	Bls12_381_G2_add
	Bls12_381_G2_neg
	Bls12_381_G2_scalarMul
	Bls12_381_G2_equal
	Bls12_381_G2_compress
	Bls12_381_G2_uncompress
	Bls12_381_G2_hashToGroup

	Bls12_381_millerLoop
	Bls12_381_mulMlResult
	Bls12_381_finalVerify

	IntegerToByteString
	ByteStringToInteger
	AndByteString
	OrByteString
	XorByteString
	ComplementByteString
	ReadBit
	WriteBits
	ReplicateByte
	ExpModInteger

	builtinCount
)
