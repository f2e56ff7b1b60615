package plutuscore

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
)

// ValueKind discriminates the runtime value variants §4.3.2 lists:
// Integer, ByteString, String, Bool, Unit, Data, List, Pair, the two
// BLS12-381 point groups plus MlResult, a closure, a thunk, a
// constructor value, and a builtin accumulator.
type ValueKind uint8

const (
	ValInteger ValueKind = iota
	ValByteString
	ValString
	ValBool
	ValUnit
	ValData
	ValList
	ValPair
	ValBLS12G1
	ValBLS12G2
	ValBLS12MlResult
	ValClosure
	ValThunk
	ValConstr
	ValBuiltinAcc
)

// Value is a fully-evaluated (or suspended, for Thunk/Closure) CEK result.
type Value struct {
	Kind ValueKind

	Integer *big.Int
	Bytes   []byte
	Text    string
	Bool    bool
	Data    plutusdata.Data

	// List: element type is informational only (Plutus lists are
	// homogeneous at the type level, but the interpreter doesn't
	// typecheck at runtime) — Items holds the values.
	Items []Value

	// Pair.
	First, Second *Value

	G1 *bls12381.G1Affine
	G2 *bls12381.G2Affine
	Ml *bls12381.GT

	// Closure: captured environment plus the lambda body.
	Env   *Env
	Body  *Term

	// Thunk: a Delay awaiting Force.
	Thunk *Term

	// Constr (v3+ Constr/Case machinery).
	ConstrTag  uint64
	ConstrArgs []Value

	// BuiltinAcc: partial application of a builtin.
	AccId     BuiltinId
	AccArgs   []Value
	ForcesLeft int
}

// Unit is the canonical Plutus () value every successfully-evaluated
// script must reduce to (§4.3.1 "every script must return unit").
var Unit = Value{Kind: ValUnit}

// True/False are the two Bool values.
var True = Value{Kind: ValBool, Bool: true}
var False = Value{Kind: ValBool, Bool: false}

// IsUnit reports whether v is the Unit value (success sentinel, §4.3.4
// step 6).
func (v Value) IsUnit() bool { return v.Kind == ValUnit }

// Env is an append-only array of values addressed by DeBruijn index,
// exactly the representation §9 "Cyclic graphs" mandates: "environments as
// append-only arrays of values ... with no backward pointers; recursion is
// expressed by self-application (Y) so no cycle needs to be built."
type Env struct {
	values []Value
}

// Extend returns a new Env with v pushed to the front (DeBruijn index 0),
// never mutating the receiver (shared-by-reference closures stay valid).
func (e *Env) Extend(v Value) *Env {
	next := make([]Value, len(e.values)+1)
	next[0] = v
	copy(next[1:], e.values)
	return &Env{values: next}
}

// Lookup resolves a DeBruijn index.
func (e *Env) Lookup(i int) (Value, bool) {
	if i < 0 || i >= len(e.values) {
		return Value{}, false
	}
	return e.values[i], true
}

// EmptyEnv is the environment a top-level script term starts evaluation in.
func EmptyEnv() *Env { return &Env{} }
