// Package plutuscore implements the Plutus Core language and its CEK-style
// interpreter (§4.3). The term/value/frame taxonomy below is architected
// after blinklabs-io/plutigo, the only from-scratch Go Plutus Core
// evaluator in the retrieval pack (an indirect dependency of the teacher's
// go.mod) — see DESIGN.md for why this package reimplements rather than
// imports it. Values that are Data (the tagged Constr/Map/List/I/B sum)
// are represented by the plutusdata package; everything else (Integer,
// ByteString, Bool, Unit, Pair, List, BLS12-381 points, builtin
// accumulators) lives here.
package plutuscore

import "math/big"

// TermKind discriminates the ten term constructors §4.3.2 lists (the
// first eight pre-date PlutusV3; Constr/Case are v3+).
type TermKind uint8

const (
	TermVar TermKind = iota
	TermLamAbs
	TermApply
	TermForce
	TermDelay
	TermBuiltin
	TermConst
	TermError
	TermConstr
	TermCase
)

// Term is an immutable Plutus Core AST node (§5 "Script terms and Data
// values are immutable once constructed"). DeBruijn indices are used for
// Var, so no name resolution or environment lookup by string ever
// happens — the representation §9 "Cyclic graphs" calls for.
type Term struct {
	Kind TermKind

	// Var: DeBruijn index, counting outward from the nearest enclosing
	// LamAbs, 0-based.
	DeBruijn int

	// LamAbs: Body.
	Body *Term

	// Apply: Fun, Arg.
	Fun *Term
	Arg *Term

	// Force, Delay: Inner.
	Inner *Term

	// Builtin: Id.
	Builtin BuiltinId

	// Const: Value.
	Value Value

	// Constr: Tag, Fields.
	Tag    uint64
	Fields []*Term

	// Case: Scrutinee, Branches.
	Scrutinee *Term
	Branches  []*Term
}

// Var, LamAbs, Apply, Force, Delay, Builtin, Const, ErrorTerm, Constr, Case
// are constructor helpers mirroring plutigo's term-builder style.

func Var(i int) *Term { return &Term{Kind: TermVar, DeBruijn: i} }

func LamAbs(body *Term) *Term { return &Term{Kind: TermLamAbs, Body: body} }

func Apply(fun, arg *Term) *Term { return &Term{Kind: TermApply, Fun: fun, Arg: arg} }

func Force(inner *Term) *Term { return &Term{Kind: TermForce, Inner: inner} }

func Delay(inner *Term) *Term { return &Term{Kind: TermDelay, Inner: inner} }

func Builtin(id BuiltinId) *Term { return &Term{Kind: TermBuiltin, Builtin: id} }

func Const(v Value) *Term { return &Term{Kind: TermConst, Value: v} }

func ErrorTerm() *Term { return &Term{Kind: TermError} }

func Constr(tag uint64, fields ...*Term) *Term {
	return &Term{Kind: TermConstr, Tag: tag, Fields: fields}
}

func Case(scrutinee *Term, branches ...*Term) *Term {
	return &Term{Kind: TermCase, Scrutinee: scrutinee, Branches: branches}
}

// IntegerValue is a convenience constructor for Const(Value{Integer}).
func IntegerValue(v int64) Value { return Value{Kind: ValInteger, Integer: big.NewInt(v)} }
