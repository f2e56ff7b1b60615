package plutuscore

import (
	"fmt"
	"math/big"

	"github.com/zenGate-Global/cardano-ledger-core/cryptoimpl"
	"github.com/zenGate-Global/cardano-ledger-core/plutusdata"
)

// BuiltinSpec describes one builtin's calling convention: how many type
// forces must precede its arguments (§4.3.3 "polymorphic builtins consume
// Force nodes before consuming term arguments"), its fixed arity, and the
// function implementing it.
type BuiltinSpec struct {
	Arity int
	Forces int
	Apply func(m *Machine, args []Value) (Value, error)
}

// BuiltinTable is the full dispatch table for BuiltinId. It is immutable
// once built and safe to share across Machines (§5 "Parallelism").
type BuiltinTable struct {
	specs [builtinCount]BuiltinSpec
}

// Spec returns the calling convention and implementation for id.
func (t *BuiltinTable) Spec(id BuiltinId) BuiltinSpec { return t.specs[id] }

// NewBuiltinTable constructs the default table covering every builtin
// §4.3.2 lists.
func NewBuiltinTable() *BuiltinTable {
	t := &BuiltinTable{}

	// --- integers ---
	t.set(AddInteger, 2, 0, biOp(func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Add(a, b), nil }))
	t.set(SubtractInteger, 2, 0, biOp(func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Sub(a, b), nil }))
	t.set(MultiplyInteger, 2, 0, biOp(func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Mul(a, b), nil }))
	t.set(DivideInteger, 2, 0, biOp(floorDiv))
	t.set(QuotientInteger, 2, 0, biOp(truncQuo))
	t.set(RemainderInteger, 2, 0, biOp(truncRem))
	t.set(ModInteger, 2, 0, biOp(floorMod))
	t.set(EqualsInteger, 2, 0, biCmp(func(c int) bool { return c == 0 }))
	t.set(LessThanInteger, 2, 0, biCmp(func(c int) bool { return c < 0 }))
	t.set(LessThanEqualsInteger, 2, 0, biCmp(func(c int) bool { return c <= 0 }))

	// --- bytestrings ---
	t.set(AppendByteString, 2, 0, func(m *Machine, a []Value) (Value, error) {
		x, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValByteString, Bytes: append(append([]byte{}, x...), y...)}, nil
	})
	t.set(ConsByteString, 2, 0, func(m *Machine, a []Value) (Value, error) {
		n, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		b, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		if !n.IsInt64() || n.Int64() < 0 || n.Int64() > 255 {
			return Value{}, fmt.Errorf("plutuscore: ConsByteString byte out of range")
		}
		out := append([]byte{byte(n.Int64())}, b...)
		return Value{Kind: ValByteString, Bytes: out}, nil
	})
	t.set(SliceByteString, 3, 0, func(m *Machine, a []Value) (Value, error) {
		start, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		length, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		b, err := bytesArg(a[2])
		if err != nil {
			return Value{}, err
		}
		s := clampSliceStart(start, len(b))
		e := clampSliceEnd(s, length, len(b))
		return Value{Kind: ValByteString, Bytes: append([]byte{}, b[s:e]...)}, nil
	})
	t.set(LengthOfByteString, 1, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValInteger, Integer: big.NewInt(int64(len(b)))}, nil
	})
	t.set(IndexByteString, 2, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		n, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		if !n.IsInt64() || n.Int64() < 0 || n.Int64() >= int64(len(b)) {
			return Value{}, fmt.Errorf("plutuscore: IndexByteString out of bounds")
		}
		return Value{Kind: ValInteger, Integer: big.NewInt(int64(b[n.Int64()]))}, nil
	})
	t.set(EqualsByteString, 2, 0, bytesCmp(func(c int) bool { return c == 0 }))
	t.set(LessThanByteString, 2, 0, bytesCmp(func(c int) bool { return c < 0 }))
	t.set(LessThanEqualsByteString, 2, 0, bytesCmp(func(c int) bool { return c <= 0 }))

	// --- hashing and signatures ---
	t.set(Sha2_256, 1, 0, hashOp(func(b []byte) []byte { h := cryptoimpl.Sha2_256(b); return h[:] }))
	t.set(Sha3_256, 1, 0, hashOp(func(b []byte) []byte { h := cryptoimpl.Sha3_256(b); return h[:] }))
	t.set(Blake2b_256, 1, 0, hashOp(func(b []byte) []byte { h := cryptoimpl.Blake2b256(b); return h[:] }))
	t.set(Keccak_256, 1, 0, hashOp(func(b []byte) []byte { h := cryptoimpl.Keccak_256(b); return h[:] }))
	t.set(Blake2b_224, 1, 0, hashOp(func(b []byte) []byte { h := cryptoimpl.Blake2b224(b); return h[:] }))
	t.set(Ripemd_160, 1, 0, hashOp(func(b []byte) []byte { h := cryptoimpl.Ripemd_160(b); return h[:] }))
	t.set(VerifyEd25519Signature, 3, 0, verifyOp(cryptoimpl.VerifyEd25519))
	t.set(VerifyEcdsaSecp256k1Signature, 3, 0, verifyOp(cryptoimpl.VerifyEcdsaSecp256k1))
	t.set(VerifySchnorrSecp256k1Signature, 3, 0, verifyOp(cryptoimpl.VerifySchnorrSecp256k1))

	// --- strings ---
	t.set(AppendString, 2, 0, func(m *Machine, a []Value) (Value, error) {
		x, err := stringArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := stringArg(a[1])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValString, Text: x + y}, nil
	})
	t.set(EqualsString, 2, 0, func(m *Machine, a []Value) (Value, error) {
		x, err := stringArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := stringArg(a[1])
		if err != nil {
			return Value{}, err
		}
		return boolValue(x == y), nil
	})
	t.set(EncodeUtf8, 1, 0, func(m *Machine, a []Value) (Value, error) {
		s, err := stringArg(a[0])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValByteString, Bytes: []byte(s)}, nil
	})
	t.set(DecodeUtf8, 1, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValString, Text: string(b)}, nil
	})

	// --- control ---
	t.set(IfThenElse, 3, 1, func(m *Machine, a []Value) (Value, error) {
		cond, err := boolArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if cond {
			return a[1], nil
		}
		return a[2], nil
	})
	t.set(ChooseUnit, 2, 1, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValUnit {
			return Value{}, fmt.Errorf("plutuscore: ChooseUnit first argument is not unit")
		}
		return a[1], nil
	})
	t.set(Trace, 2, 1, func(m *Machine, a []Value) (Value, error) {
		return a[1], nil
	})

	// --- pairs ---
	t.set(FstPair, 1, 2, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValPair || a[0].First == nil {
			return Value{}, fmt.Errorf("plutuscore: FstPair on non-pair value")
		}
		return *a[0].First, nil
	})
	t.set(SndPair, 1, 2, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValPair || a[0].Second == nil {
			return Value{}, fmt.Errorf("plutuscore: SndPair on non-pair value")
		}
		return *a[0].Second, nil
	})

	// --- lists ---
	t.set(ChooseList, 3, 2, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: ChooseList on non-list value")
		}
		if len(a[0].Items) == 0 {
			return a[1], nil
		}
		return a[2], nil
	})
	t.set(MkCons, 2, 1, func(m *Machine, a []Value) (Value, error) {
		if a[1].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: MkCons second argument is not a list")
		}
		items := append([]Value{a[0]}, a[1].Items...)
		return Value{Kind: ValList, Items: items}, nil
	})
	t.set(HeadList, 1, 1, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValList || len(a[0].Items) == 0 {
			return Value{}, fmt.Errorf("plutuscore: HeadList on empty list")
		}
		return a[0].Items[0], nil
	})
	t.set(TailList, 1, 1, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValList || len(a[0].Items) == 0 {
			return Value{}, fmt.Errorf("plutuscore: TailList on empty list")
		}
		return Value{Kind: ValList, Items: a[0].Items[1:]}, nil
	})
	t.set(NullList, 1, 1, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: NullList on non-list value")
		}
		return boolValue(len(a[0].Items) == 0), nil
	})

	// --- Data ---
	t.set(ChooseData, 6, 1, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		switch d.Kind() {
		case plutusdata.KindConstr:
			return a[1], nil
		case plutusdata.KindMap:
			return a[2], nil
		case plutusdata.KindList:
			return a[3], nil
		case plutusdata.KindInteger:
			return a[4], nil
		default:
			return a[5], nil
		}
	})
	t.set(ConstrData, 2, 0, func(m *Machine, a []Value) (Value, error) {
		n, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if a[1].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: ConstrData fields argument is not a list")
		}
		fields := make([]plutusdata.Data, len(a[1].Items))
		for i, v := range a[1].Items {
			d, err := dataArg(v)
			if err != nil {
				return Value{}, err
			}
			fields[i] = d
		}
		return Value{Kind: ValData, Data: plutusdata.Constr(n.Uint64(), fields...)}, nil
	})
	t.set(MapData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: MapData argument is not a list")
		}
		pairs := make([]plutusdata.Pair, len(a[0].Items))
		for i, v := range a[0].Items {
			if v.Kind != ValPair || v.First == nil || v.Second == nil {
				return Value{}, fmt.Errorf("plutuscore: MapData list element is not a pair")
			}
			k, err := dataArg(*v.First)
			if err != nil {
				return Value{}, err
			}
			val, err := dataArg(*v.Second)
			if err != nil {
				return Value{}, err
			}
			pairs[i] = plutusdata.Pair{Key: k, Value: val}
		}
		return Value{Kind: ValData, Data: plutusdata.MapOf(pairs...)}, nil
	})
	t.set(ListData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: ListData argument is not a list")
		}
		items := make([]plutusdata.Data, len(a[0].Items))
		for i, v := range a[0].Items {
			d, err := dataArg(v)
			if err != nil {
				return Value{}, err
			}
			items[i] = d
		}
		return Value{Kind: ValData, Data: plutusdata.List(items...)}, nil
	})
	t.set(IData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		n, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValData, Data: plutusdata.BigInt(n)}, nil
	})
	t.set(BData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValData, Data: plutusdata.Bytes(b)}, nil
	})
	t.set(UnConstrData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if d.Kind() != plutusdata.KindConstr {
			return Value{}, fmt.Errorf("plutuscore: UnConstrData on non-Constr")
		}
		items := make([]Value, len(d.Fields()))
		for i, f := range d.Fields() {
			items[i] = Value{Kind: ValData, Data: f}
		}
		tagVal := Value{Kind: ValInteger, Integer: new(big.Int).SetUint64(d.Tag())}
		listVal := Value{Kind: ValList, Items: items}
		return Value{Kind: ValPair, First: &tagVal, Second: &listVal}, nil
	})
	t.set(UnMapData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if d.Kind() != plutusdata.KindMap {
			return Value{}, fmt.Errorf("plutuscore: UnMapData on non-Map")
		}
		items := make([]Value, len(d.Pairs()))
		for i, p := range d.Pairs() {
			k := Value{Kind: ValData, Data: p.Key}
			v := Value{Kind: ValData, Data: p.Value}
			items[i] = Value{Kind: ValPair, First: &k, Second: &v}
		}
		return Value{Kind: ValList, Items: items}, nil
	})
	t.set(UnListData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if d.Kind() != plutusdata.KindList {
			return Value{}, fmt.Errorf("plutuscore: UnListData on non-List")
		}
		items := make([]Value, len(d.Fields()))
		for i, f := range d.Fields() {
			items[i] = Value{Kind: ValData, Data: f}
		}
		return Value{Kind: ValList, Items: items}, nil
	})
	t.set(UnIData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if d.Kind() != plutusdata.KindInteger {
			return Value{}, fmt.Errorf("plutuscore: UnIData on non-Integer")
		}
		return Value{Kind: ValInteger, Integer: new(big.Int).Set(d.Int())}, nil
	})
	t.set(UnBData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if d.Kind() != plutusdata.KindBytes {
			return Value{}, fmt.Errorf("plutuscore: UnBData on non-Bytes")
		}
		return Value{Kind: ValByteString, Bytes: append([]byte{}, d.Bytes()...)}, nil
	})
	t.set(EqualsData, 2, 0, func(m *Machine, a []Value) (Value, error) {
		x, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := dataArg(a[1])
		if err != nil {
			return Value{}, err
		}
		return boolValue(x.Equal(y)), nil
	})
	t.set(SerialiseData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		d, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		b, err := serialiseData(d)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValByteString, Bytes: b}, nil
	})

	t.set(MkPairData, 2, 0, func(m *Machine, a []Value) (Value, error) {
		x, err := dataArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := dataArg(a[1])
		if err != nil {
			return Value{}, err
		}
		xv, yv := Value{Kind: ValData, Data: x}, Value{Kind: ValData, Data: y}
		return Value{Kind: ValPair, First: &xv, Second: &yv}, nil
	})
	t.set(MkNilData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		return Value{Kind: ValList}, nil
	})
	t.set(MkNilPairData, 1, 0, func(m *Machine, a []Value) (Value, error) {
		return Value{Kind: ValList}, nil
	})

	registerBLSBuiltins(t)
	registerV3ByteStringBuiltins(t)

	return t
}

func (t *BuiltinTable) set(id BuiltinId, arity, forces int, fn func(m *Machine, args []Value) (Value, error)) {
	t.specs[id] = BuiltinSpec{Arity: arity, Forces: forces, Apply: fn}
}

func boolValue(b bool) Value {
	if b {
		return True
	}
	return False
}

func intArg(v Value) (*big.Int, error) {
	if v.Kind != ValInteger || v.Integer == nil {
		return nil, fmt.Errorf("plutuscore: expected Integer argument, got kind %d", v.Kind)
	}
	return v.Integer, nil
}

func bytesArg(v Value) ([]byte, error) {
	if v.Kind != ValByteString {
		return nil, fmt.Errorf("plutuscore: expected ByteString argument, got kind %d", v.Kind)
	}
	return v.Bytes, nil
}

func stringArg(v Value) (string, error) {
	if v.Kind != ValString {
		return "", fmt.Errorf("plutuscore: expected String argument, got kind %d", v.Kind)
	}
	return v.Text, nil
}

func boolArg(v Value) (bool, error) {
	if v.Kind != ValBool {
		return false, fmt.Errorf("plutuscore: expected Bool argument, got kind %d", v.Kind)
	}
	return v.Bool, nil
}

func dataArg(v Value) (plutusdata.Data, error) {
	if v.Kind != ValData {
		return plutusdata.Data{}, fmt.Errorf("plutuscore: expected Data argument, got kind %d", v.Kind)
	}
	return v.Data, nil
}

func biOp(f func(a, b *big.Int) (*big.Int, error)) func(*Machine, []Value) (Value, error) {
	return func(m *Machine, a []Value) (Value, error) {
		x, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		r, err := f(x, y)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValInteger, Integer: r}, nil
	}
}

func biCmp(pred func(c int) bool) func(*Machine, []Value) (Value, error) {
	return func(m *Machine, a []Value) (Value, error) {
		x, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		return boolValue(pred(x.Cmp(y))), nil
	}
}

func bytesCmp(pred func(c int) bool) func(*Machine, []Value) (Value, error) {
	return func(m *Machine, a []Value) (Value, error) {
		x, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		y, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		return boolValue(pred(bytesCompare(x, y))), nil
	}
}

func bytesCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

func hashOp(f func([]byte) []byte) func(*Machine, []Value) (Value, error) {
	return func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValByteString, Bytes: f(b)}, nil
	}
}

func verifyOp(f func(key, msg, sig []byte) bool) func(*Machine, []Value) (Value, error) {
	return func(m *Machine, a []Value) (Value, error) {
		key, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		msg, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		sig, err := bytesArg(a[2])
		if err != nil {
			return Value{}, err
		}
		return boolValue(f(key, msg, sig)), nil
	}
}

// floorDiv/floorMod match Haskell's `div`/`mod` (floor toward negative
// infinity); truncQuo/truncRem match `quot`/`rem` (truncate toward zero) —
// DivideInteger/ModInteger use the former, QuotientInteger/RemainderInteger
// the latter, per §4.3.2.
func floorDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("plutuscore: division by zero")
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q, nil
}

func floorMod(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("plutuscore: modulo by zero")
	}
	r := new(big.Int).Mod(a, b)
	if r.Sign() != 0 && b.Sign() < 0 {
		r.Add(r, b)
	}
	return r, nil
}

func truncQuo(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("plutuscore: quotient by zero")
	}
	return new(big.Int).Quo(a, b), nil
}

func truncRem(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("plutuscore: remainder by zero")
	}
	return new(big.Int).Rem(a, b), nil
}

func clampSliceStart(start *big.Int, length int) int {
	if !start.IsInt64() || start.Int64() < 0 {
		return 0
	}
	if start.Int64() > int64(length) {
		return length
	}
	return int(start.Int64())
}

func clampSliceEnd(start int, n *big.Int, length int) int {
	if !n.IsInt64() || n.Int64() < 0 {
		return start
	}
	end := start + int(n.Int64())
	if end > length {
		return length
	}
	return end
}

// registerBLSBuiltins wires the full BLS12-381 family onto cryptoimpl.
func registerBLSBuiltins(t *BuiltinTable) {
	t.set(Bls12_381_G1_add, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G1 == nil || a[1].G1 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G1_add on non-G1 value")
		}
		r := cryptoimpl.G1Add(*a[0].G1, *a[1].G1)
		return Value{Kind: ValBLS12G1, G1: &r}, nil
	})
	t.set(Bls12_381_G1_neg, 1, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G1 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G1_neg on non-G1 value")
		}
		r := cryptoimpl.G1Neg(*a[0].G1)
		return Value{Kind: ValBLS12G1, G1: &r}, nil
	})
	t.set(Bls12_381_G1_scalarMul, 2, 0, func(m *Machine, a []Value) (Value, error) {
		n, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if a[1].G1 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G1_scalarMul on non-G1 value")
		}
		r := cryptoimpl.G1ScalarMul(n, *a[1].G1)
		return Value{Kind: ValBLS12G1, G1: &r}, nil
	})
	t.set(Bls12_381_G1_equal, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G1 == nil || a[1].G1 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G1_equal on non-G1 value")
		}
		return boolValue(cryptoimpl.G1Equal(*a[0].G1, *a[1].G1)), nil
	})
	t.set(Bls12_381_G1_compress, 1, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G1 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G1_compress on non-G1 value")
		}
		return Value{Kind: ValByteString, Bytes: cryptoimpl.G1Compress(*a[0].G1)}, nil
	})
	t.set(Bls12_381_G1_uncompress, 1, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		p, err := cryptoimpl.G1Uncompress(b)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValBLS12G1, G1: &p}, nil
	})
	t.set(Bls12_381_G1_hashToGroup, 2, 0, func(m *Machine, a []Value) (Value, error) {
		msg, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		dst, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		p, err := cryptoimpl.G1HashToGroup(msg, dst)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValBLS12G1, G1: &p}, nil
	})

	t.set(Bls12_381_G2_add, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G2 == nil || a[1].G2 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G2_add on non-G2 value")
		}
		r := cryptoimpl.G2Add(*a[0].G2, *a[1].G2)
		return Value{Kind: ValBLS12G2, G2: &r}, nil
	})
	t.set(Bls12_381_G2_neg, 1, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G2 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G2_neg on non-G2 value")
		}
		r := cryptoimpl.G2Neg(*a[0].G2)
		return Value{Kind: ValBLS12G2, G2: &r}, nil
	})
	t.set(Bls12_381_G2_scalarMul, 2, 0, func(m *Machine, a []Value) (Value, error) {
		n, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if a[1].G2 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G2_scalarMul on non-G2 value")
		}
		r := cryptoimpl.G2ScalarMul(n, *a[1].G2)
		return Value{Kind: ValBLS12G2, G2: &r}, nil
	})
	t.set(Bls12_381_G2_equal, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G2 == nil || a[1].G2 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G2_equal on non-G2 value")
		}
		return boolValue(cryptoimpl.G2Equal(*a[0].G2, *a[1].G2)), nil
	})
	t.set(Bls12_381_G2_compress, 1, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G2 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_G2_compress on non-G2 value")
		}
		return Value{Kind: ValByteString, Bytes: cryptoimpl.G2Compress(*a[0].G2)}, nil
	})
	t.set(Bls12_381_G2_uncompress, 1, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		p, err := cryptoimpl.G2Uncompress(b)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValBLS12G2, G2: &p}, nil
	})
	t.set(Bls12_381_G2_hashToGroup, 2, 0, func(m *Machine, a []Value) (Value, error) {
		msg, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		dst, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		p, err := cryptoimpl.G2HashToGroup(msg, dst)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValBLS12G2, G2: &p}, nil
	})

	t.set(Bls12_381_millerLoop, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].G1 == nil || a[1].G2 == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_millerLoop expects (G1, G2)")
		}
		r, err := cryptoimpl.MillerLoop(*a[0].G1, *a[1].G2)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ValBLS12MlResult, Ml: &r}, nil
	})
	t.set(Bls12_381_mulMlResult, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].Ml == nil || a[1].Ml == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_mulMlResult on non-MlResult value")
		}
		r := cryptoimpl.MulMlResult(*a[0].Ml, *a[1].Ml)
		return Value{Kind: ValBLS12MlResult, Ml: &r}, nil
	})
	t.set(Bls12_381_finalVerify, 2, 0, func(m *Machine, a []Value) (Value, error) {
		if a[0].Ml == nil || a[1].Ml == nil {
			return Value{}, fmt.Errorf("plutuscore: Bls12_381_finalVerify on non-MlResult value")
		}
		return boolValue(cryptoimpl.FinalVerify(*a[0].Ml, *a[1].Ml)), nil
	})
}

// registerV3ByteStringBuiltins wires the PlutusV3 CIP-additions builtin
// family (bit/logic operations over ByteString, integer<->bytestring
// conversion, modular exponentiation).
func registerV3ByteStringBuiltins(t *BuiltinTable) {
	t.set(IntegerToByteString, 3, 0, func(m *Machine, a []Value) (Value, error) {
		endiannessBig, err := boolArg(a[0])
		if err != nil {
			return Value{}, err
		}
		width, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		n, err := intArg(a[2])
		if err != nil {
			return Value{}, err
		}
		if n.Sign() < 0 {
			return Value{}, fmt.Errorf("plutuscore: IntegerToByteString of a negative integer")
		}
		raw := n.Bytes()
		if width.IsInt64() && width.Int64() > 0 {
			w := int(width.Int64())
			if len(raw) > w {
				return Value{}, fmt.Errorf("plutuscore: IntegerToByteString integer does not fit in width")
			}
			padded := make([]byte, w)
			copy(padded[w-len(raw):], raw)
			raw = padded
		}
		if !endiannessBig {
			reverseInPlace(raw)
		}
		return Value{Kind: ValByteString, Bytes: raw}, nil
	})
	t.set(ByteStringToInteger, 2, 0, func(m *Machine, a []Value) (Value, error) {
		endiannessBig, err := boolArg(a[0])
		if err != nil {
			return Value{}, err
		}
		b, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		raw := append([]byte{}, b...)
		if !endiannessBig {
			reverseInPlace(raw)
		}
		return Value{Kind: ValInteger, Integer: new(big.Int).SetBytes(raw)}, nil
	})
	t.set(AndByteString, 3, 0, bitwiseOp(func(pad bool, x, y byte) byte { return x & y }))
	t.set(OrByteString, 3, 0, bitwiseOp(func(pad bool, x, y byte) byte { return x | y }))
	t.set(XorByteString, 3, 0, bitwiseOp(func(pad bool, x, y byte) byte { return x ^ y }))
	t.set(ComplementByteString, 1, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		out := make([]byte, len(b))
		for i, c := range b {
			out[i] = ^c
		}
		return Value{Kind: ValByteString, Bytes: out}, nil
	})
	t.set(ReadBit, 2, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		idx, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		if !idx.IsInt64() || idx.Int64() < 0 || idx.Int64() >= int64(len(b)*8) {
			return Value{}, fmt.Errorf("plutuscore: ReadBit index out of range")
		}
		i := idx.Int64()
		byteIdx := len(b) - 1 - int(i/8)
		bitIdx := uint(i % 8)
		return boolValue((b[byteIdx]>>bitIdx)&1 == 1), nil
	})
	t.set(WriteBits, 3, 0, func(m *Machine, a []Value) (Value, error) {
		b, err := bytesArg(a[0])
		if err != nil {
			return Value{}, err
		}
		if a[1].Kind != ValList {
			return Value{}, fmt.Errorf("plutuscore: WriteBits indices argument is not a list")
		}
		setTo, err := boolArg(a[2])
		if err != nil {
			return Value{}, err
		}
		out := append([]byte{}, b...)
		for _, iv := range a[1].Items {
			idx, err := intArg(iv)
			if err != nil {
				return Value{}, err
			}
			if !idx.IsInt64() || idx.Int64() < 0 || idx.Int64() >= int64(len(out)*8) {
				return Value{}, fmt.Errorf("plutuscore: WriteBits index out of range")
			}
			i := idx.Int64()
			byteIdx := len(out) - 1 - int(i/8)
			bitIdx := uint(i % 8)
			if setTo {
				out[byteIdx] |= 1 << bitIdx
			} else {
				out[byteIdx] &^= 1 << bitIdx
			}
		}
		return Value{Kind: ValByteString, Bytes: out}, nil
	})
	t.set(ReplicateByte, 2, 0, func(m *Machine, a []Value) (Value, error) {
		n, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		byteVal, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		if !n.IsInt64() || n.Int64() < 0 {
			return Value{}, fmt.Errorf("plutuscore: ReplicateByte negative length")
		}
		out := make([]byte, n.Int64())
		for i := range out {
			out[i] = byte(byteVal.Int64())
		}
		return Value{Kind: ValByteString, Bytes: out}, nil
	})
	t.set(ExpModInteger, 3, 0, func(m *Machine, a []Value) (Value, error) {
		base, err := intArg(a[0])
		if err != nil {
			return Value{}, err
		}
		exp, err := intArg(a[1])
		if err != nil {
			return Value{}, err
		}
		modulus, err := intArg(a[2])
		if err != nil {
			return Value{}, err
		}
		if modulus.Sign() <= 0 {
			return Value{}, fmt.Errorf("plutuscore: ExpModInteger non-positive modulus")
		}
		return Value{Kind: ValInteger, Integer: new(big.Int).Exp(base, exp, modulus)}, nil
	})
}

func bitwiseOp(f func(pad bool, x, y byte) byte) func(*Machine, []Value) (Value, error) {
	return func(m *Machine, a []Value) (Value, error) {
		shouldPad, err := boolArg(a[0])
		if err != nil {
			return Value{}, err
		}
		x, err := bytesArg(a[1])
		if err != nil {
			return Value{}, err
		}
		y, err := bytesArg(a[2])
		if err != nil {
			return Value{}, err
		}
		n := len(x)
		if shouldPad {
			if len(y) > n {
				n = len(y)
			}
		} else if len(y) < n {
			n = len(y)
		}
		out := make([]byte, n)
		for i := 0; i < n; i++ {
			var xb, yb byte
			if i < len(x) {
				xb = x[i]
			}
			if i < len(y) {
				yb = y[i]
			}
			out[i] = f(shouldPad, xb, yb)
		}
		return Value{Kind: ValByteString, Bytes: out}, nil
	}
}

func reverseInPlace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// serialiseData produces the CBOR encoding SerialiseData must return,
// using plutusdata.Encode, the package's canonical Data encoder (§4.4
// "canonical CBOR"), directly on the Data value.
func serialiseData(d plutusdata.Data) ([]byte, error) {
	return plutusdata.Encode(d), nil
}
