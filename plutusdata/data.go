// Package plutusdata implements the Plutus "Data" value: the tagged sum
// (Constr/Map/List/I/B) that every redeemer, datum, and script-context
// argument is encoded as. Grounded on apollo's serialization/PlutusData
// package, which represents the same sum as a Go struct with a
// discriminator field (apollo's PlutusData.PlutusData{PlutusDataType,
// TagNr, Value, ...}); this package likewise uses one struct with a Kind
// discriminator, but keeps its fields private so only the constructors
// below can build a value.
package plutusdata

import (
	"math/big"
	"sort"
)

// Kind discriminates the five Data variants (§3, §4.3.2 "Data (the tagged
// sum Constr/List/Map/I/B)").
type Kind uint8

const (
	KindConstr Kind = iota
	KindMap
	KindList
	KindInteger
	KindBytes
)

// Data is an immutable Plutus Core Data value (§5 "Script terms and Data
// values are immutable once constructed").
type Data struct {
	kind    Kind
	tag     uint64
	fields  []Data
	pairs   []Pair
	integer *big.Int
	bytes   []byte
}

// Pair is a single Data-to-Data map entry.
type Pair struct {
	Key   Data
	Value Data
}

// Constr builds a Data.Constr(tag, fields) value.
func Constr(tag uint64, fields ...Data) Data {
	return Data{kind: KindConstr, tag: tag, fields: append([]Data{}, fields...)}
}

// List builds a Data.List value.
func List(items ...Data) Data {
	return Data{kind: KindList, fields: append([]Data{}, items...)}
}

// MapOf builds a Data.Map value from pairs, in insertion order; callers
// needing canonical order should pass CanonicalPairs(pairs) (defined
// below).
func MapOf(pairs ...Pair) Data {
	return Data{kind: KindMap, pairs: append([]Pair{}, pairs...)}
}

// Int builds a Data.I value.
func Int(v int64) Data { return Data{kind: KindInteger, integer: big.NewInt(v)} }

// BigInt builds a Data.I value from an arbitrary-precision integer.
func BigInt(v *big.Int) Data { return Data{kind: KindInteger, integer: new(big.Int).Set(v)} }

// Bytes builds a Data.B value.
func Bytes(b []byte) Data { return Data{kind: KindBytes, bytes: append([]byte{}, b...)} }

// Kind reports which variant d holds.
func (d Data) Kind() Kind { return d.kind }

// Tag returns the constructor tag; valid only when Kind() == KindConstr.
func (d Data) Tag() uint64 { return d.tag }

// Fields returns the Constr fields or List items.
func (d Data) Fields() []Data { return d.fields }

// Pairs returns the Map entries.
func (d Data) Pairs() []Pair { return d.pairs }

// Int returns the wrapped integer; valid only when Kind() == KindInteger.
func (d Data) Int() *big.Int { return d.integer }

// Bytes returns the wrapped bytes; valid only when Kind() == KindBytes.
func (d Data) Bytes() []byte { return d.bytes }

// Equal reports deep structural equality.
func (d Data) Equal(other Data) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case KindConstr:
		if d.tag != other.tag || len(d.fields) != len(other.fields) {
			return false
		}
		for i := range d.fields {
			if !d.fields[i].Equal(other.fields[i]) {
				return false
			}
		}
		return true
	case KindList:
		if len(d.fields) != len(other.fields) {
			return false
		}
		for i := range d.fields {
			if !d.fields[i].Equal(other.fields[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(d.pairs) != len(other.pairs) {
			return false
		}
		a, b := CanonicalPairs(d.pairs), CanonicalPairs(other.pairs)
		for i := range a {
			if !a[i].Key.Equal(b[i].Key) || !a[i].Value.Equal(b[i].Value) {
				return false
			}
		}
		return true
	case KindInteger:
		return d.integer.Cmp(other.integer) == 0
	case KindBytes:
		if len(d.bytes) != len(other.bytes) {
			return false
		}
		for i := range d.bytes {
			if d.bytes[i] != other.bytes[i] {
				return false
			}
		}
		return true
	}
	return false
}

// CanonicalPairs sorts Map pairs by the Compare order of their keys (not
// by their serialized bytes), for §4.4 "Maps are represented as lists of
// pairs in lexicographically sorted key order."
func CanonicalPairs(pairs []Pair) []Pair {
	out := append([]Pair{}, pairs...)
	sort.Slice(out, func(i, j int) bool {
		return Compare(out[i].Key, out[j].Key) < 0
	})
	return out
}

// Compare imposes the canonical total order over Data values used to sort
// Map keys and Set-like Lists: by kind tag first (Constr < Map < List <
// Integer < Bytes, the Kind constant order, for a stable,
// arbitrary-but-fixed cross-kind order), then by value.
func Compare(a, b Data) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindInteger:
		return a.integer.Cmp(b.integer)
	case KindBytes:
		n := len(a.bytes)
		if len(b.bytes) < n {
			n = len(b.bytes)
		}
		for i := 0; i < n; i++ {
			if a.bytes[i] != b.bytes[i] {
				if a.bytes[i] < b.bytes[i] {
					return -1
				}
				return 1
			}
		}
		return len(a.bytes) - len(b.bytes)
	case KindList:
		n := len(a.fields)
		if len(b.fields) < n {
			n = len(b.fields)
		}
		for i := 0; i < n; i++ {
			if c := Compare(a.fields[i], b.fields[i]); c != 0 {
				return c
			}
		}
		return len(a.fields) - len(b.fields)
	case KindMap:
		ap, bp := CanonicalPairs(a.pairs), CanonicalPairs(b.pairs)
		n := len(ap)
		if len(bp) < n {
			n = len(bp)
		}
		for i := 0; i < n; i++ {
			if c := Compare(ap[i].Key, bp[i].Key); c != 0 {
				return c
			}
			if c := Compare(ap[i].Value, bp[i].Value); c != 0 {
				return c
			}
		}
		return len(ap) - len(bp)
	case KindConstr:
		if a.tag != b.tag {
			if a.tag < b.tag {
				return -1
			}
			return 1
		}
		n := len(a.fields)
		if len(b.fields) < n {
			n = len(b.fields)
		}
		for i := 0; i < n; i++ {
			if c := Compare(a.fields[i], b.fields[i]); c != 0 {
				return c
			}
		}
		return len(a.fields) - len(b.fields)
	}
	return 0
}
