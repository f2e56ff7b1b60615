package plutusdata

import (
	"math/big"
	"testing"

	"github.com/tj/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Data{
		Int(0),
		Int(-1),
		Int(1234567),
		BigInt(new(big.Int).Lsh(big.NewInt(1), 200)),
		BigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 200))),
		Bytes([]byte{}),
		Bytes([]byte{0xde, 0xad, 0xbe, 0xef}),
		List(Int(1), Int(2), Bytes([]byte("hi"))),
		MapOf(Pair{Key: Int(2), Value: Bytes([]byte("b"))}, Pair{Key: Int(1), Value: Bytes([]byte("a"))}),
		Constr(0, Int(1), Bytes([]byte{0x01})),
		Constr(6, Int(1)),  // boundary of the compact 121-127 range
		Constr(7, Int(1)),  // first extended-range tag
		Constr(127, Int(1)), // last extended-range tag
		Constr(128, Int(1)), // falls through to the general tag-102 form
		Constr(1, Constr(0, Int(1)), List(Constr(0, Int(2)), Constr(0, Int(3)))),
	}

	for _, d := range cases {
		encoded := Encode(d)
		decoded, ok := Decode(encoded)
		assert.True(t, ok, "Decode should succeed for %+v", d)
		assert.True(t, d.Equal(decoded), "round-tripped value should equal original")
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, ok := Decode([]byte{})
	assert.False(t, ok)

	_, ok = Decode([]byte{0x42, 0xff}) // bytestring header claims 2 bytes, only 1 present
	assert.False(t, ok)

	_, ok = Decode(append(Encode(Int(1)), 0x00)) // trailing garbage after a complete value
	assert.False(t, ok)
}

func TestCanonicalMapKeyOrdering(t *testing.T) {
	m := MapOf(
		Pair{Key: Bytes([]byte("z")), Value: Int(1)},
		Pair{Key: Bytes([]byte("a")), Value: Int(2)},
		Pair{Key: Bytes([]byte("m")), Value: Int(3)},
	)
	encoded := Encode(m)
	decoded, ok := Decode(encoded)
	assert.True(t, ok)

	pairs := decoded.Pairs()
	assert.Equal(t, 3, len(pairs))
	assert.True(t, pairs[0].Key.Equal(Bytes([]byte("a"))))
	assert.True(t, pairs[1].Key.Equal(Bytes([]byte("m"))))
	assert.True(t, pairs[2].Key.Equal(Bytes([]byte("z"))))
}

func TestCompareOrdersAcrossKinds(t *testing.T) {
	assert.True(t, Compare(Int(1), Int(2)) < 0)
	assert.True(t, Compare(Bytes([]byte{1}), Bytes([]byte{1, 2})) < 0)
	assert.True(t, Compare(Int(0), Bytes([]byte{0})) != 0)

	unsorted := []Pair{
		{Key: Int(3), Value: Int(0)},
		{Key: Int(1), Value: Int(0)},
		{Key: Int(2), Value: Int(0)},
	}
	sorted := CanonicalPairs(unsorted)
	assert.Equal(t, int64(1), sorted[0].Key.Int().Int64())
	assert.Equal(t, int64(2), sorted[1].Key.Int().Int64())
	assert.Equal(t, int64(3), sorted[2].Key.Int().Int64())
}
