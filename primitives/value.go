package primitives

import "fmt"

// Value is (Coin, MultiAsset), mirroring apollo's Value.Value{Coin, Am,
// HasAssets} — collapsed here into a single always-present MultiAsset since
// Go zero values already make the "no assets" case free (an empty map).
type Value struct {
	Coin       Coin
	MultiAsset MultiAsset
}

// Add returns the componentwise sum of v and other (§3 "Addition is
// componentwise").
func (v Value) Add(other Value) (Value, error) {
	coin, err := v.Coin.Add(other.Coin)
	if err != nil {
		return Value{}, err
	}
	return Value{Coin: coin, MultiAsset: v.MultiAsset.Add(other.MultiAsset)}, nil
}

// Negate returns -v: the coin is negated without the "must stay
// non-negative" guard (used only internally for conservation-equation
// arithmetic, never as a standalone Coin).
func (v Value) Negate() Value {
	return Value{Coin: -v.Coin, MultiAsset: v.MultiAsset.Negate()}
}

// Sum adds a slice of Values left to right.
func Sum(values []Value) (Value, error) {
	total := Value{}
	for _, v := range values {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return Value{}, fmt.Errorf("primitives: summing values: %w", err)
		}
	}
	return total, nil
}

// Equal reports whether v and other represent the same value.
func (v Value) Equal(other Value) bool {
	return v.Coin == other.Coin && v.MultiAsset.Equal(other.MultiAsset)
}
