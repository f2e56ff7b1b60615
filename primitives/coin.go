// Package primitives implements the leaf data types of the Cardano ledger
// core: Coin, MultiAsset, Value, ExUnits, hash types, Address, Script and
// DatumOption. These mirror the shapes exposed by Salvionied/apollo's
// serialization/* packages (TransactionInput, Value, MultiAsset, Asset,
// AssetName, Policy, Address) but are redefined here so the rules engine
// owns its own overflow- and canonical-ordering semantics (§3, §5).
package primitives

import "fmt"

// Coin is a non-negative quantity of lovelace. The zero value is zero ADA.
type Coin int64

// Add returns c+other, erroring on overflow or on a negative result.
// Coin additions never saturate; they fail loudly (§3 "addition saturates
// only by erroring on overflow").
func (c Coin) Add(other Coin) (Coin, error) {
	sum := c + other
	if (other > 0 && sum < c) || (other < 0 && sum > c) {
		return 0, fmt.Errorf("primitives: coin overflow adding %d to %d", other, c)
	}
	if sum < 0 {
		return 0, fmt.Errorf("primitives: coin addition produced negative value %d", sum)
	}
	return sum, nil
}

// Sub returns c-other, erroring if the result would be negative.
func (c Coin) Sub(other Coin) (Coin, error) {
	diff := c - other
	if diff < 0 {
		return 0, fmt.Errorf("primitives: coin subtraction underflow: %d - %d", c, other)
	}
	return diff, nil
}

// IsZero reports whether c is exactly zero.
func (c Coin) IsZero() bool { return c == 0 }
