package plutusdata

import "math/big"

// MinimalBigEndianBytes returns the minimal big-endian two's-complement-free
// magnitude encoding of an unsigned or non-negative integer, the
// representation Data.I integers use inside canonical encodings (§4.4
// "Integers are minimal big-endian byte representations inside Data.I").
// Plutus Data integers are signed arbitrary precision; the sign is carried
// by the CBOR bignum tag (2 positive, 3 negative) that Encode writes in
// cbor.go, so this helper only produces the magnitude.
func MinimalBigEndianBytes(d Data) []byte {
	if d.kind != KindInteger {
		return nil
	}
	abs := new(big.Int).Abs(d.integer)
	if abs.Sign() == 0 {
		return []byte{0}
	}
	return abs.Bytes()
}
