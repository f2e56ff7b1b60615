package plutusdata

import (
	"bytes"
	"errors"
	"math/big"
)

// ErrMalformed is returned by Decode when the input bytes are not a
// well-formed canonical-CBOR Plutus Data encoding.
var ErrMalformed = errors.New("plutusdata: malformed CBOR Data encoding")

// Encode produces the canonical CBOR encoding of d, following the Cardano
// ledger's Plutus Data CBOR contract: constructors use the compact tag
// range 121-127 for small tags, the extended range 1280-1400 for tags
// 7-127, and the general (tag 102, [tag, fields]) form beyond that; maps
// are encoded with keys in the canonical order CanonicalPairs imposes;
// integers outside the int64 range use the big-num tags (2 positive, 3 negative) over a minimal big-endian
// payload (encode.go's MinimalBigEndianBytes). This is the representation
// the SerialiseData builtin and the script-data hash (§4.4, §4.5) both
// require to be deterministic across implementations.
func Encode(d Data) []byte {
	var buf bytes.Buffer
	encodeInto(&buf, d)
	return buf.Bytes()
}

func encodeInto(buf *bytes.Buffer, d Data) {
	switch d.kind {
	case KindInteger:
		encodeBigInt(buf, d.integer)
	case KindBytes:
		encodeBytes(buf, d.bytes)
	case KindList:
		encodeHeader(buf, 4, uint64(len(d.fields)))
		for _, f := range d.fields {
			encodeInto(buf, f)
		}
	case KindMap:
		pairs := CanonicalPairs(d.pairs)
		encodeHeader(buf, 5, uint64(len(pairs)))
		for _, p := range pairs {
			encodeInto(buf, p.Key)
			encodeInto(buf, p.Value)
		}
	case KindConstr:
		encodeConstr(buf, d)
	}
}

// Decode parses the canonical CBOR encoding Encode produces back into a
// Data value, for recovering a witnessed datum preimage (§4.2.1 "Datums")
// or a redeemer's raw bytes. Reports ok=false on any malformed input
// rather than panicking, since the bytes originate outside the core
// (witness-set preimages, a CBOR-codec collaborator's output).
func Decode(raw []byte) (Data, bool) {
	d, rest, err := decodeOne(raw)
	if err != nil || len(rest) != 0 {
		return Data{}, false
	}
	return d, true
}

func decodeOne(b []byte) (Data, []byte, error) {
	if len(b) == 0 {
		return Data{}, nil, ErrMalformed
	}
	major := b[0] >> 5
	switch major {
	case 0: // unsigned int
		n, rest, err := decodeHeaderArg(b)
		if err != nil {
			return Data{}, nil, err
		}
		return Int(int64(n)), rest, nil
	case 1: // negative int
		n, rest, err := decodeHeaderArg(b)
		if err != nil {
			return Data{}, nil, err
		}
		return BigInt(new(big.Int).Sub(big.NewInt(-1), new(big.Int).SetUint64(n))), rest, nil
	case 2: // bytestring
		n, rest, err := decodeHeaderArg(b)
		if err != nil {
			return Data{}, nil, err
		}
		if uint64(len(rest)) < n {
			return Data{}, nil, ErrMalformed
		}
		return Bytes(rest[:n]), rest[n:], nil
	case 4: // array
		n, rest, err := decodeHeaderArg(b)
		if err != nil {
			return Data{}, nil, err
		}
		items := make([]Data, 0, n)
		for i := uint64(0); i < n; i++ {
			var item Data
			item, rest, err = decodeOne(rest)
			if err != nil {
				return Data{}, nil, err
			}
			items = append(items, item)
		}
		return List(items...), rest, nil
	case 5: // map
		n, rest, err := decodeHeaderArg(b)
		if err != nil {
			return Data{}, nil, err
		}
		pairs := make([]Pair, 0, n)
		for i := uint64(0); i < n; i++ {
			var key, val Data
			key, rest, err = decodeOne(rest)
			if err != nil {
				return Data{}, nil, err
			}
			val, rest, err = decodeOne(rest)
			if err != nil {
				return Data{}, nil, err
			}
			pairs = append(pairs, Pair{Key: key, Value: val})
		}
		return MapOf(pairs...), rest, nil
	case 6: // tag
		tag, rest, err := decodeHeaderArg(b)
		if err != nil {
			return Data{}, nil, err
		}
		return decodeTagged(tag, rest)
	}
	return Data{}, nil, ErrMalformed
}

func decodeTagged(tag uint64, rest []byte) (Data, []byte, error) {
	switch {
	case tag == 2 || tag == 3:
		inner, rest, err := decodeOne(rest)
		if err != nil || inner.Kind() != KindBytes {
			return Data{}, nil, ErrMalformed
		}
		mag := new(big.Int).SetBytes(inner.Bytes())
		if tag == 3 {
			mag = new(big.Int).Sub(new(big.Int).Neg(mag), big.NewInt(1))
		}
		return BigInt(mag), rest, nil
	case tag >= 121 && tag <= 127:
		return decodeConstrFields(tag-121, rest)
	case tag >= 1280 && tag <= 1400:
		return decodeConstrFields(tag-1280+7, rest)
	case tag == 102:
		inner, rest, err := decodeOne(rest)
		if err != nil || inner.Kind() != KindList || len(inner.Fields()) != 2 {
			return Data{}, nil, ErrMalformed
		}
		tagField, fieldsField := inner.Fields()[0], inner.Fields()[1]
		if tagField.Kind() != KindInteger || fieldsField.Kind() != KindList {
			return Data{}, nil, ErrMalformed
		}
		return Constr(tagField.Int().Uint64(), fieldsField.Fields()...), rest, nil
	}
	return Data{}, nil, ErrMalformed
}

func decodeConstrFields(tag uint64, b []byte) (Data, []byte, error) {
	n, rest, err := decodeHeaderArg(b)
	if err != nil {
		return Data{}, nil, err
	}
	fields := make([]Data, 0, n)
	for i := uint64(0); i < n; i++ {
		var f Data
		f, rest, err = decodeOne(rest)
		if err != nil {
			return Data{}, nil, err
		}
		fields = append(fields, f)
	}
	return Constr(tag, fields...), rest, nil
}

// decodeHeaderArg reads a CBOR major-type/argument header and returns the
// argument value plus the remaining bytes after it.
func decodeHeaderArg(b []byte) (uint64, []byte, error) {
	if len(b) == 0 {
		return 0, nil, ErrMalformed
	}
	first := b[0]
	low := first & 0x1f
	rest := b[1:]
	switch {
	case low < 24:
		return uint64(low), rest, nil
	case low == 24:
		if len(rest) < 1 {
			return 0, nil, ErrMalformed
		}
		return uint64(rest[0]), rest[1:], nil
	case low == 25:
		if len(rest) < 2 {
			return 0, nil, ErrMalformed
		}
		return uint64(rest[0])<<8 | uint64(rest[1]), rest[2:], nil
	case low == 26:
		if len(rest) < 4 {
			return 0, nil, ErrMalformed
		}
		var n uint64
		for i := 0; i < 4; i++ {
			n = n<<8 | uint64(rest[i])
		}
		return n, rest[4:], nil
	case low == 27:
		if len(rest) < 8 {
			return 0, nil, ErrMalformed
		}
		var n uint64
		for i := 0; i < 8; i++ {
			n = n<<8 | uint64(rest[i])
		}
		return n, rest[8:], nil
	}
	return 0, nil, ErrMalformed
}

func encodeConstr(buf *bytes.Buffer, d Data) {
	switch {
	case d.tag < 7:
		encodeTag(buf, 121+d.tag)
	case d.tag < 128:
		encodeTag(buf, 1280+(d.tag-7))
	default:
		encodeTag(buf, 102)
		encodeHeader(buf, 4, 2)
		encodeBigInt(buf, new(big.Int).SetUint64(d.tag))
	}
	encodeHeader(buf, 4, uint64(len(d.fields)))
	for _, f := range d.fields {
		encodeInto(buf, f)
	}
}

func encodeBigInt(buf *bytes.Buffer, n *big.Int) {
	if n.IsInt64() {
		v := n.Int64()
		if v >= 0 {
			encodeHeader(buf, 0, uint64(v))
		} else {
			encodeHeader(buf, 1, uint64(-v-1))
		}
		return
	}
	if n.Sign() >= 0 {
		encodeTag(buf, 2)
		encodeBytes(buf, MinimalBigEndianBytes(BigInt(n)))
	} else {
		encodeTag(buf, 3)
		mag := new(big.Int).Neg(n)
		mag.Sub(mag, big.NewInt(1))
		encodeBytes(buf, MinimalBigEndianBytes(BigInt(mag)))
	}
}

func encodeBytes(buf *bytes.Buffer, b []byte) {
	encodeHeader(buf, 2, uint64(len(b)))
	buf.Write(b)
}

// encodeTag writes a CBOR tag (major type 6) header for the given tag
// number.
func encodeTag(buf *bytes.Buffer, tag uint64) {
	encodeHeader(buf, 6, tag)
}

// encodeHeader writes a CBOR major-type/argument header using the minimal
// encoding canonical CBOR requires (§4.4).
func encodeHeader(buf *bytes.Buffer, major byte, n uint64) {
	first := major << 5
	switch {
	case n < 24:
		buf.WriteByte(first | byte(n))
	case n <= 0xff:
		buf.WriteByte(first | 24)
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(first | 25)
		buf.WriteByte(byte(n >> 8))
		buf.WriteByte(byte(n))
	case n <= 0xffffffff:
		buf.WriteByte(first | 26)
		for i := 3; i >= 0; i-- {
			buf.WriteByte(byte(n >> (8 * uint(i))))
		}
	default:
		buf.WriteByte(first | 27)
		for i := 7; i >= 0; i-- {
			buf.WriteByte(byte(n >> (8 * uint(i))))
		}
	}
}
