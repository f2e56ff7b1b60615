// Package cryptoimpl provides the concrete cryptographic-primitive
// implementations §6 lists as external collaborators (BLAKE2b-256/224,
// Ed25519, Ed25519-extended, secp256k1 ECDSA/Schnorr, SHA2-256, SHA3-256,
// RIPEMD-160, Keccak-256, BLS12-381). The rules engine and the Plutus
// builtin table depend on these via plain functions rather than an
// interface, matching the teacher's own style of calling straight into a
// well-known library (cf. maestro/maestro.go calling straight into
// client.NewClient rather than behind an extra abstraction layer) — the
// external-collaborator seam the spec describes is the package boundary
// itself, not a runtime-swappable interface.
package cryptoimpl

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // spec-mandated builtin, no replacement in the pack
	"golang.org/x/crypto/sha3"
)

// Blake2b256 computes the 32-byte BLAKE2b digest used for the script-data
// hash (§4.5), policy IDs, and script hashes.
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Blake2b224 computes the 28-byte BLAKE2b digest used for key hashes,
// script hashes, and pool IDs.
func Blake2b224(data []byte) [28]byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		panic(err) // unreachable: 28 is a valid blake2b digest size
	}
	h.Write(data)
	var out [28]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sha2_256 implements the Sha2_256 builtin.
func Sha2_256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Sha3_256 implements the Sha3_256 builtin.
func Sha3_256(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// Keccak_256 implements the Keccak_256 builtin (legacy Keccak, not
// NIST SHA3).
func Keccak_256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Ripemd_160 implements the Ripemd_160 builtin.
func Ripemd_160(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}
