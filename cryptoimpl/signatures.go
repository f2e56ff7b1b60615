package cryptoimpl

import (
	"crypto/ed25519"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// VerifyEd25519 implements VerifyEd25519Signature: standard Ed25519
// verification over a 32-byte public key.
func VerifyEd25519(pubKey, message, signature []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), message, signature)
}

// VerifyEd25519Extended implements the bootstrap (Byron) extended-key
// verification used by VerifiedSignaturesInWitnesses for
// BootstrapWitness entries: identical Ed25519 verification, the
// "extended" distinction being the chain-code/address-attribute envelope
// around the key, not the signature algorithm itself.
func VerifyEd25519Extended(pubKey, message, signature []byte) bool {
	return VerifyEd25519(pubKey, message, signature)
}

// VerifyEcdsaSecp256k1 implements VerifyEcdsaSecp256k1Signature: ECDSA
// verification over the secp256k1 curve, message assumed to already be a
// 32-byte digest (as Plutus's builtin contract requires).
func VerifyEcdsaSecp256k1(pubKeyBytes, messageHash, sigBytes []byte) bool {
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false
	}
	return sig.Verify(messageHash, pubKey)
}

// VerifySchnorrSecp256k1 implements VerifySchnorrSecp256k1Signature
// (BIP-340 Schnorr signatures over secp256k1).
func VerifySchnorrSecp256k1(pubKeyBytes, message, sigBytes []byte) bool {
	pubKey, err := schnorr.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false
	}
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return false
	}
	return sig.Verify(message, pubKey)
}
