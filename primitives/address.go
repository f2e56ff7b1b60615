package primitives

// CredentialKind distinguishes a key-hash credential from a script-hash
// credential, used for both payment and stake credentials.
type CredentialKind uint8

const (
	CredentialKeyHash CredentialKind = iota
	CredentialScriptHash
)

// Credential is a payment or stake credential: a 28-byte hash tagged with
// whether it names a verification key or a script.
type Credential struct {
	Kind CredentialKind
	Hash Hash28
}

// IsScript reports whether the credential is script-locked.
func (c Credential) IsScript() bool { return c.Kind == CredentialScriptHash }

// StakePointer is a certificate pointer (slot, txIndex, certIndex), encoded
// in script contexts as a three-integer Data.Constr (§4.4).
type StakePointer struct {
	Slot          uint64
	TransactionIx uint64
	CertIx        uint64
}

// AddressKind enumerates the address shapes the rules engine must
// recognize: base (payment+stake), pointer, enterprise (payment only),
// reward (stake only), and the legacy Byron bootstrap form.
type AddressKind uint8

const (
	AddressBase AddressKind = iota
	AddressPointer
	AddressEnterprise
	AddressReward
	AddressByron
)

// Address is the decoded form of a Shelley/Byron/Reward address. Decoding
// from Bech32/Base58 is the CBOR/address-codec collaborator's job (§1
// out-of-scope "CBOR decoding of the binary transaction format"); the core
// only ever consumes already-decoded Address values, exactly as apollo's
// Address.DecodeAddress returns a structured Address.Address that every
// teacher adapter treats as opaque after construction.
type Address struct {
	Kind    AddressKind
	Network NetworkId

	// Payment is set for Base/Pointer/Enterprise addresses.
	Payment Credential

	// Stake is set for Base addresses (delegation credential).
	Stake *Credential

	// Pointer is set for Pointer addresses.
	Pointer *StakePointer

	// Reward is set for Reward addresses (the stake credential itself).
	Reward *Credential

	// ByronAttributes carries the raw Byron attribute bytes
	// (derivation path + unknown attributes), whose combined size
	// OutputBootAddrAttrsSize bounds at 64 bytes excluding network magic.
	ByronAttributes []byte
	ByronRoot       Hash28
}

// HasScriptPaymentCredential reports whether the address's payment part is
// script-locked (used by FeesOk rule 2: collateral must be key-hash-only).
func (a Address) HasScriptPaymentCredential() bool {
	return (a.Kind == AddressBase || a.Kind == AddressPointer || a.Kind == AddressEnterprise) &&
		a.Payment.IsScript()
}

// NoStakeConstrTag is the Data.Constr tag used for "no stake" in script
// contexts (§4.4: "no stake" is Data.Constr 1 with no fields).
const NoStakeConstrTag = 1

// StakePointerConstrTag is the Data.Constr tag used to encode a stake
// pointer as three integers (§4.4).
const StakePointerConstrTag = 1
