package primitives

// ScriptLanguage enumerates the four script dialects a transaction may
// reference.
type ScriptLanguage uint8

const (
	ScriptNative ScriptLanguage = iota
	ScriptPlutusV1
	ScriptPlutusV2
	ScriptPlutusV3
)

// NativeScript is the simple multi-sig/timelock script language. It is
// represented as a tagged tree rather than raw CBOR since NativeScripts
// validation (§4.2.1) evaluates it directly against (slot, signatories).
type NativeScript struct {
	Kind NativeScriptKind

	// KeyHash is set for NativeScriptSig.
	KeyHash Hash28

	// Scripts holds the child scripts for All/AnyOf/AtLeast.
	Scripts []NativeScript

	// Required is the threshold for NativeScriptAtLeast.
	Required int

	// Slot bounds for NativeScriptAfter/NativeScriptBefore.
	Slot uint64
}

type NativeScriptKind uint8

const (
	NativeScriptSig NativeScriptKind = iota
	NativeScriptAll
	NativeScriptAnyOf
	NativeScriptAtLeast
	NativeScriptAfter
	NativeScriptBefore
)

// Evaluate reports whether the script is satisfied at currentSlot given the
// set of verifying signatory key hashes (§4.2.1 "NativeScripts").
func (s NativeScript) Evaluate(currentSlot uint64, signatories map[Hash28]bool) bool {
	switch s.Kind {
	case NativeScriptSig:
		return signatories[s.KeyHash]
	case NativeScriptAll:
		for _, child := range s.Scripts {
			if !child.Evaluate(currentSlot, signatories) {
				return false
			}
		}
		return true
	case NativeScriptAnyOf:
		for _, child := range s.Scripts {
			if child.Evaluate(currentSlot, signatories) {
				return true
			}
		}
		return len(s.Scripts) == 0 && false
	case NativeScriptAtLeast:
		count := 0
		for _, child := range s.Scripts {
			if child.Evaluate(currentSlot, signatories) {
				count++
			}
		}
		return count >= s.Required
	case NativeScriptAfter:
		return currentSlot >= s.Slot
	case NativeScriptBefore:
		return currentSlot < s.Slot
	default:
		return false
	}
}

// PlutusScript is a compiled (already-flat-encoded) Plutus Core program,
// tagged with its language version for builtin/cost-model selection.
type PlutusScript struct {
	Language ScriptLanguage
	CBOR     []byte
	Hash     Hash28
}

// ScriptRef is the on-output reference-script payload (Babbage+), carrying
// either a NativeScript or a PlutusScript.
type ScriptRef struct {
	IsNative bool
	Native   *NativeScript
	Plutus   *PlutusScript
}
