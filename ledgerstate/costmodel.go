package ledgerstate

import "github.com/zenGate-Global/cardano-ledger-core/primitives"

// CostModels holds one parameter table per Plutus language version, the
// "cost models per language version" §2 lists and the table the
// script-data hash's "restricted cost-model subset" (§4.5) is drawn from.
// Concrete numeric values are supplied by the caller (§1: "cost-model
// table contents" is out of scope); only the shape is specified here.
type CostModels struct {
	V1 CostModel
	V2 CostModel
	V3 CostModel
}

// CostModel is an ordered parameter vector, exactly as it appears on-chain
// (a flat list of integers indexed by a fixed per-version schema). The
// rules engine treats it opaquely except for picking out the machine-step
// costs via plutuscore.StepCostsFromModel.
type CostModel struct {
	Params []int64
}

// Restrict returns the subset of v used-language-versions actually present
// in a transaction, in protocol-defined version order (1,2,3), for the
// script-data hash computation (§4.5 "restrictedCostModels contains only
// the language versions actually used").
func (c CostModels) Restrict(usesV1, usesV2, usesV3 bool) []LanguageCostModel {
	var out []LanguageCostModel
	if usesV1 {
		out = append(out, LanguageCostModel{Language: primitives.ScriptPlutusV1, Model: c.V1})
	}
	if usesV2 {
		out = append(out, LanguageCostModel{Language: primitives.ScriptPlutusV2, Model: c.V2})
	}
	if usesV3 {
		out = append(out, LanguageCostModel{Language: primitives.ScriptPlutusV3, Model: c.V3})
	}
	return out
}

// LanguageCostModel pairs a language tag with its parameter vector, the
// unit the restricted-cost-model-subset encoding iterates over.
type LanguageCostModel struct {
	Language primitives.ScriptLanguage
	Model    CostModel
}

// For returns the CostModel for the given language.
func (c CostModels) For(lang primitives.ScriptLanguage) CostModel {
	switch lang {
	case primitives.ScriptPlutusV1:
		return c.V1
	case primitives.ScriptPlutusV2:
		return c.V2
	default:
		return c.V3
	}
}
