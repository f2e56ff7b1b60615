package plutuscore

import (
	"fmt"

	"github.com/zenGate-Global/cardano-ledger-core/ledgerstate"
	"github.com/zenGate-Global/cardano-ledger-core/primitives"
)

// StepKind names the nine CEK transition categories §4.3.3 charges a
// fixed per-step cost against (§4.3.3 "Cost accounting"). "Builtin" is
// charged its fixed step cost when a Builtin term is computed; saturated
// builtin calls are not charged any further, argument-size-dependent
// cost.
type StepKind uint8

const (
	StepConstant StepKind = iota
	StepVar
	StepLambda
	StepApply
	StepDelay
	StepForce
	StepConstr
	StepCase
	StepBuiltin
)

// BudgetSpender is the hard deadline every interpreter step and builtin
// call spends against (§5 "Budget is a hard deadline: every interpreter
// step and every builtin call calls BudgetSpender.spend(category, cost)
// which must fail once cumulative spend exceeds the initial budget").
type BudgetSpender struct {
	remaining primitives.ExUnits
	spent     primitives.ExUnits
	stepCosts [9]primitives.ExUnits
}

// NewBudgetSpender seeds a spender with the initial budget and the
// per-step-kind constant costs drawn from the language version's cost
// model (the "machine costs" sub-table of CostModel.Params).
func NewBudgetSpender(initial primitives.ExUnits, stepCosts [9]primitives.ExUnits) *BudgetSpender {
	return &BudgetSpender{remaining: initial, stepCosts: stepCosts}
}

// ErrBudgetExhausted is returned once cumulative spend would exceed the
// initial budget (§4.3.3 "Budget exhaustion is a hard failure").
type ErrBudgetExhausted struct {
	Attempted primitives.ExUnits
	Remaining primitives.ExUnits
}

func (e *ErrBudgetExhausted) Error() string {
	return fmt.Sprintf("plutuscore: budget exhausted: attempted %+v, remaining %+v", e.Attempted, e.Remaining)
}

// Spend charges cost against the remaining budget, failing *before*
// recording the spend if it would go negative (§5 "a step that would
// produce negative budget aborts before the step's effect", §8 invariant
// 7 "Budget monotonicity").
func (b *BudgetSpender) Spend(cost primitives.ExUnits) error {
	if cost.Memory > b.remaining.Memory || cost.Steps > b.remaining.Steps {
		return &ErrBudgetExhausted{Attempted: cost, Remaining: b.remaining}
	}
	b.remaining.Memory -= cost.Memory
	b.remaining.Steps -= cost.Steps
	b.spent.Memory += cost.Memory
	b.spent.Steps += cost.Steps
	return nil
}

// SpendStep charges the fixed per-transition cost for kind.
func (b *BudgetSpender) SpendStep(kind StepKind) error {
	return b.Spend(b.stepCosts[kind])
}

// Spent returns the cumulative ExUnits spent so far — the measured cost
// §4.3.4 step 6 records as the redeemer's result, including on a partial
// (budget-exhausted) run (§8 scenario 5 "redeemer reports the partial
// ExUnits").
func (b *BudgetSpender) Spent() primitives.ExUnits { return b.spent }

// Remaining returns the unspent budget.
func (b *BudgetSpender) Remaining() primitives.ExUnits { return b.remaining }

// StepCostsFromModel extracts the nine machine-step constant costs from a
// language's CostModel. The exact parameter layout is part of the
// (out-of-scope, §1) cost-model table contents; this implementation reads
// the first nine parameter pairs (cpu, mem) by convention, matching the
// documented plutus-core cost-model parameter ordering
// (cekVarCost, cekConstCost, cekLamCost, cekDelayCost, cekForceCost,
// cekApplyCost, cekBuiltinCost, cekConstrCost, cekCaseCost — each an
// (exBudgetCPU, exBudgetMemory) pair).
func StepCostsFromModel(m ledgerstate.CostModel) [9]primitives.ExUnits {
	var out [9]primitives.ExUnits
	order := [9]StepKind{StepVar, StepConstant, StepLambda, StepDelay, StepForce, StepApply, StepBuiltin, StepConstr, StepCase}
	for i, kind := range order {
		base := i * 2
		var mem, steps int64
		if base+1 < len(m.Params) {
			steps = m.Params[base]
			mem = m.Params[base+1]
		}
		out[kind] = primitives.ExUnits{Memory: mem, Steps: steps}
	}
	return out
}
