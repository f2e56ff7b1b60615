package plutuscore

import "fmt"

// applyResult is either an already-reduced value (a builtin accumulator
// that fired or is still partially applied) or a deferred Compute(term,
// env) pair for the caller to resume with (entering a closure body or a
// forced thunk). Exactly one of the two is populated.
type applyResult struct {
	value       Value
	deferred    *Term
	deferredEnv *Env
}

// apply implements Compute-side function application for both shapes
// §4.3.2 allows in function position: a Closure (ordinary lambda) and a
// builtin accumulator (a partially-applied builtin awaiting its final
// argument, §4.3.3 "Builtin application").
func (m *Machine) apply(fun Value, arg Value) (applyResult, error) {
	switch fun.Kind {
	case ValClosure:
		return applyResult{deferred: fun.Body, deferredEnv: fun.Env.Extend(arg)}, nil

	case ValBuiltinAcc:
		if fun.ForcesLeft > 0 {
			return applyResult{}, fmt.Errorf("plutuscore: builtin %d applied to a term argument while %d type force(s) still pending", fun.AccId, fun.ForcesLeft)
		}
		spec := m.table.Spec(fun.AccId)
		args := append(append([]Value{}, fun.AccArgs...), arg)
		if len(args) < spec.Arity {
			return applyResult{value: Value{Kind: ValBuiltinAcc, AccId: fun.AccId, AccArgs: args}}, nil
		}
		if len(args) > spec.Arity {
			return applyResult{}, fmt.Errorf("plutuscore: builtin %d over-applied: arity %d, got %d args", fun.AccId, spec.Arity, len(args))
		}
		result, err := spec.Apply(m, args)
		if err != nil {
			return applyResult{}, err
		}
		return applyResult{value: result}, nil

	default:
		return applyResult{}, fmt.Errorf("plutuscore: Apply to non-function value (kind %d)", fun.Kind)
	}
}

// force implements the Force side of a builtin accumulator awaiting a type
// force (polymorphic builtins like ChooseList consume Force nodes before
// they consume term arguments, §4.3.3).
func (m *Machine) force(v Value) (applyResult, error) {
	if v.Kind != ValThunk {
		if v.Kind == ValBuiltinAcc && v.ForcesLeft > 0 {
			reduced := v
			reduced.ForcesLeft--
			spec := m.table.Spec(v.AccId)
			if reduced.ForcesLeft == 0 && len(reduced.AccArgs) == spec.Arity {
				result, err := spec.Apply(m, reduced.AccArgs)
				if err != nil {
					return applyResult{}, err
				}
				return applyResult{value: result}, nil
			}
			return applyResult{value: reduced}, nil
		}
		return applyResult{}, fmt.Errorf("plutuscore: Force applied to non-thunk, non-deferred value (kind %d)", v.Kind)
	}
	return applyResult{deferred: v.Thunk, deferredEnv: v.Env}, nil
}
