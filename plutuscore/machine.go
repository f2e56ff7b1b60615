package plutuscore

import (
	"errors"
	"fmt"
)

// machineState discriminates the two CEK states §4.3.3 describes:
// Compute(term, env) and Return(value).
type machineState uint8

const (
	stateCompute machineState = iota
	stateReturn
)

// ErrExplicitError is returned when the script evaluates an Error term
// (§4.3.3 "Compute(Error, _) -> abort with failure"). A failing builtin
// aborts the run with its own error instead.
var ErrExplicitError = errors.New("plutuscore: explicit Error term")

// Machine is a single CEK evaluation run. It is not safe for concurrent
// use (§5 "Scheduling": validation of a single transaction is
// single-threaded and synchronous) but two Machines never share mutable
// state, so running many in parallel across disjoint transactions is safe
// (§5 "Parallelism").
type Machine struct {
	budget  *BudgetSpender
	stack   frameStack
	table   *BuiltinTable
}

// NewMachine constructs a Machine with a fresh frame stack.
func NewMachine(budget *BudgetSpender, table *BuiltinTable) *Machine {
	return &Machine{budget: budget, table: table}
}

// Run evaluates term in env to completion, returning its final Value or
// the first error encountered (explicit Error, budget exhaustion, a stuck
// machine state indicating a malformed term).
func (m *Machine) Run(term *Term, env *Env) (Value, error) {
	state := stateCompute
	var computeTerm *Term = term
	var computeEnv *Env = env
	var returnValue Value

	for {
		var err error
		switch state {
		case stateCompute:
			returnValue, state, computeTerm, computeEnv, err = m.compute(computeTerm, computeEnv)
		case stateReturn:
			var done bool
			returnValue, state, computeTerm, computeEnv, done, err = m.ret(returnValue)
			if done {
				return returnValue, err
			}
		}
		if err != nil {
			return Value{}, err
		}
	}
}

// compute implements every Compute(term, env) transition of §4.3.3.
func (m *Machine) compute(term *Term, env *Env) (Value, machineState, *Term, *Env, error) {
	switch term.Kind {
	case TermVar:
		if err := m.budget.SpendStep(StepVar); err != nil {
			return Value{}, 0, nil, nil, err
		}
		v, ok := env.Lookup(term.DeBruijn)
		if !ok {
			return Value{}, 0, nil, nil, fmt.Errorf("plutuscore: unbound variable index %d", term.DeBruijn)
		}
		return v, stateReturn, nil, nil, nil

	case TermLamAbs:
		if err := m.budget.SpendStep(StepLambda); err != nil {
			return Value{}, 0, nil, nil, err
		}
		return Value{Kind: ValClosure, Env: env, Body: term.Body}, stateReturn, nil, nil, nil

	case TermApply:
		if err := m.budget.SpendStep(StepApply); err != nil {
			return Value{}, 0, nil, nil, err
		}
		m.stack.push(Frame{Kind: FrameApplyArg, Env: env, Arg: term.Arg})
		return Value{}, stateCompute, term.Fun, env, nil

	case TermForce:
		if err := m.budget.SpendStep(StepForce); err != nil {
			return Value{}, 0, nil, nil, err
		}
		m.stack.push(Frame{Kind: FrameForce})
		return Value{}, stateCompute, term.Inner, env, nil

	case TermDelay:
		if err := m.budget.SpendStep(StepDelay); err != nil {
			return Value{}, 0, nil, nil, err
		}
		return Value{Kind: ValThunk, Env: env, Thunk: term.Inner}, stateReturn, nil, nil, nil

	case TermConst:
		if err := m.budget.SpendStep(StepConstant); err != nil {
			return Value{}, 0, nil, nil, err
		}
		return term.Value, stateReturn, nil, nil, nil

	case TermBuiltin:
		if err := m.budget.SpendStep(StepBuiltin); err != nil {
			return Value{}, 0, nil, nil, err
		}
		spec := m.table.Spec(term.Builtin)
		return Value{Kind: ValBuiltinAcc, AccId: term.Builtin, ForcesLeft: spec.Forces}, stateReturn, nil, nil, nil

	case TermError:
		return Value{}, 0, nil, nil, ErrExplicitError

	case TermConstr:
		if err := m.budget.SpendStep(StepConstr); err != nil {
			return Value{}, 0, nil, nil, err
		}
		if len(term.Fields) == 0 {
			return Value{Kind: ValConstr, ConstrTag: term.Tag}, stateReturn, nil, nil, nil
		}
		m.stack.push(Frame{
			Kind:            FrameConstrAcc,
			Env:             env,
			ConstrTag:       term.Tag,
			ConstrRemaining: term.Fields[1:],
		})
		return Value{}, stateCompute, term.Fields[0], env, nil

	case TermCase:
		if err := m.budget.SpendStep(StepCase); err != nil {
			return Value{}, 0, nil, nil, err
		}
		m.stack.push(Frame{Kind: FrameCases, Env: env, Branches: term.Branches})
		return Value{}, stateCompute, term.Scrutinee, env, nil

	default:
		return Value{}, 0, nil, nil, fmt.Errorf("plutuscore: unknown term kind %d", term.Kind)
	}
}

// ret implements every Return(value) transition: pop the top frame and
// apply its continuation.
func (m *Machine) ret(value Value) (Value, machineState, *Term, *Env, bool, error) {
	frame, ok := m.stack.pop()
	if !ok {
		return value, 0, nil, nil, true, nil
	}
	switch frame.Kind {
	case FrameApplyArg:
		m.stack.push(Frame{Kind: FrameApplyFun, Fun: value})
		return Value{}, stateCompute, frame.Arg, frame.Env, false, nil

	case FrameApplyFun:
		result, err := m.apply(frame.Fun, value)
		if err != nil {
			return Value{}, 0, nil, nil, true, err
		}
		if result.deferred != nil {
			return Value{}, stateCompute, result.deferred, result.deferredEnv, false, nil
		}
		return result.value, stateReturn, nil, nil, false, nil

	case FrameForce:
		result, err := m.force(value)
		if err != nil {
			return Value{}, 0, nil, nil, true, err
		}
		if result.deferred != nil {
			return Value{}, stateCompute, result.deferred, result.deferredEnv, false, nil
		}
		return result.value, stateReturn, nil, nil, false, nil

	case FrameConstrAcc:
		acc := append(frame.ConstrAcc, value)
		if len(frame.ConstrRemaining) == 0 {
			return Value{Kind: ValConstr, ConstrTag: frame.ConstrTag, ConstrArgs: acc}, stateReturn, nil, nil, false, nil
		}
		next := frame.ConstrRemaining[0]
		m.stack.push(Frame{
			Kind:            FrameConstrAcc,
			Env:             frame.Env,
			ConstrTag:       frame.ConstrTag,
			ConstrRemaining: frame.ConstrRemaining[1:],
			ConstrAcc:       acc,
		})
		return Value{}, stateCompute, next, frame.Env, false, nil

	case FrameCases:
		if value.Kind != ValConstr {
			return Value{}, 0, nil, nil, true, fmt.Errorf("plutuscore: Case scrutinee is not a constructor value")
		}
		if int(value.ConstrTag) >= len(frame.Branches) {
			return Value{}, 0, nil, nil, true, fmt.Errorf("plutuscore: no branch for constructor tag %d", value.ConstrTag)
		}
		branch := frame.Branches[value.ConstrTag]
		branchEnv := frame.Env
		for i := len(value.ConstrArgs) - 1; i >= 0; i-- {
			branchEnv = branchEnv.Extend(value.ConstrArgs[i])
		}
		return Value{}, stateCompute, branch, branchEnv, false, nil

	default:
		return Value{}, 0, nil, nil, true, fmt.Errorf("plutuscore: unknown frame kind %d", frame.Kind)
	}
}
