// Package oracle implements the three trusted injection points that can mint
// proven=true without going through a checked inference rule
// (SPEC_FULL.md §4.5). Each oracle is deliberately narrow and kept separate
// from the rules package: by_inspection decides ground
// arithmetic/order/set facts, by_eval and by_simplification decide ground
// equalities by evaluating both sides. None of them perform general
// symbolic evaluation — the full evaluate()/by_eval() numeric-simplifier
// engine is an external collaborator per spec.md §1; what lives here is
// only a minimal decider for ground facts. The prover does not call these
// oracles.
package oracle

import (
	"errors"
	"fmt"
	"math"

	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/term"
)

// ErrOracleRefused means an oracle could not decide the given proposition.
var ErrOracleRefused = errors.New("oracle: refused")

func refuse(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrOracleRefused, fmt.Sprintf(format, args...))
}

// ByInspection decides a ground arithmetic/set proposition by direct
// inspection of its constant operands (e.g. "2 prime", "not (2 | 1)").
func ByInspection(log *provenance.Log, frameID int, p prop.Proposition) (prop.Proposition, error) {
	if err := inspect(p); err != nil {
		return nil, err
	}
	return prop.Mint(log, p, "by_inspection", frameID), nil
}

func inspect(p prop.Proposition) error {
	switch v := p.(type) {
	case prop.Prime:
		n, ok := numericValue(v.Arg)
		if !ok {
			return refuse("%s has no ground numeric value to inspect", v.Arg)
		}
		if !isPrime(n) {
			return refuse("%v is not prime", n)
		}
		return nil
	case prop.Divides:
		d, ok1 := numericValue(v.Left)
		m, ok2 := numericValue(v.Right)
		if !ok1 || !ok2 {
			return refuse("divides needs two ground numeric values")
		}
		if d == 0 || math.Mod(m, d) != 0 {
			return refuse("%v does not divide %v", d, m)
		}
		return nil
	case prop.Lt:
		return inspectOrder(v.Left, v.Right, func(a, b float64) bool { return a < b })
	case prop.Gt:
		return inspectOrder(v.Left, v.Right, func(a, b float64) bool { return a > b })
	case prop.Le:
		return inspectOrder(v.Left, v.Right, func(a, b float64) bool { return a <= b })
	case prop.Ge:
		return inspectOrder(v.Left, v.Right, func(a, b float64) bool { return a >= b })
	case prop.Eq:
		return inspectOrder(v.Left, v.Right, func(a, b float64) bool { return a == b })
	case prop.MemberOf:
		set, ok := v.Right.(term.SetSymbol)
		if !ok {
			return refuse("%s is not a set with an inspectable membership predicate", v.Right)
		}
		member, decided := set.Contains(v.Left)
		if !decided {
			return refuse("set %s has no membership predicate", set)
		}
		if !member {
			return refuse("%s is not a member of %s", v.Left, set)
		}
		return nil
	case prop.Not:
		if err := inspect(v.Inner); err == nil {
			return refuse("%s inspects as true, so its negation does not", v.Inner)
		}
		return nil
	default:
		return refuse("%T is not ground-inspectable", p)
	}
}

func inspectOrder(l, r term.Term, cmp func(a, b float64) bool) error {
	a, ok1 := numericValue(l)
	b, ok2 := numericValue(r)
	if !ok1 || !ok2 {
		return refuse("relation needs two ground numeric values")
	}
	if !cmp(a, b) {
		return refuse("%v does not relate to %v as required", a, b)
	}
	return nil
}

func numericValue(t term.Term) (float64, bool) {
	switch v := t.(type) {
	case term.Constant:
		if v.HasValue {
			return v.Value, true
		}
		return 0, false
	case term.Expr:
		return evalExpr(v)
	default:
		return 0, false
	}
}

func evalExpr(e term.Expr) (float64, bool) {
	vals := make([]float64, len(e.Args))
	for i, a := range e.Args {
		v, ok := numericValue(a)
		if !ok {
			return 0, false
		}
		vals[i] = v
	}
	switch e.Op {
	case term.OpAdd:
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		return sum, true
	case term.OpMul:
		prod := 1.0
		for _, v := range vals {
			prod *= v
		}
		return prod, true
	case term.OpPow:
		if len(vals) != 2 {
			return 0, false
		}
		return math.Pow(vals[0], vals[1]), true
	case term.OpAbs:
		if len(vals) != 1 {
			return 0, false
		}
		return math.Abs(vals[0]), true
	case term.OpNeg:
		if len(vals) != 1 {
			return 0, false
		}
		return -vals[0], true
	case term.OpMod:
		if len(vals) != 2 {
			return 0, false
		}
		return math.Mod(vals[0], vals[1]), true
	case term.OpGCD:
		if len(vals) != 2 {
			return 0, false
		}
		return float64(gcd(int64(vals[0]), int64(vals[1]))), true
	case term.OpMax:
		m := vals[0]
		for _, v := range vals[1:] {
			if v > m {
				m = v
			}
		}
		return m, true
	case term.OpMin:
		m := vals[0]
		for _, v := range vals[1:] {
			if v < m {
				m = v
			}
		}
		return m, true
	default:
		return 0, false
	}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func isPrime(n float64) bool {
	if n != math.Trunc(n) || n < 2 {
		return false
	}
	i := int64(n)
	for d := int64(2); d*d <= i; d++ {
		if i%d == 0 {
			return false
		}
	}
	return true
}

// ByEval evaluates both sides of a ground equality with the trusted
// numeric evaluator and mints eq if they agree.
func ByEval(log *provenance.Log, frameID int, eq prop.Eq) (prop.Proposition, error) {
	a, ok1 := numericValue(eq.Left)
	b, ok2 := numericValue(eq.Right)
	if !ok1 || !ok2 {
		return nil, refuse("by_eval needs two ground numeric values, got %s = %s", eq.Left, eq.Right)
	}
	if a != b {
		return nil, refuse("%v != %v", a, b)
	}
	return prop.Mint(log, eq, "by_eval", frameID), nil
}

// BySimplification decides a ground equality using a small set of known
// algebraic identities (additive/multiplicative identity and annihilator)
// in addition to plain evaluation, without performing general symbolic
// rewriting (full algebraic simplification is out of scope, spec.md §1).
func BySimplification(log *provenance.Log, frameID int, eq prop.Eq) (prop.Proposition, error) {
	if simplifies(eq.Left, eq.Right) || simplifies(eq.Right, eq.Left) {
		return prop.Mint(log, eq, "by_simplification", frameID), nil
	}
	return ByEval(log, frameID, eq)
}

// simplifies reports whether lhs reduces to rhs under one of a small set of
// known identities.
func simplifies(lhs, rhs term.Term) bool {
	e, ok := lhs.(term.Expr)
	if !ok || len(e.Args) != 2 {
		return false
	}
	a, b := e.Args[0], e.Args[1]
	switch e.Op {
	case term.OpAdd:
		if isZero(b) && a.Equals(rhs) {
			return true
		}
		if isZero(a) && b.Equals(rhs) {
			return true
		}
	case term.OpMul:
		if isOne(b) && a.Equals(rhs) {
			return true
		}
		if isOne(a) && b.Equals(rhs) {
			return true
		}
		if (isZero(a) || isZero(b)) && isZero(rhs) {
			return true
		}
	}
	return false
}

func isZero(t term.Term) bool {
	v, ok := numericValue(t)
	return ok && v == 0
}

func isOne(t term.Term) bool {
	v, ok := numericValue(t)
	return ok && v == 1
}
