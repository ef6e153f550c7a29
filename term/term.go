// Package term implements the non-propositional term language: variables,
// constants, sets, sequences and algebraic expressions. Terms are immutable
// once created; structural equality distinguishes e.g. (a+b)+c from a+(b+c)
// since expressions are never normalized implicitly.
package term

import (
	"fmt"
	"sort"
	"strings"
)

// Term is the building block carried by atoms and relations.
type Term interface {
	// Marker method.
	isTerm()

	String() string

	// Equals reports structural equality. It never consults any proven flag,
	// because terms don't carry one.
	Equals(Term) bool

	// ApplySubst returns a new term with s applied to every free variable.
	// It performs no capture-avoidance; callers that substitute into a
	// Proposition should use package subst instead.
	ApplySubst(s Subst) Term

	// FreeVars returns the variables occurring in this term, in first-seen
	// order, without duplicates.
	FreeVars() []Variable
}

// Subst is the interface for term substitutions.
type Subst interface {
	// Get returns the term a variable maps to, and whether it is bound.
	Get(Variable) (Term, bool)
}

// SubstMap is a Subst backed by a map keyed by variable name. Variable
// itself is not a valid map key (Deps is a slice), so the map is keyed on
// the name, which is also the sole component of Variable identity.
type SubstMap map[string]Term

// Get implements Subst.
func (m SubstMap) Get(v Variable) (Term, bool) {
	t, ok := m[v.Name]
	return t, ok
}

// Bind returns a copy of m with v bound to t.
func (m SubstMap) Bind(v Variable, t Term) SubstMap {
	out := make(SubstMap, len(m)+1)
	for k, val := range m {
		out[k] = val
	}
	out[v.Name] = t
	return out
}

// AttrState is a three-valued logic tag.
type AttrState int

const (
	// Unknown means the attribute was not determined at construction time.
	Unknown AttrState = iota
	// True means the attribute holds.
	True
	// False means the attribute does not hold.
	False
)

func (a AttrState) String() string {
	switch a {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Unknown"
	}
}

// Attributes is the fixed record of three-valued tags attached to a term at
// construction time. This replaces the runtime attribute bag of the source
// system (see SPEC_FULL.md §9): every field is computed eagerly by the
// constructor that receives it, never inferred by kernel rules.
type Attributes struct {
	Real     AttrState
	Rational AttrState
	Integer  AttrState
	Natural  AttrState
	Positive AttrState
	Negative AttrState
	Even     AttrState
	Odd      AttrState
}

func dedupeVars(vs []Variable) []Variable {
	seen := make(map[string]bool, len(vs))
	var out []Variable
	for _, v := range vs {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		out = append(out, v)
	}
	return out
}

// Variable is a free symbol. Deps lists the names of variables whose scope
// this one depends on; package subst does not read it (its capture avoidance
// works from free-variable names alone). Bound
// is set on the copy of a Variable owned by a quantifier node; free
// occurrences inside atoms and relations always carry Bound=false.
type Variable struct {
	Name  string
	Deps  []string
	Bound bool
	Attrs Attributes
}

// NewVariable builds a free variable with no declared dependencies.
func NewVariable(name string) Variable {
	return Variable{Name: name}
}

// NewVariableWithAttrs builds a free variable carrying attribute tags.
func NewVariableWithAttrs(name string, attrs Attributes) Variable {
	return Variable{Name: name, Attrs: attrs}
}

// DependsOn returns a copy of v that records dep as a scope dependency.
func (v Variable) DependsOn(dep string) Variable {
	deps := make([]string, len(v.Deps), len(v.Deps)+1)
	copy(deps, v.Deps)
	deps = append(deps, dep)
	v.Deps = deps
	return v
}

// AsBound returns a copy of v with the Bound flag set, for use as the
// binder's own copy inside a quantifier node.
func (v Variable) AsBound() Variable {
	v.Bound = true
	return v
}

func (v Variable) isTerm() {}

func (v Variable) String() string { return v.Name }

// Equals compares variables by name only: Deps/Bound/Attrs are metadata
// about an occurrence, not part of the variable's identity.
func (v Variable) Equals(u Term) bool {
	w, ok := u.(Variable)
	return ok && v.Name == w.Name
}

func (v Variable) ApplySubst(s Subst) Term {
	if t, ok := s.Get(v); ok {
		return t
	}
	return v
}

func (v Variable) FreeVars() []Variable { return []Variable{v} }

// Constant is a named symbol, optionally carrying a numeric value (for
// inspection oracles; kernel rules never read Value).
type Constant struct {
	Name     string
	HasValue bool
	Value    float64
}

// NewConstant builds a constant with no numeric value.
func NewConstant(name string) Constant {
	return Constant{Name: name}
}

// NewNumericConstant builds a constant carrying an explicit numeric value.
func NewNumericConstant(name string, value float64) Constant {
	return Constant{Name: name, HasValue: true, Value: value}
}

func (c Constant) isTerm() {}

func (c Constant) String() string { return c.Name }

func (c Constant) Equals(u Term) bool {
	d, ok := u.(Constant)
	return ok && c.Name == d.Name && c.HasValue == d.HasValue && c.Value == d.Value
}

func (c Constant) ApplySubst(Subst) Term { return c }

func (c Constant) FreeVars() []Variable { return nil }

// SetSymbol denotes a set, by name or by a membership predicate. Predicate
// functions are not comparable in Go, so Equals compares only Name: two
// SetSymbol values naming the same set are considered the same term even if
// constructed with different (but presumably equivalent) predicates.
type SetSymbol struct {
	Name      string
	Predicate func(Term) bool
}

// NewSetSymbol builds a named set with no explicit membership predicate.
func NewSetSymbol(name string) SetSymbol {
	return SetSymbol{Name: name}
}

// NewSetSymbolWithPredicate builds a set denoted by name and a membership test.
func NewSetSymbolWithPredicate(name string, predicate func(Term) bool) SetSymbol {
	return SetSymbol{Name: name, Predicate: predicate}
}

func (s SetSymbol) isTerm() {}

func (s SetSymbol) String() string { return s.Name }

func (s SetSymbol) Equals(u Term) bool {
	t, ok := u.(SetSymbol)
	return ok && s.Name == t.Name
}

func (s SetSymbol) ApplySubst(Subst) Term { return s }

func (s SetSymbol) FreeVars() []Variable { return nil }

// Contains reports set membership when a predicate is available.
func (s SetSymbol) Contains(t Term) (bool, bool) {
	if s.Predicate == nil {
		return false, false
	}
	return s.Predicate(t), true
}

// Sequence is an indexed family of terms. NthTerm, when present, gives a
// closed form; indexing is a term-level operation, not an arithmetic one.
type Sequence struct {
	Name    string
	NthTerm func(int) Term
}

// NewSequence builds a named sequence with no closed form.
func NewSequence(name string) Sequence {
	return Sequence{Name: name}
}

// NewSequenceWithFormula builds a sequence with an explicit nth-term formula.
func NewSequenceWithFormula(name string, nth func(int) Term) Sequence {
	return Sequence{Name: name, NthTerm: nth}
}

func (s Sequence) isTerm() {}

func (s Sequence) String() string { return s.Name }

func (s Sequence) Equals(u Term) bool {
	t, ok := u.(Sequence)
	return ok && s.Name == t.Name
}

func (s Sequence) ApplySubst(Subst) Term { return s }

func (s Sequence) FreeVars() []Variable { return nil }

// At evaluates the nth term of the sequence, when a closed form is known.
func (s Sequence) At(n int) (Term, bool) {
	if s.NthTerm == nil {
		return nil, false
	}
	return s.NthTerm(n), true
}

// ExprOp names an algebraic operator. Expressions are not normalized
// unless explicitly evaluated by an oracle (SPEC_FULL.md §11, §4.5).
type ExprOp string

// Recognized algebraic operators.
const (
	OpAdd ExprOp = "+"
	OpMul ExprOp = "*"
	OpPow ExprOp = "^"
	OpAbs ExprOp = "abs"
	OpNeg ExprOp = "neg"
	OpMod ExprOp = "mod"
	OpGCD ExprOp = "gcd"
	OpMax ExprOp = "max"
	OpMin ExprOp = "min"
)

// Expr is an algebraic expression node: an operator applied to an ordered
// list of argument terms. Structural equality is order-sensitive and is
// never rewritten by associativity/commutativity.
type Expr struct {
	Op   ExprOp
	Args []Term
}

// NewExpr builds an expression node.
func NewExpr(op ExprOp, args ...Term) Expr {
	return Expr{Op: op, Args: args}
}

func (e Expr) isTerm() {}

func (e Expr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Op, strings.Join(parts, ", "))
}

func (e Expr) Equals(u Term) bool {
	f, ok := u.(Expr)
	if !ok || e.Op != f.Op || len(e.Args) != len(f.Args) {
		return false
	}
	for i := range e.Args {
		if !e.Args[i].Equals(f.Args[i]) {
			return false
		}
	}
	return true
}

func (e Expr) ApplySubst(s Subst) Term {
	args := make([]Term, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.ApplySubst(s)
	}
	return Expr{Op: e.Op, Args: args}
}

func (e Expr) FreeVars() []Variable {
	var vs []Variable
	for _, a := range e.Args {
		vs = append(vs, a.FreeVars()...)
	}
	return dedupeVars(vs)
}

// Substitute performs a plain (non-capture-checking) structural replacement
// of every occurrence of one term by another. Terms have no binders of their
// own, so no capture can occur at this level; package subst relies on this
// when walking through the term arguments of an atom or relation.
func Substitute(t Term, from, to Term) Term {
	if t.Equals(from) {
		return to
	}
	if e, ok := t.(Expr); ok {
		args := make([]Term, len(e.Args))
		for i, a := range e.Args {
			args[i] = Substitute(a, from, to)
		}
		return Expr{Op: e.Op, Args: args}
	}
	return t
}

// SortedNames returns a sorted copy of the given variable names, useful for
// deterministic provenance / error messages.
func SortedNames(vs []Variable) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	sort.Strings(names)
	return names
}
