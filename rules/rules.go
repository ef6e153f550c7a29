// Package rules implements the checked inference-rule primitives and their
// derived rules (SPEC_FULL.md §4.2). Every function here examines the
// proven flag and structural shape of its inputs and, on success, returns a
// new proposition minted through prop.Mint; on failure it returns an error
// and leaves every input untouched — no rule here ever mutates state.
//
// Per the redesign note in spec.md §9, rules are free functions dispatching
// on the Proposition sum type by exhaustive type switch, not fluent methods.
package rules

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/pylogic-go/pylogic/context"
	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/subst"
	"github.com/pylogic-go/pylogic/term"
)

// ErrRuleNotApplicable means a structural precondition of a rule failed:
// wrong connective, arity mismatch, or a shape the rule does not handle.
var ErrRuleNotApplicable = errors.New("rules: rule not applicable")

// ErrUnprovenInput means a rule received an input whose Proven() is false.
var ErrUnprovenInput = errors.New("rules: unproven input")

func unproven(name string) error {
	return fmt.Errorf("%w: %s", ErrUnprovenInput, name)
}

func notApplicable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrRuleNotApplicable, fmt.Sprintf(format, args...))
}

// Side selects which side of an equality a Substitute call replaces.
type Side int

const (
	// LeftForRight replaces occurrences of eq.Left with eq.Right.
	LeftForRight Side = iota
	// RightForLeft replaces occurrences of eq.Right with eq.Left.
	RightForLeft
)

// ModusPonens: self = A, impl = A -> B, both proven, yields B.
func ModusPonens(log *provenance.Log, frameID int, self prop.Proposition, impl prop.Implies) (prop.Proposition, error) {
	if !self.Proven() {
		return nil, unproven("self")
	}
	if !impl.Proven() {
		return nil, unproven("impl")
	}
	if !self.Equals(impl.Antecedent) {
		return nil, notApplicable("self %s does not match antecedent %s", self, impl.Antecedent)
	}
	return prop.Mint(log, impl.Consequent, "modus_ponens", frameID, self.Provenance(), impl.Provenance()), nil
}

// ModusTollens: self = not B, impl = A -> B, both proven, yields not A.
func ModusTollens(log *provenance.Log, frameID int, self prop.Not, impl prop.Implies) (prop.Proposition, error) {
	if !self.Proven() {
		return nil, unproven("self")
	}
	if !impl.Proven() {
		return nil, unproven("impl")
	}
	if !self.Inner.Equals(impl.Consequent) {
		return nil, notApplicable("negated proposition %s does not match consequent %s", self.Inner, impl.Consequent)
	}
	result := prop.NewNot(impl.Antecedent)
	return prop.Mint(log, result, "modus_tollens", frameID, self.Provenance(), impl.Provenance()), nil
}

// And_ introduces a conjunction from two or more proven conjuncts.
func And_(log *provenance.Log, frameID int, ps ...prop.Proposition) (prop.Proposition, error) {
	if len(ps) < 2 {
		return nil, notApplicable("and_ needs at least two conjuncts, got %d", len(ps))
	}
	var errs error
	var inputs []provenance.Ref
	for i, p := range ps {
		if !p.Proven() {
			errs = multierr.Append(errs, unproven(fmt.Sprintf("conjunct %d (%s)", i, p)))
			continue
		}
		inputs = append(inputs, p.Provenance())
	}
	if errs != nil {
		return nil, errs
	}
	return prop.Mint(log, prop.And{Conjuncts: ps}, "and_introduction", frameID, inputs...), nil
}

// AndElim extracts the i-th conjunct of a proven conjunction. SPEC_FULL.md
// §4.2 lists and_ as introduction only; elimination is its dual and, per
// §4.2's closing sentence, a derived rule needs no separate table entry — it
// rests on the same structural precondition as and_ itself.
func AndElim(log *provenance.Log, frameID int, self prop.Proposition, i int) (prop.Proposition, error) {
	if !self.Proven() {
		return nil, unproven("self")
	}
	and, ok := self.(prop.And)
	if !ok {
		return nil, notApplicable("and_elim: %s is not a conjunction", self)
	}
	if i < 0 || i >= len(and.Conjuncts) {
		return nil, notApplicable("and_elim: %s has no conjunct %d", self, i)
	}
	return prop.Mint(log, and.Conjuncts[i], "and_elim", frameID, self.Provenance()), nil
}

// Or_ introduces a disjunction: self must be proven; the remaining
// disjuncts are added without proof, since A proven makes A-or-anything
// sound regardless of the other disjuncts' status.
func Or_(log *provenance.Log, frameID int, self prop.Proposition, rest ...prop.Proposition) (prop.Proposition, error) {
	if !self.Proven() {
		return nil, unproven("self")
	}
	all := append([]prop.Proposition{self}, rest...)
	return prop.Mint(log, prop.Or{Disjuncts: all}, "or_introduction", frameID, self.Provenance()), nil
}

// ByCases combines a proven disjunction with one proven implication per
// disjunct (in the same order) into their shared consequent. Every disjunct
// of disj must equal the antecedent of the corresponding entry of impls.
func ByCases(log *provenance.Log, frameID int, disj prop.Or, impls ...prop.Implies) (prop.Proposition, error) {
	if !disj.Proven() {
		return nil, unproven("disj")
	}
	if len(impls) != len(disj.Disjuncts) {
		return nil, notApplicable("by_cases needs one implication per disjunct, got %d disjuncts and %d implications", len(disj.Disjuncts), len(impls))
	}
	var errs error
	var consequent prop.Proposition
	inputs := []provenance.Ref{disj.Provenance()}
	for i, impl := range impls {
		if !impl.Proven() {
			errs = multierr.Append(errs, unproven(fmt.Sprintf("implication %d", i)))
			continue
		}
		if !impl.Antecedent.Equals(disj.Disjuncts[i]) {
			errs = multierr.Append(errs, notApplicable("implication %d antecedent %s does not match disjunct %s", i, impl.Antecedent, disj.Disjuncts[i]))
			continue
		}
		if consequent == nil {
			consequent = impl.Consequent
		} else if !consequent.Equals(impl.Consequent) {
			errs = multierr.Append(errs, notApplicable("implication %d consequent %s does not match prior consequent %s", i, impl.Consequent, consequent))
			continue
		}
		inputs = append(inputs, impl.Provenance())
	}
	if errs != nil {
		return nil, errs
	}
	return prop.Mint(log, consequent, "by_cases", frameID, inputs...), nil
}

// HypotheticalSyllogism: A -> B, B -> C, yields A -> C.
func HypotheticalSyllogism(log *provenance.Log, frameID int, ab, bc prop.Implies) (prop.Proposition, error) {
	if !ab.Proven() {
		return nil, unproven("ab")
	}
	if !bc.Proven() {
		return nil, unproven("bc")
	}
	if !ab.Consequent.Equals(bc.Antecedent) {
		return nil, notApplicable("consequent %s of first implication does not match antecedent %s of second", ab.Consequent, bc.Antecedent)
	}
	result := prop.NewImplies(ab.Antecedent, bc.Consequent)
	return prop.Mint(log, result, "hypothetical_syllogism", frameID, ab.Provenance(), bc.Provenance()), nil
}

// Contrapositive: A -> B yields not B -> not A.
func Contrapositive(log *provenance.Log, frameID int, impl prop.Implies) (prop.Proposition, error) {
	if !impl.Proven() {
		return nil, unproven("impl")
	}
	result := prop.NewImplies(prop.NewNot(impl.Consequent), prop.NewNot(impl.Antecedent))
	return prop.Mint(log, result, "contrapositive", frameID, impl.Provenance()), nil
}

// IffForward: A <-> B yields A -> B.
func IffForward(log *provenance.Log, frameID int, iff prop.Iff) (prop.Proposition, error) {
	if !iff.Proven() {
		return nil, unproven("iff")
	}
	result := prop.NewImplies(iff.Left, iff.Right)
	return prop.Mint(log, result, "iff_forward", frameID, iff.Provenance()), nil
}

// IffBackward: A <-> B yields B -> A.
func IffBackward(log *provenance.Log, frameID int, iff prop.Iff) (prop.Proposition, error) {
	if !iff.Proven() {
		return nil, unproven("iff")
	}
	result := prop.NewImplies(iff.Right, iff.Left)
	return prop.Mint(log, result, "iff_backward", frameID, iff.Provenance()), nil
}

// Resolve is classical binary resolution: A-or-B, not-A-or-C, yields B-or-C.
func Resolve(log *provenance.Log, frameID int, p1, p2 prop.Or) (prop.Proposition, error) {
	if !p1.Proven() {
		return nil, unproven("p1")
	}
	if !p2.Proven() {
		return nil, unproven("p2")
	}
	if len(p1.Disjuncts) != 2 || len(p2.Disjuncts) != 2 {
		return nil, notApplicable("resolve requires binary disjunctions")
	}
	for _, perm := range [][2]int{{0, 1}, {1, 0}} {
		a, b := p1.Disjuncts[perm[0]], p1.Disjuncts[perm[1]]
		for _, perm2 := range [][2]int{{0, 1}, {1, 0}} {
			notA, c := p2.Disjuncts[perm2[0]], p2.Disjuncts[perm2[1]]
			if n, ok := notA.(prop.Not); ok && n.Inner.Equals(a) {
				result := prop.NewOr(b, c)
				return prop.Mint(log, result, "resolve", frameID, p1.Provenance(), p2.Provenance()), nil
			}
		}
	}
	return nil, notApplicable("no complementary literal found between %s and %s", p1, p2)
}

// UnitResolve: A-or-B, not-A, yields B.
func UnitResolve(log *provenance.Log, frameID int, disj prop.Or, negA prop.Not) (prop.Proposition, error) {
	if !disj.Proven() {
		return nil, unproven("disj")
	}
	if !negA.Proven() {
		return nil, unproven("negA")
	}
	if len(disj.Disjuncts) != 2 {
		return nil, notApplicable("unit_resolve requires a binary disjunction")
	}
	for _, perm := range [][2]int{{0, 1}, {1, 0}} {
		a, b := disj.Disjuncts[perm[0]], disj.Disjuncts[perm[1]]
		if negA.Inner.Equals(a) {
			return prop.Mint(log, b, "unit_resolve", frameID, disj.Provenance(), negA.Provenance()), nil
		}
	}
	return nil, notApplicable("%s is not the negation of either disjunct of %s", negA, disj)
}

// DeMorgan rewrites a junction or its negation into its dual form:
// not(and(ps...)) <-> or(not(p)...) and not(or(ps...)) <-> and(not(p)...).
func DeMorgan(log *provenance.Log, frameID int, p prop.Proposition) (prop.Proposition, error) {
	if !p.Proven() {
		return nil, unproven("p")
	}
	switch v := p.(type) {
	case prop.Not:
		switch inner := v.Inner.(type) {
		case prop.And:
			return prop.Mint(log, prop.Or{Disjuncts: negateAll(inner.Conjuncts)}, "de_morgan", frameID, p.Provenance()), nil
		case prop.Or:
			return prop.Mint(log, prop.And{Conjuncts: negateAll(inner.Disjuncts)}, "de_morgan", frameID, p.Provenance()), nil
		}
	case prop.Or:
		if unwrapped, ok := allNegations(v.Disjuncts); ok {
			return prop.Mint(log, prop.NewNot(prop.And{Conjuncts: unwrapped}), "de_morgan", frameID, p.Provenance()), nil
		}
	case prop.And:
		if unwrapped, ok := allNegations(v.Conjuncts); ok {
			return prop.Mint(log, prop.NewNot(prop.Or{Disjuncts: unwrapped}), "de_morgan", frameID, p.Provenance()), nil
		}
	}
	return nil, notApplicable("%s has no De Morgan dual", p)
}

func negateAll(ps []prop.Proposition) []prop.Proposition {
	out := make([]prop.Proposition, len(ps))
	for i, p := range ps {
		out[i] = prop.NewNot(p)
	}
	return out
}

func allNegations(ps []prop.Proposition) ([]prop.Proposition, bool) {
	out := make([]prop.Proposition, len(ps))
	for i, p := range ps {
		n, ok := p.(prop.Not)
		if !ok {
			return nil, false
		}
		out[i] = n.Inner
	}
	return out, true
}

// UniversalInstantiation: forall v. P(v), a term t, yields P(t) with t
// substituted for v.
func UniversalInstantiation(log *provenance.Log, frameID int, forall prop.Forall, t term.Term) (prop.Proposition, error) {
	if !forall.Proven() {
		return nil, unproven("forall")
	}
	result := subst.Substitute(forall.Body, forall.Var, t)
	return prop.Mint(log, result, "universal_instantiation", frameID, forall.Provenance()), nil
}

// ExistentialIntroduction: witness = P(t) proven, target = exists v. P(v)
// (the pattern to generalize to), yields target.
func ExistentialIntroduction(log *provenance.Log, frameID int, witness prop.Proposition, target prop.Exists) (prop.Proposition, error) {
	if !witness.Proven() {
		return nil, unproven("witness")
	}
	bound := map[string]bool{target.Var.Name: true}
	if _, ok := subst.Match(target.Body, witness, bound); !ok {
		return nil, notApplicable("witness %s does not match pattern %s", witness, target.Body)
	}
	return prop.Mint(log, target, "existential_introduction", frameID, witness.Provenance()), nil
}

// ExistentialElimination: exists v. P(v) proven, yields a fresh variable w
// (declared in the currently open frame of stack) together with P(w) newly
// recorded as an assumption of that frame. Callers typically conclude some
// goal that does not mention w and then Close the frame.
func ExistentialElimination(log *provenance.Log, stack *context.Stack, exists prop.Exists, freshName string) (term.Variable, prop.Proposition, error) {
	if !exists.Proven() {
		return term.Variable{}, nil, unproven("exists")
	}
	w, err := stack.DeclareVariable(freshName, exists.Var.Attrs)
	if err != nil {
		return term.Variable{}, nil, err
	}
	instantiated := subst.Substitute(exists.Body, exists.Var, w)
	assumed, err := stack.Assume(instantiated)
	if err != nil {
		return term.Variable{}, nil, err
	}
	return w, assumed, nil
}

// Substitute replaces occurrences of one side of a proven equality inside
// self with the other side.
func Substitute(log *provenance.Log, frameID int, self prop.Proposition, eq prop.Eq, side Side) (prop.Proposition, error) {
	if !self.Proven() {
		return nil, unproven("self")
	}
	if !eq.Proven() {
		return nil, unproven("eq")
	}
	var result prop.Proposition
	if side == LeftForRight {
		result = subst.Substitute(self, eq.Left, eq.Right)
	} else {
		result = subst.Substitute(self, eq.Right, eq.Left)
	}
	return prop.Mint(log, result, "substitution_of_equals", frameID, self.Provenance(), eq.Provenance()), nil
}

// Contradicts: p and not p both proven, yields Contradiction.
func Contradicts(log *provenance.Log, frameID int, p, notP prop.Proposition) (prop.Proposition, error) {
	if !p.Proven() {
		return nil, unproven("p")
	}
	if !notP.Proven() {
		return nil, unproven("notP")
	}
	n, ok := notP.(prop.Not)
	if !ok || !n.Inner.Equals(p) {
		return nil, notApplicable("%s is not the negation of %s", notP, p)
	}
	return prop.Mint(log, prop.NewContradiction(), "contradicts", frameID, p.Provenance(), notP.Provenance()), nil
}

// ExFalso: Contradiction proven, yields any target proposition.
func ExFalso(log *provenance.Log, frameID int, contradiction prop.Contradiction, target prop.Proposition) (prop.Proposition, error) {
	if !contradiction.Proven() {
		return nil, unproven("contradiction")
	}
	return prop.Mint(log, target, "ex_falso", frameID, contradiction.Provenance()), nil
}

// DoubleNegationElimination: not(not(A)) yields A. This is a classical rule,
// but the function reads no configuration: it applies regardless of
// cfg.UseClassicalLogic. The prover does not call it; the prover reaches
// not(not(A)) |- A only through proof by contradiction, which is gated on
// cfg.UseClassicalLogic.
func DoubleNegationElimination(log *provenance.Log, frameID int, nn prop.Not) (prop.Proposition, error) {
	if !nn.Proven() {
		return nil, unproven("nn")
	}
	inner, ok := nn.Inner.(prop.Not)
	if !ok {
		return nil, notApplicable("%s is not a double negation", nn)
	}
	return prop.Mint(log, inner.Inner, "double_negation_elimination", frameID, nn.Provenance()), nil
}
