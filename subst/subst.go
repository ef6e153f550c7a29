// Package subst implements capture-avoiding substitution of terms into
// propositions (used by universal instantiation) and the linear first-order
// matching used by existential introduction (SPEC_FULL.md §4.3).
package subst

import (
	"errors"
	"fmt"

	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/term"
)

// ErrCaptureViolation names the capture-violation error kind. No function in
// this package returns it: the capture-avoidance renaming below always picks
// a name that is free in neither the replacement term nor the body.
var ErrCaptureViolation = errors.New("subst: capture violation")

// freeVarNames returns the free variable names of t as a set.
func freeVarNames(t term.Term) map[string]bool {
	out := make(map[string]bool)
	for _, v := range t.FreeVars() {
		out[v.Name] = true
	}
	return out
}

func freshName(base string, avoid map[string]bool) string {
	candidate := base + "'"
	for avoid[candidate] {
		candidate += "'"
	}
	return candidate
}

// Substitute replaces every free occurrence of the term `from` (almost
// always a term.Variable) by `to` inside p. The walker refuses to descend
// under a quantifier that binds a variable occurring free in `to`, renaming
// the bound variable to a fresh name first.
func Substitute(p prop.Proposition, from, to term.Term) prop.Proposition {
	return substitute(p, from, to, freeVarNames(to))
}

func substitute(p prop.Proposition, from, to term.Term, toFree map[string]bool) prop.Proposition {
	switch v := p.(type) {
	case prop.Atom:
		args := make([]term.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = term.Substitute(a, from, to)
		}
		return prop.Atom{Name: v.Name, Args: args}
	case prop.Not:
		return prop.Not{Inner: substitute(v.Inner, from, to, toFree)}
	case prop.And:
		return prop.And{Conjuncts: substituteAll(v.Conjuncts, from, to, toFree)}
	case prop.Or:
		return prop.Or{Disjuncts: substituteAll(v.Disjuncts, from, to, toFree)}
	case prop.ExOr:
		return prop.ExOr{Args: substituteAll(v.Args, from, to, toFree)}
	case prop.Implies:
		return prop.Implies{
			Antecedent: substitute(v.Antecedent, from, to, toFree),
			Consequent: substitute(v.Consequent, from, to, toFree),
		}
	case prop.Iff:
		return prop.Iff{Left: substitute(v.Left, from, to, toFree), Right: substitute(v.Right, from, to, toFree)}
	case prop.Forall:
		nv, body := substituteUnderBinder(v.Var, v.Body, from, to, toFree)
		return prop.NewForall(nv, body)
	case prop.Exists:
		nv, body := substituteUnderBinder(v.Var, v.Body, from, to, toFree)
		return prop.NewExists(nv, body)
	case prop.ExistsUnique:
		nv, body := substituteUnderBinder(v.Var, v.Body, from, to, toFree)
		return prop.NewExistsUnique(nv, body)
	case prop.ForallInSet:
		nv, body := substituteUnderBinder(v.Var, v.Body, from, to, toFree)
		return prop.NewForallInSet(nv, term.Substitute(v.Set, from, to), body)
	case prop.ExistsInSet:
		nv, body := substituteUnderBinder(v.Var, v.Body, from, to, toFree)
		return prop.NewExistsInSet(nv, term.Substitute(v.Set, from, to), body)
	case prop.Eq:
		return prop.NewEq(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.Lt:
		return prop.NewLt(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.Gt:
		return prop.NewGt(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.Le:
		return prop.NewLe(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.Ge:
		return prop.NewGe(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.MemberOf:
		return prop.NewMemberOf(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.SubsetOf:
		return prop.NewSubsetOf(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.Divides:
		return prop.NewDivides(term.Substitute(v.Left, from, to), term.Substitute(v.Right, from, to))
	case prop.Prime:
		return prop.NewPrime(term.Substitute(v.Arg, from, to))
	case prop.Contradiction:
		return v
	default:
		panic(fmt.Sprintf("subst: unknown proposition type %T", p))
	}
}

func substituteAll(ps []prop.Proposition, from, to term.Term, toFree map[string]bool) []prop.Proposition {
	out := make([]prop.Proposition, len(ps))
	for i, p := range ps {
		out[i] = substitute(p, from, to, toFree)
	}
	return out
}

// substituteUnderBinder renames the bound variable when it would otherwise
// capture a free variable of the replacement term, then substitutes into
// Body. If the target `from` is itself the bound variable, Body is returned
// unchanged (the substitution does not reach under its own binder).
func substituteUnderBinder(v term.Variable, body prop.Proposition, from, to term.Term, toFree map[string]bool) (term.Variable, prop.Proposition) {
	if fv, ok := from.(term.Variable); ok && fv.Name == v.Name {
		return v, body
	}
	if !toFree[v.Name] {
		return v, substitute(body, from, to, toFree)
	}
	avoid := make(map[string]bool, len(toFree))
	for name := range toFree {
		avoid[name] = true
	}
	for _, bv := range body.FreeVars() {
		avoid[bv.Name] = true
	}
	fresh := freshName(v.Name, avoid)
	renamedVar := term.NewVariable(fresh)
	renamedBody := substitute(body, v, renamedVar, freeVarNames(renamedVar))
	return renamedVar, substitute(renamedBody, from, to, toFree)
}

// Binding is one resolved (pattern-variable -> term) pair from Match.
type Binding struct {
	Var  term.Variable
	Term term.Term
}

// Match attempts to unify a quantifier pattern against a candidate, binding
// bound (the variable(s) declared free-to-unify) while requiring every other
// free symbol of the pattern to match the candidate identically. When the
// same bound variable appears twice in the pattern, both occurrences must
// resolve to the same term. Matching is linear in the size of the pattern.
func Match(pattern, candidate prop.Proposition, bound map[string]bool) (term.SubstMap, bool) {
	env := make(term.SubstMap)
	if matchProp(pattern, candidate, bound, env) {
		return env, true
	}
	return nil, false
}

func matchProp(pattern, candidate prop.Proposition, bound map[string]bool, env term.SubstMap) bool {
	switch p := pattern.(type) {
	case prop.Atom:
		c, ok := candidate.(prop.Atom)
		if !ok || p.Name != c.Name || len(p.Args) != len(c.Args) {
			return false
		}
		for i := range p.Args {
			if !matchTerm(p.Args[i], c.Args[i], bound, env) {
				return false
			}
		}
		return true
	case prop.Not:
		c, ok := candidate.(prop.Not)
		return ok && matchProp(p.Inner, c.Inner, bound, env)
	case prop.And:
		c, ok := candidate.(prop.And)
		return ok && matchPropList(p.Conjuncts, c.Conjuncts, bound, env)
	case prop.Or:
		c, ok := candidate.(prop.Or)
		return ok && matchPropList(p.Disjuncts, c.Disjuncts, bound, env)
	case prop.ExOr:
		c, ok := candidate.(prop.ExOr)
		return ok && matchPropList(p.Args, c.Args, bound, env)
	case prop.Implies:
		c, ok := candidate.(prop.Implies)
		return ok && matchProp(p.Antecedent, c.Antecedent, bound, env) && matchProp(p.Consequent, c.Consequent, bound, env)
	case prop.Iff:
		c, ok := candidate.(prop.Iff)
		return ok && matchProp(p.Left, c.Left, bound, env) && matchProp(p.Right, c.Right, bound, env)
	case prop.Eq:
		c, ok := candidate.(prop.Eq)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.Lt:
		c, ok := candidate.(prop.Lt)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.Gt:
		c, ok := candidate.(prop.Gt)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.Le:
		c, ok := candidate.(prop.Le)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.Ge:
		c, ok := candidate.(prop.Ge)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.MemberOf:
		c, ok := candidate.(prop.MemberOf)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.SubsetOf:
		c, ok := candidate.(prop.SubsetOf)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.Divides:
		c, ok := candidate.(prop.Divides)
		return ok && matchTerm(p.Left, c.Left, bound, env) && matchTerm(p.Right, c.Right, bound, env)
	case prop.Prime:
		c, ok := candidate.(prop.Prime)
		return ok && matchTerm(p.Arg, c.Arg, bound, env)
	case prop.Contradiction:
		_, ok := candidate.(prop.Contradiction)
		return ok
	default:
		// Forall/Exists/.../InSet patterns are not unified across their own
		// binder by this matcher: existential_introduction matches the body
		// of a quantifier it has already stripped, so nested quantifiers
		// inside a pattern are compared structurally, not unified.
		return pattern.Equals(candidate)
	}
}

func matchPropList(pattern, candidate []prop.Proposition, bound map[string]bool, env term.SubstMap) bool {
	if len(pattern) != len(candidate) {
		return false
	}
	for i := range pattern {
		if !matchProp(pattern[i], candidate[i], bound, env) {
			return false
		}
	}
	return true
}

func matchTerm(pattern, candidate term.Term, bound map[string]bool, env term.SubstMap) bool {
	if v, ok := pattern.(term.Variable); ok && bound[v.Name] {
		if existing, ok := env.Get(v); ok {
			return existing.Equals(candidate)
		}
		env[v.Name] = candidate
		return true
	}
	if e, ok := pattern.(term.Expr); ok {
		f, ok := candidate.(term.Expr)
		if !ok || e.Op != f.Op || len(e.Args) != len(f.Args) {
			return false
		}
		for i := range e.Args {
			if !matchTerm(e.Args[i], f.Args[i], bound, env) {
				return false
			}
		}
		return true
	}
	return pattern.Equals(candidate)
}
