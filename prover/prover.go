// Package prover implements the backward (goal-driven, depth-first)
// proof-search engine of SPEC_FULL.md §4.4. It is cut-free and opens, assumes
// and closes frames through the same context.Stack any direct caller would
// use. Most steps are checked primitives of package rules; four steps mint
// their result with prop.Mint directly instead: the identity rule, the
// positional form of disjunction introduction, the final discharge of proof
// by contradiction, and the De Morgan rewrite of premises in rule 9.
package prover

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"bitbucket.org/creachadair/stringset"

	"github.com/pylogic-go/pylogic/config"
	"github.com/pylogic-go/pylogic/context"
	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/proplog"
	"github.com/pylogic-go/pylogic/rules"
	"github.com/pylogic-go/pylogic/term"
)

// ErrNoRuleApplies means the prover exhausted its rule table for some goal
// along every branch it tried.
var ErrNoRuleApplies = errors.New("prover: no rule applies")

// Attempt records one failed goal of a search (Rule names why it failed:
// "max-depth", "loop-guard" or "exhausted"), for diagnostics only. A
// NoRuleAppliesError carries every attempt recorded so far, from every
// branch tried, in the order they occurred.
type Attempt struct {
	Rule string
	Goal prop.Proposition
}

// NoRuleAppliesError is the structured form of ErrNoRuleApplies.
type NoRuleAppliesError struct {
	Goal     prop.Proposition
	Attempts []Attempt
}

func (e *NoRuleAppliesError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNoRuleApplies, e.Goal)
}

func (e *NoRuleAppliesError) Unwrap() error { return ErrNoRuleApplies }

// DefaultMaxDepth returns the default search depth for a given premise
// count when config.MaxProofDepth is zero (SPEC_FULL.md §12): chosen so
// that a 4-premise case-split (SPEC_FULL.md §8 scenario 4) comfortably
// fits within the default bound.
func DefaultMaxDepth(premiseCount int) int {
	return 4*premiseCount + 8
}

const visitedCacheSize = 4096

// Prove attempts to derive goal from premises using the checked rules of
// package rules, trying the rule table of SPEC_FULL.md §4.4 in order. It
// returns a proposition structurally equal to goal with Proven()==true, or
// a *NoRuleAppliesError wrapping ErrNoRuleApplies.
func Prove(cfg config.Config, premises []prop.Proposition, goal prop.Proposition) (prop.Proposition, error) {
	log := provenance.NewLog()
	stack := context.New(log)
	maxDepth := cfg.MaxProofDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth(len(premises))
	}
	visited, err := lru.New[string, prop.Proposition](visitedCacheSize)
	if err != nil {
		return nil, fmt.Errorf("prover: building memoization cache: %w", err)
	}
	s := &searcher{
		log:      log,
		stack:    stack,
		cfg:      cfg,
		maxDepth: maxDepth,
		visited:  visited,
	}
	return s.prove(premises, goal, 0, stringset.New(), false)
}

type searcher struct {
	log      *provenance.Log
	stack    *context.Stack
	cfg      config.Config
	maxDepth int
	visited  *lru.Cache[string, prop.Proposition]
	attempts []Attempt
}

func memoKey(goal prop.Proposition, depth int) string {
	return fmt.Sprintf("%d:%s", depth, goal.String())
}

func cloneSet(s stringset.Set) stringset.Set {
	out := stringset.New()
	for k := range s {
		out.Add(k)
	}
	return out
}

// flattenConjunctions extends premises with the transitive closure of their
// conjuncts via rules.AndElim, so rules 1, 6, 7 and the contradiction scan
// can see inside a proven `A ∧ B` premise without a dedicated table entry
// for conjunction elimination. Proofs minted here are tagged to frameID, the
// frame the caller is searching in.
func flattenConjunctions(log *provenance.Log, frameID int, premises []prop.Proposition) []prop.Proposition {
	out := append([]prop.Proposition{}, premises...)
	for i := 0; i < len(out); i++ {
		and, ok := out[i].(prop.And)
		if !ok || !out[i].Proven() {
			continue
		}
		for j, raw := range and.Conjuncts {
			seen := false
			for _, p := range out {
				if p.Equals(raw) {
					seen = true
					break
				}
			}
			if seen {
				continue
			}
			conjunct, err := rules.AndElim(log, frameID, out[i], j)
			if err == nil {
				out = append(out, conjunct)
			}
		}
	}
	return out
}

// prove is the core recursive search. triedDeMorgan guards rule 9
// (De Morgan normalization) to a single attempt per branch, per SPEC_FULL.md
// §4.4's "one-shot flag".
func (s *searcher) prove(premises []prop.Proposition, goal prop.Proposition, depth int, noRecurse stringset.Set, triedDeMorgan bool) (prop.Proposition, error) {
	frameID := s.stack.CurrentFrameID()
	premises = flattenConjunctions(s.log, frameID, premises)
	key := memoKey(goal, depth)
	if cached, ok := s.visited.Get(key); ok && s.stack.Live(cached.FrameID()) {
		return cached, nil
	}
	if depth > s.maxDepth {
		return nil, s.fail(goal, "max-depth", "exceeded max depth %d", s.maxDepth)
	}
	if noRecurse.Contains(goal.String()) {
		return nil, s.fail(goal, "loop-guard", "already expanding this goal on this branch")
	}
	branchGuard := cloneSet(noRecurse)
	branchGuard.Add(goal.String())

	// Rule 1: identity.
	for _, p := range premises {
		if p.Proven() && p.Equals(goal) {
			proplog.SearchTracef("prover: identity hit for %s", goal)
			result := prop.Mint(s.log, goal, "identity", frameID, p.Provenance())
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Contradiction is not decomposable by any of the table's nine rules, so
	// proving it is handled as a direct scan for a complementary literal
	// pair among the premises (rules.Contradicts), the base case every
	// proof-by-contradiction (rule 8) search bottoms out on.
	if _, ok := goal.(prop.Contradiction); ok {
		for _, p := range premises {
			n, isNot := p.(prop.Not)
			if !isNot || !p.Proven() {
				continue
			}
			for _, q := range premises {
				if q.Proven() && n.Inner.Equals(q) {
					result, err := rules.Contradicts(s.log, frameID, q, p)
					if err == nil {
						s.visited.Add(key, result)
						return result, nil
					}
				}
			}
		}
	}

	// Rule 2: conjunction introduction.
	if and, ok := goal.(prop.And); ok {
		proved := make([]prop.Proposition, len(and.Conjuncts))
		ok := true
		for i, c := range and.Conjuncts {
			p, err := s.prove(premises, c, depth+1, branchGuard, false)
			if err != nil {
				ok = false
				break
			}
			proved[i] = p
		}
		if ok {
			result, err := rules.And_(s.log, frameID, proved...)
			if err == nil {
				s.visited.Add(key, result)
				return result, nil
			}
		}
	}

	// Rule 3: disjunction introduction. rules.Or_ always places the proved
	// disjunct first, so to land on a proposition structurally equal to
	// goal (disjuncts in their original order) the prover mints the
	// positional form itself, under the same proven-self precondition Or_
	// enforces.
	if or, ok := goal.(prop.Or); ok {
		for i, d := range or.Disjuncts {
			p, err := s.prove(premises, d, depth+1, branchGuard, false)
			if err != nil {
				continue
			}
			all := append([]prop.Proposition{}, or.Disjuncts...)
			all[i] = p
			result := prop.Mint(s.log, prop.Or{Disjuncts: all}, "or_introduction", frameID, p.Provenance())
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Rule 4: implication introduction. The sub-search runs against extended
	// premises (the antecedent is now assumed), so it is passed noRecurse
	// rather than branchGuard: a goal text repeat under a strictly larger
	// premise set is a different proof state, not a loop.
	if impl, ok := goal.(prop.Implies); ok {
		if result, err := s.tryImplicationIntroduction(premises, impl, depth, noRecurse); err == nil {
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Rule 5: universal introduction. Same reasoning as rule 4: a freshly
	// declared variable changes the proof state even when the body's text
	// recurs.
	if forall, ok := goal.(prop.Forall); ok && !variableMentioned(forall.Var, premises) {
		if result, err := s.tryUniversalIntroduction(premises, forall, depth, noRecurse); err == nil {
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Rule 6: modus ponens on any premise A -> goal.
	for _, p := range premises {
		impl, ok := p.(prop.Implies)
		if !ok || !p.Proven() || !impl.Consequent.Equals(goal) {
			continue
		}
		antecedent, err := s.prove(premises, impl.Antecedent, depth+1, branchGuard, false)
		if err != nil {
			continue
		}
		result, err := rules.ModusPonens(s.log, frameID, antecedent, impl)
		if err == nil {
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Rule 7: case analysis on any premise A1 v ... v An. Every branch proves
	// the very same goal again, just under a case's extra assumption, so this
	// is deliberately passed noRecurse (the goal-before-this-call guard),
	// never branchGuard: branchGuard would make the prover refuse to prove
	// goal a second time inside a branch it opened specifically to prove
	// goal, breaking case analysis outright.
	for _, p := range premises {
		disj, ok := p.(prop.Or)
		if !ok || !p.Proven() {
			continue
		}
		if result, err := s.tryCaseAnalysis(premises, disj, goal, depth, noRecurse); err == nil {
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Rule 8: negation introduction / proof by contradiction (classical
	// only). The sub-search target is Contradiction, not goal, under a
	// strictly larger premise set, so it gets noRecurse rather than
	// branchGuard for the same reason as rules 4, 5, and 7.
	if s.cfg.UseClassicalLogic {
		if result, err := s.tryProofByContradiction(premises, goal, depth, noRecurse); err == nil {
			s.visited.Add(key, result)
			return result, nil
		}
	}

	// Rule 9: De Morgan normalization, one-shot per branch.
	if !triedDeMorgan {
		if result, err := s.tryDeMorganNormalization(premises, goal, depth, branchGuard); err == nil {
			s.visited.Add(key, result)
			return result, nil
		}
	}

	return nil, s.fail(goal, "exhausted", "no rule in the table applies")
}

func (s *searcher) tryImplicationIntroduction(premises []prop.Proposition, impl prop.Implies, depth int, noRecurse stringset.Set) (prop.Proposition, error) {
	s.stack.Open()
	assumed, err := s.stack.Assume(impl.Antecedent)
	if err != nil {
		return nil, err
	}
	extended := append(append([]prop.Proposition{}, premises...), assumed)
	consequent, err := s.prove(extended, impl.Consequent, depth+1, noRecurse, false)
	if err != nil {
		s.stack.Close()
		return nil, err
	}
	if err := s.stack.Conclude(consequent); err != nil {
		s.stack.Close()
		return nil, err
	}
	results, err := s.stack.Close()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: implication introduction produced no conclusion", ErrNoRuleApplies)
	}
	return results[0], nil
}

// variableMentioned reports whether v occurs free in any premise; universal
// introduction is only sound for a variable the premises say nothing about.
func variableMentioned(v term.Variable, premises []prop.Proposition) bool {
	for _, p := range premises {
		for _, fv := range p.FreeVars() {
			if fv.Name == v.Name {
				return true
			}
		}
	}
	return false
}

func (s *searcher) tryUniversalIntroduction(premises []prop.Proposition, forall prop.Forall, depth int, noRecurse stringset.Set) (prop.Proposition, error) {
	s.stack.Open()
	if _, err := s.stack.DeclareVariable(forall.Var.Name, forall.Var.Attrs); err != nil {
		s.stack.Close()
		return nil, err
	}
	body, err := s.prove(premises, forall.Body, depth+1, noRecurse, false)
	if err != nil {
		s.stack.Close()
		return nil, err
	}
	if err := s.stack.Conclude(body); err != nil {
		s.stack.Close()
		return nil, err
	}
	results, err := s.stack.Close()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: universal introduction produced no conclusion", ErrNoRuleApplies)
	}
	return results[0], nil
}

func (s *searcher) tryCaseAnalysis(premises []prop.Proposition, disj prop.Or, goal prop.Proposition, depth int, noRecurse stringset.Set) (prop.Proposition, error) {
	impls := make([]prop.Implies, len(disj.Disjuncts))
	for i, d := range disj.Disjuncts {
		s.stack.Open()
		assumed, err := s.stack.Assume(d)
		if err != nil {
			s.stack.Close()
			return nil, err
		}
		extended := append(append([]prop.Proposition{}, premises...), assumed)
		proved, err := s.prove(extended, goal, depth+1, noRecurse, false)
		if err != nil {
			s.stack.Close()
			return nil, err
		}
		if err := s.stack.Conclude(proved); err != nil {
			s.stack.Close()
			return nil, err
		}
		results, err := s.stack.Close()
		if err != nil || len(results) == 0 {
			return nil, fmt.Errorf("%w: case analysis branch %d produced no conclusion", ErrNoRuleApplies, i)
		}
		impl, ok := results[0].(prop.Implies)
		if !ok {
			return nil, fmt.Errorf("%w: case analysis branch %d did not discharge to an implication", ErrNoRuleApplies, i)
		}
		impls[i] = impl
	}
	frameID := s.stack.CurrentFrameID()
	combined, err := rules.ByCases(s.log, frameID, disj, impls...)
	if err != nil {
		return nil, err
	}
	return combined, nil
}

// tryProofByContradiction implements rule 8: assume not(goal), search for
// Contradiction, and if one is found discharge goal directly. Unlike
// implication introduction, reductio ad absurdum does not wrap goal behind
// an Implies(not(goal), ...) — it discharges the assumption entirely — so
// this bypasses Stack.Conclude/Close's Implies-wrapping and instead closes
// the frame with nothing concluded, then re-mints goal at the parent frame.
func (s *searcher) tryProofByContradiction(premises []prop.Proposition, goal prop.Proposition, depth int, noRecurse stringset.Set) (prop.Proposition, error) {
	parentFrame := s.stack.CurrentFrameID()
	s.stack.Open()
	assumed, err := s.stack.Assume(prop.NewNot(goal))
	if err != nil {
		s.stack.Close()
		return nil, err
	}
	extended := append(append([]prop.Proposition{}, premises...), assumed)
	contradiction, err := s.prove(extended, prop.NewContradiction(), depth+1, noRecurse, false)
	if err != nil {
		s.stack.Close()
		return nil, err
	}
	innerFrame := s.stack.CurrentFrameID()
	derived, err := rules.ExFalso(s.log, innerFrame, contradiction.(prop.Contradiction), goal)
	if _, closeErr := s.stack.Close(); closeErr != nil {
		return nil, closeErr
	}
	if err != nil {
		return nil, err
	}
	return prop.Mint(s.log, goal, "proof_by_contradiction", parentFrame, derived.Provenance()), nil
}

func (s *searcher) tryDeMorganNormalization(premises []prop.Proposition, goal prop.Proposition, depth int, noRecurse stringset.Set) (prop.Proposition, error) {
	normalizedGoal, goalChanged := deMorganNormalize(goal)
	normalizedPremises := make([]prop.Proposition, len(premises))
	anyPremiseChanged := false
	for i, p := range premises {
		np, changed := deMorganNormalize(p)
		normalizedPremises[i] = np
		if changed {
			anyPremiseChanged = true
			normalizedPremises[i] = prop.Mint(s.log, np, "de_morgan", p.FrameID(), p.Provenance())
		}
	}
	if !goalChanged && !anyPremiseChanged {
		return nil, fmt.Errorf("%w: nothing to normalize", ErrNoRuleApplies)
	}
	proved, err := s.prove(normalizedPremises, normalizedGoal, depth+1, noRecurse, true)
	if err != nil {
		return nil, err
	}
	if goalChanged {
		frameID := s.stack.CurrentFrameID()
		return rules.DeMorgan(s.log, frameID, proved)
	}
	return proved, nil
}

// deMorganNormalize applies one De Morgan rewrite to the top level of p, if
// applicable, without proof obligations (it is a pure syntactic rewrite used
// to construct the normalized goal/premises to search against; the actual
// proof step is produced by rules.DeMorgan once a proof of the normalized
// form is in hand).
func deMorganNormalize(p prop.Proposition) (prop.Proposition, bool) {
	switch v := p.(type) {
	case prop.Not:
		switch inner := v.Inner.(type) {
		case prop.And:
			return prop.Or{Disjuncts: negateAll(inner.Conjuncts)}, true
		case prop.Or:
			return prop.And{Conjuncts: negateAll(inner.Disjuncts)}, true
		}
	}
	return p, false
}

func negateAll(ps []prop.Proposition) []prop.Proposition {
	out := make([]prop.Proposition, len(ps))
	for i, p := range ps {
		out[i] = prop.NewNot(p)
	}
	return out
}

func (s *searcher) fail(goal prop.Proposition, rule, format string, args ...interface{}) error {
	s.attempts = append(s.attempts, Attempt{Rule: rule, Goal: goal})
	proplog.SearchTracef("prover: %s failed on %s: %s", rule, goal, fmt.Sprintf(format, args...))
	return &NoRuleAppliesError{Goal: goal, Attempts: append([]Attempt{}, s.attempts...)}
}
