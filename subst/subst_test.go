package subst

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/term"
)

func propEquals(a, b prop.Proposition) bool { return a.Equals(b) }

func termEquals(a, b term.Term) bool { return a.Equals(b) }

func TestSubstituteReplacesFreeOccurrence(t *testing.T) {
	x := term.NewVariable("x")
	p := prop.NewAtom("P", x)
	got := Substitute(p, x, term.NewConstant("c"))
	want := prop.NewAtom("P", term.NewConstant("c"))
	if diff := cmp.Diff(want, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteDoesNotDescendUnderBinderForBoundVariable(t *testing.T) {
	x := term.NewVariable("x")
	body := prop.NewAtom("P", x)
	forall := prop.NewForall(x, body)
	// Substituting for x itself must leave a forall(x, ...) body untouched,
	// since x is bound there, not free.
	got := Substitute(forall, x, term.NewConstant("c"))
	if diff := cmp.Diff(forall, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Substitute(forall(x, P(x)), x, c) mismatch, want unchanged (-want +got):\n%s", diff)
	}
}

func TestSubstituteRenamesBoundVariableToAvoidCapture(t *testing.T) {
	x, y := term.NewVariable("x"), term.NewVariable("y")
	// forall(y, Q(x, y)), substitute x -> y would capture y unless the
	// bound y is renamed first.
	inner := prop.NewAtom("Q", x, y)
	forall := prop.NewForall(y, inner)
	got := Substitute(forall, x, y)
	asForall, ok := got.(prop.Forall)
	if !ok {
		t.Fatalf("expected a Forall, got %T", got)
	}
	if asForall.Var.Name == "y" {
		t.Errorf("expected bound variable to be renamed away from the captured name y, got %s", asForall.Var.Name)
	}
	for _, fv := range got.FreeVars() {
		if fv.Name == asForall.Var.Name {
			t.Errorf("renamed bound variable %s leaked as free", fv.Name)
		}
	}
}

func TestMatchBindsRepeatedVariableConsistently(t *testing.T) {
	v := term.NewVariable("V")
	pattern := prop.NewAtom("Eq", v, v)
	candidate := prop.NewAtom("Eq", term.NewConstant("a"), term.NewConstant("a"))
	env, ok := Match(pattern, candidate, map[string]bool{"V": true})
	if !ok {
		t.Fatalf("expected consistent repeated binding to match")
	}
	got, ok := env.Get(v)
	if !ok {
		t.Fatalf("expected V to be bound in the match environment")
	}
	if diff := cmp.Diff(term.NewConstant("a"), got, cmp.Comparer(termEquals)); diff != "" {
		t.Errorf("env[V] mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchRejectsInconsistentRepeatedVariable(t *testing.T) {
	v := term.NewVariable("V")
	pattern := prop.NewAtom("Eq", v, v)
	candidate := prop.NewAtom("Eq", term.NewConstant("a"), term.NewConstant("b"))
	if _, ok := Match(pattern, candidate, map[string]bool{"V": true}); ok {
		t.Errorf("expected mismatched repeated binding to fail")
	}
}

func TestMatchRequiresNonBoundSymbolsIdentical(t *testing.T) {
	pattern := prop.NewAtom("P", term.NewConstant("fixed"))
	candidate := prop.NewAtom("P", term.NewConstant("other"))
	if _, ok := Match(pattern, candidate, map[string]bool{}); ok {
		t.Errorf("expected a non-bound constant mismatch to fail matching")
	}
}
