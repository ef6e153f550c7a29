package prop

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/term"
)

func TestMintSetsProvenAndProvenance(t *testing.T) {
	log := provenance.NewLog()
	p := NewAtom("P")
	if p.Proven() {
		t.Fatalf("freshly built atom must start unproven")
	}
	minted := Mint(log, p, "given", 0)
	if !minted.Proven() {
		t.Errorf("Mint must set Proven() to true")
	}
	if !minted.Provenance().Valid() {
		t.Errorf("Mint must attach a valid provenance ref")
	}
	// Mint must not mutate the original value.
	if p.Proven() {
		t.Errorf("Mint must not mutate its input in place")
	}
}

func TestUnmintClearsProven(t *testing.T) {
	log := provenance.NewLog()
	minted := Mint(log, NewAtom("P"), "given", 0)
	cleared := Unmint(minted)
	if cleared.Proven() {
		t.Errorf("Unmint must clear Proven()")
	}
}

func TestMarkAssumptionSetsIsAssumption(t *testing.T) {
	log := provenance.NewLog()
	a := MarkAssumption(log, NewAtom("A"), 3)
	if !a.Proven() || !a.IsAssumption() {
		t.Errorf("MarkAssumption must set both Proven() and IsAssumption()")
	}
	if a.FrameID() != 3 {
		t.Errorf("FrameID() = %d, want 3", a.FrameID())
	}
}

func TestEqualsIgnoresProvenance(t *testing.T) {
	log := provenance.NewLog()
	p := NewAtom("P")
	minted := Mint(log, p, "given", 0)
	if !p.Equals(minted) {
		t.Errorf("Equals must ignore proven/provenance, only compare structure")
	}
}

func TestAndConjunctsOrderSensitive(t *testing.T) {
	p, q := NewAtom("P"), NewAtom("Q")
	if NewAnd(p, q).Equals(NewAnd(q, p)) {
		t.Errorf("And must be order-sensitive")
	}
}

func TestForallFreeVarsExcludesBoundVariable(t *testing.T) {
	x := term.NewVariable("x")
	body := NewAtom("P", x)
	forall := NewForall(x, body)
	if len(forall.FreeVars()) != 0 {
		t.Errorf("FreeVars() = %v, want none (x is bound)", forall.FreeVars())
	}
	if !forall.Var.Bound {
		t.Errorf("NewForall must mark its variable bound")
	}
}

func TestApplySubstOnNot(t *testing.T) {
	x := term.NewVariable("x")
	p := NewNot(NewAtom("P", x))
	subst := term.SubstMap{}.Bind(x, term.NewConstant("c"))
	got := p.ApplySubst(subst)
	want := NewNot(NewAtom("P", term.NewConstant("c")))
	if !got.Equals(want) {
		t.Errorf("ApplySubst(Not) = %v, want %v", got, want)
	}
}

func TestExOrStringListsAllArguments(t *testing.T) {
	// ExOr has no truth-evaluation logic in the kernel itself (it is only a
	// syntactic constructor here); this test only pins down its String form
	// for a three-argument exclusive-or.
	e := NewExOr(NewAtom("A"), NewAtom("B"), NewAtom("C"))
	if got, want := e.String(), "exor(A, B, C)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAtomFreeVarsDedupesAcrossArguments(t *testing.T) {
	x, y := term.NewVariable("x"), term.NewVariable("y")
	atom := NewAtom("P", x, y, x)
	want := []term.Variable{x, y}
	compareFn := func(a, b term.Variable) bool { return a.Equals(b) }
	if !cmp.Equal(atom.FreeVars(), want, cmp.Comparer(compareFn)) {
		t.Errorf("FreeVars() = %v, want %v", atom.FreeVars(), want)
	}
}

func TestContradictionHasNoFreeVars(t *testing.T) {
	c := NewContradiction()
	if len(c.FreeVars()) != 0 {
		t.Errorf("Contradiction must have no free variables")
	}
}
