package prover

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pylogic-go/pylogic/config"
	"github.com/pylogic-go/pylogic/context"
	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
)

func given(log *provenance.Log, p prop.Proposition) prop.Proposition {
	return prop.Mint(log, p, "given", context.RootFrame)
}

func propEquals(a, b prop.Proposition) bool { return a.Equals(b) }

// scenario 1: P, P -> (Q v R), (Q v R) -> not S |- not S.
func TestProveModusPonensChain(t *testing.T) {
	log := provenance.NewLog()
	p, q, r, s := prop.NewAtom("P"), prop.NewAtom("Q"), prop.NewAtom("R"), prop.NewAtom("S")
	qr := prop.NewOr(q, r)
	premises := []prop.Proposition{
		given(log, p),
		given(log, prop.NewImplies(p, qr)),
		given(log, prop.NewImplies(qr, prop.NewNot(s))),
	}
	goal := prop.NewNot(s)
	got, err := Prove(config.Default(), premises, goal)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if diff := cmp.Diff(goal, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Prove() mismatch (-want +got):\n%s", diff)
	}
	if !got.Proven() {
		t.Errorf("Prove() result must be proven")
	}
}

// scenario 2: A v B, not B |- A.
func TestProveByCases(t *testing.T) {
	log := provenance.NewLog()
	a, b := prop.NewAtom("A"), prop.NewAtom("B")
	premises := []prop.Proposition{
		given(log, prop.NewOr(a, b)),
		given(log, prop.NewNot(b)),
	}
	got, err := Prove(config.Default(), premises, a)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if diff := cmp.Diff(a, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Prove() mismatch (-want +got):\n%s", diff)
	}
	if !got.Proven() {
		t.Errorf("Prove() result must be proven")
	}
}

// scenario 3: C -> G, B -> F, B v C |- F v G.
func TestProveCaseAnalysisOnDisjointPremise(t *testing.T) {
	log := provenance.NewLog()
	b, c, f, g := prop.NewAtom("B"), prop.NewAtom("C"), prop.NewAtom("F"), prop.NewAtom("G")
	premises := []prop.Proposition{
		given(log, prop.NewImplies(c, g)),
		given(log, prop.NewImplies(b, f)),
		given(log, prop.NewOr(b, c)),
	}
	goal := prop.NewOr(f, g)
	got, err := Prove(config.Default(), premises, goal)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if diff := cmp.Diff(goal, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Prove() mismatch (-want +got):\n%s", diff)
	}
	if !got.Proven() {
		t.Errorf("Prove() result must be proven")
	}
}

// scenario 5: (no premises) |- B -> (not A -> B).
func TestProveNestedImplicationIntroduction(t *testing.T) {
	a, b := prop.NewAtom("A"), prop.NewAtom("B")
	goal := prop.NewImplies(b, prop.NewImplies(prop.NewNot(a), b))
	got, err := Prove(config.Default(), nil, goal)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if diff := cmp.Diff(goal, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Prove() mismatch (-want +got):\n%s", diff)
	}
	if !got.Proven() {
		t.Errorf("Prove() result must be proven")
	}
}

// scenario 7: classical-only: not not P |- P.
func TestProveDoubleNegationClassicalOnly(t *testing.T) {
	log := provenance.NewLog()
	p := prop.NewAtom("P")
	premises := []prop.Proposition{given(log, prop.NewNot(prop.NewNot(p)))}

	classical := config.Default()
	classical.UseClassicalLogic = true
	got, err := Prove(classical, premises, p)
	if err != nil {
		t.Fatalf("Prove under classical logic: %v", err)
	}
	if diff := cmp.Diff(p, got, cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Prove() mismatch (-want +got):\n%s", diff)
	}
	if !got.Proven() {
		t.Errorf("Prove() result must be proven")
	}

	nonClassical := config.Default()
	nonClassical.UseClassicalLogic = false
	if _, err := Prove(nonClassical, premises, p); !errors.Is(err, ErrNoRuleApplies) {
		t.Errorf("expected ErrNoRuleApplies under non-classical logic, got %v", err)
	}
}

func TestProveIdentity(t *testing.T) {
	log := provenance.NewLog()
	p := prop.NewAtom("P")
	premises := []prop.Proposition{given(log, p)}
	got, err := Prove(config.Default(), premises, p)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if !got.Proven() {
		t.Errorf("expected identity proof to be proven")
	}
}

func TestProveFailsWhenNoRuleApplies(t *testing.T) {
	log := provenance.NewLog()
	premises := []prop.Proposition{given(log, prop.NewAtom("P"))}
	goal := prop.NewAtom("Q")
	_, err := Prove(config.Default(), premises, goal)
	if !errors.Is(err, ErrNoRuleApplies) {
		t.Errorf("expected ErrNoRuleApplies, got %v", err)
	}
	var structured *NoRuleAppliesError
	if !errors.As(err, &structured) {
		t.Fatalf("expected *NoRuleAppliesError, got %T", err)
	}
	if len(structured.Attempts) == 0 {
		t.Errorf("expected at least one recorded attempt")
	}
}

func TestDefaultMaxDepthScalesWithPremiseCount(t *testing.T) {
	if got, want := DefaultMaxDepth(0), 8; got != want {
		t.Errorf("DefaultMaxDepth(0) = %d, want %d", got, want)
	}
	if got, want := DefaultMaxDepth(4), 24; got != want {
		t.Errorf("DefaultMaxDepth(4) = %d, want %d", got, want)
	}
}
