package context

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/term"
)

func propEquals(a, b prop.Proposition) bool { return a.Equals(b) }

func TestConcludeUnprovenIsSilentlyDropped(t *testing.T) {
	s := New(provenance.NewLog())
	s.Open()
	if err := s.Conclude(prop.NewAtom("P")); err != nil {
		t.Fatalf("Conclude must not error on an unproven proposition: %v", err)
	}
	got, err := s.GetProven()
	if err != nil {
		t.Fatalf("GetProven: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetProven() = %v, want empty (unproven conclude was dropped)", got)
	}
}

func TestCloseWrapsSingleAssumption(t *testing.T) {
	log := provenance.NewLog()
	s := New(log)
	s.Open()
	b := prop.Mint(log, prop.NewAtom("B"), "given", s.CurrentFrameID())
	if _, err := s.Assume(prop.NewAtom("A")); err != nil {
		t.Fatalf("Assume: %v", err)
	}
	if err := s.Conclude(b); err != nil {
		t.Fatalf("Conclude: %v", err)
	}
	results, err := s.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Close() produced %d results, want 1", len(results))
	}
	want := prop.NewImplies(prop.NewAtom("A"), prop.NewAtom("B"))
	if diff := cmp.Diff(want, results[0], cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("Close() mismatch (-want +got):\n%s", diff)
	}
	if !results[0].Proven() {
		t.Errorf("Close() result must be proven")
	}
}

// TestCloseNestedFramesProduceScenario5Shape covers spec scenario 5: with no
// premises, a nested open(B assumed outer)/open(not-A assumed inner)/close
// sequence must produce B -> (not A -> B).
func TestCloseNestedFramesProduceScenario5Shape(t *testing.T) {
	log := provenance.NewLog()
	s := New(log)

	s.Open()
	bAssumed, err := s.Assume(prop.NewAtom("B"))
	if err != nil {
		t.Fatalf("outer Assume: %v", err)
	}

	s.Open()
	if _, err := s.Assume(prop.NewNot(prop.NewAtom("A"))); err != nil {
		t.Fatalf("inner Assume: %v", err)
	}
	if err := s.Conclude(bAssumed); err != nil {
		t.Fatalf("inner Conclude: %v", err)
	}
	innerResults, err := s.Close()
	if err != nil {
		t.Fatalf("inner Close: %v", err)
	}
	if len(innerResults) != 1 {
		t.Fatalf("inner Close() produced %d results, want 1", len(innerResults))
	}
	innerWant := prop.NewImplies(prop.NewNot(prop.NewAtom("A")), prop.NewAtom("B"))
	if diff := cmp.Diff(innerWant, innerResults[0], cmp.Comparer(propEquals)); diff != "" {
		t.Fatalf("inner Close() mismatch (-want +got):\n%s", diff)
	}

	if err := s.Conclude(innerResults[0]); err != nil {
		t.Fatalf("outer Conclude: %v", err)
	}
	outerResults, err := s.Close()
	if err != nil {
		t.Fatalf("outer Close: %v", err)
	}
	if len(outerResults) != 1 {
		t.Fatalf("outer Close() produced %d results, want 1", len(outerResults))
	}
	want := prop.NewImplies(prop.NewAtom("B"), prop.NewImplies(prop.NewNot(prop.NewAtom("A")), prop.NewAtom("B")))
	if diff := cmp.Diff(want, outerResults[0], cmp.Comparer(propEquals)); diff != "" {
		t.Errorf("outer Close() mismatch (-want +got):\n%s", diff)
	}
}

func TestCloseGeneralizesDeclaredVariables(t *testing.T) {
	log := provenance.NewLog()
	s := New(log)
	s.Open()
	v, err := s.DeclareVariable("x", term.Attributes{})
	if err != nil {
		t.Fatalf("DeclareVariable: %v", err)
	}
	p := prop.Mint(log, prop.NewAtom("P", v), "by_inspection", s.CurrentFrameID())
	if err := s.Conclude(p); err != nil {
		t.Fatalf("Conclude: %v", err)
	}
	results, err := s.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Close() produced %d results, want 1", len(results))
	}
	forall, ok := results[0].(prop.Forall)
	if !ok {
		t.Fatalf("Close() = %T, want prop.Forall", results[0])
	}
	if forall.Var.Name != "x" {
		t.Errorf("Forall.Var = %v, want x", forall.Var)
	}
}

func TestLiveTracksOpenFrames(t *testing.T) {
	s := New(provenance.NewLog())
	if !s.Live(RootFrame) {
		t.Errorf("RootFrame must always be live")
	}
	id := s.Open()
	if !s.Live(id) {
		t.Errorf("frame %d must be live while open", id)
	}
	if _, err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.Live(id) {
		t.Errorf("frame %d must not be live after Close", id)
	}
}

func TestCloseWithoutOpenIsMisuse(t *testing.T) {
	s := New(provenance.NewLog())
	if _, err := s.Close(); err == nil {
		t.Errorf("expected ErrContextMisuse closing with nothing open")
	}
}
