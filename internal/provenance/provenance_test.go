package provenance

import "testing"

func TestRecordAndDescribe(t *testing.T) {
	log := NewLog()
	premise := log.Record("given")
	derived := log.Record("modus_ponens", premise)

	if got, want := log.Describe(premise), "given"; got != want {
		t.Errorf("Describe(premise) = %q, want %q", got, want)
	}
	want := "modus_ponens(" + premise.String() + ")"
	if got := log.Describe(derived); got != want {
		t.Errorf("Describe(derived) = %q, want %q", got, want)
	}
	if log.Len() != 2 {
		t.Errorf("Len() = %d, want 2", log.Len())
	}
}

func TestZeroRefIsInvalid(t *testing.T) {
	var r Ref
	if r.Valid() {
		t.Errorf("zero Ref must be invalid")
	}
	if got, want := r.String(), "<unproven>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDescribeUnknownRef(t *testing.T) {
	a := NewLog()
	b := NewLog()
	ref := a.Record("given")
	if got, want := b.Describe(ref), "<unknown>"; got != want {
		t.Errorf("Describe across logs = %q, want %q", got, want)
	}
}

func TestEntryLookup(t *testing.T) {
	log := NewLog()
	ref := log.Record("given")
	e, ok := log.Entry(ref)
	if !ok {
		t.Fatalf("expected entry to be found")
	}
	if e.Rule != "given" {
		t.Errorf("Entry.Rule = %q, want %q", e.Rule, "given")
	}
	if _, ok := log.Entry(Ref{}); ok {
		t.Errorf("expected zero Ref to miss")
	}
}
