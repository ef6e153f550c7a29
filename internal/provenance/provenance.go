// Package provenance implements the append-only proof log. A proven
// Proposition never owns its provenance record directly (that would create a
// cyclic reference between propositions and the steps that produced them,
// see SPEC_FULL.md §9); instead it carries a Ref, an index into a Log that
// owns every entry.
package provenance

import (
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Ref identifies an entry in a Log, or the zero value for "no provenance"
// (terms constructed but never proven).
type Ref struct {
	id    string
	valid bool
}

// Valid reports whether this Ref points at a real log entry.
func (r Ref) Valid() bool { return r.valid }

func (r Ref) String() string {
	if !r.valid {
		return "<unproven>"
	}
	return r.id
}

// Entry records one checked rule application or oracle call.
type Entry struct {
	Rule   string
	Inputs []Ref
}

// Log is an append-only arena of provenance entries, keyed by ULID so that
// entries sort lexicographically by creation order even across goroutine-free
// concurrent callers of the same process (SPEC_FULL.md §11).
type Log struct {
	entropy *ulid.MonotonicEntropy
	entries map[string]Entry
	order   []string
}

// NewLog constructs an empty provenance log.
func NewLog() *Log {
	return &Log{
		entropy: ulid.Monotonic(rand.Reader, 0),
		entries: make(map[string]Entry),
	}
}

// Record appends a new entry and returns its Ref.
func (l *Log) Record(rule string, inputs ...Ref) Ref {
	id := ulid.MustNew(ulid.Now(), l.entropy).String()
	l.entries[id] = Entry{Rule: rule, Inputs: inputs}
	l.order = append(l.order, id)
	return Ref{id: id, valid: true}
}

// Describe renders the "deduced_from" string the glossary promises: the rule
// name and the provenance ids of its inputs.
func (l *Log) Describe(r Ref) string {
	if !r.valid {
		return "<unproven>"
	}
	e, ok := l.entries[r.id]
	if !ok {
		return "<unknown>"
	}
	if len(e.Inputs) == 0 {
		return e.Rule
	}
	return fmt.Sprintf("%s(%s)", e.Rule, joinRefs(e.Inputs))
}

// Entry returns the recorded entry for r.
func (l *Log) Entry(r Ref) (Entry, bool) {
	if !r.valid {
		return Entry{}, false
	}
	e, ok := l.entries[r.id]
	return e, ok
}

// Len returns the number of entries recorded so far.
func (l *Log) Len() int { return len(l.order) }

func joinRefs(refs []Ref) string {
	s := ""
	for i, r := range refs {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s
}
