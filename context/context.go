// Package context implements the assumption-context stack: a LIFO stack of
// frames holding local assumptions and declared local variables, used to
// discharge implications and to generalize to Forall (SPEC_FULL.md §4.1).
//
// There is no process-wide stack: every caller constructs its own *Stack with
// New, so independent proofs never share frames (SPEC_FULL.md §5).
package context

import (
	"errors"
	"fmt"

	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/proplog"
	"github.com/pylogic-go/pylogic/term"
)

// ErrContextMisuse is returned when an operation needs an open frame and none
// is open (close-without-open, conclude-outside-a-frame). Close does not check
// whether the frame it closes still owns references needed by the enclosing
// frame.
var ErrContextMisuse = errors.New("context: misuse")

// RootFrame is the id of the implicit, never-closed frame that exists below
// every explicitly opened frame.
const RootFrame = 0

type frame struct {
	id           int
	declaredVars []term.Variable
	assumptions  []prop.Proposition
	concluded    []prop.Proposition
}

// Stack is the assumption-context stack.
type Stack struct {
	log         *provenance.Log
	frames      []*frame
	nextFrameID int
}

// New constructs a Stack backed by log for minting assumption and
// close_assumptions_context provenance.
func New(log *provenance.Log) *Stack {
	return &Stack{log: log, nextFrameID: RootFrame + 1}
}

// Depth returns the number of explicitly open frames (0 at the root).
func (s *Stack) Depth() int { return len(s.frames) }

// CurrentFrameID returns the id of the innermost open frame, or RootFrame
// if none is open.
func (s *Stack) CurrentFrameID() int {
	if len(s.frames) == 0 {
		return RootFrame
	}
	return s.frames[len(s.frames)-1].id
}

// Live reports whether frameID is the root frame or is still on the open
// stack. A proposition whose FrameID() is not Live can no longer be safely
// reused as a premise: its supporting assumption may since have been
// discharged or dropped (SPEC_FULL.md §4.1 invariant; see DESIGN.md for why
// this is enforced by caller discipline rather than retroactive mutation).
func (s *Stack) Live(frameID int) bool {
	if frameID == RootFrame {
		return true
	}
	for _, f := range s.frames {
		if f.id == frameID {
			return true
		}
	}
	return false
}

// Open pushes a new frame and returns its id.
func (s *Stack) Open() int {
	f := &frame{id: s.nextFrameID}
	s.nextFrameID++
	s.frames = append(s.frames, f)
	proplog.Tracef("context: open frame %d", f.id)
	return f.id
}

// DeclareVariable creates a fresh Variable owned by the current frame. If
// any proposition proven inside this frame depends on this variable,
// closing the frame generalizes it into an outer Forall.
func (s *Stack) DeclareVariable(name string, attrs term.Attributes) (term.Variable, error) {
	f, err := s.top()
	if err != nil {
		return term.Variable{}, err
	}
	v := term.NewVariableWithAttrs(name, attrs)
	f.declaredVars = append(f.declaredVars, v)
	return v, nil
}

// Assume marks p as proven with is_assumption=true and records it in the
// current frame.
func (s *Stack) Assume(p prop.Proposition) (prop.Proposition, error) {
	f, err := s.top()
	if err != nil {
		return nil, err
	}
	minted := prop.MarkAssumption(s.log, p, f.id)
	f.assumptions = append(f.assumptions, minted)
	proplog.Tracef("context: assume %s in frame %d", minted.String(), f.id)
	return minted, nil
}

// Conclude records p as a desired conclusion of the current frame. Per
// SPEC_FULL.md §4.1, concluding an unproven proposition is a no-op: it is
// silently dropped rather than recorded, so GetProven/Close never see it.
func (s *Stack) Conclude(p prop.Proposition) error {
	f, err := s.top()
	if err != nil {
		return err
	}
	if !p.Proven() {
		return nil
	}
	f.concluded = append(f.concluded, p)
	return nil
}

// GetProven returns the propositions concluded so far in the current frame
// that are still proven.
func (s *Stack) GetProven() ([]prop.Proposition, error) {
	f, err := s.top()
	if err != nil {
		return nil, err
	}
	out := make([]prop.Proposition, 0, len(f.concluded))
	for _, p := range f.concluded {
		if p.Proven() {
			out = append(out, p)
		}
	}
	return out, nil
}

// Close pops the current frame. Every concluded proposition still proven is
// wrapped in Forall for each declared variable (outermost first, in
// declaration order), then in Implies for each live assumption (the
// last-recorded assumption of this frame becomes the outermost antecedent;
// see DESIGN.md for why this also produces the expected outer nesting across
// frames), and minted as proven in the enclosing frame with provenance
// "close_assumptions_context".
func (s *Stack) Close() ([]prop.Proposition, error) {
	f, err := s.top()
	if err != nil {
		return nil, err
	}
	s.frames = s.frames[:len(s.frames)-1]
	parent := s.CurrentFrameID()

	var results []prop.Proposition
	for _, p := range f.concluded {
		if !p.Proven() {
			continue
		}
		wrapped := p
		for i := len(f.declaredVars) - 1; i >= 0; i-- {
			wrapped = prop.NewForall(f.declaredVars[i], wrapped)
		}
		for _, a := range f.assumptions {
			wrapped = prop.NewImplies(a, wrapped)
		}
		inputs := []provenance.Ref{p.Provenance()}
		for _, a := range f.assumptions {
			inputs = append(inputs, a.Provenance())
		}
		results = append(results, prop.Mint(s.log, wrapped, "close_assumptions_context", parent, inputs...))
	}
	proplog.Tracef("context: close frame %d -> %d conclusion(s)", f.id, len(results))
	return results, nil
}

func (s *Stack) top() (*frame, error) {
	if len(s.frames) == 0 {
		return nil, fmt.Errorf("%w: no open frame", ErrContextMisuse)
	}
	return s.frames[len(s.frames)-1], nil
}
