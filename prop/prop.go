// Package prop implements the proposition AST: atoms and the logical
// connectives and built-in relations of SPEC_FULL.md §2/§3. Every variant
// embeds a private base carrying the proven/is_assumption/provenance/owning
// frame fields; those fields are mutated only through the exhaustive Mint,
// MarkAssumption and Unmint functions below, which are the sole minting path
// available to the rules, context and oracle packages. No Proposition method
// can set its own proven flag.
package prop

import (
	"fmt"
	"strings"

	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/term"
)

// Proposition is the tagged sum of logical forms.
type Proposition interface {
	// Marker method.
	isProposition()

	String() string

	// Equals is structural equality: same constructor, recursively equal
	// children. proven is never part of identity.
	Equals(Proposition) bool

	// ApplySubst performs a plain structural substitution with no
	// capture-avoidance. Callers that substitute into a proposition that
	// may bind variables should use package subst instead.
	ApplySubst(s term.Subst) Proposition

	FreeVars() []term.Variable

	// Proven reports whether the kernel has minted this value through a
	// checked rule application, an oracle, or assume().
	Proven() bool

	// IsAssumption reports whether this value was minted by assume()
	// (MarkAssumption). The flag is not cleared when the owning frame
	// closes; use context.Stack.Live on FrameID() to check that.
	IsAssumption() bool

	// Provenance returns the index of the proof step that minted this
	// value, or the zero Ref if unproven.
	Provenance() provenance.Ref

	// FrameID returns the id of the frame this proposition's proof support
	// is owned by (0 for the implicit root/global frame).
	FrameID() int
}

type base struct {
	proven       bool
	isAssumption bool
	prov         provenance.Ref
	frameID      int
}

func (b base) Proven() bool                  { return b.proven }
func (b base) IsAssumption() bool            { return b.isAssumption }
func (b base) Provenance() provenance.Ref    { return b.prov }
func (b base) FrameID() int                  { return b.frameID }

// withBase is the single exhaustive type switch every minting function
// funnels through (SPEC_FULL.md §9: "dispatching by constructor is
// exhaustive pattern matching, not dynamic dispatch").
func withBase(p Proposition, f func(base) base) Proposition {
	switch v := p.(type) {
	case Atom:
		v.base = f(v.base)
		return v
	case Not:
		v.base = f(v.base)
		return v
	case And:
		v.base = f(v.base)
		return v
	case Or:
		v.base = f(v.base)
		return v
	case ExOr:
		v.base = f(v.base)
		return v
	case Implies:
		v.base = f(v.base)
		return v
	case Iff:
		v.base = f(v.base)
		return v
	case Forall:
		v.base = f(v.base)
		return v
	case Exists:
		v.base = f(v.base)
		return v
	case ExistsUnique:
		v.base = f(v.base)
		return v
	case ForallInSet:
		v.base = f(v.base)
		return v
	case ExistsInSet:
		v.base = f(v.base)
		return v
	case Eq:
		v.base = f(v.base)
		return v
	case Lt:
		v.base = f(v.base)
		return v
	case Gt:
		v.base = f(v.base)
		return v
	case Le:
		v.base = f(v.base)
		return v
	case Ge:
		v.base = f(v.base)
		return v
	case MemberOf:
		v.base = f(v.base)
		return v
	case SubsetOf:
		v.base = f(v.base)
		return v
	case Divides:
		v.base = f(v.base)
		return v
	case Prime:
		v.base = f(v.base)
		return v
	case Contradiction:
		v.base = f(v.base)
		return v
	default:
		panic(fmt.Sprintf("prop: unknown proposition type %T", p))
	}
}

// Mint is the only way a rule or oracle may turn an unproven Proposition
// into a proven one. rule names the checked rule or oracle that produced p;
// frameID is the id of the most enclosing frame of any supporting
// assumption (0 for the root frame); inputs are the provenance refs of the
// propositions p was derived from.
func Mint(log *provenance.Log, p Proposition, rule string, frameID int, inputs ...provenance.Ref) Proposition {
	ref := log.Record(rule, inputs...)
	return withBase(p, func(b base) base {
		b.proven = true
		b.isAssumption = false
		b.prov = ref
		b.frameID = frameID
		return b
	})
}

// MarkAssumption marks p as proven-as-assumption, owned by frameID. Used
// only by the context package's Assume.
func MarkAssumption(log *provenance.Log, p Proposition, frameID int) Proposition {
	ref := log.Record("assume")
	return withBase(p, func(b base) base {
		b.proven = true
		b.isAssumption = true
		b.prov = ref
		b.frameID = frameID
		return b
	})
}

// Unmint returns a copy of p with the proven and is-assumption flags cleared.
// context.Stack.Close does not call it; closed frames are detected through
// context.Stack.Live instead.
func Unmint(p Proposition) Proposition {
	return withBase(p, func(b base) base {
		b.proven = false
		b.isAssumption = false
		return b
	})
}

func joinProps(ps []Proposition, sep string) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}

func unionFreeVars(ps []Proposition) []term.Variable {
	seen := make(map[string]bool)
	var out []term.Variable
	for _, p := range ps {
		for _, v := range p.FreeVars() {
			if seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			out = append(out, v)
		}
	}
	return out
}

func removeVar(vs []term.Variable, name string) []term.Variable {
	var out []term.Variable
	for _, v := range vs {
		if v.Name != name {
			out = append(out, v)
		}
	}
	return out
}

// Atom is a proposition with a name and an ordered (possibly empty) list of
// term arguments.
type Atom struct {
	Name string
	Args []term.Term
	base
}

// NewAtom builds an unproven atom.
func NewAtom(name string, args ...term.Term) Atom {
	return Atom{Name: name, Args: args}
}

func (a Atom) isProposition() {}

func (a Atom) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	parts := make([]string, len(a.Args))
	for i, t := range a.Args {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", a.Name, strings.Join(parts, ", "))
}

func (a Atom) Equals(p Proposition) bool {
	b, ok := p.(Atom)
	if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equals(b.Args[i]) {
			return false
		}
	}
	return true
}

func (a Atom) ApplySubst(s term.Subst) Proposition {
	args := make([]term.Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = t.ApplySubst(s)
	}
	return Atom{Name: a.Name, Args: args}
}

func (a Atom) FreeVars() []term.Variable {
	var vs []term.Variable
	for _, t := range a.Args {
		vs = append(vs, t.FreeVars()...)
	}
	return dedupe(vs)
}

func dedupe(vs []term.Variable) []term.Variable {
	seen := make(map[string]bool, len(vs))
	var out []term.Variable
	for _, v := range vs {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		out = append(out, v)
	}
	return out
}

// Not is logical negation.
type Not struct {
	Inner Proposition
	base
}

// NewNot builds an unproven negation.
func NewNot(p Proposition) Not { return Not{Inner: p} }

func (n Not) isProposition() {}

func (n Not) String() string { return fmt.Sprintf("not(%s)", n.Inner.String()) }

func (n Not) Equals(p Proposition) bool {
	m, ok := p.(Not)
	return ok && n.Inner.Equals(m.Inner)
}

func (n Not) ApplySubst(s term.Subst) Proposition {
	return Not{Inner: n.Inner.ApplySubst(s)}
}

func (n Not) FreeVars() []term.Variable { return n.Inner.FreeVars() }

// And is conjunction of two or more propositions.
type And struct {
	Conjuncts []Proposition
	base
}

// NewAnd builds an unproven conjunction of at least one proposition.
func NewAnd(ps ...Proposition) And { return And{Conjuncts: ps} }

func (a And) isProposition() {}

func (a And) String() string { return fmt.Sprintf("and(%s)", joinProps(a.Conjuncts, ", ")) }

func (a And) Equals(p Proposition) bool {
	b, ok := p.(And)
	if !ok || len(a.Conjuncts) != len(b.Conjuncts) {
		return false
	}
	for i := range a.Conjuncts {
		if !a.Conjuncts[i].Equals(b.Conjuncts[i]) {
			return false
		}
	}
	return true
}

func (a And) ApplySubst(s term.Subst) Proposition {
	out := make([]Proposition, len(a.Conjuncts))
	for i, c := range a.Conjuncts {
		out[i] = c.ApplySubst(s)
	}
	return And{Conjuncts: out}
}

func (a And) FreeVars() []term.Variable { return unionFreeVars(a.Conjuncts) }

// Or is disjunction of two or more propositions.
type Or struct {
	Disjuncts []Proposition
	base
}

// NewOr builds an unproven disjunction of at least one proposition.
func NewOr(ps ...Proposition) Or { return Or{Disjuncts: ps} }

func (o Or) isProposition() {}

func (o Or) String() string { return fmt.Sprintf("or(%s)", joinProps(o.Disjuncts, ", ")) }

func (o Or) Equals(p Proposition) bool {
	b, ok := p.(Or)
	if !ok || len(o.Disjuncts) != len(b.Disjuncts) {
		return false
	}
	for i := range o.Disjuncts {
		if !o.Disjuncts[i].Equals(b.Disjuncts[i]) {
			return false
		}
	}
	return true
}

func (o Or) ApplySubst(s term.Subst) Proposition {
	out := make([]Proposition, len(o.Disjuncts))
	for i, d := range o.Disjuncts {
		out[i] = d.ApplySubst(s)
	}
	return Or{Disjuncts: out}
}

func (o Or) FreeVars() []term.Variable { return unionFreeVars(o.Disjuncts) }

// ExOr is exclusive-or: "exactly one argument is true", verbatim for any
// number of arguments — never the parity/odd-count reading (SPEC_FULL.md §9,
// spec.md §9 explicitly flags this).
type ExOr struct {
	Args []Proposition
	base
}

// NewExOr builds an unproven exclusive-or of at least two propositions.
func NewExOr(ps ...Proposition) ExOr { return ExOr{Args: ps} }

func (e ExOr) isProposition() {}

func (e ExOr) String() string { return fmt.Sprintf("exor(%s)", joinProps(e.Args, ", ")) }

func (e ExOr) Equals(p Proposition) bool {
	b, ok := p.(ExOr)
	if !ok || len(e.Args) != len(b.Args) {
		return false
	}
	for i := range e.Args {
		if !e.Args[i].Equals(b.Args[i]) {
			return false
		}
	}
	return true
}

func (e ExOr) ApplySubst(s term.Subst) Proposition {
	out := make([]Proposition, len(e.Args))
	for i, a := range e.Args {
		out[i] = a.ApplySubst(s)
	}
	return ExOr{Args: out}
}

func (e ExOr) FreeVars() []term.Variable { return unionFreeVars(e.Args) }

// Implies is material implication.
type Implies struct {
	Antecedent Proposition
	Consequent Proposition
	base
}

// NewImplies builds an unproven implication.
func NewImplies(a, c Proposition) Implies { return Implies{Antecedent: a, Consequent: c} }

func (i Implies) isProposition() {}

func (i Implies) String() string {
	return fmt.Sprintf("implies(%s, %s)", i.Antecedent.String(), i.Consequent.String())
}

func (i Implies) Equals(p Proposition) bool {
	j, ok := p.(Implies)
	return ok && i.Antecedent.Equals(j.Antecedent) && i.Consequent.Equals(j.Consequent)
}

func (i Implies) ApplySubst(s term.Subst) Proposition {
	return Implies{Antecedent: i.Antecedent.ApplySubst(s), Consequent: i.Consequent.ApplySubst(s)}
}

func (i Implies) FreeVars() []term.Variable {
	return unionFreeVars([]Proposition{i.Antecedent, i.Consequent})
}

// Iff is logical biconditional.
type Iff struct {
	Left  Proposition
	Right Proposition
	base
}

// NewIff builds an unproven biconditional.
func NewIff(l, r Proposition) Iff { return Iff{Left: l, Right: r} }

func (i Iff) isProposition() {}

func (i Iff) String() string { return fmt.Sprintf("iff(%s, %s)", i.Left.String(), i.Right.String()) }

func (i Iff) Equals(p Proposition) bool {
	j, ok := p.(Iff)
	return ok && i.Left.Equals(j.Left) && i.Right.Equals(j.Right)
}

func (i Iff) ApplySubst(s term.Subst) Proposition {
	return Iff{Left: i.Left.ApplySubst(s), Right: i.Right.ApplySubst(s)}
}

func (i Iff) FreeVars() []term.Variable { return unionFreeVars([]Proposition{i.Left, i.Right}) }

// Forall binds exactly one variable.
type Forall struct {
	Var  term.Variable
	Body Proposition
	base
}

// NewForall builds an unproven universal quantification; Var's Bound flag is
// set on the copy stored in this node.
func NewForall(v term.Variable, body Proposition) Forall {
	return Forall{Var: v.AsBound(), Body: body}
}

func (f Forall) isProposition() {}

func (f Forall) String() string { return fmt.Sprintf("forall(%s, %s)", f.Var.Name, f.Body.String()) }

func (f Forall) Equals(p Proposition) bool {
	g, ok := p.(Forall)
	return ok && f.Var.Name == g.Var.Name && f.Body.Equals(g.Body)
}

func (f Forall) ApplySubst(s term.Subst) Proposition {
	return Forall{Var: f.Var, Body: f.Body.ApplySubst(s)}
}

func (f Forall) FreeVars() []term.Variable { return removeVar(f.Body.FreeVars(), f.Var.Name) }

// Exists binds exactly one variable.
type Exists struct {
	Var  term.Variable
	Body Proposition
	base
}

// NewExists builds an unproven existential quantification.
func NewExists(v term.Variable, body Proposition) Exists {
	return Exists{Var: v.AsBound(), Body: body}
}

func (e Exists) isProposition() {}

func (e Exists) String() string { return fmt.Sprintf("exists(%s, %s)", e.Var.Name, e.Body.String()) }

func (e Exists) Equals(p Proposition) bool {
	g, ok := p.(Exists)
	return ok && e.Var.Name == g.Var.Name && e.Body.Equals(g.Body)
}

func (e Exists) ApplySubst(s term.Subst) Proposition {
	return Exists{Var: e.Var, Body: e.Body.ApplySubst(s)}
}

func (e Exists) FreeVars() []term.Variable { return removeVar(e.Body.FreeVars(), e.Var.Name) }

// ExistsUnique binds exactly one variable, asserting unique existence.
type ExistsUnique struct {
	Var  term.Variable
	Body Proposition
	base
}

// NewExistsUnique builds an unproven unique-existential quantification.
func NewExistsUnique(v term.Variable, body Proposition) ExistsUnique {
	return ExistsUnique{Var: v.AsBound(), Body: body}
}

func (e ExistsUnique) isProposition() {}

func (e ExistsUnique) String() string {
	return fmt.Sprintf("existsUnique(%s, %s)", e.Var.Name, e.Body.String())
}

func (e ExistsUnique) Equals(p Proposition) bool {
	g, ok := p.(ExistsUnique)
	return ok && e.Var.Name == g.Var.Name && e.Body.Equals(g.Body)
}

func (e ExistsUnique) ApplySubst(s term.Subst) Proposition {
	return ExistsUnique{Var: e.Var, Body: e.Body.ApplySubst(s)}
}

func (e ExistsUnique) FreeVars() []term.Variable { return removeVar(e.Body.FreeVars(), e.Var.Name) }

// ForallInSet restricts universal quantification to elements of Set.
type ForallInSet struct {
	Var  term.Variable
	Set  term.Term
	Body Proposition
	base
}

// NewForallInSet builds an unproven set-restricted universal quantification.
func NewForallInSet(v term.Variable, set term.Term, body Proposition) ForallInSet {
	return ForallInSet{Var: v.AsBound(), Set: set, Body: body}
}

func (f ForallInSet) isProposition() {}

func (f ForallInSet) String() string {
	return fmt.Sprintf("forallInSet(%s, %s, %s)", f.Var.Name, f.Set.String(), f.Body.String())
}

func (f ForallInSet) Equals(p Proposition) bool {
	g, ok := p.(ForallInSet)
	return ok && f.Var.Name == g.Var.Name && f.Set.Equals(g.Set) && f.Body.Equals(g.Body)
}

func (f ForallInSet) ApplySubst(s term.Subst) Proposition {
	return ForallInSet{Var: f.Var, Set: f.Set.ApplySubst(s), Body: f.Body.ApplySubst(s)}
}

func (f ForallInSet) FreeVars() []term.Variable {
	vs := removeVar(f.Body.FreeVars(), f.Var.Name)
	return dedupe(append(vs, f.Set.FreeVars()...))
}

// ExistsInSet restricts existential quantification to elements of Set.
type ExistsInSet struct {
	Var  term.Variable
	Set  term.Term
	Body Proposition
	base
}

// NewExistsInSet builds an unproven set-restricted existential quantification.
func NewExistsInSet(v term.Variable, set term.Term, body Proposition) ExistsInSet {
	return ExistsInSet{Var: v.AsBound(), Set: set, Body: body}
}

func (e ExistsInSet) isProposition() {}

func (e ExistsInSet) String() string {
	return fmt.Sprintf("existsInSet(%s, %s, %s)", e.Var.Name, e.Set.String(), e.Body.String())
}

func (e ExistsInSet) Equals(p Proposition) bool {
	g, ok := p.(ExistsInSet)
	return ok && e.Var.Name == g.Var.Name && e.Set.Equals(g.Set) && e.Body.Equals(g.Body)
}

func (e ExistsInSet) ApplySubst(s term.Subst) Proposition {
	return ExistsInSet{Var: e.Var, Set: e.Set.ApplySubst(s), Body: e.Body.ApplySubst(s)}
}

func (e ExistsInSet) FreeVars() []term.Variable {
	vs := removeVar(e.Body.FreeVars(), e.Var.Name)
	return dedupe(append(vs, e.Set.FreeVars()...))
}

// binaryRelation is the shared shape of the built-in term-level relations:
// two term operands, no sub-propositions.
type binaryRelation struct {
	Left  term.Term
	Right term.Term
}

func (r binaryRelation) equals(o binaryRelation) bool {
	return r.Left.Equals(o.Left) && r.Right.Equals(o.Right)
}

func (r binaryRelation) freeVars() []term.Variable {
	return dedupe(append(r.Left.FreeVars(), r.Right.FreeVars()...))
}

// Eq is the equality relation between two terms.
type Eq struct {
	binaryRelation
	base
}

// NewEq builds an unproven equality proposition.
func NewEq(l, r term.Term) Eq { return Eq{binaryRelation: binaryRelation{l, r}} }

func (e Eq) isProposition() {}
func (e Eq) String() string  { return fmt.Sprintf("eq(%s, %s)", e.Left, e.Right) }
func (e Eq) Equals(p Proposition) bool {
	f, ok := p.(Eq)
	return ok && e.binaryRelation.equals(f.binaryRelation)
}
func (e Eq) ApplySubst(s term.Subst) Proposition {
	return Eq{binaryRelation: binaryRelation{e.Left.ApplySubst(s), e.Right.ApplySubst(s)}}
}
func (e Eq) FreeVars() []term.Variable { return e.binaryRelation.freeVars() }

// Lt is the strict less-than relation.
type Lt struct {
	binaryRelation
	base
}

// NewLt builds an unproven less-than proposition.
func NewLt(l, r term.Term) Lt { return Lt{binaryRelation: binaryRelation{l, r}} }

func (l Lt) isProposition() {}
func (l Lt) String() string  { return fmt.Sprintf("lt(%s, %s)", l.Left, l.Right) }
func (l Lt) Equals(p Proposition) bool {
	m, ok := p.(Lt)
	return ok && l.binaryRelation.equals(m.binaryRelation)
}
func (l Lt) ApplySubst(s term.Subst) Proposition {
	return Lt{binaryRelation: binaryRelation{l.Left.ApplySubst(s), l.Right.ApplySubst(s)}}
}
func (l Lt) FreeVars() []term.Variable { return l.binaryRelation.freeVars() }

// Gt is the strict greater-than relation.
type Gt struct {
	binaryRelation
	base
}

// NewGt builds an unproven greater-than proposition.
func NewGt(l, r term.Term) Gt { return Gt{binaryRelation: binaryRelation{l, r}} }

func (g Gt) isProposition() {}
func (g Gt) String() string  { return fmt.Sprintf("gt(%s, %s)", g.Left, g.Right) }
func (g Gt) Equals(p Proposition) bool {
	h, ok := p.(Gt)
	return ok && g.binaryRelation.equals(h.binaryRelation)
}
func (g Gt) ApplySubst(s term.Subst) Proposition {
	return Gt{binaryRelation: binaryRelation{g.Left.ApplySubst(s), g.Right.ApplySubst(s)}}
}
func (g Gt) FreeVars() []term.Variable { return g.binaryRelation.freeVars() }

// Le is the less-or-equal relation.
type Le struct {
	binaryRelation
	base
}

// NewLe builds an unproven less-or-equal proposition.
func NewLe(l, r term.Term) Le { return Le{binaryRelation: binaryRelation{l, r}} }

func (l Le) isProposition() {}
func (l Le) String() string  { return fmt.Sprintf("le(%s, %s)", l.Left, l.Right) }
func (l Le) Equals(p Proposition) bool {
	m, ok := p.(Le)
	return ok && l.binaryRelation.equals(m.binaryRelation)
}
func (l Le) ApplySubst(s term.Subst) Proposition {
	return Le{binaryRelation: binaryRelation{l.Left.ApplySubst(s), l.Right.ApplySubst(s)}}
}
func (l Le) FreeVars() []term.Variable { return l.binaryRelation.freeVars() }

// Ge is the greater-or-equal relation.
type Ge struct {
	binaryRelation
	base
}

// NewGe builds an unproven greater-or-equal proposition.
func NewGe(l, r term.Term) Ge { return Ge{binaryRelation: binaryRelation{l, r}} }

func (g Ge) isProposition() {}
func (g Ge) String() string  { return fmt.Sprintf("ge(%s, %s)", g.Left, g.Right) }
func (g Ge) Equals(p Proposition) bool {
	h, ok := p.(Ge)
	return ok && g.binaryRelation.equals(h.binaryRelation)
}
func (g Ge) ApplySubst(s term.Subst) Proposition {
	return Ge{binaryRelation: binaryRelation{g.Left.ApplySubst(s), g.Right.ApplySubst(s)}}
}
func (g Ge) FreeVars() []term.Variable { return g.binaryRelation.freeVars() }

// MemberOf is the set-membership relation ("is contained in").
type MemberOf struct {
	binaryRelation // Left = element, Right = set
	base
}

// NewMemberOf builds an unproven membership proposition.
func NewMemberOf(elem, set term.Term) MemberOf {
	return MemberOf{binaryRelation: binaryRelation{elem, set}}
}

func (m MemberOf) isProposition() {}
func (m MemberOf) String() string { return fmt.Sprintf("memberOf(%s, %s)", m.Left, m.Right) }
func (m MemberOf) Equals(p Proposition) bool {
	n, ok := p.(MemberOf)
	return ok && m.binaryRelation.equals(n.binaryRelation)
}
func (m MemberOf) ApplySubst(s term.Subst) Proposition {
	return MemberOf{binaryRelation: binaryRelation{m.Left.ApplySubst(s), m.Right.ApplySubst(s)}}
}
func (m MemberOf) FreeVars() []term.Variable { return m.binaryRelation.freeVars() }

// SubsetOf is the subset relation.
type SubsetOf struct {
	binaryRelation // Left = sub, Right = super
	base
}

// NewSubsetOf builds an unproven subset proposition.
func NewSubsetOf(sub, super term.Term) SubsetOf {
	return SubsetOf{binaryRelation: binaryRelation{sub, super}}
}

func (s SubsetOf) isProposition() {}
func (s SubsetOf) String() string { return fmt.Sprintf("subsetOf(%s, %s)", s.Left, s.Right) }
func (s SubsetOf) Equals(p Proposition) bool {
	t, ok := p.(SubsetOf)
	return ok && s.binaryRelation.equals(t.binaryRelation)
}
func (s SubsetOf) ApplySubst(sub term.Subst) Proposition {
	return SubsetOf{binaryRelation: binaryRelation{s.Left.ApplySubst(sub), s.Right.ApplySubst(sub)}}
}
func (s SubsetOf) FreeVars() []term.Variable { return s.binaryRelation.freeVars() }

// Divides is the divisibility relation ("Divisor | Multiple").
type Divides struct {
	binaryRelation // Left = divisor, Right = multiple
	base
}

// NewDivides builds an unproven divisibility proposition.
func NewDivides(divisor, multiple term.Term) Divides {
	return Divides{binaryRelation: binaryRelation{divisor, multiple}}
}

func (d Divides) isProposition() {}
func (d Divides) String() string { return fmt.Sprintf("divides(%s, %s)", d.Left, d.Right) }
func (d Divides) Equals(p Proposition) bool {
	e, ok := p.(Divides)
	return ok && d.binaryRelation.equals(e.binaryRelation)
}
func (d Divides) ApplySubst(s term.Subst) Proposition {
	return Divides{binaryRelation: binaryRelation{d.Left.ApplySubst(s), d.Right.ApplySubst(s)}}
}
func (d Divides) FreeVars() []term.Variable { return d.binaryRelation.freeVars() }

// Prime asserts its single argument is prime.
type Prime struct {
	Arg term.Term
	base
}

// NewPrime builds an unproven primality proposition.
func NewPrime(arg term.Term) Prime { return Prime{Arg: arg} }

func (p Prime) isProposition() {}
func (p Prime) String() string  { return fmt.Sprintf("prime(%s)", p.Arg) }
func (p Prime) Equals(o Proposition) bool {
	q, ok := o.(Prime)
	return ok && p.Arg.Equals(q.Arg)
}
func (p Prime) ApplySubst(s term.Subst) Proposition { return Prime{Arg: p.Arg.ApplySubst(s)} }
func (p Prime) FreeVars() []term.Variable           { return p.Arg.FreeVars() }

// Contradiction is the canonical false proposition, the target of ex_falso
// and the goal of proof by contradiction.
type Contradiction struct {
	base
}

// NewContradiction builds an unproven contradiction marker.
func NewContradiction() Contradiction { return Contradiction{} }

func (c Contradiction) isProposition()                    {}
func (c Contradiction) String() string                     { return "contradiction" }
func (c Contradiction) Equals(p Proposition) bool           { _, ok := p.(Contradiction); return ok }
func (c Contradiction) ApplySubst(term.Subst) Proposition   { return c }
func (c Contradiction) FreeVars() []term.Variable           { return nil }
