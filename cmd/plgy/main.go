// Binary plgy is a small driver that exercises the proof kernel and
// backward prover end to end, in the style of the teacher's mg shell.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/golang/glog"

	"github.com/pylogic-go/pylogic/config"
	"github.com/pylogic-go/pylogic/context"
	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/prover"
)

var (
	scenario  = flag.Int("scenario", 1, "which built-in scenario (1-7) to run")
	classical = flag.Bool("classical", true, "enable classical-logic rules (negation introduction / proof by contradiction)")
	maxDepth  = flag.Int("max-depth", 0, "override the prover's search depth; 0 uses the premise-proportional default")
	list      = flag.Bool("list", false, "list the built-in scenarios and exit")
)

type builtin struct {
	name     string
	describe string
	build    func() ([]prop.Proposition, prop.Proposition)
}

var axiomLog = provenance.NewLog()

func given(p prop.Proposition) prop.Proposition {
	return prop.Mint(axiomLog, p, "given", context.RootFrame)
}

func atom(name string) prop.Proposition { return prop.NewAtom(name) }

var scenarios = []builtin{
	{
		name:     "modus-ponens-chain",
		describe: "P, P -> (Q v R), (Q v R) -> not S |- not S",
		build: func() ([]prop.Proposition, prop.Proposition) {
			p, q, r, s := atom("P"), atom("Q"), atom("R"), atom("S")
			qr := prop.NewOr(q, r)
			premises := []prop.Proposition{
				given(p),
				given(prop.NewImplies(p, qr)),
				given(prop.NewImplies(qr, prop.NewNot(s))),
			}
			return premises, prop.NewNot(s)
		},
	},
	{
		name:     "by-cases-contradiction",
		describe: "A v B, not B |- A",
		build: func() ([]prop.Proposition, prop.Proposition) {
			a, b := atom("A"), atom("B")
			premises := []prop.Proposition{
				given(prop.NewOr(a, b)),
				given(prop.NewNot(b)),
			}
			return premises, a
		},
	},
	{
		name:     "case-analysis",
		describe: "C -> G, B -> F, B v C |- F v G",
		build: func() ([]prop.Proposition, prop.Proposition) {
			b, c, f, g := atom("B"), atom("C"), atom("F"), atom("G")
			premises := []prop.Proposition{
				given(prop.NewImplies(c, g)),
				given(prop.NewImplies(b, f)),
				given(prop.NewOr(b, c)),
			}
			return premises, prop.NewOr(f, g)
		},
	},
	{
		name:     "case-split-ex-falso",
		describe: "(P->Q) & (R->S), (Q v S) -> T, P v R, not T |- not P & not R",
		build: func() ([]prop.Proposition, prop.Proposition) {
			p, q, r, s, t := atom("P"), atom("Q"), atom("R"), atom("S"), atom("T")
			premises := []prop.Proposition{
				given(prop.NewAnd(prop.NewImplies(p, q), prop.NewImplies(r, s))),
				given(prop.NewImplies(prop.NewOr(q, s), t)),
				given(prop.NewOr(p, r)),
				given(prop.NewNot(t)),
			}
			return premises, prop.NewAnd(prop.NewNot(p), prop.NewNot(r))
		},
	},
	{
		name:     "nested-implication-introduction",
		describe: "(no premises) |- B -> (not A -> B)",
		build: func() ([]prop.Proposition, prop.Proposition) {
			a, b := atom("A"), atom("B")
			return nil, prop.NewImplies(b, prop.NewImplies(prop.NewNot(a), b))
		},
	},
	{
		name:     "de-morgan-classical-only",
		describe: "not (P & (Q v R v S)) |- not P v (not Q & not R & not S); fails without -classical",
		build: func() ([]prop.Proposition, prop.Proposition) {
			p, q, r, s := atom("P"), atom("Q"), atom("R"), atom("S")
			premises := []prop.Proposition{
				given(prop.NewNot(prop.NewAnd(p, prop.NewOr(q, r, s)))),
			}
			goal := prop.NewOr(prop.NewNot(p), prop.NewAnd(prop.NewNot(q), prop.NewNot(r), prop.NewNot(s)))
			return premises, goal
		},
	},
	{
		name:     "double-negation-classical-only",
		describe: "not not P |- P; fails without -classical",
		build: func() ([]prop.Proposition, prop.Proposition) {
			p := atom("P")
			premises := []prop.Proposition{given(prop.NewNot(prop.NewNot(p)))}
			return premises, p
		},
	},
}

func main() {
	flag.Parse()

	if *list {
		for i, sc := range scenarios {
			fmt.Printf("%d: %-32s %s\n", i+1, sc.name, sc.describe)
		}
		return
	}

	if *scenario < 1 || *scenario > len(scenarios) {
		log.Exitf("scenario must be between 1 and %d", len(scenarios))
	}
	sc := scenarios[*scenario-1]

	cfg := config.Default()
	cfg.UseClassicalLogic = *classical
	cfg.MaxProofDepth = *maxDepth

	premises, goal := sc.build()
	fmt.Printf("scenario %d (%s): %s\n", *scenario, sc.name, sc.describe)
	fmt.Printf("goal: %s\n", goal)

	result, err := prover.Prove(cfg, premises, goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "not proven: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("proven: %s\n", result)
}
