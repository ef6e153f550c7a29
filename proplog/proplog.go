// Package proplog is the one piece of process-wide state the kernel keeps:
// an optional diagnostic logger (SPEC_FULL.md §9, §10.2). The kernel never
// imports a logging library directly; it calls through this seam so rule
// packages stay logger-agnostic the way spec.md §5 requires.
package proplog

import (
	glog "github.com/golang/glog"
)

// Tracef logs a rule-application or context-stack trace line at glog
// verbosity level 2, matching how the teacher's interpreter traces
// rule/clause firing only when run with -v=2.
func Tracef(format string, args ...interface{}) {
	if glog.V(2) {
		glog.Infof(format, args...)
	}
}

// SearchTracef logs a backward-prover rule-table attempt or backtrack at
// glog verbosity level 1.
func SearchTracef(format string, args ...interface{}) {
	if glog.V(1) {
		glog.Infof(format, args...)
	}
}
