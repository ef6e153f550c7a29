package oracle

import (
	"errors"
	"testing"

	"github.com/pylogic-go/pylogic/internal/provenance"
	"github.com/pylogic-go/pylogic/prop"
	"github.com/pylogic-go/pylogic/term"
)

func num(name string, v float64) term.Term { return term.NewNumericConstant(name, v) }

func TestByInspectionPrime(t *testing.T) {
	log := provenance.NewLog()
	got, err := ByInspection(log, 0, prop.NewPrime(num("seven", 7)))
	if err != nil {
		t.Fatalf("ByInspection: %v", err)
	}
	if !got.Proven() {
		t.Errorf("expected 7 prime to be proven")
	}
}

func TestByInspectionRefusesComposite(t *testing.T) {
	log := provenance.NewLog()
	if _, err := ByInspection(log, 0, prop.NewPrime(num("nine", 9))); !errors.Is(err, ErrOracleRefused) {
		t.Errorf("expected ErrOracleRefused for 9, got %v", err)
	}
}

func TestByInspectionDivides(t *testing.T) {
	log := provenance.NewLog()
	got, err := ByInspection(log, 0, prop.NewDivides(num("three", 3), num("nine", 9)))
	if err != nil {
		t.Fatalf("ByInspection divides: %v", err)
	}
	if !got.Proven() {
		t.Errorf("expected 3 | 9 to be proven")
	}
	if _, err := ByInspection(log, 0, prop.NewDivides(num("two", 2), num("nine", 9))); !errors.Is(err, ErrOracleRefused) {
		t.Errorf("expected 2 | 9 to be refused")
	}
}

func TestByInspectionOrdering(t *testing.T) {
	log := provenance.NewLog()
	if _, err := ByInspection(log, 0, prop.NewLt(num("two", 2), num("three", 3))); err != nil {
		t.Errorf("expected 2 < 3 to be inspectable, got %v", err)
	}
	if _, err := ByInspection(log, 0, prop.NewLt(num("three", 3), num("two", 2))); !errors.Is(err, ErrOracleRefused) {
		t.Errorf("expected 3 < 2 to be refused")
	}
}

func TestByInspectionNegation(t *testing.T) {
	log := provenance.NewLog()
	if _, err := ByInspection(log, 0, prop.NewNot(prop.NewPrime(num("nine", 9)))); err != nil {
		t.Errorf("expected not(9 prime) to be inspectable, got %v", err)
	}
	if _, err := ByInspection(log, 0, prop.NewNot(prop.NewPrime(num("seven", 7)))); !errors.Is(err, ErrOracleRefused) {
		t.Errorf("expected not(7 prime) to be refused")
	}
}

func TestByEval(t *testing.T) {
	log := provenance.NewLog()
	sum := term.NewExpr(term.OpAdd, num("two", 2), num("three", 3))
	got, err := ByEval(log, 0, prop.NewEq(sum, num("five", 5)))
	if err != nil {
		t.Fatalf("ByEval: %v", err)
	}
	if !got.Proven() {
		t.Errorf("expected 2+3=5 to be proven")
	}
	if _, err := ByEval(log, 0, prop.NewEq(sum, num("six", 6))); !errors.Is(err, ErrOracleRefused) {
		t.Errorf("expected 2+3=6 to be refused")
	}
}

func TestBySimplificationAdditiveIdentity(t *testing.T) {
	log := provenance.NewLog()
	a := num("a", 4)
	lhs := term.NewExpr(term.OpAdd, a, num("zero", 0))
	got, err := BySimplification(log, 0, prop.NewEq(lhs, a))
	if err != nil {
		t.Fatalf("BySimplification: %v", err)
	}
	if !got.Proven() {
		t.Errorf("expected a+0=a to be proven by simplification")
	}
}

func TestBySimplificationFallsBackToEval(t *testing.T) {
	log := provenance.NewLog()
	sum := term.NewExpr(term.OpMul, num("two", 2), num("three", 3))
	got, err := BySimplification(log, 0, prop.NewEq(sum, num("six", 6)))
	if err != nil {
		t.Fatalf("BySimplification: %v", err)
	}
	if !got.Proven() {
		t.Errorf("expected 2*3=6 to be proven via eval fallback")
	}
}
