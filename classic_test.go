package degreez

import (
	"context"
	"testing"
)

func TestMin_TakesSmaller(t *testing.T) {
	op := NewMin("and", Constant("a", 0.3), Constant("b", 0.8))
	defer op.Close() //nolint:errcheck

	for _, x := range []float64{-10, 0, 3.7, 100} {
		got, err := op.Evaluate(context.Background(), x)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0.3 {
			t.Errorf("min(0.3, 0.8)(%v): expected 0.3, got %v", x, got)
		}
	}
}

func TestMax_TakesLarger(t *testing.T) {
	op := NewMax("or", Constant("a", 0.3), Constant("b", 0.8))
	defer op.Close() //nolint:errcheck

	for _, x := range []float64{-10, 0, 3.7, 100} {
		got, err := op.Evaluate(context.Background(), x)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0.8 {
			t.Errorf("max(0.3, 0.8)(%v): expected 0.8, got %v", x, got)
		}
	}
}

func TestMinMax_Idempotent(t *testing.T) {
	term := Linear("ramp", 0.1, 0)

	minOp := NewMin("min", term, term)
	maxOp := NewMax("max", term, term)
	defer minOp.Close() //nolint:errcheck
	defer maxOp.Close() //nolint:errcheck

	for _, x := range []float64{0, 2.5, 5, 10} {
		want, err := term.Evaluate(context.Background(), x)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := minOp.Evaluate(context.Background(), x)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("min(a,a)(%v): expected %v, got %v", x, want, got)
		}

		got, err = maxOp.Evaluate(context.Background(), x)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("max(a,a)(%v): expected %v, got %v", x, want, got)
		}
	}
}

func TestMinMax_ComposeAsTerms(t *testing.T) {
	// Operators are Terms, so they nest directly into other operators.
	cold := Linear("cold", -0.1, 2)
	rainy := Constant("rainy", 0.7)
	windy := Constant("windy", 0.4)

	harsh := NewMax("harsh", rainy, windy)
	miserable := NewMin("miserable", cold, harsh)
	defer harsh.Close()     //nolint:errcheck
	defer miserable.Close() //nolint:errcheck

	got, err := miserable.Evaluate(context.Background(), 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// cold(15) = 0.5, harsh = max(0.7, 0.4) = 0.7, min = 0.5
	if !closeEnough(got, 0.5) {
		t.Errorf("expected 0.5, got %v", got)
	}
}
