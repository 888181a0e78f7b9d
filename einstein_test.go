package degreez

import (
	"context"
	"errors"
	"testing"
)

func TestEinsteinProduct_Value(t *testing.T) {
	op := NewEinsteinProduct("and", Constant("a", 0.3), Constant("b", 0.8))
	defer op.Close() //nolint:errcheck

	got, err := op.Evaluate(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (0.3 * 0.8) / (2 - (0.3 + 0.8 - 0.3*0.8))
	if !closeEnough(got, want) {
		t.Errorf("einstein_product(0.3, 0.8): expected %v, got %v", want, got)
	}
}

func TestEinsteinProduct_UndefinedAtOnes(t *testing.T) {
	op := NewEinsteinProduct("and", Constant("a", 1), Constant("b", 1))
	defer op.Close() //nolint:errcheck

	_, err := op.Evaluate(context.Background(), 0)
	if err == nil {
		t.Fatal("expected undefined error at (1, 1), got nil")
	}
	if !errors.Is(err, ErrUndefined) {
		t.Errorf("expected error wrapping ErrUndefined, got %v", err)
	}
}

func TestEinsteinSum_DefinedEverywhere(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"interior", 0.3, 0.8, (0.3 + 0.8) / (1 + 0.3*0.8)},
		{"both one", 1, 1, 1},
		{"both zero", 0, 0, 0},
		{"one and zero", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewEinsteinSum("or", Constant("a", tt.a), Constant("b", tt.b))
			defer op.Close() //nolint:errcheck

			got, err := op.Evaluate(context.Background(), 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !closeEnough(got, tt.want) {
				t.Errorf("einstein_sum(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
			}
		})
	}
}
