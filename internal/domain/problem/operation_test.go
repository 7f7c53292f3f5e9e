package problem_test

import (
	"testing"

	"github.com/climmt/mathdrill/internal/domain/problem"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		letter rune
		want   problem.Operation
		family problem.Family
		symbol string
	}{
		{'a', problem.Add, problem.FamilyAddSub, "+"},
		{'s', problem.Subtract, problem.FamilyAddSub, "-"},
		{'m', problem.Multiply, problem.FamilyMultDiv, "•"},
		{'d', problem.Divide, problem.FamilyMultDiv, "/"},
	}

	for _, tt := range tests {
		op, err := problem.ParseOperation(tt.letter)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.letter, err)
		}
		if op != tt.want {
			t.Errorf("parse %q: expected %v, got %v", tt.letter, tt.want, op)
		}
		if op.Family() != tt.family {
			t.Errorf("%v: unexpected family %d", op, op.Family())
		}
		if op.Symbol() != tt.symbol {
			t.Errorf("%v: expected symbol %q, got %q", op, tt.symbol, op.Symbol())
		}
		if op.Letter() != string(tt.letter) {
			t.Errorf("%v: expected letter %q, got %q", op, string(tt.letter), op.Letter())
		}
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	for _, letter := range []rune{'x', 'A', '+'} {
		if _, err := problem.ParseOperation(letter); err == nil {
			t.Errorf("expected error for %q", letter)
		}
	}
}
