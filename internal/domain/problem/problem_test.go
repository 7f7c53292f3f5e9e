package problem_test

import (
	"math/rand"
	"testing"

	"github.com/climmt/mathdrill/internal/domain/problem"
)

func TestGenerate_Add(t *testing.T) {
	p := problem.Generate(problem.Add, problem.Operands{X: 7, Y: -3})

	if p.Left != 7 || p.Right != -3 {
		t.Errorf("expected operands 7 and -3, got %d and %d", p.Left, p.Right)
	}
	if p.Answer.Value != 4 {
		t.Errorf("expected answer 4, got %s", p.Answer)
	}
}

func TestGenerate_SubtractIsBuiltBackwards(t *testing.T) {
	p := problem.Generate(problem.Subtract, problem.Operands{X: 4, Y: 9})

	if p.Left != 13 || p.Right != 4 {
		t.Errorf("expected 13 - 4, got %s", p)
	}
	if p.Answer.Value != 9 {
		t.Errorf("expected answer 9, got %s", p.Answer)
	}
}

func TestGenerate_DivideIsBuiltBackwards(t *testing.T) {
	p := problem.Generate(problem.Divide, problem.Operands{X: 6, Y: 7})

	if p.Left != 42 || p.Right != 6 {
		t.Errorf("expected 42 / 6, got %s", p)
	}
	if p.Answer.Undefined || p.Answer.Value != 7 {
		t.Errorf("expected answer 7, got %s", p.Answer)
	}
}

func TestGenerate_DivideByZeroIsUndefined(t *testing.T) {
	p := problem.Generate(problem.Divide, problem.Operands{X: 0, Y: 5})

	if !p.Answer.Undefined {
		t.Fatalf("expected undefined answer, got %s", p.Answer)
	}
	if p.Answer.String() != "undefined" {
		t.Errorf("expected %q, got %q", "undefined", p.Answer.String())
	}
	if p.String() != "0 / 0" {
		t.Errorf("expected %q, got %q", "0 / 0", p.String())
	}
}

func TestGenerate_Identities(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := problem.Range{Lower: 0, Upper: 20}

	for i := 0; i < 2000; i++ {
		o, err := problem.SelectOperands(rng, r, true)
		if err != nil {
			t.Fatalf("select operands: %v", err)
		}

		add := problem.Generate(problem.Add, o)
		if add.Answer.Value != add.Left+add.Right {
			t.Fatalf("add: %s != %d", add.Solved(), add.Left+add.Right)
		}

		sub := problem.Generate(problem.Subtract, o)
		if sub.Left-sub.Right != sub.Answer.Value {
			t.Fatalf("subtract: %s does not hold", sub.Solved())
		}

		mul := problem.Generate(problem.Multiply, o)
		if mul.Answer.Value != mul.Left*mul.Right {
			t.Fatalf("multiply: %s does not hold", mul.Solved())
		}

		div := problem.Generate(problem.Divide, o)
		if div.Right == 0 {
			if !div.Answer.Undefined {
				t.Fatalf("divide: %s should be undefined", div)
			}
			continue
		}
		if div.Left%div.Right != 0 || div.Left/div.Right != div.Answer.Value {
			t.Fatalf("divide: %s is not exact", div.Solved())
		}
	}
}

func TestProblem_Solved(t *testing.T) {
	tests := []struct {
		op   problem.Operation
		o    problem.Operands
		want string
	}{
		{problem.Add, problem.Operands{X: 2, Y: 3}, "2 + 3 = 5"},
		{problem.Subtract, problem.Operands{X: 2, Y: 3}, "5 - 2 = 3"},
		{problem.Multiply, problem.Operands{X: -2, Y: 3}, "-2 • 3 = -6"},
		{problem.Divide, problem.Operands{X: 0, Y: 3}, "0 / 0 = undefined"},
	}

	for _, tt := range tests {
		if got := problem.Generate(tt.op, tt.o).Solved(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
