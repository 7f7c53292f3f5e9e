// Package problem generates single arithmetic drill problems.
//
// Subtraction and division are built backwards from the drawn pair: the
// second drawn value is the answer and the displayed left operand is derived
// from it. Results therefore stay integral, but the displayed left operand
// may fall outside the configured range.
package problem

import (
	"fmt"
	"strconv"
)

const undefinedAnswer = "undefined"

// Answer is an integer result or the undefined outcome of dividing by zero.
type Answer struct {
	Value     int
	Undefined bool
}

// Undefined is the answer to any division by zero.
func Undefined() Answer {
	return Answer{Undefined: true}
}

func (a Answer) String() string {
	if a.Undefined {
		return undefinedAnswer
	}
	return strconv.Itoa(a.Value)
}

// Problem is one generated drill question.
type Problem struct {
	Operation Operation
	Operands  Operands
	Left      int
	Right     int
	Answer    Answer
}

// Generate builds the problem for op from the drawn operands.
func Generate(op Operation, o Operands) Problem {
	p := Problem{Operation: op, Operands: o}

	switch op {
	case Add:
		p.Left, p.Right = o.X, o.Y
		p.Answer = Answer{Value: o.X + o.Y}
	case Subtract:
		p.Left, p.Right = o.X+o.Y, o.X
		p.Answer = Answer{Value: o.Y}
	case Multiply:
		p.Left, p.Right = o.X, o.Y
		p.Answer = Answer{Value: o.X * o.Y}
	case Divide:
		p.Left, p.Right = o.X*o.Y, o.X
		if o.X == 0 {
			p.Answer = Undefined()
		} else {
			p.Answer = Answer{Value: o.Y}
		}
	}
	return p
}

// String renders the question as shown to the user.
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.Left, p.Operation.Symbol(), p.Right)
}

// Solved renders the question together with its correct answer.
func (p Problem) Solved() string {
	return fmt.Sprintf("%s = %s", p, p.Answer)
}
