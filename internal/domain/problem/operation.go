package problem

import "fmt"

// Operation is one of the four arithmetic drills.
type Operation uint8

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

// Operations lists every operation in banner order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// Family groups operations that draw from the same configured range.
type Family uint8

const (
	FamilyAddSub Family = iota
	FamilyMultDiv
)

// ParseOperation maps a mode letter (a, s, m, d) to its Operation.
func ParseOperation(letter rune) (Operation, error) {
	switch letter {
	case 'a':
		return Add, nil
	case 's':
		return Subtract, nil
	case 'm':
		return Multiply, nil
	case 'd':
		return Divide, nil
	}
	return 0, fmt.Errorf("unknown math mode %q", letter)
}

// Letter is the mode letter used on the command line.
func (o Operation) Letter() string {
	switch o {
	case Add:
		return "a"
	case Subtract:
		return "s"
	case Multiply:
		return "m"
	case Divide:
		return "d"
	}
	return "?"
}

// Symbol is the operator shown between the two displayed operands.
func (o Operation) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "•"
	case Divide:
		return "/"
	}
	return "?"
}

func (o Operation) String() string {
	switch o {
	case Add:
		return "Addition"
	case Subtract:
		return "Subtraction"
	case Multiply:
		return "Multiplication"
	case Divide:
		return "Division"
	}
	return fmt.Sprintf("Operation(%d)", uint8(o))
}

// Family reports which configured range the operation draws from.
func (o Operation) Family() Family {
	if o == Multiply || o == Divide {
		return FamilyMultDiv
	}
	return FamilyAddSub
}
