package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	practicesession "github.com/climmt/mathdrill/internal/domain/practice_session"
	"github.com/climmt/mathdrill/internal/domain/problem"
)

const (
	Usage = "C.L.I.M.M.T. usage: \n" +
		"mathdrill [math mode] [number of problems] [timed (t or nt)] [include negative numbers (inclneg or posonly)] [add/sub range (lower-upper)] [mult/div range (lower-upper)]\n" +
		"-math mode: include one or more of the following a - addition, s - subtraction, m - multiplication, d - division"
	Example = "Example: mathdrill asm 15 nt inclneg 0-20 0-12"

	argCount = 6
)

// ErrMissingArgs is returned when fewer than six arguments are given.
var ErrMissingArgs = errors.New("missing arguments")

// ArgError reports the positional argument (1-based) that failed validation.
type ArgError struct {
	Position int
	Message  string
}

func (e *ArgError) Error() string {
	return e.Message
}

var argMessages = map[int]string{
	1: "First argument must include one or a combination of a, s, m, and/or d to signify addition, subtraction, multiplication, and/or division",
	2: "Second argument must be a positive integer less than 100 to signify the number of problems",
	3: "Third argument must be either 't' or 'nt' to signify 'timed' or 'not timed'",
	4: "Fourth argument must be either 'inclneg' or 'posonly' to signify 'include negative numbers' or 'positive numbers only'",
	5: "Fifth argument must be a range of non-negative integers denoted by '[lower bound]-[upper bound]' with the upper bound above the lower bound to show range of addition/subtraction problems",
	6: "Sixth argument must be a range of non-negative integers denoted by '[lower bound]-[upper bound]' with the upper bound above the lower bound to show range of multiplication/division problems",
}

// fieldPositions maps SessionConfig fields to the argument that sets them.
var fieldPositions = map[string]int{
	"Modes":        1,
	"ProblemCount": 2,
	"AddSubRange":  5,
	"MultDivRange": 6,
}

func argError(position int) *ArgError {
	return &ArgError{Position: position, Message: argMessages[position]}
}

// ParseArgs turns the six positional arguments into a validated
// SessionConfig. Arguments after the sixth are ignored.
func ParseArgs(args []string) (practicesession.SessionConfig, error) {
	if len(args) < argCount {
		return practicesession.SessionConfig{}, ErrMissingArgs
	}

	var cfg practicesession.SessionConfig
	var err error

	if cfg.Modes, err = parseModes(args[0]); err != nil {
		return practicesession.SessionConfig{}, argError(1)
	}

	if cfg.ProblemCount, err = strconv.Atoi(args[1]); err != nil {
		return practicesession.SessionConfig{}, argError(2)
	}

	switch args[2] {
	case "t":
		cfg.Timed = true
	case "nt":
	default:
		return practicesession.SessionConfig{}, argError(3)
	}

	switch args[3] {
	case "inclneg":
		cfg.AllowNegatives = true
	case "posonly":
	default:
		return practicesession.SessionConfig{}, argError(4)
	}

	if cfg.AddSubRange, err = parseRange(args[4]); err != nil {
		return practicesession.SessionConfig{}, argError(5)
	}
	if cfg.MultDivRange, err = parseRange(args[5]); err != nil {
		return practicesession.SessionConfig{}, argError(6)
	}

	if err := cfg.Validate(); err != nil {
		position := 0
		for _, field := range practicesession.InvalidFields(err) {
			if p, ok := fieldPositions[field]; ok && (position == 0 || p < position) {
				position = p
			}
		}
		if position == 0 {
			return practicesession.SessionConfig{}, fmt.Errorf("validate config: %w", err)
		}
		return practicesession.SessionConfig{}, argError(position)
	}

	return cfg, nil
}

func parseModes(s string) ([]problem.Operation, error) {
	modes := make([]problem.Operation, 0, len(s))
	for _, letter := range s {
		op, err := problem.ParseOperation(letter)
		if err != nil {
			return nil, err
		}
		modes = append(modes, op)
	}
	return modes, nil
}

func parseRange(s string) (problem.Range, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return problem.Range{}, fmt.Errorf("range %q must be lower-upper", s)
	}
	lower, err := strconv.Atoi(parts[0])
	if err != nil {
		return problem.Range{}, fmt.Errorf("range %q lower bound: %w", s, err)
	}
	upper, err := strconv.Atoi(parts[1])
	if err != nil {
		return problem.Range{}, fmt.Errorf("range %q upper bound: %w", s, err)
	}
	return problem.Range{Lower: lower, Upper: upper}, nil
}

// WriteUsage prints the message for err, if any, then the usage and example.
func WriteUsage(w io.Writer, err error) {
	var argErr *ArgError
	if errors.As(err, &argErr) {
		fmt.Fprintln(w, argErr.Message)
	} else if err != nil && !errors.Is(err, ErrMissingArgs) {
		fmt.Fprintln(w, err)
	}
	fmt.Fprintln(w, Usage)
	fmt.Fprintln(w, Example)
}
