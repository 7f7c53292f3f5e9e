package console

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	practicesession "github.com/climmt/mathdrill/internal/domain/practice_session"
)

const rule = "############################################################"

// WriteBanner prints the settings of a drill before it is confirmed.
func WriteBanner(w io.Writer, cfg practicesession.SessionConfig) error {
	names := make([]string, 0, len(cfg.Modes))
	for _, op := range cfg.Operations() {
		names = append(names, op.String())
	}

	timed := "Untimed"
	if cfg.Timed {
		timed = "Timed"
	}
	negatives := "Negative Numbers Not Included"
	if cfg.AllowNegatives {
		negatives = "Negative Numbers Included"
	}

	lines := []string{
		"",
		"~Command Line Interface Mental Math Training (C.L.I.M.M.T)~",
		rule,
		"C.L.I.M.M.T. Settings:",
		"Math Mode: " + strings.Join(names, ", "),
		fmt.Sprintf("Number of problems: %d", cfg.ProblemCount),
		timed,
		negatives,
		"Range of Addition/Subtraction Problems: " + cfg.AddSubRange.String(),
		"Range of Multiplication/Division Problems: " + cfg.MultDivRange.String(),
		rule,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// FormatScore renders the final score line.
func FormatScore(score, total int) string {
	return fmt.Sprintf("Math Training Complete. Final Score: %d/%d", score, total)
}

// FormatElapsed renders a run duration to the hundredth of a second. Minutes
// are only split out once more than a minute has passed; seconds are what
// remains within that minute.
func FormatElapsed(d time.Duration) string {
	centis := int64(math.Round(d.Seconds() * 100))
	var minutes int64
	if centis > 60*100 {
		minutes = centis / (60 * 100)
		centis -= minutes * 60 * 100
	}
	return fmt.Sprintf("Time: %d minutes, %d.%02d seconds", minutes, centis/100, centis%100)
}

// WriteResults prints every transcript entry in order.
func WriteResults(w io.Writer, entries []practicesession.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "\nProblem: %d\n%s, User Answer: %s\n", e.Index, e.Problem, e.UserAnswer); err != nil {
			return err
		}
	}
	return nil
}
