package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitUsage prints err followed by the general usage text and exits with
// code 1. A nil err prints the usage alone.
func ExitUsage(w io.Writer, err error) {
	WriteUsage(w, err)
	os.Exit(1)
}
