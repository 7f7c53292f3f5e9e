package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/climmt/mathdrill/internal/infrastructure/config"
)

// Exit helpers call os.Exit, so they run in a subprocess.
func TestExitUsage_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXIT_USAGE_SUBPROCESS") == "1" {
		_, err := config.ParseArgs([]string{"a", "0", "nt", "posonly", "0-10", "0-10"})
		config.ExitUsage(os.Stderr, err)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitUsage_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXIT_USAGE_SUBPROCESS=1")
	var stderr strings.Builder
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Second argument") {
		t.Fatalf("expected field message on stderr, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), config.Example) {
		t.Fatalf("expected example on stderr, got %q", stderr.String())
	}
}

func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	var stderr strings.Builder
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "fatal: something broke") {
		t.Fatalf("expected message on stderr, got %q", stderr.String())
	}
}
