// Package integration runs the officedesk binary end to end.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// officedeskBin is the path to the built officedesk binary.
	officedeskBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated config directory per test.
type TestEnv struct {
	t      *testing.T
	Config string
}

// NewTestEnv creates a config directory with the given config.yaml content.
// An empty content leaves the directory without a config file.
func NewTestEnv(t *testing.T, configYAML string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build officedesk: %v", buildErr)
	}
	if officedeskBin == "" {
		t.Fatal("officedesk binary not built (officedeskBin is empty)")
	}

	configDir := filepath.Join(t.TempDir(), "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if configYAML != "" {
		if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}
	return &TestEnv{t: t, Config: configDir}
}

// CmdResult holds the result of an officedesk invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes officedesk with --config-dir and the given stdin.
func (e *TestEnv) Run(stdin string, env []string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--no-color"}, args...)
	cmd := exec.Command(officedeskBin, allArgs...)
	cmd.Env = append(cleanEnv(), env...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run officedesk: %v", err)
		}
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// MustShell runs a shell session over the given lines and fails the test on a
// non-zero exit.
func (e *TestEnv) MustShell(lines ...string) CmdResult {
	e.t.Helper()
	result := e.Run(strings.Join(lines, "\n")+"\n", nil, "shell")
	if result.ExitCode != 0 {
		e.t.Fatalf("officedesk shell failed with exit code %d:\nstdout: %s\nstderr: %s",
			result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// cleanEnv returns os.Environ() without OFFICEDESK_* and XDG_* variables.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "OFFICEDESK_") || strings.HasPrefix(e, "XDG_") {
			continue
		}
		env = append(env, e)
	}
	return env
}
