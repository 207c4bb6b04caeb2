package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the officedesk binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "officedesk-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "officedesk")

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/officedesk")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}
	officedeskBin = binPath

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

type office struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// lastJSONArray decodes the last JSON array printed in out.
func lastJSONArray[T any](t *testing.T, out string) []T {
	t.Helper()
	i := strings.LastIndex(out, "[\n")
	if strings.HasSuffix(strings.TrimSpace(out), "[]") {
		i = strings.LastIndex(out, "[]")
	}
	require.GreaterOrEqual(t, i, 0, "no JSON array in output:\n%s", out)
	var v []T
	require.NoError(t, json.Unmarshal([]byte(out[i:]), &v))
	return v
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t, "")
	result := env.Run("", nil, "version")
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "officedesk v")
}

func TestInit_WritesConfig(t *testing.T) {
	env := NewTestEnv(t, "")
	result := env.Run("", nil, "init")
	require.Equal(t, 0, result.ExitCode, result.Stderr)

	data, err := os.ReadFile(filepath.Join(env.Config, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: memory")
}

func TestShell_OfficeLifecycle(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			env := NewTestEnv(t, "backend: "+backend+"\n")
			result := env.MustShell(
				"offices create name= domain=nodot",
				`offices create name="Branch" domain=branch.example.com`,
				"offices edit 1",
				"offices set name=Headquarters",
				"offices save",
				"offices delete 2",
				"offices confirm",
				"offices list --json",
			)
			out := result.Stdout
			assert.Contains(t, out, "Please fix validation errors.")
			assert.Contains(t, out, "Name: Name is required.")
			assert.Contains(t, out, "Office created successfully.")
			assert.Contains(t, out, "Office updated successfully.")
			assert.Contains(t, out, "Office deleted.")

			assert.Equal(t, []office{
				{ID: 1, Name: "Headquarters", Domain: "hq.example.com"},
				{ID: 3, Name: "Branch", Domain: "branch.example.com"},
			}, lastJSONArray[office](t, out))
		})
	}
}

func TestShell_StateIsNotPersisted(t *testing.T) {
	env := NewTestEnv(t, "backend: sqlite\n")
	env.MustShell(`offices create name=Annex domain=annex.example.com`)

	result := env.MustShell("offices list --json")
	assert.Len(t, lastJSONArray[office](t, result.Stdout), 2, "a new session starts from the seed")
}

func TestShell_SeedDisabled(t *testing.T) {
	env := NewTestEnv(t, "seed: false\n")
	result := env.MustShell("offices list --json")
	assert.Empty(t, lastJSONArray[office](t, result.Stdout))
}

func TestShell_CommandErrorsDoNotEndSession(t *testing.T) {
	env := NewTestEnv(t, "")
	result := env.MustShell("offices edit 42", "status")
	assert.Contains(t, result.Stdout, "error:")
	assert.Contains(t, result.Stdout, "backend: memory")
}

func TestConfigLoading(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		env      []string
		args     []string
		wantExit int
		want     string
	}{
		{"env overrides file", "backend: memory\n", []string{"OFFICEDESK_BACKEND=sqlite"}, []string{"shell"}, 0, "backend: sqlite"},
		{"flag overrides env", "", []string{"OFFICEDESK_BACKEND=sqlite"}, []string{"--backend", "memory", "shell"}, 0, "backend: memory"},
		{"unknown backend", "backend: postgres\n", nil, []string{"shell"}, 1, "unknown backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewTestEnv(t, tt.config)
			result := env.Run("status\n", tt.env, tt.args...)
			assert.Equal(t, tt.wantExit, result.ExitCode, result.Stderr)
			assert.Contains(t, result.Stdout+result.Stderr, tt.want)
		})
	}
}

func TestConfigDirFromEnv(t *testing.T) {
	require.NoError(t, buildErr)
	dir := filepath.Join(t.TempDir(), "from-env")

	cmd := exec.Command(officedeskBin, "init")
	cmd.Env = append(cleanEnv(), "OFFICEDESK_CONFIG_DIR="+dir)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}
