package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

func TestLoadConfig_WritesDefaults(t *testing.T) {
	resetFlags(t)
	dir := filepath.Join(t.TempDir(), "officedesk")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.Config{Backend: types.BackendMemory, Seed: true, LogLevel: "warn", Color: true}, cfg)

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: memory")
	assert.Contains(t, string(data), "seed: true")
}

func TestLoadConfig_FileValues(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	content := "backend: sqlite\nseed: false\nlog_level: debug\ncolor: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.Config{Backend: types.BackendSQLite, Seed: false, LogLevel: "debug", Color: false}, cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: memory\n"), 0o644))

	t.Run("env overrides file", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("OFFICEDESK_BACKEND", "sqlite")
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, types.BackendSQLite, cfg.Backend)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("OFFICEDESK_BACKEND", "sqlite")
		flags.backend = types.BackendMemory
		flags.noColor = true
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, types.BackendMemory, cfg.Backend)
		assert.False(t, cfg.Color)
	})
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown backend", "backend: postgres\n", types.ErrBackendUnknown},
		{"unknown log level", "log_level: loud\n", types.ErrLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(tt.content), 0o644))
			_, err := loadConfig(dir)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWriteConfigIfMissing_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileExt)
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\n"), 0o644))

	wrote, err := writeConfigIfMissing(path)
	require.NoError(t, err)
	assert.False(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "backend: sqlite\n", string(data))
}

func TestInitAndVersionCommands(t *testing.T) {
	resetFlags(t)
	dir := filepath.Join(t.TempDir(), "cfg")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config-dir", dir, "init"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Wrote "+filepath.Join(dir, configFileExt))

	out.Reset()
	root = NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config-dir", dir, "init"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Config already present")

	out.Reset()
	root = NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "officedesk v"+Version)
}
