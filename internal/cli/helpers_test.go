package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

var backends = []string{types.BackendMemory, types.BackendSQLite}

// newTestSession returns a seeded session whose logs are discarded.
func newTestSession(t *testing.T, backend string) *Session {
	t.Helper()
	sess, err := NewSession(types.Config{Backend: backend, Seed: true}, newLogger(io.Discard, "error"))
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	return sess
}

// runScript feeds lines to a fresh shell and returns everything it printed.
func runScript(t *testing.T, sess *Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := newShell(sess, newRenderer(false, false))
	require.NoError(t, sh.run(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out))
	return out.String()
}

// resetFlags clears the package-level flag values for the duration of a test.
func resetFlags(t *testing.T) {
	t.Helper()
	saved := flags
	flags = rootFlags{}
	t.Cleanup(func() { flags = saved })
}
