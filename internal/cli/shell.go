package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const shellPrompt = "officedesk> "

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: "Read commands from stdin, one per line, against the office and employee pages.\n" +
			"Records live only as long as the session. Type help for the command list.",
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("resolve config dir: %s", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return exitError(cmd, exitUserError, err.Error())
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	sess, err := NewSession(cfg, logger)
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("start session: %s", err))
	}
	defer sess.Close()

	sh := newShell(sess, newRenderer(cfg.Color, flags.jsonMode))
	return sh.run(cmd.InOrStdin(), cmd.OutOrStdout())
}

// shell executes one line at a time against a Session.
type shell struct {
	sess *Session
	r    *renderer
}

func newShell(sess *Session, r *renderer) *shell {
	return &shell{sess: sess, r: r}
}

// run reads lines from in until EOF or quit. The prompt is shown only when
// in is a terminal.
func (sh *shell) run(in io.Reader, out io.Writer) error {
	interactive := isTerminal(in)
	if interactive {
		fmt.Fprintf(out, "officedesk session %s (%s backend). Type help for commands.\n", sh.sess.ID, sh.sess.Backend)
	}

	// Lines may be any length.
	reader := bufio.NewReader(in)
	for {
		if interactive {
			fmt.Fprint(out, shellPrompt)
		}
		line, err := reader.ReadString('\n')
		if line != "" && sh.exec(strings.TrimRight(line, "\r\n"), out) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
	}
}

// exec runs one line and reports whether the session should end.
func (sh *shell) exec(line string, out io.Writer) bool {
	args, err := shlex.Split(line)
	if err != nil {
		sh.r.failure.Fprintf(out, "error: %v\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "quit", "exit":
		return true
	}

	tree := sh.commandTree()
	tree.SetArgs(args)
	tree.SetOut(out)
	tree.SetErr(out)
	if err := tree.Execute(); err != nil {
		sh.r.failure.Fprintf(out, "error: %v\n", err)
	}
	return false
}

// commandTree builds a fresh cobra tree per line so flag values never leak
// from one command to the next.
func (sh *shell) commandTree() *cobra.Command {
	root := &cobra.Command{
		Use:           "officedesk",
		Short:         "Session commands (quit or exit to leave)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newPageCmd("offices", sh.sess.Offices, sh.r),
		newPageCmd("employees", sh.sess.Employees, sh.r),
		newStatusCmd(sh.sess, sh.r),
		newStatsCmd(sh.sess, sh.r),
	)
	return root
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
