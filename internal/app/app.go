// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pcrdesign/internal/appcore"
	"pcrdesign/internal/cli"
)

// exitCode carries a handler's exit status back through cobra.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func result(code int) error {
	if code == appcore.ExitOK {
		return nil
	}
	return exitCode(code)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, runs the selected subcommand and returns the
// process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(handlers(stdout, stderr))
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if err == nil {
		return appcore.ExitOK
	}
	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}
	// Anything cobra or the option parser rejects is a usage error.
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", commandPath(root, argv))
	return appcore.ExitUsage
}

func commandPath(root *cobra.Command, argv []string) string {
	if cmd, _, err := root.Find(argv); err == nil && cmd != nil {
		return cmd.CommandPath()
	}
	return root.CommandPath()
}
