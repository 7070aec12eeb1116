package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/divsmith/zmk-keymap-tools/internal/fs"
)

// cmdBuilder constructs one of the tool root commands.
type cmdBuilder func(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command

// RunFmt executes the keymapfmt CLI with the given arguments.
func RunFmt(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	return run(ctx, NewFmtCmd, args, stdout, stderr, envProvider)
}

// RunCheck executes the keymapcheck CLI with the given arguments.
func RunCheck(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	return run(ctx, NewCheckCmd, args, stdout, stderr, envProvider)
}

func run(ctx context.Context, build cmdBuilder, args []string, stdout, stderr io.Writer,
	envProvider fs.EnvProvider,
) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}

	if envProvider == nil {
		envProvider = fs.NewEnvProvider()
	}

	rootCmd := build(lazy, logLevel, stderr, envProvider)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
