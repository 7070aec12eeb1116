package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/divsmith/zmk-keymap-tools/internal/fs"
	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
)

const checkLongDescription = `
keymapcheck runs a fixed set of structural checks against a ZMK keymap file:
the two required includes, the "zmk,keymap" compatible marker, and at least
one layer block. All checks are always evaluated and every failure is
reported.

The result is reported as text output; the exit code stays zero whether the
keymap passes or fails, so the command is safe to chain in editor hooks.
`

// NewCheckCmd creates the keymapcheck root command and wires up dependencies.
func NewCheckCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var verbose bool
	var watch bool
	outputVal := formatValue("text")

	cmd := &cobra.Command{
		Use:           "keymapcheck <keymap-file>",
		Short:         "Validate the structure of a ZMK keymap file",
		Long:          checkLongDescription,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			if lazy.HasInner() {
				return nil
			}

			logger, _, err := setupLogger(stderr, ll, envProvider)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			lazy.SetInner(NewCLIManager(logger, cmd.OutOrStdout(), nil, keymap.NewValidator(), nil))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ValidateOptions{
				Verbose:   verbose,
				Format:    string(outputVal),
				UseColour: !noColour,
			}
			if watch {
				return lazy.WatchValidation(cmd.Context(), args[0], opts, nil)
			}
			return lazy.ValidateFile(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every check, not just failures")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch the file and revalidate on change")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	cmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	cmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	cmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	cmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = cmd.PersistentFlags().MarkHidden("nocolor")
	_ = cmd.PersistentFlags().MarkHidden("noColor")
	_ = cmd.PersistentFlags().MarkHidden("noColour")

	return cmd
}
