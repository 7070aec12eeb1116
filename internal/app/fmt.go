package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/divsmith/zmk-keymap-tools/internal/config"
	"github.com/divsmith/zmk-keymap-tools/internal/fs"
	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
)

// Version is the current version of the keymap tools, set at build time.
var Version = "dev"

const fmtLongDescription = `
keymapfmt rewrites every "bindings = < ... >" block in the given ZMK keymap
files into a fixed-column grid so the source mirrors the physical key layout,
then optionally pipes the result through an external formatter (clang-format
by default). Files are rewritten in place.

A missing external formatter is tolerated: the grid-formatted output is kept
and a note is printed. Each file is processed independently; an error on one
file does not stop the rest of the batch.
`

// NewFmtCmd creates the keymapfmt root command and wires up dependencies.
func NewFmtCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command {
	var debug bool
	var configPath string
	var columns int
	var fieldWidth int
	var formatterCmd string
	var skipFormatter bool

	cmd := &cobra.Command{
		Use:           "keymapfmt <keymap-file>...",
		Short:         "Format ZMK keymap bindings into a fixed-column grid",
		Long:          fmtLongDescription,
		Version:       Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				return nil
			}

			cfg, err := config.Resolve(configPath, envProvider)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("columns") {
				cfg.Grid.Columns = columns
			}
			if cmd.Flags().Changed("field-width") {
				cfg.Grid.FieldWidth = fieldWidth
			}
			if cmd.Flags().Changed("formatter") {
				cfg.Formatter.Command = formatterCmd
				cfg.Formatter.Args = nil
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, _, err := setupLogger(stderr, ll, envProvider)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			formatter := keymap.NewGridFormatter(cfg.Grid.Columns, cfg.Grid.FieldWidth)
			var filter keymap.TextFilter
			if !skipFormatter && !cfg.Formatter.Disabled {
				filter = keymap.NewExecFilter(cfg.Formatter.Command, cfg.Formatter.Args...)
			}

			lazy.SetInner(NewCLIManager(logger, cmd.OutOrStdout(), formatter, keymap.NewValidator(), filter))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Per-file failures are reported inline and never abort the
			// batch; the process still exits zero.
			lazy.FormatFiles(cmd.Context(), args)
			return nil
		},
	}

	cmd.Flags().IntVarP(&columns, "columns", "n", keymap.DefaultColumns, "binding tokens per grid row")
	cmd.Flags().IntVarP(&fieldWidth, "field-width", "w", keymap.DefaultFieldWidth, "minimum display width per token")
	cmd.Flags().StringVarP(&formatterCmd, "formatter", "f", config.DefaultFormatterCommand,
		"external formatter to pipe the result through")
	cmd.Flags().BoolVarP(&skipFormatter, "skip-formatter", "s", false, "skip the external formatter pass")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .keymap-tools.yml (overrides env/cwd lookup)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}
