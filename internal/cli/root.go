package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"paperboard/internal/board"
	"paperboard/internal/format"
	"paperboard/internal/store"
	"paperboard/internal/tui"
)

type App struct {
	ConfigFile string
	PrettyJSON bool
	Format     string

	cfg      *store.Config
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "paperboard",
		Short:        "Browse a collection of research papers",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive table
  paperboard --data data/collected_papers.json

  # Scriptable views of the same table
  paperboard list --search agents --year 2024 --sort name:asc
  paperboard stats --tag "large language models"
  paperboard options --format yaml

  # Export what the table shows
  paperboard export --venue NeurIPS --as markdown --out neurips.md
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", envOr("PAPERBOARD_CONFIG", ""), "Config file (default: ./paperboard.yaml, then ~/.config/paperboard/paperboard.yaml)")
	cmd.PersistentFlags().String("data", "", "Papers JSON file or http(s) URL (default: "+store.DefaultDataPath+")")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PAPERBOARD_FORMAT", "json"), "Output format (json|yaml|edn)")
	cmd.PersistentFlags().String("log-file", "", "Write debug logs to this file")
	cmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"data":      "data",
	"log.file":  "log-file",
	"log.debug": "debug",
}

func (app *App) setup(cmd *cobra.Command) error {
	v := store.NewViper(app.ConfigFile)
	if err := bindFlags(v, cmd); err != nil {
		return writeErr(cmd, err)
	}
	cfg, err := store.LoadConfig(v)
	if err != nil {
		return writeErr(cmd, err)
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	app.closeLog = closeLog
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func (app *App) teardown() error {
	if app.closeLog == nil {
		return nil
	}
	err := app.closeLog()
	app.closeLog = nil
	return err
}

// settings turns the loaded config into engine settings.
func (app *App) settings() (board.Settings, error) {
	loc, err := app.cfg.Location()
	if err != nil {
		return board.Settings{}, err
	}
	s := board.Settings{Location: loc}
	copy(s.Widths[:], app.cfg.Columns.Widths)
	copy(s.MinWidths[:], app.cfg.Columns.MinWidths)
	return s, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	settings, err := app.settings()
	if err != nil {
		return writeErr(cmd, err)
	}
	err = tui.Run(cmd.Context(), tui.Options{
		Source:   app.cfg.Data,
		Settings: settings,
		Theme:    app.cfg.TUI.Theme,
		Glyphs:   app.cfg.TUI.Glyphs,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
