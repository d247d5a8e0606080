package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var f viewFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the papers the table would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadView(cmd, app, &f)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows := st.Visible()
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}
			return writeOut(cmd, app, map[string]any{
				"data": rows,
				"meta": viewMeta(st),
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most N papers (0 = all)")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the counters for the filtered papers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadView(cmd, app, &f)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": st.Stats(),
				"meta": map[string]any{"filters": st.Badges()},
			})
		},
	}
	f.bind(cmd)
	return cmd
}

func newOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the collection and year dropdown choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadView(cmd, app, &viewFlags{})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": st.Options()})
		},
	}
}
