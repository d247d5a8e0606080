package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"paperboard/internal/publish"
)

func newExportCmd(app *App) *cobra.Command {
	var f viewFlags
	var as string
	var out string
	var title string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the filtered table as HTML or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := publish.ParseFormat(as)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := loadView(cmd, app, &f)
			if err != nil {
				return writeErr(cmd, err)
			}
			opt := publish.WriteOptions{Format: ft, Overwrite: overwrite, Title: title}
			snap := publish.Capture(st)

			if strings.TrimSpace(out) == "-" {
				if err := publish.Render(cmd.OutOrStdout(), snap, opt); err != nil {
					return writeErr(cmd, err)
				}
				return nil
			}
			res, err := publish.WriteFile(snap, out, opt)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data":   res,
				"_hints": []string{"open " + res.Written},
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&as, "as", "html", "Export format (html|markdown)")
	cmd.Flags().StringVar(&out, "out", "", "Output file path (- for stdout)")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	return cmd
}
