package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chefguide/internal/directory"
	"chefguide/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		filters queryFlags
		format  string
		outPath string
		noSign  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the directory to a JSON, CSV, markdown or SQLite file",
		Example: `  chefguide export --format csv --out chefs.csv
  chefguide export --format markdown --season 2
  chefguide export --format sqlite --out guide.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == "" {
				format = a.cfg.Export.Format
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			q, err := filters.query()
			if err != nil {
				return err
			}

			dir, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = export.DefaultPath(a.cfg.Export.BasePath, f)
			}

			snap := export.Snapshot{Directory: dir, Chefs: directory.Filter(dir.Chefs, q)}
			opts := export.Options{
				Format: f,
				Pretty: a.cfg.Export.PrettyPrint,
				Sign:   a.cfg.Export.Sign && !noSign,
			}

			if err := export.WriteFile(cmd.Context(), outPath, snap, opts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d chefs to %s\n", len(snap.Chefs), outPath)

			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "json, csv, markdown or sqlite (default from config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default <export.base_path>/chefs.<ext>)")
	cmd.Flags().BoolVar(&noSign, "no-sign", false, "Do not append a metadata block to markdown output")

	return cmd
}
