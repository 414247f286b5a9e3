package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chefguide/internal/dataset"
	"chefguide/internal/formatter"
	"chefguide/internal/normalizer"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show chef, restaurant and award counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Chefs:       %d\n", dir.Stats.TotalChefs)
			fmt.Fprintf(out, "Restaurants: %d\n", dir.Stats.TotalRestaurants)
			fmt.Fprintf(out, "Awarded:     %d\n\n", dir.Stats.AwardCount)

			table := formatter.NewTable("Season", "Team", "Chefs", "Restaurants", "Awarded")

			for _, s := range dir.Breakdown {
				label := fmt.Sprintf("S%d", s.Season)
				table.Append(label, "⚪", fmt.Sprint(s.White.TotalChefs), fmt.Sprint(s.White.TotalRestaurants), fmt.Sprint(s.White.AwardCount))
				table.Append(label, "⚫", fmt.Sprint(s.Black.TotalChefs), fmt.Sprint(s.Black.TotalRestaurants), fmt.Sprint(s.Black.AwardCount))
			}

			fmt.Fprintln(out, table.String())
			fmt.Fprintf(out, "\nVersion: %s (%s)\n", dir.Fingerprint, dir.Source)

			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset for integrity problems",
		Long:  "Reports every problem in the dataset, not only the first one. Exits non-zero if any is found.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := dataset.NewLoader(a.cfg.Dataset)

			ds, source, err := loader.Load(cmd.Context(), a.cfg.Dataset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			issues := normalizer.NewValidator().Issues(ds)

			if len(issues) == 0 {
				fmt.Fprintf(out, "✅ %s: %d seasons, %d chefs, no problems found\n", source, len(ds.Seasons), ds.ChefCount())
				return nil
			}

			fmt.Fprintf(out, "❌ %s: %d problems found\n", source, len(issues))

			for _, issue := range issues {
				fmt.Fprintf(out, "  - %v\n", issue)
			}

			return fmt.Errorf("dataset has %d problems", len(issues))
		},
	}
}
