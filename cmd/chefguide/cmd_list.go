package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"chefguide/internal/directory"
	"chefguide/internal/formatter"
	"chefguide/internal/models"
	"chefguide/pkg/utils"
)

// queryFlags are the filter flags shared by list and export.
type queryFlags struct {
	text     string
	season   string
	category string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.text, "q", "q", "", "Search chef and restaurant names (case-insensitive)")
	cmd.Flags().StringVarP(&f.season, "season", "s", "all", "Season number or 'all'")
	cmd.Flags().StringVar(&f.category, "category", "all", "Roster: white, black or all")
}

func (f *queryFlags) query() (directory.Query, error) {
	season, err := directory.ParseSeason(f.season)
	if err != nil {
		return directory.Query{}, err
	}

	category, err := directory.ParseCategory(f.category)
	if err != nil {
		return directory.Query{}, err
	}

	return directory.Query{Text: f.text, Season: season, Category: category}, nil
}

func newListCmd(a *app) *cobra.Command {
	var (
		filters queryFlags
		format  string
		render  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chefs matching the filters",
		Example: `  chefguide list --season 1 --category black
  chefguide list -q napoleon --format json
  chefguide list --render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := filters.query()
			if err != nil {
				return err
			}

			dir, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			session := directory.NewSession(dir)
			session.SetQuery(q)

			out := cmd.OutOrStdout()

			switch format {
			case "json":
				return writeJSON(out, session.Filtered())
			case "cards":
				return writeJSON(out, directory.Cards(session.Filtered()))
			case "table":
			default:
				return fmt.Errorf("unknown format %q (want table, json or cards)", format)
			}

			table := chefTable(session.Filtered())

			if render {
				return renderMarkdown(out, session.Summary()+"\n\n"+table)
			}

			_, err = fmt.Fprintf(out, "%s\n\n%s\n", session.Summary(), table)

			return err
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or cards")
	cmd.Flags().BoolVar(&render, "render", false, "Render the table for the terminal")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one chef with every restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			chef := dir.ChefByID(args[0])
			if chef == nil {
				return fmt.Errorf("chef %q not found", args[0])
			}

			printChef(cmd.OutOrStdout(), chef)

			return nil
		},
	}
}

func chefTable(chefs []models.Chef) string {
	strs := utils.NewStringHelper()
	table := formatter.NewTable("ID", "Season", "Team", "Chef", "Restaurants", "Rank")

	for _, card := range directory.Cards(chefs) {
		name := card.Headline
		if card.Subtitle != "" {
			name += " (" + card.Subtitle + ")"
		}

		names := make([]string, 0, len(card.Preview))
		for _, r := range card.Preview {
			names = append(names, r.NameKo)
		}

		restaurants := strings.Join(names, ", ")
		if restaurants == "" {
			restaurants = card.Note
		} else if more := card.MoreLabel(); more != "" {
			restaurants += " " + more
		}

		table.Append(
			card.ID,
			card.SeasonLabel,
			card.CategoryMark,
			strs.EscapeTableCell(name),
			strs.EscapeTableCell(strs.TruncateWidth(restaurants, 48)),
			strs.EscapeTableCell(card.RankBadge),
		)
	}

	return table.String()
}

func printChef(w io.Writer, c *models.Chef) {
	card := directory.NewCard(c)

	fmt.Fprintf(w, "%s %s", card.CategoryMark, card.Headline)

	if card.Subtitle != "" {
		fmt.Fprintf(w, " (%s)", card.Subtitle)
	}

	fmt.Fprintf(w, "  %s  %s\n", card.SeasonLabel, card.RankBadge)

	if c.Specialty != "" {
		fmt.Fprintf(w, "Specialty: %s\n", c.Specialty)
	}

	if c.Michelin != "" {
		fmt.Fprintf(w, "Michelin:  %s\n", c.Michelin)
	}

	if len(c.Restaurants) == 0 {
		fmt.Fprintf(w, "%s\n", card.Note)
		return
	}

	for _, r := range c.Restaurants {
		fmt.Fprintf(w, "- %s", r.NameKo)

		if r.NameEn != "" {
			fmt.Fprintf(w, " / %s", r.NameEn)
		}

		if r.Michelin != "" {
			fmt.Fprintf(w, " [%s]", r.Michelin)
		}

		fmt.Fprintf(w, "\n  %s · %s\n", r.Cuisine, r.Address)

		if r.Reservation != "" {
			fmt.Fprintf(w, "  Reservation: %s\n", r.Reservation)
		}
	}

	if c.Note != "" {
		fmt.Fprintf(w, "Note: %s\n", c.Note)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func renderMarkdown(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err = io.WriteString(w, out)

	return err
}
