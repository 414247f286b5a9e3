package export

import (
	"fmt"
	"strings"

	"chefguide/internal/directory"
	"chefguide/internal/formatter"
	"chefguide/pkg/metadata"
	"chefguide/pkg/utils"
)

const restaurantCellWidth = 60

// RenderMarkdown renders s as a heading, a summary line and one aligned table.
// When sign is set a metadata block versioned by the directory fingerprint is appended.
func RenderMarkdown(s Snapshot, sign bool) string {
	strs := utils.NewStringHelper()
	stats := directory.Aggregate(s.Chefs)

	var b strings.Builder

	b.WriteString("# Chef Restaurant Guide\n\n")
	fmt.Fprintf(&b, "%s · %d restaurants · %d awarded\n\n",
		directory.ResultSummary(len(s.Chefs)), stats.TotalRestaurants, stats.AwardCount)

	table := formatter.NewTable("Season", "Team", "Chef", "Restaurants", "Rank")

	for _, card := range directory.Cards(s.Chefs) {
		name := card.Headline
		if card.Subtitle != "" {
			name += " (" + card.Subtitle + ")"
		}

		names := make([]string, 0, len(card.Preview))
		for _, r := range card.Preview {
			names = append(names, r.NameKo)
		}

		restaurants := strings.Join(names, ", ")
		if more := card.MoreLabel(); more != "" {
			restaurants += " " + more
		}

		if restaurants == "" {
			restaurants = card.Note
		}

		if card.Awarded {
			restaurants = "⭐ " + restaurants
		}

		table.Append(
			card.SeasonLabel,
			card.CategoryMark,
			strs.EscapeTableCell(name),
			strs.EscapeTableCell(strs.TruncateWidth(restaurants, restaurantCellWidth)),
			strs.EscapeTableCell(card.RankBadge),
		)
	}

	b.WriteString(table.String())

	out := b.String()
	if sign {
		return metadata.Sign(out, true, s.Directory.Fingerprint)
	}

	return out + "\n"
}
