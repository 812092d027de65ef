package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"tgju/internal"
)

// FormatReport renders an Envelope as a markdown price report. Sections
// run gold, coins, currencies; records sort by display name and rows
// whose price carries no digit (placeholder quotes) are skipped.
func FormatReport(env internal.Envelope) string {
	if !env.OK() {
		return fmt.Sprintf("Error fetching data: %s", env.Message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Price Report - %s\n\n---\n", env.LastUpdated)

	sections := []struct {
		title string
		items map[string]internal.Record
	}{
		{"🥇 Gold", env.Data.Gold},
		{"🟡 Coins", env.Data.Coins},
		{"💵 Currencies", env.Data.Currencies},
	}

	for _, sec := range sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.title)
		b.WriteString("| Key | Name | Price | Change |\n")
		b.WriteString("| :--- | :--- | :--- | :--- |\n")

		var rows []string
		for _, rec := range sortedByName(sec.items) {
			// A price without a digit is a placeholder, not a quote.
			if !hasDigit(rec.Price) {
				continue
			}
			rows = append(rows, fmt.Sprintf("| `%s` | %s | %s | %s |", rec.Key, rec.Name, rec.Price, rec.Change))
		}

		if len(rows) == 0 {
			b.WriteString("| *No data found* | | | |\n")
			continue
		}
		for _, row := range rows {
			b.WriteString(row + "\n")
		}
		b.WriteString("\n---\n")
	}

	return b.String()
}

func sortedByName(items map[string]internal.Record) []internal.Record {
	out := make([]internal.Record, 0, len(items))
	for _, rec := range items {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}
