package episodic

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// reportColumns is the final-table column order, matching the in-memory
// analysis result shape.
var reportColumns = []string{
	"id", "season-episode",
	"negative_score", "neutral_score", "positive_score", "compound_score",
	"character_words",
	"arousal_score", "valence_score", "description",
	"imdb_rating", "season",
}

// maxTableText caps how many runes of episode text the rendered table shows
// per row.
const maxTableText = 40

// RenderTable renders the analysis rows as a terminal table. Episode text is
// truncated for readability; WriteCSV carries the full text.
func RenderTable(rows []Row) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// Column names render verbatim; the default style would uppercase them.
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(reportColumns))
	for i, name := range reportColumns {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		excerpt := row.Text
		if runes := []rune(excerpt); len(runes) > maxTableText {
			excerpt = string(runes[:maxTableText]) + "…"
		}
		tw.AppendRow(table.Row{
			row.ID, row.EpisodeID,
			fmt.Sprintf("%.3f", row.Negative),
			fmt.Sprintf("%.3f", row.Neutral),
			fmt.Sprintf("%.3f", row.Positive),
			fmt.Sprintf("%.4f", row.Compound),
			excerpt,
			fmt.Sprintf("%.2f", row.Arousal),
			fmt.Sprintf("%.2f", row.Valence),
			row.Description,
			fmt.Sprintf("%.1f", row.Rating),
			row.Season,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
		{Number: 11, Align: text.AlignRight},
		{Number: 12, Align: text.AlignRight},
	})

	return tw.Render()
}

// WriteCSV writes the analysis rows as CSV with the same shape as the
// in-memory result table.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.ID),
			row.EpisodeID,
			strconv.FormatFloat(row.Negative, 'f', 3, 64),
			strconv.FormatFloat(row.Neutral, 'f', 3, 64),
			strconv.FormatFloat(row.Positive, 'f', 3, 64),
			strconv.FormatFloat(row.Compound, 'f', 4, 64),
			row.Text,
			strconv.FormatFloat(row.Arousal, 'f', -1, 64),
			strconv.FormatFloat(row.Valence, 'f', -1, 64),
			row.Description,
			strconv.FormatFloat(row.Rating, 'f', -1, 64),
			strconv.Itoa(row.Season),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
