package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tamscraper/internal/pipeline"
)

// renderSummary formats the end-of-run counters as a two-column table.
func renderSummary(stats *pipeline.Stats, elapsed time.Duration) string {
	rows := [][]string{
		{"Folders processed", strconv.Itoa(stats.Folders)},
		{"Folders skipped", strconv.Itoa(stats.FoldersSkipped)},
		{"Games written", strconv.Itoa(stats.Games)},
		{"Covers converted", strconv.Itoa(stats.Covers)},
		{"Fanart converted", strconv.Itoa(stats.Fanart)},
		{"Marquees converted", strconv.Itoa(stats.Marquees)},
		{"Artwork errors", strconv.Itoa(stats.ArtworkErrors)},
		{"Elapsed", elapsed.Round(time.Millisecond).String()},
	}
	return renderTable([]string{"Summary", "Value"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	// Counter column reads better right-aligned.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: columns, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
