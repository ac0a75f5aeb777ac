// cli/output.go
package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gewnthar/flightqa/models"
	"github.com/gewnthar/flightqa/services"
)

func renderGenerationResult(w io.Writer, result *services.GenerationResult) {
	fmt.Fprintf(w, "Created file: %s\n", result.OutputPath)
	fmt.Fprintf(w, "Batch: %s (seed %d)\n", result.BatchID, result.Seed)
	if result.Loaded {
		fmt.Fprintln(w, "Loaded into database: yes")
	}
	renderSummaryTable(w, result.Summary)
}

func renderSummary(w io.Writer, path string, summary models.Summary) {
	fmt.Fprintf(w, "File: %s\n", path)
	renderSummaryTable(w, summary)
}

func renderSummaryTable(w io.Writer, summary models.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// keep column labels as written; they name CSV columns
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Data quality issue", "Rows"})
	for _, item := range summary.Items() {
		t.AppendRow(table.Row{item.Label, item.Count})
	}
	t.AppendFooter(table.Row{"Total records", summary.TotalRows})
	t.Render()
}
