package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"bigram/internal/bigram"
	"bigram/internal/config"
)

// renderReport prints the finished histogram in the configured format. The
// table format downgrades to the plain dump when the writer is not a
// terminal, so piped output stays parseable.
func renderReport(w io.Writer, report *bigram.Report, format string) error {
	switch format {
	case config.FormatOrdered:
		return renderOrdered(w, report)
	case config.FormatPlain:
		return renderPlain(w, report)
	default:
		if !writerIsTerminal(w) {
			return renderPlain(w, report)
		}
		return renderTable(w, report)
	}
}

// renderPlain writes one bullet line per distinct bigram followed by the
// total summary line.
func renderPlain(w io.Writer, report *bigram.Report) error {
	for _, entry := range report.Entries() {
		if _, err := fmt.Fprintf(w, "•\t\"%s\" %d\n", entry.Bigram, entry.Count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total no. of bigrams generated: %d\n", report.Distinct())
	return err
}

// renderOrdered writes "word1 word2:count" lines in first-seen order.
func renderOrdered(w io.Writer, report *bigram.Report) error {
	for _, entry := range report.Entries() {
		if _, err := fmt.Fprintf(w, "%s:%d\n", entry.Bigram, entry.Count); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, report *bigram.Report) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Bigram", "Count"})
	for _, entry := range report.Entries() {
		tw.AppendRow(table.Row{entry.Bigram, entry.Count})
	}
	tw.AppendFooter(table.Row{"Total", report.Distinct()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func writerIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
