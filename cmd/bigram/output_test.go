package main

import (
	"bytes"
	"strings"
	"testing"

	"bigram/internal/bigram"
	"bigram/internal/config"
)

func sampleReport(trackOrder bool) *bigram.Report {
	acc := bigram.New(bigram.Options{TrackOrder: trackOrder})
	for _, token := range []string{"the", "quick", "brown", "fox", "and", "the", "quick", "blue", "hare"} {
		acc.Feed(token)
	}
	return acc.Report()
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPlain(&buf, sampleReport(true)); err != nil {
		t.Fatalf("renderPlain: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 7 bigrams + total:\n%s", len(lines), out)
	}
	if lines[0] != "•\t\"the quick\" 2" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[7] != "Total no. of bigrams generated: 7" {
		t.Errorf("total line = %q", lines[7])
	}
}

func TestRenderOrdered(t *testing.T) {
	var buf bytes.Buffer
	if err := renderOrdered(&buf, sampleReport(true)); err != nil {
		t.Fatalf("renderOrdered: %v", err)
	}

	want := strings.Join([]string{
		"the quick:2",
		"quick brown:1",
		"brown fox:1",
		"fox and:1",
		"and the:1",
		"quick blue:1",
		"blue hare:1",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("ordered dump = %q, want %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := renderTable(&buf, sampleReport(true)); err != nil {
		t.Fatalf("renderTable: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BIGRAM", "COUNT", "the quick", "TOTAL", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportTableFormatFallsBackForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := renderReport(&buf, sampleReport(true), config.FormatTable); err != nil {
		t.Fatalf("renderReport: %v", err)
	}
	if !strings.Contains(buf.String(), "Total no. of bigrams generated: 7") {
		t.Errorf("non-terminal table format did not fall back to plain:\n%s", buf.String())
	}
}

func TestRenderPlainUntrackedCoversAllKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPlain(&buf, sampleReport(false)); err != nil {
		t.Fatalf("renderPlain: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "•\t"); got != 7 {
		t.Errorf("got %d bullet lines, want 7:\n%s", got, out)
	}
	if !strings.Contains(out, "•\t\"the quick\" 2\n") {
		t.Errorf("untracked dump missing \"the quick\" 2:\n%s", out)
	}
}
