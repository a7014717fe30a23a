package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// summaryRows builds the table printed after a stream run
func summaryRows(result ports.StreamResult) [][]string {
	warnings, errors := 0, 0
	for _, report := range result.Reports {
		warnings += len(report.Warnings)
		errors += len(report.Errors)
	}

	return [][]string{
		{"Metric", "Value"},
		{"Articles", fmt.Sprintf("%d", result.Articles)},
		{"Changed", fmt.Sprintf("%d", result.Changed)},
		{"Warnings", fmt.Sprintf("%d", warnings)},
		{"Errors", fmt.Sprintf("%d", errors)},
		{"Bytes read", fmt.Sprintf("%d", result.BytesProcessed)},
		{"Time", result.ProcessingTime.String()},
	}
}

// reportRows lists the diagnostics of every reported article
func reportRows(result ports.StreamResult) [][]string {
	rows := [][]string{{"Article", "Kind", "Message"}}
	for _, report := range result.Reports {
		index := fmt.Sprintf("%d", report.Index+1)
		for _, w := range report.Warnings {
			rows = append(rows, []string{index, "warning", w})
		}
		for _, e := range report.Errors {
			rows = append(rows, []string{index, "error", e})
		}
	}
	return rows
}

func hasErrors(result ports.StreamResult) bool {
	for _, report := range result.Reports {
		if len(report.Errors) > 0 {
			return true
		}
	}
	return false
}

func printSummary(result ports.StreamResult, detailed bool) {
	pterm.DefaultTable.WithHasHeader().WithData(summaryRows(result)).Render()
	if detailed && len(result.Reports) > 0 {
		pterm.DefaultTable.WithHasHeader().WithData(reportRows(result)).Render()
	}
	if hasErrors(result) {
		pterm.Warning.Println("Some articles could not be normalized; they were written unchanged")
	}
}

func printDiagnostics(warnings, errors []string) {
	for _, w := range warnings {
		pterm.Warning.Println(w)
	}
	for _, e := range errors {
		pterm.Error.Println(e)
	}
}

// parseCommand splits a REPL line into a command word and its argument.
// Lines that do not start with ':' are text to normalize.
func parseCommand(line string) (cmd, arg string) {
	if !strings.HasPrefix(line, ":") {
		return "", line
	}
	cmd, arg, _ = strings.Cut(strings.TrimPrefix(line, ":"), " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
