package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/esdraskololo/File-Organizer-Tool/internal/planner"
	"github.com/esdraskololo/File-Organizer-Tool/internal/ui"
)

// stdoutIsTTY reports whether stdout is attached to a terminal.
func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// planRenderer returns the plan renderer injected into the interactive
// session: the table form on a terminal, nil (plain listing) otherwise.
func planRenderer() ui.PlanRenderer {
	if !stdoutIsTTY() {
		return nil
	}
	return renderPlanTable
}

// renderPlanTable renders a plan as a category/file-count table.
func renderPlanTable(plan *planner.Plan) string {
	rows := make([][]string, 0, plan.Len())
	for _, category := range plan.Categories() {
		rows = append(rows, []string{category, fmt.Sprint(len(plan.Files(category)))})
	}
	return renderTable([]string{"Category", "Files"}, rows)
}

// renderBucketTable renders existing bucket subdirectories before a reversal.
func renderBucketTable(buckets map[string][]string) string {
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, fmt.Sprint(len(buckets[name]))})
	}
	return renderTable([]string{"Subdirectory", "Files"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	// File counts align right, names left.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
