// Package output renders analytics results for the terminal.
package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/adanyl0v/quicktask-analytics/internal/services"
)

// Table buffers rows and renders them once.
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

func (t *Table) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *Table) Render() error {
	t.table.Header(t.header)
	err := t.table.Bulk(t.rows)
	if err != nil {
		return err
	}
	return t.table.Render()
}

// WriteUserStats prints one metric per row.
func WriteUserStats(w io.Writer, stats *services.UserStats) error {
	table := NewTable(w, []string{"Metric", "Value"})
	table.AddRow("user", stats.UserID)
	table.AddRow("total tasks", strconv.Itoa(stats.TotalTasks))
	table.AddRow("completed tasks", strconv.Itoa(stats.CompletedTasks))
	table.AddRow("completion %", strconv.FormatFloat(stats.CompletionPercentage, 'f', 2, 64))
	table.AddRow("priority low", strconv.Itoa(stats.PriorityDistribution.Low))
	table.AddRow("priority med", strconv.Itoa(stats.PriorityDistribution.Med))
	table.AddRow("priority high", strconv.Itoa(stats.PriorityDistribution.High))
	table.AddRow("status todo", strconv.Itoa(stats.StatusDistribution.Todo))
	table.AddRow("status in progress", strconv.Itoa(stats.StatusDistribution.InProgress))
	table.AddRow("status completed", strconv.Itoa(stats.StatusDistribution.Completed))
	return table.Render()
}

// WriteProductivityAnalysis prints one bucket per row, or the message when
// there are no buckets.
func WriteProductivityAnalysis(w io.Writer, result *services.ProductivityAnalysis) error {
	if len(result.Trends) == 0 {
		_, err := io.WriteString(w, result.Message+"\n")
		return err
	}

	table := NewTable(w, []string{"Date", "Total", "Completed", "Created"})
	for _, point := range result.Trends {
		table.AddRow(
			point.Date,
			strconv.Itoa(point.TotalTasks),
			strconv.Itoa(point.CompletedTasks),
			strconv.Itoa(point.CreatedTasks),
		)
	}
	return table.Render()
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
