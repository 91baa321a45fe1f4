package console

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"twocheck/internal/queries"
)

// RenderQueries renders the word pairs of a queries file in file order.
func RenderQueries(qs []queries.Query) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Word1", "Word2"})
	for i, q := range qs {
		tw.AppendRow(table.Row{i + 1, q.Word1, q.Word2})
	}
	return tw.Render() + "\n"
}
