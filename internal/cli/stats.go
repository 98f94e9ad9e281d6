package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mwalther/importgraph/pkg/graph"
)

// statsCommand creates the stats command showing per-module import counts.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph.json>",
		Short: "Show fan-in/fan-out counts for a traced graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}
			printDegreeTable(g)
			return nil
		},
	}
}

// statRow pairs a module name with its degree counts for sorting.
type statRow struct {
	name    string
	degrees graph.Degrees
}

// printDegreeTable renders fan-out (imports) and fan-in (imported by)
// counts per module, busiest modules first. The root pseudo-node is
// omitted since it only anchors root imports.
func printDegreeTable(g *graph.Graph) {
	degrees := g.DegreeTable()

	rows := make([]statRow, 0, len(degrees))
	for _, name := range g.Nodes() {
		if name == graph.Root {
			continue
		}
		rows = append(rows, statRow{name: name, degrees: degrees[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].degrees, rows[j].degrees
		if di.Out+di.In != dj.Out+dj.In {
			return di.Out+di.In > dj.Out+dj.In
		}
		return rows[i].name < rows[j].name
	})

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"Module", "Imports", "Imported By"})
	for _, row := range rows {
		tbl.AppendRow(table.Row{row.name, row.degrees.Out, row.degrees.In})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d modules", len(rows)), "", fmt.Sprintf("%d imports", g.EdgeCount())})
	tbl.Render()
}
