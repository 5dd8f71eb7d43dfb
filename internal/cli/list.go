package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/catalog"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available puzzles",
		Long: `List every solved puzzle with its input file status.

The extras column shows puzzles that can export a graph (aoc graph) or draw
a picture (aoc solve --render).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.All()
			if year != 0 {
				entries = catalog.Year(year)
				if len(entries) == 0 {
					return errors.New(errors.ErrCodePuzzleNotFound, "no puzzles for %d", year)
				}
			}
			printPuzzleTable(entries, c.Config.InputDir)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "only list puzzles of this year")
	return cmd
}

func printPuzzleTable(entries []catalog.Entry, inputDir string) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(entries))
	present := 0
	for _, e := range entries {
		input := "—"
		if _, err := os.Stat(runner.InputPath(inputDir, e.Year, e.Day)); err == nil {
			input = iconSuccess
			present++
		}
		rows = append(rows, []string{strconv.Itoa(e.Year), strconv.Itoa(e.Day), e.Name, input, extras(e)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Year", "Day", "Puzzle", "Input", "Extras").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if rows[row][3] != iconSuccess {
				return base.Foreground(colorDim)
			}
			if col == 3 {
				return base.Foreground(colorGreen)
			}
			return base
		})

	fmt.Fprintln(stdout, t.Render())
	printDetail("%d puzzles, %d with input in %s", len(entries), present, inputDir)
}

// extras names the optional capabilities of a unit.
func extras(e catalog.Entry) string {
	var out []string
	s := e.New()
	if _, ok := s.(puzzle.Grapher); ok {
		out = append(out, "graph")
	}
	if _, ok := s.(puzzle.Renderer); ok {
		out = append(out, "render")
	}
	return strings.Join(out, ", ")
}
