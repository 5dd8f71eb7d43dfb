package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/graph"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/catalog"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

// Graph output formats.
const (
	formatSVG  = "svg"
	formatDOT  = "dot"
	formatJSON = "json"
)

type graphOptions struct {
	input   string
	output  string
	format  string
	weights bool
}

// graphCommand creates the graph export command.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOptions

	cmd := &cobra.Command{
		Use:   "graph <year> <day>",
		Short: "Export the graph model of a puzzle",
		Long: `Export the graph a puzzle builds from its input.

Supported puzzles are listed with "graph" in the extras column of aoc list.
The format follows the output file extension (.svg, .dot, .json) unless
--format is given. Without --output, DOT is written to stdout.`,
		Example: `  aoc graph 2020 7 -o bags.svg --weights
  aoc graph 2021 12 --format json`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeYearDay,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseNumber("year", args[0])
			if err != nil {
				return err
			}
			day, err := parseNumber("day", args[1])
			if err != nil {
				return err
			}
			e, err := catalog.Lookup(year, day)
			if err != nil {
				return err
			}
			return c.exportGraph(cmd, e, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "svg, dot or json")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges with their weights")

	return cmd
}

func (c *CLI) exportGraph(cmd *cobra.Command, e catalog.Entry, opts graphOptions) error {
	format, err := graphFormat(opts)
	if err != nil {
		return err
	}

	s := e.New()
	gr, ok := s.(puzzle.Grapher)
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "%s has no graph model", e.Info)
	}

	path := opts.input
	if path == "" {
		path = runner.InputPath(c.Config.InputDir, e.Year, e.Day)
	}
	data, err := runner.ReadInput(path, c.stdin)
	if err != nil {
		return err
	}
	lines, err := puzzle.ReadLines(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err := s.SetInput(lines); err != nil {
		return err
	}
	g, err := gr.Graph()
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("built graph", "puzzle", e.ID(), "nodes", g.NodeCount(), "edges", g.EdgeCount())

	out, err := encodeGraph(cmd, g, format, graph.Options{Title: e.Info.String(), Weights: opts.weights})
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(opts.output), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return err
	}
	printSuccess("Exported %s", e.Info)
	printDetail("%d nodes · %d edges", g.NodeCount(), g.EdgeCount())
	printFile(opts.output)
	return nil
}

// graphFormat picks the explicit format, else the output extension, else DOT.
func graphFormat(opts graphOptions) (string, error) {
	format := strings.ToLower(opts.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	}
	if format == "" || format == "gv" {
		format = formatDOT
	}
	switch format {
	case formatSVG, formatDOT, formatJSON:
		return format, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown graph format %q (want svg, dot or json)", format)
}

func encodeGraph(cmd *cobra.Command, g *graph.Graph, format string, opts graph.Options) ([]byte, error) {
	switch format {
	case formatJSON:
		return graph.EncodeJSON(g)
	case formatSVG:
		return graph.RenderSVG(cmd.Context(), graph.ToDOT(g, opts))
	}
	return []byte(graph.ToDOT(g, opts)), nil
}
