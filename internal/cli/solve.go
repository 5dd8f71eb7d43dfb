package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/catalog"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

type solveOptions struct {
	input   string
	part    int
	refresh bool
	all     bool
	year    int
	render  bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve [year] [day]",
		Short: "Solve a puzzle",
		Long: `Solve a puzzle and print both answers.

With two arguments the puzzle is named by year and day. With one argument it
is the day of default_year (or the latest year). Without arguments an
interactive picker opens on a terminal; otherwise the latest puzzle is solved.

Use --all to solve every puzzle whose input file exists.`,
		Example: `  aoc solve 2021 6
  aoc solve 6 --part 2
  aoc solve 2020 7 --input - < day7.txt
  aoc solve --all --year 2021`,
		Args:              cobra.MaximumNArgs(2),
		ValidArgsFunction: completeYearDay,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.part != 0 {
				if err := errors.ValidatePart(opts.part); err != nil {
					return err
				}
			}
			if opts.all {
				if len(args) > 0 || opts.input != "" {
					return errors.New(errors.ErrCodeInvalidInput, "--all takes no puzzle arguments or --input")
				}
				return c.solveAll(cmd, opts)
			}
			if cmd.Flags().Changed("year") {
				return errors.New(errors.ErrCodeInvalidInput, "--year only applies with --all")
			}

			entry, ok, err := c.resolvePuzzle(args)
			if err != nil || !ok {
				return err
			}
			return c.solveOne(cmd, entry, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file, or - for stdin")
	cmd.Flags().IntVarP(&opts.part, "part", "p", 0, "solve only part 1 or 2")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached answers")
	cmd.Flags().BoolVar(&opts.all, "all", false, "solve every puzzle with an input file")
	cmd.Flags().IntVar(&opts.year, "year", 0, "with --all, restrict to one year")
	cmd.Flags().BoolVar(&opts.render, "render", false, "also print the picture of puzzles that draw one")

	return cmd
}

// resolvePuzzle maps positional arguments to a catalog entry.
func (c *CLI) resolvePuzzle(args []string) (catalog.Entry, bool, error) {
	switch len(args) {
	case 2:
		year, err := parseNumber("year", args[0])
		if err != nil {
			return catalog.Entry{}, false, err
		}
		day, err := parseNumber("day", args[1])
		if err != nil {
			return catalog.Entry{}, false, err
		}
		e, err := catalog.Lookup(year, day)
		return e, err == nil, err
	case 1:
		day, err := parseNumber("day", args[0])
		if err != nil {
			return catalog.Entry{}, false, err
		}
		year := c.Config.DefaultYear
		if year == 0 {
			year = catalog.Latest().Year
		}
		e, err := catalog.Lookup(year, day)
		return e, err == nil, err
	}

	if isTerminal(c.stdin) && isTerminal(os.Stdout) {
		e, ok, err := c.pickPuzzle(catalog.All())
		if err == nil && !ok {
			printInfo("No puzzle selected")
		}
		return e, ok, err
	}
	return catalog.Latest(), true, nil
}

func parseNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s %q is not a number", name, s)
	}
	return n, nil
}

func (c *CLI) solveOne(cmd *cobra.Command, e catalog.Entry, opts solveOptions) error {
	ctx := cmd.Context()

	path := opts.input
	if path == "" {
		path = runner.InputPath(c.Config.InputDir, e.Year, e.Day)
	}
	data, err := runner.ReadInput(path, c.stdin)
	if err != nil {
		return err
	}

	r, err := c.newRunner(cmd)
	if err != nil {
		return err
	}
	defer r.Close()

	req := runner.Request{Year: e.Year, Day: e.Day, Input: data, Refresh: opts.refresh}
	if opts.part != 0 {
		req.Parts = []puzzle.Part{puzzle.Part(opts.part)}
	}

	sp := newSpinner(ctx, os.Stderr, fmt.Sprintf("Solving %s", e.Info))
	sp.Start()
	res, err := r.Run(ctx, req)
	sp.Stop()
	if err != nil {
		return err
	}

	printResult(res)
	if opts.render {
		if err := printPicture(e, data); err != nil {
			return err
		}
	}

	for _, a := range res.Answers {
		if a.Err != nil {
			return a.Err
		}
	}
	return nil
}

// printPicture decodes data with a fresh unit and prints its rendering.
func printPicture(e catalog.Entry, data []byte) error {
	s := e.New()
	rd, ok := s.(puzzle.Renderer)
	if !ok {
		printWarning("%s has no picture", e.Info)
		return nil
	}
	lines, err := puzzle.ReadLines(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err := s.SetInput(lines); err != nil {
		return err
	}
	pic, err := rd.Render()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, pic)
	return nil
}

func (c *CLI) solveAll(cmd *cobra.Command, opts solveOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	entries := catalog.All()
	if opts.year != 0 {
		entries = catalog.Year(opts.year)
		if len(entries) == 0 {
			return errors.New(errors.ErrCodePuzzleNotFound, "no puzzles for %d", opts.year)
		}
	}

	var reqs []runner.Request
	var missing int
	for _, e := range entries {
		data, err := runner.ReadInput(runner.InputPath(c.Config.InputDir, e.Year, e.Day), nil)
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			missing++
			logger.Debug("no input", "puzzle", e.ID())
			continue
		}
		if err != nil {
			return err
		}
		req := runner.Request{Year: e.Year, Day: e.Day, Input: data, Refresh: opts.refresh}
		if opts.part != 0 {
			req.Parts = []puzzle.Part{puzzle.Part(opts.part)}
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		printWarning("No inputs found in %s", c.Config.InputDir)
		printDetail("Expected files like %s", runner.InputPath(c.Config.InputDir, entries[0].Year, entries[0].Day))
		return nil
	}

	r, err := c.newRunner(cmd)
	if err != nil {
		return err
	}
	defer r.Close()

	prog := newProgress(logger)
	sp := newSpinner(ctx, os.Stderr, fmt.Sprintf("Solving %d puzzles", len(reqs)))
	sp.Start()
	results, err := r.RunAll(ctx, reqs, c.Config.Concurrency)
	sp.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d puzzles", len(reqs)))

	printResultTable(results)
	if missing > 0 {
		printDetail("%d puzzles skipped without input", missing)
	}

	failed := 0
	for _, res := range results {
		if !res.Failed() {
			continue
		}
		failed++
		if res.Err != nil {
			printError("%s: %s", res.Info, errors.UserMessage(res.Err))
			continue
		}
		for _, a := range res.Answers {
			if a.Err != nil {
				printError("%s %s: %s", res.Info, a.Part, errors.UserMessage(a.Err))
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	printSuccess("All %d puzzles solved", len(results))
	return nil
}

// completeYearDay completes the year, then the days of that year.
func completeYearDay(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		var out []string
		for _, y := range catalog.Years() {
			out = append(out, strconv.Itoa(y))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var out []string
		for _, e := range catalog.Year(year) {
			out = append(out, fmt.Sprintf("%d\t%s", e.Day, e.Name))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
