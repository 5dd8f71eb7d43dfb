package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

// stdout receives all command output. Tests replace it.
var stdout io.Writer = os.Stdout

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for answers.
	StyleNumber = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for failed answers.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

func printSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printResult prints the title and one line per answer of a single run.
func printResult(res *runner.Result) {
	fmt.Fprintln(stdout, StyleTitle.Render(res.Info.String()))
	for _, a := range res.Answers {
		label := lipgloss.NewStyle().Foreground(colorGray).Width(8).Render(a.Part.String())
		if a.Err != nil {
			fmt.Fprintln(stdout, "  "+label+" "+styleIconError.Render(iconError)+" "+StyleError.Render(errors.UserMessage(a.Err)))
			continue
		}
		fmt.Fprintln(stdout, "  "+label+" "+StyleNumber.Render(strconv.FormatInt(a.Value, 10))+"  "+answerStatus(a))
	}
}

// answerStatus renders "cached" or "fresh · 12ms".
func answerStatus(a runner.Answer) string {
	if a.Cached {
		return styleCached.Render(iconCached)
	}
	return styleComputed.Render(iconFresh) + StyleDim.Render(" · "+formatDuration(a.Duration))
}

// printResultTable prints many runs as one table.
func printResultTable(results []*runner.Result) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		row := []string{strconv.Itoa(res.Info.Year), strconv.Itoa(res.Info.Day), res.Info.Name, "", "", ""}
		if res.Err != nil {
			row[3] = errors.UserMessage(res.Err)
			rows = append(rows, row)
			continue
		}
		var total time.Duration
		cached := true
		for i, a := range res.Answers {
			if i > 1 {
				break
			}
			if a.Err != nil {
				row[3+i] = iconError + " " + string(errors.GetCode(a.Err))
			} else {
				row[3+i] = strconv.FormatInt(a.Value, 10)
			}
			total += a.Duration
			cached = cached && a.Cached
		}
		if cached {
			row[5] = iconCached
		} else {
			row[5] = formatDuration(total)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Year", "Day", "Puzzle", "Part 1", "Part 2", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 3 || col == 4:
				return base.Foreground(colorCyan)
			case col == 5:
				return base.Foreground(colorGray)
			}
			return base
		})
	fmt.Fprintln(stdout, t.Render())
}

// formatDuration rounds d for display.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
