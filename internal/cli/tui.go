package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/adventofcode/pkg/puzzle/catalog"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// pickerItem is one row of the puzzle picker.
type pickerItem struct {
	catalog.Entry
	HasInput bool
}

// PuzzlePickerModel is the bubbletea model for interactive puzzle selection.
type PuzzlePickerModel struct {
	Items    []pickerItem
	Cursor   int
	Selected *catalog.Entry
	Height   int
	Offset   int
}

// newPuzzlePicker lists entries, marking those with an input file below inputDir.
// The cursor starts on the newest puzzle.
func newPuzzlePicker(entries []catalog.Entry, inputDir string) PuzzlePickerModel {
	items := make([]pickerItem, len(entries))
	for i, e := range entries {
		_, err := os.Stat(runner.InputPath(inputDir, e.Year, e.Day))
		items[i] = pickerItem{Entry: e, HasInput: err == nil}
	}
	m := PuzzlePickerModel{Items: items, Height: 15}
	if len(items) > 0 {
		m.Cursor = len(items) - 1
		m.Offset = max(0, m.Cursor-m.Height+1)
	}
	return m
}

func (m PuzzlePickerModel) Init() tea.Cmd {
	return nil
}

func (m PuzzlePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Items) - 1
		case "enter":
			if len(m.Items) == 0 {
				return m, tea.Quit
			}
			e := m.Items[m.Cursor].Entry
			m.Selected = &e
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-8)
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m PuzzlePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Puzzle"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ solve  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		input := "—"
		if it.HasInput {
			input = iconSuccess
		}
		rows = append(rows, []string{cursor, strconv.Itoa(it.Year), strconv.Itoa(it.Day), it.Name, input})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Year", "Day", "Puzzle", "Input").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Items) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Items[idx].HasInput {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))
	return b.String()
}

// pickPuzzle runs the picker and returns the chosen entry, or ok=false when
// the user quit without choosing.
func (c *CLI) pickPuzzle(entries []catalog.Entry) (catalog.Entry, bool, error) {
	final, err := tea.NewProgram(newPuzzlePicker(entries, c.Config.InputDir)).Run()
	if err != nil {
		return catalog.Entry{}, false, err
	}
	m := final.(PuzzlePickerModel)
	if m.Selected == nil {
		return catalog.Entry{}, false, nil
	}
	return *m.Selected, true, nil
}
