package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/pkg/board"
	"github.com/matzehuels/gridkit/pkg/grid"
)

// Board styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

	tileNormalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Foreground(colorWhite).
			Align(lipgloss.Center, lipgloss.Center)

	tileCursorStyle = tileNormalStyle.
			BorderForeground(colorCyan).
			Foreground(colorCyan).
			Bold(true)

	tileGrabbedStyle = tileNormalStyle.
				BorderForeground(colorYellow).
				Foreground(colorYellow).
				Bold(true)

	tileEmptyStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(colorDim).
			Align(lipgloss.Center, lipgloss.Center)
)

// Terminal cell geometry for one grid cell.
const (
	tileCellWidth  = 14
	tileCellHeight = 3
)

// =============================================================================
// BoardModel - Interactive board
// =============================================================================

// BoardModel is the bubbletea model for the interactive board. The cursor
// walks the tile sequence; grabbing a tile turns the arrow keys into a
// drop-cell selector, and dropping runs a reorder.
type BoardModel struct {
	Engine grid.Engine
	Items  []*grid.Item

	Cursor  int
	Grabbed bool
	DropRow int
	DropCol int

	Status string
}

// NewBoardModel creates a board model over items.
func NewBoardModel(eng grid.Engine, items []*grid.Item) BoardModel {
	return BoardModel{
		Engine: eng,
		Items:  eng.Pack(items),
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		if m.Grabbed {
			m.Grabbed = false
			m.Status = "drop canceled"
			return m, nil
		}
		return m, tea.Quit

	case "left", "h":
		if m.Grabbed {
			m.DropCol = max(m.DropCol-1, 0)
		} else if m.Cursor > 0 {
			m.Cursor--
		}

	case "right", "l":
		if m.Grabbed {
			m.DropCol = min(m.DropCol+1, m.Engine.Config().Columns-1)
		} else if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}

	case "up", "k":
		if m.Grabbed {
			m.DropRow = max(m.DropRow-1, 0)
		} else if m.Cursor > 0 {
			m.Cursor--
		}

	case "down", "j":
		if m.Grabbed {
			m.DropRow++
		} else if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}

	case "enter", " ":
		m = m.toggleGrab()

	case "a":
		m = m.appendTile()

	case "x":
		m = m.removeTile()

	case "s":
		m = m.cycleSpan()

	case "f":
		m = m.bringToFront()
	}

	return m, nil
}

// toggleGrab picks up the cursor tile or drops it at the selected cell.
func (m BoardModel) toggleGrab() BoardModel {
	if len(m.Items) == 0 {
		return m
	}
	if !m.Grabbed {
		m.Grabbed = true
		it := m.Items[m.Cursor]
		m.DropRow, m.DropCol = it.GridRow, it.GridCol
		m.Status = fmt.Sprintf("grabbed %s", it.ID)
		return m
	}

	it := m.Items[m.Cursor]
	cfg := m.Engine.Config()
	x, y := cfg.CellOrigin(m.DropRow, m.DropCol)
	next := m.Engine.Reorder(m.Items, it.ID, x+cfg.CellWidth/2, y+cfg.CellHeight/2)

	m.Grabbed = false
	if sameItems(next, m.Items) {
		m.Status = fmt.Sprintf("%s stayed put", it.ID)
		return m
	}
	m.Items = next
	for i, cand := range m.Items {
		if cand.ID == it.ID {
			m.Cursor = i
			break
		}
	}
	m.Status = fmt.Sprintf("dropped %s at (%d,%d)", it.ID, m.DropRow, m.DropCol)
	return m
}

// appendTile adds a fresh single-cell tile at the end of the sequence.
func (m BoardModel) appendTile() BoardModel {
	id := "tile-" + uuid.NewString()[:8]
	m.Items = m.Engine.Append(m.Items, m.Engine.NewItem(id, ""))
	m.Cursor = len(m.Items) - 1
	m.Status = fmt.Sprintf("added %s", id)
	return m
}

// removeTile deletes the tile under the cursor.
func (m BoardModel) removeTile() BoardModel {
	if len(m.Items) == 0 || m.Grabbed {
		return m
	}
	id := m.Items[m.Cursor].ID
	m.Items = m.Engine.Remove(m.Items, id)
	if m.Cursor >= len(m.Items) && m.Cursor > 0 {
		m.Cursor = len(m.Items) - 1
	}
	m.Status = fmt.Sprintf("removed %s", id)
	return m
}

// cycleSpan steps the cursor tile through the span combinations:
// 1x1, 2x1, 2x2, 1x2, and back. On single-column boards only the row
// span cycles.
func (m BoardModel) cycleSpan() BoardModel {
	if len(m.Items) == 0 || m.Grabbed {
		return m
	}
	it := m.Items[m.Cursor]
	cfg := m.Engine.Config()

	cols, rows := cfg.ColSpan(it.Width), cfg.RowSpan(it.Height)
	switch {
	case cfg.Columns < 2:
		cols, rows = 1, 3-rows
	case cols == 1 && rows == 1:
		cols = 2
	case cols == 2 && rows == 1:
		rows = 2
	case cols == 2 && rows == 2:
		cols = 1
	default:
		cols, rows = 1, 1
	}
	m.Items = m.Engine.Resize(m.Items, it.ID, cfg.SpanWidth(cols), cfg.SpanHeight(rows))
	m.Status = fmt.Sprintf("%s spans %dx%d", it.ID, cols, rows)
	return m
}

// bringToFront raises the cursor tile's z-index.
func (m BoardModel) bringToFront() BoardModel {
	if len(m.Items) == 0 || m.Grabbed {
		return m
	}
	id := m.Items[m.Cursor].ID
	m.Items = m.Engine.BringToFront(m.Items, id)
	m.Status = fmt.Sprintf("%s to front", id)
	return m
}

func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridkit Board"))
	b.WriteString("\n")
	if m.Grabbed {
		b.WriteString(listDimStyle.Render("↑/↓/←/→ pick cell  ⏎ drop  esc cancel"))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ move  ⏎ grab  a add  x remove  s span  f front  q quit"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	height := m.Engine.ContentHeight(m.Items)
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d tiles · %.0fpx", len(m.Items), height)))
	if m.Status != "" {
		b.WriteString(listDimStyle.Render(" · " + m.Status))
	}
	b.WriteString("\n")

	return b.String()
}

// renderGrid draws the packed board cell by cell. Anchor cells carry the
// tile id; continuation cells of wide or tall tiles repeat it dimmed.
func (m BoardModel) renderGrid() string {
	cfg := m.Engine.Config()

	rows := 1
	for _, it := range m.Items {
		if bottom := it.GridRow + cfg.RowSpan(it.Height); bottom > rows {
			rows = bottom
		}
	}
	if m.Grabbed && m.DropRow+1 > rows {
		rows = m.DropRow + 1
	}

	type cell struct {
		item   *grid.Item
		anchor bool
		index  int
	}
	cells := make([][]cell, rows)
	for r := range cells {
		cells[r] = make([]cell, cfg.Columns)
	}
	for i, it := range m.Items {
		for dr := 0; dr < cfg.RowSpan(it.Height); dr++ {
			for dc := 0; dc < cfg.ColSpan(it.Width); dc++ {
				r, c := it.GridRow+dr, it.GridCol+dc
				if r < rows && c < cfg.Columns {
					cells[r][c] = cell{item: it, anchor: dr == 0 && dc == 0, index: i}
				}
			}
		}
	}

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		boxes := make([]string, 0, cfg.Columns)
		for c := 0; c < cfg.Columns; c++ {
			cl := cells[r][c]

			style := tileEmptyStyle
			label := "·"
			switch {
			case cl.item == nil:
				if m.Grabbed && r == m.DropRow && c == m.DropCol {
					style = tileGrabbedStyle
					label = "drop"
				}
			case m.Grabbed && r == m.DropRow && c == m.DropCol:
				style = tileGrabbedStyle
				label = cl.item.ID
			case cl.index == m.Cursor:
				style = tileCursorStyle
				label = cl.item.ID
			case cl.anchor:
				style = tileNormalStyle
				label = cl.item.ID
			default:
				style = tileNormalStyle.BorderForeground(colorDim).Foreground(colorGray)
				label = cl.item.ID
			}

			boxes = append(boxes, style.Width(tileCellWidth).Height(tileCellHeight).Render(truncate(label, tileCellWidth)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// =============================================================================
// Helpers
// =============================================================================

// sameItems reports whether two sequences are the same elements in the
// same order. The engine returns the input untouched on no-op mutations,
// so element-wise identity detects "nothing changed".
func sameItems(a, b []*grid.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

// =============================================================================
// Command
// =============================================================================

// boardCommand creates the board command for the interactive terminal board.
func (c *CLI) boardCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "board [board.json]",
		Short: "Interactive terminal board",
		Long: `Interactive terminal board.

The board command opens a terminal UI over a board file (or an empty
board when no file is given). Move the cursor through the tiles, grab
and drop to reorder, toggle spans, add and remove tiles, and raise a
tile's z-index. On exit the board is written back to the file it was
loaded from.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return c.runBoard(path, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "grid metrics TOML file (overrides board metrics)")

	return cmd
}

// runBoard loads the board, runs the TUI, and writes the result back.
func (c *CLI) runBoard(path, configPath string) error {
	var b board.Board
	if path != "" {
		loaded, err := board.ReadFile(path)
		if err != nil {
			return fmt.Errorf("load board %s: %w", path, err)
		}
		b = loaded
	}

	cfg, err := resolveConfig(configPath, b)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	eng := grid.New(cfg)
	model := NewBoardModel(eng, b.Items())

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run board: %w", err)
	}

	result, ok := final.(BoardModel)
	if !ok {
		printError("board exited with unexpected model %T", final)
		return nil
	}

	if path == "" {
		printInfo("no board file given, result discarded")
		return nil
	}

	if err := board.WriteFile(board.FromItems(cfg, result.Items), path); err != nil {
		return fmt.Errorf("write board %s: %w", path, err)
	}
	printSuccess("Board saved")
	printFile(path)
	return nil
}
