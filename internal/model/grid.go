package model

import (
	"fmt"
	"slices"
	"strings"
)

// MaxGridDimension is the largest number of rows or columns a grid may have
const MaxGridDimension = 15

// Position identifies a cell on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// IsAdjacent reports whether p and other touch horizontally, vertically or diagonally
func (p Position) IsAdjacent(other Position) bool {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Grid is a rectangular board of letters with a mask of active cells
type Grid struct {
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Letters [][]rune `json:"letters"` // Row-major: Letters[row][col]
	Active  [][]bool `json:"active"`  // Inactive cells never take part in a word
}

// NewGrid creates a grid with every cell active and no letters
func NewGrid(rows, cols int) *Grid {
	letters := make([][]rune, rows)
	active := make([][]bool, rows)
	for i := range letters {
		letters[i] = make([]rune, cols)
		active[i] = make([]bool, cols)
		for j := range active[i] {
			active[i][j] = true
		}
	}
	return &Grid{
		Rows:    rows,
		Cols:    cols,
		Letters: letters,
		Active:  active,
	}
}

// NewGridFromRows builds a fully active grid from one string per row.
// A '.' marks an inactive cell.
func NewGridFromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(line), g.Cols)
		}
		for c := 0; c < len(line); c++ {
			if line[c] == '.' {
				g.Active[r][c] = false
				g.Letters[r][c] = 'A'
				continue
			}
			g.Letters[r][c] = toUpper(rune(line[c]))
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the grid dimensions, letters and mask shape
func (g *Grid) Validate() error {
	if g.Rows < 1 || g.Rows > MaxGridDimension || g.Cols < 1 || g.Cols > MaxGridDimension {
		return fmt.Errorf("%w: dimensions %dx%d outside 1-%d", ErrInvalidGrid, g.Rows, g.Cols, MaxGridDimension)
	}
	if len(g.Letters) != g.Rows || len(g.Active) != g.Rows {
		return fmt.Errorf("%w: expected %d rows", ErrInvalidGrid, g.Rows)
	}
	for r := 0; r < g.Rows; r++ {
		if len(g.Letters[r]) != g.Cols || len(g.Active[r]) != g.Cols {
			return fmt.Errorf("%w: row %d must have %d cells", ErrInvalidGrid, r, g.Cols)
		}
		for c, letter := range g.Letters[r] {
			if letter < 'A' || letter > 'Z' {
				return fmt.Errorf("%w: cell (%d,%d) holds %q", ErrInvalidGrid, r, c, letter)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	c := *g
	c.Letters = make([][]rune, len(g.Letters))
	for i, row := range g.Letters {
		c.Letters[i] = slices.Clone(row)
	}
	c.Active = make([][]bool, len(g.Active))
	for i, row := range g.Active {
		c.Active[i] = slices.Clone(row)
	}
	return &c
}

// IsValidPosition returns true if the position is within bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows && pos.Col >= 0 && pos.Col < g.Cols
}

// IsActive returns true if the position is in bounds and active
func (g *Grid) IsActive(pos Position) bool {
	return g.IsValidPosition(pos) && g.Active[pos.Row][pos.Col]
}




// ActiveCount returns the number of active cells
func (g *Grid) ActiveCount() int {
	count := 0
	for _, row := range g.Active {
		for _, a := range row {
			if a {
				count++
			}
		}
	}
	return count
}

// Row returns the letters of one row as a string, inactive cells shown as '.'
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.Rows {
		return ""
	}
	var sb strings.Builder
	for col := 0; col < g.Cols; col++ {
		if g.Active[row][col] {
			sb.WriteRune(g.Letters[row][col])
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// String renders the grid one row per line
func (g *Grid) String() string {
	lines := make([]string, g.Rows)
	for r := range lines {
		lines[r] = g.Row(r)
	}
	return strings.Join(lines, "\n")
}

// PathFrom turns a player's selection into a Path, checking that every tile is
// active, used once and adjacent to the previous one
func (g *Grid) PathFrom(positions []Position) (*Path, error) {
	path := NewPath(len(positions))
	for i, pos := range positions {
		if !g.IsValidPosition(pos) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidPosition, pos.Row, pos.Col)
		}
		if !g.Active[pos.Row][pos.Col] {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrTileInactive, pos.Row, pos.Col)
		}
		if path.Contains(pos) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrTileReused, pos.Row, pos.Col)
		}
		if i > 0 && !positions[i-1].IsAdjacent(pos) {
			return nil, fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrTilesNotAdjacent,
				positions[i-1].Row, positions[i-1].Col, pos.Row, pos.Col)
		}
		path.Push(Tile{Row: pos.Row, Col: pos.Col, Letter: g.Letters[pos.Row][pos.Col]})
	}
	return path, nil
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
