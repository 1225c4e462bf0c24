// Package seed encodes and decodes the text form of a game seed.
//
// The full form is
//
//	R<rows>C<cols>><mask>[<value>]t<seconds>
//
// where mask is rows*cols characters of '0' or '1' in row-major order. The
// shorthand [<value>] selects a fully active 4x4 board played for 75 seconds.
package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/wordhunt/internal/model"
)

const (
	DefaultRows        = 4
	DefaultCols        = 4
	DefaultTimeSeconds = 75

	maxTimeDigits = 4
)

// Seed captures everything needed to regenerate a board
type Seed struct {
	Value       uint32   `json:"value"`
	Rows        int      `json:"rows"`
	Cols        int      `json:"cols"`
	Active      [][]bool `json:"active"`
	TimeSeconds int      `json:"time_seconds"`
}

// Default returns the shorthand seed for value: 4x4, all active, 75 seconds
func Default(value uint32) Seed {
	return Seed{
		Value:       value,
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		Active:      fullMask(DefaultRows, DefaultCols),
		TimeSeconds: DefaultTimeSeconds,
	}
}

// New returns a fully active seed of the given shape
func New(value uint32, rows, cols, timeSeconds int) (Seed, error) {
	s := Seed{
		Value:       value,
		Rows:        rows,
		Cols:        cols,
		Active:      fullMask(rows, cols),
		TimeSeconds: timeSeconds,
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Validate checks the structured form of a seed
func (s Seed) Validate() error {
	if s.Rows < 1 || s.Rows > model.MaxGridDimension || s.Cols < 1 || s.Cols > model.MaxGridDimension {
		return fmt.Errorf("%w: dimensions %dx%d outside 1-%d", model.ErrInvalidSeedFormat, s.Rows, s.Cols, model.MaxGridDimension)
	}
	if len(s.Active) != s.Rows {
		return fmt.Errorf("%w: mask has %d rows, want %d", model.ErrInvalidSeedFormat, len(s.Active), s.Rows)
	}
	for r, row := range s.Active {
		if len(row) != s.Cols {
			return fmt.Errorf("%w: mask row %d has %d cells, want %d", model.ErrInvalidSeedFormat, r, len(row), s.Cols)
		}
	}
	if s.TimeSeconds < 1 || len(strconv.Itoa(s.TimeSeconds)) > maxTimeDigits {
		return fmt.Errorf("%w: time %d out of range", model.ErrInvalidSeedFormat, s.TimeSeconds)
	}
	return nil
}

// IsDefaultShape reports whether the seed can be written in shorthand form
func (s Seed) IsDefaultShape() bool {
	if s.Rows != DefaultRows || s.Cols != DefaultCols || s.TimeSeconds != DefaultTimeSeconds {
		return false
	}
	for _, row := range s.Active {
		for _, a := range row {
			if !a {
				return false
			}
		}
	}
	return true
}

// String returns the full text form
func (s Seed) String() string {
	var sb strings.Builder
	sb.WriteByte('R')
	sb.WriteString(strconv.Itoa(s.Rows))
	sb.WriteByte('C')
	sb.WriteString(strconv.Itoa(s.Cols))
	sb.WriteByte('>')
	for _, row := range s.Active {
		for _, a := range row {
			if a {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	sb.WriteByte('[')
	sb.WriteString(strconv.FormatUint(uint64(s.Value), 10))
	sb.WriteString("]t")
	sb.WriteString(strconv.Itoa(s.TimeSeconds))
	return sb.String()
}

// Short returns the shorthand form when possible and the full form otherwise
func (s Seed) Short() string {
	if s.IsDefaultShape() {
		return "[" + strconv.FormatUint(uint64(s.Value), 10) + "]"
	}
	return s.String()
}

// Grid returns an empty grid shaped and masked like the seed
func (s Seed) Grid() *model.Grid {
	g := model.NewGrid(s.Rows, s.Cols)
	for r := range s.Active {
		copy(g.Active[r], s.Active[r])
	}
	return g
}

func fullMask(rows, cols int) [][]bool {
	if rows < 0 || cols < 0 {
		return nil
	}
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
		for c := range mask[r] {
			mask[r][c] = true
		}
	}
	return mask
}
