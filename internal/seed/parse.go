package seed

import (
	"fmt"
	"strconv"

	"github.com/mcoot/wordhunt/internal/model"
)

const (
	maxDimensionDigits = 2
	maxValueDigits     = 10
)

// fields are the raw pieces of a seed string, extracted by a bounds-checked scan
type fields struct {
	short bool
	rows  int
	cols  int
	mask  string
	value uint32
	time  int
}

// Validate checks that text is a well-formed seed without building one
func Validate(text string) error {
	_, err := scan(text)
	return err
}

// Parse decodes text. The whole string is validated first; nothing is
// partially accepted.
func Parse(text string) (Seed, error) {
	f, err := scan(text)
	if err != nil {
		return Seed{}, err
	}
	if f.short {
		return Default(f.value), nil
	}

	s := Seed{
		Value:       f.value,
		Rows:        f.rows,
		Cols:        f.cols,
		Active:      make([][]bool, f.rows),
		TimeSeconds: f.time,
	}
	for r := 0; r < f.rows; r++ {
		s.Active[r] = make([]bool, f.cols)
		for c := 0; c < f.cols; c++ {
			s.Active[r][c] = f.mask[r*f.cols+c] == '1'
		}
	}
	return s, nil
}

func scan(text string) (fields, error) {
	sc := &scanner{text: text}
	var f fields

	switch sc.peek() {
	case '[':
		f.short = true
		value, err := sc.value()
		if err != nil {
			return fields{}, err
		}
		f.value = value
	case 'R':
		sc.pos++
		rows, err := sc.dimension("rows")
		if err != nil {
			return fields{}, err
		}
		if err := sc.expect('C'); err != nil {
			return fields{}, err
		}
		cols, err := sc.dimension("cols")
		if err != nil {
			return fields{}, err
		}
		if err := sc.expect('>'); err != nil {
			return fields{}, err
		}
		mask, err := sc.mask(rows * cols)
		if err != nil {
			return fields{}, err
		}
		value, err := sc.value()
		if err != nil {
			return fields{}, err
		}
		if err := sc.expect('t'); err != nil {
			return fields{}, err
		}
		digits := sc.digits()
		if len(digits) == 0 || len(digits) > maxTimeDigits {
			return fields{}, sc.fail("time must have 1-%d digits", maxTimeDigits)
		}
		seconds, _ := strconv.Atoi(digits)
		if seconds == 0 {
			return fields{}, sc.fail("time must be positive")
		}
		f.rows, f.cols, f.mask, f.value, f.time = rows, cols, mask, value, seconds
	default:
		return fields{}, sc.fail("must start with 'R' or '['")
	}

	if !sc.done() {
		return fields{}, sc.fail("unexpected trailing characters")
	}
	return f, nil
}

type scanner struct {
	text string
	pos  int
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.text)
}

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.text[sc.pos]
}

func (sc *scanner) expect(c byte) error {
	if sc.peek() != c {
		return sc.fail("expected %q", c)
	}
	sc.pos++
	return nil
}

func (sc *scanner) digits() string {
	start := sc.pos
	for !sc.done() && sc.text[sc.pos] >= '0' && sc.text[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.text[start:sc.pos]
}

func (sc *scanner) dimension(name string) (int, error) {
	digits := sc.digits()
	if len(digits) == 0 || len(digits) > maxDimensionDigits {
		return 0, sc.fail("%s must have 1-%d digits", name, maxDimensionDigits)
	}
	n, _ := strconv.Atoi(digits)
	if n < 1 || n > model.MaxGridDimension {
		return 0, sc.fail("%s %d outside 1-%d", name, n, model.MaxGridDimension)
	}
	return n, nil
}

func (sc *scanner) mask(n int) (string, error) {
	if len(sc.text)-sc.pos < n {
		return "", sc.fail("mask needs %d cells", n)
	}
	mask := sc.text[sc.pos : sc.pos+n]
	for i := 0; i < len(mask); i++ {
		if mask[i] != '0' && mask[i] != '1' {
			return "", sc.fail("mask cell %d is %q", i, mask[i])
		}
	}
	sc.pos += n
	return mask, nil
}

func (sc *scanner) value() (uint32, error) {
	if err := sc.expect('['); err != nil {
		return 0, err
	}
	digits := sc.digits()
	if len(digits) == 0 || len(digits) > maxValueDigits {
		return 0, sc.fail("seed value must have 1-%d digits", maxValueDigits)
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, sc.fail("seed value %s does not fit 32 bits", digits)
	}
	if err := sc.expect(']'); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func (sc *scanner) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", model.ErrInvalidSeedFormat, fmt.Sprintf(format, args...), sc.pos)
}
