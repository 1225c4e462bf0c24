package seed

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/model"
)

type SeedSuite struct {
	suite.Suite
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

// Parse tests

func (s *SeedSuite) TestParseShorthand() {
	seed, err := Parse("[12345]")
	s.Require().NoError(err)

	s.Equal(uint32(12345), seed.Value)
	s.Equal(DefaultRows, seed.Rows)
	s.Equal(DefaultCols, seed.Cols)
	s.Equal(DefaultTimeSeconds, seed.TimeSeconds)
	s.True(seed.IsDefaultShape())
}

func (s *SeedSuite) TestParseFullForm() {
	seed, err := Parse("R2C3>101011[42]t90")
	s.Require().NoError(err)

	s.Equal(uint32(42), seed.Value)
	s.Equal(2, seed.Rows)
	s.Equal(3, seed.Cols)
	s.Equal(90, seed.TimeSeconds)
	s.Equal([][]bool{{true, false, true}, {false, true, true}}, seed.Active)
}

func (s *SeedSuite) TestParseMultiDigitDimensions() {
	mask := make([]byte, 12*15)
	for i := range mask {
		mask[i] = '1'
	}
	seed, err := Parse("R12C15>" + string(mask) + "[7]t120")
	s.Require().NoError(err)
	s.Equal(12, seed.Rows)
	s.Equal(15, seed.Cols)
}

func (s *SeedSuite) TestParseMaxValue() {
	seed, err := Parse("[4294967295]")
	s.Require().NoError(err)
	s.Equal(uint32(4294967295), seed.Value)
}

func (s *SeedSuite) TestParseRejectsMalformed() {
	cases := map[string]string{
		"empty":                "",
		"rows out of range":    "R99C1>0[5]t10",
		"zero rows":            "R0C1>[5]t10",
		"cols out of range":    "R1C16>0000000000000000[5]t10",
		"truncated after R":    "R",
		"truncated after rows": "R4",
		"truncated mask":       "R2C2>101",
		"truncated seed":       "R1C1>1[12",
		"truncated time":       "R1C1>1[12]t",
		"missing C":            "R4X4>1111111111111111[1]t75",
		"missing >":            "R1C11[1]t75",
		"bad mask digit":       "R1C2>12[1]t75",
		"non-digit seed":       "R1C1>1[1a]t75",
		"non-digit time":       "R1C1>1[1]tx",
		"zero time":            "R1C1>1[1]t0",
		"time too long":        "R1C1>1[1]t12345",
		"seed overflow":        "[4294967296]",
		"seed too long":        "[123456789012]",
		"empty short seed":     "[]",
		"unclosed short seed":  "[123",
		"trailing junk":        "[123]x",
		"trailing after time":  "R1C1>1[1]t75!",
		"unknown prefix":       "X[1]",
		"lowercase prefix":     "r1c1>1[1]t75",
	}

	for name, text := range cases {
		s.Run(name, func() {
			s.ErrorIs(Validate(text), model.ErrInvalidSeedFormat)
			_, err := Parse(text)
			s.ErrorIs(err, model.ErrInvalidSeedFormat)
		})
	}
}

// String tests

func (s *SeedSuite) TestStringFullForm() {
	seed := Seed{
		Value:       0,
		Rows:        1,
		Cols:        2,
		Active:      [][]bool{{true, false}},
		TimeSeconds: 30,
	}
	s.Equal("R1C2>10[0]t30", seed.String())
}

func (s *SeedSuite) TestShortUsesShorthandForDefaultShape() {
	s.Equal("[99]", Default(99).Short())
	s.Equal("R4C4>1111111111111111[99]t75", Default(99).String())

	seed := Default(99)
	seed.Active[0][0] = false
	s.Equal("R4C4>0111111111111111[99]t75", seed.Short())
}

func (s *SeedSuite) TestRoundTrip() {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		rows := rng.IntN(model.MaxGridDimension) + 1
		cols := rng.IntN(model.MaxGridDimension) + 1
		seed := Seed{
			Value:       rng.Uint32(),
			Rows:        rows,
			Cols:        cols,
			Active:      make([][]bool, rows),
			TimeSeconds: rng.IntN(9999) + 1,
		}
		for r := range seed.Active {
			seed.Active[r] = make([]bool, cols)
			for c := range seed.Active[r] {
				seed.Active[r][c] = rng.IntN(2) == 1
			}
		}
		s.Require().NoError(seed.Validate())

		parsed, err := Parse(seed.String())
		s.Require().NoError(err, seed.String())
		s.Equal(seed, parsed)

		parsed, err = Parse(seed.Short())
		s.Require().NoError(err, seed.Short())
		s.Equal(seed, parsed)
	}
}

// Validate / New tests

func (s *SeedSuite) TestNewValidates() {
	seed, err := New(5, 3, 5, 60)
	s.Require().NoError(err)
	s.Equal(15, seed.Grid().ActiveCount())

	_, err = New(5, 16, 5, 60)
	s.ErrorIs(err, model.ErrInvalidSeedFormat)

	_, err = New(5, 3, 5, 0)
	s.ErrorIs(err, model.ErrInvalidSeedFormat)

	_, err = New(5, 3, 5, 10000)
	s.ErrorIs(err, model.ErrInvalidSeedFormat)
}

func (s *SeedSuite) TestValidateMaskShape() {
	seed := Default(1)
	seed.Active = seed.Active[:3]
	s.ErrorIs(seed.Validate(), model.ErrInvalidSeedFormat)

	seed = Default(1)
	seed.Active[2] = seed.Active[2][:1]
	s.ErrorIs(seed.Validate(), model.ErrInvalidSeedFormat)
}

func (s *SeedSuite) TestGridCopiesMask() {
	seed, err := Parse("R2C2>1001[3]t10")
	s.Require().NoError(err)

	grid := seed.Grid()
	s.Equal(2, grid.Rows)
	s.Equal(2, grid.Cols)
	s.True(grid.IsActive(model.Position{Row: 0, Col: 0}))
	s.False(grid.IsActive(model.Position{Row: 0, Col: 1}))
	s.False(grid.IsActive(model.Position{Row: 1, Col: 0}))
	s.True(grid.IsActive(model.Position{Row: 1, Col: 1}))

	grid.Active[0][0] = false
	s.True(seed.Active[0][0])
}
