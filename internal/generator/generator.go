// Package generator deals letters onto a board deterministically from a seed.
package generator

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
	"lukechampine.com/frand"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/seed"
)

// TileBag is the weighted letter distribution boards are dealt from
const TileBag = "EEEEEEEEEEEEAAAAAAAAAIIIIIIIIIOOOOOOOONNNNNNRRRRRRTTTTTTLLLLSSSSUUUUDDDDGGGBBCCMMPPFFHHVVWWYYKJXQZ"

const (
	rngBufferSize = 1024
	rngRounds     = 12
)

// Letters returns n letters drawn with replacement from the tile bag. The
// same value always produces the same letters.
func Letters(value uint32, n int) []rune {
	rng := newRNG(value)
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(TileBag[rng.Intn(len(TileBag))])
	}
	return out
}

// Generate builds the board described by s. Every cell receives a letter,
// including inactive ones, so toggling the mask never reshuffles the board.
func Generate(s seed.Seed) (*model.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	grid := s.Grid()
	letters := Letters(s.Value, s.Rows*s.Cols)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			grid.Letters[r][c] = letters[r*s.Cols+c]
		}
	}
	return grid, nil
}

// newRNG keys a ChaCha generator with a digest of the seed value
func newRNG(value uint32) *frand.RNG {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], value)
	key := blake2b.Sum256(buf[:])
	return frand.NewCustom(key[:], rngBufferSize, rngRounds)
}
