package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mcoot/wordhunt/internal/model"
)

// LoadStats counts what happened to the tokens of a word list
type LoadStats struct {
	Inserted int // Tokens accepted, duplicates included
	Rejected int // Tokens holding characters outside A-Z
}

// Load reads whitespace-separated words from r. Words that fail validation are
// skipped and counted; a read failure aborts the load.
func Load(r io.Reader) (*Dictionary, LoadStats, error) {
	d := New()
	var stats LoadStats

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if err := d.Insert(scanner.Text()); err != nil {
			stats.Rejected++
			continue
		}
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %w", model.ErrDictionaryLoad, err)
	}
	return d, stats, nil
}

// LoadFile loads a word list from disk
func LoadFile(path string) (*Dictionary, LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("%w: %w", model.ErrDictionaryLoad, err)
	}
	defer file.Close()

	return Load(file)
}
