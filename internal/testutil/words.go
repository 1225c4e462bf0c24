package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleWords is a small word list shared by service and API tests
var SampleWords = []string{
	"CAT", "CATS", "ACT", "SCAT", "TACT", "TAC", "ATS", "AT", "SAT",
	"EAT", "EATS", "TEA", "TEAS", "SEAT", "EAST", "SET", "SEA", "ATE",
}

// WriteWordList writes words one per line to a temporary file and returns its path
func WriteWordList(t testing.TB, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}
