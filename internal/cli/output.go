package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordhunt/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.SubmitWordResponse:
		o.printSubmit(v)
	case response.Hint:
		o.printHint(v)
	case response.Solution:
		o.printSolution(v)
	case response.SolveBatchResponse:
		for i, sol := range v.Solutions {
			if i > 0 {
				fmt.Fprintln(o.w)
			}
			o.printSolution(sol)
		}
	case response.WordCheck:
		o.printWordCheck(v)
	case response.DictionaryList:
		o.printDictionaryList(v)
	case response.Seed:
		o.printSeed(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printBoard(b response.Board) {
	fmt.Fprint(o.w, "    ")
	for col := 0; col < b.Cols; col++ {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", b.Cols) + "+"
	fmt.Fprintln(o.w, border)
	for row, letters := range b.Letters {
		fmt.Fprintf(o.w, "%2d |", row)
		for _, letter := range letters {
			fmt.Fprintf(o.w, " %c ", letter)
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printWords(words []response.Word) {
	for _, w := range words {
		fmt.Fprintf(o.w, "  %-16s %5d pts\n", w.Word, w.Points)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Seed: %s\n", g.Seed)
	fmt.Fprintf(o.w, "Dictionary: %s\n", g.Dictionary)
	if g.State == "playing" {
		fmt.Fprintf(o.w, "Time remaining: %.0fs\n", g.TimeRemaining)
	}
	fmt.Fprintln(o.w)
	o.printBoard(g.Board)

	fmt.Fprintf(o.w, "\nFound (%d words, %d points):\n", len(g.Found), g.Score)
	o.printWords(g.Found)

	if g.Result != nil {
		fmt.Fprintf(o.w, "\nPossible (%d words, %d points):\n", len(g.Result.Possible), g.Result.MaxPoints)
		o.printWords(g.Result.Possible)
	}
}

func (o *Output) printSubmit(s response.SubmitWordResponse) {
	fmt.Fprintf(o.w, "Found %s for %d points\n", s.Word.Word, s.Word.Points)
	fmt.Fprintf(o.w, "Words: %d  Score: %d\n", s.FoundCount, s.Score)
}

func (o *Output) printHint(h response.Hint) {
	fmt.Fprintf(o.w, "A %d letter word starts with %s at row %d, col %d\n", h.Length, h.Letter, h.Start.Row, h.Start.Col)
	fmt.Fprintf(o.w, "Words left: %d\n", h.Remaining)
}

func (o *Output) printSolution(s response.Solution) {
	if s.Seed != "" {
		fmt.Fprintf(o.w, "Seed: %s\n", s.Seed)
	}
	o.printBoard(s.Board)
	fmt.Fprintf(o.w, "\n%d words, %d points:\n", s.Count, s.MaxPoints)
	o.printWords(s.Words)
}

func (o *Output) printWordCheck(c response.WordCheck) {
	if c.Valid {
		fmt.Fprintf(o.w, "%s is a word in %s (%d points)\n", c.Word, c.Dictionary, c.Points)
		return
	}
	fmt.Fprintf(o.w, "%s is not a word in %s\n", c.Word, c.Dictionary)
}

func (o *Output) printDictionaryList(l response.DictionaryList) {
	fmt.Fprintf(o.w, "Minimum word length: %d\n", l.MinWordLength)
	for _, d := range l.Dictionaries {
		marker := ""
		if d.Default {
			marker = " [default]"
		}
		fmt.Fprintf(o.w, "  %s: %d words%s\n", d.Name, d.WordCount, marker)
	}
}

func (o *Output) printSeed(s response.Seed) {
	fmt.Fprintf(o.w, "Seed: %s\n", s.Seed)
	fmt.Fprintf(o.w, "Canonical: %s\n", s.Canonical)
	fmt.Fprintf(o.w, "Value: %d\n", s.Value)
	fmt.Fprintf(o.w, "Size: %dx%d\n", s.Rows, s.Cols)
	fmt.Fprintf(o.w, "Time: %ds\n\n", s.TimeSeconds)
	o.printBoard(s.Board)
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if len(h.Dictionaries) > 0 {
		fmt.Fprintf(o.w, "Dictionaries: %s\n", strings.Join(h.Dictionaries, ", "))
	}
}
