// Package trie stores a word list in a 26-ary prefix tree over the letters A-Z.
//
// A Dictionary is built once by repeated Insert calls and is read-only
// afterwards; any number of goroutines may query it concurrently as long as
// no Insert is in progress.
package trie

import (
	"fmt"
	"iter"

	"github.com/mcoot/wordhunt/internal/model"
)

// AlphabetSize is the number of letters a node can branch on
const AlphabetSize = 26

// Node is one letter of the prefix tree
type Node struct {
	letter    rune
	endOfWord bool
	children  *[AlphabetSize]*Node // nil until the first child is added
}

// Letter returns the letter this node represents. The root has no letter.
func (n *Node) Letter() rune {
	return n.letter
}

// IsEndOfWord reports whether the path from the root to n spells a word
func (n *Node) IsEndOfWord() bool {
	return n.endOfWord
}

// HasChildren reports whether any word continues past n
func (n *Node) HasChildren() bool {
	return n.children != nil
}

// Child returns the child for letter r, or nil if there is none.
// Only uppercase A-Z can match.
func (n *Node) Child(r rune) *Node {
	if n.children == nil || r < 'A' || r > 'Z' {
		return nil
	}
	return n.children[r-'A']
}

// Dictionary owns the root of the tree
type Dictionary struct {
	root      *Node
	nodeCount int
	wordCount int
}

// New creates an empty Dictionary
func New() *Dictionary {
	return &Dictionary{root: &Node{}}
}

// FromWords builds a Dictionary from a list of words, failing on the first invalid one
func FromWords(words ...string) (*Dictionary, error) {
	d := New()
	for _, w := range words {
		if err := d.Insert(w); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Root returns the root node for traversal
func (d *Dictionary) Root() *Node {
	return d.root
}

// NodeCount returns the number of nodes below the root
func (d *Dictionary) NodeCount() int {
	return d.nodeCount
}

// WordCount returns the number of distinct words stored
func (d *Dictionary) WordCount() int {
	return d.wordCount
}

// Insert adds a word. Lowercase letters are uppercased; any other character
// outside A-Z rejects the whole word and leaves the tree untouched.
// Inserting a word that is already present changes nothing.
func (d *Dictionary) Insert(word string) error {
	normalized, err := Normalize(word)
	if err != nil {
		return err
	}

	current := d.root
	for i := 0; i < len(normalized); i++ {
		idx := normalized[i] - 'A'
		if current.children == nil {
			current.children = new([AlphabetSize]*Node)
		}
		next := current.children[idx]
		if next == nil {
			next = &Node{letter: rune(normalized[i])}
			current.children[idx] = next
			d.nodeCount++
		}
		current = next
	}
	if !current.endOfWord {
		current.endOfWord = true
		d.wordCount++
	}
	return nil
}

// IsWord reports whether candidate is a stored word. It never fails: empty
// input, characters outside uppercase A-Z and dead traversals all return false.
func (d *Dictionary) IsWord(candidate string) bool {
	if len(candidate) == 0 {
		return false
	}
	node := d.find(candidate)
	return node != nil && node.endOfWord
}

// IsPrefix reports whether some stored word starts with candidate
func (d *Dictionary) IsPrefix(candidate string) bool {
	return d.find(candidate) != nil
}

func (d *Dictionary) find(candidate string) *Node {
	current := d.root
	for i := 0; i < len(candidate); i++ {
		current = current.Child(rune(candidate[i]))
		if current == nil {
			return nil
		}
	}
	return current
}

// All yields every stored word in alphabetical order
func (d *Dictionary) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 0, 32)
		walk(d.root, buf, yield)
	}
}

func walk(n *Node, prefix []byte, yield func(string) bool) bool {
	if n.endOfWord && !yield(string(prefix)) {
		return false
	}
	if n.children == nil {
		return true
	}
	for _, child := range n.children {
		if child == nil {
			continue
		}
		if !walk(child, append(prefix, byte(child.letter)), yield) {
			return false
		}
	}
	return true
}

// Normalize uppercases word and checks it only holds letters
func Normalize(word string) (string, error) {
	if len(word) == 0 {
		return "", model.ErrEmptyWord
	}
	out := []byte(word)
	for i, c := range out {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		default:
			return "", fmt.Errorf("%w: %q in %q", model.ErrInvalidCharacter, c, word)
		}
	}
	return string(out), nil
}
