package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/solver"
	"github.com/mcoot/wordhunt/internal/storage"
	"github.com/mcoot/wordhunt/internal/trie"
)

// DefaultName is the name given to the first dictionary loaded without one
const DefaultName = "default"

// Service keeps a registry of named trie dictionaries, one of which is the default
type Service struct {
	storage       storage.Storage
	logger        *slog.Logger
	minWordLength int

	mu          sync.RWMutex
	dicts       map[string]*trie.Dictionary
	defaultName string
}

// New creates a new dictionary Service. Words shorter than minWordLength are
// never valid.
func New(storage storage.Storage, logger *slog.Logger, minWordLength int) *Service {
	if minWordLength < 1 {
		minWordLength = 1
	}
	return &Service{
		storage:       storage,
		logger:        logger,
		minWordLength: minWordLength,
		dicts:         make(map[string]*trie.Dictionary),
	}
}

// LoadFromFile loads a whitespace-separated word list from disk under name
// and saves the accepted words to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, name, path string) error {
	dict, stats, err := trie.LoadFile(path)
	if err != nil {
		return err
	}

	if stats.Rejected > 0 {
		s.logger.Warn("dictionary entries rejected",
			slog.String("dictionary", name),
			slog.Int("rejected", stats.Rejected),
		)
	}

	if err := s.storage.SaveDictionaryWords(ctx, name, slices.Collect(dict.All())); err != nil {
		return err
	}

	s.add(name, dict)
	s.logger.Info("dictionary loaded",
		slog.String("dictionary", name),
		slog.String("path", path),
		slog.Int("words", dict.WordCount()),
		slog.Int("nodes", dict.NodeCount()),
	)
	return nil
}

// LoadFromStorage loads a previously saved dictionary by name
func (s *Service) LoadFromStorage(ctx context.Context, name string) error {
	words, err := s.storage.GetDictionaryWords(ctx, name)
	if err != nil {
		return err
	}
	return s.LoadWords(name, words)
}

// LoadAllFromStorage loads every dictionary that storage knows about and
// returns how many were loaded
func (s *Service) LoadAllFromStorage(ctx context.Context) (int, error) {
	names, err := s.storage.ListDictionaries(ctx)
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		if err := s.LoadFromStorage(ctx, name); err != nil {
			return 0, fmt.Errorf("dictionary %q: %w", name, err)
		}
	}
	return len(names), nil
}

// LoadWords builds a dictionary directly from a slice of words. Words holding
// characters outside A-Z are skipped.
func (s *Service) LoadWords(name string, words []string) error {
	dict := trie.New()
	rejected := 0
	for _, w := range words {
		if err := dict.Insert(w); err != nil {
			rejected++
		}
	}
	if rejected > 0 {
		s.logger.Warn("dictionary entries rejected",
			slog.String("dictionary", name),
			slog.Int("rejected", rejected),
		)
	}
	s.add(name, dict)
	return nil
}

func (s *Service) add(name string, dict *trie.Dictionary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dicts[name] = dict
	if s.defaultName == "" {
		s.defaultName = name
	}
}

// Dictionary returns the named dictionary, or the default one when name is empty
func (s *Service) Dictionary(name string) (*trie.Dictionary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(name)
}

func (s *Service) lookup(name string) (*trie.Dictionary, error) {
	if len(s.dicts) == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}
	if name == "" {
		name = s.defaultName
	}
	dict, ok := s.dicts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrDictionaryNotFound, name)
	}
	return dict, nil
}

// Solver returns a solver over the named dictionary using the service's
// minimum word length
func (s *Service) Solver(name string) (*solver.Solver, error) {
	dict, err := s.Dictionary(name)
	if err != nil {
		return nil, err
	}
	return solver.New(dict, s.minWordLength), nil
}

// SetDefault makes an already loaded dictionary the default
func (s *Service) SetDefault(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dicts[name]; !ok {
		return fmt.Errorf("%w: %q", model.ErrDictionaryNotFound, name)
	}
	s.defaultName = name
	return nil
}

// DefaultName returns the name of the default dictionary, or "" if none is loaded
func (s *Service) DefaultName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultName
}

// Names returns the loaded dictionary names in alphabetical order
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.dicts))
	for name := range s.dicts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsValidWord checks a word against the named dictionary, ignoring case.
// Words shorter than the minimum length are never valid.
func (s *Service) IsValidWord(name, word string) bool {
	if len(word) < s.minWordLength {
		return false
	}
	dict, err := s.Dictionary(name)
	if err != nil {
		return false
	}
	return dict.IsWord(strings.ToUpper(word))
}

// IsLoaded returns whether any dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dicts) > 0
}

// WordCount returns the number of words in the named dictionary, 0 if unknown
func (s *Service) WordCount(name string) int {
	dict, err := s.Dictionary(name)
	if err != nil {
		return 0
	}
	return dict.WordCount()
}

// MinWordLength returns the shortest word that counts
func (s *Service) MinWordLength() int {
	return s.minWordLength
}

// Interface check
type ServiceInterface interface {
	LoadFromFile(ctx context.Context, name, path string) error
	LoadFromStorage(ctx context.Context, name string) error
	LoadAllFromStorage(ctx context.Context) (int, error)
	LoadWords(name string, words []string) error
	Dictionary(name string) (*trie.Dictionary, error)
	Solver(name string) (*solver.Solver, error)
	SetDefault(name string) error
	DefaultName() string
	Names() []string
	IsValidWord(name, word string) bool
	IsLoaded() bool
	WordCount(name string) int
	MinWordLength() int
}

var _ ServiceInterface = (*Service)(nil)
