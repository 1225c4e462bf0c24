package factory

import (
	"time"

	"github.com/mcoot/wordhunt/internal/dependencies/mocks"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/solver"
	"github.com/mcoot/wordhunt/internal/storage/memory"
	"github.com/mcoot/wordhunt/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, solver.DefaultMinWordLength, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads the shared sample word list as the default dictionary
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(dictionary.DefaultName, testutil.SampleWords)
}
