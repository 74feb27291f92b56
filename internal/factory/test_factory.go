package factory

import (
	"bytes"
	"time"

	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	"github.com/mcoot/connectfour-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	// OutputBuffer captures everything the game prints
	OutputBuffer *bytes.Buffer
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	out := &bytes.Buffer{}

	app := newWithDependencies(store, mockClock, mockRandom, out, game.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
		OutputBuffer: out,
	}
}
