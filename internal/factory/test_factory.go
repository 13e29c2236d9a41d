package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/courtqueue/internal/dependencies/mocks"
	"github.com/mcoot/courtqueue/internal/services/auth"
	"github.com/mcoot/courtqueue/internal/storage/memory"
	"github.com/mcoot/courtqueue/internal/testutil"
)

// TestAdminPassword is the admin password of every TestApp
const TestAdminPassword = "test-admin"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.SequentialIDs
}

// NewTestApp creates an App on memory storage with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewSequentialIDs("id")

	authCfg := auth.Config{Password: TestAdminPassword, BcryptCost: bcrypt.MinCost}
	app, err := newWithDependencies(store, mockClock, mockRandom, mockIDs, authCfg, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}
