package requests

import (
	"testing"

	"leagueprobe/internal/testutil"
	"leagueprobe/pkg/config"

	"github.com/itbasis/go-clock"
)

const testApiKey = "RGAPI-test"

// Executor wired to a fake Riot server and a mock clock.
type testExecutor struct {
	*Executor
	server   *testutil.FakeRiotServer
	mock     *clock.Mock
	recorder *testutil.RecordingMetrics
	log      *testutil.LineLogger
}

// Run fn while the mock clock moves one unit at a time.
func (te *testExecutor) advancing(fn func()) {
	testutil.RunAdvancing(te.mock, te.timeUnit, fn)
}

// Helper to create an executor pointed at a fake Riot server.
// The proactive limiter is off, waits run on the mock clock.
func setupTestExecutor(t *testing.T, mutate func(cfg *config.Config), opts ...Option) *testExecutor {
	t.Helper()

	server := testutil.NewFakeRiotServer(testApiKey)
	t.Cleanup(server.Close)

	cfg := config.New()
	cfg.ApiKey = testApiKey
	cfg.LimitShortCount = 0
	cfg.LimitLongCount = 0
	if mutate != nil {
		mutate(cfg)
	}

	mock := testutil.NewMockClock()
	recorder := &testutil.RecordingMetrics{}
	log := &testutil.LineLogger{}

	base := []Option{
		WithHTTPClient(server.Client()),
		WithClock(mock),
		WithMetrics(recorder),
		WithLogger(log),
	}

	return &testExecutor{
		Executor: NewExecutor(cfg, append(base, opts...)...),
		server:   server,
		mock:     mock,
		recorder: recorder,
		log:      log,
	}
}
