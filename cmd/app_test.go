package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns-example/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "patterns-test", Version: "0.0.0", Env: "development"},
		Log: config.LogConfig{Level: "error", Format: "console", Output: "stdout"},
		Catalog: config.CatalogConfig{
			Report: false,
		},
		Remote: config.RemoteConfig{
			RateLimit: config.RateLimitConfig{Enabled: true, Rate: 100, Burst: 10},
		},
	}
}

func TestBuildRegistersAllPatterns(t *testing.T) {
	app, err := NewBuilder(testConfig()).Build()
	require.NoError(t, err)

	want := []string{
		"singleton", "factory", "builder", "adapter",
		"decorator", "proxy", "observer", "strategy",
	}
	assert.Equal(t, want, app.Catalog().Names())
}

func TestRunAllDemosSucceeds(t *testing.T) {
	var buf bytes.Buffer
	app, err := NewBuilder(testConfig()).WithOutput(&buf).Build()
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Driving a Tesla")
	assert.Contains(t, out, "RAM=16GB Storage=1TB")
	assert.Contains(t, out, "New System Data")
	assert.Contains(t, out, "coffee + milk: 7")
	assert.Contains(t, out, "remote fetches: 1, cache hits: 1")
	assert.Contains(t, out, "Paid 100 using PayPal")
}

func TestRunHonorsEnabledSubset(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Enabled = []string{"factory", "decorator"}

	var buf bytes.Buffer
	app, err := NewBuilder(cfg).WithOutput(&buf).Build()
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Driving a Tesla")
	assert.Contains(t, out, "coffee + milk: 7")
	assert.NotContains(t, out, "New System Data")
}

func TestRunRejectsUnknownEnabledPattern(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Enabled = []string{"flyweight"}

	app, err := NewBuilder(cfg).Build()
	require.NoError(t, err)
	assert.Error(t, app.Run(context.Background()))
}

func TestRunPrintsReport(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Report = true

	var buf bytes.Buffer
	app, err := NewBuilder(cfg).WithOutput(&buf).Build()
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, buf.String(), "run report:")
	assert.Contains(t, buf.String(), `"pattern": "singleton"`)
}
