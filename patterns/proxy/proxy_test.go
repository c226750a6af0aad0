package proxy

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns-example/config"
	apperrors "patterns-example/pkg/errors"
)

func remoteConfig() config.RemoteConfig {
	return config.RemoteConfig{
		RateLimit: config.RateLimitConfig{Enabled: true, Rate: 100, Burst: 10},
	}
}

func TestSecondRequestBypassesRemote(t *testing.T) {
	var buf bytes.Buffer
	remote := NewRemoteService(remoteConfig(), &buf)
	p := NewCachingProxy(remote)
	ctx := context.Background()

	first, err := p.Request(ctx, "api/data")
	require.NoError(t, err)
	assert.Equal(t, 1, remote.Fetches())
	assert.Equal(t, 1, p.Misses())

	second, err := p.Request(ctx, "api/data")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, remote.Fetches(), "second request must not reach the remote")
	assert.Equal(t, 1, p.Hits())
}

func TestCacheStoresPlaceholderNotPayload(t *testing.T) {
	var buf bytes.Buffer
	remote := NewRemoteService(remoteConfig(), &buf)
	p := NewCachingProxy(remote)
	ctx := context.Background()

	live, err := remote.Request(ctx, "api/other")
	require.NoError(t, err)

	cached, err := p.Request(ctx, "api/other")
	require.NoError(t, err)
	assert.NotEqual(t, live, cached)
	assert.Contains(t, cached, "api/other")
}

func TestDistinctKeysFetchSeparately(t *testing.T) {
	var buf bytes.Buffer
	remote := NewRemoteService(remoteConfig(), &buf)
	p := NewCachingProxy(remote)
	ctx := context.Background()

	_, err := p.Request(ctx, "a")
	require.NoError(t, err)
	_, err = p.Request(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, remote.Fetches())
}

func TestThrottledFetchIsNotCached(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.RemoteConfig{
		RateLimit: config.RateLimitConfig{Enabled: true, Rate: 0, Burst: 0},
	}
	remote := NewRemoteService(cfg, &buf)
	p := NewCachingProxy(remote)

	_, err := p.Request(context.Background(), "api/data")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrRemoteThrottled))
	assert.Equal(t, 0, remote.Fetches())
	assert.Equal(t, 1, p.Misses())
	assert.Equal(t, 0, p.Hits())
}

func TestDemoRun(t *testing.T) {
	var buf bytes.Buffer
	d := Demo{Remote: remoteConfig()}
	require.NoError(t, d.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "remote: fetching api/data")
	assert.Contains(t, out, "remote fetches: 1, cache hits: 1")
}
