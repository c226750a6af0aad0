/*
Package proxy demonstrates the Proxy pattern: a caching stand-in that
intercepts requests to an expensive remote service.

The cache stores a placeholder string derived from the request key, not
the remote's actual payload. That asymmetry is part of the demonstrated
contract; tests pin it.
*/
package proxy

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"patterns-example/config"
	apperrors "patterns-example/pkg/errors"
	"patterns-example/pkg/logger"
)

// Service Contract shared by the remote and its proxy
type Service interface {
	Request(ctx context.Context, key string) (string, error)
}

// RemoteService Simulated expensive data source. Every fetch is logged;
// a token bucket throttles fetch volume.
type RemoteService struct {
	latency time.Duration
	limiter *rate.Limiter
	fetches int
	out     io.Writer
}

// NewRemoteService creates a simulated remote writing fetch traces to out
func NewRemoteService(cfg config.RemoteConfig, out io.Writer) *RemoteService {
	s := &RemoteService{
		latency: cfg.Latency,
		out:     out,
	}
	if cfg.RateLimit.Enabled {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.Rate), cfg.RateLimit.Burst)
	}
	return s
}

// Request performs a simulated fetch
func (s *RemoteService) Request(_ context.Context, key string) (string, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		logger.Warn("remote fetch throttled", zap.String("key", key))
		return "", apperrors.RemoteThrottled(key)
	}

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	s.fetches++
	fmt.Fprintf(s.out, "remote: fetching %s\n", key)
	logger.Debug("remote fetch", zap.String("key", key), zap.Int("total_fetches", s.fetches))
	return fmt.Sprintf("live payload for %s", key), nil
}

// Fetches Number of fetches the remote actually performed
func (s *RemoteService) Fetches() int {
	return s.fetches
}

// CachingProxy caches per-key results so repeated requests bypass the
// remote entirely.
type CachingProxy struct {
	remote Service
	cache  map[string]string
	hits   int
	misses int
}

// NewCachingProxy wraps a service with a per-key cache
func NewCachingProxy(remote Service) *CachingProxy {
	return &CachingProxy{
		remote: remote,
		cache:  make(map[string]string),
	}
}

// Request returns the cached entry for key if present; otherwise it
// invokes the remote, stores a placeholder derived from the key, and
// returns that placeholder.
func (p *CachingProxy) Request(ctx context.Context, key string) (string, error) {
	if v, ok := p.cache[key]; ok {
		p.hits++
		return v, nil
	}

	p.misses++
	if _, err := p.remote.Request(ctx, key); err != nil {
		// Nothing is cached on failure; the next request retries the remote.
		return "", err
	}

	// Derived placeholder, not the remote payload.
	v := fmt.Sprintf("cached response for %s", key)
	p.cache[key] = v
	return v, nil
}

// Hits Cache hit count
func (p *CachingProxy) Hits() int { return p.hits }

// Misses Cache miss count
func (p *CachingProxy) Misses() int { return p.misses }

// Demo Proxy demonstration
type Demo struct {
	Remote config.RemoteConfig
}

func (Demo) Name() string { return "proxy" }

func (Demo) Describe() string {
	return "access interception with per-key caching over a simulated remote"
}

func (d Demo) Run(ctx context.Context, out io.Writer) error {
	remote := NewRemoteService(d.Remote, out)
	p := NewCachingProxy(remote)

	for i := 0; i < 2; i++ {
		v, err := p.Request(ctx, "api/data")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "request %d -> %s\n", i+1, v)
	}

	fmt.Fprintf(out, "remote fetches: %d, cache hits: %d\n", remote.Fetches(), p.Hits())
	return nil
}
