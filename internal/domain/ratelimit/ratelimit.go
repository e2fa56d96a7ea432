// Package ratelimit implements a sliding-window request limiter keyed by
// client identifier.
package ratelimit

import (
	"sync"
	"time"
)

// Default limiter configuration constants.
const (
	defaultLimit      = 100
	defaultWindow     = 60 * time.Second
	defaultMaxClients = 10_000
)

// Limiter tracks recent request timestamps per client and rejects a
// request once the count inside the window reaches the limit. The client
// map is bounded: when it grows past maxClients, idle identifiers are
// evicted so the process does not leak state across its lifetime.
type Limiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	maxClients int
	now        func() time.Time
	clients    map[string][]time.Time
}

// New creates a Limiter with the given request limit and window.
func New(limit int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		limit:      defaultLimit,
		window:     defaultWindow,
		maxClients: defaultMaxClients,
		now:        time.Now,
		clients:    make(map[string][]time.Time),
	}
	if limit > 0 {
		l.limit = limit
	}
	if window > 0 {
		l.window = window
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records a request for clientID and reports whether it may
// proceed. When rejected, retryAfter carries the window length as the
// hint returned to the caller.
func (l *Limiter) Allow(clientID string) (allowed bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	// Purge entries older than the window before the count check.
	recent := l.clients[clientID][:0]
	for _, ts := range l.clients[clientID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.clients[clientID] = recent
		return false, l.window
	}

	l.clients[clientID] = append(recent, now)
	if len(l.clients) > l.maxClients {
		l.evict(cutoff)
	}
	return true, 0
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Clients returns the number of client identifiers currently tracked.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// evict drops identifiers whose newest timestamp has aged out of the
// window. If every tracked client is still active, the one idle longest
// is dropped so the map stays bounded. Caller must hold the lock.
func (l *Limiter) evict(cutoff time.Time) {
	var oldestID string
	var oldestTS time.Time
	for id, stamps := range l.clients {
		newest := stamps[len(stamps)-1]
		if !newest.After(cutoff) {
			delete(l.clients, id)
			continue
		}
		if oldestID == "" || newest.Before(oldestTS) {
			oldestID = id
			oldestTS = newest
		}
	}
	if len(l.clients) > l.maxClients && oldestID != "" {
		delete(l.clients, oldestID)
	}
}
