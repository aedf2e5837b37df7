package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// ErrPoolClosed is returned by Lease after the pool has been shut down.
var ErrPoolClosed = errors.New("scrape: session pool closed")

// Session is one leased browsing identity: its own cookie jar and HTTP
// client. Concurrent provider tasks of a request must each hold their own
// session; a session is never shared while leased.
type Session struct {
	client    *http.Client
	userAgent string
	createdAt time.Time
	uses      int
}

// FetchDocument loads url and parses it into a goquery document. The
// caller's context bounds the whole round trip.
func (s *Session) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	s.uses++
	return doc, nil
}

// PoolConfig bounds session reuse.
type PoolConfig struct {
	UserAgent string
	// Timeout is the hard cap on a single session round trip; per-provider
	// deadlines are usually tighter and come in through the context.
	Timeout time.Duration
	// MaxAge and MaxUses bound how long a session stays healthy. Sessions
	// past either bound are discarded on release instead of reused.
	MaxAge  time.Duration
	MaxUses int
}

func (c *PoolConfig) withDefaults() PoolConfig {
	out := *c
	if out.UserAgent == "" {
		out.UserAgent = defaultUserAgent
	}
	if out.Timeout <= 0 {
		out.Timeout = 30 * time.Second
	}
	if out.MaxAge <= 0 {
		out.MaxAge = 10 * time.Minute
	}
	if out.MaxUses <= 0 {
		out.MaxUses = 50
	}
	return out
}

// SessionPool is a process-wide pool of browsing sessions with explicit
// lifecycle: sessions are created lazily on lease, health-checked before
// reuse, and torn down on Close. The pool outlives requests; leased
// sessions do not.
type SessionPool struct {
	cfg PoolConfig

	mu      sync.Mutex
	idle    []*Session
	created int
	closed  bool
}

func NewSessionPool(cfg PoolConfig) *SessionPool {
	return &SessionPool{cfg: cfg.withDefaults()}
}

// Lease hands out an idle healthy session or creates a fresh one.
func (p *SessionPool) Lease(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrPoolClosed
	}

	for len(p.idle) > 0 {
		s := p.idle[len(p.idle)-1]
		p.idle = p.idle[:len(p.idle)-1]
		if p.healthy(s) {
			return s, nil
		}
	}
	return p.newSession()
}

// Release returns a session to the pool. Unhealthy sessions are dropped.
func (p *SessionPool) Release(s *Session) {
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || !p.healthy(s) {
		return
	}
	p.idle = append(p.idle, s)
}

// Close tears the pool down; subsequent leases fail with ErrPoolClosed.
func (p *SessionPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	for _, s := range p.idle {
		s.client.CloseIdleConnections()
	}
	p.idle = nil
}

// Stats reports pool occupancy for the health endpoint.
func (p *SessionPool) Stats() (idle, created int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle), p.created
}

func (p *SessionPool) healthy(s *Session) bool {
	return time.Since(s.createdAt) < p.cfg.MaxAge && s.uses < p.cfg.MaxUses
}

func (p *SessionPool) newSession() (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	p.created++
	return &Session{
		client: &http.Client{
			Jar:     jar,
			Timeout: p.cfg.Timeout,
		},
		userAgent: p.cfg.UserAgent,
		createdAt: time.Now(),
	}, nil
}
