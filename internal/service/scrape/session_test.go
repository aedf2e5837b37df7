package scrape

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolReusesHealthySession(t *testing.T) {
	p := NewSessionPool(PoolConfig{})
	defer p.Close()

	s1, err := p.Lease(context.Background())
	require.NoError(t, err)
	p.Release(s1)

	s2, err := p.Lease(context.Background())
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	_, created := p.Stats()
	assert.Equal(t, 1, created)
}

func TestPoolDiscardsExpiredSession(t *testing.T) {
	p := NewSessionPool(PoolConfig{MaxAge: 10 * time.Millisecond})
	defer p.Close()

	s1, err := p.Lease(context.Background())
	require.NoError(t, err)
	p.Release(s1)

	time.Sleep(20 * time.Millisecond)

	s2, err := p.Lease(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, s1, s2)
}

func TestPoolDiscardsWornOutSession(t *testing.T) {
	p := NewSessionPool(PoolConfig{MaxUses: 1})
	defer p.Close()

	s1, err := p.Lease(context.Background())
	require.NoError(t, err)
	s1.uses = 1
	p.Release(s1)

	idle, _ := p.Stats()
	assert.Equal(t, 0, idle)
}

func TestPoolConcurrentLeasesAreDistinct(t *testing.T) {
	p := NewSessionPool(PoolConfig{})
	defer p.Close()

	s1, err := p.Lease(context.Background())
	require.NoError(t, err)
	s2, err := p.Lease(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, s1, s2)

	p.Release(s1)
	p.Release(s2)
	idle, created := p.Stats()
	assert.Equal(t, 2, idle)
	assert.Equal(t, 2, created)
}

func TestPoolClose(t *testing.T) {
	p := NewSessionPool(PoolConfig{})
	s, err := p.Lease(context.Background())
	require.NoError(t, err)
	p.Close()

	p.Release(s) // dropped, not panicking
	_, err = p.Lease(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)
}
