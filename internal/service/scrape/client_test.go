package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
)

const tickerPage = `<!doctype html>
<html><body>
<div class="company-header"><span class="sector">Petróleo e Gás</span><span class="segment">Exploração</span></div>
<div data-item="cotacao"><strong class="value">R$ 38,52</strong></div>
<div data-item="lpa"><strong class="value">6,71</strong></div>
<div data-item="vpa"><strong class="value">29,45</strong></div>
<div data-item="p_vp"><strong class="value">1,31</strong></div>
<div data-item="dy"><strong class="value">18,3%</strong></div>
<div data-item="payout"><strong class="value">-</strong></div>
</body></html>`

func TestClientFetchExtractsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acoes/petr4", r.URL.Path)
		w.Write([]byte(tickerPage))
	}))
	defer srv.Close()

	pool := NewSessionPool(PoolConfig{})
	defer pool.Close()

	c := NewClient("fundamentals", repository.RolePrimary, srv.URL+"/acoes/%s", DefaultFundamentalsSelectors(), pool)
	fields, err := c.Fetch(context.Background(), "PETR4")
	require.NoError(t, err)

	assert.Equal(t, "R$ 38,52", fields[models.FieldPrice])
	assert.Equal(t, "6,71", fields[models.FieldEPS])
	assert.Equal(t, "29,45", fields[models.FieldBVPS])
	assert.Equal(t, "1,31", fields[models.FieldPriceBook])
	assert.Equal(t, "18,3%", fields[models.FieldDividendYield])
	assert.Equal(t, "Petróleo e Gás", fields[models.FieldSector])
	// dash text is still raw text here; normalization happens downstream
	assert.Equal(t, "-", fields[models.FieldPayout])

	// selectors with no match leave the field absent
	_, ok := fields.Get(models.FieldROE)
	assert.False(t, ok)
}

func TestClientFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	pool := NewSessionPool(PoolConfig{})
	defer pool.Close()

	c := NewClient("fundamentals", repository.RolePrimary, srv.URL+"/acoes/%s", DefaultFundamentalsSelectors(), pool)
	_, err := c.Fetch(context.Background(), "NOPE4")
	require.Error(t, err)
}

func TestClientFetchContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(tickerPage))
	}))
	defer srv.Close()

	pool := NewSessionPool(PoolConfig{})
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient("fundamentals", repository.RolePrimary, srv.URL+"/acoes/%s", DefaultFundamentalsSelectors(), pool)
	_, err := c.Fetch(ctx, "PETR4")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
