package analyst

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/domain/models"
)

func TestFetchRecommendation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recommendations/PETR4", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ticker":"PETR4","upside":"12,5%","risk_score":"30"}`))
	}))
	defer srv.Close()

	c := New("analyst", srv.URL+"/api/recommendations/%s", time.Second)
	fields, err := c.Fetch(context.Background(), "petr4")
	require.NoError(t, err)

	assert.Equal(t, "12,5%", fields[models.FieldUpside])
	assert.Equal(t, "30", fields[models.FieldRiskScore])
}

func TestFetchOmitsEmptyValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ticker":"XPTO4","upside":"","risk_score":""}`))
	}))
	defer srv.Close()

	c := New("analyst", srv.URL+"/api/recommendations/%s", time.Second)
	fields, err := c.Fetch(context.Background(), "XPTO4")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New("analyst", srv.URL+"/api/recommendations/%s", time.Second)
	_, err := c.Fetch(context.Background(), "PETR4")
	require.Error(t, err)
}
