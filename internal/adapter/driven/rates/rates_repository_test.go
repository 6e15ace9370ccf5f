package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
)

func newRateServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetUSDRate_ParsesAndRoundsRate(t *testing.T) {
	server := newRateServer(t, http.StatusOK,
		`{"result":"success","base_code":"USD","rates":{"INR":84.5039,"EUR":0.9312}}`)

	repo := NewRatesRepositoryWithEndpoint(server.URL)
	rate, err := repo.GetUSDRate(context.Background(), "inr")

	require.NoError(t, err)
	assert.Equal(t, "INR", rate.TargetCurrency)
	assert.Equal(t, 84.50, rate.USDToTarget)
}

func TestGetUSDRate_MissingCurrencyIsFatal(t *testing.T) {
	server := newRateServer(t, http.StatusOK,
		`{"result":"success","base_code":"USD","rates":{"EUR":0.93}}`)

	repo := NewRatesRepositoryWithEndpoint(server.URL)
	_, err := repo.GetUSDRate(context.Background(), "INR")

	assert.ErrorIs(t, err, types.ErrExchangeRateUnavailable)
}

func TestGetUSDRate_ServerErrorIsFatal(t *testing.T) {
	server := newRateServer(t, http.StatusInternalServerError, `{}`)

	repo := NewRatesRepositoryWithEndpoint(server.URL)
	_, err := repo.GetUSDRate(context.Background(), "INR")

	assert.ErrorIs(t, err, types.ErrExchangeRateUnavailable)
}

func TestGetUSDRate_NonPositiveRateIsFatal(t *testing.T) {
	server := newRateServer(t, http.StatusOK,
		`{"result":"success","base_code":"USD","rates":{"INR":0}}`)

	repo := NewRatesRepositoryWithEndpoint(server.URL)
	_, err := repo.GetUSDRate(context.Background(), "INR")

	assert.ErrorIs(t, err, types.ErrExchangeRateUnavailable)
}

func TestGetUSDRate_UnreachableEndpointIsFatal(t *testing.T) {
	repo := NewRatesRepositoryWithEndpoint("http://127.0.0.1:1/latest/USD")
	_, err := repo.GetUSDRate(context.Background(), "INR")

	assert.ErrorIs(t, err, types.ErrExchangeRateUnavailable)
}

func TestGetUSDRate_EmptyCurrencyIsFatal(t *testing.T) {
	repo := NewRatesRepositoryWithEndpoint("http://unused.invalid")
	_, err := repo.GetUSDRate(context.Background(), "  ")

	assert.ErrorIs(t, err, types.ErrExchangeRateUnavailable)
}
