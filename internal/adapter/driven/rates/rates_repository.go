package rates

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/repository"
	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
)

const defaultEndpoint = "https://open.er-api.com/v6/latest/USD"

// ratesResponse é o corpo retornado pelo serviço de câmbio: a taxa alvo fica
// aninhada em "rates", indexada pelo código da moeda.
type ratesResponse struct {
	Result string             `json:"result"`
	Base   string             `json:"base_code"`
	Rates  map[string]float64 `json:"rates"`
}

// RatesRepositoryImpl implementa o RatesRepository contra um serviço público
// de taxas de câmbio (base USD).
type RatesRepositoryImpl struct {
	client   *resty.Client
	endpoint string
}

// NewRatesRepository cria uma nova implementação do RatesRepository.
func NewRatesRepository() repository.RatesRepository {
	return NewRatesRepositoryWithEndpoint(defaultEndpoint)
}

// NewRatesRepositoryWithEndpoint permite apontar para outro endpoint,
// usado pelos testes.
func NewRatesRepositoryWithEndpoint(endpoint string) repository.RatesRepository {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &RatesRepositoryImpl{client: client, endpoint: endpoint}
}

// GetUSDRate busca a taxa USD→moeda alvo, arredondada para 2 casas.
// Qualquer falha (rede, corpo malformado, moeda ausente, taxa não positiva)
// envolve ErrExchangeRateUnavailable e é fatal para a execução.
func (r *RatesRepositoryImpl) GetUSDRate(ctx context.Context, targetCurrency string) (entity.ExchangeRate, error) {
	code := strings.ToUpper(strings.TrimSpace(targetCurrency))
	if code == "" {
		return entity.ExchangeRate{}, fmt.Errorf("%w: empty target currency", types.ErrExchangeRateUnavailable)
	}

	var body ratesResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(r.endpoint)
	if err != nil {
		return entity.ExchangeRate{}, fmt.Errorf("%w: %v", types.ErrExchangeRateUnavailable, err)
	}
	if resp.IsError() {
		return entity.ExchangeRate{}, fmt.Errorf("%w: rate service returned %s", types.ErrExchangeRateUnavailable, resp.Status())
	}

	rate, ok := body.Rates[code]
	if !ok {
		return entity.ExchangeRate{}, fmt.Errorf("%w: currency %s not present in response", types.ErrExchangeRateUnavailable, code)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return entity.ExchangeRate{}, fmt.Errorf("%w: invalid rate %v for %s", types.ErrExchangeRateUnavailable, rate, code)
	}

	return entity.ExchangeRate{
		TargetCurrency: code,
		USDToTarget:    math.Round(rate*100) / 100,
	}, nil
}
