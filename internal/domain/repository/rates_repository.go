package repository

import (
	"context"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
)

// RatesRepository busca a taxa de conversão USD→moeda alvo. Uma falha aqui é
// fatal para a execução: valores convertidos aparecem em todo o relatório e
// não podem ser silenciosamente zerados.
type RatesRepository interface {
	GetUSDRate(ctx context.Context, targetCurrency string) (entity.ExchangeRate, error)
}
