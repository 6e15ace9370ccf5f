// Package pricing implementa o modelo de custo: funções puras que mapeiam
// contagens de recursos para valores em USD usando uma tabela de preços fixa,
// derivando totais mensais/diários/horários e a projeção de burn-down do
// período de teste gratuito. Nenhuma função deste pacote faz I/O.
package pricing

import (
	"math"

	"github.com/diillson/gcp-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/gcp-finops-dashboard-go/internal/shared/types"
)

// Aproximação fixa de calendário usada em todas as derivações; o modelo não é
// calendar-aware.
const (
	daysPerMonth  = 30
	hoursPerDay   = 24
	hoursPerMonth = daysPerMonth * hoursPerDay
)

// PriceTable é a tabela de preços injetável. Os valores padrão representam um
// SKU de VM intermediário, disco padrão e forwarding rule — o modelo não
// diferencia tamanhos de instância.
type PriceTable struct {
	PerNodeMonthUSD float64 `json:"per_node_month_usd" yaml:"per_node_month_usd" toml:"per_node_month_usd"`
	PerGBMonthUSD   float64 `json:"per_gb_month_usd" yaml:"per_gb_month_usd" toml:"per_gb_month_usd"`
	PerRuleMonthUSD float64 `json:"per_rule_month_usd" yaml:"per_rule_month_usd" toml:"per_rule_month_usd"`
	TrialCreditUSD  float64 `json:"trial_credit_usd" yaml:"trial_credit_usd" toml:"trial_credit_usd"`
	TrialDays       int     `json:"trial_days" yaml:"trial_days" toml:"trial_days"`
	DefaultDiskGB   int64   `json:"default_disk_gb" yaml:"default_disk_gb" toml:"default_disk_gb"`
}

// DefaultPriceTable retorna os preços fixos padrão.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		PerNodeMonthUSD: 24.50,
		PerGBMonthUSD:   0.040,
		PerRuleMonthUSD: 18.00,
		TrialCreditUSD:  300.00,
		TrialDays:       90,
		DefaultDiskGB:   10,
	}
}

// TableFromConfig aplica os overrides do arquivo de configuração sobre a
// tabela padrão; campos zerados mantêm o valor padrão.
func TableFromConfig(cfg types.PricingConfig) PriceTable {
	table := DefaultPriceTable()

	if cfg.PerNodeMonthUSD > 0 {
		table.PerNodeMonthUSD = cfg.PerNodeMonthUSD
	}
	if cfg.PerGBMonthUSD > 0 {
		table.PerGBMonthUSD = cfg.PerGBMonthUSD
	}
	if cfg.PerRuleMonthUSD > 0 {
		table.PerRuleMonthUSD = cfg.PerRuleMonthUSD
	}
	if cfg.TrialCreditUSD > 0 {
		table.TrialCreditUSD = cfg.TrialCreditUSD
	}
	if cfg.TrialDays > 0 {
		table.TrialDays = cfg.TrialDays
	}
	if cfg.DefaultDiskGB > 0 {
		table.DefaultDiskGB = cfg.DefaultDiskGB
	}

	return table
}

// Engine avalia a tabela de preços sobre as contagens coletadas.
type Engine struct {
	Prices PriceTable
}

// NewEngine cria um Engine com a tabela informada.
func NewEngine(prices PriceTable) Engine {
	return Engine{Prices: prices}
}

// ComputeMonthly é instâncias × preço por nó/mês, sem arredondamento.
func (e Engine) ComputeMonthly(instances int64) float64 {
	return float64(instances) * e.Prices.PerNodeMonthUSD
}

// DiskMonthly é GB totais × preço por GB/mês. Quando os tamanhos por disco não
// estão disponíveis, recai para contagem × tamanho padrão por disco.
func (e Engine) DiskMonthly(disks entity.DiskSummary) float64 {
	totalGB := disks.TotalSizeGB
	if !disks.SizesKnown {
		totalGB = disks.Count.Value * e.Prices.DefaultDiskGB
	}
	return float64(totalGB) * e.Prices.PerGBMonthUSD
}

// LBMonthly é forwarding rules × preço por regra/mês.
func (e Engine) LBMonthly(rules int64) float64 {
	return float64(rules) * e.Prices.PerRuleMonthUSD
}

// Breakdown deriva todos os campos de custo a partir das contagens.
// Custos de bucket e egress de rede ficam fora do modelo de propósito.
func (e Engine) Breakdown(counts entity.ResourceCounts, disks entity.DiskSummary) entity.CostBreakdown {
	compute := e.ComputeMonthly(counts.ComputeInstances.Value)
	disk := e.DiskMonthly(disks)
	lb := e.LBMonthly(counts.ForwardingRules.Value)
	total := compute + disk + lb

	return entity.CostBreakdown{
		ComputeMonthly: compute,
		DiskMonthly:    disk,
		LBMonthly:      lb,
		TotalMonthly:   total,
		TotalDaily:     total / daysPerMonth,
		TotalHourly:    total / hoursPerMonth,
	}
}

// BurnDown projeta o consumo do crédito de teste gratuito. daysSinceCreation
// negativo significa "idade do projeto desconhecida" e a projeção fica zerada.
func (e Engine) BurnDown(daysSinceCreation int, totalDailyUSD float64) entity.TrialBurnDown {
	bd := entity.TrialBurnDown{
		TrialDays:         e.Prices.TrialDays,
		DaysSinceCreation: daysSinceCreation,
		CreditUSD:         e.Prices.TrialCreditUSD,
		BurnRatePerDayUSD: totalDailyUSD,
	}

	if daysSinceCreation < 0 {
		return bd
	}

	bd.DaysRemaining = e.Prices.TrialDays - daysSinceCreation
	bd.HoursRemaining = bd.DaysRemaining * hoursPerDay
	bd.LikelyExpired = bd.DaysRemaining < 0

	if !bd.LikelyExpired {
		bd.ProjectedSpendUSD = totalDailyUSD * float64(bd.DaysRemaining)
	}

	return bd
}

// Convert aplica a taxa fixa a um valor em USD, arredondando para 2 casas.
// O arredondamento acontece na apresentação e não é acumulado; somar parcelas
// já convertidas pode divergir ±0.01 do total convertido, o que é aceito.
func Convert(amountUSD, usdToTarget float64) float64 {
	return round2(amountUSD * usdToTarget)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
