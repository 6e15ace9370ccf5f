package entity

// ExchangeRate é a taxa de conversão USD→moeda alvo, buscada uma vez por
// execução e usada uniformemente em todas as conversões do relatório.
type ExchangeRate struct {
	TargetCurrency string  `json:"target_currency"`
	USDToTarget    float64 `json:"usd_to_target"`
}

// CostBreakdown contains every derived cost figure, in USD. Values are kept
// unrounded here; rounding happens only at presentation/conversion time.
type CostBreakdown struct {
	ComputeMonthly float64 `json:"compute_monthly_usd"`
	DiskMonthly    float64 `json:"disk_monthly_usd"`
	LBMonthly      float64 `json:"lb_monthly_usd"`
	TotalMonthly   float64 `json:"total_monthly_usd"`
	TotalDaily     float64 `json:"total_daily_usd"`
	TotalHourly    float64 `json:"total_hourly_usd"`
}

// TrialBurnDown é a projeção de consumo do crédito de teste gratuito.
// DaysRemaining pode ser negativo, significando "provavelmente expirado".
type TrialBurnDown struct {
	TrialDays         int     `json:"trial_days"`
	DaysSinceCreation int     `json:"days_since_creation"`
	DaysRemaining     int     `json:"days_remaining"`
	HoursRemaining    int     `json:"hours_remaining"`
	BurnRatePerDayUSD float64 `json:"burn_rate_per_day_usd"`
	CreditUSD         float64 `json:"credit_usd"`
	// ProjectedSpendUSD é BurnRatePerDayUSD aplicado aos dias restantes do
	// período de teste; zero quando o teste já expirou.
	ProjectedSpendUSD float64 `json:"projected_spend_usd"`
	LikelyExpired     bool    `json:"likely_expired"`
}
