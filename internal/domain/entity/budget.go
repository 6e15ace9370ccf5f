package entity

// ThresholdBasis indica sobre qual gasto a regra de alerta é calculada.
type ThresholdBasis string

const (
	ThresholdBasisActual     ThresholdBasis = "ACTUAL"
	ThresholdBasisForecasted ThresholdBasis = "FORECASTED"
)

// ParseThresholdBasis mapeia o SpendBasis da API para o enum fechado.
func ParseThresholdBasis(s string) ThresholdBasis {
	if s == "FORECASTED_SPEND" || s == string(ThresholdBasisForecasted) {
		return ThresholdBasisForecasted
	}
	return ThresholdBasisActual
}

// ThresholdRule is one alert rule of a budget, percent in the 0-100 range.
type ThresholdRule struct {
	Percent float64        `json:"percent"`
	Basis   ThresholdBasis `json:"basis"`
}

// Budget representa um orçamento de billing associado à conta do projeto.
type Budget struct {
	DisplayName    string          `json:"display_name"`
	AmountUnits    int64           `json:"amount_units"`
	CurrencyCode   string          `json:"currency_code,omitempty"`
	CalendarPeriod string          `json:"calendar_period,omitempty"`
	ThresholdRules []ThresholdRule `json:"threshold_rules,omitempty"`
}
