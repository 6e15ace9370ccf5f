package types

// PricingConfig espelha a tabela de preços injetável do modelo de custo.
// Campos zerados mantêm o valor padrão correspondente.
type PricingConfig struct {
	PerNodeMonthUSD float64 `json:"per_node_month_usd" yaml:"per_node_month_usd" toml:"per_node_month_usd"`
	PerGBMonthUSD   float64 `json:"per_gb_month_usd" yaml:"per_gb_month_usd" toml:"per_gb_month_usd"`
	PerRuleMonthUSD float64 `json:"per_rule_month_usd" yaml:"per_rule_month_usd" toml:"per_rule_month_usd"`
	TrialCreditUSD  float64 `json:"trial_credit_usd" yaml:"trial_credit_usd" toml:"trial_credit_usd"`
	TrialDays       int     `json:"trial_days" yaml:"trial_days" toml:"trial_days"`
	DefaultDiskGB   int64   `json:"default_disk_gb" yaml:"default_disk_gb" toml:"default_disk_gb"`
}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Project       string        `json:"project" yaml:"project" toml:"project"`
	Currency      string        `json:"currency" yaml:"currency" toml:"currency"`
	ReportName    string        `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string      `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string        `json:"dir" yaml:"dir" toml:"dir"`
	SkipWorkloads bool          `json:"skip_workloads" yaml:"skip_workloads" toml:"skip_workloads"`
	Pricing       PricingConfig `json:"pricing" yaml:"pricing" toml:"pricing"`
}
