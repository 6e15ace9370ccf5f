package entity

// BillingInfo representa o vínculo de billing de um projeto.
// AccountID fica vazio quando nenhuma conta de billing está associada;
// todas as consultas dependentes (orçamentos) são condicionais a isso.
type BillingInfo struct {
	AccountID          string `json:"account_id,omitempty"`
	BillingEnabled     bool   `json:"billing_enabled"`
	AccountDisplayName string `json:"account_display_name,omitempty"`
	AccountOpen        bool   `json:"account_open"`
}

// HasAccount reports whether a billing account is linked to the project.
func (b BillingInfo) HasAccount() bool {
	return b.AccountID != ""
}
