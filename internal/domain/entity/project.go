package entity

import "time"

// ProjectInfo represents the metadata of a Google Cloud project.
type ProjectInfo struct {
	ProjectID      string    `json:"project_id"`
	ProjectNumber  int64     `json:"project_number"`
	DisplayName    string    `json:"display_name"`
	CreateTime     time.Time `json:"create_time"`
	LifecycleState string    `json:"lifecycle_state,omitempty"`
}

// DaysSinceCreation retorna o número de dias completos desde a criação do projeto.
// Retorna -1 quando o horário de criação não pôde ser coletado.
func (p ProjectInfo) DaysSinceCreation(now time.Time) int {
	if p.CreateTime.IsZero() {
		return -1
	}
	return int(now.Sub(p.CreateTime).Hours() / 24)
}
