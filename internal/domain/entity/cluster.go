package entity

import "time"

// ClusterStatus is the closed set of GKE cluster states this tool understands.
// Qualquer valor desconhecido vindo da API é mapeado para ClusterStatusUnknown
// em vez de passar adiante uma string arbitrária.
type ClusterStatus string

const (
	ClusterStatusProvisioning ClusterStatus = "PROVISIONING"
	ClusterStatusRunning      ClusterStatus = "RUNNING"
	ClusterStatusReconciling  ClusterStatus = "RECONCILING"
	ClusterStatusStopping     ClusterStatus = "STOPPING"
	ClusterStatusError        ClusterStatus = "ERROR"
	ClusterStatusUnknown      ClusterStatus = "UNKNOWN"
)

// ParseClusterStatus normaliza a string de status vinda da API.
func ParseClusterStatus(s string) ClusterStatus {
	switch ClusterStatus(s) {
	case ClusterStatusProvisioning, ClusterStatusRunning, ClusterStatusReconciling,
		ClusterStatusStopping, ClusterStatusError:
		return ClusterStatus(s)
	default:
		return ClusterStatusUnknown
	}
}

// ClusterDetail representa um cluster GKE do projeto.
type ClusterDetail struct {
	Name                string        `json:"name"`
	Location            string        `json:"location"`
	ControlPlaneVersion string        `json:"control_plane_version"`
	NodeVersion         string        `json:"node_version"`
	Status              ClusterStatus `json:"status"`
	NodeCount           int64         `json:"node_count"`
	CreatedAt           time.Time     `json:"created_at"`
	Endpoint            string        `json:"endpoint,omitempty"`
}
