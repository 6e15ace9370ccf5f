package entity

// WorkloadSummary agrega os objetos de workload de um cluster acessível via
// kubeconfig. Collected somente quando o kubeconfig aponta para um cluster
// alcançável; caso contrário a seção inteira degrada para "not available".
type WorkloadSummary struct {
	Collected   bool  `json:"collected"`
	Pods        int64 `json:"pods"`
	RunningPods int64 `json:"running_pods"`
	Deployments int64 `json:"deployments"`
	Services    int64 `json:"services"`
	PVCs        int64 `json:"pvcs"`
}
