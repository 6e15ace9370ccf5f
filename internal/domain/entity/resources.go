package entity

// Count is a resource count that remembers whether the underlying query
// actually succeeded. A failed or unauthorized query yields {0, false},
// which still renders as "0" but is distinguishable in diagnostics.
type Count struct {
	Value int64 `json:"value"`
	Known bool  `json:"known"`
}

// KnownCount cria um Count confirmado pela API.
func KnownCount(v int64) Count {
	return Count{Value: v, Known: true}
}

// UnknownCount é o sentinel para consultas que falharam ou não são autorizadas.
func UnknownCount() Count {
	return Count{}
}

// ResourceCounts agrupa as contagens de inventário de um projeto.
type ResourceCounts struct {
	GKEClusters      Count `json:"gke_clusters"`
	ComputeInstances Count `json:"compute_instances"`
	Disks            Count `json:"disks"`
	VPCNetworks      Count `json:"vpc_networks"`
	ForwardingRules  Count `json:"forwarding_rules"`
	StorageBuckets   Count `json:"storage_buckets"`
}

// InstanceSummary is a map of instance status names to instance counts,
// e.g. {"RUNNING": 3, "TERMINATED": 1}.
type InstanceSummary map[string]int64

// Total soma todas as contagens por estado.
func (s InstanceSummary) Total() int64 {
	var total int64
	for _, n := range s {
		total += n
	}
	return total
}

// DiskSummary agrega os discos persistentes de um projeto.
type DiskSummary struct {
	Count       Count `json:"count"`
	TotalSizeGB int64 `json:"total_size_gb"`
	// SizesKnown indica se TotalSizeGB veio da API; quando false o modelo de
	// custo usa o tamanho padrão por disco.
	SizesKnown bool `json:"sizes_known"`
}

// BucketInfo representa um bucket do Cloud Storage.
type BucketInfo struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	StorageClass string `json:"storage_class,omitempty"`
}

// ExternalIP is an externally reachable address attached to an instance,
// used by the access-guide section of the report.
type ExternalIP struct {
	InstanceName string `json:"instance_name"`
	Zone         string `json:"zone"`
	Address      string `json:"address"`
}
