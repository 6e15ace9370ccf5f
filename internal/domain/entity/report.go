package entity

// ReportData represents everything collected and derived for a single run,
// in the order the renderer and the exporters consume it.
type ReportData struct {
	Project     ProjectInfo     `json:"project"`
	Billing     BillingInfo     `json:"billing"`
	Budgets     []Budget        `json:"budgets"`
	Counts      ResourceCounts  `json:"counts"`
	Instances   InstanceSummary `json:"instances"`
	Disks       DiskSummary     `json:"disks"`
	Clusters    []ClusterDetail `json:"clusters"`
	Buckets     []BucketInfo    `json:"buckets"`
	ExternalIPs []ExternalIP    `json:"external_ips"`
	Workloads   WorkloadSummary `json:"workloads"`
	Rate        ExchangeRate    `json:"rate"`
	Costs       CostBreakdown   `json:"costs"`
	BurnDown    TrialBurnDown   `json:"burn_down"`
}
