package model

// FlowRecord holds the metadata extracted from a single flow observation line.
// Records are ephemeral: built per accepted line, folded into the aggregator,
// then discarded.
type FlowRecord struct {
	SrcIP    string
	DstIP    string
	DstPort  int
	Protocol string
	Size     int
}

// DestinationStats accumulates per-destination counters for one capture window.
// Counters only ever increase; the struct is owned exclusively by the
// aggregation loop until the window closes.
type DestinationStats struct {
	Packets int
	Bytes   int
	Ports   map[int]struct{}
}

// NewDestinationStats creates an empty stats entry for a newly seen destination.
func NewDestinationStats() *DestinationStats {
	return &DestinationStats{Ports: make(map[int]struct{})}
}

// ConnectionSummary is the per-destination view in the final artifact.
type ConnectionSummary struct {
	IP       string `json:"ip"`
	Service  string `json:"service"`
	Category string `json:"category"`
	Packets  int    `json:"packets"`
	Bytes    int    `json:"bytes"`
	Ports    []int  `json:"ports"`
}

// TrafficSummary is the artifact produced once per capture window.
type TrafficSummary struct {
	GeneratedAt        string              `json:"generated_at"`
	TotalPackets       int                 `json:"total_packets"`
	TotalBytes         int                 `json:"total_bytes"`
	UniqueDestinations int                 `json:"unique_destinations"`
	Connections        []ConnectionSummary `json:"connections"`
	ActivitySummary    string              `json:"activity_summary"`
}
