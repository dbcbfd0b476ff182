package aggregate

import (
	"strings"

	"TrafficLens/internal/model"
)

// WindowStats is the result of one capture window: the per-destination map
// plus the count of every record that parsed, outbound or not. The map is
// handed to the summary builder when the window closes and never reused.
type WindowStats struct {
	Destinations map[string]*model.DestinationStats
	TotalRecords int
}

// Aggregator folds flow records into per-destination statistics for a single
// capture window. Destination identity is only meaningful for traffic the
// monitored client initiated, so only records whose source address carries a
// recognized outbound prefix contribute to the map.
type Aggregator struct {
	outboundPrefixes []string
	stats            WindowStats
}

// NewAggregator creates an aggregator for one capture window.
func NewAggregator(outboundPrefixes []string) *Aggregator {
	return &Aggregator{
		outboundPrefixes: outboundPrefixes,
		stats: WindowStats{
			Destinations: make(map[string]*model.DestinationStats),
		},
	}
}

// Process folds one record into the window statistics.
func (a *Aggregator) Process(rec *model.FlowRecord) {
	a.stats.TotalRecords++

	if !a.isOutbound(rec.SrcIP) {
		return
	}

	entry, ok := a.stats.Destinations[rec.DstIP]
	if !ok {
		entry = model.NewDestinationStats()
		a.stats.Destinations[rec.DstIP] = entry
	}
	entry.Packets++
	entry.Bytes += rec.Size
	entry.Ports[rec.DstPort] = struct{}{}
}

// Window returns the accumulated statistics for the closing window.
func (a *Aggregator) Window() WindowStats {
	return a.stats
}

func (a *Aggregator) isOutbound(srcIP string) bool {
	for _, prefix := range a.outboundPrefixes {
		if strings.HasPrefix(srcIP, prefix) {
			return true
		}
	}
	return false
}
