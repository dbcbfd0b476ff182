package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"TrafficLens/internal/aggregate"
	"TrafficLens/internal/model"
	"TrafficLens/internal/signature"
)

const (
	emptyActivityText   = "No traffic captured"
	minimalActivityText = "Minimal activity"
	activitySeparator   = " | "

	// Categories below this share of total bytes are left out of the
	// activity breakdown.
	breakdownThresholdPct = 1.0
)

// Build turns the statistics of one closed capture window into the output
// artifact. It is a pure transformation: the same window and timestamp always
// produce the same summary. Connections are ranked by descending byte count
// and truncated to topN, but category shares are computed over every resolved
// connection, not just the displayed ones. Tie order between equal byte
// counts is unspecified.
func Build(window aggregate.WindowStats, topN int, now time.Time) *model.TrafficSummary {
	if window.TotalRecords == 0 {
		return &model.TrafficSummary{
			GeneratedAt:     now.Format(time.RFC3339),
			Connections:     []model.ConnectionSummary{},
			ActivitySummary: emptyActivityText,
		}
	}

	connections := make([]model.ConnectionSummary, 0, len(window.Destinations))
	for ip, stats := range window.Destinations {
		service, ok := signature.IdentifyService(ip)
		if !ok {
			service = "Unknown"
		}

		ports := make([]int, 0, len(stats.Ports))
		for port := range stats.Ports {
			ports = append(ports, port)
		}
		sort.Ints(ports)

		connections = append(connections, model.ConnectionSummary{
			IP:       ip,
			Service:  service,
			Category: signature.Categorize(service),
			Packets:  stats.Packets,
			Bytes:    stats.Bytes,
			Ports:    ports,
		})
	}
	sort.SliceStable(connections, func(i, j int) bool {
		return connections[i].Bytes > connections[j].Bytes
	})

	totalBytes := 0
	for _, conn := range connections {
		totalBytes += conn.Bytes
	}

	displayed := connections
	if len(displayed) > topN {
		displayed = displayed[:topN]
	}

	return &model.TrafficSummary{
		GeneratedAt:        now.Format(time.RFC3339),
		TotalPackets:       window.TotalRecords,
		TotalBytes:         totalBytes,
		UniqueDestinations: len(window.Destinations),
		Connections:        displayed,
		ActivitySummary:    activityBreakdown(connections, totalBytes),
	}
}

// activityBreakdown renders the per-category byte shares across all resolved
// connections, largest first, skipping categories at or below the threshold.
func activityBreakdown(connections []model.ConnectionSummary, totalBytes int) string {
	type categorySum struct {
		name  string
		bytes int
	}
	sums := make(map[string]*categorySum)
	var order []*categorySum
	for _, conn := range connections {
		entry, ok := sums[conn.Category]
		if !ok {
			entry = &categorySum{name: conn.Category}
			sums[conn.Category] = entry
			order = append(order, entry)
		}
		entry.bytes += conn.Bytes
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].bytes > order[j].bytes
	})

	var parts []string
	for _, entry := range order {
		if entry.bytes == 0 || totalBytes == 0 {
			continue
		}
		pct := float64(entry.bytes) / float64(totalBytes) * 100
		if pct > breakdownThresholdPct {
			parts = append(parts, fmt.Sprintf("%s: %.0f%%", entry.name, pct))
		}
	}
	if len(parts) == 0 {
		return minimalActivityText
	}
	return strings.Join(parts, activitySeparator)
}
