package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"TrafficLens/internal/model"
)

func TestWriterWrite(t *testing.T) {
	// The output directory does not exist yet; Write must create it.
	path := filepath.Join(t.TempDir(), "traffic", "traffic-context.json")
	writer := NewWriter(path)

	s := Build(buildWindow([]*model.FlowRecord{
		{SrcIP: "10.66.66.2", DstIP: "1.1.1.1", DstPort: 53, Protocol: "UDP", Size: 64},
	}), 20, time.Now())

	if err := writer.Write(s); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read summary file: %v", err)
	}
	var decoded model.TrafficSummary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal summary file: %v", err)
	}
	if decoded.TotalPackets != 1 || decoded.TotalBytes != 64 {
		t.Errorf("Decoded summary does not match: %+v", decoded)
	}
	if len(decoded.Connections) != 1 || decoded.Connections[0].Service != "Cloudflare DNS" {
		t.Errorf("Decoded connections do not match: %+v", decoded.Connections)
	}
}

func TestWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic-context.json")
	writer := NewWriter(path)

	first := Build(buildWindow(nil), 20, time.Now())
	if err := writer.Write(first); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	second := Build(buildWindow([]*model.FlowRecord{
		{SrcIP: "10.66.66.2", DstIP: "140.82.121.4", DstPort: 443, Protocol: "TCP", Size: 500},
	}), 20, time.Now())
	if err := writer.Write(second); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read summary file: %v", err)
	}
	var decoded model.TrafficSummary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal summary file: %v", err)
	}
	if decoded.TotalPackets != 1 {
		t.Errorf("Expected the second window's summary, got %+v", decoded)
	}
}
