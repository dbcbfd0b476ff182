package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"TrafficLens/internal/aggregate"
	"TrafficLens/internal/config"
	"TrafficLens/internal/model"
	"TrafficLens/internal/summary"
	"TrafficLens/pkg/pcap"
)

func main() {
	// 1. Get pcap file path from command-line arguments
	if len(os.Args) < 2 {
		fmt.Println("Usage: pcap-analyzer <path_to_pcap_file>")
		os.Exit(1)
	}
	pcapFilePath := os.Args[1]

	// 2. Load configuration for the outbound prefixes and top-N setting
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 3. Replay the capture file through the aggregation pipeline
	reader, err := pcap.NewReader(pcapFilePath)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer reader.Close()
	log.Printf("Reading packets from '%s'...", pcapFilePath)

	records := make(chan *model.FlowRecord, 256)
	go reader.ReadRecords(records)

	aggregator := aggregate.NewAggregator(cfg.Capture.OutboundPrefixes)
	for rec := range records {
		aggregator.Process(rec)
	}

	// 4. Build the summary and print it
	result := summary.Build(aggregator.Window(), cfg.Summary.TopN, time.Now())
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode summary: %v", err)
	}
	fmt.Println(string(data))
}
