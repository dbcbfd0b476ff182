package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"TrafficLens/internal/aggregate"
	"TrafficLens/internal/capture"
	"TrafficLens/internal/config"
	"TrafficLens/internal/publish"
	"TrafficLens/internal/summary"
)

const configPath = "configs/config.yaml"

func main() {
	// 1. Load configuration; compiled-in defaults apply when no file exists,
	// so the binary runs without arguments.
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	duration, err := cfg.CaptureDuration()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	fmt.Printf("Capturing traffic on %s for %s...\n", cfg.Capture.Interface, duration)

	// 2. Run one capture window. The capture child process is the producer;
	// this loop is the single consumer doing read-parse-aggregate in order.
	source := capture.NewSource(cfg.Capture.TsharkPath, cfg.Capture.Interface, duration)
	aggregator := aggregate.NewAggregator(cfg.Capture.OutboundPrefixes)

	lines := make(chan string, 256)
	runErr := make(chan error, 1)
	go func() {
		runErr <- source.Run(context.Background(), lines)
	}()

	for line := range lines {
		rec, err := capture.ParseLine(line)
		if err != nil {
			// Garbled or non-flow output is expected and skipped.
			continue
		}
		aggregator.Process(rec)
	}
	if err := <-runErr; err != nil {
		// Degraded run: the window still produces a valid empty summary.
		log.Printf("Error capturing traffic: %v", err)
	}

	window := aggregator.Window()
	fmt.Printf("Captured %d packets\n", window.TotalRecords)

	// 3. Build the summary and persist the artifact. A write failure is the
	// only fatal condition in the pipeline.
	result := summary.Build(window, cfg.Summary.TopN, time.Now())
	writer := summary.NewWriter(cfg.Summary.OutputPath)
	if err := writer.Write(result); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	fmt.Printf("Activity: %s\n", result.ActivitySummary)
	fmt.Printf("Output written to %s\n", writer.Path())

	// 4. Optionally push the summary to NATS for other agents.
	if cfg.Publisher.Enabled {
		pub, err := publish.NewPublisher(cfg.Publisher)
		if err != nil {
			log.Printf("Summary publisher unavailable: %v", err)
			return
		}
		defer pub.Close()
		if err := pub.Publish(result); err != nil {
			log.Printf("Failed to publish summary: %v", err)
		}
	}
}
