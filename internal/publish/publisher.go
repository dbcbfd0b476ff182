package publish

import (
	"encoding/json"
	"fmt"
	"log"

	"TrafficLens/internal/config"
	"TrafficLens/internal/model"

	"github.com/nats-io/nats.go"
)

// Publisher pushes finished traffic summaries to a NATS subject so other
// agents can consume the window result without polling the artifact file.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher connects to the configured NATS server.
func NewPublisher(cfg config.PublisherConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes the summary to JSON and publishes it to the configured
// subject. The payload is the same document the artifact file holds.
func (p *Publisher) Publish(s *model.TrafficSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
