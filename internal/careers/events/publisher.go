package events

import (
	"context"
	"time"

	"careerdesk/pkg/config"
	"careerdesk/pkg/kafka"
	kafka_config "careerdesk/pkg/kafka/config"
	kafka_middleware "careerdesk/pkg/kafka/middleware"
	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"
)

const (
	EventCareerCreated = "career.created"
	EventCareerUpdated = "career.updated"

	schemaVersion = "1"
	sourceService = "careers"
)

// CareerEvent is the payload published on career lifecycle changes.
type CareerEvent struct {
	EventType  string    `json:"eventType"`
	CareerID   string    `json:"careerId"`
	OrgID      string    `json:"orgId"`
	JobTitle   string    `json:"jobTitle"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher emits career lifecycle events. Publish failures are logged and
// never fail the originating request.
type Publisher interface {
	CareerCreated(ctx context.Context, c *model.Career)
	CareerUpdated(ctx context.Context, c *model.Career)
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	log      *logger.Logger
}

// NewPublisher returns a Kafka-backed publisher when brokers are configured,
// otherwise a no-op publisher so the service runs without a broker.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, career events disabled")
		return &NoopPublisher{}, nil
	}

	kafkaCfg := kafka_config.Load()
	kafkaCfg.Brokers = cfg.KafkaBrokers

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaCareerTopic, "")
	if err != nil {
		return nil, err
	}

	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware())
	}

	cfg.Log.Info("Career event publisher initialized",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaCareerTopic,
	)

	return &kafkaPublisher{
		producer: producer,
		topic:    cfg.KafkaCareerTopic,
		log:      cfg.Log,
	}, nil
}

func (p *kafkaPublisher) CareerCreated(ctx context.Context, c *model.Career) {
	p.publish(ctx, EventCareerCreated, c)
}

func (p *kafkaPublisher) CareerUpdated(ctx context.Context, c *model.Career) {
	p.publish(ctx, EventCareerUpdated, c)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, c *model.Career) {
	event := CareerEvent{
		EventType:  eventType,
		CareerID:   c.ID,
		OrgID:      c.OrgID,
		JobTitle:   c.JobTitle,
		Status:     c.Status,
		OccurredAt: time.Now().UTC(),
	}

	// Keyed by orgID so events for one organization stay ordered.
	msg := kafka.NewMessage().
		WithKey(c.OrgID).
		WithValue(event).
		WithEventType(eventType).
		WithSchemaVersion(schemaVersion).
		WithSource(sourceService).
		Build()
	msg.Topic = p.topic

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish career event",
			"event_type", eventType,
			"career_id", c.ID,
			"org_id", c.OrgID,
			"error", err,
		)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops all events.
type NoopPublisher struct{}

func (NoopPublisher) CareerCreated(context.Context, *model.Career) {}
func (NoopPublisher) CareerUpdated(context.Context, *model.Career) {}
func (NoopPublisher) Close() error                                 { return nil }
