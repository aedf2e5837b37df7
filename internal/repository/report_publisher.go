package repository

import (
	"context"
	"fmt"

	"StockScope/internal/domain/models"
	domrepo "StockScope/internal/domain/repository"
	pkgkafka "StockScope/pkg/kafka"
)

// KafkaReportPublisher publishes each aggregated report as a JSON event
// keyed by ticker, so downstream consumers see per-ticker ordering.
type KafkaReportPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaReportPublisher(producer *pkgkafka.Producer, topic string) domrepo.ReportPublisher {
	return &KafkaReportPublisher{producer: producer, topic: topic}
}

func (p *KafkaReportPublisher) Publish(ctx context.Context, report *models.AggregatedReport) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(report.Ticker), report); err != nil {
		return fmt.Errorf("publish report %s: %w", report.Ticker, err)
	}
	return nil
}

func (p *KafkaReportPublisher) Close() error {
	return p.producer.Close()
}

// NoopReportPublisher is used when event publishing is disabled.
type NoopReportPublisher struct{}

func (NoopReportPublisher) Publish(ctx context.Context, report *models.AggregatedReport) error {
	return nil
}

func (NoopReportPublisher) Close() error { return nil }
