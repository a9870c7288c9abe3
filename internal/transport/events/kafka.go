// Package events публикует события журнала во внешний поток Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/fsdevblog/paywallet/internal/domain"
)

const (
	DefaultTopic = "paywallet.ledger"

	defaultBreakerTimeout      = 30 * time.Second
	defaultConsecutiveFailures = 5
	producerRetryMax           = 3
)

// KafkaPublisher отправляет события синхронным продюсером. Отправка идет через circuit breaker: при недоступности
// брокера события отбрасываются с логированием, операции с деньгами от этого не зависят.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	breaker  *gobreaker.CircuitBreaker
	l        *logrus.Entry
}

// NewSyncProducer создает синхронного продюсера с подтверждением записи от всех реплик.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = producerRetryMax
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, l *logrus.Logger) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "events",
		"topic":     topic,
	})

	p := &KafkaPublisher{
		producer: producer,
		topic:    topic,
		l:        loggerEntry,
	}
	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "kafka-" + topic,
		Timeout: defaultBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= defaultConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			loggerEntry.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
	return p
}

// Publish отправляет событие. Ключ сообщения идентификатор сущности, поэтому события одной транзакции или
// заказа попадают в одну партицию в порядке отправки.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.LedgerEvent) {
	if err := p.publish(ctx, event); err != nil {
		p.l.WithError(err).WithFields(logrus.Fields{
			"kind":     event.Kind,
			"entityID": event.EntityID,
		}).Error("publish event")
	}
}

func (p *KafkaPublisher) publish(ctx context.Context, event domain.LedgerEvent) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr //nolint:wrapcheck
	}
	payload, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		return fmt.Errorf("marshal event: %w", marshalErr)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.EntityID.String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(event.Kind)},
		},
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		partition, offset, sendErr := p.producer.SendMessage(message)
		if sendErr != nil {
			return nil, sendErr //nolint:wrapcheck
		}
		p.l.WithFields(logrus.Fields{
			"kind":      event.Kind,
			"partition": partition,
			"offset":    offset,
		}).Debug("event sent")
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("kafka unavailable: %w", err)
		}
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close producer: %w", err)
	}
	return nil
}

// LogPublisher пишет события в лог. Используется, когда брокер не настроен.
type LogPublisher struct {
	l *logrus.Entry
}

func NewLogPublisher(l *logrus.Logger) *LogPublisher {
	return &LogPublisher{l: l.WithField("component", "events")}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.LedgerEvent) {
	p.l.WithFields(logrus.Fields{
		"kind":        event.Kind,
		"entityID":    event.EntityID,
		"status":      event.Status,
		"amountCents": event.AmountCents,
	}).Debug("ledger event")
}
