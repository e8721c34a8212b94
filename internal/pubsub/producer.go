package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
)

const defaultWriteTimeout = 5 * time.Second

func NewKafkaProducer(cfg Config, log logger.Logger) *kafkaProducer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	return &kafkaProducer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: timeout,
		},
		logger: log.With("kafka_producer"),
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaProducer struct {
	w      messageWriter
	logger logger.Logger
}

// Broadcast publishes data as json to every topic, keyed by key so
// events of one entity land in one partition.
func (p *kafkaProducer) Broadcast(ctx context.Context, topics []string, key string, data any) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return errors.WrapFail(err, "marshal data to json")
	}

	msgs := make([]kafka.Message, 0, len(topics))
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		msgs = append(msgs, kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: bytes,
		})
	}
	if len(msgs) == 0 {
		return nil
	}

	err = p.w.WriteMessages(ctx, msgs...)
	if err != nil {
		return errors.WrapFailf(err, "write %d message(s) for %s", len(msgs), key)
	}

	p.logger.Debugf("published %s to %d topic(s)", key, len(msgs))
	return nil
}

func (p *kafkaProducer) Close() error {
	return errors.WrapFail(p.w.Close(), "close kafka writer")
}

// NewNoop returns a Producer that drops everything. It stands in
// when no brokers are configured.
func NewNoop() Producer {
	return noop{}
}

type noop struct{}

func (noop) Broadcast(context.Context, []string, string, any) error { return nil }

func (noop) Close() error { return nil }
