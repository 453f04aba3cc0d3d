package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/KoIa247/SeatingApp/pkg/logger"
)

// AuditConsumer drains the import audit topic. The only sink today is
// the structured log, which gives operators a persistent trail of every
// batch import without touching the database.
type AuditConsumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "seatingapp-import-audit",
		Topics:           []string{"seat-imports"},
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     true,
	}
}

type KafkaAuditConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	log           *logger.Logger
	cancel        context.CancelFunc
}

func NewKafkaAuditConsumer(config *ConsumerConfig, log *logger.Logger) (AuditConsumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &KafkaAuditConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		log:           log,
	}, nil
}

func (c *KafkaAuditConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.Error("audit consumer error", "error", err.Error())
		}
	}()

	go func() {
		handler := &auditHandler{log: c.log}
		for {
			if err := c.consumerGroup.Consume(ctx, c.config.Topics, handler); err != nil {
				c.log.Error("audit consumer session failed", "error", err.Error())
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return nil
}

func (c *KafkaAuditConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

type auditHandler struct {
	log *logger.Logger
}

func (h *auditHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *auditHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *auditHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		event, err := ImportEventFromJSON(message.Value)
		if err != nil {
			h.log.ErrorWithContext(session.Context(), "failed to decode import event", err,
				map[string]interface{}{"offset": message.Offset})
			session.MarkMessage(message, "")
			continue
		}

		h.log.LogImportCompleted(session.Context(), event.Added, event.Skipped, event.Failed, event.Instances)
		session.MarkMessage(message, "")
	}
	return nil
}
