// Package kafka consumes inventory events that release orders for dispatch.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/IBM/sarama"
)

const retryDelay = time.Second

// OrderReadyHandler marks an order ready for dispatch.
type OrderReadyHandler interface {
	Handle(ctx context.Context, cmd commands.MarkOrderReadyCommand) error
}

// InventoryCleared is the message published once every item of an order is
// picked. Either field identifies the order; OrderID wins when both are set.
type InventoryCleared struct {
	OrderID   string `json:"orderId"`
	OrderCode string `json:"orderCode"`
}

// Consumer wraps a sarama consumer group and feeds inventory events to the
// order pipeline.
type Consumer struct {
	group      sarama.ConsumerGroup
	topic      string
	handler    OrderReadyHandler
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewConsumer returns nil without error when Kafka is not configured.
func NewConsumer(
	brokers []string,
	groupID, topic string,
	handler OrderReadyHandler,
	logger *slog.Logger,
) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Session.Timeout = 45 * time.Second

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return newConsumer(group, topic, handler, logger), nil
}

func newConsumer(group sarama.ConsumerGroup, topic string, handler OrderReadyHandler, logger *slog.Logger) *Consumer {
	return &Consumer{
		group:      group,
		topic:      topic,
		handler:    handler,
		retryDelay: retryDelay,
		logger:     logger.With("component", "inventory_consumer", "topic", topic),
	}
}

// Run consumes until ctx is done or the group is closed. Every session end,
// whether a rebalance, a consume error or a message left for redelivery, is
// followed by retryDelay before rejoining.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	c.logger.Info("consumer started")

	for {
		err := c.group.Consume(ctx, []string{c.topic}, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			c.logger.Info("consumer group closed")
			return nil
		}
		if err != nil {
			c.logger.Error("consume failed", "error", err)
		} else {
			c.logger.Debug("session ended, rejoining", "delay", c.retryDelay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
}

func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

// handle reports whether the message is done with, either applied or
// rejected for good. A false result with an error leaves the offset unmarked.
func (c *Consumer) handle(ctx context.Context, msg *sarama.ConsumerMessage) (bool, error) {
	var payload InventoryCleared
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		c.logger.Warn("bad json, skipping message", "offset", msg.Offset, "error", err)
		return true, nil
	}

	cmd, err := payload.command()
	if err != nil {
		c.logger.Warn("invalid message, skipping", "offset", msg.Offset, "error", err)
		return true, nil
	}

	if err := c.handler.Handle(ctx, cmd); err != nil {
		if isFinal(err) {
			c.logger.Warn("order not released, skipping message",
				"order_id", payload.OrderID,
				"order_code", payload.OrderCode,
				"error", err,
			)
			return true, nil
		}
		c.logger.Error("handle failed, message will be redelivered",
			"order_id", payload.OrderID,
			"order_code", payload.OrderCode,
			"error", err,
		)
		return false, err
	}

	c.logger.Info("order released for dispatch", "order_id", payload.OrderID, "order_code", payload.OrderCode)
	return true, nil
}

func (m InventoryCleared) command() (commands.MarkOrderReadyCommand, error) {
	if id := strings.TrimSpace(m.OrderID); id != "" {
		orderID, err := kernel.UUIDFromString(id)
		if err != nil {
			return commands.MarkOrderReadyCommand{}, err
		}
		return commands.NewMarkOrderReadyCommand(orderID)
	}
	return commands.NewMarkOrderReadyByCodeCommand(m.OrderCode)
}

// isFinal reports errors that redelivery cannot fix.
func isFinal(err error) bool {
	return errs.IsValidation(err) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrConflict)
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		done, err := h.c.handle(sess.Context(), msg)
		if !done {
			return err
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}
