package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/metrics"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/provider"
	"github.com/dujiao-next/estore/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// OrderPlacedEvent 下单领域事件
type OrderPlacedEvent struct {
	UserID     uint         `json:"user_id"`
	AddressID  uint         `json:"address_id"`
	OrderIDs   []uint       `json:"order_ids"`
	TotalItems int          `json:"total_items"`
	Amount     models.Money `json:"amount"`
}

// Register 注册任务处理函数
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

// handleOrderPlaced 发布下单事件并发送确认邮件
// 载荷非法、订单已不存在或事件发布后邮件失败时不再重试
func (c *Consumer) handleOrderPlaced(ctx context.Context, task *asynq.Task) (err error) {
	start := time.Now()
	defer func() { metrics.RecordQueueJob(queue.TaskOrderPlaced, err, start) }()

	payload, err := queue.ParseOrderPlacedPayload(task)
	if err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if payload.UserID == 0 || len(payload.OrderIDs) == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}

	orders, err := c.OrderService.ListByIDs(payload.OrderIDs)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_orders_failed", "order_ids", payload.OrderIDs, "error", err)
		return err
	}
	if len(orders) == 0 {
		logger.Debugw("worker_order_placed_skip_orders_missing", "order_ids", payload.OrderIDs)
		return nil
	}
	user, err := c.UserRepo.GetByID(payload.UserID)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_user_failed", "user_id", payload.UserID, "error", err)
		return err
	}

	if c.EventPublisher != nil {
		if err := c.EventPublisher.Publish(ctx, constants.EventOrderPlaced, buildOrderPlacedEvent(payload, orders)); err != nil {
			logger.Warnw("worker_order_placed_publish_failed", "order_ids", payload.OrderIDs, "error", err)
			return err
		}
	}

	if user == nil {
		logger.Debugw("worker_order_placed_skip_user_missing", "user_id", payload.UserID)
		return nil
	}
	sent, err := c.NotificationService.NotifyOrderPlaced(user, orders)
	if err != nil {
		// 事件已发布，重试会重复投递
		logger.Warnw("worker_order_placed_email_failed", "user_id", user.ID, "order_ids", payload.OrderIDs, "error", err)
		return fmt.Errorf("send order email: %v: %w", err, asynq.SkipRetry)
	}
	logger.Infow("worker_order_placed_done",
		"user_id", user.ID,
		"order_ids", payload.OrderIDs,
		"email_sent", sent,
	)
	return nil
}

func buildOrderPlacedEvent(payload queue.OrderPlacedPayload, orders []models.Order) OrderPlacedEvent {
	event := OrderPlacedEvent{
		UserID:    payload.UserID,
		AddressID: payload.AddressID,
		OrderIDs:  make([]uint, 0, len(orders)),
		Amount:    models.ZeroMoney(),
	}
	for i := range orders {
		event.OrderIDs = append(event.OrderIDs, orders[i].ID)
		event.TotalItems += orders[i].Quantity
		event.Amount = event.Amount.Add(orders[i].Total())
	}
	return event
}
