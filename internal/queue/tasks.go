package queue

import (
	"encoding/json"
	"fmt"

	"github.com/dujiao-next/estore/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskOrderPlaced 下单通知任务
const TaskOrderPlaced = constants.TaskOrderPlaced

// OrderPlacedPayload 下单通知任务载荷
type OrderPlacedPayload struct {
	UserID    uint   `json:"user_id"`
	AddressID uint   `json:"address_id"`
	OrderIDs  []uint `json:"order_ids"`
}

// NewOrderPlacedTask 创建下单通知任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	if payload.UserID == 0 || len(payload.OrderIDs) == 0 {
		return nil, fmt.Errorf("order placed payload incomplete: user=%d orders=%d", payload.UserID, len(payload.OrderIDs))
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}

// ParseOrderPlacedPayload 解析下单通知任务载荷
func ParseOrderPlacedPayload(task *asynq.Task) (OrderPlacedPayload, error) {
	var payload OrderPlacedPayload
	if task == nil {
		return payload, fmt.Errorf("nil task")
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", task.Type(), err)
	}
	return payload, nil
}
