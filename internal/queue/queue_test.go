package queue

import (
	"context"
	"testing"

	"github.com/dujiao-next/estore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderPlacedTaskRejectsEmptyPayload(t *testing.T) {
	_, err := NewOrderPlacedTask(OrderPlacedPayload{UserID: 1})
	assert.Error(t, err)
}

func TestOrderPlacedTaskPayload(t *testing.T) {
	task, err := NewOrderPlacedTask(OrderPlacedPayload{UserID: 3, AddressID: 9, OrderIDs: []uint{11, 12}})
	require.NoError(t, err)
	assert.Equal(t, TaskOrderPlaced, task.Type())

	payload, err := ParseOrderPlacedPayload(task)
	require.NoError(t, err)
	assert.Equal(t, []uint{11, 12}, payload.OrderIDs)
	assert.EqualValues(t, 9, payload.AddressID)
}

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false}, ClientOptions{})
	require.NoError(t, err)
	assert.False(t, client.Enabled())
	require.NoError(t, client.EnqueueOrderPlaced(context.Background(), OrderPlacedPayload{}))
	require.NoError(t, client.Close())
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	assert.Equal(t, "127.0.0.1:6379", opt.Addr)
	assert.Equal(t, 10, cfg.Concurrency)
	assert.Equal(t, map[string]int{DefaultQueue: 1}, cfg.Queues)
}
