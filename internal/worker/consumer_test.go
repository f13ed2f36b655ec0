package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/provider"
	"github.com/dujiao-next/estore/internal/queue"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type publishedEvent struct {
	routingKey string
	data       interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{routingKey: routingKey, data: data})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func newTestConsumer(t *testing.T) (*Consumer, *gorm.DB, *recordingPublisher) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dialector, err := models.NewDialector("sqlite", fmt.Sprintf("file:worker_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.MigrateWith(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	container, err := provider.NewContainer(config.Default(), db)
	require.NoError(t, err)
	publisher := &recordingPublisher{}
	container.EventPublisher = publisher
	return NewConsumer(container), db, publisher
}

func seedOrders(t *testing.T, db *gorm.DB) (models.User, []models.Order) {
	t.Helper()
	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Status: constants.UserStatusActive}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{Title: "Tea", Slug: "tea", IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{CategoryID: category.ID, Title: "Green", Slug: "green", SKU: "TEA-1", Price: models.MustMoney("4.50"), IsActive: true}
	require.NoError(t, db.Create(&product).Error)
	orders := []models.Order{
		{UserID: user.ID, ProductID: product.ID, Quantity: 2, UnitPrice: product.Price, Status: constants.OrderStatusPending},
		{UserID: user.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price, Status: constants.OrderStatusPending},
	}
	require.NoError(t, db.Create(&orders).Error)
	return user, orders
}

func TestHandleOrderPlacedPublishesEvent(t *testing.T) {
	consumer, db, publisher := newTestConsumer(t)
	user, orders := seedOrders(t, db)

	task, err := queue.NewOrderPlacedTask(queue.OrderPlacedPayload{
		UserID:   user.ID,
		OrderIDs: []uint{orders[0].ID, orders[1].ID},
	})
	require.NoError(t, err)
	require.NoError(t, consumer.handleOrderPlaced(context.Background(), task))

	require.Len(t, publisher.events, 1)
	require.Equal(t, constants.EventOrderPlaced, publisher.events[0].routingKey)
	event, ok := publisher.events[0].data.(OrderPlacedEvent)
	require.True(t, ok)
	require.Equal(t, 3, event.TotalItems)
	require.Equal(t, "13.50", event.Amount.String())
}

func TestHandleOrderPlacedRetriesOnPublishFailure(t *testing.T) {
	consumer, db, publisher := newTestConsumer(t)
	user, orders := seedOrders(t, db)
	publisher.err = errors.New("broker down")

	task, err := queue.NewOrderPlacedTask(queue.OrderPlacedPayload{UserID: user.ID, OrderIDs: []uint{orders[0].ID}})
	require.NoError(t, err)

	err = consumer.handleOrderPlaced(context.Background(), task)
	require.Error(t, err)
	require.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleOrderPlacedSkipsBadPayload(t *testing.T) {
	consumer, _, publisher := newTestConsumer(t)

	err := consumer.handleOrderPlaced(context.Background(), asynq.NewTask(queue.TaskOrderPlaced, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)

	missing, err := queue.NewOrderPlacedTask(queue.OrderPlacedPayload{UserID: 1, OrderIDs: []uint{404}})
	require.NoError(t, err)
	require.NoError(t, consumer.handleOrderPlaced(context.Background(), missing))
	require.Empty(t, publisher.events)
}

type failingMailer struct{ sends int }

func (m *failingMailer) Enabled() bool { return true }

func (m *failingMailer) SendText(string, string, string) error {
	m.sends++
	return errors.New("smtp unavailable")
}

func TestHandleOrderPlacedEmailFailureDoesNotRepublish(t *testing.T) {
	consumer, db, publisher := newTestConsumer(t)
	mailer := &failingMailer{}
	consumer.NotificationService = service.NewNotificationService(mailer, "")
	user, orders := seedOrders(t, db)

	task, err := queue.NewOrderPlacedTask(queue.OrderPlacedPayload{UserID: user.ID, OrderIDs: []uint{orders[0].ID}})
	require.NoError(t, err)

	err = consumer.handleOrderPlaced(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
	require.Equal(t, 1, mailer.sends)
	require.Len(t, publisher.events, 1)
}
