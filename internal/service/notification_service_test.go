package service

import (
	"errors"
	"testing"

	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	err  error
	sent []string
}

func (m *stubMailer) Enabled() bool { return true }

func (m *stubMailer) SendText(toEmail, subject, _ string) error {
	m.sent = append(m.sent, toEmail+"|"+subject)
	return m.err
}

func TestNotificationSkipsWhenMailerDisabled(t *testing.T) {
	svc := NewNotificationService(NewEmailService(&config.EmailConfig{}), "")
	sent, err := svc.NotifyOrderPlaced(&models.User{Email: "a@b.co"}, []models.Order{{ID: 1}})
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestBuildOrderPlacedEmail(t *testing.T) {
	user := &models.User{Username: "alice", Email: "alice@example.com"}
	orders := []models.Order{
		{ID: 7, Quantity: 2, UnitPrice: models.MustMoney("10.00"), Product: &models.Product{Title: "Sencha"}},
		{ID: 8, Quantity: 1, UnitPrice: models.MustMoney("5.00"), Product: &models.Product{Title: "Matcha"}},
	}
	subject, body := BuildOrderPlacedEmail("Order confirmation #%d", user, orders)
	assert.Equal(t, "Order confirmation #7", subject)
	assert.Contains(t, body, "Sencha x 2  20.00")
	assert.Contains(t, body, "Items total: 25.00")
}

func TestNotifyOrderPlacedSendsAndReportsErrors(t *testing.T) {
	user := &models.User{Username: "alice", Email: "alice@example.com"}
	orders := []models.Order{{ID: 3, Quantity: 1, UnitPrice: models.MustMoney("2.00")}}

	mailer := &stubMailer{}
	sent, err := NewNotificationService(mailer, "").NotifyOrderPlaced(user, orders)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, []string{"alice@example.com|Order confirmation #3"}, mailer.sent)

	mailer = &stubMailer{err: errors.New("smtp down")}
	sent, err = NewNotificationService(mailer, "").NotifyOrderPlaced(user, orders)
	assert.Error(t, err)
	assert.False(t, sent)
}
