package service

import (
	"fmt"
	"strings"

	"github.com/dujiao-next/estore/internal/models"
)

// OrderMailer 发送订单邮件
type OrderMailer interface {
	Enabled() bool
	SendText(toEmail, subject, body string) error
}

// NotificationService 下单通知服务
type NotificationService struct {
	mailer     OrderMailer
	subjectFmt string
}

// NewNotificationService 创建通知服务
func NewNotificationService(mailer OrderMailer, subjectFmt string) *NotificationService {
	if strings.TrimSpace(subjectFmt) == "" {
		subjectFmt = "Order confirmation #%d"
	}
	return &NotificationService{mailer: mailer, subjectFmt: subjectFmt}
}

// NotifyOrderPlaced 发送下单确认邮件，未配置 SMTP 时跳过并返回 false
func (s *NotificationService) NotifyOrderPlaced(user *models.User, orders []models.Order) (bool, error) {
	if s == nil || s.mailer == nil || !s.mailer.Enabled() {
		return false, nil
	}
	if user == nil || len(orders) == 0 {
		return false, nil
	}
	subject, body := BuildOrderPlacedEmail(s.subjectFmt, user, orders)
	if err := s.mailer.SendText(user.Email, subject, body); err != nil {
		return false, err
	}
	return true, nil
}

// BuildOrderPlacedEmail 组装下单确认邮件
func BuildOrderPlacedEmail(subjectFmt string, user *models.User, orders []models.Order) (string, string) {
	subject := fmt.Sprintf(subjectFmt, orders[0].ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for your order. We received the following items:\n\n", user.Username)
	total := models.ZeroMoney()
	for i := range orders {
		order := &orders[i]
		title := fmt.Sprintf("product #%d", order.ProductID)
		if order.Product != nil {
			title = order.Product.Title
		}
		fmt.Fprintf(&b, "  #%d  %s x %d  %s\n", order.ID, title, order.Quantity, order.Total().String())
		total = total.Add(order.Total())
	}
	fmt.Fprintf(&b, "\nItems total: %s\n", total.String())
	if addr := orders[0].Address; addr != nil {
		fmt.Fprintf(&b, "Ship to: %s, %s, %s (%s)\n", addr.StreetAddress, addr.City, addr.State, addr.Location)
	}
	b.WriteString("\nAll orders start as Pending. We will let you know when they ship.\n")
	return subject, b.String()
}
