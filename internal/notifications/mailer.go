package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"ticketly/internal/shared/config"
	"ticketly/pkg/logger"
)

// Mailer delivers one rendered notification.
type Mailer interface {
	Send(ctx context.Context, notification *EmailNotification) error
}

// SMTPMailer delivers notifications over plain SMTP.
type SMTPMailer struct {
	cfg config.EmailConfig
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, notification *EmailNotification) error {
	body := renderBody(notification)

	msg := strings.Join([]string{
		"From: " + m.cfg.FromEmail,
		"To: " + notification.RecipientEmail,
		"Subject: " + notification.Subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)

	return smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{notification.RecipientEmail}, []byte(msg))
}

// LogMailer is the fallback when SMTP is not configured: it logs the message
// instead of delivering it, so local environments work without a mail server.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer() *LogMailer {
	return &LogMailer{logger: logger.GetDefault()}
}

func (m *LogMailer) Send(ctx context.Context, notification *EmailNotification) error {
	m.logger.InfoContext(ctx, "notification (log delivery)",
		slog.String("type", string(notification.Type)),
		slog.String("recipient", notification.RecipientEmail),
		slog.String("subject", notification.Subject),
	)
	return nil
}

func renderBody(notification *EmailNotification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", notification.RecipientName)

	switch notification.Type {
	case TypeOrderConfirmation:
		fmt.Fprintf(&b, "Your order %v for %v is confirmed.\n", notification.TemplateData["order_reference"], notification.TemplateData["event_name"])
		fmt.Fprintf(&b, "Tickets: %v\nTotal charged: %v %v\n", notification.TemplateData["quantity"], notification.TemplateData["total_charged"], notification.TemplateData["currency_code"])
	case TypeSaleNotice:
		fmt.Fprintf(&b, "You sold %v ticket(s) for %v (order %v).\n", notification.TemplateData["quantity"], notification.TemplateData["event_name"], notification.TemplateData["order_reference"])
		fmt.Fprintf(&b, "Net payout: %v %v\n", notification.TemplateData["seller_net"], notification.TemplateData["currency_code"])
	default:
		fmt.Fprintf(&b, "Update on order %v for %v.\n", notification.TemplateData["order_reference"], notification.TemplateData["event_name"])
	}

	b.WriteString("\n— The Ticketly team\n")
	return b.String()
}
