package notification

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/yourorg/pitchpoint/internal/domain"
	"github.com/yourorg/pitchpoint/internal/observability/metrics"
	"gopkg.in/gomail.v2"
)

// Sender dispatches a composed message. The SMTP dialer implements it;
// tests substitute a recorder.
type Sender interface {
	Send(from string, to string, msg *gomail.Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

func (s *smtpSender) Send(from, to string, msg *gomail.Message) error {
	return s.dialer.DialAndSend(msg)
}

// Mailer is the notification gateway for reservation confirmations.
// Delivery failures are propagated to the caller, not swallowed.
type Mailer struct {
	sender Sender
	from   string
	logger *slog.Logger
}

// NewMailer creates a mailer backed by an SMTP dialer.
func NewMailer(host string, port int, username, password, from string, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Mailer{
		sender: &smtpSender{dialer: gomail.NewDialer(host, port, username, password)},
		from:   from,
		logger: logger,
	}
}

// NewMailerWithSender creates a mailer with a custom sender, for tests.
func NewMailerWithSender(sender Sender, from string, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Mailer{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// SendReservationConfirmation emails the guest that their event spot is
// reserved. Returns a DeliveryError when the provider rejects the message.
func (m *Mailer) SendReservationConfirmation(ctx context.Context, name, email string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your Spot is Reserved!")
	msg.SetBody("text/html", reservationBody(name))

	if err := m.sender.Send(m.from, email, msg); err != nil {
		m.logger.Error("reservation email delivery failed",
			slog.String("to", email),
			slog.String("error", err.Error()),
		)
		metrics.ObserveEmail("error")
		return &domain.DeliveryError{Err: err}
	}

	metrics.ObserveEmail("success")
	m.logger.Info("reservation email sent", slog.String("to", email))
	return nil
}

func reservationBody(name string) string {
	return fmt.Sprintf("<h2>Hello %s</h2><p>Your spot is confirmed. See you at the event!</p>", html.EscapeString(name))
}
