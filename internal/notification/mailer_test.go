package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yourorg/pitchpoint/internal/domain"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	from string
	to   string
	msg  *gomail.Message
	err  error
}

func (r *recordingSender) Send(from, to string, msg *gomail.Message) error {
	r.from = from
	r.to = to
	r.msg = msg
	return r.err
}

func TestSendReservationConfirmation(t *testing.T) {
	sender := &recordingSender{}
	m := NewMailerWithSender(sender, "Startup Events <no-reply@pitchpoint.io>", nil)

	if err := m.SendReservationConfirmation(context.Background(), "Jane", "jane@example.com"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if sender.to != "jane@example.com" {
		t.Fatalf("unexpected recipient: %q", sender.to)
	}
	if got := sender.msg.GetHeader("Subject"); len(got) != 1 || got[0] != "Your Spot is Reserved!" {
		t.Fatalf("unexpected subject: %v", got)
	}
	if got := sender.msg.GetHeader("To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Fatalf("unexpected To header: %v", got)
	}
}

func TestSendReservationConfirmationEscapesName(t *testing.T) {
	body := reservationBody(`<script>alert("x")</script>`)
	if strings.Contains(body, "<script>") {
		t.Fatalf("guest name must be HTML-escaped, got %q", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatalf("expected escaped name in body, got %q", body)
	}
}

func TestSendReservationConfirmationDeliveryFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp: connection refused")}
	m := NewMailerWithSender(sender, "no-reply@pitchpoint.io", nil)

	err := m.SendReservationConfirmation(context.Background(), "Jane", "jane@example.com")
	var delivery *domain.DeliveryError
	if !errors.As(err, &delivery) {
		t.Fatalf("expected delivery error, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}
