//go:build unit

package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/infra/events"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type captured struct {
	addr string
	from string
	to   []string
	body string
}

func testMailer(cfg config.MailConfig, sent *[]captured, fail error) *SMTPMailer {
	m := NewSMTPMailer(cfg)
	m.now = func() time.Time { return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC) }
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if fail != nil {
			return fail
		}
		*sent = append(*sent, captured{addr: addr, from: from, to: to, body: string(msg)})
		return nil
	}
	return m
}

func testNotice() shared.ReservationNotice {
	return shared.ReservationNotice{
		Code:           "ABC123",
		ResourceID:     uuid.New(),
		CourtName:      "Cancha 1",
		Date:           slot.Date("2025-03-10"),
		StartTime:      "18:00",
		EndTime:        "19:00",
		CustomerName:   "Ana",
		CustomerEmail:  "ana@example.com",
		Origin:         "direct",
		TotalPrice:     20700,
		PaidOnline:     10350,
		PendingAtVenue: 10350,
	}
}

var enabledMail = config.MailConfig{Host: "smtp.example.com", Port: "587", From: "reservas@example.com"}

func TestDispatcher_SendConfirmation(t *testing.T) {
	var sent []captured
	pub := &recordingPublisher{}
	d := NewDispatcher(testMailer(enabledMail, &sent, nil), pub, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	delivery, err := d.SendConfirmation(context.Background(), testNotice())

	require.NoError(t, err)
	assert.True(t, delivery.Delivered)
	require.Len(t, sent, 1)
	assert.Equal(t, "smtp.example.com:587", sent[0].addr)
	assert.Equal(t, []string{"ana@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].body, "ABC123")
	assert.Contains(t, sent[0].body, "Pendiente en el recinto: $10350")
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeReservationConfirmed, pub.events[0].Type)
	assert.Equal(t, "ABC123", pub.events[0].Key)
}

func TestDispatcher_MailFailureStillPublishes(t *testing.T) {
	var sent []captured
	pub := &recordingPublisher{}
	d := NewDispatcher(testMailer(enabledMail, &sent, errors.New("connection refused")), pub, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	delivery, err := d.SendConfirmation(context.Background(), testNotice())

	require.Error(t, err)
	assert.False(t, delivery.Delivered)
	assert.Len(t, pub.events, 1)
}

func TestDispatcher_MailDisabledIsNotAnError(t *testing.T) {
	var sent []captured
	pub := &recordingPublisher{}
	d := NewDispatcher(testMailer(config.MailConfig{}, &sent, nil), pub, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	delivery, err := d.SendCancellation(context.Background(), testNotice())

	require.NoError(t, err)
	assert.False(t, delivery.Delivered)
	assert.Empty(t, sent)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeReservationCancelled, pub.events[0].Type)
}

func TestDispatcher_PublishFailureReported(t *testing.T) {
	var sent []captured
	pub := &recordingPublisher{err: errors.New("broker down")}
	d := NewDispatcher(testMailer(enabledMail, &sent, nil), pub, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	delivery, err := d.SendConfirmation(context.Background(), testNotice())

	require.Error(t, err)
	assert.True(t, delivery.Delivered)
}

func TestSMTPMailer_Headers(t *testing.T) {
	var sent []captured
	m := testMailer(enabledMail, &sent, nil)

	require.NoError(t, m.Send(context.Background(), Message{To: "ana@example.com", Subject: "Reserva confirmada", Body: "a\nb"}))

	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0].body, "From: reservas@example.com\r\n"))
	assert.Contains(t, sent[0].body, "Content-Type: text/plain; charset=UTF-8")
	assert.True(t, strings.HasSuffix(sent[0].body, "a\r\nb"))
}
