package notify

import (
	"context"
	"errors"
	"log/slog"
	"text/template"

	"court-booking/internal/infra/events"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Dispatcher fans a notice out to the customer's email and the event
// broker. Delivered reports whether the email was accepted.
type Dispatcher struct {
	mailer    Mailer
	publisher events.Publisher
	clk       clock.Clock
	logger    *slog.Logger
}

func NewDispatcher(mailer Mailer, publisher events.Publisher, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:    mailer,
		publisher: publisher,
		clk:       clk,
		logger:    logger,
	}
}

var _ shared.NotificationDispatcher = (*Dispatcher)(nil)

type reservationPayload struct {
	Code           string    `json:"code"`
	ResourceID     uuid.UUID `json:"resourceId"`
	CourtName      string    `json:"courtName"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail,omitempty"`
	Origin         string    `json:"origin"`
	TotalPrice     int64     `json:"totalPrice"`
	PaidOnline     int64     `json:"paidOnline"`
	PendingAtVenue int64     `json:"pendingAtVenue"`
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, notice shared.ReservationNotice) (shared.Delivery, error) {
	return d.dispatch(ctx, notice, events.TypeReservationConfirmed, "Reserva confirmada "+notice.Code, confirmationTmpl)
}

func (d *Dispatcher) SendCancellation(ctx context.Context, notice shared.ReservationNotice) (shared.Delivery, error) {
	return d.dispatch(ctx, notice, events.TypeReservationCancelled, "Reserva cancelada "+notice.Code, cancellationTmpl)
}

func (d *Dispatcher) dispatch(
	ctx context.Context,
	notice shared.ReservationNotice,
	eventType, subject string,
	tmpl *template.Template,
) (shared.Delivery, error) {
	var delivery shared.Delivery
	var failures []error

	if notice.CustomerEmail != "" {
		err := d.sendMail(ctx, notice, subject, tmpl)
		switch {
		case err == nil:
			delivery.Delivered = true
		case errors.Is(err, ErrMailDisabled):
			d.logger.Debug("mail disabled, skipping notice", "reservation_code", notice.Code)
		default:
			failures = append(failures, err)
		}
	}

	if err := d.publish(ctx, eventType, notice); err != nil {
		d.logger.Warn("event publish failed", "type", eventType, "reservation_code", notice.Code, "error", err)
		failures = append(failures, err)
	}

	return delivery, errors.Join(failures...)
}

func (d *Dispatcher) sendMail(ctx context.Context, notice shared.ReservationNotice, subject string, tmpl *template.Template) error {
	body, err := render(tmpl, notice)
	if err != nil {
		return errs.Wrap(err, "render notice")
	}
	return d.mailer.Send(ctx, Message{To: notice.CustomerEmail, Subject: subject, Body: body})
}

func (d *Dispatcher) publish(ctx context.Context, eventType string, notice shared.ReservationNotice) error {
	payload := reservationPayload{
		Code:           notice.Code,
		ResourceID:     notice.ResourceID,
		CourtName:      notice.CourtName,
		Date:           notice.Date.String(),
		StartTime:      notice.StartTime,
		EndTime:        notice.EndTime,
		CustomerName:   notice.CustomerName,
		CustomerEmail:  notice.CustomerEmail,
		Origin:         notice.Origin,
		TotalPrice:     notice.TotalPrice,
		PaidOnline:     notice.PaidOnline,
		PendingAtVenue: notice.PendingAtVenue,
	}
	e, err := events.NewEvent(eventType, notice.Code, d.clk.Now(), payload)
	if err != nil {
		return errs.Wrap(err, "build event")
	}
	return d.publisher.Publish(ctx, e)
}
