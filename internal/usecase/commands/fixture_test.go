//go:build unit

package commands_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/commands"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/memstore"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store      *memstore.Store
	clock      *clock.MockClock
	venue      *builder.VenueBuilder
	gateway    *sharedmock.MockPaymentGateway
	dispatcher *sharedmock.MockNotificationDispatcher
	cache      *sharedmock.MockAvailabilityCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:      memstore.New(),
		clock:      clock.NewMockClock(testNow),
		venue:      builder.NewVenueBuilder(),
		gateway:    sharedmock.NewMockPaymentGateway(ctrl),
		dispatcher: sharedmock.NewMockNotificationDispatcher(ctrl),
		cache:      sharedmock.NewMockAvailabilityCache(ctrl),
	}
	f.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.store.AddComplex(f.venue.BuildComplex())
	f.store.AddCourt(f.venue.BuildCourt())
	return f
}

func (f *fixture) holds() commands.HoldCommands {
	return commands.NewHoldUseCase(f.store, f.cache, hold.DefaultPolicy(), f.clock)
}

// addCourt registers another court of the same complex.
func (f *fixture) addCourt() uuid.UUID {
	court := builder.NewVenueBuilder().With(func(v *builder.VenueBuilder) {
		v.ComplexID = f.venue.ComplexID
		v.CourtName = "Cancha " + uuid.NewString()[:4]
	})
	f.store.AddCourt(court.BuildCourt())
	return court.CourtID
}

func (f *fixture) holdRequest(start, end string) commands.CreateHoldRequest {
	date, _ := slot.ParseDate("2025-03-10")
	interval, err := slot.ParseInterval(start, end)
	if err != nil {
		panic(err)
	}
	return commands.CreateHoldRequest{
		ResourceID: f.venue.CourtID,
		Date:       date,
		Interval:   interval,
		SessionID:  "session-1",
		Customer: commands.CustomerInput{
			Name:  "Ana Rojas",
			Email: "ana@example.com",
			Phone: "+56911112222",
		},
		PaidPercentage: 100,
	}
}

func reservationFromHold(h *hold.Hold, f *fixture) (*reservation.Reservation, error) {
	return reservation.NewFactory().FromHold(h, f.venue.BuildComplex())
}
