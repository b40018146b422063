//go:build unit

package repository_test

import (
	"context"
	"testing"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/tests/common/builder"
	repositorymock "court-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func buildReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	h := builder.NewHoldBuilder().BuildDomain()
	res, err := reservation.NewFactory().FromHold(h, builder.NewVenueBuilder().BuildComplex())
	require.NoError(t, err)
	return res
}

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: reservation persisted"},
		{
			name:          "error: overlapping active reservation",
			queryErr:      &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name:          "error: code already taken",
			queryErr:      &pgconn.PgError{Code: "23505", ConstraintName: "reservations_code_key"},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			res := buildReservation(t)
			mockQueries.EXPECT().CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, "ABC123", arg.Code)
					assert.Equal(t, res.TotalPrice(), arg.TotalPrice)
					return tc.queryErr
				})

			err := repo.Create(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_CodeExists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries)

	mockQueries.EXPECT().ReservationCodeExists(ctx, mockDB, "ABC123").Return(true, nil)

	exists, err := repo.CodeExists(ctx, mockDB, reservation.Code("ABC123"))

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		expectedError bool
	}{
		{name: "success: status written", affected: 1},
		{name: "error: reservation missing", affected: 0, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			res := buildReservation(t)
			require.NoError(t, res.MarkRefunded())
			mockQueries.EXPECT().UpdateReservationStatus(ctx, mockDB, sqlc.UpdateReservationStatusParams{
				ID:            res.ID(),
				Status:        res.Status().String(),
				PaymentStatus: "refunded",
			}).Return(tc.affected, nil)

			err := repo.UpdateStatus(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
