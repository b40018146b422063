//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestMinutesPgtime(t *testing.T) {
	for _, minutes := range []int{0, 90, 1439, 1440} {
		pt := pgconv.MinutesToPgtime(minutes)
		assert.True(t, pt.Valid)
		assert.Equal(t, minutes, pgconv.MinutesFromPgtime(pt))
	}
}

func TestDateToPgtype_DropsClock(t *testing.T) {
	loc := time.FixedZone("CLT", -3*60*60)
	pd := pgconv.DateToPgtype(time.Date(2025, 3, 9, 22, 30, 0, 0, loc))

	got, ok := pgconv.DateFromPgtype(pd)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-09", got.Format("2006-01-02"))
}

func TestUUIDPtr(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	assert.Equal(t, &id, got)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(fmt.Errorf("other")))
}
