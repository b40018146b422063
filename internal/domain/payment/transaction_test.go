//go:build unit

package payment_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(t *testing.T) *payment.Transaction {
	t.Helper()
	tx, err := payment.NewTransaction("tok-1", "ORD12345678", "sess-1", 10350, uuid.New(), "AB12CD")
	require.NoError(t, err)
	return tx
}

func TestTransitions(t *testing.T) {
	testCases := []struct {
		from, to payment.Status
		allowed  bool
	}{
		{payment.StatusPending, payment.StatusApproved, true},
		{payment.StatusPending, payment.StatusFailed, true},
		{payment.StatusApproved, payment.StatusRefunded, true},
		{payment.StatusPending, payment.StatusRefunded, false},
		{payment.StatusApproved, payment.StatusFailed, false},
		{payment.StatusFailed, payment.StatusApproved, false},
		{payment.StatusRefunded, payment.StatusApproved, false},
		{payment.StatusApproved, payment.StatusApproved, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, payment.CanTransition(tc.from, tc.to))
		})
	}
}

func TestTransaction(t *testing.T) {
	t.Run("approve then refund", func(t *testing.T) {
		tx := newTx(t)
		require.NoError(t, tx.Approve(payment.Authorization{AuthorizationCode: "1213"}))
		assert.Equal(t, payment.StatusApproved, tx.Status())
		assert.Equal(t, "1213", tx.Authorization().AuthorizationCode)

		require.NoError(t, tx.Refund())
		assert.Equal(t, payment.StatusRefunded, tx.Status())
	})

	t.Run("failed is terminal", func(t *testing.T) {
		tx := newTx(t)
		require.NoError(t, tx.Fail())
		assert.ErrorIs(t, tx.Approve(payment.Authorization{}), payment.ErrInvalidTransition)
		assert.ErrorIs(t, tx.Refund(), payment.ErrInvalidTransition)
		assert.Equal(t, payment.StatusFailed, tx.Status())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := payment.NewTransaction("", "ORD1", "s", 100, uuid.New(), "AB12CD")
		assert.ErrorIs(t, err, payment.ErrEmptyToken)
		_, err = payment.NewTransaction("tok", "ORD1", "s", 0, uuid.New(), "AB12CD")
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1761998400123)
	id := payment.NewOrderID(now)
	assert.Equal(t, "ORD98400123", id)
	assert.LessOrEqual(t, len(id), 26)
}
