package converter

import (
	"encoding/json"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/payment"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
)

func TransactionToCreateParams(t *payment.Transaction) sqlc.CreatePaymentTransactionParams {
	return sqlc.CreatePaymentTransactionParams{
		Token:           t.Token(),
		OrderID:         t.OrderID(),
		SessionID:       t.SessionID(),
		Amount:          t.Amount(),
		Status:          string(t.Status()),
		HoldID:          t.HoldID(),
		ReservationCode: t.ReservationCode(),
	}
}

func TransactionToUpdateParams(t *payment.Transaction, from payment.Status) sqlc.UpdatePaymentTransactionStatusParams {
	auth := t.Authorization()
	return sqlc.UpdatePaymentTransactionStatusParams{
		Token:              t.Token(),
		Status:             string(t.Status()),
		AuthorizationCode:  auth.AuthorizationCode,
		PaymentTypeCode:    auth.PaymentTypeCode,
		ResponseCode:       int32(auth.ResponseCode),       // #nosec G115 -- gateway codes are small
		InstallmentsNumber: int32(auth.InstallmentsNumber), // #nosec G115 -- gateway codes are small
		TransactionDate:    pgconv.TimePtrToPgtype(auth.TransactionDate),
		Status_2:           string(from),
	}
}

func TransactionFromRow(row sqlc.PaymentTransactions) *payment.Transaction {
	return payment.ReconstructTransaction(
		row.Token,
		row.OrderID,
		row.SessionID,
		row.Amount,
		payment.Status(row.Status),
		row.HoldID,
		row.ReservationCode,
		payment.Authorization{
			AuthorizationCode:  row.AuthorizationCode,
			PaymentTypeCode:    row.PaymentTypeCode,
			ResponseCode:       int(row.ResponseCode),
			InstallmentsNumber: int(row.InstallmentsNumber),
			TransactionDate:    pgconv.TimePtrFromPgtype(row.TransactionDate),
		},
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BackupToCreateParams(b *payment.FailureBackup) (sqlc.CreatePaymentBackupParams, error) {
	customer, err := json.Marshal(b.Snapshot)
	if err != nil {
		return sqlc.CreatePaymentBackupParams{}, errs.Wrap(err, "encode customer snapshot")
	}
	start, end := IntervalToPg(b.Interval)
	return sqlc.CreatePaymentBackupParams{
		ID:              b.ID,
		HoldID:          b.HoldID,
		Token:           b.Token,
		ReservationCode: b.ReservationCode,
		Amount:          b.Amount,
		State:           string(b.State),
		Stage:           string(b.Stage),
		ErrorMessage:    b.ErrorMessage,
		Customer:        customer,
		ResourceID:      b.ResourceID,
		Date:            DateToPg(b.Date),
		StartTime:       start,
		EndTime:         end,
		ReservationID:   pgconv.UUIDPtrToPgtype(b.ReservationID),
	}, nil
}

func BackupToUpdateParams(b *payment.FailureBackup) sqlc.UpdatePaymentBackupParams {
	return sqlc.UpdatePaymentBackupParams{
		ID:            b.ID,
		Token:         b.Token,
		Amount:        b.Amount,
		State:         string(b.State),
		Stage:         string(b.Stage),
		ErrorMessage:  b.ErrorMessage,
		ReservationID: pgconv.UUIDPtrToPgtype(b.ReservationID),
	}
}

func BackupFromRow(row sqlc.PaymentFailureBackups) (*payment.FailureBackup, error) {
	s, err := SlotFromPg(row.ResourceID, row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	var snapshot hold.CustomerSnapshot
	if len(row.Customer) > 0 {
		if err := json.Unmarshal(row.Customer, &snapshot); err != nil {
			return nil, errs.Wrap(err, "decode customer snapshot")
		}
	}
	return &payment.FailureBackup{
		ID:              row.ID,
		HoldID:          row.HoldID,
		Token:           row.Token,
		ReservationCode: row.ReservationCode,
		Amount:          row.Amount,
		State:           payment.BackupState(row.State),
		Stage:           payment.Stage(row.Stage),
		ErrorMessage:    row.ErrorMessage,
		Snapshot:        snapshot,
		ResourceID:      s.ResourceID,
		Date:            s.Date,
		Interval:        s.Interval,
		ReservationID:   pgconv.UUIDPtrFromPgtype(row.ReservationID),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
