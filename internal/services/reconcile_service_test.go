package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconcileForTest(t *testing.T) (ReconcileService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return ReconcileService{DB: db}, mock, func() { db.Close() }
}

func TestReconcileConsistentStoreIsNoop(t *testing.T) {
	svc, mock, done := reconcileForTest(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE seats SET is_booked = 0").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE seats SET is_booked = 1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReconcileResult{}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileRepairsBothDirections(t *testing.T) {
	svc, mock, done := reconcileForTest(t)
	defer done()

	// Two stray flags from a crashed cancel, one flag missing after a
	// crashed commit.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE seats SET is_booked = 0").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE seats SET is_booked = 1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReconcileResult{Cleared: 2, Flagged: 1}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileHonorsContextDeadline(t *testing.T) {
	svc, mock, done := reconcileForTest(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE seats SET is_booked = 0").
		WillDelayFor(500 * time.Millisecond).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Run(ctx)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReconcileErrorAbortsBatch(t *testing.T) {
	svc, mock, done := reconcileForTest(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE seats SET is_booked = 0").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE seats SET is_booked = 1").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err := svc.Run(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
