package services

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/utils"
)

// ReconcileResult counts the corrections of one repair pass.
type ReconcileResult struct {
	Cleared int64 `json:"cleared"` // flagged booked but not held by a confirmed booking
	Flagged int64 `json:"flagged"` // held by a confirmed booking but not flagged
}

// ReconcileService realigns seat availability flags with the bookings that
// actually hold them. A seat is truly booked iff referenced by a Confirmed
// booking; Cancelled bookings never hold seats. The pass is pure repair: it
// never creates or deletes bookings.
type ReconcileService struct {
	DB        *sql.DB
	RequestID string
}

func (s ReconcileService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Run executes one repair pass in a single transaction, so readers never
// observe a half-repaired store. On any error the whole batch rolls back.
func (s ReconcileService) Run(ctx context.Context) (ReconcileResult, error) {
	var out ReconcileResult

	utils.LogEvent(s.RequestID, "reconcile", "start", "")

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE seats SET is_booked = 0
		WHERE is_booked = 1
		  AND id NOT IN (
			SELECT bs.seat_id FROM booking_seats bs
			JOIN bookings b ON b.id = bs.booking_id
			WHERE b.status = 'Confirmed'
		  )
	`)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.Cleared, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, `
		UPDATE seats SET is_booked = 1
		WHERE is_booked = 0
		  AND id IN (
			SELECT bs.seat_id FROM booking_seats bs
			JOIN bookings b ON b.id = bs.booking_id
			WHERE b.status = 'Confirmed'
		  )
	`)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.Flagged, _ = res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return ReconcileResult{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "reconcile", "done",
		fmt.Sprintf("cleared=%d flagged=%d", out.Cleared, out.Flagged))
	return out, nil
}
