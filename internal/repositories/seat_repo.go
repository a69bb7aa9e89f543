package repositories

import (
	"context"
	"database/sql"
	"strings"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
)

type SeatRepo struct {
	DB *sql.DB
}

func (r SeatRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []int64) []any {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}

func (r SeatRepo) ListByBus(busID int64, onlyAvailable bool) ([]models.Seat, error) {
	query := `SELECT id, bus_id, seat_number, is_booked FROM seats WHERE bus_id = ?`
	if onlyAvailable {
		query += ` AND is_booked = 0`
	}
	query += ` ORDER BY CAST(seat_number AS UNSIGNED), seat_number`

	rows, err := r.db().Query(query, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.BusID, &s.SeatNumber, &s.IsBooked); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByIDs resolves seat rows for the requested ids. Missing ids simply do
// not appear in the result; the caller decides whether that is an error.
func (r SeatRepo) GetByIDs(ids []int64) ([]models.Seat, error) {
	if len(ids) == 0 {
		return []models.Seat{}, nil
	}
	rows, err := r.db().Query(
		`SELECT id, bus_id, seat_number, is_booked FROM seats WHERE id IN (`+placeholders(len(ids))+`)`,
		idArgs(ids)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.BusID, &s.SeatNumber, &s.IsBooked); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// LockAvailable row-locks the requested seats that are still free and
// returns their ids. Must run inside a transaction; the lock is what makes
// the availability re-check binding under concurrent commits.
func (r SeatRepo) LockAvailable(ctx context.Context, tx *sql.Tx, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM seats WHERE id IN (`+placeholders(len(ids))+`) AND is_booked = 0 FOR UPDATE`,
		idArgs(ids)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r SeatRepo) MarkBooked(ctx context.Context, tx *sql.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		`UPDATE seats SET is_booked = 1 WHERE id IN (`+placeholders(len(ids))+`)`,
		idArgs(ids)...,
	)
	return err
}

// ReleaseByBooking frees every seat held by the given booking.
func (r SeatRepo) ReleaseByBooking(ctx context.Context, tx *sql.Tx, bookingID int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE seats SET is_booked = 0
		WHERE id IN (SELECT seat_id FROM booking_seats WHERE booking_id = ?)
	`, bookingID)
	return err
}
