package repositories

import (
	"context"
	"database/sql"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
		SELECT id, reference, user_id, route_id, booking_date, total_fare_cents, status
		FROM bookings WHERE id = ?
	`, id).Scan(&b.ID, &b.Reference, &b.UserID, &b.RouteID, &b.BookingDate, &b.TotalFareCents, &b.Status)
	return b, err
}

// GetForUpdate re-reads a booking inside a transaction with a row lock, so
// concurrent cancels serialize on the booking row.
func (r BookingRepo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (models.Booking, error) {
	var b models.Booking
	err := tx.QueryRowContext(ctx, `
		SELECT id, reference, user_id, route_id, booking_date, total_fare_cents, status
		FROM bookings WHERE id = ? FOR UPDATE
	`, id).Scan(&b.ID, &b.Reference, &b.UserID, &b.RouteID, &b.BookingDate, &b.TotalFareCents, &b.Status)
	return b, err
}

func (r BookingRepo) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT id, reference, user_id, route_id, booking_date, total_fare_cents, status
		FROM bookings WHERE user_id = ? ORDER BY booking_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.RouteID, &b.BookingDate, &b.TotalFareCents, &b.Status); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Insert creates the booking row inside the commit transaction.
func (r BookingRepo) Insert(ctx context.Context, tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (reference, user_id, route_id, total_fare_cents, status)
		VALUES (?, ?, ?, ?, ?)
	`, b.Reference, b.UserID, b.RouteID, b.TotalFareCents, b.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepo) InsertPassenger(ctx context.Context, tx *sql.Tx, bookingID int64, p models.PassengerInput) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO passengers (booking_id, name, age, gender) VALUES (?, ?, ?, ?)
	`, bookingID, p.Name, p.Age, p.Gender)
	return err
}

func (r BookingRepo) InsertBookingSeat(ctx context.Context, tx *sql.Tx, bookingID, seatID int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO booking_seats (booking_id, seat_id) VALUES (?, ?)
	`, bookingID, seatID)
	return err
}

func (r BookingRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, id int64, status string) error {
	_, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r BookingRepo) ListSeats(bookingID int64) ([]models.Seat, error) {
	rows, err := r.db().Query(`
		SELECT s.id, s.bus_id, s.seat_number, s.is_booked
		FROM booking_seats bs
		JOIN seats s ON s.id = bs.seat_id
		WHERE bs.booking_id = ?
		ORDER BY s.id ASC
	`, bookingID)
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

func (r BookingRepo) ListPassengers(bookingID int64) ([]models.Passenger, error) {
	rows, err := r.db().Query(`
		SELECT id, booking_id, name, age, gender
		FROM passengers WHERE booking_id = ? ORDER BY id ASC
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.Gender); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
