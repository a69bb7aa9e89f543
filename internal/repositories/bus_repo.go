package repositories

import (
	"database/sql"
	"fmt"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
)

type BusRepo struct {
	DB *sql.DB
}

func (r BusRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const busSelect = `
	SELECT b.id, b.operator_id, b.bus_number, b.bus_type, b.total_seats, b.rating,
	       o.id, o.name, o.contact_email, o.phone
	FROM buses b
	JOIN operators o ON o.id = b.operator_id`

func scanBus(row interface{ Scan(...any) error }) (models.Bus, error) {
	var b models.Bus
	var o models.Operator
	err := row.Scan(
		&b.ID, &b.OperatorID, &b.BusNumber, &b.BusType, &b.TotalSeats, &b.Rating,
		&o.ID, &o.Name, &o.ContactEmail, &o.Phone,
	)
	if err != nil {
		return b, err
	}
	b.Operator = &o
	return b, nil
}

func (r BusRepo) List() ([]models.Bus, error) {
	rows, err := r.db().Query(busSelect + ` ORDER BY b.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepo) GetByID(id int64) (models.Bus, error) {
	return scanBus(r.db().QueryRow(busSelect+` WHERE b.id = ?`, id))
}

// Create inserts a bus and one seat row per total_seats (1..N) in a single
// transaction, so a bus is never observable without its seat inventory.
func (r BusRepo) Create(b models.Bus) (int64, error) {
	if b.TotalSeats <= 0 {
		return 0, fmt.Errorf("total_seats must be positive")
	}
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO buses (operator_id, bus_number, bus_type, total_seats, rating)
		VALUES (?, ?, ?, ?, ?)
	`, b.OperatorID, b.BusNumber, b.BusType, b.TotalSeats, b.Rating)
	if err != nil {
		return 0, err
	}
	busID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for n := 1; n <= b.TotalSeats; n++ {
		if _, err := tx.Exec(`
			INSERT INTO seats (bus_id, seat_number, is_booked) VALUES (?, ?, 0)
		`, busID, fmt.Sprintf("%d", n)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return busID, nil
}

func (r BusRepo) Update(id int64, b models.Bus) error {
	_, err := r.db().Exec(`
		UPDATE buses SET operator_id = ?, bus_number = ?, bus_type = ?, rating = ?
		WHERE id = ?
	`, b.OperatorID, b.BusNumber, b.BusType, b.Rating, id)
	return err
}

func (r BusRepo) Delete(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM seats WHERE bus_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM buses WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
