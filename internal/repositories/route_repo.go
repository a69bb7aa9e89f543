package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
)

type RouteRepo struct {
	DB *sql.DB
}

func (r RouteRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const routeSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.bus_id,
	       r.departure_time, r.arrival_time, r.fare_cents,
	       s.id, s.name,
	       d.id, d.name,
	       b.id, b.operator_id, b.bus_number, b.bus_type, b.total_seats, b.rating,
	       o.id, o.name, o.contact_email, o.phone
	FROM routes r
	JOIN cities s ON s.id = r.source_id
	JOIN cities d ON d.id = r.destination_id
	JOIN buses b ON b.id = r.bus_id
	JOIN operators o ON o.id = b.operator_id`

func scanRoute(row interface{ Scan(...any) error }) (models.Route, error) {
	var rt models.Route
	var src, dst models.City
	var bus models.Bus
	var op models.Operator
	err := row.Scan(
		&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.BusID,
		&rt.DepartureTime, &rt.ArrivalTime, &rt.FareCents,
		&src.ID, &src.Name,
		&dst.ID, &dst.Name,
		&bus.ID, &bus.OperatorID, &bus.BusNumber, &bus.BusType, &bus.TotalSeats, &bus.Rating,
		&op.ID, &op.Name, &op.ContactEmail, &op.Phone,
	)
	if err != nil {
		return rt, err
	}
	bus.Operator = &op
	rt.Source = &src
	rt.Destination = &dst
	rt.Bus = &bus
	return rt, nil
}

// RouteFilter narrows the listing; zero values mean "any".
type RouteFilter struct {
	SourceID      int64
	DestinationID int64
	Date          time.Time
}

func (r RouteRepo) List(f RouteFilter) ([]models.Route, error) {
	conds := []string{}
	args := []any{}
	if f.SourceID > 0 {
		conds = append(conds, "r.source_id = ?")
		args = append(args, f.SourceID)
	}
	if f.DestinationID > 0 {
		conds = append(conds, "r.destination_id = ?")
		args = append(args, f.DestinationID)
	}
	if !f.Date.IsZero() {
		conds = append(conds, "DATE(r.departure_time) = ?")
		args = append(args, f.Date.Format("2006-01-02"))
	}

	query := routeSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r.departure_time ASC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RouteRepo) GetByID(id int64) (models.Route, error) {
	return scanRoute(r.db().QueryRow(routeSelect+` WHERE r.id = ?`, id))
}

func (r RouteRepo) Create(rt models.Route) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO routes (source_id, destination_id, bus_id, departure_time, arrival_time, fare_cents)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rt.SourceID, rt.DestinationID, rt.BusID, rt.DepartureTime, rt.ArrivalTime, rt.FareCents)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RouteRepo) Update(id int64, rt models.Route) error {
	_, err := r.db().Exec(`
		UPDATE routes
		SET source_id = ?, destination_id = ?, bus_id = ?, departure_time = ?, arrival_time = ?, fare_cents = ?
		WHERE id = ?
	`, rt.SourceID, rt.DestinationID, rt.BusID, rt.DepartureTime, rt.ArrivalTime, rt.FareCents, id)
	return err
}

func (r RouteRepo) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM routes WHERE id = ?`, id)
	return err
}
