package services

import (
	"testing"
	"time"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routeColumns = []string{
	"r.id", "r.source_id", "r.destination_id", "r.bus_id",
	"r.departure_time", "r.arrival_time", "r.fare_cents",
	"s.id", "s.name",
	"d.id", "d.name",
	"b.id", "b.operator_id", "b.bus_number", "b.bus_type", "b.total_seats", "b.rating",
	"o.id", "o.name", "o.contact_email", "o.phone",
}

func routeRow(routeID, busID int64) *sqlmock.Rows {
	dep := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	arr := dep.Add(5 * time.Hour)
	return sqlmock.NewRows(routeColumns).AddRow(
		routeID, 1, 2, busID,
		dep, arr, int64(25000),
		1, "Chennai",
		2, "Bangalore",
		busID, 1, "TN-01-1234", "AC", 3, 4.2,
		1, "Sunrise Travels", "ops@sunrise.example", "9876543210",
	)
}

var seatColumns = []string{"id", "bus_id", "seat_number", "is_booked"}

func guardForTest(t *testing.T) (AvailabilityService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	svc := AvailabilityService{
		RouteRepo: repositories.RouteRepo{DB: db},
		SeatRepo:  repositories.SeatRepo{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func validPassengers(n int) []models.PassengerInput {
	out := make([]models.PassengerInput, 0, n)
	names := []string{"Asha", "Ravi", "Meena"}
	for i := 0; i < n; i++ {
		out = append(out, models.PassengerInput{Name: names[i%len(names)], Age: 30 + i, Gender: models.GenderFemale})
	}
	return out
}

func TestValidateRouteNotFound(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	mock.ExpectQuery("FROM routes r").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(routeColumns))

	_, err := svc.Validate(99, []int64{1}, validPassengers(1))
	assert.Equal(t, domain.KindRouteNotFound, domain.ErrKind(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidatePassengerSeatMismatch(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
		WillReturnRows(routeRow(1, 5))

	_, err := svc.Validate(1, []int64{1, 2}, validPassengers(1))
	assert.Equal(t, domain.KindPassengerSeatMismatch, domain.ErrKind(err))
	// No seat query: validation stops before touching seat inventory.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateInvalidSeatIDs(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
		WillReturnRows(routeRow(1, 5))
	mock.ExpectQuery("FROM seats WHERE id IN").
		WillReturnRows(sqlmock.NewRows(seatColumns).AddRow(1, 5, "1", false))

	_, err := svc.Validate(1, []int64{1, 42, 43}, validPassengers(3))
	assert.Equal(t, domain.KindInvalidSeatID, domain.ErrKind(err))
	assert.Equal(t, []int64{42, 43}, domain.OffendingSeats(err))
}

func TestValidateDuplicateSeatIDs(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	// Requesting the same seat twice must not collapse into a reservation
	// with fewer seats than passengers.
	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
		WillReturnRows(routeRow(1, 5))
	mock.ExpectQuery("FROM seats WHERE id IN").
		WillReturnRows(sqlmock.NewRows(seatColumns).AddRow(1, 5, "1", false))

	_, err := svc.Validate(1, []int64{1, 1}, validPassengers(2))
	assert.Equal(t, domain.KindInvalidSeatID, domain.ErrKind(err))
	assert.Equal(t, []int64{1}, domain.OffendingSeats(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateSeatRouteMismatch(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
		WillReturnRows(routeRow(1, 5))
	mock.ExpectQuery("FROM seats WHERE id IN").
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(1, 5, "1", false).
			AddRow(2, 6, "1", false))

	_, err := svc.Validate(1, []int64{1, 2}, validPassengers(2))
	assert.Equal(t, domain.KindSeatRouteMismatch, domain.ErrKind(err))
	assert.Equal(t, []int64{2}, domain.OffendingSeats(err))
}

func TestValidateSeatAlreadyBooked(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
		WillReturnRows(routeRow(1, 5))
	mock.ExpectQuery("FROM seats WHERE id IN").
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(1, 5, "1", false).
			AddRow(2, 5, "2", true))

	_, err := svc.Validate(1, []int64{1, 2}, validPassengers(2))
	assert.Equal(t, domain.KindSeatAlreadyBooked, domain.ErrKind(err))
	assert.Equal(t, []int64{2}, domain.OffendingSeats(err))
}

func TestValidateInvalidPassenger(t *testing.T) {
	cases := []struct {
		name      string
		passenger models.PassengerInput
	}{
		{"zero age", models.PassengerInput{Name: "Asha", Age: 0, Gender: models.GenderFemale}},
		{"bad gender", models.PassengerInput{Name: "Asha", Age: 30, Gender: "Unknown"}},
		{"missing name", models.PassengerInput{Age: 30, Gender: models.GenderMale}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mock, done := guardForTest(t)
			defer done()

			mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
				WillReturnRows(routeRow(1, 5))
			mock.ExpectQuery("FROM seats WHERE id IN").
				WillReturnRows(sqlmock.NewRows(seatColumns).AddRow(1, 5, "1", false))

			_, err := svc.Validate(1, []int64{1}, []models.PassengerInput{tc.passenger})
			assert.Equal(t, domain.KindInvalidPassenger, domain.ErrKind(err))
		})
	}
}

func TestValidateSuccess(t *testing.T) {
	svc, mock, done := guardForTest(t)
	defer done()

	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).
		WillReturnRows(routeRow(1, 5))
	mock.ExpectQuery("FROM seats WHERE id IN").
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(1, 5, "1", false).
			AddRow(2, 5, "2", false))

	res, err := svc.Validate(1, []int64{1, 2}, validPassengers(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Route.ID)
	assert.Len(t, res.Seats, 2)
	assert.Len(t, res.Passengers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
