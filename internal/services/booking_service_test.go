package services

import (
	"context"
	"testing"
	"time"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingServiceForTest(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	svc := BookingService{
		BookingRepo: repositories.BookingRepo{DB: db},
		SeatRepo:    repositories.SeatRepo{DB: db},
		RouteRepo:   repositories.RouteRepo{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func testReservation(seatIDs ...int64) *models.Reservation {
	seats := make([]models.Seat, 0, len(seatIDs))
	passengers := make([]models.PassengerInput, 0, len(seatIDs))
	for i, id := range seatIDs {
		seats = append(seats, models.Seat{ID: id, BusID: 5, SeatNumber: "1"})
		passengers = append(passengers, models.PassengerInput{Name: "Asha", Age: 30 + i, Gender: models.GenderFemale})
	}
	return &models.Reservation{
		Route:      models.Route{ID: 1, BusID: 5, FareCents: 25000},
		Seats:      seats,
		Passengers: passengers,
	}
}

var bookingColumns = []string{"id", "reference", "user_id", "route_id", "booking_date", "total_fare_cents", "status"}

func TestCreateBookingCommitsAtomically(t *testing.T) {
	svc, mock, done := bookingServiceForTest(t)
	defer done()

	lockRows := sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM seats WHERE id IN").WithArgs(int64(1), int64(2)).WillReturnRows(lockRows)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), int64(7), int64(1), int64(50000), models.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO passengers").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO passengers").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO booking_seats").WithArgs(int64(10), int64(1)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_seats").WithArgs(int64(10), int64(2)).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE seats SET is_booked = 1").WithArgs(int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	now := time.Now()
	mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(10, "ref-abc", 7, 1, now, 50000, models.BookingConfirmed))
	mock.ExpectQuery("FROM routes r").WithArgs(int64(1)).WillReturnRows(routeRow(1, 5))
	mock.ExpectQuery("FROM booking_seats bs").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(seatColumns).
			AddRow(1, 5, "1", true).
			AddRow(2, 5, "2", true))
	mock.ExpectQuery("FROM passengers WHERE booking_id =").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "name", "age", "gender"}).
			AddRow(1, 10, "Asha", 30, models.GenderFemale).
			AddRow(2, 10, "Asha", 31, models.GenderFemale))

	booking, err := svc.Create(context.Background(), 7, testReservation(1, 2), 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, int64(50000), booking.TotalFareCents)
	assert.Len(t, booking.Seats, 2)
	assert.Len(t, booking.Passengers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingLostRaceRollsBack(t *testing.T) {
	svc, mock, done := bookingServiceForTest(t)
	defer done()

	// Seat 2 was taken between validation and commit: the lock only
	// returns seat 1 and the whole booking must abort.
	mock.ExpectBegin()
	mock.ExpectQuery("FROM seats WHERE id IN").WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 7, testReservation(1, 2), 50000)
	assert.Equal(t, domain.KindSeatNoLongerAvailable, domain.ErrKind(err))
	assert.Equal(t, []int64{2}, domain.OffendingSeats(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingInvalidFare(t *testing.T) {
	svc, mock, done := bookingServiceForTest(t)
	defer done()

	for _, fare := range []int64{0, -100} {
		_, err := svc.Create(context.Background(), 7, testReservation(1), fare)
		assert.Equal(t, domain.KindInvalidFare, domain.ErrKind(err))
	}
	// A bad fare is rejected before any statement runs.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingReleasesSeats(t *testing.T) {
	svc, mock, done := bookingServiceForTest(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(10, "ref-abc", 7, 1, time.Now(), 50000, models.BookingConfirmed))
	mock.ExpectExec("UPDATE bookings SET status =").WithArgs(models.BookingCancelled, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE seats SET is_booked = 0").WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := svc.Cancel(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingNotCancellable(t *testing.T) {
	cases := []struct {
		name   string
		userID int64
		status string
	}{
		{"already cancelled", 7, models.BookingCancelled},
		{"not the owner", 8, models.BookingConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mock, done := bookingServiceForTest(t)
			defer done()

			mock.ExpectBegin()
			mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(int64(10)).
				WillReturnRows(sqlmock.NewRows(bookingColumns).
					AddRow(10, "ref-abc", 7, 1, time.Now(), 50000, tc.status))
			mock.ExpectRollback()

			err := svc.Cancel(context.Background(), tc.userID, 10)
			assert.Equal(t, domain.KindNotCancellable, domain.ErrKind(err))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	svc, mock, done := bookingServiceForTest(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectRollback()

	err := svc.Cancel(context.Background(), 7, 404)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
