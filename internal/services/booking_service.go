package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/repositories"
	"busticket/internal/utils"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const mysqlDuplicateEntry = 1062

// BookingService commits validated reservations and cancels bookings. Every
// write path runs inside a single DB transaction; the store's row locks are
// the only cross-request coordination.
type BookingService struct {
	BookingRepo repositories.BookingRepo
	SeatRepo    repositories.SeatRepo
	RouteRepo   repositories.RouteRepo
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Create books the reserved seats for the user. The guard's verdict is
// advisory: the seats are re-queried with FOR UPDATE inside the
// transaction, and any seat taken since validation aborts the whole commit
// with SeatNoLongerAvailable. Nothing is persisted on failure.
func (s BookingService) Create(ctx context.Context, userID int64, res *models.Reservation, fareCents int64) (models.Booking, error) {
	var out models.Booking

	if fareCents <= 0 {
		return out, domain.BookingError{Kind: domain.KindInvalidFare, Msg: "total fare must be a positive amount"}
	}

	seatIDs := make([]int64, 0, len(res.Seats))
	for _, seat := range res.Seats {
		seatIDs = append(seatIDs, seat.ID)
	}

	utils.LogEvent(s.RequestID, "booking", "commit_start",
		fmt.Sprintf("user_id=%d route_id=%d seats=%v", userID, res.Route.ID, seatIDs))

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	// Optimistic re-check: lock the requested seats that are still free.
	// Any shortfall means another transaction won the race.
	locked, err := s.SeatRepo.LockAvailable(ctx, tx, seatIDs)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	if len(locked) != len(seatIDs) {
		taken := diffIDs(seatIDs, locked)
		utils.LogEvent(s.RequestID, "booking", "conflict",
			fmt.Sprintf("user_id=%d route_id=%d taken=%v", userID, res.Route.ID, taken))
		return out, domain.BookingError{
			Kind:    domain.KindSeatNoLongerAvailable,
			Msg:     "some seats are no longer available",
			SeatIDs: taken,
		}
	}

	booking := models.Booking{
		Reference:      uuid.NewString(),
		UserID:         userID,
		RouteID:        res.Route.ID,
		TotalFareCents: fareCents,
		Status:         models.BookingConfirmed,
	}
	bookingID, err := s.BookingRepo.Insert(ctx, tx, booking)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}

	for _, p := range res.Passengers {
		if err := s.BookingRepo.InsertPassenger(ctx, tx, bookingID, p); err != nil {
			return out, domain.InternalError{Err: err}
		}
	}

	for _, seatID := range seatIDs {
		if err := s.BookingRepo.InsertBookingSeat(ctx, tx, bookingID, seatID); err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
				return out, domain.BookingError{
					Kind:    domain.KindSeatNoLongerAvailable,
					Msg:     "some seats are no longer available",
					SeatIDs: []int64{seatID},
					Err:     err,
				}
			}
			return out, domain.InternalError{Err: err}
		}
	}

	if err := s.SeatRepo.MarkBooked(ctx, tx, seatIDs); err != nil {
		return out, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return out, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "commit_ok",
		fmt.Sprintf("booking_id=%d user_id=%d seats=%d", bookingID, userID, len(seatIDs)))

	return s.GetDetailed(bookingID)
}

// Cancel sets a Confirmed booking owned by the user to Cancelled and frees
// its seats. Cancelling anything else, including an already-cancelled
// booking, fails with NotCancellable.
func (s BookingService) Cancel(ctx context.Context, userID, bookingID int64) error {
	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	booking, err := s.BookingRepo.GetForUpdate(ctx, tx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	if booking.UserID != userID || booking.Status != models.BookingConfirmed {
		return domain.BookingError{
			Kind: domain.KindNotCancellable,
			Msg:  "only confirmed bookings owned by the requester can be cancelled",
		}
	}

	if err := s.BookingRepo.UpdateStatus(ctx, tx, bookingID, models.BookingCancelled); err != nil {
		return domain.InternalError{Err: err}
	}
	if err := s.SeatRepo.ReleaseByBooking(ctx, tx, bookingID); err != nil {
		return domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel_ok",
		fmt.Sprintf("booking_id=%d user_id=%d", bookingID, userID))
	return nil
}

// GetDetailed returns the booking with its route, seats and passengers
// resolved.
func (s BookingService) GetDetailed(bookingID int64) (models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return booking, domain.InternalError{Err: err}
	}

	route, err := s.RouteRepo.GetByID(booking.RouteID)
	if err == nil {
		booking.Route = &route
	}

	if seats, err := s.BookingRepo.ListSeats(bookingID); err == nil {
		booking.Seats = seats
	}
	if passengers, err := s.BookingRepo.ListPassengers(bookingID); err == nil {
		booking.Passengers = passengers
	}
	return booking, nil
}

func diffIDs(want, got []int64) []int64 {
	have := make(map[int64]bool, len(got))
	for _, id := range got {
		have[id] = true
	}
	out := []int64{}
	for _, id := range want {
		if !have[id] {
			out = append(out, id)
		}
	}
	return out
}
