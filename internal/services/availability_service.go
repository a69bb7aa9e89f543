package services

import (
	"database/sql"
	"errors"
	"fmt"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/repositories"
	"busticket/internal/utils"

	"github.com/go-playground/validator/v10"
)

var passengerValidate = validator.New(validator.WithRequiredStructEnabled())

// AvailabilityService is the pre-commit guard for booking requests. It only
// reads; its verdict can be stale by the time the commit transaction runs,
// which is why BookingService re-checks the seats under a row lock.
type AvailabilityService struct {
	RouteRepo repositories.RouteRepo
	SeatRepo  repositories.SeatRepo
	RequestID string
}

// Validate checks a booking request against current inventory and returns a
// reservation ready for the transaction manager, or the first failure in
// this order: route exists, passenger/seat counts match, each seat id
// resolves exactly once, every seat belongs to the route's bus, every seat
// is free, every passenger payload is well-formed.
func (s AvailabilityService) Validate(routeID int64, seatIDs []int64, passengers []models.PassengerInput) (*models.Reservation, error) {
	utils.LogEvent(s.RequestID, "guard", "validate_start",
		fmt.Sprintf("route_id=%d seats=%d", routeID, len(seatIDs)))

	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.BookingError{Kind: domain.KindRouteNotFound, Msg: "route does not exist"}
		}
		return nil, domain.InternalError{Err: err}
	}

	if len(passengers) != len(seatIDs) {
		return nil, domain.BookingError{
			Kind: domain.KindPassengerSeatMismatch,
			Msg:  fmt.Sprintf("%d passengers for %d seats", len(passengers), len(seatIDs)),
		}
	}

	seats, err := s.SeatRepo.GetByIDs(seatIDs)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	// One resolved seat per requested id. A shorter result means an id is
	// unknown or was requested twice; either way the reservation would not
	// hold one seat per passenger.
	if len(seats) != len(seatIDs) {
		return nil, domain.BookingError{
			Kind:    domain.KindInvalidSeatID,
			Msg:     "some seat ids are invalid",
			SeatIDs: invalidSeatIDs(seatIDs, seats),
		}
	}

	wrongBus := []int64{}
	booked := []int64{}
	for _, seat := range seats {
		if seat.BusID != route.BusID {
			wrongBus = append(wrongBus, seat.ID)
		}
		if seat.IsBooked {
			booked = append(booked, seat.ID)
		}
	}
	if len(wrongBus) > 0 {
		return nil, domain.BookingError{
			Kind:    domain.KindSeatRouteMismatch,
			Msg:     "some seats do not belong to the route's bus",
			SeatIDs: wrongBus,
		}
	}
	if len(booked) > 0 {
		return nil, domain.BookingError{
			Kind:    domain.KindSeatAlreadyBooked,
			Msg:     "some seats are already booked",
			SeatIDs: booked,
		}
	}

	for i, p := range passengers {
		if err := passengerValidate.Struct(p); err != nil {
			return nil, domain.BookingError{
				Kind: domain.KindInvalidPassenger,
				Msg:  fmt.Sprintf("passenger %d: %s", i+1, passengerIssue(err)),
				Err:  err,
			}
		}
	}

	utils.LogEvent(s.RequestID, "guard", "validate_ok",
		fmt.Sprintf("route_id=%d seats=%d", routeID, len(seatIDs)))

	return &models.Reservation{
		Route:      route,
		Seats:      seats,
		Passengers: passengers,
	}, nil
}

// invalidSeatIDs reports, in request order, ids that did not resolve plus
// ids requested more than once.
func invalidSeatIDs(requested []int64, found []models.Seat) []int64 {
	have := make(map[int64]bool, len(found))
	for _, s := range found {
		have[s.ID] = true
	}
	count := make(map[int64]int, len(requested))
	for _, id := range requested {
		count[id]++
	}
	out := []int64{}
	seen := map[int64]bool{}
	for _, id := range requested {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !have[id] || count[id] > 1 {
			out = append(out, id)
		}
	}
	return out
}

func passengerIssue(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid payload"
	}
	switch verrs[0].Field() {
	case "Age":
		return "age must be a positive integer"
	case "Gender":
		return "gender must be Male, Female, or Other"
	case "Name":
		return "name is required"
	default:
		return "invalid payload"
	}
}
