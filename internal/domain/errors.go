package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a booking-engine failure. All kinds are recoverable and
// user-facing; none are fatal to the process.
type Kind string

const (
	KindRouteNotFound         Kind = "route_not_found"
	KindPassengerSeatMismatch Kind = "passenger_seat_mismatch"
	KindInvalidSeatID         Kind = "invalid_seat_id"
	KindSeatRouteMismatch     Kind = "seat_route_mismatch"
	KindSeatAlreadyBooked     Kind = "seat_already_booked"
	KindInvalidPassenger      Kind = "invalid_passenger"
	KindInvalidFare           Kind = "invalid_fare"
	KindSeatNoLongerAvailable Kind = "seat_no_longer_available"
	KindNotCancellable        Kind = "not_cancellable"
)

// BookingError carries the failure kind plus the offending seat ids where
// the kind calls for them (InvalidSeatId, SeatRouteMismatch,
// SeatAlreadyBooked, SeatNoLongerAvailable).
type BookingError struct {
	Kind    Kind
	Msg     string
	SeatIDs []int64
	Err     error
}

func (e BookingError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = strings.ReplaceAll(string(e.Kind), "_", " ")
	}
	if len(e.SeatIDs) > 0 {
		return fmt.Sprintf("%s: seats %v", msg, e.SeatIDs)
	}
	return msg
}

func (e BookingError) Unwrap() error { return e.Err }

// ErrKind extracts the booking failure kind, or "" for foreign errors.
func ErrKind(err error) Kind {
	var be BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return ErrKind(err) == kind
}

// OffendingSeats returns the seat ids attached to a booking error, if any.
func OffendingSeats(err error) []int64 {
	var be BookingError
	if errors.As(err, &be) {
		return be.SeatIDs
	}
	return nil
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
