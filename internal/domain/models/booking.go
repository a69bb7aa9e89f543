package models

import "time"

const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type Booking struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	UserID         int64     `json:"user_id"`
	RouteID        int64     `json:"route_id"`
	BookingDate    time.Time `json:"booking_date"`
	TotalFareCents int64     `json:"total_fare_cents"`
	Status         string    `json:"status"`

	Route      *Route      `json:"route,omitempty"`
	Seats      []Seat      `json:"seats,omitempty"`
	Passengers []Passenger `json:"passengers,omitempty"`
}

type Passenger struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"booking_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// PassengerInput is the per-seat payload arriving with a booking request.
type PassengerInput struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required,oneof=Male Female Other"`
}

// Reservation is the output of the availability guard: a booking request
// that passed every pre-check. It is advisory only; the commit transaction
// re-checks seat state before writing anything.
type Reservation struct {
	Route      Route
	Seats      []Seat
	Passengers []PassengerInput
}
