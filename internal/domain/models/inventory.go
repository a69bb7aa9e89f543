package models

import "time"

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Operator struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone,omitempty"`
}

// Bus types mirror the values the booking frontend sends.
const (
	BusTypeAC      = "AC"
	BusTypeNonAC   = "Non-AC"
	BusTypeSleeper = "Sleeper"
	BusTypeSeater  = "Seater"
)

type Bus struct {
	ID         int64   `json:"id"`
	OperatorID int64   `json:"operator_id"`
	BusNumber  string  `json:"bus_number"`
	BusType    string  `json:"bus_type"`
	TotalSeats int     `json:"total_seats"`
	Rating     float64 `json:"rating"`

	Operator *Operator `json:"operator,omitempty"`
}

type Seat struct {
	ID         int64  `json:"id"`
	BusID      int64  `json:"bus_id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

type Route struct {
	ID            int64     `json:"id"`
	SourceID      int64     `json:"source_id"`
	DestinationID int64     `json:"destination_id"`
	BusID         int64     `json:"bus_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	FareCents     int64     `json:"fare_cents"`

	Source      *City `json:"source,omitempty"`
	Destination *City `json:"destination,omitempty"`
	Bus         *Bus  `json:"bus,omitempty"`
}
