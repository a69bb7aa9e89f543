package services

import (
	"bytes"
	"fmt"
	"strings"

	"busticket/internal/domain/models"
	"busticket/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a booking's e-ticket PDF.
type TicketService struct {
	BookingService BookingService
	RequestID      string
}

// GenerateETicket returns the PDF bytes and a download filename. Only
// Confirmed bookings get a ticket.
func (s TicketService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	booking, err := s.BookingService.GetDetailed(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(booking)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	routeLine := "-"
	busLine := "-"
	departure := "-"
	if b.Route != nil {
		if b.Route.Source != nil && b.Route.Destination != nil {
			routeLine = fmt.Sprintf("%s -> %s", b.Route.Source.Name, b.Route.Destination.Name)
		}
		if b.Route.Bus != nil {
			busLine = fmt.Sprintf("%s (%s)", b.Route.Bus.BusNumber, b.Route.Bus.BusType)
			if b.Route.Bus.Operator != nil {
				busLine += " - " + b.Route.Bus.Operator.Name
			}
		}
		departure = b.Route.DepartureTime.Format("2006-01-02 15:04")
	}

	seatNumbers := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		seatNumbers = append(seatNumbers, seat.SeatNumber)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref : %s", b.Reference),
		fmt.Sprintf("Status      : %s", b.Status),
		fmt.Sprintf("Route       : %s", routeLine),
		fmt.Sprintf("Bus         : %s", busLine),
		fmt.Sprintf("Departure   : %s", departure),
		fmt.Sprintf("Seats       : %s", strings.Join(seatNumbers, ", ")),
		fmt.Sprintf("Total Fare  : %s", utils.FormatMoney(b.TotalFareCents)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		seat := "-"
		if i < len(seatNumbers) {
			seat = seatNumbers[i]
		}
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s (%d, %s) - Seat %s", i+1, p.Name, p.Age, p.Gender, seat))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket when boarding. One seat per passenger.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("eticket-%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}
