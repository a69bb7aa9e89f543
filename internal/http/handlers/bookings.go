package handlers

import (
	"net/http"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/http/middleware"
	"busticket/internal/repositories"
	"busticket/internal/services"
	"busticket/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingSeatRequest struct {
	SeatID int64  `json:"seat_id" binding:"required,gt=0"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type bookingRequest struct {
	RouteID   int64                `json:"route" binding:"required,gt=0"`
	Seats     []bookingSeatRequest `json:"seats" binding:"required,min=1"`
	TotalFare any                  `json:"total_fare" binding:"required"`
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepo{},
		SeatRepo:    repositories.SeatRepo{},
		RouteRepo:   repositories.RouteRepo{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	seatIDs := make([]int64, 0, len(req.Seats))
	passengers := make([]models.PassengerInput, 0, len(req.Seats))
	for _, s := range req.Seats {
		seatIDs = append(seatIDs, s.SeatID)
		passengers = append(passengers, models.PassengerInput{
			Name:   s.Name,
			Age:    s.Age,
			Gender: s.Gender,
		})
	}

	fare, err := utils.ParseMoney(req.TotalFare)
	if err != nil {
		RespondDomainError(c, domain.BookingError{
			Kind: domain.KindInvalidFare,
			Msg:  "total fare must be a valid number",
			Err:  err,
		})
		return
	}

	guard := services.AvailabilityService{
		RouteRepo: repositories.RouteRepo{},
		SeatRepo:  repositories.SeatRepo{},
		RequestID: middleware.GetRequestID(c),
	}
	reservation, err := guard.Validate(req.RouteID, seatIDs, passengers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	booking, err := bookingService(c).Create(c.Request.Context(), middleware.GetUserID(c), reservation, fare)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": booking})
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	repo := repositories.BookingRepo{}
	bookings, err := repo.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "booking listing failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	booking, err := bookingService(c).GetDetailed(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// POST /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := bookingService(c).Cancel(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": "booking cancelled"})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := services.TicketService{
		BookingService: bookingService(c),
		RequestID:      middleware.GetRequestID(c),
	}
	booking, err := svc.BookingService.GetDetailed(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}
	if booking.Status != models.BookingConfirmed {
		RespondError(c, http.StatusConflict, "only confirmed bookings have an e-ticket", nil)
		return
	}

	pdfBytes, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "e-ticket generation failed", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
