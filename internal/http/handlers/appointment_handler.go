// Appointment HTTP handlers.
//
// This file exposes the REST endpoints of the booking API:
//   - GET  /slots?date=YYYY-MM-DD  (available slots for a date)
//   - GET  /appointments           (full ledger, ETag support)
//   - POST /book                   (book a slot)
//
// Handlers are transport-thin: they validate input, call the appointment
// service, and translate domain/service errors into HTTP responses
// (including conditional responses on the listing endpoint).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohithrjnr/go-appointment-backend/internal/domain"
	"github.com/rohithrjnr/go-appointment-backend/internal/http/middleware"
	"github.com/rohithrjnr/go-appointment-backend/internal/repo"
	"github.com/rohithrjnr/go-appointment-backend/internal/services"
)

//
// Service contract (context-aware)
//

// AppointmentService defines the booking operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AppointmentService interface {
	// AvailableSlots returns the unbooked catalog slots for a date.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	// Book validates and records a new appointment.
	Book(ctx context.Context, name, phone, date, slot string) (*domain.Appointment, error)
	// List returns the full ledger in insertion order.
	List(ctx context.Context) ([]domain.Appointment, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the booking API. It depends on an
// abstract service interface to keep transport concerns separate from
// business logic.
type Handlers struct {
	apptSvc AppointmentService
}

// New constructs and returns a Handlers instance bound to the given service.
func New(apptSvc AppointmentService) *Handlers {
	return &Handlers{apptSvc: apptSvc}
}

//
// DTOs
//

// BookAppointmentRequest is the JSON payload for booking a slot.
//
// All four fields are required and must be non-empty strings; requests that
// omit any of them are rejected before reaching the service layer.
type BookAppointmentRequest struct {
	// Name is the customer's name.
	Name string `json:"name" binding:"required" example:"John Doe"`
	// PhoneNumber is the customer's phone number (no format constraint).
	PhoneNumber string `json:"phone_number" binding:"required" example:"1234567890"`
	// Date is the booking day, YYYY-MM-DD.
	Date string `json:"date" binding:"required" example:"2025-01-01"`
	// Timeslot is an HH:MM label from the slot catalog.
	Timeslot string `json:"timeslot" binding:"required" example:"10:00"`
}

// BookAppointmentResponse confirms a successful booking.
type BookAppointmentResponse struct {
	// Success carries the confirmation message.
	Success string `json:"success" example:"Appointment booked successfully"`
	// ID is the identifier assigned to the new appointment.
	ID string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// AppointmentResponse is one ledger entry as returned by the listing
// endpoint. It projects the submitted booking fields.
type AppointmentResponse struct {
	Name        string `json:"name" example:"John Doe"`
	PhoneNumber string `json:"phone_number" example:"1234567890"`
	Date        string `json:"date" example:"2025-01-01"`
	Timeslot    string `json:"timeslot" example:"10:00"`
}

//
// Handlers
//

// GetSlots godoc
// @ID          getSlots
// @Summary     Available slots for a date
// @Description Returns the canonical half-hour slots not yet booked on the given date, in catalog order. A date with no bookings yields all 12 slots; a fully booked date yields an empty list.
// @Tags        Slots
// @Produce     json
//
// @Param       date  query  string  false  "Booking day (YYYY-MM-DD)"  example(2025-01-01)
//
// @Success     200  {array}  string
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /slots [get]
func (h *Handlers) GetSlots(c *gin.Context) {
	// An absent or malformed date is a legal grouping key that simply
	// matches zero bookings, mirroring the availability contract.
	date := c.Query("date")

	slots, err := h.apptSvc.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSlotsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, slots)
}

// ListAppointments godoc
// @ID          listAppointments
// @Summary     List all appointments
// @Description Returns every booked appointment, unpaginated, in insertion order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Appointments
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"appointments:3:1735689600\")
//
// @Success     200  {array}  handlers.AppointmentResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /appointments [get]
func (h *Handlers) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort). The ledger is append-only, so
	// (count, latest created_at) identifies the listing body exactly.
	var db *gorm.DB
	if svc, isConcrete := h.apptSvc.(*services.AppointmentService); isConcrete {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.AppointmentsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"appointments:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.apptSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	out := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AppointmentResponse{
			Name:        a.Name,
			PhoneNumber: a.PhoneNumber,
			Date:        a.Date,
			Timeslot:    a.Timeslot,
		})
	}
	ok(c, http.StatusOK, out)
}

// BookAppointment godoc
// @ID          bookAppointment
// @Summary     Book an appointment
// @Description Books the given (date, timeslot) if it is free. Each slot can hold at most one appointment; a taken slot yields 409 with message "Time slot already booked".
// @Tags        Appointments
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.BookAppointmentRequest  true  "Booking payload"
//
// @Success     201  {object} handlers.BookAppointmentResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure     409  {object} handlers.ErrorResponse "Time slot already booked"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /book [post]
func (h *Handlers) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.ObserveBooking("rejected")
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"name, phone_number, date and timeslot are required")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		middleware.ObserveBooking("rejected")
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"name and phone_number must not be blank")
		return
	}

	a, err := h.apptSvc.Book(c.Request.Context(), req.Name, req.PhoneNumber, req.Date, req.Timeslot)
	if err != nil {
		switch err {
		case services.ErrUnknownSlot:
			middleware.ObserveBooking("rejected")
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "timeslot is not a bookable slot")
		case services.ErrInvalidDate:
			middleware.ObserveBooking("rejected")
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "date must be YYYY-MM-DD")
		case services.ErrSlotTaken:
			middleware.ObserveBooking("conflict")
			fail(c, http.StatusConflict, ErrCodeConflict, "Time slot already booked")
		default:
			middleware.ObserveBooking("error")
			fail(c, http.StatusInternalServerError, ErrCodeBookFailed, err.Error())
		}
		return
	}
	middleware.ObserveBooking("booked")

	ok(c, http.StatusCreated, BookAppointmentResponse{
		Success: "Appointment booked successfully",
		ID:      a.ID,
	})
}
