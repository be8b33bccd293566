// Package services defines the business logic for slot availability and
// appointment booking. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrSlotTaken is returned when a booking targets a (date, timeslot)
	// pair that already holds an appointment. Callers recover by choosing
	// a different slot.
	ErrSlotTaken = errors.New("time slot already booked")

	// ErrUnknownSlot is returned when a booking names a timeslot label that
	// is not part of the canonical catalog (off-grid times, the lunch hour,
	// or malformed labels).
	ErrUnknownSlot = errors.New("timeslot is not a bookable slot")

	// ErrInvalidDate is returned when a booking date is not a YYYY-MM-DD
	// calendar date.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)
