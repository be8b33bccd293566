// Package domain defines the persistence model for appointments. The type
// is mapped with GORM and forms the core data layer of the booking service.
package domain

import "time"

// Appointment represents a single booked half-hour slot. Appointments are
// append-only: they are created when a booking succeeds and are never
// updated or deleted.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned at creation.
//   - Name: customer name (free text, required).
//   - PhoneNumber: customer phone number (required, no format constraint).
//   - Date: booking day as a YYYY-MM-DD string; used as an opaque grouping
//     key, not a parsed calendar value.
//   - Timeslot: HH:MM label from the canonical slot catalog.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// The composite unique index on (date, timeslot) is the system's one
// consistency constraint: at most one appointment per slot per day. It also
// backstops the service-level existence check under concurrent bookings.
type Appointment struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name"         gorm:"type:varchar(100);not null"`
	PhoneNumber string    `json:"phone_number" gorm:"type:varchar(15);not null"`
	Date        string    `json:"date"         gorm:"type:varchar(10);not null;uniqueIndex:ux_appointments_date_slot,priority:1"`
	Timeslot    string    `json:"timeslot"     gorm:"type:varchar(5);not null;uniqueIndex:ux_appointments_date_slot,priority:2"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Appointment.
func (Appointment) TableName() string { return "appointments" }
