// Package repo implements the data persistence layer for the appointment
// ledger, backed by GORM. This file provides repository functions for the
// Appointment model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only
// persistence and query composition.
//
// Error semantics:
//   - When a slot lookup finds no appointment, GetAppointmentBySlot returns
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - A duplicate (date, timeslot) insert relies on the database unique
//     index and is returned as a raw DB error. The service layer translates
//     it into a domain error (services.ErrSlotTaken).
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
//
// Functions:
//
//   - CreateAppointment(ctx, db, name, phone, date, slot) -> *domain.Appointment, error
//     Inserts a new appointment row with UUID primary key.
//
//   - ListAppointments(ctx, db) -> []domain.Appointment, error
//     Returns the full ledger in insertion order.
//
//   - ListAppointmentsByDate(ctx, db, date) -> []domain.Appointment, error
//     Returns all appointments for a date, ordered by timeslot.
//
//   - GetAppointmentBySlot(ctx, db, date, slot) -> *domain.Appointment, error
//     Fetches the appointment occupying (date, slot), or ErrNotFound.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.AppointmentService) which enforces the booking rules.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohithrjnr/go-appointment-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateAppointment inserts a new appointment occupying (date, slot).
// The ID is a randomly generated UUID (string), and CreatedAt is set to UTC.
//
// The (date, timeslot) pair is guarded by a unique index; inserting into an
// occupied slot returns the driver's unique-violation error, which callers
// should translate into a domain-level conflict.
func CreateAppointment(ctx context.Context, db *gorm.DB, name, phone, date, slot string) (*domain.Appointment, error) {
	a := &domain.Appointment{
		ID:          uuid.NewString(),
		Name:        name,
		PhoneNumber: phone,
		Date:        date,
		Timeslot:    slot,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// ListAppointments returns every appointment in the ledger, ordered by
// creation time ascending (insertion order). It returns an empty slice when
// the ledger is empty. On DB error, it returns the error.
func ListAppointments(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := db.WithContext(ctx).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// ListAppointmentsByDate returns all appointments whose date equals the given
// grouping key, ordered by timeslot ascending. A date that matches no rows
// (including malformed or empty strings) yields an empty slice, not an error.
func ListAppointmentsByDate(ctx context.Context, db *gorm.DB, date string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := db.WithContext(ctx).
		Where("date = ?", date).
		Order("timeslot asc").
		Find(&out).Error
	return out, err
}

// GetAppointmentBySlot fetches the appointment occupying (date, slot).
// If the slot is free, it returns ErrNotFound. On other DB errors, the raw
// error is returned.
func GetAppointmentBySlot(ctx context.Context, db *gorm.DB, date, slot string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := db.WithContext(ctx).
		Where("date = ? AND timeslot = ?", date, slot).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
