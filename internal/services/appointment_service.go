// Package services – AppointmentService
//
// This file implements the AppointmentService, which governs slot
// availability and booking. It validates booking input against the canonical
// slot catalog, performs the (date, timeslot) existence check and the insert
// inside a single transaction, and relies on the storage-level unique index
// to arbitrate concurrent bookings of the same slot. Service-level errors
// (ErrSlotTaken, ErrUnknownSlot, ErrInvalidDate) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rohithrjnr/go-appointment-backend/internal/domain"
	"github.com/rohithrjnr/go-appointment-backend/internal/schedule"
)

// AppointmentRepo defines the repository contract required by
// AppointmentService. Implementations are responsible for persistence of
// appointment rows.
type AppointmentRepo interface {
	// CreateAppointment inserts a new appointment occupying (date, slot).
	CreateAppointment(ctx context.Context, db *gorm.DB, name, phone, date, slot string) (*domain.Appointment, error)

	// ListAppointments returns the full ledger in insertion order.
	ListAppointments(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error)

	// ListAppointmentsByDate returns all appointments for a date.
	ListAppointmentsByDate(ctx context.Context, db *gorm.DB, date string) ([]domain.Appointment, error)

	// GetAppointmentBySlot fetches the appointment occupying (date, slot),
	// or repo.ErrNotFound when the slot is free.
	GetAppointmentBySlot(ctx context.Context, db *gorm.DB, date, slot string) (*domain.Appointment, error)
}

// AppointmentService provides the appointment use-cases: availability
// queries, booking, and listing. It is context-aware and safe for concurrent
// use; booking opens its own transaction per call.
type AppointmentService struct {
	// DB is the GORM handle used for all appointment operations.
	DB *gorm.DB
	// Repo is the appointment repository used by this service.
	Repo AppointmentRepo
}

// NewAppointmentService constructs an AppointmentService bound to db and r.
func NewAppointmentService(db *gorm.DB, r AppointmentRepo) *AppointmentService {
	return &AppointmentService{DB: db, Repo: r}
}

// AvailableSlots returns the canonical slot labels not yet booked on date,
// preserving catalog order. A date with no bookings (including empty or
// malformed date strings, which match zero rows) yields the full catalog;
// a fully booked date yields an empty slice.
func (s *AppointmentService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	booked, err := s.Repo.ListAppointmentsByDate(ctx, s.DB, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, a := range booked {
		taken[a.Timeslot] = struct{}{}
	}

	out := make([]string, 0, 12)
	for _, slot := range schedule.Catalog() {
		if _, ok := taken[slot]; !ok {
			out = append(out, slot)
		}
	}
	return out, nil
}

// Book validates and records a new appointment for (date, slot).
//
// Semantics and validation:
//   - slot must be a member of the canonical catalog; otherwise ErrUnknownSlot.
//   - date must be a YYYY-MM-DD calendar date; otherwise ErrInvalidDate.
//   - name and phone are stored as given (trimmed); presence is enforced at
//     the transport boundary.
//   - If (date, slot) already holds an appointment, ErrSlotTaken.
//
// Concurrency & atomicity:
//   - The existence check and the insert run inside a transaction, and the
//     storage-level unique index on (date, timeslot) arbitrates writers that
//     pass the check simultaneously: the loser's insert fails with a unique
//     violation, which is mapped to ErrSlotTaken as well.
//
// On success, it returns the persisted appointment.
func (s *AppointmentService) Book(ctx context.Context, name, phone, date, slot string) (*domain.Appointment, error) {
	if !schedule.Contains(slot) {
		return nil, ErrUnknownSlot
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var created *domain.Appointment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Reject if the slot is already occupied.
		_, err := s.Repo.GetAppointmentBySlot(ctx, tx, date, slot)
		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 2) Insert; the unique index catches races the check missed.
		created, err = s.Repo.CreateAppointment(ctx, tx, name, phone, date, slot)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List returns the full ledger, unfiltered and unpaginated, in insertion
// order.
func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.Repo.ListAppointments(ctx, s.DB)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
