// Package repo implements the data persistence layer for the appointment
// ledger, backed by GORM. This file provides a small aggregate query used
// for conditional responses (ETag generation) on the listing endpoint.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rohithrjnr/go-appointment-backend/internal/domain"
)

// AppointmentsStats returns aggregate metadata for the ledger: the total
// number of rows and the maximum CreatedAt timestamp among them. Because
// appointments are append-only, (count, latest CreatedAt) changes exactly
// when the listing response would.
//
// When the ledger is empty, the returned count is 0 and maxCreatedAt is nil.
//
// Return values:
//   - count:        total appointments
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func AppointmentsStats(ctx context.Context, db *gorm.DB) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Appointment{})

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
