// repository.go - Shared query helpers and error mapping

// Package repository holds the gorm data access for every entity. Methods
// return apperr sentinels for not-found and conflict outcomes and wrap
// anything else as an internal failure.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go-shop-backend/apperr"
	"go-shop-backend/database"

	"gorm.io/gorm"
)

// uniqueKey pairs a column with the API field name reported on conflict
type uniqueKey struct {
	column string
	field  string
}

// newestFirst orders listings by creation, most recent first
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// ensureUnique fails with a ConflictError naming the first key whose value
// is already used by a row other than excludeID.
func ensureUnique(ctx context.Context, db *gorm.DB, model any, keys []uniqueKey, values map[string]any, excludeID string) error {
	for _, key := range keys {
		value, ok := values[key.column]
		if !ok {
			continue
		}
		query := db.WithContext(ctx).Model(model).Where(key.column+" = ?", value)
		if excludeID != "" {
			query = query.Where("id <> ?", excludeID)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return fmt.Errorf("check %s uniqueness: %w", key.field, err)
		}
		if count > 0 {
			return apperr.Conflict(key.field)
		}
	}
	return nil
}

// writeErr converts a failed insert/update into a conflict when the store
// reports a unique violation, otherwise wraps it.
func writeErr(op string, err error) error {
	if field, ok := database.UniqueViolation(err); ok {
		return apperr.Conflict(field)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// findErr maps gorm.ErrRecordNotFound to notFound.
func findErr(op string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
