package database

import (
	"fmt"

	"cafeadmin/model"

	"gorm.io/gorm"
)

const maxActivityLimit = 200

// RecordActivity stores one successful mutation.
func RecordActivity(db *gorm.DB, a *model.Activity) error {
	if err := db.Create(a).Error; err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// RecentActivity returns up to limit entries, newest first. A non-empty cafeID
// narrows the result to that cafe.
func RecentActivity(db *gorm.DB, cafeID string, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	q := db.Order("id desc").Limit(limit)
	if cafeID != "" {
		q = q.Where("cafe_id = ?", cafeID)
	}
	var out []model.Activity
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return out, nil
}
