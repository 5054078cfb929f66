package service

import (
	"time"

	"inventory_dashboard/internal/models"
)

// LogFilter selects activity entries. Zero times are open bounds and an
// empty Types slice matches every type.
type LogFilter struct {
	From   time.Time
	To     time.Time
	Types  []models.ActivityType
	Limit  int  // 0 means DefaultLogLimit
	Oldest bool // default order is newest first
}
