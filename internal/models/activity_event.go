package models

import (
	"strings"
	"time"
)

// ActivityType classifies an activity log entry.
type ActivityType string

const (
	ActivityLogin       ActivityType = "LOGIN"
	ActivityLoginFailed ActivityType = "LOGIN_FAILED"
	ActivityLogout      ActivityType = "LOGOUT"
	ActivityFetchFailed ActivityType = "FETCH_FAILED"
)

// ActivityTypes lists every type the log accepts.
var ActivityTypes = []ActivityType{ActivityLogin, ActivityLoginFailed, ActivityLogout, ActivityFetchFailed}

// ParseActivityType matches s case-insensitively against the known types.
func ParseActivityType(s string) (ActivityType, bool) {
	t := ActivityType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range ActivityTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// ActivityEvent is a single entry of the dashboard activity log.
type ActivityEvent struct {
	ID      string         `json:"id"`
	At      time.Time      `json:"at"`
	Type    ActivityType   `json:"type"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ActivityQuery selects log entries. Zero bounds and an empty Types slice
// match everything; Limit 0 means no limit. Entries come newest first
// unless Oldest is set.
type ActivityQuery struct {
	From   time.Time
	To     time.Time
	Types  []ActivityType
	Limit  int
	Oldest bool
}
