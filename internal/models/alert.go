package models

import "time"

// Alert levels.
const (
	AlertLevelAdvisory = "Advisory"
	AlertLevelWarning  = "Warning"
	AlertLevelCritical = "Critical"
)

// Alert is an operator-facing notice. Deletion is deactivation: the record
// stays in the store with IsActive=false and drops out of the active list.
type Alert struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Level     string    `json:"level"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAlert is the payload for creating an alert. New alerts start active.
type CreateAlert struct {
	Title  string
	Detail string
	Level  string
}
