package model

import (
	"encoding/json"
	"time"
)

// Strategy is a user-owned trading strategy definition. Condition payloads
// are opaque JSON; the API stores and returns them without interpretation.
type Strategy struct {
	ID              int64           `gorm:"primaryKey"`
	UserID          int64           `gorm:"index;not null"`
	Name            string          `gorm:"index;not null"`
	Description     string
	EntryConditions json.RawMessage `gorm:"type:jsonb"`
	ExitConditions  json.RawMessage `gorm:"type:jsonb"`
	PositionSizing  json.RawMessage `gorm:"type:jsonb"`
	IsActive        bool
	IsApproved      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Strategy) TableName() string { return "strategies" }
