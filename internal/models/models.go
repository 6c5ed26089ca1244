package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a single scheduled notification.
type Reminder struct {
	ID     uuid.UUID `db:"id"      json:"id"`
	ChatID int64     `db:"chat_id" json:"chat_id"`
	Label  string    `db:"label"   json:"label"`
	DueAt  time.Time `db:"due_at"  json:"due_at"`
}
