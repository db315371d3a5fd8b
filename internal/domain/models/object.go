package models

import (
	"time"
)

type Object struct {
	ID          string  `json:"id" db:"id"`
	UserID      string  `json:"user_id" db:"user_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Type        *string `json:"type,omitempty" db:"type"`
	Importance  *string `json:"importance,omitempty" db:"importance"`
	// LocationID is a weak reference: accepted on write without an
	// existence check, resolved via a join for display only.
	LocationID *string      `json:"location_id" db:"location_id"`
	Location   *LocationRef `json:"location"` // Joined on read, not stored
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}
