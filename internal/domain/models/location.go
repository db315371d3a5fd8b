package models

import (
	"time"
)

type Location struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	Name             string    `json:"name" db:"name"`
	Description      *string   `json:"description,omitempty" db:"description"`
	Type             *string   `json:"type,omitempty" db:"type"`
	Atmosphere       *string   `json:"atmosphere,omitempty" db:"atmosphere"`
	ImportantDetails *string   `json:"important_details,omitempty" db:"important_details"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// LocationRef is the joined {id, name} pair embedded in object reads.
type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
