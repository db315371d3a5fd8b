package models

import (
	"time"
)

type Character struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Age         *int      `json:"age,omitempty" db:"age"`
	Appearance  *string   `json:"appearance,omitempty" db:"appearance"`
	Personality *string   `json:"personality,omitempty" db:"personality"`
	Background  *string   `json:"background,omitempty" db:"background"`
	Goals       *string   `json:"goals,omitempty" db:"goals"`
	Conflicts   *string   `json:"conflicts,omitempty" db:"conflicts"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
