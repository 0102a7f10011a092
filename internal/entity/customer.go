package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a policy holder for data transfer between layers.
type Customer struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Phone            *string    `json:"phone,omitempty"`
	AltPhone         *string    `json:"alt_phone,omitempty"`
	Email            *string    `json:"email,omitempty"`
	NationalID       *string    `json:"national_id,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Address          *string    `json:"address,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	ExtractionMethod string     `json:"extraction_method"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
