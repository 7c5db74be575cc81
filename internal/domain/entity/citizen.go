package entity

import "time"

// TypeCitizen is the discriminator value stored in the citizens table.
// It is set by the persistence layer and never accepted from callers.
const TypeCitizen = "burger"

// Citizen is a registered citizen as stored in the citizens table.
type Citizen struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	City              *string   `json:"city"`
	PreferredLanguage string    `json:"preferredLanguage"`
	AcceptPrivacy     bool      `json:"acceptPrivacy"`
	Type              string    `json:"type"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CitizenInsert is the caller-supplied shape for creating a citizen.
// Server-assigned fields (id, type, createdAt) are excluded.
type CitizenInsert struct {
	FirstName         string  `json:"firstName" binding:"required"`
	LastName          string  `json:"lastName" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone"`
	City              *string `json:"city"`
	PreferredLanguage string  `json:"preferredLanguage" binding:"required"`
	AcceptPrivacy     bool    `json:"acceptPrivacy" binding:"accepted"`
}
