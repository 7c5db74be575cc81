package entity

import "time"

// TypePartner is the discriminator value stored in the partners table.
const TypePartner = "partner"

// Partner is a registered partner organisation as stored in the partners table.
type Partner struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"companyName"`
	ContactPerson string    `json:"contactPerson"`
	PartnerType   string    `json:"partnerType"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	City          *string   `json:"city"`
	Description   *string   `json:"description"`
	AcceptPrivacy bool      `json:"acceptPrivacy"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PartnerInsert is the caller-supplied shape for creating a partner.
type PartnerInsert struct {
	CompanyName   string  `json:"companyName" binding:"required"`
	ContactPerson string  `json:"contactPerson" binding:"required"`
	PartnerType   string  `json:"partnerType" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         *string `json:"phone"`
	City          *string `json:"city"`
	Description   *string `json:"description"`
	AcceptPrivacy bool    `json:"acceptPrivacy" binding:"accepted"`
}
