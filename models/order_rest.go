package models

import "time"

// OrderResourceRest is the public facing view of an order's financing state
// returned from the financing-session endpoint
type OrderResourceRest struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	CompletedAt   time.Time `json:"completed_at,omitempty"`
	DiscountTotal string    `json:"discount_total"`
	ShippingTotal string    `json:"shipping_total"`
	TaxTotal      string    `json:"tax_total"`
	LeadID        string    `json:"lead_id,omitempty"`
}

// FinancingJourneyRest holds the hosted application URL the shopper must be
// redirected to after a successful handoff
type FinancingJourneyRest struct {
	RedirectURL string `json:"redirect_url"`
}
