// Package fixtures contains shared test data constructors.
package fixtures

import (
	"time"

	"github.com/commercehub/financing.api.commercehub.io/models"
)

// ValidOrder returns a fully populated order resource awaiting handoff
func ValidOrder(id string) *models.OrderResourceDB {
	return &models.OrderResourceDB{
		ID:         id,
		CustomerID: "customer-7",
		Data: models.OrderDataDB{
			Status:        "pending",
			CreatedAt:     time.Now().Truncate(time.Millisecond),
			DiscountTotal: "0",
			ShippingTotal: "5.00",
			TaxTotal:      "2.10",
			Items: []models.OrderItemDB{
				{Description: "Leather Sofa", SKU: "SOFA-1", Price: "19.99", Quantity: 2},
			},
			BillingAddress: models.BillingAddressDB{
				Street1:    "12 Market Street",
				City:       "Leeds",
				State:      "West Yorkshire",
				PostalCode: "LS1 6DT",
			},
			BillingContact: models.BillingContactDB{
				FirstName: "Ada",
				LastName:  "Byron",
				Email:     "ada@example.com",
				Phone:     "07700900000",
			},
			CustomerIPAddress: "203.0.113.9",
			CancelURL:         "https://shop.example.com/cancel",
			ReturnURL:         "https://shop.example.com/thanks",
		},
	}
}

// CartResponse returns a successful remote cart creation response
func CartResponse() models.IncomingCartResponse {
	return models.IncomingCartResponse{
		URL: "https://app.paypossible.com/api/v1/carts/cart-1/",
	}
}

// LeadResponse returns a successful lead creation response
func LeadResponse() models.IncomingLeadResponse {
	return models.IncomingLeadResponse{
		AppURL: "https://app.paypossible.com/apply/lead-42/",
		ID:     "lead-42",
	}
}
