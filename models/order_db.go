package models

import "time"

// OrderResourceDB contains all order details stored in the DB. The order is
// owned by the commerce platform; this service only reads it and requests
// status transitions and metadata writes.
type OrderResourceDB struct {
	ID         string            `bson:"_id"`
	CustomerID string            `bson:"customer_id"`
	Metadata   map[string]string `bson:"metadata,omitempty"`
	Data       OrderDataDB       `bson:"data"`
}

// OrderDataDB is the order detail block inside an order resource
type OrderDataDB struct {
	Status            string           `bson:"status"`
	CreatedAt         time.Time        `bson:"created_at,omitempty"`
	CompletedAt       time.Time        `bson:"completed_at,omitempty"`
	DiscountTotal     string           `bson:"discount_total"`
	ShippingTotal     string           `bson:"shipping_total"`
	TaxTotal          string           `bson:"tax_total"`
	Items             []OrderItemDB    `bson:"items"`
	BillingAddress    BillingAddressDB `bson:"billing_address"`
	BillingContact    BillingContactDB `bson:"billing_contact"`
	CustomerIPAddress string           `bson:"customer_ip_address"`
	CancelURL         string           `bson:"cancel_url"`
	ReturnURL         string           `bson:"return_url"`
	Notes             []string         `bson:"notes,omitempty"`
}

// OrderItemDB is a single order line item
type OrderItemDB struct {
	Description string `bson:"description"`
	SKU         string `bson:"sku"`
	Price       string `bson:"price"`
	Quantity    int    `bson:"quantity"`
}

// BillingAddressDB is the billing address captured at checkout
type BillingAddressDB struct {
	Street1    string `bson:"street1"`
	Street2    string `bson:"street2"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	PostalCode string `bson:"postal_code"`
}

// BillingContactDB is the billing contact captured at checkout
type BillingContactDB struct {
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
}
