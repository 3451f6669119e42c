package models

// OutgoingCartRequest is the request sent to PayPossible to create a remote cart.
// All amount fields are fixed-point decimal strings with two fraction digits,
// as the provider parses them as currency amounts.
type OutgoingCartRequest struct {
	Discount    string     `json:"discount"`
	Items       []CartItem `json:"items"        validate:"required"`
	ReferenceID string     `json:"reference_id" validate:"required"`
	Shipping    string     `json:"shipping"`
	Tax         string     `json:"tax"`
}

// CartItem is a single line item in the remote cart request
type CartItem struct {
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

// IncomingCartResponse is the response from PayPossible cart creation
type IncomingCartResponse struct {
	URL string `json:"url"`
}

// OutgoingLeadRequest is the request sent to PayPossible to create a lead
// referencing a previously created remote cart
type OutgoingLeadRequest struct {
	Address     LeadAddress       `json:"address"`
	Agree       bool              `json:"agree"`
	CallbackURL string            `json:"callback_url" validate:"required"`
	CancelURL   string            `json:"cancel_url"`
	Cart        CartReference     `json:"cart"`
	Channel     string            `json:"channel"`
	IPAddress   string            `json:"ip_address"`
	Merchant    MerchantReference `json:"merchant"`
	Personal    LeadPersonal      `json:"personal"`
	RedirectURL string            `json:"redirect_url"`
}

// LeadAddress is the billing address block of a lead request
type LeadAddress struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// LeadPersonal is the personal contact block of a lead request
type LeadPersonal struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CartReference points a lead at the remote cart it applies to
type CartReference struct {
	URL string `json:"url" validate:"required"`
}

// MerchantReference points a lead at the merchant it was raised for
type MerchantReference struct {
	URL string `json:"url" validate:"required"`
}

// IncomingLeadResponse is the response from PayPossible lead creation
type IncomingLeadResponse struct {
	AppURL string `json:"app_url"`
	ID     string `json:"id"`
}
