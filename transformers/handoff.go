package transformers

import (
	"fmt"
	"regexp"

	"github.com/commercehub/financing.api.commercehub.io/models"
	"github.com/shopspring/decimal"
)

// Channel is the fixed channel identifier sent on every lead request
const Channel = "commercehub"

var amountFormat = regexp.MustCompile(`^\d+(\.\d+)?$`)

// HandoffTransformer transforms an order resource into the provider request
// payloads. All transforms are pure and side-effect free.
type HandoffTransformer struct{}

// TransformToCartRequest builds the remote cart creation payload from an
// order. Line-item order is preserved and every amount is normalised to a
// two-fraction-digit decimal string.
func (ht HandoffTransformer) TransformToCartRequest(order *models.OrderResourceDB) (*models.OutgoingCartRequest, error) {
	discount, err := formatAmount(order.Data.DiscountTotal)
	if err != nil {
		return nil, fmt.Errorf("error formatting discount total: [%v]", err)
	}
	shipping, err := formatAmount(order.Data.ShippingTotal)
	if err != nil {
		return nil, fmt.Errorf("error formatting shipping total: [%v]", err)
	}
	tax, err := formatAmount(order.Data.TaxTotal)
	if err != nil {
		return nil, fmt.Errorf("error formatting tax total: [%v]", err)
	}

	items := make([]models.CartItem, len(order.Data.Items))
	for i, item := range order.Data.Items {
		price, err := formatAmount(item.Price)
		if err != nil {
			return nil, fmt.Errorf("error formatting price for sku [%s]: [%v]", item.SKU, err)
		}
		items[i] = models.CartItem{
			Description: item.Description,
			SKU:         item.SKU,
			Price:       price,
			Quantity:    item.Quantity,
		}
	}

	return &models.OutgoingCartRequest{
		Discount:    discount,
		Items:       items,
		ReferenceID: order.ID,
		Shipping:    shipping,
		Tax:         tax,
	}, nil
}

// TransformToLeadRequest builds the lead creation payload from an order and
// the references computed during the handoff. Billing address and personal
// contact fields are passed through verbatim; street2 and phone may be empty.
func (ht HandoffTransformer) TransformToLeadRequest(order *models.OrderResourceDB, cartURL, callbackURL, merchantURL string) models.OutgoingLeadRequest {
	return models.OutgoingLeadRequest{
		Address: models.LeadAddress{
			Street1: order.Data.BillingAddress.Street1,
			Street2: order.Data.BillingAddress.Street2,
			City:    order.Data.BillingAddress.City,
			State:   order.Data.BillingAddress.State,
			Zip:     order.Data.BillingAddress.PostalCode,
		},
		Agree:       true,
		CallbackURL: callbackURL,
		CancelURL:   order.Data.CancelURL,
		Cart:        models.CartReference{URL: cartURL},
		Channel:     Channel,
		IPAddress:   order.Data.CustomerIPAddress,
		Merchant:    models.MerchantReference{URL: merchantURL},
		Personal: models.LeadPersonal{
			FirstName: order.Data.BillingContact.FirstName,
			LastName:  order.Data.BillingContact.LastName,
			Email:     order.Data.BillingContact.Email,
			Phone:     order.Data.BillingContact.Phone,
		},
		RedirectURL: order.Data.ReturnURL,
	}
}

// formatAmount normalises a stored amount into a fixed-point decimal string
// with exactly two fraction digits. The provider parses these as currency
// amounts, so the format is a correctness contract rather than cosmetics.
func formatAmount(amount string) (string, error) {
	if !amountFormat.MatchString(amount) {
		return "", fmt.Errorf("amount [%s] format incorrect", amount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("amount [%s] not a valid decimal: [%v]", amount, err)
	}

	return d.StringFixed(2), nil
}
