package service

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/commercehub/financing.api.commercehub.io/transformers"
	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"gopkg.in/go-playground/validator.v9"
)

// awaitingApplicationNote is the audit note attached to the on-hold transition
const awaitingApplicationNote = "Awaiting customer application."

// HandoffService drives the two-call handoff of an order to PayPossible:
// create a remote cart, then create a lead referencing it, then move the
// order into awaiting-application. The service provides no idempotency;
// invoking it twice for the same order produces two independent remote
// carts and leads, and the later attempt's nonce overwrites the earlier one.
type HandoffService struct {
	Provider ProviderClient
	DAO      dao.DAO
	Config   config.Config
}

// CreateHandoff hands the order to the provider and returns the hosted
// application URL the shopper must be redirected to. The order is not
// mutated unless both provider calls succeed; an abandoned remote cart is
// left to the provider to expire.
func (service *HandoffService) CreateHandoff(req *http.Request, id string) (string, ResponseType, error) {
	order, err := service.DAO.GetOrderResource(id)
	if err != nil {
		return "", Error, fmt.Errorf("error getting order resource from db: [%v]", err)
	}
	if order == nil {
		return "", NotFound, fmt.Errorf("order not found. id: %s", id)
	}

	if order.Data.Status == Paid.String() {
		return "", Forbidden, fmt.Errorf("order [%s] is already paid", id)
	}

	transformer := transformers.HandoffTransformer{}

	cartRequest, err := transformer.TransformToCartRequest(order)
	if err != nil {
		return "", InvalidData, fmt.Errorf("error building cart request: [%v]", err)
	}
	if err = validateHandoffPayload(cartRequest); err != nil {
		return "", InvalidData, fmt.Errorf("invalid cart request: [%v]", err)
	}

	log.TraceR(req, "performing PayPossible cart request", log.Data{"order_id": id})

	cartResponse, err := service.Provider.CreateCart(cartRequest)
	if err != nil {
		return "", Error, err
	}

	// A fresh nonce per attempt; the stored copy is the only thing a later
	// callback is checked against.
	nonce := generateNonce()
	callbackURL, err := service.callbackURL(id, nonce)
	if err != nil {
		return "", Error, err
	}

	leadRequest := transformer.TransformToLeadRequest(order, cartResponse.URL, callbackURL, service.Provider.MerchantURL())
	if err = validateHandoffPayload(&leadRequest); err != nil {
		return "", InvalidData, fmt.Errorf("invalid lead request: [%v]", err)
	}

	log.TraceR(req, "performing PayPossible lead request", log.Data{"order_id": id})

	leadResponse, err := service.Provider.CreateLead(&leadRequest)
	if err != nil {
		return "", Error, err
	}

	// Metadata is stored before the status transition so a callback arriving
	// immediately after the shopper is redirected can already correlate.
	err = service.DAO.SetHandoffDetails(id, nonce, leadResponse.ID)
	if err != nil {
		return "", Error, fmt.Errorf("error storing handoff details for order session: [%v]", err)
	}

	err = service.DAO.UpdateOrderStatus(id, AwaitingApplication.String(), awaitingApplicationNote)
	if err != nil {
		return "", Error, fmt.Errorf("error setting order status: [%v]", err)
	}

	// The order has been placed pending the provider's decision; emptying the
	// shopper's platform cart is best effort at this point.
	if err = service.DAO.EmptyActiveCart(order.CustomerID); err != nil {
		log.ErrorR(req, fmt.Errorf("error emptying active cart for order [%s]: [%v]", id, err))
	}

	log.InfoR(req, "Successfully started financing application", log.Data{"order_id": id, "lead_id": leadResponse.ID})

	return leadResponse.AppURL, Success, nil
}

// generateNonce returns the correlation token for one handoff attempt
func generateNonce() string {
	return uuid.NewString()
}

// callbackURL computes the URL the provider will invoke once the customer
// application completes, carrying the order id and nonce as query parameters
func (service *HandoffService) callbackURL(orderID, nonce string) (string, error) {
	callbackEndpoint, err := url.Parse(service.Config.WebhookBaseURL + "/callback/orders/financing")
	if err != nil {
		return "", fmt.Errorf("error building callback url: [%v]", err)
	}

	query := callbackEndpoint.Query()
	query.Set("nonce", nonce)
	query.Set("order_id", orderID)
	callbackEndpoint.RawQuery = query.Encode()

	return callbackEndpoint.String(), nil
}

func validateHandoffPayload(payload interface{}) error {
	validate := validator.New()
	return validate.Struct(payload)
}
