package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/models"
)

// providerTimeout bounds each outbound provider call. A timeout surfaces as
// the same step-tagged error as any other transport failure.
const providerTimeout = 30 * time.Second

// Transport is left nil so the default transport is used, which keeps the
// client interceptable in tests.
var providerHTTPClient = &http.Client{Timeout: providerTimeout}

// ProviderClient is an interface for the PayPossible client methods used in
// this service
type ProviderClient interface {
	CreateCart(cartRequest *models.OutgoingCartRequest) (*models.IncomingCartResponse, error)
	CreateLead(leadRequest *models.OutgoingLeadRequest) (*models.IncomingLeadResponse, error)
	MerchantURL() string
}

// PayPossibleService handles the specific functionality of integrating
// PayPossible into order handoffs. Exactly one attempt is made per call; no
// retries.
type PayPossibleService struct {
	Config config.Config
}

// CreateCart creates a remote cart with PayPossible. Cart creation requires
// no authorization.
func (pp *PayPossibleService) CreateCart(cartRequest *models.OutgoingCartRequest) (*models.IncomingCartResponse, error) {
	requestBody, err := json.Marshal(cartRequest)
	if err != nil {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("error marshalling cart request: [%v]", err)}
	}

	request, err := http.NewRequest("POST", pp.cartsURL(), bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("error generating request for PayPossible: [%v]", err)}
	}
	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/json")

	resp, err := providerHTTPClient.Do(request)
	if err != nil {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("error sending request to PayPossible to create cart: [%v]", err)}
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("error reading response from PayPossible: [%v]", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusIMUsed {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("error status [%v] back from PayPossible creating cart", resp.StatusCode)}
	}

	cartResponse := &models.IncomingCartResponse{}
	err = json.Unmarshal(body, cartResponse)
	if err != nil {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("error reading response from PayPossible: [%v]", err)}
	}
	if cartResponse.URL == "" {
		return nil, &ProviderRequestError{Step: CartStep, Err: fmt.Errorf("no cart url returned from PayPossible")}
	}

	return cartResponse, nil
}

// CreateLead creates a lead with PayPossible referencing a previously created
// remote cart. Lead creation carries the merchant API token.
func (pp *PayPossibleService) CreateLead(leadRequest *models.OutgoingLeadRequest) (*models.IncomingLeadResponse, error) {
	requestBody, err := json.Marshal(leadRequest)
	if err != nil {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("error marshalling lead request: [%v]", err)}
	}

	request, err := http.NewRequest("POST", pp.leadsURL(), bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("error generating request for PayPossible: [%v]", err)}
	}
	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Token "+pp.Config.APIToken)
	request.Header.Add("content-type", "application/json")

	resp, err := providerHTTPClient.Do(request)
	if err != nil {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("error sending request to PayPossible to create lead: [%v]", err)}
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("error reading response from PayPossible: [%v]", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusIMUsed {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("error status [%v] back from PayPossible creating lead", resp.StatusCode)}
	}

	leadResponse := &models.IncomingLeadResponse{}
	err = json.Unmarshal(body, leadResponse)
	if err != nil {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("error reading response from PayPossible: [%v]", err)}
	}
	if leadResponse.AppURL == "" || leadResponse.ID == "" {
		return nil, &ProviderRequestError{Step: LeadStep, Err: fmt.Errorf("no application url or lead id returned from PayPossible")}
	}

	return leadResponse, nil
}

// MerchantURL returns the provider-side URL reference for the configured merchant
func (pp *PayPossibleService) MerchantURL() string {
	return pp.Config.MerchantURL()
}

func (pp *PayPossibleService) cartsURL() string {
	return fmt.Sprintf("https://%s/api/v1/carts/", pp.Config.ProviderDomain())
}

func (pp *PayPossibleService) leadsURL() string {
	return fmt.Sprintf("https://%s/api/v1/leads/", pp.Config.ProviderDomain())
}
