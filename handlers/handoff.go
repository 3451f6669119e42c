package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/models"
	"github.com/commercehub/financing.api.commercehub.io/service"
	"github.com/commercehub/financing.api.commercehub.io/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleCreateFinancingJourney creates a cart and lead with the financing
// provider for the order and returns the url the shopper should be redirected
// to in order to complete their application
func HandleCreateFinancingJourney(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["order_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	appURL, responseType, err := handoffService.CreateHandoff(req, id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating financing journey: [%v]", err), log.Data{"service_response_type": responseType.String()})

		// Provider failures surface a shopper facing message so the storefront
		// can show which handoff step went wrong
		providerErr := &service.ProviderRequestError{}
		if errors.As(err, &providerErr) {
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(providerErr.UserMessage()), http.StatusBadGateway)
			return
		}

		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	journey := models.FinancingJourneyRest{RedirectURL: appURL}

	log.InfoR(req, "Successfully started financing journey", log.Data{"order_id": id, "redirect_url": appURL})

	utils.WriteJSONWithStatus(w, req, journey, http.StatusCreated)
}
