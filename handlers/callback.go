package handlers

import (
	"fmt"
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/service"
	"github.com/companieshouse/chs.go/log"
)

// handleOrderMessage allows the kafka message production to be mocked in tests
var handleOrderMessage = produceOrderMessage

// HandleProviderCallback processes a payment notification from the financing
// provider. The provider retries on non-2xx responses and a retry can never
// change the outcome, so every path responds 200.
func HandleProviderCallback(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	orderID := query.Get("order_id")
	if orderID == "" {
		orderID = query.Get("id")
	}
	nonce := query.Get("nonce")

	if orderID == "" || nonce == "" {
		log.InfoR(req, "Provider callback missing order id or nonce, ignoring")
		w.WriteHeader(http.StatusOK)
		return
	}

	responseType, err := callbackService.ProcessCallback(req, orderID, nonce)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error processing provider callback: [%v]", err), log.Data{"order_id": orderID, "service_response_type": responseType.String()})
		w.WriteHeader(http.StatusOK)
		return
	}

	if responseType != service.Success {
		log.InfoR(req, "Provider callback did not complete the order", log.Data{"order_id": orderID, "service_response_type": responseType.String()})
		w.WriteHeader(http.StatusOK)
		return
	}

	log.InfoR(req, "Order completed by provider callback", log.Data{"order_id": orderID})

	err = handleOrderMessage(orderID)
	if err != nil {
		// The order is already completed, so log the failure rather than
		// signalling the provider to retry
		log.ErrorR(req, fmt.Errorf("error producing order completed kafka message: [%v]", err), log.Data{"order_id": orderID})
	}

	w.WriteHeader(http.StatusOK)
}
