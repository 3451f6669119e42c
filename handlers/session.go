package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/helpers"
	"github.com/commercehub/financing.api.commercehub.io/models"
	"github.com/companieshouse/chs.go/log"
)

// HandleGetFinancingSession retrieves the financing state of an order, loaded
// into the request context by the order auth interceptor
func HandleGetFinancingSession(w http.ResponseWriter, req *http.Request) {
	orderSession, ok := req.Context().Value(helpers.ContextKeyOrderSession).(*models.OrderResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid order session in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(orderSession)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successfully returned financing session", log.Data{"order_id": orderSession.ID})
}
