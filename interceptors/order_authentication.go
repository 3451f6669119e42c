package interceptors

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/helpers"
	"github.com/commercehub/financing.api.commercehub.io/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// OrderAuthenticationInterceptor contains the order service used in the interceptor
type OrderAuthenticationInterceptor struct {
	Service service.OrderService
	Config  config.Config
}

// OrderAuthenticationIntercept checks that the caller is the platform storefront
// and that the order exists, before storing the order session in the request
// context for the handler
func (orderAuthenticationInterceptor OrderAuthenticationInterceptor) OrderAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check for an order ID in request
		vars := mux.Vars(r)
		id := vars["order_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("OrderAuthenticationInterceptor error: no order id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Only the storefront holds the platform API key, shoppers never call
		// these routes directly
		presentedKey := r.Header.Get("Platform-Api-Key")
		if presentedKey == "" || subtle.ConstantTimeCompare([]byte(presentedKey), []byte(orderAuthenticationInterceptor.Config.PlatformAPIKey)) != 1 {
			log.InfoR(r, "OrderAuthenticationInterceptor unauthorised: invalid platform api key", log.Data{"order_id": id})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Get the order session from the ID in request
		orderSession, responseType, err := orderAuthenticationInterceptor.Service.GetOrderSession(r, id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("OrderAuthenticationInterceptor error when retrieving order session: [%v]", err), log.Data{"service_response_type": responseType.String()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if responseType == service.NotFound {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if responseType != service.Success {
			log.ErrorR(r, fmt.Errorf("OrderAuthenticationInterceptor error when retrieving order session. Status: [%s]", responseType.String()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Store orderSession in context to use later in the handler
		ctx := context.WithValue(r.Context(), helpers.ContextKeyOrderSession, orderSession)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
