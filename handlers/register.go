package handlers

import (
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/commercehub/financing.api.commercehub.io/interceptors"
	"github.com/commercehub/financing.api.commercehub.io/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var orderService *service.OrderService
var handoffService *service.HandoffService
var callbackService *service.CallbackService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewDAO(&cfg)

	orderService = &service.OrderService{
		DAO:    m,
		Config: cfg,
	}

	handoffService = &service.HandoffService{
		Provider: &service.PayPossibleService{Config: cfg},
		DAO:      m,
		Config:   cfg,
	}

	callbackService = &service.CallbackService{
		DAO:    m,
		Config: cfg,
	}

	oa := &interceptors.OrderAuthenticationInterceptor{
		Service: *orderService,
		Config:  cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The storefront routes need the order auth interceptor
	// and the callback route must not, so the router needs to be split up. This
	// allows per-subrouter middleware.

	journeyRouter := mainRouter.PathPrefix("/private/orders/{order_id}/financing-journey").Subrouter()
	journeyRouter.HandleFunc("", HandleCreateFinancingJourney).Methods("POST").Name("create-financing-journey")

	sessionRouter := mainRouter.PathPrefix("/private/orders/{order_id}/financing-session").Subrouter()
	sessionRouter.HandleFunc("", HandleGetFinancingSession).Methods("GET").Name("get-financing-session")

	// The provider calls back without platform credentials, so the callback
	// endpoint needs to be it's own subrouter without the auth interceptor
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/orders/financing", HandleProviderCallback).Methods("GET", "POST").Name("handle-provider-callback")

	// Set middleware for subrouters
	journeyRouter.Use(log.Handler, oa.OrderAuthenticationIntercept)
	sessionRouter.Use(log.Handler, oa.OrderAuthenticationIntercept)
	callbackRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
