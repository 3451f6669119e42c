package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/commercehub/financing.api.commercehub.io/fixtures"
	"github.com/commercehub/financing.api.commercehub.io/models"
	"github.com/commercehub/financing.api.commercehub.io/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockHandoffService(mockDAO *dao.MockDAO, cfg *config.Config) *service.HandoffService {
	return &service.HandoffService{
		Provider: &service.PayPossibleService{Config: *cfg},
		DAO:      mockDAO,
		Config:   *cfg,
	}
}

func registerProviderResponders() {
	cartResponse, _ := httpmock.NewJsonResponder(http.StatusCreated, fixtures.CartResponse())
	httpmock.RegisterResponder("POST", "https://app.paypossible.com/api/v1/carts/", cartResponse)

	leadResponse, _ := httpmock.NewJsonResponder(http.StatusCreated, fixtures.LeadResponse())
	httpmock.RegisterResponder("POST", "https://app.paypossible.com/api/v1/leads/", leadResponse)
}

func TestUnitHandleCreateFinancingJourney(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.MerchantID = "m1"
	cfg.APIToken = "token123"
	cfg.WebhookBaseURL = "https://api.shop.example.com"

	Convey("Order ID not supplied", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Error getting order resource", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		handoffService = createMockHandoffService(mock, cfg)
		mock.EXPECT().GetOrderResource("order-1001").Return(nil, errors.New("error"))

		req := httptest.NewRequest("POST", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "order-1001"})
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Order not found", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		handoffService = createMockHandoffService(mock, cfg)
		mock.EXPECT().GetOrderResource("order-1001").Return(nil, nil)

		req := httptest.NewRequest("POST", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "order-1001"})
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Order already paid", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		handoffService = createMockHandoffService(mock, cfg)

		order := fixtures.ValidOrder("order-1001")
		order.Data.Status = service.Paid.String()
		mock.EXPECT().GetOrderResource("order-1001").Return(order, nil)

		req := httptest.NewRequest("POST", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "order-1001"})
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Malformed order amount", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		handoffService = createMockHandoffService(mock, cfg)

		order := fixtures.ValidOrder("order-1001")
		order.Data.ShippingTotal = "free"
		mock.EXPECT().GetOrderResource("order-1001").Return(order, nil)

		req := httptest.NewRequest("POST", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "order-1001"})
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Provider failure returns bad gateway with shopper facing message", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		handoffService = createMockHandoffService(mock, cfg)
		mock.EXPECT().GetOrderResource("order-1001").Return(fixtures.ValidOrder("order-1001"), nil)

		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://app.paypossible.com/api/v1/carts/", httpmock.NewErrorResponder(errors.New("error")))

		req := httptest.NewRequest("POST", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "order-1001"})
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)

		So(w.Code, ShouldEqual, http.StatusBadGateway)
		So(w.Body.String(), ShouldContainSubstring, "There was an error transferring the cart. Please try again.")
	})

	Convey("Successful financing journey", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		handoffService = createMockHandoffService(mock, cfg)

		mock.EXPECT().GetOrderResource("order-1001").Return(fixtures.ValidOrder("order-1001"), nil)
		mock.EXPECT().SetHandoffDetails("order-1001", gomock.Any(), "lead-42").Return(nil)
		mock.EXPECT().UpdateOrderStatus("order-1001", "awaiting-application", "Awaiting customer application.").Return(nil)
		mock.EXPECT().EmptyActiveCart("customer-7").Return(nil)

		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		registerProviderResponders()

		req := httptest.NewRequest("POST", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "order-1001"})
		w := httptest.NewRecorder()
		HandleCreateFinancingJourney(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		journey := models.FinancingJourneyRest{}
		err := json.NewDecoder(w.Body).Decode(&journey)
		So(err, ShouldBeNil)
		So(journey.RedirectURL, ShouldEqual, "https://app.paypossible.com/apply/lead-42/")
	})
}
