package service

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/commercehub/financing.api.commercehub.io/fixtures"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockOrderService(mockDAO *dao.MockDAO, cfg *config.Config) OrderService {
	return OrderService{
		DAO:    mockDAO,
		Config: *cfg,
	}
}

func TestUnitGetOrderSession(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	Convey("Error getting order from db", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockOrderService := createMockOrderService(mock, cfg)

		mock.EXPECT().GetOrderResource("order-1001").Return(nil, errors.New("error"))

		req := httptest.NewRequest("", "/test", nil)
		orderSession, responseType, err := mockOrderService.GetOrderSession(req, "order-1001")

		So(orderSession, ShouldBeNil)
		So(responseType.String(), ShouldEqual, Error.String())
		So(err.Error(), ShouldEqual, "error getting order resource from db: [error]")
	})

	Convey("Order not found", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockOrderService := createMockOrderService(mock, cfg)

		mock.EXPECT().GetOrderResource("order-1001").Return(nil, nil)

		req := httptest.NewRequest("", "/test", nil)
		orderSession, responseType, err := mockOrderService.GetOrderSession(req, "order-1001")

		So(orderSession, ShouldBeNil)
		So(responseType.String(), ShouldEqual, NotFound.String())
		So(err, ShouldBeNil)
	})

	Convey("Successful get order session", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockOrderService := createMockOrderService(mock, cfg)

		order := fixtures.ValidOrder("order-1001")
		order.Metadata = map[string]string{dao.MetadataLeadID: "lead-42"}
		mock.EXPECT().GetOrderResource("order-1001").Return(order, nil)

		req := httptest.NewRequest("", "/test", nil)
		orderSession, responseType, err := mockOrderService.GetOrderSession(req, "order-1001")

		So(err, ShouldBeNil)
		So(responseType.String(), ShouldEqual, Success.String())
		So(orderSession.ID, ShouldEqual, "order-1001")
		So(orderSession.Status, ShouldEqual, "pending")
		So(orderSession.LeadID, ShouldEqual, "lead-42")
	})
}

func TestUnitOrderStatusString(t *testing.T) {
	Convey("Order statuses have expected string values", t, func() {
		So(Pending.String(), ShouldEqual, "pending")
		So(AwaitingApplication.String(), ShouldEqual, "awaiting-application")
		So(Paid.String(), ShouldEqual, "paid")
		So(Failed.String(), ShouldEqual, "failed")
		So(Cancelled.String(), ShouldEqual, "cancelled")
	})
}
