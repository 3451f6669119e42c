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

func createMockCallbackService(mockDAO *dao.MockDAO, cfg *config.Config) CallbackService {
	return CallbackService{
		DAO:    mockDAO,
		Config: *cfg,
	}
}

func TestUnitProcessCallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	Convey("Error getting order from db", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockCallbackService := createMockCallbackService(mock, cfg)

		mock.EXPECT().GetOrderResource("order-1001").Return(nil, errors.New("error"))

		req := httptest.NewRequest("", "/test", nil)
		responseType, err := mockCallbackService.ProcessCallback(req, "order-1001", "nonce-1")

		So(responseType.String(), ShouldEqual, Error.String())
		So(err.Error(), ShouldEqual, "error getting order resource from db: [error]")
	})

	Convey("Callback for unknown order is ignored", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockCallbackService := createMockCallbackService(mock, cfg)

		mock.EXPECT().GetOrderResource("order-1001").Return(nil, nil)

		req := httptest.NewRequest("", "/test", nil)
		responseType, err := mockCallbackService.ProcessCallback(req, "order-1001", "nonce-1")

		So(responseType.String(), ShouldEqual, NotFound.String())
		So(err, ShouldBeNil)
	})

	Convey("Callback with mismatched nonce never mutates the order", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockCallbackService := createMockCallbackService(mock, cfg)

		order := fixtures.ValidOrder("order-1001")
		order.Data.Status = AwaitingApplication.String()
		order.Metadata = map[string]string{dao.MetadataCallbackNonce: "nonce-1"}

		mock.EXPECT().GetOrderResource("order-1001").Return(order, nil)
		mock.EXPECT().CompleteOrder("order-1001", "stale-nonce", "awaiting-application", "paid").Return(false, nil)

		req := httptest.NewRequest("", "/test", nil)
		responseType, err := mockCallbackService.ProcessCallback(req, "order-1001", "stale-nonce")

		So(responseType.String(), ShouldEqual, Forbidden.String())
		So(err, ShouldBeNil)
	})

	Convey("Error completing order", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockCallbackService := createMockCallbackService(mock, cfg)

		mock.EXPECT().GetOrderResource("order-1001").Return(fixtures.ValidOrder("order-1001"), nil)
		mock.EXPECT().CompleteOrder("order-1001", "nonce-1", "awaiting-application", "paid").Return(false, errors.New("error"))

		req := httptest.NewRequest("", "/test", nil)
		responseType, err := mockCallbackService.ProcessCallback(req, "order-1001", "nonce-1")

		So(responseType.String(), ShouldEqual, Error.String())
		So(err.Error(), ShouldEqual, "error completing order [order-1001]: [error]")
	})

	Convey("Error reducing inventory after completion", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockCallbackService := createMockCallbackService(mock, cfg)

		order := fixtures.ValidOrder("order-1001")
		mock.EXPECT().GetOrderResource("order-1001").Return(order, nil)
		mock.EXPECT().CompleteOrder("order-1001", "nonce-1", "awaiting-application", "paid").Return(true, nil)
		mock.EXPECT().ReduceInventory(order).Return(errors.New("error"))

		req := httptest.NewRequest("", "/test", nil)
		responseType, err := mockCallbackService.ProcessCallback(req, "order-1001", "nonce-1")

		So(responseType.String(), ShouldEqual, Error.String())
		So(err, ShouldNotBeNil)
	})

	Convey("Matching callback completes the order exactly once", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mockCallbackService := createMockCallbackService(mock, cfg)

		order := fixtures.ValidOrder("order-1001")
		order.Data.Status = AwaitingApplication.String()
		order.Metadata = map[string]string{dao.MetadataCallbackNonce: "nonce-1"}

		// First delivery matches the guarded update; the duplicate finds the
		// order no longer awaiting the application and is a no-op.
		mock.EXPECT().GetOrderResource("order-1001").Return(order, nil).Times(2)
		first := mock.EXPECT().CompleteOrder("order-1001", "nonce-1", "awaiting-application", "paid").Return(true, nil)
		mock.EXPECT().CompleteOrder("order-1001", "nonce-1", "awaiting-application", "paid").Return(false, nil).After(first)
		mock.EXPECT().ReduceInventory(order).Return(nil)

		req := httptest.NewRequest("", "/test", nil)
		responseType, err := mockCallbackService.ProcessCallback(req, "order-1001", "nonce-1")
		So(responseType.String(), ShouldEqual, Success.String())
		So(err, ShouldBeNil)

		responseType, err = mockCallbackService.ProcessCallback(req, "order-1001", "nonce-1")
		So(responseType.String(), ShouldEqual, Forbidden.String())
		So(err, ShouldBeNil)
	})
}
