package service

import (
	"fmt"
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/companieshouse/chs.go/log"
)

// CallbackService processes the asynchronous completion callback from
// PayPossible. The inbound request is unauthenticated; the only integrity
// check is the stored nonce comparison, and the transport response never
// reveals which branch was taken.
type CallbackService struct {
	DAO    dao.DAO
	Config config.Config
}

// ProcessCallback validates the presented nonce against the stored nonce and
// completes the order on a match. The nonce comparison and the paid
// transition are a single guarded update, so a duplicate delivery finds the
// order no longer awaiting the application and becomes a no-op.
func (service *CallbackService) ProcessCallback(req *http.Request, orderID, presentedNonce string) (ResponseType, error) {
	order, err := service.DAO.GetOrderResource(orderID)
	if err != nil {
		return Error, fmt.Errorf("error getting order resource from db: [%v]", err)
	}
	if order == nil {
		log.InfoR(req, "callback for unknown order ignored", log.Data{"order_id": orderID})
		return NotFound, nil
	}

	completed, err := service.DAO.CompleteOrder(orderID, presentedNonce, AwaitingApplication.String(), Paid.String())
	if err != nil {
		return Error, fmt.Errorf("error completing order [%s]: [%v]", orderID, err)
	}
	if !completed {
		// Mismatched or stale nonce, or an order that already left
		// awaiting-application. Logged for observability, ignored otherwise.
		log.InfoR(req, "callback did not match stored nonce for awaiting order", log.Data{"order_id": orderID})
		return Forbidden, nil
	}

	if err = service.DAO.ReduceInventory(order); err != nil {
		return Error, fmt.Errorf("error reducing inventory for order [%s]: [%v]", orderID, err)
	}

	log.InfoR(req, "Successfully completed order from provider callback", log.Data{"order_id": orderID})

	return Success, nil
}
