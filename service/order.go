package service

import (
	"fmt"
	"net/http"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/commercehub/financing.api.commercehub.io/models"
	"github.com/commercehub/financing.api.commercehub.io/transformers"
)

// OrderService contains the DAO for db access
type OrderService struct {
	DAO    dao.DAO
	Config config.Config
}

// OrderStatus Enum Type
type OrderStatus int

// Enumeration containing all possible order statuses
const (
	Pending OrderStatus = 1 + iota
	AwaitingApplication
	Paid
	Failed
	Cancelled
)

// String representation of order statuses
var orderStatuses = [...]string{
	"pending",
	"awaiting-application",
	"paid",
	"failed",
	"cancelled",
}

func (orderStatus OrderStatus) String() string {
	return orderStatuses[orderStatus-1]
}

// GetOrderSession retrieves the financing view of an order
func (service *OrderService) GetOrderSession(req *http.Request, id string) (*models.OrderResourceRest, ResponseType, error) {
	orderResource, err := service.DAO.GetOrderResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order resource from db: [%v]", err)
	}
	if orderResource == nil {
		return nil, NotFound, nil
	}

	orderRest := transformers.OrderTransformer{}.TransformToRest(*orderResource)

	return &orderRest, Success, nil
}
