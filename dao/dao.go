package dao

import "github.com/commercehub/financing.api.commercehub.io/models"

// Metadata keys written to an order during a handoff. The callback nonce is
// the sole integrity check tying a provider callback to the handoff attempt
// that generated it.
const (
	MetadataCallbackNonce = "callback_nonce"
	MetadataLeadID        = "lead_id"
)

// DAO is an interface for accessing order data from a backend store
type DAO interface {
	GetOrderResource(id string) (*models.OrderResourceDB, error)
	UpdateOrderStatus(id, status, note string) error
	SetHandoffDetails(id, nonce, leadID string) error
	CompleteOrder(id, presentedNonce, awaitingStatus, paidStatus string) (bool, error)
	EmptyActiveCart(customerID string) error
	ReduceInventory(order *models.OrderResourceDB) error
}
