package transformers

import (
	"github.com/commercehub/financing.api.commercehub.io/dao"
	"github.com/commercehub/financing.api.commercehub.io/models"
)

// OrderTransformer transforms order resource data between database and rest models
type OrderTransformer struct{}

// TransformToRest transforms an order resource database model into the public
// facing financing-session rest model
func (ot OrderTransformer) TransformToRest(dbResource models.OrderResourceDB) models.OrderResourceRest {
	return models.OrderResourceRest{
		ID:            dbResource.ID,
		Status:        dbResource.Data.Status,
		CreatedAt:     dbResource.Data.CreatedAt,
		CompletedAt:   dbResource.Data.CompletedAt,
		DiscountTotal: dbResource.Data.DiscountTotal,
		ShippingTotal: dbResource.Data.ShippingTotal,
		TaxTotal:      dbResource.Data.TaxTotal,
		LeadID:        dbResource.Metadata[dao.MetadataLeadID],
	}
}
