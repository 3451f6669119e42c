package dao

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/commercehub/financing.api.commercehub.io/models"
	"github.com/companieshouse/chs.go/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its work.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// Check we can connect to the mongodb instance. Failure here means the db
	// is misconfigured or unreachable and the service cannot do its work.
	pingContext, pingCancel := context.WithDeadline(context.Background(), time.Now().Add(5*time.Second))
	defer pingCancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as
// the backend driver. Orders, carts and product stock live in separate
// collections of the commerce platform's database. The connection is opened
// lazily on first use.
type MongoService struct {
	db                     MongoDatabaseInterface
	MongoDBURL             string
	DatabaseName           string
	CollectionName         string
	CartsCollectionName    string
	ProductsCollectionName string
}

// NewDAO returns a new DAO using the provided config
func NewDAO(cfg *config.Config) *MongoService {
	return &MongoService{
		MongoDBURL:             cfg.MongoDBURL,
		DatabaseName:           cfg.Database,
		CollectionName:         cfg.OrdersCollection,
		CartsCollectionName:    cfg.CartsCollection,
		ProductsCollectionName: cfg.ProductsCollection,
	}
}

func (m *MongoService) collection(name string) *mongo.Collection {
	if m.db == nil {
		m.db = getMongoDatabase(m.MongoDBURL, m.DatabaseName)
	}
	return m.db.Collection(name)
}

// GetOrderResource gets an order resource from the DB
// If the order is not found in the DB, return nil
func (m *MongoService) GetOrderResource(id string) (*models.OrderResourceDB, error) {
	var resource models.OrderResourceDB

	collection := m.collection(m.CollectionName)
	dbResourceErr := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&resource)
	if dbResourceErr != nil {
		if dbResourceErr == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, dbResourceErr
	}

	return &resource, nil
}

// UpdateOrderStatus transitions the order status and appends an audit note
func (m *MongoService) UpdateOrderStatus(id, status, note string) error {
	collection := m.collection(m.CollectionName)

	update := bson.M{
		"$set":  bson.M{"data.status": status},
		"$push": bson.M{"data.notes": note},
	}

	res, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order [%s] not found when updating status", id)
	}

	return nil
}

// SetHandoffDetails stores the callback nonce and lead id as order metadata.
// A later handoff attempt overwrites both, invalidating any earlier attempt's
// callback.
func (m *MongoService) SetHandoffDetails(id, nonce, leadID string) error {
	collection := m.collection(m.CollectionName)

	update := bson.M{
		"$set": bson.M{
			"metadata." + MetadataCallbackNonce: nonce,
			"metadata." + MetadataLeadID:        leadID,
		},
	}

	res, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order [%s] not found when storing handoff details", id)
	}

	return nil
}

// CompleteOrder marks an order as paid if the presented nonce matches the
// stored nonce and the order is still awaiting the customer application. The
// match and transition happen in a single update so a duplicate or stale
// callback can never complete the order twice.
func (m *MongoService) CompleteOrder(id, presentedNonce, awaitingStatus, paidStatus string) (bool, error) {
	collection := m.collection(m.CollectionName)

	filter := bson.M{
		"_id":                               id,
		"metadata." + MetadataCallbackNonce: presentedNonce,
		"data.status":                       awaitingStatus,
	}
	update := bson.M{
		"$set": bson.M{
			"data.status": paidStatus,
			// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
			"data.completed_at": time.Now().Truncate(time.Millisecond),
		},
		"$push": bson.M{"data.notes": "Payment completed by provider callback."},
	}

	res, err := collection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		return false, err
	}

	return res.ModifiedCount == 1, nil
}

// EmptyActiveCart clears the shopper's active platform cart once the order
// has been placed pending the provider's decision
func (m *MongoService) EmptyActiveCart(customerID string) error {
	collection := m.collection(m.CartsCollectionName)

	_, err := collection.DeleteOne(context.Background(), bson.M{"customer_id": customerID})
	if err != nil {
		return fmt.Errorf("error emptying active cart for customer [%s]: %v", customerID, err)
	}

	return nil
}

// ReduceInventory decrements product stock for each line item on the order
func (m *MongoService) ReduceInventory(order *models.OrderResourceDB) error {
	collection := m.collection(m.ProductsCollectionName)

	for _, item := range order.Data.Items {
		update := bson.M{"$inc": bson.M{"stock": -item.Quantity}}
		_, err := collection.UpdateOne(context.Background(), bson.M{"sku": item.SKU}, update)
		if err != nil {
			return fmt.Errorf("error reducing inventory for sku [%s]: %v", item.SKU, err)
		}
	}

	return nil
}
