package handlers

import (
	"fmt"

	"github.com/commercehub/financing.api.commercehub.io/config"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
)

// ProducerTopic is the topic to which the order completed kafka message is sent
const ProducerTopic = "order-completed"

// ProducerSchemaName is the schema which will be used to send the order completed kafka message with
const ProducerSchemaName = "order-completed"

// orderCompleted represents the avro schema held in the schema registry
type orderCompleted struct {
	OrderID string `avro:"order_id"`
}

// produceOrderMessage handles creating a producer, marshalling the order id
// into the correct avro schema and sending the message to the topic defined in
// ProducerTopic
func produceOrderMessage(orderID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	orderCompletedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: orderCompletedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(orderID, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceOrderMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(orderID string, orderCompletedSchema avro.Schema) (*producer.Message, error) {
	orderCompletedMessage := orderCompleted{OrderID: orderID}

	messageBytes, err := orderCompletedSchema.Marshal(orderCompletedMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling order completed message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
