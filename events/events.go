// events.go - Publishes product change notifications to an MQTT broker

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-shop-backend/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Event names a product change
type Event string

const (
	ProductCreated Event = "created"
	ProductUpdated Event = "updated"
	ProductDeleted Event = "deleted"
)

// Publisher delivers product events. Implementations must be safe for
// concurrent use by request handlers.
type Publisher interface {
	Publish(ctx context.Context, event Event, product models.ProductView) error
}

// Message is the JSON payload written to the broker
type Message struct {
	Event   Event              `json:"event"`
	Product models.ProductView `json:"product"`
	At      time.Time          `json:"at"`
}

// NopPublisher drops every event; used when no broker is configured
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event, models.ProductView) error { return nil }

// publishTimeout bounds how long a request waits for the broker to
// acknowledge an event. While the client is reconnecting, QoS 1 tokens stay
// pending until the broker is back.
const publishTimeout = 2 * time.Second

// MQTTPublisher publishes events with QoS 1 to <prefix>/product/<event>
type MQTTPublisher struct {
	client  mqtt.Client
	prefix  string
	timeout time.Duration
}

func newMQTTPublisher(client mqtt.Client, prefix string) *MQTTPublisher {
	return &MQTTPublisher{client: client, prefix: prefix, timeout: publishTimeout}
}

// NewMQTTPublisher connects to broker and returns a ready publisher
func NewMQTTPublisher(broker, clientID, prefix string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, errors.New("mqtt connect timed out")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return newMQTTPublisher(client, prefix), nil
}

// Topic returns the topic an event is published on
func Topic(prefix string, event Event) string {
	return prefix + "/product/" + string(event)
}

func (p *MQTTPublisher) Publish(ctx context.Context, event Event, product models.ProductView) error {
	payload, err := json.Marshal(Message{Event: event, Product: product, At: time.Now().UTC()})
	if err != nil {
		return err
	}

	topic := Topic(p.prefix, event)
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	token := p.client.Publish(topic, 1, false, payload)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return fmt.Errorf("publish %s: %w", topic, ctx.Err())
	}
}

// Close disconnects from the broker, waiting briefly for in-flight work
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
