// Package outdoor subscribes to the outdoor sensor topics and keeps the
// latest reading per quantity. The form page uses the snapshot to
// preselect the outdoor band fields; the feed keeps no history.
package outdoor

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

// Quantity identifies one outdoor sensor stream.
type Quantity string

const (
	QuantityTemperature Quantity = "temperature"
	QuantityPM25        Quantity = "pm25"
	QuantityHumidity    Quantity = "humidity"
)

// Reading is one outdoor sensor sample.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	SensorID  string    `json:"sensor_id"`
	Value     float64   `json:"value"`
}

// Conditions is a point-in-time snapshot of the latest usable readings.
// A nil member means no fresh reading is available for that quantity.
type Conditions struct {
	Temperature *Reading
	PM25        *Reading
	Humidity    *Reading
}

// TemperatureBand maps the snapshot's outdoor temperature onto its form
// band. ok is false when no fresh reading exists.
func (c Conditions) TemperatureBand() (models.OutdoorBand, bool) {
	if c.Temperature == nil {
		return "", false
	}
	return models.BandForTemperature(c.Temperature.Value), true
}

// PM25Band maps the snapshot's outdoor PM2.5 onto its form band.
func (c Conditions) PM25Band() (models.OutdoorBand, bool) {
	if c.PM25 == nil {
		return "", false
	}
	return models.BandForPM25(c.PM25.Value), true
}

// HumidityBand maps the snapshot's outdoor humidity onto its form band.
func (c Conditions) HumidityBand() (models.OutdoorBand, bool) {
	if c.Humidity == nil {
		return "", false
	}
	return models.BandForHumidity(c.Humidity.Value), true
}

// FeedConfig holds the MQTT connection and topic settings for the feed.
type FeedConfig struct {
	Broker           string
	ClientID         string
	Username         string
	Password         string
	TemperatureTopic string // e.g. "outdoor/+/temperature"
	PM25Topic        string // e.g. "outdoor/+/pm25"
	HumidityTopic    string // e.g. "outdoor/+/humidity"
	MaxAge           time.Duration
}

// Feed is the live outdoor conditions subscriber.
type Feed struct {
	client mqtt.Client
	config FeedConfig

	mu     sync.RWMutex
	latest map[Quantity]Reading
}

// NewFeed connects to the broker and subscribes to the configured topics.
func NewFeed(config FeedConfig) (*Feed, error) {
	feed := &Feed{
		config: config,
		latest: make(map[Quantity]Reading),
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	opts.SetUsername(config.Username)
	opts.SetPassword(config.Password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("OutdoorFeed: connection lost: %v", err)
	})
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		log.Printf("OutdoorFeed: connected to %s", config.Broker)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	feed.client = client

	if err := feed.subscribeAll(); err != nil {
		client.Disconnect(250)
		return nil, err
	}

	return feed, nil
}

// subscribeAll subscribes to every configured outdoor topic.
func (f *Feed) subscribeAll() error {
	topics := []struct {
		quantity Quantity
		topic    string
	}{
		{QuantityTemperature, f.config.TemperatureTopic},
		{QuantityPM25, f.config.PM25Topic},
		{QuantityHumidity, f.config.HumidityTopic},
	}

	for _, t := range topics {
		if t.topic == "" {
			continue
		}
		token := f.client.Subscribe(t.topic, 1, f.handler(t.quantity))
		if token.Wait() && token.Error() != nil {
			return fmt.Errorf("failed to subscribe to %s topic: %w", t.quantity, token.Error())
		}
		log.Printf("OutdoorFeed: subscribed to %s topic: %s", t.quantity, t.topic)
	}

	return nil
}

// handler decodes a sensor payload and records it as the latest reading.
func (f *Feed) handler(quantity Quantity) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		var reading Reading
		if err := json.Unmarshal(msg.Payload(), &reading); err != nil {
			log.Printf("OutdoorFeed: bad %s payload on %s: %v", quantity, msg.Topic(), err)
			return
		}
		if reading.Timestamp.IsZero() {
			reading.Timestamp = time.Now()
		}
		f.record(quantity, reading)
	}
}

func (f *Feed) record(quantity Quantity, reading Reading) {
	f.mu.Lock()
	f.latest[quantity] = reading
	f.mu.Unlock()
}

// Snapshot returns the latest reading per quantity, dropping readings
// older than the configured max age.
func (f *Feed) Snapshot() Conditions {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var c Conditions
	now := time.Now()

	if r, ok := f.fresh(QuantityTemperature, now); ok {
		c.Temperature = &r
	}
	if r, ok := f.fresh(QuantityPM25, now); ok {
		c.PM25 = &r
	}
	if r, ok := f.fresh(QuantityHumidity, now); ok {
		c.Humidity = &r
	}
	return c
}

// fresh returns the latest reading for a quantity when it is within the
// staleness cutoff. Callers hold the read lock.
func (f *Feed) fresh(quantity Quantity, now time.Time) (Reading, bool) {
	r, ok := f.latest[quantity]
	if !ok {
		return Reading{}, false
	}
	if f.config.MaxAge > 0 && now.Sub(r.Timestamp) > f.config.MaxAge {
		return Reading{}, false
	}
	return r, true
}

// Close disconnects from the broker.
func (f *Feed) Close() {
	if f.client != nil {
		f.client.Disconnect(250)
		log.Println("OutdoorFeed: disconnected")
	}
}
