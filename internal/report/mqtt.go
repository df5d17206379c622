package report

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/ukydev/carpark/internal/models"
)

const publishTimeout = 5 * time.Second

// MQTTConfig defines the broker connection used for outcome publishing.
type MQTTConfig struct {
	Broker      string
	ClientID    string
	TopicPrefix string
	QoS         byte
}

// mqttClient is the subset of paho.Client used by MQTTReporter.
type mqttClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) mqttClient {
	return paho.NewClient(opts)
}

// OutcomeMessage is the JSON payload published for each outcome.
type OutcomeMessage struct {
	MessageID string         `json:"message_id"`
	Timestamp time.Time      `json:"timestamp"`
	Outcome   models.Outcome `json:"outcome"`
	Text      string         `json:"text"`
}

// InfoMessage is the JSON payload published for fleet summaries.
type InfoMessage struct {
	MessageID string           `json:"message_id"`
	Timestamp time.Time        `json:"timestamp"`
	Info      models.FleetInfo `json:"info"`
}

// MQTTReporter publishes outcomes to <prefix>/outcomes and summaries to <prefix>/info.
type MQTTReporter struct {
	cli    mqttClient
	prefix string
	qos    byte
	now    func() time.Time
}

// NewMQTTReporter connects to the broker.
func NewMQTTReporter(cfg MQTTConfig) (*MQTTReporter, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("mqtt broker is required")
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "carpark-" + uuid.NewString()
	}
	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = "carpark"
	}

	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(clientID)
	opts.AutoReconnect = true
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &MQTTReporter{cli: c, prefix: prefix, qos: cfg.QoS, now: time.Now}, nil
}

func (r *MQTTReporter) Report(o models.Outcome) error {
	text := Format(o)
	o.MaxDistance = finite(o.MaxDistance)
	return r.publish("outcomes", OutcomeMessage{
		MessageID: uuid.NewString(),
		Timestamp: r.now(),
		Outcome:   o,
		Text:      text,
	})
}

// finite maps values JSON cannot encode. A zero fuel consumption gives an
// infinite range.
func finite(f float64) float64 {
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	case math.IsNaN(f):
		return 0
	}
	return f
}

func (r *MQTTReporter) ReportInfo(info models.FleetInfo) error {
	return r.publish("info", InfoMessage{
		MessageID: uuid.NewString(),
		Timestamp: r.now(),
		Info:      info,
	})
}

func (r *MQTTReporter) publish(suffix string, msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("mqtt encode: %w", err)
	}
	topic := r.prefix + "/" + suffix
	token := r.cli.Publish(topic, r.qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish %s: timeout", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (r *MQTTReporter) Close() {
	r.cli.Disconnect(250)
}
