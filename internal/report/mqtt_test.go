package report

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/carpark/internal/models"
)

type fakeToken struct {
	err     error
	timeout bool
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timeout }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeMQTTClient struct {
	connectErr   error
	publishErr   error
	timeout      bool
	messages     []published
	disconnected bool
}

func (c *fakeMQTTClient) Connect() paho.Token { return &fakeToken{err: c.connectErr} }

func (c *fakeMQTTClient) Disconnect(uint) { c.disconnected = true }

func (c *fakeMQTTClient) Publish(topic string, qos byte, _ bool, payload interface{}) paho.Token {
	c.messages = append(c.messages, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return &fakeToken{err: c.publishErr, timeout: c.timeout}
}

func withFakeClient(t *testing.T, c *fakeMQTTClient) {
	t.Helper()
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) mqttClient { return c }
	t.Cleanup(func() { newMQTTClient = orig })
}

func TestNewMQTTReporter_RequiresBroker(t *testing.T) {
	_, err := NewMQTTReporter(MQTTConfig{})
	assert.Error(t, err)
}

func TestNewMQTTReporter_ConnectError(t *testing.T) {
	withFakeClient(t, &fakeMQTTClient{connectErr: errors.New("refused")})

	_, err := NewMQTTReporter(MQTTConfig{Broker: "tcp://localhost:1883"})
	assert.ErrorContains(t, err, "refused")
}

func TestMQTTReporter_Report(t *testing.T) {
	fake := &fakeMQTTClient{}
	withFakeClient(t, fake)
	r, err := NewMQTTReporter(MQTTConfig{Broker: "tcp://localhost:1883", TopicPrefix: "depot", QoS: 1})
	require.NoError(t, err)
	fixed := time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	out := models.Outcome{Kind: models.OutcomeCapacityExceeded, Vehicle: "Krone SD", Weight: 700, Load: 700, Capacity: 900, Trailer: true}
	require.NoError(t, r.Report(out))
	require.NoError(t, r.ReportInfo(models.FleetInfo{Vehicles: 7}))

	require.Len(t, fake.messages, 2)
	assert.Equal(t, "depot/outcomes", fake.messages[0].topic)
	assert.Equal(t, byte(1), fake.messages[0].qos)
	assert.Equal(t, "depot/info", fake.messages[1].topic)

	var msg OutcomeMessage
	require.NoError(t, json.Unmarshal(fake.messages[0].payload, &msg))
	assert.NotEmpty(t, msg.MessageID)
	assert.True(t, fixed.Equal(msg.Timestamp))
	assert.Equal(t, out, msg.Outcome)
	assert.Equal(t, Format(out), msg.Text)

	var info InfoMessage
	require.NoError(t, json.Unmarshal(fake.messages[1].payload, &info))
	assert.Equal(t, 7, info.Info.Vehicles)

	r.Close()
	assert.True(t, fake.disconnected)
}

func TestMQTTReporter_DefaultPrefix(t *testing.T) {
	fake := &fakeMQTTClient{}
	withFakeClient(t, fake)
	r, err := NewMQTTReporter(MQTTConfig{Broker: "tcp://localhost:1883"})
	require.NoError(t, err)

	require.NoError(t, r.Report(models.Outcome{Kind: models.OutcomeAlreadyEmpty}))
	assert.Equal(t, "carpark/outcomes", fake.messages[0].topic)
}

func TestMQTTReporter_PublishErrors(t *testing.T) {
	fake := &fakeMQTTClient{publishErr: errors.New("broker gone")}
	withFakeClient(t, fake)
	r, err := NewMQTTReporter(MQTTConfig{Broker: "tcp://localhost:1883"})
	require.NoError(t, err)

	assert.ErrorContains(t, r.Report(models.Outcome{}), "broker gone")

	fake.publishErr = nil
	fake.timeout = true
	assert.ErrorContains(t, r.ReportInfo(models.FleetInfo{}), "timeout")
}

func TestMQTTReporter_InfiniteRange(t *testing.T) {
	fake := &fakeMQTTClient{}
	withFakeClient(t, fake)
	r, err := NewMQTTReporter(MQTTConfig{Broker: "tcp://localhost:1883"})
	require.NoError(t, err)

	out := models.Outcome{Kind: models.OutcomeTripFeasible, Vehicle: "Tesla Semi", Distance: 100, MaxDistance: math.Inf(1)}
	require.NoError(t, r.Report(out))

	var msg OutcomeMessage
	require.NoError(t, json.Unmarshal(fake.messages[0].payload, &msg))
	assert.Equal(t, math.MaxFloat64, msg.Outcome.MaxDistance)
	assert.Contains(t, msg.Text, "+Inf")
}
