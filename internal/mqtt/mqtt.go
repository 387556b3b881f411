package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Mavwarf/ctmicons/internal/config"
	"github.com/Mavwarf/ctmicons/internal/icon"
)

const (
	DefaultTopic    = "ctmicons/rendered"
	DefaultClientID = "ctmicons"
	timeout         = 5 * time.Second
)

// Publish connects to the configured broker, publishes message, and
// disconnects. Each invocation creates a fresh connection.
func Publish(opts config.MQTT, message []byte) error {
	clientID := opts.ClientID
	if clientID == "" {
		clientID = DefaultClientID
	}
	topic := opts.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	co := pahomqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout)
	if opts.Username != "" {
		co.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		co.SetPassword(opts.Password)
	}

	client := pahomqtt.NewClient(co)
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: connect timeout")
	}
	if tok.Error() != nil {
		return fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	defer client.Disconnect(250)

	pub := client.Publish(topic, opts.QoS, opts.Retain, message)
	if !pub.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: publish timeout")
	}
	if pub.Error() != nil {
		return fmt.Errorf("mqtt: publish: %w", pub.Error())
	}
	return nil
}

// Event is the JSON payload announced for each rendered icon.
type Event struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Font   string `json:"font"`
	SHA256 string `json:"sha256"`
	Time   string `json:"time"`
}

// Payload encodes res as an Event.
func Payload(res icon.Result) ([]byte, error) {
	return json.Marshal(Event{
		Path:   res.Spec.Path,
		Size:   res.Spec.Size,
		Font:   res.FontSource,
		SHA256: res.SHA256,
		Time:   res.Time.Format(time.RFC3339),
	})
}

// Publisher announces render results on the configured broker.
type Publisher struct {
	Opts config.MQTT
}

// PublishResult sends one Event for res.
func (p Publisher) PublishResult(res icon.Result) error {
	msg, err := Payload(res)
	if err != nil {
		return fmt.Errorf("mqtt: encode: %w", err)
	}
	return Publish(p.Opts, msg)
}
