package transport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/teslashibe/go-valkyrie/internal/config"
	"github.com/teslashibe/go-valkyrie/internal/log"
	"github.com/teslashibe/go-valkyrie/pkg/bridge"
	"github.com/teslashibe/go-valkyrie/pkg/ihmc"
)

// Client wraps the PAHO MQTT client and routes the controller output
// streams into the bridge. It also implements bridge.Publisher for the
// IHMC controller input topics.
type Client struct {
	client mqtt.Client
	cfg    *config.Config
	agg    *bridge.Aggregator
	status *bridge.StatusController
	logger *slog.Logger
}

// NewClient creates and connects a new MQTT client. Subscriptions are
// re-established on every (re)connect.
func NewClient(cfg *config.Config, agg *bridge.Aggregator, status *bridge.StatusController) (*Client, error) {
	c := &Client{
		cfg:    cfg,
		agg:    agg,
		status: status,
		logger: log.Component("transport"),
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.NewString()[:8])).
		SetUsername(cfg.MQTTUsername).
		SetPassword(cfg.MQTTPassword).
		SetKeepAlive(60 * time.Second).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(10 * time.Second).
		SetCleanSession(true).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(c.onConnectionLost)

	c.client = mqtt.NewClient(opts)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return c, nil
}

// Disconnect gracefully disconnects the client.
func (c *Client) Disconnect() {
	if c.client.IsConnected() {
		c.client.Disconnect(250)
		c.logger.Info("disconnected from broker")
	}
}

func (c *Client) onConnect(mqtt.Client) {
	c.logger.Info("connected to broker, subscribing", "broker", c.cfg.MQTTBroker)
	c.subscribe(c.cfg.PelvisTopic, c.handlePelvisTransform)
	c.subscribe(c.cfg.JointsTopic, c.handleJointCommand)
	if c.cfg.CommandsFromControllers {
		c.subscribe(c.cfg.LinksTopic, c.handleControlledLinks)
		c.subscribe(c.cfg.StatusTopic, c.handleStatus)
	}
}

func (c *Client) onConnectionLost(_ mqtt.Client, err error) {
	c.logger.Error("connection lost, reconnecting", slog.Any("error", err))
}

func (c *Client) subscribe(topic string, handler mqtt.MessageHandler) {
	if token := c.client.Subscribe(topic, 1, handler); token.Wait() && token.Error() != nil {
		c.logger.Error("failed to subscribe", "topic", topic, slog.Any("error", token.Error()))
	} else {
		c.logger.Info("subscribed", "topic", topic)
	}
}

func (c *Client) handlePelvisTransform(_ mqtt.Client, msg mqtt.Message) {
	var payload TransformPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		c.logger.Error("bad pelvis transform payload", "topic", msg.Topic(), slog.Any("error", err))
		return
	}
	pos, rot := payload.pose()
	c.agg.OnPoseUpdate(pos, rot)
}

func (c *Client) handleJointCommand(_ mqtt.Client, msg mqtt.Message) {
	var payload JointStatePayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		c.logger.Error("bad joint command payload", "topic", msg.Topic(), slog.Any("error", err))
		return
	}
	c.agg.OnJointUpdate(payload.Name, payload.Position)
}

func (c *Client) handleControlledLinks(_ mqtt.Client, msg mqtt.Message) {
	var payload LinkIDsPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		c.logger.Error("bad controlled links payload", "topic", msg.Topic(), slog.Any("error", err))
		return
	}
	c.agg.OnLinkSetUpdate(payload.Data)
}

func (c *Client) handleStatus(_ mqtt.Client, msg mqtt.Message) {
	var payload StatusPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		c.logger.Error("bad status payload", "topic", msg.Topic(), slog.Any("error", err))
		return
	}
	c.status.OnStatus(bridge.ParseSignal(payload.Data))
}

// PublishWholeBody sends a whole-body trajectory to the controller input
// topic.
func (c *Client) PublishWholeBody(msg *ihmc.WholeBodyTrajectory) error {
	return c.publish(c.cfg.WholeBodyTopic, msg)
}

// PublishGoHome sends one go-home command to the controller input topic.
func (c *Client) PublishGoHome(msg ihmc.GoHome) error {
	return c.publish(c.cfg.GoHomeTopic, msg)
}

func (c *Client) publish(topic string, v any) error {
	if !c.client.IsConnected() {
		return fmt.Errorf("MQTT client is not connected")
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	token := c.client.Publish(topic, 1, false, payload)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			c.logger.Error("failed to publish", "topic", topic, slog.Any("error", token.Error()))
		}
	}()
	return nil
}

// Compile-time check that Client satisfies the driver's publisher.
var _ bridge.Publisher = (*Client)(nil)
