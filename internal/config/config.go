// Package config loads bridge configuration from the environment, with
// optional .env file support for development setups.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default topic suffixes for controller output. When commands come from
// the controller stack, topics are prefixed with the managing node name.
const (
	DefaultPelvisTopic = "controllers/output/ihmc/pelvis_transform"
	DefaultLinksTopic  = "controllers/output/ihmc/controlled_link_ids"
	DefaultJointsTopic = "controllers/output/ihmc/joint_commands"
	DefaultStatusTopic = "controllers/output/ihmc/controller_status"

	DefaultWholeBodyTopic = "ihmc/valkyrie/humanoid_control/input/whole_body_trajectory"
	DefaultGoHomeTopic    = "ihmc/valkyrie/humanoid_control/input/go_home"
)

// Config holds everything the bridge process needs to start.
type Config struct {
	// MQTT
	MQTTBroker   string
	MQTTClientID string
	MQTTUsername string
	MQTTPassword string

	// CommandsFromControllers selects streaming mode with an external
	// controlled-link supplier. When false the bridge runs one-shot
	// with the default link set.
	CommandsFromControllers bool

	// ManagingNode prefixes the controller output topics.
	ManagingNode string

	// Inbound topics (already prefixed; see Load).
	PelvisTopic string
	LinksTopic  string
	JointsTopic string
	StatusTopic string

	// Outbound topics.
	WholeBodyTopic string
	GoHomeTopic    string

	// PublishRate is the driver tick interval.
	PublishRate time.Duration

	// StatusAddr is the listen address for the HTTP status server;
	// empty disables it.
	StatusAddr string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MQTTBroker:   getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "ihmc-bridge"),
		MQTTUsername: getEnv("MQTT_USERNAME", ""),
		MQTTPassword: getEnv("MQTT_PASSWORD", ""),

		CommandsFromControllers: getEnvBool("COMMANDS_FROM_CONTROLLERS", true),
		ManagingNode:            getEnv("MANAGING_NODE", "ControllerTestNode"),

		PelvisTopic: getEnv("PELVIS_TF_TOPIC", DefaultPelvisTopic),
		LinksTopic:  getEnv("CONTROLLED_LINK_TOPIC", DefaultLinksTopic),
		JointsTopic: getEnv("JOINT_COMMAND_TOPIC", DefaultJointsTopic),
		StatusTopic: getEnv("STATUS_TOPIC", DefaultStatusTopic),

		WholeBodyTopic: getEnv("WHOLE_BODY_TOPIC", DefaultWholeBodyTopic),
		GoHomeTopic:    getEnv("GO_HOME_TOPIC", DefaultGoHomeTopic),

		PublishRate: getEnvDuration("PUBLISH_RATE", 100*time.Millisecond),
		StatusAddr:  getEnv("STATUS_ADDR", ":8090"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	// Controller output topics come from the managing node's namespace.
	if cfg.CommandsFromControllers {
		prefix := cfg.ManagingNode + "/"
		cfg.PelvisTopic = prefix + cfg.PelvisTopic
		cfg.LinksTopic = prefix + cfg.LinksTopic
		cfg.JointsTopic = prefix + cfg.JointsTopic
		cfg.StatusTopic = prefix + cfg.StatusTopic
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
