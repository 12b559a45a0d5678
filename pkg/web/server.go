// Package web provides a read-only HTTP status endpoint for operators,
// exposing the bridge's readiness flags and publish counters.
package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teslashibe/go-valkyrie/internal/log"
	"github.com/teslashibe/go-valkyrie/pkg/bridge"
)

// Status is the JSON document served at /status.
type Status struct {
	Mode string `json:"mode"` // "streaming" or "one-shot"

	AcceptingPose   bool `json:"accepting_pose"`
	AcceptingJoints bool `json:"accepting_joints"`
	AcceptingLinks  bool `json:"accepting_links"`
	ReceivedPose    bool `json:"received_pose"`
	ReceivedJoints  bool `json:"received_joints"`
	ReceivedLinks   bool `json:"received_links"`

	CanPublish           bool `json:"can_publish"`
	ShouldStop           bool `json:"should_stop"`
	PublishHomeRequested bool `json:"publish_home_requested"`

	LastSignal string `json:"last_signal"`

	WholeBodyPublished uint64 `json:"whole_body_published"`
	GoHomePublished    uint64 `json:"go_home_published"`
}

// Server serves the status endpoint.
type Server struct {
	app       *fiber.App
	addr      string
	streaming bool

	agg    *bridge.Aggregator
	status *bridge.StatusController
	driver *bridge.Driver
}

// NewServer builds the status server. driver may be nil in tests.
func NewServer(addr string, streaming bool, agg *bridge.Aggregator, status *bridge.StatusController, driver *bridge.Driver) *Server {
	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		addr:      addr,
		streaming: streaming,
		agg:       agg,
		status:    status,
		driver:    driver,
	}

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	s.app.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(s.snapshot())
	})

	return s
}

// Start begins serving. Blocks; run it in its own goroutine.
func (s *Server) Start() error {
	log.Component("web").Info("status server listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) snapshot() Status {
	state := s.agg.State()

	mode := "one-shot"
	if s.streaming {
		mode = "streaming"
	}

	out := Status{
		Mode:            mode,
		AcceptingPose:   state.AcceptingPose,
		AcceptingJoints: state.AcceptingJoints,
		AcceptingLinks:  state.AcceptingLinks,
		ReceivedPose:    state.ReceivedPose,
		ReceivedJoints:  state.ReceivedJoints,
		ReceivedLinks:   state.ReceivedLinks,
		CanPublish:      state.CanPublish(),
		ShouldStop:      state.ShouldStop(),
	}

	if s.status != nil {
		out.PublishHomeRequested = s.status.PublishHomeRequested()
		out.LastSignal = s.status.LastSignal().String()
	}
	if s.driver != nil {
		out.WholeBodyPublished = s.driver.WholeBodyCount()
		out.GoHomePublished = s.driver.GoHomeCount()
	}
	return out
}
