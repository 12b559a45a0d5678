package bridge

import (
	"sync"

	"github.com/teslashibe/go-valkyrie/internal/log"
	"github.com/teslashibe/go-valkyrie/pkg/ihmc"
)

// Signal is a decoded operator status signal. The wire strings are
// matched case-sensitively and decoded once at the transport boundary.
type Signal int

const (
	SignalUnknown Signal = iota
	SignalStartListening
	SignalStopListening
	SignalHomeLeftArm
	SignalHomeRightArm
	SignalHomeChest
	SignalHomePelvis
)

// Wire values for the recognized status signals.
const (
	statusStartListening = "START-LISTENING"
	statusStopListening  = "STOP-LISTENING"
	statusHomeLeftArm    = "HOME-LEFTARM"
	statusHomeRightArm   = "HOME-RIGHTARM"
	statusHomeChest      = "HOME-CHEST"
	statusHomePelvis     = "HOME-PELVIS"
)

// ParseSignal decodes a status string. Anything unrecognized maps to
// SignalUnknown.
func ParseSignal(s string) Signal {
	switch s {
	case statusStartListening:
		return SignalStartListening
	case statusStopListening:
		return SignalStopListening
	case statusHomeLeftArm:
		return SignalHomeLeftArm
	case statusHomeRightArm:
		return SignalHomeRightArm
	case statusHomeChest:
		return SignalHomeChest
	case statusHomePelvis:
		return SignalHomePelvis
	default:
		return SignalUnknown
	}
}

// String returns the wire value of the signal.
func (s Signal) String() string {
	switch s {
	case SignalStartListening:
		return statusStartListening
	case SignalStopListening:
		return statusStopListening
	case SignalHomeLeftArm:
		return statusHomeLeftArm
	case SignalHomeRightArm:
		return statusHomeRightArm
	case SignalHomeChest:
		return statusHomeChest
	case SignalHomePelvis:
		return statusHomePelvis
	default:
		return "UNKNOWN"
	}
}

// HomingRequests tracks which body parts have a pending go-home command.
// Flags are idempotent booleans: a repeated request before the drain
// coalesces into one command.
type HomingRequests struct {
	LeftArm  bool
	RightArm bool
	Chest    bool
	Pelvis   bool
}

// Any reports whether at least one body part needs homing.
func (h HomingRequests) Any() bool {
	return h.LeftArm || h.RightArm || h.Chest || h.Pelvis
}

// StatusController interprets operator status signals: start/stop toggle
// the aggregator's accept state, home signals flag body parts for a
// go-home command. Exactly one signal is processed per call.
type StatusController struct {
	agg *Aggregator

	mu     sync.Mutex
	homing HomingRequests
	last   Signal
}

// NewStatusController wires a controller to the aggregator it toggles.
func NewStatusController(agg *Aggregator) *StatusController {
	return &StatusController{agg: agg}
}

// OnStatus applies one decoded signal.
func (c *StatusController) OnStatus(sig Signal) {
	switch sig {
	case SignalStopListening:
		c.setLast(sig)
		c.agg.stopListening()
		log.Info("controllers stopped, no longer publishing whole-body messages")
		log.Info("waiting for status change to receive more joint commands")
	case SignalStartListening:
		c.setLast(sig)
		c.agg.startListening()
		log.Info("controllers started, waiting for joint commands")
	case SignalHomeLeftArm:
		c.setLast(sig)
		c.setHoming(func(h *HomingRequests) { h.LeftArm = true })
		log.Info("homing left arm")
	case SignalHomeRightArm:
		c.setLast(sig)
		c.setHoming(func(h *HomingRequests) { h.RightArm = true })
		log.Info("homing right arm")
	case SignalHomeChest:
		c.setLast(sig)
		c.setHoming(func(h *HomingRequests) { h.Chest = true })
		log.Info("homing chest")
	case SignalHomePelvis:
		c.setLast(sig)
		c.setHoming(func(h *HomingRequests) { h.Pelvis = true })
		log.Info("homing pelvis")
	default:
		log.Warn("unrecognized status signal, ignoring", "signal", sig.String())
	}
}

// PublishHomeRequested reports whether any go-home command is pending.
func (c *StatusController) PublishHomeRequested() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.homing.Any()
}

// Homing returns a copy of the pending request flags.
func (c *StatusController) Homing() HomingRequests {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.homing
}

// LastSignal returns the most recent recognized signal.
func (c *StatusController) LastSignal() Signal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// DrainHomeCommands builds one go-home command per flagged body part in
// the fixed order left arm, right arm, chest, pelvis, clearing each flag
// as its command is built. Fails with ErrNothingPending when no flags
// are set; the caller must not publish in that case.
func (c *StatusController) DrainHomeCommands(p ihmc.MessageParameters) ([]ihmc.GoHome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.homing.Any() {
		return nil, ErrNothingPending
	}

	var cmds []ihmc.GoHome
	if c.homing.LeftArm {
		cmds = append(cmds, ihmc.NewHomeLeftArm(p))
		c.homing.LeftArm = false
	}
	if c.homing.RightArm {
		cmds = append(cmds, ihmc.NewHomeRightArm(p))
		c.homing.RightArm = false
	}
	if c.homing.Chest {
		cmds = append(cmds, ihmc.NewHomeChest(p))
		c.homing.Chest = false
	}
	if c.homing.Pelvis {
		cmds = append(cmds, ihmc.NewHomePelvis(p))
		c.homing.Pelvis = false
	}
	return cmds, nil
}

func (c *StatusController) setLast(sig Signal) {
	c.mu.Lock()
	c.last = sig
	c.mu.Unlock()
}

func (c *StatusController) setHoming(fn func(*HomingRequests)) {
	c.mu.Lock()
	fn(&c.homing)
	c.mu.Unlock()
}
