// Package bridge aggregates partial robot-state updates into a consistent
// configuration and decides when whole-body and go-home commands may be
// published. All mutation happens through the Aggregator and
// StatusController; a Driver polls the derived flags at a fixed rate.
package bridge

import "errors"

// ErrNotReady is returned when a command snapshot is requested before all
// three inputs (pose, joints, links) have arrived.
var ErrNotReady = errors.New("bridge: not ready, missing pose, joint, or link updates")

// ErrNothingPending is returned when a go-home drain is requested with no
// homing flags set.
var ErrNothingPending = errors.New("bridge: no go-home requests pending")

// ReadinessState holds the accept/receive flags for the three input
// streams. Keeping them in one value keeps the derived-flag rules
// auditable in isolation.
type ReadinessState struct {
	AcceptingPose   bool
	AcceptingJoints bool
	AcceptingLinks  bool

	ReceivedPose   bool
	ReceivedJoints bool
	ReceivedLinks  bool
}

// CanPublish reports whether a whole-body command can legally be built:
// all three inputs must have arrived since the last reset.
func (s ReadinessState) CanPublish() bool {
	return s.ReceivedPose && s.ReceivedLinks && s.ReceivedJoints
}

// ShouldStop reports whether the bridge is done building commands. It
// deliberately ignores AcceptingLinks: only the pose and joint streams
// drive shutdown, matching the long-observed behavior of the interface.
func (s ReadinessState) ShouldStop() bool {
	return !s.AcceptingPose && !s.AcceptingJoints
}
