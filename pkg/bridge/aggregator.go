package bridge

import (
	"sync"

	"github.com/teslashibe/go-valkyrie/pkg/valkyrie"
)

// Aggregator collects pose, joint, and controlled-link updates and owns
// the configuration they describe. It is safe for concurrent use; every
// critical section is O(number of joints) and non-blocking.
//
// In streaming mode the aggregator starts closed and waits for a
// start-listening signal. In one-shot mode it accepts exactly one pose
// and one joint update, and assumes the default controlled-link set
// unless an external link supplier is configured.
type Aggregator struct {
	mu sync.Mutex

	streaming     bool
	externalLinks bool

	state   ReadinessState
	rootPos valkyrie.Vec3
	rootRot valkyrie.Quaternion
	qJoint  []float64
	links   valkyrie.LinkSet
}

// NewAggregator builds an aggregator. streaming selects continuous mode;
// externalLinks indicates a controlled-link supplier exists upstream.
func NewAggregator(streaming, externalLinks bool) *Aggregator {
	a := &Aggregator{
		streaming:     streaming,
		externalLinks: externalLinks,
		qJoint:        make([]float64, valkyrie.NumActJoints),
	}

	if !streaming {
		// One-shot: accept the next pose and joint update immediately.
		a.state.AcceptingPose = true
		a.state.AcceptingJoints = true
	}
	if !externalLinks {
		// No supplier: all links assumed controlled, never updated.
		a.links = valkyrie.DefaultControlledLinks()
		a.state.ReceivedLinks = true
	}
	return a
}

// OnPoseUpdate stores the root-body pose if pose updates are currently
// accepted. One-shot mode stops accepting after the first pose.
func (a *Aggregator) OnPoseUpdate(pos valkyrie.Vec3, rot valkyrie.Quaternion) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.AcceptingPose {
		return
	}
	a.rootPos = pos
	a.rootRot = rot
	a.state.ReceivedPose = true
	if !a.streaming {
		a.state.AcceptingPose = false
	}
}

// OnLinkSetUpdate replaces the controlled-link set wholesale. Only
// meaningful when an external link supplier is configured.
func (a *Aggregator) OnLinkSetUpdate(ids []int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.AcceptingLinks {
		return
	}
	a.links = valkyrie.NewLinkSet(ids...)
	a.state.ReceivedLinks = true
	if !a.streaming {
		a.state.AcceptingLinks = false
	}
}

// OnJointUpdate replaces the joint region from a set of name/position
// pairs. A joint update is a full replace, not a patch: joints absent
// from the update read as zero afterwards. Names that are not part of
// the actuated set are skipped silently; upstream sources routinely
// publish joints the model does not track.
func (a *Aggregator) OnJointUpdate(names []string, positions []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.AcceptingJoints {
		return
	}

	for i := range a.qJoint {
		a.qJoint[i] = 0
	}
	n := min(len(names), len(positions))
	for i := 0; i < n; i++ {
		slot, ok := valkyrie.JointIndex(names[i])
		if !ok {
			continue
		}
		a.qJoint[slot-valkyrie.NumVirtual] = positions[i]
	}

	a.state.ReceivedJoints = true
	if !a.streaming {
		a.state.AcceptingJoints = false
	}
}

// CanPublish reports whether all three inputs have arrived.
func (a *Aggregator) CanPublish() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.CanPublish()
}

// ShouldStop reports whether the bridge is done building commands.
func (a *Aggregator) ShouldStop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.ShouldStop()
}

// State returns a copy of the readiness flags.
func (a *Aggregator) State() ReadinessState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Snapshot assembles the full configuration vector and a copy of the
// controlled-link set for command assembly. Fails with ErrNotReady before
// all inputs have arrived.
func (a *Aggregator) Snapshot() (valkyrie.Configuration, valkyrie.LinkSet, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.state.CanPublish() {
		return nil, nil, ErrNotReady
	}

	q := valkyrie.NewConfiguration()
	q.SetRootPose(a.rootPos, a.rootRot)
	for i, v := range a.qJoint {
		q[valkyrie.NumVirtual+i] = v
	}

	links := make(valkyrie.LinkSet, len(a.links))
	for id := range a.links {
		links[id] = struct{}{}
	}
	return q, links, nil
}

// startListening opens all three input streams and clears the received
// flags. Called by the StatusController.
func (a *Aggregator) startListening() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.AcceptingPose = true
	a.state.AcceptingJoints = true
	a.state.AcceptingLinks = true
	a.state.ReceivedPose = false
	a.state.ReceivedJoints = false
	a.state.ReceivedLinks = false
}

// stopListening closes all three input streams and clears the received
// flags, so no further commands are built until the next start.
func (a *Aggregator) stopListening() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.AcceptingPose = false
	a.state.AcceptingJoints = false
	a.state.AcceptingLinks = false
	a.state.ReceivedPose = false
	a.state.ReceivedJoints = false
	a.state.ReceivedLinks = false
}
