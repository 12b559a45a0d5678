package bridge

import (
	"errors"
	"testing"

	"github.com/teslashibe/go-valkyrie/pkg/valkyrie"
)

func TestReadinessState_CanPublish(t *testing.T) {
	var s ReadinessState
	if s.CanPublish() {
		t.Error("fresh state should not allow publishing")
	}

	s.ReceivedPose = true
	s.ReceivedJoints = true
	if s.CanPublish() {
		t.Error("two of three inputs should not allow publishing")
	}

	s.ReceivedLinks = true
	if !s.CanPublish() {
		t.Error("all three inputs received should allow publishing")
	}
}

func TestReadinessState_ShouldStopIgnoresLinks(t *testing.T) {
	s := ReadinessState{AcceptingLinks: true}
	if !s.ShouldStop() {
		t.Error("ShouldStop must ignore the link stream")
	}

	s.AcceptingPose = true
	if s.ShouldStop() {
		t.Error("an open pose stream should block shutdown")
	}

	s = ReadinessState{AcceptingJoints: true}
	if s.ShouldStop() {
		t.Error("an open joint stream should block shutdown")
	}
}

func TestAggregator_OneShotDefaults(t *testing.T) {
	agg := NewAggregator(false, false)

	state := agg.State()
	if !state.AcceptingPose || !state.AcceptingJoints {
		t.Error("one-shot aggregator should accept pose and joints immediately")
	}
	if state.AcceptingLinks {
		t.Error("one-shot aggregator should not accept link updates")
	}
	if !state.ReceivedLinks {
		t.Error("default link set should count as received")
	}
	if agg.CanPublish() {
		t.Error("nothing has arrived yet")
	}
}

func TestAggregator_OneShotAcceptsOnce(t *testing.T) {
	agg := NewAggregator(false, false)

	agg.OnPoseUpdate(valkyrie.Vec3{X: 1, Y: 2, Z: 3}, valkyrie.IdentityQuaternion())
	agg.OnJointUpdate([]string{"torsoYaw"}, []float64{0.5})

	if !agg.CanPublish() {
		t.Fatal("pose and joints arrived, default links assumed")
	}
	if !agg.ShouldStop() {
		t.Error("one-shot aggregator should stop after both inputs")
	}

	// A second pose must be dropped.
	agg.OnPoseUpdate(valkyrie.Vec3{X: 9, Y: 9, Z: 9}, valkyrie.IdentityQuaternion())

	q, links, err := agg.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	pos, _ := q.RootPose()
	if pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("second pose should have been ignored, got %+v", pos)
	}
	if q[valkyrie.TorsoYaw] != 0.5 {
		t.Errorf("torsoYaw: got %v, want 0.5", q[valkyrie.TorsoYaw])
	}
	if links.Len() != 7 {
		t.Errorf("default link set: got %d links, want 7", links.Len())
	}
}

func TestAggregator_SnapshotBeforeReady(t *testing.T) {
	agg := NewAggregator(true, true)
	if _, _, err := agg.Snapshot(); !errors.Is(err, ErrNotReady) {
		t.Errorf("got %v, want ErrNotReady", err)
	}
}

func TestAggregator_StreamingRequiresStart(t *testing.T) {
	agg := NewAggregator(true, true)

	// Updates before start-listening must be dropped.
	agg.OnPoseUpdate(valkyrie.Vec3{X: 1}, valkyrie.IdentityQuaternion())
	agg.OnJointUpdate([]string{"torsoYaw"}, []float64{0.5})
	agg.OnLinkSetUpdate([]int{valkyrie.LinkPelvis})
	if agg.CanPublish() {
		t.Fatal("updates before start-listening should be dropped")
	}

	agg.startListening()
	agg.OnPoseUpdate(valkyrie.Vec3{X: 1}, valkyrie.IdentityQuaternion())
	agg.OnJointUpdate([]string{"torsoYaw"}, []float64{0.5})
	agg.OnLinkSetUpdate([]int{valkyrie.LinkPelvis, valkyrie.LinkTorso})

	if !agg.CanPublish() {
		t.Fatal("all three inputs arrived after start-listening")
	}
	if agg.ShouldStop() {
		t.Error("streaming aggregator should keep accepting after updates")
	}

	_, links, err := agg.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if links.Len() != 2 || !links.Contains(valkyrie.LinkPelvis) || !links.Contains(valkyrie.LinkTorso) {
		t.Errorf("link set should be replaced wholesale, got %d links", links.Len())
	}
}

func TestAggregator_StopListeningResets(t *testing.T) {
	agg := NewAggregator(true, true)
	agg.startListening()
	agg.OnPoseUpdate(valkyrie.Vec3{X: 1}, valkyrie.IdentityQuaternion())
	agg.OnJointUpdate([]string{"torsoYaw"}, []float64{0.5})
	agg.OnLinkSetUpdate([]int{valkyrie.LinkPelvis})

	agg.stopListening()

	if agg.CanPublish() {
		t.Error("stop-listening should clear the received flags")
	}
	if !agg.ShouldStop() {
		t.Error("stop-listening should close both driving streams")
	}
	if _, _, err := agg.Snapshot(); !errors.Is(err, ErrNotReady) {
		t.Errorf("got %v, want ErrNotReady", err)
	}
}

func TestAggregator_JointUpdateIsFullReplace(t *testing.T) {
	agg := NewAggregator(true, true)
	agg.startListening()

	agg.OnJointUpdate([]string{"torsoYaw", "leftHipYaw"}, []float64{0.5, 0.3})
	agg.OnJointUpdate([]string{"torsoPitch"}, []float64{0.7})
	agg.OnPoseUpdate(valkyrie.Vec3{}, valkyrie.IdentityQuaternion())
	agg.OnLinkSetUpdate([]int{valkyrie.LinkTorso})

	q, _, err := agg.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if q[valkyrie.TorsoPitch] != 0.7 {
		t.Errorf("torsoPitch: got %v, want 0.7", q[valkyrie.TorsoPitch])
	}
	if q[valkyrie.TorsoYaw] != 0 || q[valkyrie.LeftHipYaw] != 0 {
		t.Error("joints absent from the latest update should read zero")
	}
}

func TestAggregator_JointUpdateSkipsUnknownNames(t *testing.T) {
	agg := NewAggregator(false, false)

	agg.OnPoseUpdate(valkyrie.Vec3{}, valkyrie.IdentityQuaternion())
	agg.OnJointUpdate(
		[]string{"leftWristRoll", "torsoYaw", "leftIndexFinger"},
		[]float64{9.9, 0.5, 8.8},
	)

	q, _, err := agg.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if q[valkyrie.TorsoYaw] != 0.5 {
		t.Errorf("torsoYaw: got %v, want 0.5", q[valkyrie.TorsoYaw])
	}
	for i := valkyrie.NumVirtual; i < valkyrie.NumPositions; i++ {
		if i != valkyrie.TorsoYaw && q[i] != 0 {
			t.Errorf("slot %d polluted by unknown joint name: %v", i, q[i])
		}
	}
}

func TestAggregator_MismatchedNamePositionLengths(t *testing.T) {
	agg := NewAggregator(false, false)

	agg.OnPoseUpdate(valkyrie.Vec3{}, valkyrie.IdentityQuaternion())
	agg.OnJointUpdate([]string{"torsoYaw", "torsoPitch"}, []float64{0.5})

	q, _, err := agg.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if q[valkyrie.TorsoYaw] != 0.5 {
		t.Errorf("torsoYaw: got %v, want 0.5", q[valkyrie.TorsoYaw])
	}
	if q[valkyrie.TorsoPitch] != 0 {
		t.Error("joint without a matching position should stay zero")
	}
}
