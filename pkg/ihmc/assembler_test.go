package ihmc

import (
	"math"
	"testing"

	"github.com/teslashibe/go-valkyrie/pkg/valkyrie"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func fullConfig(t *testing.T) valkyrie.Configuration {
	t.Helper()
	q := valkyrie.NewConfiguration()
	q.SetRootPose(valkyrie.Vec3{X: 1, Y: 2, Z: 3}, valkyrie.IdentityQuaternion())
	return q
}

func TestNewWholeBodyTrajectory_RejectsBadLength(t *testing.T) {
	short := valkyrie.Configuration(make([]float64, 5))
	if _, err := NewWholeBodyTrajectory(short, valkyrie.DefaultControlledLinks(), DefaultParameters()); err == nil {
		t.Fatal("expected error for undersized configuration")
	}
}

func TestNewWholeBodyTrajectory_LeftArmSevenDOF(t *testing.T) {
	q := fullConfig(t)
	q[valkyrie.LeftShoulderPitch] = 0.1
	q[valkyrie.LeftShoulderRoll] = 0.2
	q[valkyrie.LeftShoulderYaw] = 0.3
	q[valkyrie.LeftElbowPitch] = 0.4
	q[valkyrie.LeftForearmYaw] = 0.5

	msg, err := NewWholeBodyTrajectory(q, valkyrie.NewLinkSet(valkyrie.LinkLeftPalm), DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	arm := msg.LeftArmTrajectoryMessage
	if arm == nil {
		t.Fatal("left arm sub-message missing")
	}
	if arm.RobotSide != RobotSideLeft {
		t.Errorf("robot side: got %d, want %d", arm.RobotSide, RobotSideLeft)
	}

	joints := arm.JointspaceTrajectory.JointTrajectoryMessages
	if len(joints) != 7 {
		t.Fatalf("arm DOF: got %d, want 7", len(joints))
	}
	want := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0, 0}
	for i, j := range joints {
		if len(j.TrajectoryPoints) != 1 {
			t.Fatalf("joint %d: got %d trajectory points, want 1", i, len(j.TrajectoryPoints))
		}
		if !floatEquals(j.TrajectoryPoints[0].Position, want[i]) {
			t.Errorf("joint %d: got %v, want %v", i, j.TrajectoryPoints[0].Position, want[i])
		}
		if j.TrajectoryPoints[0].Velocity != 0 {
			t.Errorf("joint %d: velocity should be zero", i)
		}
	}
}

func TestNewWholeBodyTrajectory_PelvisFromRootPose(t *testing.T) {
	q := valkyrie.NewConfiguration()
	q.SetRootPose(valkyrie.Vec3{X: 1, Y: 2, Z: 3}, valkyrie.Quaternion{X: 0, Y: 0, Z: 0, W: 1})

	msg, err := NewWholeBodyTrajectory(q, valkyrie.NewLinkSet(valkyrie.LinkPelvis), DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	pelvis := msg.PelvisTrajectoryMessage
	if pelvis == nil {
		t.Fatal("pelvis sub-message missing")
	}
	pts := pelvis.SE3Trajectory.TaskspaceTrajectoryPoints
	if len(pts) != 1 {
		t.Fatalf("pelvis trajectory points: got %d, want 1", len(pts))
	}
	if pts[0].Position != (Point{X: 1, Y: 2, Z: 3}) {
		t.Errorf("pelvis position: got %+v, want (1,2,3)", pts[0].Position)
	}
	if pts[0].Orientation != (Quaternion{X: 0, Y: 0, Z: 0, W: 1}) {
		t.Errorf("pelvis orientation: got %+v, want (0,0,0,1)", pts[0].Orientation)
	}
	if pts[0].LinearVelocity != (Vector3{}) || pts[0].AngularVelocity != (Vector3{}) {
		t.Error("pelvis velocities should be zero")
	}

	frames := pelvis.SE3Trajectory.FrameInformation
	if frames.TrajectoryReferenceFrameID != WorldFrameID || frames.DataReferenceFrameID != WorldFrameID {
		t.Errorf("pelvis frames: got %+v, want world/world", frames)
	}
}

func TestNewWholeBodyTrajectory_ChestFrames(t *testing.T) {
	q := fullConfig(t)

	msg, err := NewWholeBodyTrajectory(q, valkyrie.NewLinkSet(valkyrie.LinkTorso), DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	chest := msg.ChestTrajectoryMessage
	if chest == nil {
		t.Fatal("chest sub-message missing")
	}
	frames := chest.SO3Trajectory.FrameInformation
	if frames.TrajectoryReferenceFrameID != PelvisZUpFrameID {
		t.Errorf("chest trajectory frame: got %d, want %d", frames.TrajectoryReferenceFrameID, PelvisZUpFrameID)
	}
	if frames.DataReferenceFrameID != WorldFrameID {
		t.Errorf("chest data frame: got %d, want %d", frames.DataReferenceFrameID, WorldFrameID)
	}

	sel := chest.SO3Trajectory.SelectionMatrix
	if !sel.XSelected || !sel.YSelected || !sel.ZSelected {
		t.Error("all axes should be selected")
	}
	weights := chest.SO3Trajectory.WeightMatrix
	if weights.XWeight != -1 || weights.YWeight != -1 || weights.ZWeight != -1 {
		t.Error("weights should default to -1")
	}
}

func TestNewWholeBodyTrajectory_UncontrolledPartsOmitted(t *testing.T) {
	q := fullConfig(t)

	msg, err := NewWholeBodyTrajectory(q, valkyrie.NewLinkSet(valkyrie.LinkHead), DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	if msg.NeckTrajectoryMessage == nil {
		t.Error("neck sub-message missing")
	}
	if msg.LeftArmTrajectoryMessage != nil || msg.RightArmTrajectoryMessage != nil {
		t.Error("arm sub-messages should be omitted")
	}
	if msg.ChestTrajectoryMessage != nil || msg.PelvisTrajectoryMessage != nil {
		t.Error("chest/pelvis sub-messages should be omitted")
	}
}

func TestNewWholeBodyTrajectory_FullLinkSet(t *testing.T) {
	q := fullConfig(t)

	msg, err := NewWholeBodyTrajectory(q, valkyrie.DefaultControlledLinks(), DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	if msg.LeftArmTrajectoryMessage == nil || msg.RightArmTrajectoryMessage == nil ||
		msg.ChestTrajectoryMessage == nil || msg.PelvisTrajectoryMessage == nil ||
		msg.NeckTrajectoryMessage == nil {
		t.Error("all five sub-messages should be populated for the full link set")
	}

	neck := msg.NeckTrajectoryMessage.JointspaceTrajectory.JointTrajectoryMessages
	if len(neck) != 3 {
		t.Errorf("neck DOF: got %d, want 3", len(neck))
	}
}

func TestQueueingProperties_Streaming(t *testing.T) {
	q := fullConfig(t)
	p := DefaultParameters().ForStreaming()

	msg, err := NewWholeBodyTrajectory(q, valkyrie.NewLinkSet(valkyrie.LinkLeftPalm), p)
	if err != nil {
		t.Fatal(err)
	}

	queue := msg.LeftArmTrajectoryMessage.JointspaceTrajectory.QueueingProperties
	if queue.ExecutionMode != ExecutionModeStream {
		t.Errorf("execution mode: got %d, want stream", queue.ExecutionMode)
	}
	if !floatEquals(queue.StreamIntegrationDuration, DefaultStreamIntegrationDuration) {
		t.Errorf("integration duration: got %v, want %v", queue.StreamIntegrationDuration, DefaultStreamIntegrationDuration)
	}
	if queue.Timestamp == 0 {
		t.Error("timestamp should be set")
	}

	pt := msg.LeftArmTrajectoryMessage.JointspaceTrajectory.JointTrajectoryMessages[0].TrajectoryPoints[0]
	if pt.Time != 0 {
		t.Errorf("streaming point time: got %v, want 0", pt.Time)
	}
}

func TestQueueingProperties_OneShot(t *testing.T) {
	q := fullConfig(t)

	msg, err := NewWholeBodyTrajectory(q, valkyrie.NewLinkSet(valkyrie.LinkLeftPalm), DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	queue := msg.LeftArmTrajectoryMessage.JointspaceTrajectory.QueueingProperties
	if queue.ExecutionMode != ExecutionModeOverride {
		t.Errorf("execution mode: got %d, want override", queue.ExecutionMode)
	}
	if queue.StreamIntegrationDuration != 0 {
		t.Errorf("integration duration: got %v, want 0", queue.StreamIntegrationDuration)
	}

	pt := msg.LeftArmTrajectoryMessage.JointspaceTrajectory.JointTrajectoryMessages[0].TrajectoryPoints[0]
	if !floatEquals(pt.Time, 1.0) {
		t.Errorf("one-shot point time: got %v, want 1.0", pt.Time)
	}
}
