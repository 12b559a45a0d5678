package ihmc

import (
	"time"

	"github.com/teslashibe/go-valkyrie/pkg/valkyrie"
)

// NewWholeBodyTrajectory assembles a whole-body command from a full
// configuration vector and the set of links the command may drive.
// Sub-messages for uncontrolled links are left nil.
//
// Feet and spine are deliberately never populated: commanding foot poses
// interferes with the controller's own balancing, and spine trajectories
// are unreliable on the physical robot even though they work in
// simulation.
func NewWholeBodyTrajectory(q valkyrie.Configuration, links valkyrie.LinkSet, p MessageParameters) (*WholeBodyTrajectory, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	msg := &WholeBodyTrajectory{SequenceID: p.SequenceID}

	if links.Contains(valkyrie.LinkLeftPalm) {
		msg.LeftArmTrajectoryMessage = newArmTrajectory(q.Slice(valkyrie.LeftArmIndices), RobotSideLeft, p)
	}
	if links.Contains(valkyrie.LinkRightPalm) {
		msg.RightArmTrajectoryMessage = newArmTrajectory(q.Slice(valkyrie.RightArmIndices), RobotSideRight, p)
	}
	if links.Contains(valkyrie.LinkTorso) {
		chest := valkyrie.ChestOrientation(q)
		msg.ChestTrajectoryMessage = newChestTrajectory(toQuaternion(chest), p)
	}
	if links.Contains(valkyrie.LinkPelvis) {
		msg.PelvisTrajectoryMessage = newPelvisTrajectory(q.Slice(valkyrie.PelvisIndices), p)
	}
	if links.Contains(valkyrie.LinkHead) {
		msg.NeckTrajectoryMessage = newNeckTrajectory(q.Slice(valkyrie.NeckIndices), p)
	}

	return msg, nil
}

func newArmTrajectory(qJoints []float64, side int, p MessageParameters) *ArmTrajectory {
	return &ArmTrajectory{
		SequenceID:           p.SequenceID,
		RobotSide:            side,
		ForceExecution:       p.ForceExecution,
		JointspaceTrajectory: newJointspaceTrajectory(qJoints, p),
	}
}

func newChestTrajectory(quat Quaternion, p MessageParameters) *ChestTrajectory {
	return &ChestTrajectory{
		SequenceID:    p.SequenceID,
		SO3Trajectory: newSO3Trajectory(quat, PelvisZUpFrameID, WorldFrameID, p),
	}
}

// newPelvisTrajectory reads the pose straight out of the virtual slots;
// the pelvis is the only sub-part not recomputed through kinematics.
func newPelvisTrajectory(qPelvis []float64, p MessageParameters) *PelvisTrajectory {
	pos := Point{X: qPelvis[0], Y: qPelvis[1], Z: qPelvis[2]}
	quat := Quaternion{X: qPelvis[3], Y: qPelvis[4], Z: qPelvis[5], W: qPelvis[6]}
	return &PelvisTrajectory{
		SequenceID:                           p.SequenceID,
		ForceExecution:                       p.ForceExecution,
		EnableUserPelvisControl:              p.EnableUserPelvisControl,
		EnableUserPelvisControlDuringWalking: p.EnableUserPelvisControlDuringWalking,
		SE3Trajectory:                        newSE3Trajectory(pos, quat, WorldFrameID, WorldFrameID, p),
	}
}

func newNeckTrajectory(qJoints []float64, p MessageParameters) *NeckTrajectory {
	return &NeckTrajectory{
		SequenceID:           p.SequenceID,
		JointspaceTrajectory: newJointspaceTrajectory(qJoints, p),
	}
}

func newJointspaceTrajectory(qJoints []float64, p MessageParameters) JointspaceTrajectory {
	joints := make([]OneDoFJointTrajectory, len(qJoints))
	for i, q := range qJoints {
		joints[i] = OneDoFJointTrajectory{
			SequenceID: p.SequenceID,
			Weight:     p.JointWeight,
			TrajectoryPoints: []TrajectoryPoint1D{{
				SequenceID: p.SequenceID,
				Time:       p.TrajectoryPointTime,
				Position:   q,
				Velocity:   0,
			}},
		}
	}
	return JointspaceTrajectory{
		SequenceID:              p.SequenceID,
		JointTrajectoryMessages: joints,
		QueueingProperties:      newQueueable(p),
	}
}

func newSE3Trajectory(pos Point, quat Quaternion, trajFrame, dataFrame int64, p MessageParameters) SE3Trajectory {
	return SE3Trajectory{
		SequenceID: p.SequenceID,
		TaskspaceTrajectoryPoints: []SE3TrajectoryPoint{{
			SequenceID:  p.SequenceID,
			Time:        p.TrajectoryPointTime,
			Position:    pos,
			Orientation: quat,
		}},
		AngularSelectionMatrix: newSelectionMatrix(p),
		LinearSelectionMatrix:  newSelectionMatrix(p),
		AngularWeightMatrix:    newWeightMatrix(p),
		LinearWeightMatrix:     newWeightMatrix(p),
		UseCustomControlFrame:  p.UseCustomControlFrame,
		FrameInformation:       newFrameInformation(trajFrame, dataFrame, p),
		QueueingProperties:     newQueueable(p),
	}
}

func newSO3Trajectory(quat Quaternion, trajFrame, dataFrame int64, p MessageParameters) SO3Trajectory {
	return SO3Trajectory{
		SequenceID: p.SequenceID,
		TaskspaceTrajectoryPoints: []SO3TrajectoryPoint{{
			SequenceID:  p.SequenceID,
			Time:        p.TrajectoryPointTime,
			Orientation: quat,
		}},
		SelectionMatrix:       newSelectionMatrix(p),
		WeightMatrix:          newWeightMatrix(p),
		UseCustomControlFrame: p.UseCustomControlFrame,
		FrameInformation:      newFrameInformation(trajFrame, dataFrame, p),
		QueueingProperties:    newQueueable(p),
	}
}

func newQueueable(p MessageParameters) QueueableMessage {
	msg := QueueableMessage{
		SequenceID:    p.SequenceID,
		ExecutionMode: p.ExecutionMode,
		MessageID:     p.MessageID,
		Timestamp:     time.Now().UnixNano(),
	}
	// Mode-dependent fields; the controller ignores them otherwise.
	if p.ExecutionMode == ExecutionModeQueue {
		msg.PreviousMessageID = p.PreviousMessageID
	}
	if p.ExecutionMode == ExecutionModeStream {
		msg.StreamIntegrationDuration = p.StreamIntegrationDuration
	}
	return msg
}

func newFrameInformation(trajFrame, dataFrame int64, p MessageParameters) FrameInformation {
	return FrameInformation{
		SequenceID:                 p.SequenceID,
		TrajectoryReferenceFrameID: trajFrame,
		DataReferenceFrameID:       dataFrame,
	}
}

func newSelectionMatrix(p MessageParameters) SelectionMatrix3D {
	return SelectionMatrix3D{
		SequenceID: p.SequenceID,
		XSelected:  true,
		YSelected:  true,
		ZSelected:  true,
	}
}

func newWeightMatrix(p MessageParameters) WeightMatrix3D {
	return WeightMatrix3D{
		SequenceID: p.SequenceID,
		XWeight:    p.AxisWeight,
		YWeight:    p.AxisWeight,
		ZWeight:    p.AxisWeight,
	}
}

func toQuaternion(q valkyrie.Quaternion) Quaternion {
	return Quaternion{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}
