// Package ihmc models the IHMC humanoid-controller input messages and
// assembles them from a robot configuration. The structs mirror the
// controller_msgs wire layout field for field; sub-messages that are not
// populated for the current controlled-link set are omitted entirely.
package ihmc

// Robot sides for arm and foot messages.
const (
	RobotSideLeft  = 0
	RobotSideRight = 1
)

// Execution modes for queueable messages.
const (
	ExecutionModeOverride = 0
	ExecutionModeQueue    = 1
	ExecutionModeStream   = 2
)

// Body parts for go-home messages.
const (
	BodyPartArm    = 0
	BodyPartChest  = 1
	BodyPartPelvis = 2
)

// Point is a position in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is an orientation in x,y,z,w order.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Vector3 is a linear or angular velocity.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pose is a position/orientation pair.
type Pose struct {
	Position    Point      `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// FrameInformation names the reference frames a trajectory is expressed in.
type FrameInformation struct {
	SequenceID                 uint32 `json:"sequence_id"`
	TrajectoryReferenceFrameID int64  `json:"trajectory_reference_frame_id"`
	DataReferenceFrameID       int64  `json:"data_reference_frame_id"`
}

// QueueableMessage carries the queueing metadata shared by all trajectory
// messages. PreviousMessageID is only meaningful in queue mode and
// StreamIntegrationDuration only in stream mode.
type QueueableMessage struct {
	SequenceID                uint32  `json:"sequence_id"`
	ExecutionMode             int     `json:"execution_mode"`
	MessageID                 int64   `json:"message_id"`
	PreviousMessageID         int64   `json:"previous_message_id,omitempty"`
	StreamIntegrationDuration float64 `json:"stream_integration_duration,omitempty"`
	Timestamp                 int64   `json:"timestamp"`
}

// SelectionMatrix3D selects which axes of a trajectory are commanded.
type SelectionMatrix3D struct {
	SequenceID       uint32 `json:"sequence_id"`
	SelectionFrameID int64  `json:"selection_frame_id"`
	XSelected        bool   `json:"x_selected"`
	YSelected        bool   `json:"y_selected"`
	ZSelected        bool   `json:"z_selected"`
}

// WeightMatrix3D encodes per-axis priorities; -1 leaves the controller
// default in place.
type WeightMatrix3D struct {
	SequenceID    uint32  `json:"sequence_id"`
	WeightFrameID int64   `json:"weight_frame_id"`
	XWeight       float64 `json:"x_weight"`
	YWeight       float64 `json:"y_weight"`
	ZWeight       float64 `json:"z_weight"`
}

// TrajectoryPoint1D is a single jointspace waypoint.
type TrajectoryPoint1D struct {
	SequenceID uint32  `json:"sequence_id"`
	Time       float64 `json:"time"`
	Position   float64 `json:"position"`
	Velocity   float64 `json:"velocity"`
}

// OneDoFJointTrajectory is the waypoint list for one joint.
type OneDoFJointTrajectory struct {
	SequenceID       uint32              `json:"sequence_id"`
	TrajectoryPoints []TrajectoryPoint1D `json:"trajectory_points"`
	Weight           float64             `json:"weight"`
}

// JointspaceTrajectory commands a group of joints.
type JointspaceTrajectory struct {
	SequenceID              uint32                  `json:"sequence_id"`
	JointTrajectoryMessages []OneDoFJointTrajectory `json:"joint_trajectory_messages"`
	QueueingProperties      QueueableMessage        `json:"queueing_properties"`
}

// SE3TrajectoryPoint is a full-pose waypoint with zeroed velocities.
type SE3TrajectoryPoint struct {
	SequenceID      uint32     `json:"sequence_id"`
	Time            float64    `json:"time"`
	Position        Point      `json:"position"`
	Orientation     Quaternion `json:"orientation"`
	LinearVelocity  Vector3    `json:"linear_velocity"`
	AngularVelocity Vector3    `json:"angular_velocity"`
}

// SO3TrajectoryPoint is an orientation-only waypoint.
type SO3TrajectoryPoint struct {
	SequenceID      uint32     `json:"sequence_id"`
	Time            float64    `json:"time"`
	Orientation     Quaternion `json:"orientation"`
	AngularVelocity Vector3    `json:"angular_velocity"`
}

// SE3Trajectory commands a pose in task space.
type SE3Trajectory struct {
	SequenceID                uint32               `json:"sequence_id"`
	TaskspaceTrajectoryPoints []SE3TrajectoryPoint `json:"taskspace_trajectory_points"`
	AngularSelectionMatrix    SelectionMatrix3D    `json:"angular_selection_matrix"`
	LinearSelectionMatrix     SelectionMatrix3D    `json:"linear_selection_matrix"`
	AngularWeightMatrix       WeightMatrix3D       `json:"angular_weight_matrix"`
	LinearWeightMatrix        WeightMatrix3D       `json:"linear_weight_matrix"`
	UseCustomControlFrame     bool                 `json:"use_custom_control_frame"`
	ControlFramePose          Pose                 `json:"control_frame_pose"`
	FrameInformation          FrameInformation     `json:"frame_information"`
	QueueingProperties        QueueableMessage     `json:"queueing_properties"`
}

// SO3Trajectory commands an orientation in task space.
type SO3Trajectory struct {
	SequenceID                uint32               `json:"sequence_id"`
	TaskspaceTrajectoryPoints []SO3TrajectoryPoint `json:"taskspace_trajectory_points"`
	SelectionMatrix           SelectionMatrix3D    `json:"selection_matrix"`
	WeightMatrix              WeightMatrix3D       `json:"weight_matrix"`
	UseCustomControlFrame     bool                 `json:"use_custom_control_frame"`
	ControlFramePose          Pose                 `json:"control_frame_pose"`
	FrameInformation          FrameInformation     `json:"frame_information"`
	QueueingProperties        QueueableMessage     `json:"queueing_properties"`
}

// ArmTrajectory commands one arm in joint space.
type ArmTrajectory struct {
	SequenceID           uint32               `json:"sequence_id"`
	RobotSide            int                  `json:"robot_side"`
	ForceExecution       bool                 `json:"force_execution"`
	JointspaceTrajectory JointspaceTrajectory `json:"jointspace_trajectory"`
}

// ChestTrajectory commands the chest orientation.
type ChestTrajectory struct {
	SequenceID    uint32        `json:"sequence_id"`
	SO3Trajectory SO3Trajectory `json:"so3_trajectory"`
}

// PelvisTrajectory commands the pelvis pose.
type PelvisTrajectory struct {
	SequenceID                           uint32        `json:"sequence_id"`
	ForceExecution                       bool          `json:"force_execution"`
	EnableUserPelvisControl              bool          `json:"enable_user_pelvis_control"`
	EnableUserPelvisControlDuringWalking bool          `json:"enable_user_pelvis_control_during_walking"`
	SE3Trajectory                        SE3Trajectory `json:"se3_trajectory"`
}

// NeckTrajectory commands the neck in joint space.
type NeckTrajectory struct {
	SequenceID           uint32               `json:"sequence_id"`
	JointspaceTrajectory JointspaceTrajectory `json:"jointspace_trajectory"`
}

// WholeBodyTrajectory is the top-level command. Sub-messages are nil when
// the corresponding link is not controlled; feet and spine are never
// populated (see NewWholeBodyTrajectory).
type WholeBodyTrajectory struct {
	SequenceID                uint32            `json:"sequence_id"`
	LeftArmTrajectoryMessage  *ArmTrajectory    `json:"left_arm_trajectory_message,omitempty"`
	RightArmTrajectoryMessage *ArmTrajectory    `json:"right_arm_trajectory_message,omitempty"`
	ChestTrajectoryMessage    *ChestTrajectory  `json:"chest_trajectory_message,omitempty"`
	PelvisTrajectoryMessage   *PelvisTrajectory `json:"pelvis_trajectory_message,omitempty"`
	NeckTrajectoryMessage     *NeckTrajectory   `json:"neck_trajectory_message,omitempty"`
}

// GoHome returns one body part to its home posture. RobotSide is only
// meaningful for arms.
type GoHome struct {
	HumanoidBodyPart int     `json:"humanoid_body_part"`
	RobotSide        int     `json:"robot_side"`
	TrajectoryTime   float64 `json:"trajectory_time"`
}
