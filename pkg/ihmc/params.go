package ihmc

// Reference frame ids understood by the IHMC controller.
const (
	// WorldFrameID is the hash id of the world frame.
	WorldFrameID = 83766130
	// PelvisZUpFrameID is the id of the pelvis z-up frame, used as the
	// trajectory frame for chest orientation.
	PelvisZUpFrameID = -101
)

// DefaultGoHomeTrajectoryTime is how long the controller takes to reach
// the home configuration, in seconds.
const DefaultGoHomeTrajectoryTime = 3.0

// DefaultStreamIntegrationDuration smooths out delays between streamed
// messages. Equal to or slightly longer than the interval between two
// consecutive messages, which arrive at roughly 10 Hz.
const DefaultStreamIntegrationDuration = 0.13

// MessageParameters holds everything assembly needs beyond the
// configuration itself. Zero-value fields are not usable; start from
// DefaultParameters.
type MessageParameters struct {
	// SequenceID is stamped on every message and sub-message.
	SequenceID uint32

	// Queueing metadata.
	ExecutionMode             int
	MessageID                 int64
	PreviousMessageID         int64
	StreamIntegrationDuration float64

	// TrajectoryPointTime is when each waypoint should be reached,
	// relative to trajectory start.
	TrajectoryPointTime float64

	// Per-axis priority weights; -1 keeps controller defaults.
	JointWeight float64
	AxisWeight  float64

	// Safety and control-mode flags, all off by default.
	ForceExecution                       bool
	EnableUserPelvisControl              bool
	EnableUserPelvisControlDuringWalking bool
	UseCustomControlFrame                bool

	// GoHomeTrajectoryTime is the duration for go-home commands.
	GoHomeTrajectoryTime float64
}

// DefaultParameters returns one-shot parameters: override execution with
// a one-second waypoint time and controller-default weights.
func DefaultParameters() MessageParameters {
	return MessageParameters{
		SequenceID:           1,
		ExecutionMode:        ExecutionModeOverride,
		MessageID:            -1,
		PreviousMessageID:    -1,
		TrajectoryPointTime:  1.0,
		JointWeight:          -1,
		AxisWeight:           -1,
		GoHomeTrajectoryTime: DefaultGoHomeTrajectoryTime,
	}
}

// ForStreaming returns a copy of p configured for continuous streaming:
// stream execution mode, integration duration covering the expected
// update period, and immediate waypoints.
func (p MessageParameters) ForStreaming() MessageParameters {
	p.ExecutionMode = ExecutionModeStream
	p.StreamIntegrationDuration = DefaultStreamIntegrationDuration
	p.TrajectoryPointTime = 0
	return p
}
