// Package valkyrie defines the static model data for the NASA Valkyrie
// humanoid: configuration-vector layout, joint name lookup, per-body-part
// joint groups, and controllable link identifiers.
//
// The configuration vector is laid out as 7 virtual slots for the
// free-floating pelvis (position x,y,z then orientation quaternion x,y,z,w)
// followed by the 28 actuated joints in a fixed order. The layout never
// changes at runtime.
package valkyrie

// Virtual slots for the floating pelvis. These always occupy the first
// seven entries of a configuration vector.
const (
	VirtualX = iota
	VirtualY
	VirtualZ
	VirtualRx
	VirtualRy
	VirtualRz
	VirtualRw
)

// Actuated joint slots. Ordered left leg, right leg, torso, left arm,
// neck, right arm, starting immediately after the virtual slots.
const (
	LeftHipYaw = NumVirtual + iota
	LeftHipRoll
	LeftHipPitch
	LeftKneePitch
	LeftAnklePitch
	LeftAnkleRoll
	RightHipYaw
	RightHipRoll
	RightHipPitch
	RightKneePitch
	RightAnklePitch
	RightAnkleRoll
	TorsoYaw
	TorsoPitch
	TorsoRoll
	LeftShoulderPitch
	LeftShoulderRoll
	LeftShoulderYaw
	LeftElbowPitch
	LeftForearmYaw
	LowerNeckPitch
	NeckYaw
	UpperNeckPitch
	RightShoulderPitch
	RightShoulderRoll
	RightShoulderYaw
	RightElbowPitch
	RightForearmYaw
)

const (
	// NumVirtual is the number of virtual (root pose) slots.
	NumVirtual = 7
	// NumActJoints is the number of actuated joints.
	NumActJoints = 28
	// NumPositions is the full configuration vector length.
	NumPositions = NumVirtual + NumActJoints
)

// jointSlots maps joint names (as they appear in joint command messages)
// to configuration-vector slots. Built once; never mutated.
var jointSlots = map[string]int{
	"leftHipYaw":         LeftHipYaw,
	"leftHipRoll":        LeftHipRoll,
	"leftHipPitch":       LeftHipPitch,
	"leftKneePitch":      LeftKneePitch,
	"leftAnklePitch":     LeftAnklePitch,
	"leftAnkleRoll":      LeftAnkleRoll,
	"rightHipYaw":        RightHipYaw,
	"rightHipRoll":       RightHipRoll,
	"rightHipPitch":      RightHipPitch,
	"rightKneePitch":     RightKneePitch,
	"rightAnklePitch":    RightAnklePitch,
	"rightAnkleRoll":     RightAnkleRoll,
	"torsoYaw":           TorsoYaw,
	"torsoPitch":         TorsoPitch,
	"torsoRoll":          TorsoRoll,
	"leftShoulderPitch":  LeftShoulderPitch,
	"leftShoulderRoll":   LeftShoulderRoll,
	"leftShoulderYaw":    LeftShoulderYaw,
	"leftElbowPitch":     LeftElbowPitch,
	"leftForearmYaw":     LeftForearmYaw,
	"lowerNeckPitch":     LowerNeckPitch,
	"neckYaw":            NeckYaw,
	"upperNeckPitch":     UpperNeckPitch,
	"rightShoulderPitch": RightShoulderPitch,
	"rightShoulderRoll":  RightShoulderRoll,
	"rightShoulderYaw":   RightShoulderYaw,
	"rightElbowPitch":    RightElbowPitch,
	"rightForearmYaw":    RightForearmYaw,
}

// JointIndex returns the configuration-vector slot for a named joint.
// Unknown names return ok=false; joint command messages routinely carry
// joints that are not part of the actuated set, and those are skipped.
func JointIndex(name string) (int, bool) {
	idx, ok := jointSlots[name]
	return idx, ok
}

// SentinelIndex marks a downstream DOF with no corresponding source joint.
// Slicing a configuration by an index list substitutes zero for it.
const SentinelIndex = -1

// Joint groups consumed by command assembly. The arm groups carry two
// sentinel entries for the wrist roll/pitch DOF the downstream arm format
// expects but the model does not actuate.
var (
	PelvisIndices = []int{VirtualX, VirtualY, VirtualZ, VirtualRx, VirtualRy, VirtualRz, VirtualRw}

	LeftLegIndices  = []int{LeftHipYaw, LeftHipRoll, LeftHipPitch, LeftKneePitch, LeftAnklePitch, LeftAnkleRoll}
	RightLegIndices = []int{RightHipYaw, RightHipRoll, RightHipPitch, RightKneePitch, RightAnklePitch, RightAnkleRoll}

	TorsoIndices = []int{TorsoYaw, TorsoPitch, TorsoRoll}

	LeftArmIndices = []int{
		LeftShoulderPitch, LeftShoulderRoll, LeftShoulderYaw, LeftElbowPitch, LeftForearmYaw,
		SentinelIndex, // leftWristRoll
		SentinelIndex, // leftWristPitch
	}
	RightArmIndices = []int{
		RightShoulderPitch, RightShoulderRoll, RightShoulderYaw, RightElbowPitch, RightForearmYaw,
		SentinelIndex, // rightWristRoll
		SentinelIndex, // rightWristPitch
	}

	NeckIndices = []int{LowerNeckPitch, NeckYaw, UpperNeckPitch}
)
