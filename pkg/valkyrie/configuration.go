package valkyrie

import "fmt"

// Quaternion is an orientation in x,y,z,w component order, matching the
// wire layout of the pose and trajectory messages.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the no-rotation quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Vec3 is a position or translation in meters.
type Vec3 struct {
	X, Y, Z float64
}

// Configuration is the full robot configuration vector: root pose in the
// first NumVirtual slots, actuated joints after. Length is fixed at
// NumPositions for the lifetime of the value.
type Configuration []float64

// NewConfiguration returns a zeroed configuration vector.
func NewConfiguration() Configuration {
	return make(Configuration, NumPositions)
}

// Validate checks that the vector has the fixed model length.
func (q Configuration) Validate() error {
	if len(q) != NumPositions {
		return fmt.Errorf("configuration has %d slots, model requires %d", len(q), NumPositions)
	}
	return nil
}

// SetRootPose writes the pelvis pose into the virtual slots.
func (q Configuration) SetRootPose(pos Vec3, rot Quaternion) {
	q[VirtualX] = pos.X
	q[VirtualY] = pos.Y
	q[VirtualZ] = pos.Z
	q[VirtualRx] = rot.X
	q[VirtualRy] = rot.Y
	q[VirtualRz] = rot.Z
	q[VirtualRw] = rot.W
}

// RootPose reads the pelvis pose back out of the virtual slots.
func (q Configuration) RootPose() (Vec3, Quaternion) {
	return Vec3{X: q[VirtualX], Y: q[VirtualY], Z: q[VirtualZ]},
		Quaternion{X: q[VirtualRx], Y: q[VirtualRy], Z: q[VirtualRz], W: q[VirtualRw]}
}

// Slice copies the configuration values at the given slots into a new
// vector, substituting zero wherever the slot is SentinelIndex.
func (q Configuration) Slice(indices []int) []float64 {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		if idx == SentinelIndex {
			continue // stays zero
		}
		out[i] = q[idx]
	}
	return out
}

// Clone returns an independent copy of the configuration.
func (q Configuration) Clone() Configuration {
	out := make(Configuration, len(q))
	copy(out, q)
	return out
}
