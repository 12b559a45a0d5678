package valkyrie

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// ChestOrientation returns the world-frame orientation of the torso link
// induced by the given configuration: the pelvis orientation composed with
// the torso yaw, pitch, and roll joint rotations, applied in that order
// down the kinematic chain.
func ChestOrientation(q Configuration) Quaternion {
	_, root := q.RootPose()

	chest := quat.Mul(toNum(root), quat.Mul(
		axisAngle(0, 0, 1, q[TorsoYaw]),
		quat.Mul(
			axisAngle(0, 1, 0, q[TorsoPitch]),
			axisAngle(1, 0, 0, q[TorsoRoll]),
		),
	))

	return fromNum(chest)
}

// axisAngle builds a unit quaternion rotating by angle radians about the
// given axis. The axis must be unit length.
func axisAngle(x, y, z, angle float64) quat.Number {
	s, c := math.Sincos(angle / 2)
	return quat.Number{Real: c, Imag: x * s, Jmag: y * s, Kmag: z * s}
}

func toNum(r Quaternion) quat.Number {
	return quat.Number{Real: r.W, Imag: r.X, Jmag: r.Y, Kmag: r.Z}
}

func fromNum(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}
