package valkyrie

import (
	"math"
	"testing"
)

func quatEquals(a, b Quaternion) bool {
	return floatEquals(a.X, b.X) && floatEquals(a.Y, b.Y) &&
		floatEquals(a.Z, b.Z) && floatEquals(a.W, b.W)
}

func TestChestOrientation_ZeroTorsoMatchesPelvis(t *testing.T) {
	q := NewConfiguration()
	rot := Quaternion{X: 0, Y: 0.5 * math.Sqrt2, Z: 0, W: 0.5 * math.Sqrt2}
	q.SetRootPose(Vec3{}, rot)

	chest := ChestOrientation(q)
	if !quatEquals(chest, rot) {
		t.Errorf("chest with zero torso joints: got %+v, want %+v", chest, rot)
	}
}

func TestChestOrientation_TorsoYaw(t *testing.T) {
	q := NewConfiguration()
	q.SetRootPose(Vec3{}, IdentityQuaternion())
	yaw := math.Pi / 3
	q[TorsoYaw] = yaw

	chest := ChestOrientation(q)
	want := Quaternion{Z: math.Sin(yaw / 2), W: math.Cos(yaw / 2)}
	if !quatEquals(chest, want) {
		t.Errorf("chest with torso yaw %v: got %+v, want %+v", yaw, chest, want)
	}
}

func TestChestOrientation_UnitNorm(t *testing.T) {
	q := NewConfiguration()
	q.SetRootPose(Vec3{}, IdentityQuaternion())
	q[TorsoYaw] = 0.4
	q[TorsoPitch] = -0.2
	q[TorsoRoll] = 0.1

	chest := ChestOrientation(q)
	norm := math.Sqrt(chest.X*chest.X + chest.Y*chest.Y + chest.Z*chest.Z + chest.W*chest.W)
	if !floatEquals(norm, 1) {
		t.Errorf("chest quaternion norm: got %v, want 1", norm)
	}
}
