// Package transport connects the bridge to the MQTT broker carrying the
// controller output streams and the IHMC controller input topics. It
// decodes inbound JSON payloads into aggregator/status updates and
// publishes assembled commands.
package transport

import "github.com/teslashibe/go-valkyrie/pkg/valkyrie"

// Vec3Payload is a translation in meters.
type Vec3Payload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// QuatPayload is an orientation in x,y,z,w order.
type QuatPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// TransformPayload is the pelvis transform update: root-body pose with
// respect to the world frame.
type TransformPayload struct {
	Translation Vec3Payload `json:"translation"`
	Rotation    QuatPayload `json:"rotation"`
}

// JointStatePayload carries parallel name/position arrays. Extra names
// the model does not track are permitted and skipped downstream.
type JointStatePayload struct {
	Name     []string  `json:"name"`
	Position []float64 `json:"position"`
}

// LinkIDsPayload carries the controlled-link id array.
type LinkIDsPayload struct {
	Data []int `json:"data"`
}

// StatusPayload carries one operator status signal string.
type StatusPayload struct {
	Data string `json:"data"`
}

func (p TransformPayload) pose() (valkyrie.Vec3, valkyrie.Quaternion) {
	return valkyrie.Vec3{X: p.Translation.X, Y: p.Translation.Y, Z: p.Translation.Z},
		valkyrie.Quaternion{X: p.Rotation.X, Y: p.Rotation.Y, Z: p.Rotation.Z, W: p.Rotation.W}
}
