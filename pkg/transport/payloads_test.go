package transport

import (
	"encoding/json"
	"testing"
)

func TestTransformPayload_Decode(t *testing.T) {
	raw := []byte(`{
		"translation": {"x": 1, "y": 2, "z": 3},
		"rotation": {"x": 0, "y": 0, "z": 0, "w": 1}
	}`)

	var p TransformPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatal(err)
	}

	pos, rot := p.pose()
	if pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("translation: got %+v, want (1,2,3)", pos)
	}
	if rot.X != 0 || rot.Y != 0 || rot.Z != 0 || rot.W != 1 {
		t.Errorf("rotation: got %+v, want identity", rot)
	}
}

func TestJointStatePayload_Decode(t *testing.T) {
	raw := []byte(`{"name": ["torsoYaw", "leftHipYaw"], "position": [0.5, -0.3]}`)

	var p JointStatePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatal(err)
	}
	if len(p.Name) != 2 || len(p.Position) != 2 {
		t.Fatalf("got %d names, %d positions", len(p.Name), len(p.Position))
	}
	if p.Name[0] != "torsoYaw" || p.Position[1] != -0.3 {
		t.Errorf("decoded %+v", p)
	}
}

func TestStatusPayload_Decode(t *testing.T) {
	var p StatusPayload
	if err := json.Unmarshal([]byte(`{"data": "START-LISTENING"}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Data != "START-LISTENING" {
		t.Errorf("got %q", p.Data)
	}
}
