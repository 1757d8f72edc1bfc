package core

import (
	"math"
	"testing"
)

func approxEqual(a, b Vec2d) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestCameraProjectRoundTrip(t *testing.T) {
	c := Camera{Offset: V(120.0, -40.0), Zoom: 1.5}
	points := []Vec2d{V(0.0, 0.0), V(64.0, 128.0), V(-300.5, 999.25)}

	for _, p := range points {
		s := c.Project(p)
		back := c.Unproject(s)
		if !approxEqual(back, p) {
			t.Errorf("Unproject(Project(%v)) = %v", p, back)
		}
	}
}

func TestCameraIdentity(t *testing.T) {
	c := NewCamera()
	p := V(42.0, 17.0)
	if c.Project(p) != p {
		t.Errorf("NewCamera().Project(%v) = %v, expected identity", p, c.Project(p))
	}
}

func TestCameraZoomKeepsPivot(t *testing.T) {
	tests := []struct {
		name  string
		cam   Camera
		delta float64
		pivot Vec2d
	}{
		{"zoom in at centre", NewCamera(), 1.02, V(400.0, 300.0)},
		{"zoom out at origin", Camera{Offset: V(10.0, 20.0), Zoom: 2}, 1 / 1.1, V(0.0, 0.0)},
		{"wheel at corner", Camera{Offset: V(-50.0, 75.0), Zoom: 0.8}, 1.1, V(799.0, 599.0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.cam.Unproject(tc.pivot)
			cam := tc.cam
			cam.ApplyZoom(tc.delta, tc.pivot)
			after := cam.Unproject(tc.pivot)
			if !approxEqual(before, after) {
				t.Errorf("world point under pivot moved from %v to %v", before, after)
			}
			if math.Abs(cam.Zoom-tc.cam.Zoom*tc.delta) > 1e-12 {
				t.Errorf("Zoom = %v, expected %v", cam.Zoom, tc.cam.Zoom*tc.delta)
			}
		})
	}
}

func TestCameraProjectRect(t *testing.T) {
	c := Camera{Offset: V(10.0, 0.0), Zoom: 2}
	got := c.ProjectRect(NewRect(5.0, 5.0, 10.0, 20.0))
	expected := NewRect(0.0, 10.0, 20.0, 40.0)
	if got != expected {
		t.Errorf("ProjectRect() = %v, expected %v", got, expected)
	}
}

func TestCameraPan(t *testing.T) {
	c := NewCamera()
	c.Pan(V(10.0, -10.0))
	c.Pan(V(5.0, 0.0))
	if c.Offset != V(15.0, -10.0) {
		t.Errorf("Offset = %v, expected (15, -10)", c.Offset)
	}
}
