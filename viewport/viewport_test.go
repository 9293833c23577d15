package viewport

import "testing"

func TestNew(t *testing.T) {
	vp := New(0, 0, 1280, 720, 0)

	if vp.PixelRatio != 1 {
		t.Errorf("expected pixel ratio 1 for non-positive input, got %f", vp.PixelRatio)
	}
	if !vp.Pending() {
		t.Error("new viewport should start with a pending resize")
	}
}

func TestDeviceSizeScalesByPixelRatio(t *testing.T) {
	vp := New(0, 0, 1280, 720, 2)

	w, h := vp.DeviceSize()
	if w != 2560 || h != 1440 {
		t.Errorf("expected device size (2560, 1440), got (%d, %d)", w, h)
	}

	vp.Resize(333, 111, 1.5)
	w, h = vp.DeviceSize()
	if w != 500 || h != 167 {
		t.Errorf("expected rounded device size (500, 167), got (%d, %d)", w, h)
	}
}

func TestResizeBurstCollapses(t *testing.T) {
	vp := New(0, 0, 800, 600, 1)
	vp.TakeResize()

	vp.Resize(810, 600, 1)
	vp.Resize(820, 600, 1)
	vp.Resize(830, 610, 1)

	if !vp.TakeResize() {
		t.Fatal("expected pending resize")
	}
	if vp.TakeResize() {
		t.Error("second TakeResize should report nothing pending")
	}
	if vp.Width != 830 || vp.Height != 610 {
		t.Errorf("expected latest size (830, 610), got (%f, %f)", vp.Width, vp.Height)
	}
}

func TestResizeNoChange(t *testing.T) {
	vp := New(0, 0, 800, 600, 1)
	vp.TakeResize()

	if vp.Resize(800, 600, 1) {
		t.Error("identical resize reported a change")
	}
	if vp.Pending() {
		t.Error("identical resize should not mark pending")
	}
}

func TestResizeClampsNegative(t *testing.T) {
	vp := New(0, 0, 800, 600, 1)
	vp.Resize(-5, 100, 1)

	if vp.Width != 0 {
		t.Errorf("expected width clamped to 0, got %f", vp.Width)
	}
	if !vp.Empty() {
		t.Error("zero-width viewport should be empty")
	}
}

func TestToLocalRoundtrip(t *testing.T) {
	vp := New(100, 50, 400, 300, 1)

	testCases := []struct{ sx, sy float32 }{
		{100, 50},
		{300, 200},
		{0, 0},
	}

	for _, tc := range testCases {
		lx, ly := vp.ToLocal(tc.sx, tc.sy)
		sx, sy := vp.ToScreen(lx, ly)
		if sx != tc.sx || sy != tc.sy {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)", tc.sx, tc.sy, lx, ly, sx, sy)
		}
	}
}

func TestContains(t *testing.T) {
	vp := New(100, 50, 400, 300, 1)

	inside := [][2]float32{{0, 0}, {400, 300}, {200, 150}}
	outside := [][2]float32{{-1, 10}, {10, -1}, {401, 10}, {10, 301}}

	for _, p := range inside {
		if !vp.Contains(p[0], p[1]) {
			t.Errorf("expected (%f,%f) inside", p[0], p[1])
		}
	}
	for _, p := range outside {
		if vp.Contains(p[0], p[1]) {
			t.Errorf("expected (%f,%f) outside", p[0], p[1])
		}
	}
}

func TestInvalidateMarksPending(t *testing.T) {
	vp := New(0, 0, 800, 600, 1)
	vp.TakeResize()

	vp.Invalidate()
	if !vp.Pending() {
		t.Fatal("Invalidate should mark the viewport pending")
	}
	if !vp.TakeResize() {
		t.Error("TakeResize should report the invalidation")
	}
	if vp.Width != 800 || vp.Height != 600 {
		t.Error("Invalidate must not change the size")
	}
}
