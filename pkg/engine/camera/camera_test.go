package camera

import (
	"errors"
	"math"
	"testing"
)

func newCamera(t *testing.T, opts Options) *Camera {
	t.Helper()
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New(%+v) error: %v", opts, err)
	}
	return c
}

// centerDistance returns the distance between the viewport center and the target.
func centerDistance(c *Camera) float64 {
	v := c.Viewport()
	tx, ty := c.Target()
	return math.Hypot(v.X+v.W/2-tx, v.Y+v.H/2-ty)
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	base := Options{ViewportW: 800, ViewportH: 600, WorldW: 3200, WorldH: 3200, Smoothing: 0.1}
	bad := []func(o *Options){
		func(o *Options) { o.Smoothing = 0 },
		func(o *Options) { o.Smoothing = 1.5 },
		func(o *Options) { o.Smoothing = math.NaN() },
		func(o *Options) { o.ViewportW = 0 },
		func(o *Options) { o.WorldH = -1 },
		func(o *Options) { o.Margin = -5 },
	}
	for i, mutate := range bad {
		o := base
		mutate(&o)
		if _, err := New(o); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("case %d: New(%+v) error = %v, want ErrInvalidOptions", i, o, err)
		}
	}
}

func TestTick_SmoothingOneSnapsInOneTick(t *testing.T) {
	c := newCamera(t, Options{ViewportW: 800, ViewportH: 600, WorldW: 3200, WorldH: 3200, Smoothing: 1})
	c.SetTarget(1600, 1500)
	c.Tick()
	v := c.Viewport()
	if v.X != 1200 || v.Y != 1200 {
		t.Errorf("viewport after one tick = (%v, %v), want (1200, 1200)", v.X, v.Y)
	}
	if d := centerDistance(c); d != 0 {
		t.Errorf("center distance = %v, want 0", d)
	}
}

func TestTick_SmoothingConvergesMonotonically(t *testing.T) {
	c := newCamera(t, Options{ViewportW: 800, ViewportH: 600, WorldW: 3200, WorldH: 3200, Smoothing: 0.1})
	c.SetTarget(2000, 1800)
	prev := centerDistance(c)
	for i := 0; i < 60; i++ {
		c.Tick()
		d := centerDistance(c)
		if !(d < prev) {
			t.Fatalf("tick %d: distance %v did not decrease from %v", i, d, prev)
		}
		prev = d
	}
}

func TestUpdate_MatchesTickAtReferenceRate(t *testing.T) {
	opts := Options{ViewportW: 640, ViewportH: 480, WorldW: 3200, WorldH: 3200, Smoothing: 0.2}
	a := newCamera(t, opts)
	b := newCamera(t, opts)
	a.SetTarget(900, 700)
	b.SetTarget(900, 700)
	for i := 0; i < 10; i++ {
		a.Tick()
		b.Update(1.0 / 60.0)
	}
	va, vb := a.Viewport(), b.Viewport()
	if math.Abs(va.X-vb.X) > 1e-9 || math.Abs(va.Y-vb.Y) > 1e-9 {
		t.Errorf("Update(1/60) viewport %+v differs from Tick viewport %+v", vb, va)
	}
}

func TestUpdate_FrameRateIndependent(t *testing.T) {
	opts := Options{ViewportW: 640, ViewportH: 480, WorldW: 3200, WorldH: 3200, Smoothing: 0.1}
	fast := newCamera(t, opts)
	slow := newCamera(t, opts)
	fast.SetTarget(1500, 1500)
	slow.SetTarget(1500, 1500)
	for i := 0; i < 120; i++ {
		fast.Update(1.0 / 120.0)
	}
	for i := 0; i < 30; i++ {
		slow.Update(1.0 / 30.0)
	}
	vf, vs := fast.Viewport(), slow.Viewport()
	if math.Abs(vf.X-vs.X) > 1e-6 || math.Abs(vf.Y-vs.Y) > 1e-6 {
		t.Errorf("one second at 120fps %+v != one second at 30fps %+v", vf, vs)
	}
}

func TestClamp_KeepsViewportInsideWorld(t *testing.T) {
	c := newCamera(t, Options{ViewportW: 800, ViewportH: 600, WorldW: 3200, WorldH: 3200, Smoothing: 1, Clamp: true})
	c.SnapTo(10, 10)
	if v := c.Viewport(); v.X != 0 || v.Y != 0 {
		t.Errorf("viewport near origin = (%v, %v), want (0, 0)", v.X, v.Y)
	}
	c.SnapTo(3190, 3190)
	if v := c.Viewport(); v.X != 2400 || v.Y != 2600 {
		t.Errorf("viewport near far corner = (%v, %v), want (2400, 2600)", v.X, v.Y)
	}
}

func TestClamp_WorldSmallerThanViewportIsCentered(t *testing.T) {
	c := newCamera(t, Options{ViewportW: 800, ViewportH: 600, WorldW: 400, WorldH: 1000, Smoothing: 1, Clamp: true})
	c.SnapTo(0, 0)
	v := c.Viewport()
	if v.X != -200 {
		t.Errorf("viewport X = %v, want -200 (world centered)", v.X)
	}
	if v.Y != 0 {
		t.Errorf("viewport Y = %v, want 0", v.Y)
	}
}

func TestInView_UsesMargin(t *testing.T) {
	c := newCamera(t, Options{ViewportW: 100, ViewportH: 100, WorldW: 1000, WorldH: 1000, Smoothing: 1})
	c.SnapTo(500, 500) // viewport [450,550]²
	cases := []struct {
		x, y float64
		want bool
	}{
		{500, 500, true},
		{450 - 64, 500, true},
		{450 - 64.5, 500, false},
		{550 + 64, 550 + 64, true},
		{550 + 65, 500, false},
	}
	for _, tc := range cases {
		if got := c.InView(tc.x, tc.y); got != tc.want {
			t.Errorf("InView(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestToScreenRoundTrip(t *testing.T) {
	c := newCamera(t, Options{ViewportW: 320, ViewportH: 240, WorldW: 1000, WorldH: 1000, Smoothing: 1})
	c.SnapTo(400, 300)
	sx, sy := c.ToScreen(400, 300)
	if sx != 160 || sy != 120 {
		t.Errorf("ToScreen(target) = (%v, %v), want (160, 120)", sx, sy)
	}
	x, y := c.ToWorld(sx, sy)
	if x != 400 || y != 300 {
		t.Errorf("ToWorld(ToScreen(target)) = (%v, %v)", x, y)
	}
}
