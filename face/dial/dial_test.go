package dial

import "testing"

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestPhaseZeroIsTopOfCircle(t *testing.T) {
	c := Point{X: 72, Y: 84}
	p := OnCircle(0, 50, c)
	if absInt(p.X-c.X) > 1 || absInt(p.Y-(c.Y-50)) > 1 {
		t.Fatalf("phase 0 = %+v, want ~(%d,%d)", p, c.X, c.Y-50)
	}
}

func TestQuarterPhases(t *testing.T) {
	c := Point{X: 72, Y: 84}
	cases := []struct {
		phase float32
		want  Point
	}{
		{0.25, Point{c.X + 50, c.Y}}, // 3 o'clock
		{0.50, Point{c.X, c.Y + 50}}, // 6 o'clock
		{0.75, Point{c.X - 50, c.Y}}, // 9 o'clock
	}
	for _, tc := range cases {
		p := OnCircle(tc.phase, 50, c)
		if absInt(p.X-tc.want.X) > 1 || absInt(p.Y-tc.want.Y) > 1 {
			t.Fatalf("phase %v = %+v, want ~%+v", tc.phase, p, tc.want)
		}
	}
}

func TestDotStaysOnCircle(t *testing.T) {
	c := Point{X: 72, Y: 84}
	for s := 0; s < 60; s++ {
		p := OnCircle(SecondPhase(s), 50, c)
		dx := p.X - c.X
		dy := p.Y - c.Y
		r2 := dx*dx + dy*dy
		// 50^2 = 2500; allow the kernel's error plus rounding.
		if r2 < 2300 || r2 > 2700 {
			t.Fatalf("second %d: point %+v is off the circle (r^2=%d)", s, p, r2)
		}
	}
}

func TestHourPhaseCreeps(t *testing.T) {
	if HourPhase(3, 0) >= HourPhase(3, 30) {
		t.Fatalf("hour phase should advance with minutes")
	}
	if HourPhase(15, 0) != HourPhase(3, 0) {
		t.Fatalf("hour phase should wrap at 12")
	}
	if got := HourPhase(0, 0); got != 0 {
		t.Fatalf("midnight phase = %v, want 0", got)
	}
}
