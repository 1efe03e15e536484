package strat

import (
	"math"
	"testing"
)

func TestSigmoidLUT_ZeroIsExactlyHalf(t *testing.T) {
	lut := kernelTables().Sigmoid
	if got := lut.Lookup(0); got != 0.5 {
		t.Errorf("sigma(0) = %v, want exactly 0.5", got)
	}
}

func TestSigmoidLUT_Endpoints(t *testing.T) {
	lut := kernelTables().Sigmoid
	if got := lut.Lookup(-4); got > 0.05 {
		t.Errorf("sigma(-4) = %v, want < 0.05", got)
	}
	if got := lut.Lookup(4); got < 0.95 {
		t.Errorf("sigma(4) = %v, want > 0.95", got)
	}
}

func TestSigmoidLUT_ClampsOutsideRange(t *testing.T) {
	lut := kernelTables().Sigmoid
	if got, want := lut.Lookup(-100), lut.Lookup(-4); got != want {
		t.Errorf("sigma(-100) = %v, want clamp to sigma(-4) = %v", got, want)
	}
	if got, want := lut.Lookup(100), lut.Lookup(4); got != want {
		t.Errorf("sigma(100) = %v, want clamp to sigma(4) = %v", got, want)
	}
}

func TestSigmoidLUT_Monotone(t *testing.T) {
	lut := kernelTables().Sigmoid
	prev := float32(-1)
	for x := float32(-4); x <= 4; x += 0.05 {
		v := lut.Lookup(x)
		if v < prev {
			t.Fatalf("sigma not monotone at x=%v: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestLogRatioLUT_One(t *testing.T) {
	lut := kernelTables().LogRatio
	if got := lut.Lookup(1); math.Abs(float64(got)) > 1e-4 {
		t.Errorf("ln(1) = %v, want 0 within quantization", got)
	}
}

func TestLogRatioLUT_Endpoints(t *testing.T) {
	lut := kernelTables().LogRatio
	if got := lut.Lookup(0.25); math.Abs(float64(got)+1.386) > 0.01 {
		t.Errorf("ln(0.25) = %v, want about -1.386", got)
	}
	if got := lut.Lookup(4); math.Abs(float64(got)-1.386) > 0.01 {
		t.Errorf("ln(4) = %v, want about 1.386", got)
	}
	// Clamped outside the domain.
	if got, want := lut.Lookup(0.01), lut.Lookup(0.25); got != want {
		t.Errorf("ln(0.01) = %v, want clamp to ln(0.25) = %v", got, want)
	}
	if got, want := lut.Lookup(50), lut.Lookup(4); got != want {
		t.Errorf("ln(50) = %v, want clamp to ln(4) = %v", got, want)
	}
}

func TestDiscountLUT_Values(t *testing.T) {
	lut := kernelTables().Discount
	if got := lut.Get(1); got != 0.95 {
		t.Errorf("d^1 = %v, want exactly 0.95", got)
	}
	if got := lut.Get(2); math.Abs(float64(got)-0.9025) > 1e-4 {
		t.Errorf("d^2 = %v, want about 0.9025", got)
	}
	// Horizons outside [1,16] clamp.
	if got, want := lut.Get(0), lut.Get(1); got != want {
		t.Errorf("Get(0) = %v, want clamp to Get(1) = %v", got, want)
	}
	if got, want := lut.Get(99), lut.Get(16); got != want {
		t.Errorf("Get(99) = %v, want clamp to Get(16) = %v", got, want)
	}
}

func TestDistanceKernelLUT_Values(t *testing.T) {
	lut := kernelTables().Kernel
	if got := lut.Get(0); got != 1 {
		t.Errorf("K(0) = %v, want exactly 1", got)
	}
	for d := 1; d <= kernelMaxDistance; d++ {
		if lut.Get(d) >= lut.Get(d-1) {
			t.Fatalf("K not decreasing at d=%d: %v >= %v", d, lut.Get(d), lut.Get(d-1))
		}
	}
	if got, want := lut.Get(200), lut.Get(20); got != want {
		t.Errorf("K(200) = %v, want clamp to K(20) = %v", got, want)
	}
	if got, want := lut.Get(-3), lut.Get(0); got != want {
		t.Errorf("K(-3) = %v, want clamp to K(0) = %v", got, want)
	}
}
