package strat

import (
	"math"
	"sync"
)

// LUT resolutions and domains. Every nonlinear function in the scoring hot
// path goes through one of these tables; the host math library is only
// touched here, once, at table construction.
const (
	sigmoidSteps = 256
	sigmoidMinX  = -4.0
	sigmoidMaxX  = 4.0

	logRatioSteps = 256
	logRatioMin   = 0.25
	logRatioMax   = 4.0

	discountHorizon = 16
	discountRate    = 0.95

	kernelMaxDistance = 20
	kernelDecay       = 0.2
)

// SigmoidLUT holds σ(x)=1/(1+e^-x) sampled over [-4,+4]. Inputs outside the
// range clamp to the endpoints; lookups interpolate linearly between samples.
type SigmoidLUT struct {
	table [sigmoidSteps]float32
	step  float32
}

func newSigmoidLUT() *SigmoidLUT {
	lut := &SigmoidLUT{}
	lut.step = float32(sigmoidMaxX-sigmoidMinX) / float32(sigmoidSteps-1)
	// Fill the upper half from the formula and mirror the lower half so the
	// two middle samples sum to exactly 1. σ(0) then lands exactly on 0.5
	// between them.
	for i := sigmoidSteps / 2; i < sigmoidSteps; i++ {
		x := sigmoidMinX + float64(i)*float64(lut.step)
		lut.table[i] = float32(1.0 / (1.0 + math.Exp(-x)))
	}
	for i := 0; i < sigmoidSteps/2; i++ {
		lut.table[i] = 1 - lut.table[sigmoidSteps-1-i]
	}
	return lut
}

// Lookup returns σ(x) with linear interpolation, clamping x to [-4,+4].
func (lut *SigmoidLUT) Lookup(x float32) float32 {
	return lerpTable(lut.table[:], sigmoidMinX, sigmoidMaxX, x)
}

// LogRatioLUT holds ln(fr) sampled linearly in fr over [0.25, 4.0].
// Force ratios outside the range clamp to the endpoints.
type LogRatioLUT struct {
	table [logRatioSteps]float32
	step  float32
}

func newLogRatioLUT() *LogRatioLUT {
	lut := &LogRatioLUT{}
	lut.step = float32(logRatioMax-logRatioMin) / float32(logRatioSteps-1)
	for i := range lut.table {
		ratio := logRatioMin + float64(i)*float64(lut.step)
		lut.table[i] = float32(math.Log(ratio))
	}
	return lut
}

// Lookup returns ln(ratio) with linear interpolation, clamping ratio to
// [0.25, 4.0].
func (lut *LogRatioLUT) Lookup(ratio float32) float32 {
	return lerpTable(lut.table[:], logRatioMin, logRatioMax, ratio)
}

// lerpTable interpolates a uniformly sampled table at x, clamping x to the
// sampled domain [min, max]. The position is scaled by samples-per-unit
// rather than divided by the rounded step, so midpoints land exactly.
func lerpTable(table []float32, min, max float64, x float32) float32 {
	pos := (x - float32(min)) * (float32(len(table)-1) / float32(max-min))
	if pos <= 0 {
		return table[0]
	}
	last := len(table) - 1
	if pos >= float32(last) {
		return table[last]
	}
	idx := int(pos)
	frac := pos - float32(idx)
	return table[idx] + frac*(table[idx+1]-table[idx])
}

// DiscountLUT holds d^h for integer horizons h in [1,16] with d=0.95,
// computed in closed form once.
type DiscountLUT struct {
	factors [discountHorizon]float32
}

func newDiscountLUT() *DiscountLUT {
	lut := &DiscountLUT{}
	f := 1.0
	for h := 0; h < discountHorizon; h++ {
		f *= discountRate
		lut.factors[h] = float32(f)
	}
	return lut
}

// Get returns d^h. Horizons outside [1,16] clamp to the nearest endpoint.
func (lut *DiscountLUT) Get(h int) float32 {
	if h < 1 {
		h = 1
	}
	if h > discountHorizon {
		h = discountHorizon
	}
	return lut.factors[h-1]
}

// DistanceKernelLUT holds K(d)=exp(-0.2*d) for integer distance buckets in
// [0,20]. K(0)=1 and K is monotone decreasing.
type DistanceKernelLUT struct {
	kernels [kernelMaxDistance + 1]float32
}

func newDistanceKernelLUT() *DistanceKernelLUT {
	lut := &DistanceKernelLUT{}
	for d := 0; d <= kernelMaxDistance; d++ {
		lut.kernels[d] = float32(math.Exp(-kernelDecay * float64(d)))
	}
	return lut
}

// Get returns K(d). Distances outside [0,20] clamp to the nearest endpoint.
func (lut *DistanceKernelLUT) Get(d int) float32 {
	if d < 0 {
		d = 0
	}
	if d > kernelMaxDistance {
		d = kernelMaxDistance
	}
	return lut.kernels[d]
}

// Tables bundles the four kernels. Read-only after construction and shared
// by every engine in the process.
type Tables struct {
	Sigmoid  *SigmoidLUT
	LogRatio *LogRatioLUT
	Discount *DiscountLUT
	Kernel   *DistanceKernelLUT
}

var (
	stdTables  *Tables
	tablesOnce sync.Once
)

// kernelTables returns the shared precomputed tables, building them on first
// use.
func kernelTables() *Tables {
	tablesOnce.Do(func() {
		stdTables = &Tables{
			Sigmoid:  newSigmoidLUT(),
			LogRatio: newLogRatioLUT(),
			Discount: newDiscountLUT(),
			Kernel:   newDistanceKernelLUT(),
		}
	})
	return stdTables
}
