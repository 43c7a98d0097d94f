package view

import (
	"math"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
)

// History is a bounded series of samples for the on-screen graph. Points
// are stored as (sample number, value) in a physics.Trail, which evicts the
// oldest sample once full.
type History struct {
	samples *physics.Trail
	next    float64
}

func NewHistory(max int) *History {
	return &History{samples: physics.NewTrail(max)}
}

func (h *History) Add(v float64) {
	h.samples.Push(physics.V(h.next, v))
	h.next++
}

// Len is the number of samples held.
func (h *History) Len() int { return h.samples.Len() }

// Values returns the sample values, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, h.samples.Len())
	for i := range out {
		out[i] = h.samples.At(i).Y
	}
	return out
}

func (h *History) Reset() {
	h.samples.Reset()
	h.next = 0
}

// GraphRange returns the y range for data: symmetric around zero when data
// straddles it, padded by 5%, never empty.
func GraphRange(data []float64) (float64, float64) {
	if len(data) == 0 {
		return -1, 1
	}
	minV, maxV := data[0], data[0]
	for _, v := range data {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	if minV < 0 && maxV > 0 {
		b := math.Max(math.Abs(minV), math.Abs(maxV))
		minV, maxV = -b, b
	}
	if minV == maxV {
		return minV - 1, maxV + 1
	}
	pad := 0.05 * (maxV - minV)
	return minV - pad, maxV + pad
}

// DriftPercent is the signed relative change from e0 to e, in percent.
func DriftPercent(e, e0 float64) float64 {
	if e0 == 0 {
		return 0
	}
	return (e - e0) / math.Abs(e0) * 100
}
