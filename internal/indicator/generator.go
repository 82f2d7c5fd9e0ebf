package indicator

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/ajayneena/econdash/internal/models"
)

// Distribution parameters for the per-year random draws.
const (
	growthMean      = 3.0
	growthStdDev    = 1.0
	inflationMean   = 2.5
	inflationStdDev = 0.8

	// Absolute-level indicators compound at a fixed 3% per year.
	levelGrowthRate = 0.03
	gdpLevelBase    = 1.0
	defaultBase     = 200.0

	// Single-pole smoothing coefficient: each value keeps 70% of the
	// previous smoothed value and takes 30% of its own raw draw.
	smoothCarry = 0.7
	smoothBlend = 0.3
)

// RandSource supplies the random draws behind the simulated series.
// *rand.Rand satisfies it; tests substitute a fixed sequence.
type RandSource interface {
	NormFloat64() float64
}

// Generator produces simulated indicator series.
type Generator struct {
	rng RandSource
}

// NewGenerator creates a generator backed by the given random source.
// A nil source gets a time-seeded one.
func NewGenerator(rng RandSource) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces one (year, value) point per year of the inclusive range
// for the named indicator. The name selects the generation rule by
// case-sensitive substring match:
//
//   - "GDP" and "growth" -> normal draws around typical annual growth
//   - "Inflation"        -> normal draws around target inflation
//   - anything else      -> deterministic compounding curve, base 1.0 for
//     GDP-level indicators, 200.0 otherwise
//
// A single left-to-right smoothing pass is then applied. An inverted range
// (end < start) yields an empty series, not an error.
func (g *Generator) Generate(name string, startYear, endYear int) models.Series {
	if endYear < startYear {
		return models.Series{}
	}

	n := endYear - startYear + 1
	values := make([]float64, n)

	switch {
	case strings.Contains(name, "GDP") && strings.Contains(name, "growth"):
		for i := range values {
			values[i] = growthMean + growthStdDev*g.rng.NormFloat64()
		}
	case strings.Contains(name, "Inflation"):
		for i := range values {
			values[i] = inflationMean + inflationStdDev*g.rng.NormFloat64()
		}
	default:
		base := defaultBase
		if strings.Contains(name, "GDP") {
			base = gdpLevelBase
		}
		for i := range values {
			values[i] = base * math.Pow(1+levelGrowthRate, float64(i))
		}
	}

	Smooth(values)

	series := make(models.Series, n)
	for i := range values {
		series[i] = models.SeriesPoint{Year: startYear + i, Value: values[i]}
	}
	return series
}

// Smooth applies the single-pole low-pass filter in place: from index 1
// onward each value becomes 0.7x the already-smoothed previous value plus
// 0.3x its own raw value. Index 0 is never touched.
func Smooth(values []float64) {
	for i := 1; i < len(values); i++ {
		values[i] = smoothCarry*values[i-1] + smoothBlend*values[i]
	}
}
