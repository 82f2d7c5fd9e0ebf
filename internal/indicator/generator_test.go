package indicator

import (
	"math"
	"testing"
)

// fixedSource returns a preset sequence of normal draws, cycling when exhausted.
type fixedSource struct {
	draws []float64
	idx   int
}

func (f *fixedSource) NormFloat64() float64 {
	if len(f.draws) == 0 {
		return 0
	}
	v := f.draws[f.idx%len(f.draws)]
	f.idx++
	return v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGenerate_PointCountAndYears(t *testing.T) {
	g := NewGenerator(&fixedSource{})

	series := g.Generate("GDP growth (annual %)", 2015, 2023)

	if len(series) != 9 {
		t.Fatalf("expected 9 points for 2015-2023, got %d", len(series))
	}
	for i, p := range series {
		if p.Year != 2015+i {
			t.Errorf("point %d: expected year %d, got %d", i, 2015+i, p.Year)
		}
	}
}

func TestGenerate_InvertedRangeIsEmpty(t *testing.T) {
	g := NewGenerator(&fixedSource{})

	series := g.Generate("GDP growth (annual %)", 2023, 2015)

	if len(series) != 0 {
		t.Errorf("expected empty series for inverted range, got %d points", len(series))
	}
}

func TestGenerate_SingleYear(t *testing.T) {
	g := NewGenerator(&fixedSource{})

	series := g.Generate("GDP (current US$)", 2020, 2020)

	if len(series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(series))
	}
	if series[0].Year != 2020 {
		t.Errorf("expected year 2020, got %d", series[0].Year)
	}
	// Single point is never smoothed: base value unchanged
	if !almostEqual(series[0].Value, 1.0) {
		t.Errorf("expected base value 1.0, got %f", series[0].Value)
	}
}

func TestGenerate_GDPLevelCompoundsAndSmooths(t *testing.T) {
	g := NewGenerator(&fixedSource{})

	series := g.Generate("GDP (current US$)", 2010, 2013)

	// Raw values compound at 3% a year, then the smoothing recurrence runs
	raw := []float64{1.0, 1.03, math.Pow(1.03, 2), math.Pow(1.03, 3)}
	expected := make([]float64, len(raw))
	copy(expected, raw)
	for i := 1; i < len(expected); i++ {
		expected[i] = 0.7*expected[i-1] + 0.3*expected[i]
	}

	for i, p := range series {
		if !almostEqual(p.Value, expected[i]) {
			t.Errorf("point %d: expected %f, got %f", i, expected[i], p.Value)
		}
	}

	// Smoothed output differs from the raw curve from index 1 onward
	for i := 1; i < len(raw); i++ {
		if almostEqual(series[i].Value, raw[i]) {
			t.Errorf("point %d: smoothed value should differ from raw %f", i, raw[i])
		}
	}
}

func TestGenerate_UnknownIndicatorUsesDefaultBase(t *testing.T) {
	g := NewGenerator(&fixedSource{})

	series := g.Generate("Unemployment rate", 2010, 2012)

	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	if !almostEqual(series[0].Value, 200.0) {
		t.Errorf("expected default base 200.0, got %f", series[0].Value)
	}
}

func TestGenerate_GrowthBranchUsesNormalDraws(t *testing.T) {
	// Draws of zero leave every raw value at the mean
	g := NewGenerator(&fixedSource{draws: []float64{0}})

	series := g.Generate("GDP growth (annual %)", 2010, 2012)

	for i, p := range series {
		if !almostEqual(p.Value, 3.0) {
			t.Errorf("point %d: expected mean 3.0 with zero draws, got %f", i, p.Value)
		}
	}
}

func TestGenerate_GrowthBranchSmoothing(t *testing.T) {
	g := NewGenerator(&fixedSource{draws: []float64{1, -1, 2}})

	series := g.Generate("GDP growth (annual %)", 2010, 2012)

	// Raw: 3+1=4, 3-1=2, 3+2=5; smoothed per the recurrence
	r0, r1, r2 := 4.0, 2.0, 5.0
	s1 := 0.7*r0 + 0.3*r1
	s2 := 0.7*s1 + 0.3*r2

	if !almostEqual(series[0].Value, r0) {
		t.Errorf("expected first value %f untouched, got %f", r0, series[0].Value)
	}
	if !almostEqual(series[1].Value, s1) {
		t.Errorf("expected %f, got %f", s1, series[1].Value)
	}
	if !almostEqual(series[2].Value, s2) {
		t.Errorf("expected %f, got %f", s2, series[2].Value)
	}
}

func TestGenerate_InflationBranch(t *testing.T) {
	g := NewGenerator(&fixedSource{draws: []float64{1}})

	series := g.Generate("Inflation, consumer prices (annual %)", 2020, 2020)

	// Single draw of 1: 2.5 + 0.8*1
	if !almostEqual(series[0].Value, 3.3) {
		t.Errorf("expected 3.3, got %f", series[0].Value)
	}
}

func TestGenerate_DispatchIsCaseSensitive(t *testing.T) {
	g := NewGenerator(&fixedSource{draws: []float64{1}})

	// Lower-case "gdp growth" matches neither random branch nor the GDP
	// base, so it falls through to the 200.0 compounding curve.
	series := g.Generate("gdp growth", 2010, 2010)

	if !almostEqual(series[0].Value, 200.0) {
		t.Errorf("expected 200.0 for lower-case name, got %f", series[0].Value)
	}

	// "Inflation" must be capitalized to match
	series = g.Generate("inflation", 2010, 2010)
	if !almostEqual(series[0].Value, 200.0) {
		t.Errorf("expected 200.0 for lower-case inflation, got %f", series[0].Value)
	}
}

func TestSmooth_Recurrence(t *testing.T) {
	values := []float64{10, 20, 30}

	Smooth(values)

	s1 := 0.7*10 + 0.3*20
	s2 := 0.7*s1 + 0.3*30

	if !almostEqual(values[0], 10) {
		t.Errorf("index 0 must not be smoothed, got %f", values[0])
	}
	if !almostEqual(values[1], s1) {
		t.Errorf("expected %f, got %f", s1, values[1])
	}
	if !almostEqual(values[2], s2) {
		t.Errorf("expected %f, got %f", s2, values[2])
	}
}

func TestSmooth_ShortSlices(t *testing.T) {
	// Zero and one element slices are no-ops
	Smooth(nil)
	Smooth([]float64{})

	one := []float64{42}
	Smooth(one)
	if one[0] != 42 {
		t.Errorf("single value must be untouched, got %f", one[0])
	}
}

func TestNewGenerator_NilSourceSeeds(t *testing.T) {
	g := NewGenerator(nil)

	series := g.Generate("GDP growth (annual %)", 2010, 2020)
	if len(series) != 11 {
		t.Fatalf("expected 11 points, got %d", len(series))
	}
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()

	if len(catalog) != 3 {
		t.Fatalf("expected 3 indicators, got %d", len(catalog))
	}
	if catalog[0].ID != "NY.GDP.MKTP.CD" || catalog[0].Name != "GDP (current US$)" {
		t.Errorf("unexpected first indicator: %+v", catalog[0])
	}
	if catalog[1].Name != "GDP growth (annual %)" {
		t.Errorf("unexpected second indicator: %+v", catalog[1])
	}
	if catalog[2].Name != "Inflation, consumer prices (annual %)" {
		t.Errorf("unexpected third indicator: %+v", catalog[2])
	}
}
