package models

// Indicator is a named macroeconomic metric. The ID is the World Bank
// indicator code; Name is what the generator dispatches on.
type Indicator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeriesPoint is a single (year, value) observation.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Series is an ordered, chronological sequence of points, one per year.
type Series []SeriesPoint

// Latest returns the last point of the series and whether one exists.
func (s Series) Latest() (SeriesPoint, bool) {
	if len(s) == 0 {
		return SeriesPoint{}, false
	}
	return s[len(s)-1], true
}
