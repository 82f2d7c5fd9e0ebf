// Package common provides shared utilities for econdash
package common

import (
	"fmt"
	"strings"
)

// FormatMetric formats an indicator's latest value for display.
// Growth and inflation indicators render as percentages, GDP-level
// indicators as trillions of US dollars, anything else as a plain number.
// Matching is done on the lower-cased indicator name.
func FormatMetric(indicator string, value float64) string {
	name := strings.ToLower(indicator)
	switch {
	case strings.Contains(name, "growth") || strings.Contains(name, "inflation"):
		return fmt.Sprintf("%.2f%%", value)
	case strings.Contains(name, "gdp"):
		return fmt.Sprintf("$%.2f Trillion", value/1e12)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

// FormatYearRange renders an inclusive year range as used in chart titles.
func FormatYearRange(start, end int) string {
	return fmt.Sprintf("%d-%d", start, end)
}

// ChartTitle builds the title shown above an indicator chart.
func ChartTitle(indicator string, start, end int) string {
	return fmt.Sprintf("%s (%s)", indicator, FormatYearRange(start, end))
}
