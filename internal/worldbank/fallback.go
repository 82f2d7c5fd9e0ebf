package worldbank

import "github.com/ajayneena/econdash/internal/models"

// FallbackCountries returns the built-in country list used when the World
// Bank API cannot be reached or returns something unparseable.
func FallbackCountries() []models.Country {
	return []models.Country{
		{ID: "USA", Name: "United States", Region: "North America"},
		{ID: "GBR", Name: "United Kingdom", Region: "Europe & Central Asia"},
		{ID: "JPN", Name: "Japan", Region: "East Asia & Pacific"},
		{ID: "DEU", Name: "Germany", Region: "Europe & Central Asia"},
		{ID: "IND", Name: "India", Region: "South Asia"},
	}
}
