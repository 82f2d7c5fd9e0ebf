package indicator

import "github.com/ajayneena/econdash/internal/models"

// Catalog returns the set of indicators offered by the dashboard.
// IDs are World Bank indicator codes.
func Catalog() []models.Indicator {
	return []models.Indicator{
		{ID: "NY.GDP.MKTP.CD", Name: "GDP (current US$)"},
		{ID: "NY.GDP.MKTP.KD.ZG", Name: "GDP growth (annual %)"},
		{ID: "FP.CPI.TOTL.ZG", Name: "Inflation, consumer prices (annual %)"},
	}
}
