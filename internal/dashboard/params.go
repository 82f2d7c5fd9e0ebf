package dashboard

import "fmt"

// Params are the user-chosen filters for one render pass.
type Params struct {
	CountryID  string
	Region     string
	StartYear  int
	EndYear    int
	Indicators []string
}

// Validate enforces the filter constraints the UI widgets guarantee:
// a country, at least one indicator, and an ascending year range within
// the configured bounds.
func (p Params) Validate(minYear, maxYear int) error {
	if p.CountryID == "" {
		return fmt.Errorf("country is required")
	}
	if len(p.Indicators) == 0 {
		return fmt.Errorf("at least one indicator is required")
	}
	if p.StartYear < minYear || p.StartYear > maxYear {
		return fmt.Errorf("start_year %d outside allowed range %d-%d", p.StartYear, minYear, maxYear)
	}
	if p.EndYear < minYear || p.EndYear > maxYear {
		return fmt.Errorf("end_year %d outside allowed range %d-%d", p.EndYear, minYear, maxYear)
	}
	if p.StartYear >= p.EndYear {
		return fmt.Errorf("start_year %d must be below end_year %d", p.StartYear, p.EndYear)
	}
	return nil
}
