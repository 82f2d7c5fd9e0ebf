// Package dashboard composes the simulated data pipeline behind one render.
package dashboard

import (
	"context"
	"sort"

	"github.com/ajayneena/econdash/internal/cache"
	"github.com/ajayneena/econdash/internal/common"
	"github.com/ajayneena/econdash/internal/config"
	"github.com/ajayneena/econdash/internal/indicator"
	"github.com/ajayneena/econdash/internal/models"
	"github.com/ajayneena/econdash/internal/risk"
	"github.com/ajayneena/econdash/internal/worldbank"
)

// CountrySource fetches the live country catalog.
// *worldbank.Client satisfies it.
type CountrySource interface {
	Countries(ctx context.Context) ([]models.Country, error)
}

// Service renders dashboard views from user-chosen parameters.
// It is stateless apart from the TTL lookup cache.
type Service struct {
	logger    *common.Logger
	cfg       config.DashboardConfig
	generator *indicator.Generator
	scorer    *risk.Scorer
	source    CountrySource
	lookups   *cache.LookupCache
}

// NewService creates a dashboard service.
func NewService(logger *common.Logger, cfg config.DashboardConfig, gen *indicator.Generator, scorer *risk.Scorer, source CountrySource, lookups *cache.LookupCache) *Service {
	return &Service{
		logger:    logger,
		cfg:       cfg,
		generator: gen,
		scorer:    scorer,
		source:    source,
		lookups:   lookups,
	}
}

// countriesResult is the cached outcome of a country lookup, including
// whether the built-in fallback had to be used.
type countriesResult struct {
	countries []models.Country
	fallback  bool
}

// Countries returns the country catalog, cached for the configured TTL.
// Any fetch failure degrades to the built-in fallback list with a logged
// warning; the caller only sees the fallback flag.
func (s *Service) Countries(ctx context.Context) ([]models.Country, bool) {
	key := cache.MakeKey("countries")
	v, _ := s.lookups.GetOrFill(key, func() (interface{}, error) {
		countries, err := s.source.Countries(ctx)
		if err != nil {
			s.logger.Warn().Str("error", err.Error()).Msg("country fetch failed, using fallback list")
			return countriesResult{countries: worldbank.FallbackCountries(), fallback: true}, nil
		}
		return countriesResult{countries: countries}, nil
	})

	result := v.(countriesResult)
	return result.countries, result.fallback
}

// Indicators returns the indicator catalog, cached for the configured TTL.
func (s *Service) Indicators() []models.Indicator {
	key := cache.MakeKey("indicators")
	v, _ := s.lookups.GetOrFill(key, func() (interface{}, error) {
		return indicator.Catalog(), nil
	})
	return v.([]models.Indicator)
}

// Regions returns the sorted distinct regions of the given countries.
func Regions(countries []models.Country) []string {
	seen := make(map[string]bool, len(countries))
	var regions []string
	for _, c := range countries {
		if !seen[c.Region] {
			seen[c.Region] = true
			regions = append(regions, c.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// FilterByRegion returns the countries belonging to the given region,
// or all countries when region is empty.
func FilterByRegion(countries []models.Country, region string) []models.Country {
	if region == "" {
		return countries
	}
	var filtered []models.Country
	for _, c := range countries {
		if c.Region == region {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// YearBounds returns the configured year range offered by the filters.
func (s *Service) YearBounds() (min, max int) {
	return s.cfg.MinYear, s.cfg.MaxYear
}

// Render runs one full recomputation pass: a series per selected indicator,
// the risk score over the set, its classification, and the formatted
// latest-value metrics.
func (s *Service) Render(ctx context.Context, params Params) (*models.DashboardView, error) {
	if err := params.Validate(s.cfg.MinYear, s.cfg.MaxYear); err != nil {
		return nil, err
	}

	countries, usedFallback := s.Countries(ctx)
	countryName := params.CountryID
	for _, c := range countries {
		if c.ID == params.CountryID {
			countryName = c.Name
			break
		}
	}

	data := make(map[string]models.Series, len(params.Indicators))
	metrics := make([]models.MetricView, 0, len(params.Indicators))
	charts := make([]models.ChartView, 0, len(params.Indicators))

	for _, name := range params.Indicators {
		series := s.generator.Generate(name, params.StartYear, params.EndYear)
		data[name] = series

		if latest, ok := series.Latest(); ok {
			metrics = append(metrics, models.MetricView{
				Indicator: name,
				Display:   common.FormatMetric(name, latest.Value),
			})
		}

		charts = append(charts, models.ChartView{
			Indicator: name,
			Title:     common.ChartTitle(name, params.StartYear, params.EndYear),
			Series:    series,
		})
	}

	score := s.scorer.Score(data)
	assessment := risk.Classify(score)

	s.logger.Debug().
		Str("country", params.CountryID).
		Int("indicators", len(params.Indicators)).
		Str("risk", assessment.Label).
		Msg("dashboard rendered")

	return &models.DashboardView{
		Country:   countryName,
		StartYear: params.StartYear,
		EndYear:   params.EndYear,
		Fallback:  usedFallback,
		Metrics:   metrics,
		Risk: models.RiskView{
			Score:   score,
			Label:   assessment.Label,
			Tag:     assessment.Tag,
			Outlook: assessment.Outlook,
		},
		Charts: charts,
	}, nil
}
