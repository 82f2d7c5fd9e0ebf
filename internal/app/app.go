package app

import (
	"strings"
	"time"

	"github.com/ajayneena/econdash/internal/cache"
	"github.com/ajayneena/econdash/internal/common"
	"github.com/ajayneena/econdash/internal/config"
	"github.com/ajayneena/econdash/internal/dashboard"
	"github.com/ajayneena/econdash/internal/handlers"
	"github.com/ajayneena/econdash/internal/indicator"
	"github.com/ajayneena/econdash/internal/mcp"
	"github.com/ajayneena/econdash/internal/risk"
	"github.com/ajayneena/econdash/internal/worldbank"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Dashboard *dashboard.Service

	// HTTP handlers
	PageHandler       *handlers.PageHandler
	HealthHandler     *handlers.HealthHandler
	VersionHandler    *handlers.VersionHandler
	CountriesHandler  *handlers.CountriesHandler
	IndicatorsHandler *handlers.IndicatorsHandler
	DashboardHandler  *handlers.DashboardHandler
	MCPHandler        *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	// Validate environment setting
	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	a.initServices()
	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initServices wires the data pipeline: World Bank client, lookup cache,
// generator, scorer, and the dashboard service on top.
func (a *App) initServices() {
	timeout, err := time.ParseDuration(a.Config.WorldBank.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	wbClient := worldbank.NewClient(a.Config.WorldBank.URL, a.Config.WorldBank.PerPage, timeout)

	ttl := time.Duration(a.Config.Cache.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = common.DefaultLookupTTL
	}
	maxEntries := a.Config.Cache.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 100
	}
	lookups := cache.New(ttl, maxEntries)

	a.Dashboard = dashboard.NewService(
		a.Logger,
		a.Config.Dashboard,
		indicator.NewGenerator(nil),
		risk.NewScorer(nil),
		wbClient,
		lookups,
	)

	a.Logger.Debug().
		Str("worldbank_url", a.Config.WorldBank.URL).
		Int("cache_ttl_seconds", int(ttl.Seconds())).
		Msg("dashboard service initialized")
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Config.IsDevMode())
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.CountriesHandler = handlers.NewCountriesHandler(a.Logger, a.Dashboard)
	a.IndicatorsHandler = handlers.NewIndicatorsHandler(a.Logger, a.Dashboard)
	a.DashboardHandler = handlers.NewDashboardHandler(a.Logger, a.Config.IsDevMode(), a.Dashboard, a.Config.Dashboard)
	a.MCPHandler = mcp.NewHandler(a.Config, a.Logger, a.Dashboard)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
