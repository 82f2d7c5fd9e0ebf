package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ajayneena/econdash/internal/config"
	"github.com/ajayneena/econdash/internal/dashboard"
)

// RegisterTools registers the dashboard tool set on the MCP server and
// returns the number of tools registered.
func RegisterTools(s *server.MCPServer, service *dashboard.Service, defaults config.DashboardConfig) int {
	s.AddTool(versionTool(), versionHandler())
	s.AddTool(countriesTool(), countriesHandler(service))
	s.AddTool(indicatorsTool(), indicatorsHandler(service))
	s.AddTool(dashboardTool(), dashboardHandler(service, defaults))
	return 4
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) *mcp.CallToolResult {
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal result")
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}
}

func versionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get econdash server version and status. Use this to verify connectivity."),
	)
}

func versionHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]string{
			"version": config.GetVersion(),
			"build":   config.GetBuild(),
			"commit":  config.GetGitCommit(),
		}), nil
	}
}

func countriesTool() mcp.Tool {
	return mcp.NewTool("get_countries",
		mcp.WithDescription("List the countries available on the dashboard, optionally filtered by region."),
		mcp.WithString("region", mcp.Description("Region name to filter by (e.g. \"South Asia\")")),
	)
}

func countriesHandler(service *dashboard.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		countries, usedFallback := service.Countries(ctx)
		region := r.GetString("region", "")
		return jsonResult(map[string]interface{}{
			"fallback":  usedFallback,
			"regions":   dashboard.Regions(countries),
			"countries": dashboard.FilterByRegion(countries, region),
		}), nil
	}
}

func indicatorsTool() mcp.Tool {
	return mcp.NewTool("get_indicators",
		mcp.WithDescription("List the economic indicators available on the dashboard."),
	)
}

func indicatorsHandler(service *dashboard.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]interface{}{
			"indicators": service.Indicators(),
		}), nil
	}
}

func dashboardTool() mcp.Tool {
	return mcp.NewTool("get_dashboard",
		mcp.WithDescription("Render the economic dashboard for a country and year range: indicator series, key metrics, and the risk assessment."),
		mcp.WithString("country", mcp.Required(), mcp.Description("Country code (e.g. \"USA\")")),
		mcp.WithNumber("start_year", mcp.Description("First year of the range")),
		mcp.WithNumber("end_year", mcp.Description("Last year of the range (inclusive)")),
		mcp.WithArray("indicators", mcp.WithStringItems(), mcp.Description("Indicator names or catalog IDs; defaults to the full catalog")),
	)
}

func dashboardHandler(service *dashboard.Service, defaults config.DashboardConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		country := r.GetString("country", "")
		if country == "" {
			return errorResult("Error: country parameter is required"), nil
		}

		startYear := intArg(r, "start_year", defaults.DefaultStartYear)
		endYear := intArg(r, "end_year", defaults.DefaultEndYear)

		indicators := stringSliceArg(r, "indicators")
		if len(indicators) == 0 {
			for _, ind := range service.Indicators() {
				indicators = append(indicators, ind.Name)
			}
		} else {
			indicators = resolveIndicatorIDs(service, indicators)
		}

		view, err := service.Render(ctx, dashboard.Params{
			CountryID:  country,
			StartYear:  startYear,
			EndYear:    endYear,
			Indicators: indicators,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return jsonResult(view), nil
	}
}

// intArg reads a numeric argument (JSON numbers arrive as float64),
// falling back to def when absent or mistyped.
func intArg(r mcp.CallToolRequest, name string, def int) int {
	args := r.GetArguments()
	if args == nil {
		return def
	}
	v, ok := args[name]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int(f)
}

// stringSliceArg reads an array-of-strings argument.
func stringSliceArg(r mcp.CallToolRequest, name string) []string {
	args := r.GetArguments()
	if args == nil {
		return nil
	}
	raw, ok := args[name].([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// resolveIndicatorIDs maps catalog IDs to names; unknown values pass through.
func resolveIndicatorIDs(service *dashboard.Service, selected []string) []string {
	byID := make(map[string]string)
	for _, ind := range service.Indicators() {
		byID[ind.ID] = ind.Name
	}
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		if name, ok := byID[s]; ok {
			out = append(out, name)
			continue
		}
		out = append(out, s)
	}
	return out
}
