package models

// MetricView is the formatted latest value for one indicator.
type MetricView struct {
	Indicator string `json:"indicator"`
	Display   string `json:"display"`
}

// RiskView is the risk assessment block of a rendered dashboard.
type RiskView struct {
	Score   float64 `json:"score"`
	Label   string  `json:"label"`
	Tag     string  `json:"tag"`
	Outlook string  `json:"outlook"`
}

// ChartView is one chart: an indicator name plus its series.
type ChartView struct {
	Indicator string `json:"indicator"`
	Title     string `json:"title"`
	Series    Series `json:"series"`
}

// DashboardView is the full output of one render pass.
type DashboardView struct {
	Country   string       `json:"country"`
	StartYear int          `json:"start_year"`
	EndYear   int          `json:"end_year"`
	Fallback  bool         `json:"fallback,omitempty"`
	Metrics   []MetricView `json:"metrics"`
	Risk      RiskView     `json:"risk"`
	Charts    []ChartView  `json:"charts"`
}
