// Package education holds the static macroeconomic teaching content shown on
// the dashboard: headline metrics, the 2024 indicator series, foreign reserve
// figures, and the sample portfolio. The data is fixed course material, not
// live market data.
package education

// Metric is one headline figure with its period-over-period delta.
type Metric struct {
	Label string
	Value string
	Delta string
}

// HeadlineMetrics returns the anchor-currency headline figures.
func HeadlineMetrics() []Metric {
	return []Metric{
		{Label: "Federal Rate", Value: "5.25 - 5.50%", Delta: "-0.25%"},
		{Label: "USD/KRW", Value: "1,203.50", Delta: "+0.35"},
		{Label: "FX Reserves", Value: "$418.6B", Delta: "+$2.1B"},
	}
}

// IndicatorSeries is twelve monthly values for one economic indicator.
type IndicatorSeries struct {
	Name   string
	Unit   string
	Values []float64
}

// Months labels the indicator series columns.
var Months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Indicators returns the 2024 indicator series in display order.
func Indicators() []IndicatorSeries {
	return []IndicatorSeries{
		{
			Name:   "GDP Growth",
			Unit:   "%",
			Values: []float64{2.5, 2.3, 2.1, 2.0, 1.9, 1.8, 1.9, 2.1, 2.3, 2.5, 2.6, 2.7},
		},
		{
			Name:   "Inflation Rate",
			Unit:   "%",
			Values: []float64{3.1, 3.0, 2.9, 2.8, 2.7, 2.6, 2.5, 2.4, 2.3, 2.2, 2.1, 2.0},
		},
		{
			Name:   "Unemployment",
			Unit:   "%",
			Values: []float64{3.9, 3.8, 3.7, 3.8, 3.9, 4.0, 4.1, 4.0, 3.9, 3.8, 3.7, 3.6},
		},
	}
}

// CountryReserve is one country's foreign exchange reserve position in
// billions of dollars.
type CountryReserve struct {
	Country  string
	Reserves float64
	Change   float64
}

// Reserves returns the per-country reserve table.
func Reserves() []CountryReserve {
	return []CountryReserve{
		{Country: "China", Reserves: 3211.6, Change: 45.2},
		{Country: "Japan", Reserves: 1294.5, Change: 12.3},
		{Country: "Germany", Reserves: 276.0, Change: 8.5},
		{Country: "South Korea", Reserves: 418.6, Change: 2.1},
		{Country: "Saudi Arabia", Reserves: 727.6, Change: -5.3},
		{Country: "Switzerland", Reserves: 896.2, Change: 6.1},
	}
}

// Allocation is one slice of the sample portfolio.
type Allocation struct {
	Asset   string
	Percent float64
}

// PortfolioAllocation returns the sample portfolio breakdown.
func PortfolioAllocation() []Allocation {
	return []Allocation{
		{Asset: "US Equities", Percent: 45},
		{Asset: "International Equities", Percent: 20},
		{Asset: "Bonds", Percent: 20},
		{Asset: "Cash", Percent: 10},
		{Asset: "Crypto", Percent: 5},
	}
}

// PortfolioMetrics returns the sample portfolio headline figures.
func PortfolioMetrics() []Metric {
	return []Metric{
		{Label: "Portfolio", Value: "$50,000", Delta: "+$2,345 (+4.9%)"},
		{Label: "Return", Value: "+12.5%", Delta: "+0.8%"},
	}
}

// Federal rate simulation bounds. The rate moves in eighth-point steps
// between zero and ten percent, starting mid-band.
const (
	FedRateDefault = 5.375
	FedRateStep    = 0.125
	FedRateMin     = 0.0
	FedRateMax     = 10.0
)

// ClampFedRate keeps a simulated rate inside the slider's bounds.
func ClampFedRate(rate float64) float64 {
	if rate < FedRateMin {
		return FedRateMin
	}
	if rate > FedRateMax {
		return FedRateMax
	}
	return rate
}

// DefaultMarketInput pre-fills the analysis request field.
const DefaultMarketInput = "NASDAQ up 2.3%, Fed rate at 5.25%, USD strong"

// EndpointDoc documents one backend endpoint for the system view table.
type EndpointDoc struct {
	Endpoint    string
	Description string
	StatusCodes string
}

// EndpointDocs returns the consumed API contract, as documentation only.
func EndpointDocs() []EndpointDoc {
	return []EndpointDoc{
		{"GET /api/health", "Aggregate health status", "200/206/503"},
		{"GET /api/health/live", "Liveness probe", "200/503"},
		{"GET /api/health/ready", "Readiness probe", "200/503"},
		{"GET /api/stats", "Request statistics and metrics", "200"},
		{"POST /api/analysis", "AI market analysis request", "200/429/500"},
	}
}
