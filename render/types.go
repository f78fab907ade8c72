// Package render produces render-ready chart and table structures from
// loaded, recoded, or normalized survey tables. The presentation layer
// that draws them is an external consumer; nothing here touches a
// screen or a network.
package render

// ============================================================================
// RENDER TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string      `json:"title"`
	Columns []TableCol  `json:"columns"`
	Rows    [][]string  `json:"rows"`
	Summary *TableTotal `json:"summary,omitempty"`
}

// TableCol defines a table column.
type TableCol struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "center", "right"
}

// TableTotal provides totals for a table.
type TableTotal struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
