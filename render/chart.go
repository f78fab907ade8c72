package render

import (
	"sort"
	"strconv"

	"github.com/crosstab-org/crosstab/dataset"
	"github.com/crosstab-org/crosstab/recode"
)

// ============================================================================
// CHART BUILDERS — Distributions from Views and Recoded Columns
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Distribution builds a bar chart of label frequencies for one column.
// Labels appear in order of first appearance; absent cells are skipped.
func Distribution(view dataset.View, column, title string) *ChartConfig {
	order, counts := countLabels(view, column)
	if len(order) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(order))
	for _, label := range order {
		points = append(points, ChartPoint{Label: label, Value: float64(counts[label])})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      column,
		YAxis:      "Count",
		Series:     []ChartSeries{{Name: column, Data: points}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// GroupedDistribution builds one series per tag from a normalized
// (value, tag) table: value labels on the x-axis, one bar series per
// tag in order of first appearance.
func GroupedDistribution(view dataset.View, valueCol, tagCol, title string) *ChartConfig {
	labelOrder, _ := countLabels(view, valueCol)
	tagOrder, _ := countLabels(view, tagCol)
	if len(labelOrder) == 0 || len(tagOrder) == 0 {
		return nil
	}

	// tag → value label → count
	counts := make(map[string]map[string]int, len(tagOrder))
	for _, tag := range tagOrder {
		counts[tag] = make(map[string]int)
	}
	for i := 0; i < view.Len(); i++ {
		v, okV := view.Value(i, valueCol)
		t, okT := view.Value(i, tagCol)
		if okV && okT {
			counts[t][v]++
		}
	}

	series := make([]ChartSeries, 0, len(tagOrder))
	for ti, tag := range tagOrder {
		points := make([]ChartPoint, 0, len(labelOrder))
		for _, label := range labelOrder {
			points = append(points, ChartPoint{Label: label, Value: float64(counts[tag][label])})
		}
		series = append(series, ChartSeries{
			Name:  tag,
			Data:  points,
			Color: defaultColors[ti%len(defaultColors)],
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      valueCol,
		YAxis:      "Count",
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// ScaleDistribution builds a bar chart over a recoded column's numeric
// values, sorted ascending. No-value cells are skipped.
func ScaleDistribution(res *recode.Result, title string) *ChartConfig {
	counts := make(map[float64]int)
	for i := 0; i < res.Len(); i++ {
		if v, ok := res.Value(i); ok {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	points := make([]ChartPoint, 0, len(values))
	for _, v := range values {
		points = append(points, ChartPoint{
			Label: strconv.FormatFloat(v, 'g', -1, 64),
			Value: float64(counts[v]),
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		YAxis:      "Count",
		Series:     []ChartSeries{{Name: title, Data: points}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// countLabels tallies present labels in first-appearance order.
func countLabels(view dataset.View, column string) ([]string, map[string]int) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := 0; i < view.Len(); i++ {
		label, ok := view.Value(i, column)
		if !ok {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}
	return order, counts
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
