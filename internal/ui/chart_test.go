package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/stockdesk/internal/catalog"
	"github.com/aristath/stockdesk/internal/theme"
)

func TestRenderTrendChart(t *testing.T) {
	tr := theme.Default
	out := RenderTrendChart(catalog.DefaultTrend(), 40, 8, tr.Profit, tr.Loss, tr.Muted)

	require.NotEmpty(t, out)
	lines := strings.Split(out, "\n")
	// Chart rows plus the label row.
	assert.Len(t, lines, 9)

	for _, p := range catalog.DefaultTrend().Points {
		assert.Contains(t, lines[len(lines)-1], p.Label)
	}
}

func TestRenderTrendChart_Empty(t *testing.T) {
	tr := theme.Default
	assert.Empty(t, RenderTrendChart(catalog.TrendSeries{}, 40, 8, tr.Profit, tr.Loss, tr.Muted))
	assert.Empty(t, RenderTrendChart(catalog.DefaultTrend(), 0, 8, tr.Profit, tr.Loss, tr.Muted))
	assert.Empty(t, RenderTrendChart(catalog.DefaultTrend(), 40, 0, tr.Profit, tr.Loss, tr.Muted))
}

func TestRenderTrendChart_FlatSeries(t *testing.T) {
	tr := theme.Default
	series := catalog.TrendSeries{
		Symbol: "FLAT",
		Points: []catalog.TrendPoint{
			{Label: "Mon", Value: 10},
			{Label: "Tue", Value: 10},
		},
	}

	out := RenderTrendChart(series, 20, 4, tr.Profit, tr.Loss, tr.Muted)
	assert.NotEmpty(t, out)
}
