// Package charts renders dashboard figures as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to chart")

var background = chart.Style{
	Padding: chart.Box{
		Top:    50,
		Left:   50,
		Right:  50,
		Bottom: 50,
	},
	FillColor: chart.ColorWhite,
}

// RenderSpending draws a pie chart of spending by category. Categories with
// a zero total are left out.
func RenderSpending(breakdown []summary.CategoryAmount, title string) ([]byte, error) {
	total := 0.0
	for _, c := range breakdown {
		total += c.Amount.InexactFloat64()
	}
	if total <= 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(breakdown))
	for _, c := range breakdown {
		amount := c.Amount.InexactFloat64()
		if amount <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: $%s (%.1f%%)", c.Category, c.Amount.StringFixed(2), amount/total*100),
			Value: amount,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:      title,
		Width:      800,
		Height:     800,
		Values:     values,
		Background: background,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render spending chart: %w", err)
	}

	return buffer.Bytes(), nil
}

// RenderChallenges draws one bar per challenge with its saved amount.
func RenderChallenges(challenges []model.Challenge, title string) ([]byte, error) {
	if len(challenges) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, len(challenges))
	var highest int64
	for _, c := range challenges {
		current := summary.ChallengeCurrentAmount(c)
		highest = max(highest, current)
		color := chart.ColorBlue
		switch c.Status {
		case model.ChallengeCompleted:
			color = chart.ColorGreen
		case model.ChallengeFailed:
			color = chart.ColorRed
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%d%%)", c.Title, c.Progress),
			Value: float64(current),
			Style: chart.Style{
				StrokeColor: color,
				FillColor:   color,
				FontSize:    12,
				FontColor:   chart.ColorBlack,
			},
		})
	}

	if highest == 0 {
		return nil, ErrNoData
	}
	// A single bar would give the axis an empty range.
	if len(bars) == 1 {
		bars = append(bars, chart.Value{Label: " ", Value: 0})
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:      1200,
		Height:     600,
		BarWidth:   60,
		Background: background,
		YAxis: chart.YAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render challenge chart: %w", err)
	}

	return buffer.Bytes(), nil
}
