package render

import (
	"fmt"

	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/termtext"
	"github.com/f3rmion/wego/internal/translit"
)

// maxDescriptionGlyphs bounds the description shown next to the icon.
const maxDescriptionGlyphs = 15

// Block is the five cells rendered for one observation, top to bottom:
// description, temperature, wind, visibility, precipitation.
type Block [5]string

// Condition renders an observation as five cells of exactly opts.CellWidth columns.
func Condition(o forecast.Observation, opts Options) (Block, error) {
	icon := IconFor(o.WeatherCode)
	lines := Block{
		icon[0] + " " + termtext.Clip(description(o, opts), maxDescriptionGlyphs),
		icon[1] + " " + formatTemperature(o),
		icon[2] + " " + formatWind(o),
		icon[3] + " " + formatVisibility(o),
		icon[4] + " " + formatPrecipitation(o),
	}

	var cells Block
	for i, line := range lines {
		cell, err := opts.Measurer.Fit(line, opts.CellWidth)
		if err != nil {
			return Block{}, fmt.Errorf("rendering condition line %d: %w", i, err)
		}
		cells[i] = cell
	}
	return cells, nil
}

func description(o forecast.Observation, opts Options) string {
	desc := o.DescriptionIn(opts.Language)
	if opts.Romanize && opts.Language == forecast.LanguageAlternate && o.AltDesc != "" {
		desc = translit.Pinyin(desc)
	}
	return desc
}

// formatTemperature shows the lower of the actual and feels-like values first.
func formatTemperature(o forecast.Observation) string {
	actual := o.Temperature()
	switch {
	case o.FeelsLikeC < actual:
		return fmt.Sprintf("%s - %s °C", Temperature(o.FeelsLikeC), Temperature(actual))
	case o.FeelsLikeC > actual:
		return fmt.Sprintf("%s - %s °C", Temperature(actual), Temperature(o.FeelsLikeC))
	default:
		return fmt.Sprintf("%s °C", Temperature(actual))
	}
}

func formatWind(o forecast.Observation) string {
	arrow := WindArrow(o.WindDir16)
	if gust := o.Gust(); gust > o.WindKmph {
		return fmt.Sprintf("%s %s - %s km/h", arrow, WindSpeed(o.WindKmph), WindSpeed(gust))
	}
	return fmt.Sprintf("%s %s km/h", arrow, WindSpeed(o.WindKmph))
}

func formatVisibility(o forecast.Observation) string {
	return fmt.Sprintf("%d km", o.VisibilityKm)
}

func formatPrecipitation(o forecast.Observation) string {
	if o.ChanceOfRain != nil {
		return fmt.Sprintf("%.1f mm | %d%%", o.PrecipMM, *o.ChanceOfRain)
	}
	return fmt.Sprintf("%.1f mm", o.PrecipMM)
}
