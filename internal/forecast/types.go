// Package forecast provides the weather records consumed by the renderer.
package forecast

import "time"

// Language selects which description text is rendered.
type Language int

const (
	LanguageDefault   Language = iota // English description
	LanguageAlternate                 // description in the configured alternate language
)

// String returns the name used in logs.
func (l Language) String() string {
	if l == LanguageAlternate {
		return "alternate"
	}
	return "default"
}

// Observation is one point-in-time weather reading.
type Observation struct {
	TempC        *int    // primary temperature field
	TempCAlt     *int    // fallback temperature field
	FeelsLikeC   int     // apparent temperature
	WindKmph     int     // sustained wind speed
	WindGustKmph *int    // optional gust speed
	WindDir16    string  // 16-point compass direction, e.g. "NNE"
	PrecipMM     float64 // precipitation in millimetres
	ChanceOfRain *int    // optional percentage
	VisibilityKm int
	Humidity     int
	CloudCover   int
	WeatherCode  int
	Description  string
	AltDesc      string // empty when no alternate-language description was supplied
	Time         string // hourly label such as "900"; empty for current conditions
	ObservedAt   string // observation_time of the current condition
}

// Temperature returns the primary temperature, falling back to the alternate field.
// Decoders guarantee at least one of them is set.
func (o Observation) Temperature() int {
	if o.TempC != nil {
		return *o.TempC
	}
	if o.TempCAlt != nil {
		return *o.TempCAlt
	}
	return 0
}

// Gust returns the gust speed, or 0 when none was reported.
func (o Observation) Gust() int {
	if o.WindGustKmph == nil {
		return 0
	}
	return *o.WindGustKmph
}

// DescriptionIn returns the description for lang, falling back to the
// default description when no alternate text is present.
func (o Observation) DescriptionIn(lang Language) string {
	if lang == LanguageAlternate && o.AltDesc != "" {
		return o.AltDesc
	}
	return o.Description
}

// Astronomy holds the sun and moon times of one day.
type Astronomy struct {
	Sunrise  string
	Sunset   string
	Moonrise string
	Moonset  string
}

// Day is the forecast for one calendar date.
type Day struct {
	Date      time.Time
	Hourly    []Observation
	MinTempC  int
	MaxTempC  int
	UVIndex   int
	Astronomy []Astronomy
}

// Report is a decoded forecast response.
type Report struct {
	Location string // request echo, the queried location name
	Current  Observation
	Days     []Day
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
