// Package wwo retrieves forecasts from the World Weather Online v2 API and
// decodes them into forecast records.
package wwo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/termtext"
)

const dateLayout = "2006-01-02"

// APIError is an error reported inside an otherwise successful response.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "wwo: api error: " + e.Message
}

// number accepts both JSON numbers and numeric strings; the API sends most
// values as strings.
type number string

func (n *number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = number(strings.TrimSpace(s))
		return nil
	}
	*n = number(b)
	return nil
}

func (n number) intPtr(field string) (*int, error) {
	if n == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(string(n))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", field, err)
	}
	return &v, nil
}

func (n number) toInt(field string) (int, error) {
	v, err := n.intPtr(field)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}

func (n number) toFloat(field string) (float64, error) {
	if n == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", field, err)
	}
	return v, nil
}

type value struct {
	Value string `json:"value"`
}

type message struct {
	Msg string `json:"msg"`
}

type request struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

type envelope struct {
	Data struct {
		Error            []message         `json:"error"`
		Request          []request         `json:"request"`
		CurrentCondition []json.RawMessage `json:"current_condition"`
		Weather          []weather         `json:"weather"`
	} `json:"data"`
}

type condition struct {
	TempC           number  `json:"tempC"`
	TempCAlt        number  `json:"temp_C"`
	FeelsLikeC      number  `json:"FeelsLikeC"`
	WindspeedKmph   number  `json:"windspeedKmph"`
	WindGustKmph    number  `json:"WindGustKmph"`
	Winddir16Point  string  `json:"winddir16Point"`
	PrecipMM        number  `json:"precipMM"`
	ChanceOfRain    number  `json:"chanceofrain"`
	Visibility      number  `json:"visibility"`
	Humidity        number  `json:"humidity"`
	Cloudcover      number  `json:"cloudcover"`
	WeatherCode     number  `json:"weatherCode"`
	WeatherDesc     []value `json:"weatherDesc"`
	Time            *string `json:"time"`
	ObservationTime string  `json:"observation_time"`
}

type weather struct {
	Date      string            `json:"date"`
	MaxTempC  number            `json:"maxtempC"`
	MinTempC  number            `json:"mintempC"`
	UVIndex   number            `json:"uvIndex"`
	Astronomy []astronomy       `json:"astronomy"`
	Hourly    []json.RawMessage `json:"hourly"`
}

type astronomy struct {
	Sunrise  string `json:"sunrise"`
	Sunset   string `json:"sunset"`
	Moonrise string `json:"moonrise"`
	Moonset  string `json:"moonset"`
}

// Decode reads a JSON forecast document. lang is the alternate language
// code ("zh", "de", ...); when set, the lang_<code> description is decoded
// alongside the English one.
func Decode(r io.Reader, lang string) (*forecast.Report, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(env.Data.Error) > 0 {
		return nil, &APIError{Message: env.Data.Error[0].Msg}
	}
	if len(env.Data.CurrentCondition) == 0 {
		return nil, errors.New("decoding response: no current condition")
	}

	report := &forecast.Report{}
	if len(env.Data.Request) > 0 {
		report.Location = termtext.Sanitize(env.Data.Request[0].Query)
	}

	current, err := decodeCondition(env.Data.CurrentCondition[0], lang)
	if err != nil {
		return nil, fmt.Errorf("decoding current condition: %w", err)
	}
	report.Current = current

	for _, w := range env.Data.Weather {
		day, err := decodeDay(w, lang)
		if err != nil {
			return nil, fmt.Errorf("decoding day %s: %w", w.Date, err)
		}
		report.Days = append(report.Days, day)
	}

	return report, nil
}

func decodeDay(w weather, lang string) (forecast.Day, error) {
	date, err := time.Parse(dateLayout, w.Date)
	if err != nil {
		return forecast.Day{}, fmt.Errorf("parsing date: %w", err)
	}

	day := forecast.Day{Date: date}
	if day.MaxTempC, err = w.MaxTempC.toInt("maxtempC"); err != nil {
		return forecast.Day{}, err
	}
	if day.MinTempC, err = w.MinTempC.toInt("mintempC"); err != nil {
		return forecast.Day{}, err
	}
	if day.UVIndex, err = w.UVIndex.toInt("uvIndex"); err != nil {
		return forecast.Day{}, err
	}
	for _, a := range w.Astronomy {
		day.Astronomy = append(day.Astronomy, forecast.Astronomy(a))
	}

	for i, raw := range w.Hourly {
		h, err := decodeCondition(raw, lang)
		if err != nil {
			return forecast.Day{}, fmt.Errorf("hour %d: %w", i, err)
		}
		day.Hourly = append(day.Hourly, h)
	}
	return day, nil
}

func decodeCondition(raw json.RawMessage, lang string) (forecast.Observation, error) {
	var c condition
	if err := json.Unmarshal(raw, &c); err != nil {
		return forecast.Observation{}, err
	}

	var o forecast.Observation
	var err error
	if o.TempC, err = c.TempC.intPtr("tempC"); err != nil {
		return o, err
	}
	if o.TempCAlt, err = c.TempCAlt.intPtr("temp_C"); err != nil {
		return o, err
	}
	if o.TempC == nil && o.TempCAlt == nil {
		return o, errors.New("missing temperature (tempC and temp_C)")
	}

	ints := []struct {
		dst   *int
		src   number
		field string
	}{
		{&o.FeelsLikeC, c.FeelsLikeC, "FeelsLikeC"},
		{&o.WindKmph, c.WindspeedKmph, "windspeedKmph"},
		{&o.VisibilityKm, c.Visibility, "visibility"},
		{&o.Humidity, c.Humidity, "humidity"},
		{&o.CloudCover, c.Cloudcover, "cloudcover"},
		{&o.WeatherCode, c.WeatherCode, "weatherCode"},
	}
	for _, f := range ints {
		if *f.dst, err = f.src.toInt(f.field); err != nil {
			return o, err
		}
	}

	if o.WindGustKmph, err = c.WindGustKmph.intPtr("WindGustKmph"); err != nil {
		return o, err
	}
	if o.ChanceOfRain, err = c.ChanceOfRain.intPtr("chanceofrain"); err != nil {
		return o, err
	}
	if o.PrecipMM, err = c.PrecipMM.toFloat("precipMM"); err != nil {
		return o, err
	}

	o.WindDir16 = c.Winddir16Point
	o.ObservedAt = c.ObservationTime
	if c.Time != nil {
		o.Time = *c.Time
	}
	if len(c.WeatherDesc) > 0 {
		o.Description = termtext.Sanitize(c.WeatherDesc[0].Value)
	}

	if lang != "" {
		alt, err := alternateDescription(raw, lang)
		if err != nil {
			return o, err
		}
		o.AltDesc = alt
	}
	return o, nil
}

// alternateDescription extracts lang_<code>[0].value from a condition.
func alternateDescription(raw json.RawMessage, lang string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	key := "lang_" + lang
	v, ok := fields[key]
	if !ok {
		return "", nil
	}
	var values []value
	if err := json.Unmarshal(v, &values); err != nil {
		return "", fmt.Errorf("parsing %s: %w", key, err)
	}
	if len(values) == 0 {
		return "", nil
	}
	return termtext.Sanitize(values[0].Value), nil
}
