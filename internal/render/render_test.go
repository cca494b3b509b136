package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/wego/internal/forecast"
	"github.com/f3rmion/wego/internal/termtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t string) forecast.Observation {
	return forecast.Observation{
		TempC:        forecast.IntPtr(24),
		FeelsLikeC:   24,
		WindKmph:     10,
		WindDir16:    "N",
		PrecipMM:     0.2,
		VisibilityKm: 10,
		WeatherCode:  113,
		Description:  "Sunny",
		Time:         t,
	}
}

func threeHourly() []forecast.Observation {
	var hours []forecast.Observation
	for _, label := range []string{"0", "300", "600", "900", "1200", "1500", "1800", "2100"} {
		hours = append(hours, sample(label))
	}
	return hours
}

func TestTemperatureColorBands(t *testing.T) {
	tests := []struct {
		celsius int
		color   int
	}{
		{-40, 21}, {-16, 21}, {-15, 27}, {-13, 27}, {-12, 33}, {-1, 51},
		{0, 50}, {1, 50}, {2, 49}, {9, 46}, {10, 82}, {24, 226},
		{25, 220}, {36, 202}, {37, 196}, {50, 196},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.color, TemperatureColor(tt.celsius), "%d°C", tt.celsius)
	}
}

func TestWindColorBands(t *testing.T) {
	tests := []struct {
		kmph  int
		color int
	}{
		{-3, 46}, {0, 46}, {1, 82}, {3, 82}, {4, 118}, {10, 190},
		{16, 220}, {19, 220}, {28, 202}, {31, 202}, {32, 196}, {120, 196},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.color, WindColor(tt.kmph), "%d km/h", tt.kmph)
	}
}

func TestBandsPartitionRange(t *testing.T) {
	for _, bands := range [][]band{temperatureBands, windBands} {
		for i := 1; i < len(bands); i++ {
			assert.Less(t, bands[i-1].max, bands[i].max)
		}
	}

	for v := -20; v <= 40; v++ {
		assert.NotZero(t, TemperatureColor(v), "%d°C", v)
		assert.NotZero(t, WindColor(v), "%d km/h", v)
	}
}

func TestColorizedText(t *testing.T) {
	assert.Equal(t, "\x1b[38;5;226m24\x1b[0m", Temperature(24))
	assert.Equal(t, "\x1b[38;5;021m-20\x1b[0m", Temperature(-20))
	assert.Equal(t, "\x1b[38;5;190m10\x1b[0m", WindSpeed(10))
	assert.Equal(t, 2, termtext.Width(Temperature(24)))
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, iconSunny, IconFor(113))
	assert.Equal(t, iconHeavySnowShowers, IconFor(395))
	assert.Equal(t, iconUnknown, IconFor(999))

	for code, icon := range conditionIcons {
		for i, line := range icon {
			assert.Equal(t, 13, termtext.Width(line), "code %d line %d", code, i)
		}
	}
}

func TestWindArrow(t *testing.T) {
	assert.Equal(t, WindArrow("N"), WindArrow("NNE"))
	assert.Equal(t, "\x1b[1m←\x1b[0m", WindArrow("E"))
	assert.Equal(t, " ", WindArrow("VAR"))
	assert.Len(t, windArrows, 16)
}

func TestConditionCellsHaveCellWidth(t *testing.T) {
	opts := DefaultOptions()
	o := sample("")
	o.Description = "Patchy light rain with thunder"
	o.ChanceOfRain = forecast.IntPtr(80)

	block, err := Condition(o, opts)
	require.NoError(t, err)
	for i, cell := range block {
		assert.Equal(t, opts.CellWidth, termtext.Width(cell), "cell %d", i)
	}
	assert.Contains(t, block[0], "Patchy light ra")
	assert.NotContains(t, block[0], "Patchy light rai")
	assert.Contains(t, block[4], "0.2 mm | 80%")
}

func TestConditionTemperature(t *testing.T) {
	opts := DefaultOptions()

	o := sample("")
	block, err := Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[1], " "+Temperature(24)+" °C")
	assert.NotContains(t, block[1], " - ")

	o.FeelsLikeC = 20
	block, err = Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[1], Temperature(20)+" - "+Temperature(24))

	o.FeelsLikeC = 27
	block, err = Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[1], Temperature(24)+" - "+Temperature(27))
}

func TestConditionTemperatureFallback(t *testing.T) {
	o := sample("")
	o.TempC = nil
	o.TempCAlt = forecast.IntPtr(-3)
	o.FeelsLikeC = -3

	block, err := Condition(o, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, block[1], Temperature(-3)+" °C")
}

func TestConditionWind(t *testing.T) {
	opts := DefaultOptions()
	arrow := WindArrow("N")

	o := sample("")
	o.WindGustKmph = forecast.IntPtr(25)
	block, err := Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[2], arrow+" "+WindSpeed(10)+" - "+WindSpeed(25)+" km/h")

	o.WindGustKmph = forecast.IntPtr(10)
	block, err = Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[2], arrow+" "+WindSpeed(10)+" km/h")

	o.WindGustKmph = nil
	block, err = Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[2], arrow+" "+WindSpeed(10)+" km/h")
}

func TestConditionVisibilityAndRain(t *testing.T) {
	block, err := Condition(sample(""), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, block[3], " 10 km")
	assert.Contains(t, block[4], " 0.2 mm")
	assert.NotContains(t, block[4], "%")
}

func TestConditionAlternateLanguage(t *testing.T) {
	opts := DefaultOptions()
	opts.Language = forecast.LanguageAlternate

	o := sample("")
	o.AltDesc = "局部多云"
	block, err := Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[0], "局部多云")
	assert.Equal(t, opts.CellWidth, termtext.Width(block[0]))

	opts.Romanize = true
	o.AltDesc = "多云"
	block, err = Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[0], "duō yún")

	o.AltDesc = ""
	block, err = Condition(o, opts)
	require.NoError(t, err)
	assert.Contains(t, block[0], "Sunny")
}

func TestConditionRejectsUnterminatedDirective(t *testing.T) {
	o := sample("")
	o.Description = "\x1b[31"

	_, err := Condition(o, DefaultOptions())
	assert.ErrorIs(t, err, termtext.ErrUnterminatedDirective)
}

func TestShown(t *testing.T) {
	for _, label := range []string{"900", "1000", "1200", "1300", "1700", "1800", "2100", "2200"} {
		assert.True(t, Shown(label), label)
	}
	for _, label := range []string{"0", "300", "700", "1400", "1500", "1600", "2300"} {
		assert.False(t, Shown(label), label)
	}
}

func TestDayColumns(t *testing.T) {
	opts := DefaultOptions()
	day := forecast.Day{Date: time.Date(2015, 5, 2, 0, 0, 0, 0, time.UTC), Hourly: threeHourly()}

	lines, err := DayColumns(day, opts)
	require.NoError(t, err)
	for _, line := range lines {
		assert.Equal(t, 4*opts.CellWidth+5, termtext.Width(line))
		assert.Equal(t, 5, strings.Count(line, columnSeparator))
	}
}

func TestDayColumnsOnlyExcludedHours(t *testing.T) {
	day := forecast.Day{Hourly: []forecast.Observation{sample("0"), sample("1500"), sample("2300")}}

	lines, err := DayColumns(day, DefaultOptions())
	require.NoError(t, err)
	for _, line := range lines {
		assert.Equal(t, columnSeparator, line)
	}
}

func TestDayHeader(t *testing.T) {
	day := forecast.Day{Date: time.Date(2015, 5, 2, 0, 0, 0, 0, time.UTC), Hourly: threeHourly()}

	lines, err := Day(day, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, lines, 10)

	spaces := strings.Repeat(" ", 55)
	assert.Equal(t, spaces+"┌"+strings.Repeat("─", 13)+"┐"+spaces, lines[0])
	assert.Equal(t, "┌"+strings.Repeat("─", 30)+"┬"+strings.Repeat("─", 23)+"┤ Sat 02. May ├"+
		strings.Repeat("─", 23)+"┬"+strings.Repeat("─", 30)+"┐", lines[1])
	assert.Equal(t, "│           Morning            │             Noon      └──────┬──────┘    Evening            │            Night             │", lines[2])
	assert.Equal(t, rule(30, "├", "┼", "┤"), lines[3])
	assert.Equal(t, rule(30, "└", "┴", "┘"), lines[9])

	for i, line := range lines {
		assert.Equal(t, 125, termtext.Width(line), "line %d", i)
	}
}

func TestDayHeaderNarrowCells(t *testing.T) {
	opts := DefaultOptions()
	opts.CellWidth = 20

	lines, err := Day(forecast.Day{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}, opts)
	require.NoError(t, err)
	for i, line := range lines[:4] {
		assert.Equal(t, 85, termtext.Width(line), "line %d", i)
	}
	assert.Contains(t, lines[1], "┤ Mon 15. Jan ├")
	assert.Equal(t, "│      Morning       │        Noon └──────┬──────┘   Evening   │       Night        │", lines[2])
}

func TestDayHeaderKeepsPeriodNamesClearOfDateBox(t *testing.T) {
	day := forecast.Day{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}
	for w := 16; w <= 40; w++ {
		opts := DefaultOptions()
		opts.CellWidth = w

		lines, err := Day(day, opts)
		require.NoError(t, err, "width %d", w)
		assert.Equal(t, 4*w+5, termtext.Width(lines[2]), "width %d", w)
		assert.Contains(t, lines[2], "└──────┬──────┘", "width %d", w)
		for _, p := range periods {
			assert.Contains(t, lines[2], p, "width %d", w)
		}
	}

	opts := DefaultOptions()
	opts.CellWidth = 16
	lines, err := Day(day, opts)
	require.NoError(t, err)
	assert.Equal(t, "│    Morning     │  Noon   └──────┬──────┘ Evening │     Night      │", lines[2])
}

func TestReport(t *testing.T) {
	day := forecast.Day{Date: time.Date(2015, 5, 2, 0, 0, 0, 0, time.UTC), Hourly: threeHourly()}
	report := forecast.Report{
		Location: "Guangzhou, China",
		Current:  sample(""),
		Days:     []forecast.Day{day, day, day, day},
	}

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, report, DefaultOptions()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+5+3*10)
	assert.Equal(t, "Weather for: Guangzhou, China", lines[0])
	assert.Empty(t, lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, 30, termtext.Width(lines[3]))
}

func TestReportWithoutDays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, forecast.Report{Location: "Oslo", Current: sample("")}, DefaultOptions()))
	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}
