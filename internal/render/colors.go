package render

import "fmt"

// band maps every value up to and including max to a 256-color palette index.
type band struct {
	max   int
	color int
}

var temperatureBands = []band{
	{-16, 21},
	{-13, 27},
	{-10, 33},
	{-7, 39},
	{-4, 45},
	{-1, 51},
	{1, 50},
	{3, 49},
	{5, 48},
	{7, 47},
	{9, 46},
	{12, 82},
	{15, 118},
	{18, 154},
	{21, 190},
	{24, 226},
	{27, 220},
	{30, 214},
	{33, 208},
	{36, 202},
}

const temperatureHot = 196

var windBands = []band{
	{0, 46},
	{3, 82},
	{6, 118},
	{9, 154},
	{12, 190},
	{15, 226},
	{19, 220},
	{23, 214},
	{27, 208},
	{31, 202},
}

const windHot = 196

func bandColor(bands []band, v, above int) int {
	for _, b := range bands {
		if v <= b.max {
			return b.color
		}
	}
	return above
}

// TemperatureColor returns the palette index for a temperature in °C.
func TemperatureColor(celsius int) int {
	return bandColor(temperatureBands, celsius, temperatureHot)
}

// WindColor returns the palette index for a wind speed in km/h.
func WindColor(kmph int) int {
	return bandColor(windBands, kmph, windHot)
}

func paint(color, v int) string {
	return fmt.Sprintf("\x1b[38;5;%03dm%d\x1b[0m", color, v)
}

// Temperature renders celsius in its band color.
func Temperature(celsius int) string {
	return paint(TemperatureColor(celsius), celsius)
}

// WindSpeed renders kmph in its band color.
func WindSpeed(kmph int) string {
	return paint(WindColor(kmph), kmph)
}
