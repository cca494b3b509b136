package render

// Icon is the five-line pictorial art for a weather condition.
type Icon [5]string

var (
	iconUnknown = Icon{
		"    .-.      ",
		"     __)     ",
		"    (        ",
		"     `-’     ",
		"      •      ",
	}
	iconSunny = Icon{
		"\x1b[38;5;226m    \\   /    \x1b[0m",
		"\x1b[38;5;226m     .-.     \x1b[0m",
		"\x1b[38;5;226m  ― (   ) ―  \x1b[0m",
		"\x1b[38;5;226m     `-’     \x1b[0m",
		"\x1b[38;5;226m    /   \\    \x1b[0m",
	}
	iconPartlyCloudy = Icon{
		"\x1b[38;5;226m   \\  /\x1b[0m      ",
		"\x1b[38;5;226m _ /\"\"\x1b[38;5;250m.-.    \x1b[0m",
		"\x1b[38;5;226m   \\_\x1b[38;5;250m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;250m(___(__) \x1b[0m",
		"             ",
	}
	iconCloudy = Icon{
		"             ",
		"\x1b[38;5;250m     .--.    \x1b[0m",
		"\x1b[38;5;250m  .-(    ).  \x1b[0m",
		"\x1b[38;5;250m (___.__)__) \x1b[0m",
		"             ",
	}
	iconVeryCloudy = Icon{
		"             ",
		"\x1b[38;5;240;1m     .--.    \x1b[0m",
		"\x1b[38;5;240;1m  .-(    ).  \x1b[0m",
		"\x1b[38;5;240;1m (___.__)__) \x1b[0m",
		"             ",
	}
	iconLightShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;250m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;250m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;250m(___(__) \x1b[0m",
		"\x1b[38;5;111m     ‘ ‘ ‘ ‘ \x1b[0m",
		"\x1b[38;5;111m    ‘ ‘ ‘ ‘  \x1b[0m",
	}
	iconHeavyShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;240;1m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;240;1m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;240;1m(___(__) \x1b[0m",
		"\x1b[38;5;21;1m   ‚‘‚‘‚‘‚‘  \x1b[0m",
		"\x1b[38;5;21;1m   ‚’‚’‚’‚’  \x1b[0m",
	}
	iconLightSnowShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;250m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;250m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;250m(___(__) \x1b[0m",
		"\x1b[38;5;255m     *  *  * \x1b[0m",
		"\x1b[38;5;255m    *  *  *  \x1b[0m",
	}
	iconHeavySnowShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;240;1m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;240;1m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;240;1m(___(__) \x1b[0m",
		"\x1b[38;5;255;1m    * * * *  \x1b[0m",
		"\x1b[38;5;255;1m   * * * *   \x1b[0m",
	}
	iconLightSleetShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;250m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;250m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;250m(___(__) \x1b[0m",
		"\x1b[38;5;111m     ‘ \x1b[38;5;255m*\x1b[38;5;111m ‘ \x1b[38;5;255m* \x1b[0m",
		"\x1b[38;5;255m    *\x1b[38;5;111m ‘ \x1b[38;5;255m*\x1b[38;5;111m ‘  \x1b[0m",
	}
	iconThunderyShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;250m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;250m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;250m(___(__) \x1b[0m",
		"\x1b[38;5;228;5m    ⚡\x1b[38;5;111;25m‘ ‘\x1b[38;5;228;5m⚡\x1b[38;5;111;25m‘ ‘ \x1b[0m",
		"\x1b[38;5;111m    ‘ ‘ ‘ ‘  \x1b[0m",
	}
	iconThunderyHeavyRain = Icon{
		"\x1b[38;5;240;1m     .-.     \x1b[0m",
		"\x1b[38;5;240;1m    (   ).   \x1b[0m",
		"\x1b[38;5;240;1m   (___(__)  \x1b[0m",
		"\x1b[38;5;21;1m  ‚‘\x1b[38;5;228;5m⚡\x1b[38;5;21;25m‘‚\x1b[38;5;228;5m⚡\x1b[38;5;21;25m‚‘   \x1b[0m",
		"\x1b[38;5;21;1m  ‚’‚’\x1b[38;5;228;5m⚡\x1b[38;5;21;25m’‚’   \x1b[0m",
	}
	iconThunderySnowShowers = Icon{
		"\x1b[38;5;226m _`/\"\"\x1b[38;5;250m.-.    \x1b[0m",
		"\x1b[38;5;226m  ,\\_\x1b[38;5;250m(   ).  \x1b[0m",
		"\x1b[38;5;226m   /\x1b[38;5;250m(___(__) \x1b[0m",
		"\x1b[38;5;255m     *\x1b[38;5;228;5m⚡\x1b[38;5;255;25m *\x1b[38;5;228;5m⚡\x1b[38;5;255;25m * \x1b[0m",
		"\x1b[38;5;255m    *  *  *  \x1b[0m",
	}
	iconLightRain = Icon{
		"\x1b[38;5;250m     .-.     \x1b[0m",
		"\x1b[38;5;250m    (   ).   \x1b[0m",
		"\x1b[38;5;250m   (___(__)  \x1b[0m",
		"\x1b[38;5;111m    ‘ ‘ ‘ ‘  \x1b[0m",
		"\x1b[38;5;111m   ‘ ‘ ‘ ‘   \x1b[0m",
	}
	iconHeavyRain = Icon{
		"\x1b[38;5;240;1m     .-.     \x1b[0m",
		"\x1b[38;5;240;1m    (   ).   \x1b[0m",
		"\x1b[38;5;240;1m   (___(__)  \x1b[0m",
		"\x1b[38;5;21;1m  ‚‘‚‘‚‘‚‘   \x1b[0m",
		"\x1b[38;5;21;1m  ‚’‚’‚’‚’   \x1b[0m",
	}
	iconLightSnow = Icon{
		"\x1b[38;5;250m     .-.     \x1b[0m",
		"\x1b[38;5;250m    (   ).   \x1b[0m",
		"\x1b[38;5;250m   (___(__)  \x1b[0m",
		"\x1b[38;5;255m    *  *  *  \x1b[0m",
		"\x1b[38;5;255m   *  *  *   \x1b[0m",
	}
	iconHeavySnow = Icon{
		"\x1b[38;5;240;1m     .-.     \x1b[0m",
		"\x1b[38;5;240;1m    (   ).   \x1b[0m",
		"\x1b[38;5;240;1m   (___(__)  \x1b[0m",
		"\x1b[38;5;255;1m   * * * *   \x1b[0m",
		"\x1b[38;5;255;1m  * * * *    \x1b[0m",
	}
	iconLightSleet = Icon{
		"\x1b[38;5;250m     .-.     \x1b[0m",
		"\x1b[38;5;250m    (   ).   \x1b[0m",
		"\x1b[38;5;250m   (___(__)  \x1b[0m",
		"\x1b[38;5;111m    ‘ \x1b[38;5;255m*\x1b[38;5;111m ‘ \x1b[38;5;255m*  \x1b[0m",
		"\x1b[38;5;255m   *\x1b[38;5;111m ‘ \x1b[38;5;255m*\x1b[38;5;111m ‘   \x1b[0m",
	}
	iconFog = Icon{
		"             ",
		"\x1b[38;5;251m _ - _ - _ - \x1b[0m",
		"\x1b[38;5;251m  _ - _ - _  \x1b[0m",
		"\x1b[38;5;251m _ - _ - _ - \x1b[0m",
		"             ",
	}
)

// conditionIcons maps World Weather Online condition codes to art.
var conditionIcons = map[int]Icon{
	113: iconSunny,
	116: iconPartlyCloudy,
	119: iconCloudy,
	122: iconVeryCloudy,
	143: iconFog,
	176: iconLightShowers,
	179: iconLightSleetShowers,
	182: iconLightSleet,
	185: iconLightSleet,
	200: iconThunderyShowers,
	227: iconLightSnow,
	230: iconHeavySnow,
	248: iconFog,
	260: iconFog,
	263: iconLightShowers,
	266: iconLightRain,
	281: iconLightSleet,
	284: iconLightSleet,
	293: iconLightRain,
	296: iconLightRain,
	299: iconHeavyShowers,
	302: iconHeavyRain,
	305: iconHeavyShowers,
	308: iconHeavyRain,
	311: iconLightSleet,
	314: iconLightSleet,
	317: iconLightSleet,
	320: iconLightSnow,
	323: iconLightSnowShowers,
	326: iconLightSnowShowers,
	329: iconHeavySnow,
	332: iconHeavySnow,
	335: iconHeavySnowShowers,
	338: iconHeavySnow,
	350: iconLightSleet,
	353: iconLightShowers,
	356: iconHeavyShowers,
	359: iconHeavyRain,
	362: iconLightSleetShowers,
	365: iconLightSleetShowers,
	368: iconLightSnowShowers,
	371: iconHeavySnowShowers,
	374: iconLightSleetShowers,
	377: iconLightSleet,
	386: iconThunderyShowers,
	389: iconThunderyHeavyRain,
	392: iconThunderySnowShowers,
	395: iconHeavySnowShowers,
}

// IconFor returns the art for a condition code, or the placeholder for
// unknown codes.
func IconFor(code int) Icon {
	if icon, ok := conditionIcons[code]; ok {
		return icon
	}
	return iconUnknown
}

// windArrows maps 16-point compass directions to the arrow pointing where
// the wind blows. Adjacent points share an arrow.
var windArrows = map[string]string{
	"N":   "\x1b[1m↓\x1b[0m",
	"NNE": "\x1b[1m↓\x1b[0m",
	"NE":  "\x1b[1m↙\x1b[0m",
	"ENE": "\x1b[1m↙\x1b[0m",
	"E":   "\x1b[1m←\x1b[0m",
	"ESE": "\x1b[1m←\x1b[0m",
	"SE":  "\x1b[1m↖\x1b[0m",
	"SSE": "\x1b[1m↖\x1b[0m",
	"S":   "\x1b[1m↑\x1b[0m",
	"SSW": "\x1b[1m↑\x1b[0m",
	"SW":  "\x1b[1m↗\x1b[0m",
	"WSW": "\x1b[1m↗\x1b[0m",
	"W":   "\x1b[1m→\x1b[0m",
	"WNW": "\x1b[1m→\x1b[0m",
	"NW":  "\x1b[1m↘\x1b[0m",
	"NNW": "\x1b[1m↘\x1b[0m",
}

// WindArrow returns the bold arrow glyph for a compass direction, or a blank
// for unrecognized directions.
func WindArrow(dir string) string {
	if arrow, ok := windArrows[dir]; ok {
		return arrow
	}
	return " "
}
