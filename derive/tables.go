package derive

// wmoEmoji maps WMO weather codes to display glyphs.
var wmoEmoji = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌦️",
	53: "🌦️",
	55: "🌦️",
	56: "🌧️",
	57: "🌧️",
	61: "🌧️",
	63: "🌧️",
	65: "🌧️",
	66: "🌧️",
	67: "🌧️",
	71: "❄️",
	73: "❄️",
	75: "❄️",
	77: "❄️",
	80: "🌧️",
	81: "🌧️",
	82: "🌧️",
	85: "❄️",
	86: "❄️",
	95: "⛈️",
	96: "⛈️",
	99: "⛈️",
}

// UnknownEmoji is rendered for codes missing from the table.
const UnknownEmoji = "❓"

// dayWidths maps long weekday names to the pixel width of the day bubble.
var dayWidths = map[string]int{
	"Monday":    220,
	"Tuesday":   230,
	"Wednesday": 280,
	"Thursday":  240,
	"Friday":    200,
	"Saturday":  245,
	"Sunday":    220,
}

// DefaultDayWidth is used when the weekday is missing from the table.
const DefaultDayWidth = 235
