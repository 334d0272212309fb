package conditions

import "strings"

// FallbackIcon is shown when a condition code belongs to no category.
const FallbackIcon = "🌡️"

const iconURLTemplate = "https://openweathermap.org/img/wn/[icon]@4x.png"

var icons = map[Category]string{
	Thunderstorm: "⛈️",
	Drizzle:      "🌦️",
	Rain:         "🌧️",
	Snow:         "❄️",
	Atmosphere:   "🌫️",
	Clear:        "☀️",
	Clouds:       "☁️",
}

// Icon resolves the display glyph for a category.
func Icon(category Category) string {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return FallbackIcon
}

// IconURL returns the provider-hosted image for an icon id such as "10d".
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return strings.Replace(iconURLTemplate, "[icon]", icon, 1)
}
