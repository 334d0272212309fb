package conditions

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a coarse grouping of OpenWeatherMap condition codes.
// The zero value is Unknown.
type Category int

const (
	Unknown Category = iota
	Thunderstorm
	Drizzle
	Rain
	Snow
	Atmosphere
	Clear
	Clouds
)

// categoryCodes lists the codes owned by each category, in lookup order.
// Sets are disjoint. Codes outside every set classify as Unknown.
var categoryCodes = []struct {
	category Category
	codes    []int
}{
	{Thunderstorm, []int{200, 201, 202, 210, 211, 212, 221, 230, 231, 232}},
	{Drizzle, []int{300, 301, 302, 310, 311, 312, 313, 314, 321}},
	{Rain, []int{500, 501, 502, 503, 504, 511, 520, 521, 522, 531}},
	{Snow, []int{600, 601, 602, 611, 612, 613, 615, 616, 620, 621, 622}},
	{Atmosphere, []int{701, 711, 721, 731, 741, 751, 761, 762, 771, 781}},
	{Clear, []int{800}},
	{Clouds, []int{801, 802, 803, 804}},
}

var categoryNames = map[Category]string{
	Unknown:      "unknown",
	Thunderstorm: "thunderstorm",
	Drizzle:      "drizzle",
	Rain:         "rain",
	Snow:         "snow",
	Atmosphere:   "atmosphere",
	Clear:        "clear",
	Clouds:       "clouds",
}

// Classify returns the category owning code, or Unknown.
func Classify(code int) Category {
	for _, entry := range categoryCodes {
		if slices.Contains(entry.codes, code) {
			return entry.category
		}
	}
	return Unknown
}

// Codes returns a copy of the codes owned by c. Unknown owns none.
func (c Category) Codes() []int {
	for _, entry := range categoryCodes {
		if entry.category == c {
			return slices.Clone(entry.codes)
		}
	}
	return nil
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(c))
}

// MarshalText encodes the category by label so JSON carries "rain" instead of 3.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory maps a label back to its Category. Unrecognized labels yield Unknown.
func ParseCategory(s string) Category {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for category, name := range categoryNames {
		if name == normalized {
			return category
		}
	}
	return Unknown
}

// Categories returns the seven known categories in lookup order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryCodes))
	for _, entry := range categoryCodes {
		out = append(out, entry.category)
	}
	return out
}
