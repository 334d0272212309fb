package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}
