package widget

import (
	"fmt"
	"time"

	"clima/internal/location"
	"clima/internal/weather"
)

// State is the presentation state of the widget
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:    "idle",
	StateLoading: "loading",
	StateReady:   "ready",
	StateFailed:  "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is an immutable copy of the widget at one point in time
type Snapshot struct {
	State      State             `json:"state"`
	Location   location.Location `json:"location"`
	Record     *weather.Record   `json:"record,omitempty"`
	Error      string            `json:"error,omitempty"`
	Alert      string            `json:"alert,omitempty"`
	AlertAt    time.Time         `json:"alert_at,omitzero"`
	Generation uint64            `json:"generation"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
