package widget

import (
	"context"
	"errors"
	"fmt"

	"clima/internal/types"
)

var (
	ErrSensorUnsupported = errors.New("device does not support geolocation")
	ErrSensorFailed      = errors.New("device could not determine its position")
)

// PositionSensor yields the device's coordinates
type PositionSensor interface {
	CurrentPosition(ctx context.Context) (types.Coords, error)
}

// SensorFunc adapts a function to PositionSensor
type SensorFunc func(ctx context.Context) (types.Coords, error)

func (f SensorFunc) CurrentPosition(ctx context.Context) (types.Coords, error) {
	return f(ctx)
}

// ReportedPosition is a reading already taken by the browser and posted to the server
type ReportedPosition struct {
	Latitude    *float64
	Longitude   *float64
	Error       string
	Unsupported bool
}

func (r ReportedPosition) CurrentPosition(ctx context.Context) (types.Coords, error) {
	switch {
	case r.Unsupported:
		return types.Coords{}, ErrSensorUnsupported
	case r.Error != "":
		return types.Coords{}, fmt.Errorf("%w: %s", ErrSensorFailed, r.Error)
	case r.Latitude == nil || r.Longitude == nil:
		return types.Coords{}, ErrSensorFailed
	}
	return types.NewCoords(*r.Latitude, *r.Longitude), nil
}
