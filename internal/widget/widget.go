package widget

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"clima/internal/location"
	"clima/internal/types"
	"clima/internal/weather"
)

// User-facing messages
const (
	MsgLoading           = "Cargando..."
	MsgLocationUnknown   = "No se pudo determinar tu ubicación. Busca una ciudad."
	MsgCityNotFound      = "Ciudad no encontrada"
	MsgFetchFailed       = "No se pudo obtener el clima"
	MsgSensorFailed      = "No se pudo obtener tu ubicación"
	MsgSensorUnsupported = "Tu navegador no soporta Geolocalización"
	MsgInvalidPosition   = "La ubicación recibida no es válida"
)

const defaultSubscriberBuffer = 10

// Fetcher retrieves current weather; satisfied by weather.Service
type Fetcher interface {
	FetchByCity(ctx context.Context, name string) (*weather.Record, error)
	FetchByCoords(ctx context.Context, latitude, longitude float64) (*weather.Record, error)
}

// Locator resolves locations; satisfied by location.Service
type Locator interface {
	LocateByIP(ctx context.Context) (location.Location, error)
	FromCity(name string) (location.Location, error)
	FromCoords(latitude, longitude float64) (location.Location, error)
	Describe(ctx context.Context, coords types.Coords) (types.LocationInfo, error)
}

type subscriber struct {
	msgs chan Snapshot
}

// Widget holds the single current-weather slot and drives the
// Idle -> Loading -> {Ready, Failed} state machine.
//
// Every triggering event bumps a generation counter and cancels the previous
// in-flight request. A result is applied only while its generation is still
// current, so the displayed record always belongs to the latest trigger.
// Reverse geocoding of coordinates outlives the weather fetch and is cancelled
// only by the next trigger.
type Widget struct {
	fetcher Fetcher
	locator Locator
	logger  *slog.Logger
	baseCtx context.Context
	now     func() time.Time

	mu         sync.Mutex
	state      State
	location   location.Location
	record     *weather.Record
	errMsg     string
	alert      string
	alertAt    time.Time
	generation uint64
	updatedAt  time.Time
	cancel     context.CancelFunc
	labelStop  context.CancelFunc
	closed     bool

	subscriberBuffer int
	subscribers      map[*subscriber]struct{}

	wg sync.WaitGroup
}

// Option customizes a Widget
type Option func(*Widget)

// WithSubscriberBuffer sets how many snapshots a slow subscriber may lag behind
func WithSubscriberBuffer(n int) Option {
	return func(w *Widget) {
		if n > 0 {
			w.subscriberBuffer = n
		}
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}

// New creates an idle widget. Fetches run under ctx; cancelling it aborts them.
func New(ctx context.Context, fetcher Fetcher, locator Locator, logger *slog.Logger, opts ...Option) *Widget {
	w := &Widget{
		fetcher:          fetcher,
		locator:          locator,
		logger:           logger.With("component", "widget"),
		baseCtx:          ctx,
		now:              time.Now,
		state:            StateIdle,
		location:         location.Unset(),
		subscriberBuffer: defaultSubscriberBuffer,
		subscribers:      make(map[*subscriber]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.updatedAt = w.now()
	return w
}

// Start resolves the default city from the caller's IP and fetches its weather.
// A failed lookup leaves the location unset and shows an error instead of loading forever.
func (w *Widget) Start() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	gen, ctx := w.beginLocked(location.Unset())
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		loc, err := w.locator.LocateByIP(ctx)
		if err != nil {
			w.logger.Warn("IP location lookup failed", "error", err)
			w.finish(gen, nil, err, MsgLocationUnknown)
			return
		}

		if !w.setLocation(gen, loc) {
			return
		}

		record, err := w.fetcher.FetchByCity(ctx, loc.City)
		w.finish(gen, record, err, "")
	}()
}

// Search fetches weather for a user-entered city. Blank input is ignored and
// reported by returning false; nothing else changes.
func (w *Widget) Search(query string) bool {
	loc, err := w.locator.FromCity(query)
	if err != nil {
		return false
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return false
	}
	gen, ctx := w.beginLocked(loc)
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Debug("searching city", "city", loc.City, "generation", gen)

	go func() {
		defer w.wg.Done()
		record, err := w.fetcher.FetchByCity(ctx, loc.City)
		w.finish(gen, record, err, "")
	}()
	return true
}

// Locate reads the device sensor and fetches weather for its coordinates.
// A sensor failure raises an alert and leaves the state and record untouched.
func (w *Widget) Locate(ctx context.Context, sensor PositionSensor) error {
	coords, err := sensor.CurrentPosition(ctx)
	if err != nil {
		w.logger.Warn("device position unavailable", "error", err)
		if errors.Is(err, ErrSensorUnsupported) {
			w.raiseAlert(MsgSensorUnsupported)
		} else {
			w.raiseAlert(MsgSensorFailed)
		}
		return err
	}

	loc, err := w.locator.FromCoords(coords.Latitude, coords.Longitude)
	if err != nil {
		w.logger.Warn("device reported invalid position", "coordinates", coords.String(), "error", err)
		w.raiseAlert(MsgInvalidPosition)
		return err
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return context.Canceled
	}
	gen, fetchCtx := w.beginLocked(loc)
	labelCtx, labelStop := context.WithCancel(w.baseCtx)
	w.labelStop = labelStop
	w.wg.Add(2)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		record, err := w.fetcher.FetchByCoords(fetchCtx, coords.Latitude, coords.Longitude)
		w.finish(gen, record, err, "")
	}()

	// Label the coordinates; may finish after the fetch
	go func() {
		defer w.wg.Done()
		defer labelStop()
		info, err := w.locator.Describe(labelCtx, coords)
		if err != nil {
			w.logger.Debug("reverse geocoding failed", "coordinates", coords.String(), "error", err)
			return
		}
		w.labelLocation(gen, info.Name)
	}()

	return nil
}

// Snapshot returns the current state
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Subscribe streams every state change, starting with the current one.
// Slow subscribers miss intermediate snapshots rather than blocking the widget.
func (w *Widget) Subscribe() (<-chan Snapshot, func()) {
	sub := &subscriber{msgs: make(chan Snapshot, w.subscriberBuffer)}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		close(sub.msgs)
		return sub.msgs, func() {}
	}
	w.subscribers[sub] = struct{}{}
	sub.msgs <- w.snapshotLocked()
	w.mu.Unlock()

	var once sync.Once
	return sub.msgs, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if _, ok := w.subscribers[sub]; ok {
				delete(w.subscribers, sub)
				close(sub.msgs)
			}
		})
	}
}

// Wait blocks until every in-flight request has finished
func (w *Widget) Wait() {
	w.wg.Wait()
}

// Close cancels in-flight requests, waits for them and disconnects subscribers
func (w *Widget) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.labelStop != nil {
		w.labelStop()
		w.labelStop = nil
	}
	w.mu.Unlock()

	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	for sub := range w.subscribers {
		delete(w.subscribers, sub)
		close(sub.msgs)
	}
}

// beginLocked starts a new generation and supersedes the previous request
func (w *Widget) beginLocked(loc location.Location) (uint64, context.Context) {
	if w.cancel != nil {
		w.cancel()
	}
	if w.labelStop != nil {
		w.labelStop()
		w.labelStop = nil
	}
	ctx, cancel := context.WithCancel(w.baseCtx)
	w.cancel = cancel

	w.generation++
	w.state = StateLoading
	w.location = loc
	w.errMsg = ""
	w.alert = ""
	w.alertAt = time.Time{}
	w.publishLocked()

	return w.generation, ctx
}

// setLocation records the location resolved mid-request, if still current
func (w *Widget) setLocation(gen uint64, loc location.Location) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return false
	}
	w.location = loc
	w.publishLocked()
	return true
}

func (w *Widget) labelLocation(gen uint64, label string) {
	if label == "" {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation || w.location.Kind != location.KindCoordinates {
		return
	}
	w.location = w.location.WithLabel(label)
	w.publishLocked()
}

// finish applies a request outcome. failureMsg overrides the message derived from err.
func (w *Widget) finish(gen uint64, record *weather.Record, err error, failureMsg string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		w.logger.Debug("discarding stale result", "generation", gen, "current", w.generation)
		return
	}

	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}

	// Shutdown aborted the request; keep the last state
	if err != nil && w.closed && errors.Is(err, context.Canceled) {
		w.logger.Debug("request cancelled by shutdown", "generation", gen)
		return
	}

	if err != nil {
		if failureMsg == "" {
			failureMsg = failureMessage(err)
		}
		w.logger.Error("weather request failed", "location", w.location.String(), "error", err)
		w.state = StateFailed
		w.errMsg = failureMsg
		w.publishLocked()
		return
	}

	w.record = record
	w.state = StateReady
	w.errMsg = ""
	w.publishLocked()
}

func (w *Widget) raiseAlert(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alert = msg
	w.alertAt = w.now()
	w.publishLocked()
}

func failureMessage(err error) string {
	if errors.Is(err, weather.ErrLocationNotFound) {
		return MsgCityNotFound
	}
	return MsgFetchFailed
}

func (w *Widget) snapshotLocked() Snapshot {
	return Snapshot{
		State:      w.state,
		Location:   w.location,
		Record:     w.record,
		Error:      w.errMsg,
		Alert:      w.alert,
		AlertAt:    w.alertAt,
		Generation: w.generation,
		UpdatedAt:  w.updatedAt,
	}
}

// publishLocked stamps the change and fans it out without blocking
func (w *Widget) publishLocked() {
	w.updatedAt = w.now()
	snap := w.snapshotLocked()
	for sub := range w.subscribers {
		select {
		case sub.msgs <- snap:
		default:
			w.logger.Debug("subscriber lagging, snapshot dropped", "generation", snap.Generation)
		}
	}
}
