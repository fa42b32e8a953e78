package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"lokma/internal/api"
	"lokma/internal/models"
	"lokma/internal/monitoring"
	"lokma/internal/order"
)

// DefaultInterval is how often the loop polls the status endpoint.
const DefaultInterval = 30 * time.Second

// DefaultResetDelay is how long a cancelled or finished session stays on
// screen before the kiosk clears it and returns to the start.
const DefaultResetDelay = 5 * time.Second

// ErrNotCancellable is returned when the order has already completed or been
// cancelled.
var ErrNotCancellable = errors.New("order can no longer be cancelled")

// ErrRequestInFlight is returned when a fetch or cancel of the same kind is
// already outstanding.
var ErrRequestInFlight = errors.New("a request is already in flight")

// StatusClient is the slice of the API client the tracker needs.
type StatusClient interface {
	FetchStatus(ctx context.Context, orderID string) (models.OrderStatus, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

// Update is what the tracker reports to the UI after each fetch, cancel or
// session reset.
type Update struct {
	Status models.OrderStatus
	// Err carries a classified fetch/cancel failure. The last known status
	// is still populated; an error never erases it.
	Err error
	// SessionCleared is set once after a successful cancellation, when the
	// reset delay has elapsed and the order has been cleared.
	SessionCleared bool
}

// Tracker follows the remote lifecycle of a submitted order: an immediate
// fetch when tracking starts, then a fixed polling interval until a terminal
// status, with manual refresh and cancellation folded into the same
// single-flight guards.
type Tracker struct {
	client     StatusClient
	store      *order.Store
	monitor    *monitoring.Monitor
	log        logrus.FieldLogger
	interval   time.Duration
	resetDelay time.Duration
	updates    chan Update

	mu         sync.Mutex
	fetching   bool
	cancelling bool
	stopLoop   context.CancelFunc
}

// New creates a tracker. monitor may be nil.
func New(client StatusClient, store *order.Store, monitor *monitoring.Monitor, log logrus.FieldLogger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracker{
		client:     client,
		store:      store,
		monitor:    monitor,
		log:        log,
		interval:   DefaultInterval,
		resetDelay: DefaultResetDelay,
		updates:    make(chan Update, 16),
	}
}

// SetInterval overrides the polling interval. Must be called before Start.
func (t *Tracker) SetInterval(interval time.Duration) { t.interval = interval }

// SetResetDelay overrides the post-cancellation reset delay. Must be called
// before Start.
func (t *Tracker) SetResetDelay(delay time.Duration) { t.resetDelay = delay }

// Updates delivers tracker events to the UI.
func (t *Tracker) Updates() <-chan Update { return t.updates }

// Start begins polling. The first fetch happens right away rather than
// waiting out the first interval. Polling stops when the order reaches a
// terminal status, when cancellation succeeds, or when ctx is cancelled.
func (t *Tracker) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	if t.stopLoop != nil {
		t.mu.Unlock()
		cancel()
		return
	}
	t.stopLoop = cancel
	t.mu.Unlock()

	go t.run(loopCtx)
}

// Stop tears the polling loop down. Safe to call more than once.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel := t.stopLoop
	t.stopLoop = nil
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (t *Tracker) run(ctx context.Context) {
	if terminal := t.fetch(ctx); terminal {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if terminal := t.fetch(ctx); terminal {
				return
			}
		}
	}
}

// Refresh runs a manual status fetch. Concurrent refreshes, and refreshes
// racing the timer, coalesce onto the in-flight request instead of queueing.
func (t *Tracker) Refresh(ctx context.Context) error {
	if t.store.Snapshot().Status.Terminal() {
		return nil
	}
	if !t.beginFetch() {
		return ErrRequestInFlight
	}
	t.doFetch(ctx)
	return nil
}

// fetch is the timer-driven path. Returns true when polling should stop.
func (t *Tracker) fetch(ctx context.Context) bool {
	if !t.beginFetch() {
		return false
	}
	return t.doFetch(ctx)
}

func (t *Tracker) beginFetch() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fetching {
		return false
	}
	t.fetching = true
	return true
}

func (t *Tracker) doFetch(ctx context.Context) bool {
	defer func() {
		t.mu.Lock()
		t.fetching = false
		t.mu.Unlock()
	}()

	snapshot := t.store.Snapshot()
	if snapshot.OrderID == "" || snapshot.Status.Terminal() {
		return snapshot.Status.Terminal()
	}

	monitoring.StatusPolls.Inc()
	status, err := t.client.FetchStatus(ctx, snapshot.OrderID)
	if t.monitor != nil {
		t.monitor.RecordPoll(string(status), err)
	}
	if err != nil {
		monitoring.StatusPollFailures.WithLabelValues(errorKind(err)).Inc()
		t.log.WithError(err).Warn("status fetch failed")
		// Keep the last known status; the error rides alongside it.
		t.send(Update{Status: snapshot.Status, Err: err})
		return false
	}

	// A cancel that landed while this fetch was in flight has already moved
	// the order to a terminal status; a stale poll result must not undo it.
	if current := t.store.Snapshot().Status; current.Terminal() {
		return true
	}

	t.store.SetStatus(status)
	t.send(Update{Status: status})
	return status.Terminal()
}

// Cancel sends a cancel intent for the tracked order. Rejected locally when
// the order is already terminal. On success the local status flips to
// cancelled at once, polling stops, and after the reset delay the session is
// cleared so the kiosk returns to the start of the flow.
func (t *Tracker) Cancel(ctx context.Context) error {
	snapshot := t.store.Snapshot()
	if snapshot.OrderID == "" || snapshot.Status.Terminal() {
		return ErrNotCancellable
	}

	t.mu.Lock()
	if t.cancelling {
		t.mu.Unlock()
		return ErrRequestInFlight
	}
	t.cancelling = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.cancelling = false
		t.mu.Unlock()
	}()

	if err := t.client.UpdateStatus(ctx, snapshot.OrderID, models.StatusCancelled); err != nil {
		monitoring.CancellationFailures.WithLabelValues(errorKind(err)).Inc()
		t.log.WithError(err).Error("cancellation failed")
		// Status stays whatever it was; the order is not marked cancelled.
		t.send(Update{Status: snapshot.Status, Err: err})
		return err
	}

	t.store.SetStatus(models.StatusCancelled)
	monitoring.OrdersCancelled.Inc()
	if t.monitor != nil {
		t.monitor.RecordCancellation(snapshot.OrderID)
	}
	t.log.WithField("order_id", snapshot.OrderID).Info("order cancelled")
	t.Stop()
	t.send(Update{Status: models.StatusCancelled})

	time.AfterFunc(t.resetDelay, func() {
		t.store.Clear()
		t.send(Update{Status: models.StatusCancelled, SessionCleared: true})
	})
	return nil
}

// send delivers an update without ever blocking the loop; a slow consumer
// drops intermediate updates rather than stalling polling.
func (t *Tracker) send(update Update) {
	select {
	case t.updates <- update:
	default:
		t.log.Warn("update channel full, dropping tracker update")
	}
}

func errorKind(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return string(api.ErrKindNetwork)
}
