package flow

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

// ErrSubmissionInFlight is returned when a create-order request is already
// outstanding. The backend does not deduplicate, so this guard is what keeps
// a double press from producing two remote orders.
var ErrSubmissionInFlight = errors.New("an order submission is already in flight")

// ErrEmptyOrder is returned when there is nothing in the cart to submit.
var ErrEmptyOrder = errors.New("the order has no items")

// Creator is the slice of the API client the submitter needs.
type Creator interface {
	CreateOrder(ctx context.Context, order api.CreateOrderRequest) (*api.CreateOrderResult, error)
}

// Submitter validates the current order, sends it to the backend and records
// the assigned identifier. One instance guards one order.
type Submitter struct {
	client  Creator
	store   *order.Store
	monitor *monitoring.Monitor
	log     logrus.FieldLogger

	mu       sync.Mutex
	inFlight bool
}

// NewSubmitter wires a submitter to the store it finalizes. monitor may be
// nil.
func NewSubmitter(client Creator, store *order.Store, monitor *monitoring.Monitor, log logrus.FieldLogger) *Submitter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Submitter{client: client, store: store, monitor: monitor, log: log}
}

// Submit runs the full attempt: validate, send, capture the identifier. On
// success the store gains order_ID, status and timestamp in one patch and
// the draft mirror disappears with it. On any failure the order is left
// untouched and the caller may retry.
func (s *Submitter) Submit(ctx context.Context) (*api.CreateOrderResult, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	snapshot := s.store.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if verr := Validate(snapshot); verr != nil {
		return nil, verr
	}

	submittedAt := time.Now()
	result, err := s.client.CreateOrder(ctx, buildRequest(snapshot, submittedAt))
	if err != nil {
		kind := "network"
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			kind = string(apiErr.Kind)
		}
		monitoring.SubmissionFailures.WithLabelValues(kind).Inc()
		if s.monitor != nil {
			s.monitor.RecordSubmission("", err)
		}
		s.log.WithError(err).Error("order submission failed")
		return nil, err
	}

	s.store.Apply(order.Patch{
		OrderID:     &result.OrderID,
		Status:      &result.Status,
		SubmittedAt: &submittedAt,
	})
	monitoring.OrdersSubmitted.Inc()
	if s.monitor != nil {
		s.monitor.RecordSubmission(result.OrderID, nil)
	}
	s.log.WithFields(logrus.Fields{
		"order_id": result.OrderID,
		"status":   result.Status,
	}).Info("order submitted")

	return result, nil
}

// InFlight reports whether a submission is currently outstanding, so the UI
// can disable the confirm action.
func (s *Submitter) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// buildRequest shapes the wire payload. Contact fields are narrowed to the
// ones the order type actually uses.
func buildRequest(o models.Order, submittedAt time.Time) api.CreateOrderRequest {
	info := api.CustomerInfo{}
	switch o.Type {
	case models.OrderTypeDelivery:
		info.CustomerName = o.CustomerName
		info.Address = o.Address
		info.Phone = o.Phone
	case models.OrderTypeDineIn:
		info.CustomerName = o.CustomerName
		info.TableNumber = o.TableNumber
	}

	return api.CreateOrderRequest{
		Timestamp:    submittedAt.UTC().Format(time.RFC3339),
		OrderType:    o.Type,
		CustomerInfo: info,
		Items:        o.Items,
		Total:        o.Total,
		Language:     o.Language,
	}
}
