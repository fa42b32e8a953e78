package flow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokma/internal/api"
	"lokma/internal/models"
	"lokma/internal/monitoring"
	"lokma/internal/order"
)

// fakeCreator scripts the backend answer for one submission attempt.
type fakeCreator struct {
	mu       sync.Mutex
	requests []api.CreateOrderRequest
	result   *api.CreateOrderResult
	err      error
	block    chan struct{} // when set, CreateOrder waits until it closes
}

func (f *fakeCreator) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.CreateOrderResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.result, f.err
}

func readyStore() *order.Store {
	store := order.NewStore(models.LanguageEN, nil, nil)
	store.SetType(models.OrderTypeDineIn)
	store.SetCustomerName("Omar")
	store.SetTableNumber("12")
	store.AddItem(models.OrderItem{ID: "1", Name: "Classic Burger", Price: 25}, 2, "")
	return store
}

func TestSubmitSuccess(t *testing.T) {
	store := readyStore()
	creator := &fakeCreator{result: &api.CreateOrderResult{
		OrderID: "ORD123",
		Status:  models.StatusProcessing,
	}}
	submitter := NewSubmitter(creator, store, nil, nil)

	result, err := submitter.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD123", result.OrderID)

	snapshot := store.Snapshot()
	assert.Equal(t, "ORD123", snapshot.OrderID)
	assert.Equal(t, models.StatusProcessing, snapshot.Status)
	assert.False(t, snapshot.SubmittedAt.IsZero())
	assert.True(t, snapshot.Submitted())

	require.Len(t, creator.requests, 1)
	req := creator.requests[0]
	assert.Equal(t, models.OrderTypeDineIn, req.OrderType)
	assert.Equal(t, "Omar", req.CustomerInfo.CustomerName)
	assert.Equal(t, "12", req.CustomerInfo.TableNumber)
	assert.Empty(t, req.CustomerInfo.Address)
	assert.InDelta(t, 50, req.Total, 1e-9)

	// Timestamp is RFC3339 in UTC.
	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestSubmitEmptyOrder(t *testing.T) {
	store := order.NewStore(models.LanguageEN, nil, nil)
	creator := &fakeCreator{}
	submitter := NewSubmitter(creator, store, nil, nil)

	_, err := submitter.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Empty(t, creator.requests)
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	store := order.NewStore(models.LanguageEN, nil, nil)
	store.SetType(models.OrderTypeDelivery)
	store.AddItem(models.OrderItem{ID: "1", Price: 25}, 1, "")

	creator := &fakeCreator{}
	submitter := NewSubmitter(creator, store, nil, nil)

	_, err := submitter.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Address")
	assert.Empty(t, creator.requests, "a rejected order must not reach the backend")
	assert.Empty(t, store.Snapshot().OrderID)
}

func TestSubmitBackendFailureLeavesOrderUntouched(t *testing.T) {
	store := readyStore()
	before := store.Snapshot()

	creator := &fakeCreator{err: &api.Error{Kind: api.ErrKindServer, StatusCode: 500}}
	submitter := NewSubmitter(creator, store, nil, nil)

	_, err := submitter.Submit(context.Background())
	require.Error(t, err)

	after := store.Snapshot()
	assert.Empty(t, after.OrderID)
	assert.Equal(t, before.Items, after.Items)
	assert.False(t, after.Submitted())

	// The order is retryable as-is.
	creator.err = nil
	creator.result = &api.CreateOrderResult{OrderID: "ORD124", Status: models.StatusProcessing}
	_, err = submitter.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD124", store.Snapshot().OrderID)
}

func TestSubmitRecordsOutcomeOnMonitor(t *testing.T) {
	store := readyStore()
	monitor := monitoring.NewMonitor()
	creator := &fakeCreator{err: &api.Error{Kind: api.ErrKindServer, StatusCode: 500}}
	submitter := NewSubmitter(creator, store, monitor, nil)

	_, err := submitter.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, monitor.Stats(), "last_submission_error")

	creator.err = nil
	creator.result = &api.CreateOrderResult{OrderID: "ORD123", Status: models.StatusProcessing}
	_, err = submitter.Submit(context.Background())
	require.NoError(t, err)

	stats := monitor.Stats()
	assert.Equal(t, "ORD123", stats["last_order_id"])
	assert.NotContains(t, stats, "last_submission_error")
}

func TestSubmitSingleFlight(t *testing.T) {
	store := readyStore()
	creator := &fakeCreator{
		result: &api.CreateOrderResult{OrderID: "ORD123", Status: models.StatusProcessing},
		block:  make(chan struct{}),
	}
	submitter := NewSubmitter(creator, store, nil, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := submitter.Submit(context.Background())
		assert.NoError(t, err)
	}()

	// Wait until the first attempt is inside CreateOrder.
	require.Eventually(t, submitter.InFlight, time.Second, 5*time.Millisecond)

	_, err := submitter.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(creator.block)
	<-done

	creator.mu.Lock()
	defer creator.mu.Unlock()
	assert.Len(t, creator.requests, 1)
}
