package order

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"lokma/internal/models"
)

// DraftKey is the fixed name under which the in-progress order is mirrored
// to durable session storage.
const DraftKey = "lokma_current_order"

// DraftStore persists an unsubmitted order so a restarted session can pick
// the cart back up.
type DraftStore interface {
	Save(key string, order models.Order) error
	Load(key string) (models.Order, bool, error)
	Delete(key string) error
}

// Store is the sole owner of the current order. Every read and write in the
// rest of the program goes through it; mutations are applied as atomic
// read-modify-write steps and callers only ever see consistent snapshots.
type Store struct {
	mu     sync.RWMutex
	order  models.Order
	drafts DraftStore
	log    logrus.FieldLogger
}

// NewStore creates a store holding an empty order in the given language.
// drafts may be nil, in which case nothing is persisted.
func NewStore(lang models.Language, drafts DraftStore, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		order:  models.NewOrder(lang),
		drafts: drafts,
		log:    log,
	}
}

// Restore replaces an empty in-memory order with a persisted draft, if one
// exists. The draft's total is recomputed from its items so a tampered or
// stale blob cannot desynchronize the derived value.
func (s *Store) Restore() {
	if s.drafts == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order.Items) > 0 || s.order.Submitted() {
		return
	}
	draft, ok, err := s.drafts.Load(DraftKey)
	if err != nil {
		s.log.WithError(err).Warn("failed to load order draft")
		return
	}
	if !ok {
		return
	}
	draft.Total = models.ComputeTotal(draft.Items)
	if draft.Items == nil {
		draft.Items = []models.OrderItem{}
	}
	s.order = draft
}

// Snapshot returns a copy of the current order. The items slice is cloned so
// the caller cannot reach store-owned state.
func (s *Store) Snapshot() models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.order
	snapshot.Items = models.CloneItems(s.order.Items)
	return snapshot
}

// SetType records how the guest wants to receive the order. Items and
// contact fields are left alone.
func (s *Store) SetType(orderType models.OrderType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Type = orderType
	s.persist()
}

// SetDeliveryInfo sets address and phone together. Validation is the
// submission flow's concern, not the store's.
func (s *Store) SetDeliveryInfo(address, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Address = address
	s.order.Phone = phone
	s.persist()
}

// SetCustomerName records the guest's name.
func (s *Store) SetCustomerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.CustomerName = name
	s.persist()
}

// SetTableNumber records the table for dine-in orders. An empty string means
// not provided.
func (s *Store) SetTableNumber(tableNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.TableNumber = tableNumber
	s.persist()
}

// SetLanguage switches display language. Independent of every other field.
func (s *Store) SetLanguage(lang models.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Language = lang
	s.persist()
}

// SetOrderID records the server-assigned identifier. An order gets its
// identifier at most once; later calls are ignored.
func (s *Store) SetOrderID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.order.OrderID != "" {
		s.log.WithField("order_id", s.order.OrderID).Warn("order already has an identifier, ignoring")
		return
	}
	s.order.OrderID = id
	s.persist()
}

// SetStatus records the latest remote lifecycle status.
func (s *Store) SetStatus(status models.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Status = status
	s.persist()
}

// Patch is a partial update merged by Apply. Total is deliberately absent:
// it is derived from Items and recomputed whenever they change.
type Patch struct {
	Type         *models.OrderType
	CustomerName *string
	Address      *string
	Phone        *string
	TableNumber  *string
	Items        *[]models.OrderItem
	OrderID      *string
	Status       *models.OrderStatus
	Language     *models.Language
	SubmittedAt  *time.Time
}

// Apply merges a partial patch into the order. The submission flow uses it
// to set identifier, status and timestamp in one step.
func (s *Store) Apply(patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Type != nil {
		s.order.Type = *patch.Type
	}
	if patch.CustomerName != nil {
		s.order.CustomerName = *patch.CustomerName
	}
	if patch.Address != nil {
		s.order.Address = *patch.Address
	}
	if patch.Phone != nil {
		s.order.Phone = *patch.Phone
	}
	if patch.TableNumber != nil {
		s.order.TableNumber = *patch.TableNumber
	}
	if patch.Items != nil {
		s.order.Items = models.CloneItems(*patch.Items)
		s.order.Total = models.ComputeTotal(s.order.Items)
	}
	if patch.OrderID != nil && s.order.OrderID == "" {
		s.order.OrderID = *patch.OrderID
	}
	if patch.Status != nil {
		s.order.Status = *patch.Status
	}
	if patch.Language != nil {
		s.order.Language = *patch.Language
	}
	if patch.SubmittedAt != nil {
		s.order.SubmittedAt = *patch.SubmittedAt
	}
	s.persist()
}

// Replace swaps in a whole order, recomputing the total from its items.
func (s *Store) Replace(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.Items = models.CloneItems(order.Items)
	order.Total = models.ComputeTotal(order.Items)
	s.order = order
	s.persist()
}

// Clear resets to an empty order. Language survives so the guest is not
// flipped back to the default mid-session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = models.NewOrder(s.order.Language)
	s.persist()
}

// persist mirrors the order to the draft store while it is worth keeping: at
// least one item and not yet submitted. Once submitted (or emptied) the
// draft is removed. Callers must hold the write lock.
func (s *Store) persist() {
	if s.drafts == nil {
		return
	}
	if len(s.order.Items) > 0 && !s.order.Submitted() {
		if err := s.drafts.Save(DraftKey, s.order); err != nil {
			s.log.WithError(err).Warn("failed to persist order draft")
		}
		return
	}
	if err := s.drafts.Delete(DraftKey); err != nil {
		s.log.WithError(err).Warn("failed to delete order draft")
	}
}
