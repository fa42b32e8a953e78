package models

import (
	"strings"
	"time"
)

// OrderType identifies how the guest wants to receive their order.
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeChatbot  OrderType = "chatbot"
	// OrderTypeNone means the guest has not chosen yet.
	OrderTypeNone OrderType = ""
)

// Language selects which display strings are shown to the guest.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// OrderItem is a single line in the cart. Two lines with the same ID but
// different Notes are distinct; (ID, Notes) is the merge key.
type OrderItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Notes       string  `json:"notes,omitempty"`
}

// LineTotal returns price times quantity for this line.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is the single record of the guest's current order: type, contact
// info, cart lines, derived total and, after submission, the remote
// identifier and lifecycle status.
type Order struct {
	Type         OrderType   `json:"type"`
	CustomerName string      `json:"customerName,omitempty"`
	Address      string      `json:"address,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	TableNumber  string      `json:"tableNumber,omitempty"`
	Items        []OrderItem `json:"items"`
	// Total is derived from Items and recomputed on every mutation;
	// it is never written directly.
	Total       float64     `json:"total"`
	OrderID     string      `json:"order_ID,omitempty"`
	Status      OrderStatus `json:"status,omitempty"`
	Language    Language    `json:"language"`
	SubmittedAt time.Time   `json:"submittedAt,omitempty"`
}

// NewOrder returns an empty order in the given language.
func NewOrder(lang Language) Order {
	return Order{
		Type:     OrderTypeNone,
		Items:    []OrderItem{},
		Total:    0,
		Language: lang,
	}
}

// ComputeTotal returns the sum of line totals over the items.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// Submitted reports whether the order has been accepted by the backend.
func (o Order) Submitted() bool {
	return o.OrderID != ""
}

// CloneItems returns a copy of the item slice so callers cannot mutate
// store-owned state through a snapshot.
func CloneItems(items []OrderItem) []OrderItem {
	cloned := make([]OrderItem, len(items))
	copy(cloned, items)
	return cloned
}

// OrderStatus represents the remote lifecycle state of a submitted order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
	StatusUnknown    OrderStatus = "unknown"
)

// ParseStatus normalizes a remote free-text status into an OrderStatus.
// Unrecognized or empty values map to StatusUnknown.
func ParseStatus(raw string) OrderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "processing":
		return StatusProcessing
	case "preparing":
		return StatusPreparing
	case "ready":
		return StatusReady
	case "completed":
		return StatusCompleted
	case "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// Terminal reports whether no further transitions are expected.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
