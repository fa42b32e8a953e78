package order

import "lokma/internal/models"

// AddItem puts a line in the cart. An existing line with the same id and the
// same notes absorbs the quantity; otherwise a new line is appended. The
// item's Quantity and Notes fields are taken from the arguments, not from
// the struct. Callers clamp quantity to >= 1 before calling.
func (s *Store) AddItem(item models.OrderItem, quantity int, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.order.Items {
		if s.order.Items[i].ID == item.ID && s.order.Items[i].Notes == notes {
			s.order.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = quantity
		item.Notes = notes
		s.order.Items = append(s.order.Items, item)
	}
	s.order.Total = models.ComputeTotal(s.order.Items)
	s.persist()
}

// RemoveItem drops cart lines matching the id. When notes are given only the
// exact (id, notes) line is removed; without notes every line with the id
// goes, so callers must pass notes whenever variants of the same dish may be
// in the cart.
func (s *Store) RemoveItem(id string, notes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order.Items[:0]
	for _, item := range s.order.Items {
		if item.ID == id && (len(notes) == 0 || item.Notes == notes[0]) {
			continue
		}
		kept = append(kept, item)
	}
	s.order.Items = kept
	s.order.Total = models.ComputeTotal(s.order.Items)
	s.persist()
}

// SetItemQuantity re-quantifies every line with the id. A quantity of zero
// or less removes the line rather than storing it empty.
func (s *Store) SetItemQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order.Items[:0]
	for _, item := range s.order.Items {
		if item.ID == id {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		kept = append(kept, item)
	}
	s.order.Items = kept
	s.order.Total = models.ComputeTotal(s.order.Items)
	s.persist()
}

// ItemCount returns the number of cart lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order.Items)
}
