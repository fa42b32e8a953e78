package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lokma/internal/chat"
	"lokma/internal/models"
)

var orderTypes = []models.OrderType{
	models.OrderTypeDelivery,
	models.OrderTypeDineIn,
	models.OrderTypeChatbot,
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case "start":
		return m.updateStartKey(msg)
	case "order_type":
		return m.updateOrderTypeKey(msg)
	case "menu":
		return m.updateMenuKey(msg)
	case "summary":
		return m.updateSummaryKey(msg)
	case "tracking":
		return m.updateTrackingKey(msg)
	case "chat":
		return m.updateChatKey(msg)
	}
	return m, nil
}

func (m Model) updateStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		snapshot := m.store.Snapshot()
		if snapshot.Language == models.LanguageEN {
			m.store.SetLanguage(models.LanguageAR)
		} else {
			m.store.SetLanguage(models.LanguageEN)
		}
	case "enter":
		m.currentView = "order_type"
		m.syncInputsFromStore()
		m.focusOrderTypeInput(-1)
	}
	return m, nil
}

// visibleInputs returns the contact inputs relevant to the highlighted type.
func (m Model) visibleInputs() []int {
	switch orderTypes[m.typeCursor] {
	case models.OrderTypeDelivery:
		return []int{inputName, inputAddress, inputPhone}
	case models.OrderTypeDineIn:
		return []int{inputName, inputTable}
	default:
		return nil
	}
}

func (m *Model) focusOrderTypeInput(index int) {
	m.focusIndex = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) updateOrderTypeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleInputs()

	switch msg.String() {
	case "esc":
		m.currentView = "start"
		m.focusOrderTypeInput(-1)
		return m, nil

	case "up", "down":
		// Selecting the type only when no input is focused.
		if m.focusIndex == -1 {
			if msg.String() == "up" {
				m.typeCursor = (m.typeCursor + len(orderTypes) - 1) % len(orderTypes)
			} else {
				m.typeCursor = (m.typeCursor + 1) % len(orderTypes)
			}
			m.store.SetType(orderTypes[m.typeCursor])
			return m, nil
		}

	case "tab", "shift+tab":
		if len(visible) == 0 {
			return m, nil
		}
		pos := -1
		for i, idx := range visible {
			if idx == m.focusIndex {
				pos = i
				break
			}
		}
		if msg.String() == "tab" {
			pos++
		} else {
			pos--
		}
		if pos < -1 {
			pos = len(visible) - 1
		}
		if pos >= len(visible) {
			pos = -1
		}
		if pos == -1 {
			m.focusOrderTypeInput(-1)
		} else {
			m.focusOrderTypeInput(visible[pos])
		}
		return m, nil

	case "enter":
		m.store.SetType(orderTypes[m.typeCursor])
		m.saveContactFields()
		m.fieldErrs = nil
		if orderTypes[m.typeCursor] == models.OrderTypeChatbot {
			m.currentView = "chat"
			m.chatInput.Focus()
			return m, nil
		}
		m.currentView = "menu"
		m.menuLoading = true
		m.menuErr = ""
		return m, fetchMenu(m.ctx, m.client)
	}

	if m.focusIndex >= 0 {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}
	return m, nil
}

// saveContactFields pushes the form into the store. Delivery info moves as a
// pair; the store does no validation here.
func (m *Model) saveContactFields() {
	m.store.SetCustomerName(strings.TrimSpace(m.inputs[inputName].Value()))
	switch orderTypes[m.typeCursor] {
	case models.OrderTypeDelivery:
		m.store.SetDeliveryInfo(
			strings.TrimSpace(m.inputs[inputAddress].Value()),
			strings.TrimSpace(m.inputs[inputPhone].Value()),
		)
	case models.OrderTypeDineIn:
		m.store.SetTableNumber(strings.TrimSpace(m.inputs[inputTable].Value()))
	}
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.noteFocused {
		switch msg.String() {
		case "esc", "enter":
			m.noteFocused = false
			m.noteInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}

	items := m.filteredMenu()

	switch msg.String() {
	case "esc":
		m.currentView = "order_type"
		return m, nil
	case "r":
		if m.menuErr != "" {
			m.menuLoading = true
			m.menuErr = ""
			return m, fetchMenu(m.ctx, m.client)
		}
	case "up":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down":
		if m.menuCursor < len(items)-1 {
			m.menuCursor++
		}
	case "left":
		m.catCursor = (m.catCursor + len(models.MenuCategories) - 1) % len(models.MenuCategories)
		m.menuCursor = 0
	case "right":
		m.catCursor = (m.catCursor + 1) % len(models.MenuCategories)
		m.menuCursor = 0
	case "+":
		m.quantity++
	case "-":
		if m.quantity > 1 {
			m.quantity--
		}
	case "n":
		m.noteFocused = true
		m.noteInput.Focus()
		return m, nil
	case "a", "enter":
		if m.menuCursor < len(items) {
			m.addToOrder(items[m.menuCursor])
		}
	case "s":
		if m.store.ItemCount() > 0 {
			m.currentView = "summary"
			m.summaryCursor = 0
		}
	}
	return m, nil
}

func (m Model) filteredMenu() []models.MenuItem {
	return models.FilterByCategory(m.menuItems, models.MenuCategories[m.catCursor])
}

// addToOrder resolves display strings for the current language at add time;
// toggling the language later does not rewrite cart lines.
func (m *Model) addToOrder(item models.MenuItem) {
	lang := m.store.Snapshot().Language
	m.store.AddItem(models.OrderItem{
		ID:          item.ID,
		Name:        item.DisplayName(lang),
		Description: item.DisplayDescription(lang),
		Image:       item.Image,
		Price:       item.Price,
	}, m.quantity, strings.TrimSpace(m.noteInput.Value()))

	m.quantity = 1
	m.noteInput.SetValue("")
}

func (m Model) updateSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snapshot := m.store.Snapshot()

	switch msg.String() {
	case "esc", "b":
		m.currentView = "menu"
		if len(m.menuItems) == 0 && !m.menuLoading {
			m.menuLoading = true
			return m, fetchMenu(m.ctx, m.client)
		}
		return m, nil
	case "up":
		if m.summaryCursor > 0 {
			m.summaryCursor--
		}
	case "down":
		if m.summaryCursor < len(snapshot.Items)-1 {
			m.summaryCursor++
		}
	case "+":
		if m.summaryCursor < len(snapshot.Items) {
			line := snapshot.Items[m.summaryCursor]
			m.store.SetItemQuantity(line.ID, line.Quantity+1)
		}
	case "-":
		if m.summaryCursor < len(snapshot.Items) {
			line := snapshot.Items[m.summaryCursor]
			m.store.SetItemQuantity(line.ID, line.Quantity-1)
			m.clampSummaryCursor()
		}
	case "d":
		if m.summaryCursor < len(snapshot.Items) {
			line := snapshot.Items[m.summaryCursor]
			m.store.RemoveItem(line.ID, line.Notes)
			m.clampSummaryCursor()
		}
	case "c", "enter":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.submitErr = ""
		return m, submitOrder(m.ctx, m.submitter)
	}
	return m, nil
}

func (m *Model) clampSummaryCursor() {
	if count := m.store.ItemCount(); m.summaryCursor >= count && count > 0 {
		m.summaryCursor = count - 1
	} else if count == 0 {
		m.summaryCursor = 0
	}
}

func (m Model) updateTrackingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snapshot := m.store.Snapshot()

	switch msg.String() {
	case "r":
		if !snapshot.Status.Terminal() {
			return m, refreshStatus(m.ctx, m.tracker)
		}
	case "c":
		if !snapshot.Status.Terminal() {
			return m, cancelTracked(m.ctx, m.tracker)
		}
	case "n":
		if snapshot.Status.Terminal() {
			m.store.Clear()
			m.resetToStart()
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentView = "order_type"
		m.chatInput.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" {
			return m, nil
		}
		m.transcript.Append(chat.SenderUser, text)
		m.chatInput.SetValue("")
		return m, askAssistant(m.ctx, m.responder, m.transcript, text)
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}
