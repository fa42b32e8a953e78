package ui

import (
	"fmt"
	"strings"

	"lokma/internal/chat"
	"lokma/internal/models"
)

// View renders the UI.
func (m Model) View() string {
	switch m.currentView {
	case "start":
		return docStyle.Render(m.startView())
	case "order_type":
		return docStyle.Render(m.orderTypeView())
	case "menu":
		return docStyle.Render(m.menuView())
	case "summary":
		return docStyle.Render(m.summaryView())
	case "tracking":
		return docStyle.Render(m.trackingView())
	case "chat":
		return docStyle.Render(m.chatView())
	default:
		return "Loading..."
	}
}

func (m Model) startView() string {
	t := m.tr()
	view := titleStyle.Render(t.RestaurantName) + "\n\n"
	view += t.WelcomeMessage + "\n\n"
	view += successStyle.Render(t.StartOrder) + "\n\n"
	view += faintStyle.Render("enter: continue • l: English/العربية • q: quit")
	return view
}

func (m Model) orderTypeView() string {
	t := m.tr()
	labels := []string{t.Delivery, t.DineIn, t.Chatbot}

	view := titleStyle.Render(t.SelectOrderType) + "\n\n"
	for i, label := range labels {
		cursor := "  "
		if i == m.typeCursor {
			cursor = selectedStyle.Render("> ")
			label = selectedStyle.Render(label)
		}
		view += cursor + label + "\n"
	}
	view += "\n"

	prompts := map[int]string{
		inputName:    t.CustomerName,
		inputAddress: t.DeliveryAddress,
		inputPhone:   t.PhoneNumber,
		inputTable:   t.TableNumber,
	}
	fields := map[int]string{
		inputName:    "CustomerName",
		inputAddress: "Address",
		inputPhone:   "Phone",
		inputTable:   "TableNumber",
	}
	for _, idx := range m.visibleInputs() {
		view += prompts[idx] + "\n" + m.inputs[idx].View() + "\n"
		if msg, ok := m.fieldErrs[fields[idx]]; ok {
			view += errorStyle.Render(msg) + "\n"
		}
	}

	view += "\n" + faintStyle.Render("up/down: order type • tab: next field • enter: continue • esc: back")
	return view
}

func (m Model) menuView() string {
	t := m.tr()
	view := titleStyle.Render(t.Menu) + "\n\n"

	if m.menuLoading {
		return view + m.spinner.View() + " " + t.Loading
	}
	if m.menuErr != "" {
		view += errorStyle.Render(t.Error) + "\n"
		view += faintStyle.Render(m.menuErr) + "\n\n"
		view += "Press 'r' to retry, 'esc' to go back"
		return view
	}

	// Category filter row
	var cats []string
	for i, cat := range models.MenuCategories {
		label := t.Categories[cat]
		if i == m.catCursor {
			label = selectedStyle.Render("[" + label + "]")
		}
		cats = append(cats, label)
	}
	view += strings.Join(cats, " ") + "\n\n"

	items := m.filteredMenu()
	if len(items) == 0 {
		view += faintStyle.Render("No items in this category") + "\n"
	}
	lang := m.store.Snapshot().Language
	for i, item := range items {
		line := fmt.Sprintf("%s  %s%.2f", item.DisplayName(lang), t.Price, item.Price)
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + line)
			line += "\n  " + faintStyle.Render(item.DisplayDescription(lang))
		} else {
			line = "  " + line
		}
		view += line + "\n"
	}

	view += fmt.Sprintf("\n%s: %d    %s: %s\n", t.Quantity, m.quantity, t.SpecialNotes, m.noteInput.View())

	if count := m.store.ItemCount(); count > 0 {
		view += "\n" + infoStyle.Render(fmt.Sprintf("%d in cart", count)) + "\n"
	}
	view += "\n" + faintStyle.Render("a: add • +/-: quantity • n: notes • left/right: category • s: summary • esc: back")
	return view
}

func (m Model) summaryView() string {
	t := m.tr()
	snapshot := m.store.Snapshot()

	view := titleStyle.Render(t.OrderSummary) + "\n\n"

	switch snapshot.Type {
	case models.OrderTypeDelivery:
		view += fmt.Sprintf("%s: %s, %s\n\n", t.Delivery, snapshot.Address, snapshot.Phone)
	case models.OrderTypeDineIn:
		if snapshot.TableNumber != "" {
			view += fmt.Sprintf("%s: %s\n\n", t.DineIn, snapshot.TableNumber)
		} else {
			view += t.DineIn + "\n\n"
		}
	}

	if len(snapshot.Items) == 0 {
		view += "Your order is empty\n\n"
		view += faintStyle.Render("esc: back to menu")
		return view
	}

	for i, item := range snapshot.Items {
		line := fmt.Sprintf("%s x%d  %s%.2f", item.Name, item.Quantity, t.Price, item.LineTotal())
		if i == m.summaryCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		view += line + "\n"
		if item.Notes != "" {
			view += "    " + faintStyle.Render("Note: "+item.Notes) + "\n"
		}
	}

	view += fmt.Sprintf("\n%s: %s%.2f\n", t.Total, t.Price, snapshot.Total)

	if m.submitting {
		view += "\n" + m.spinner.View() + " " + t.Loading + "\n"
	} else if m.submitErr != "" {
		view += "\n" + errorStyle.Render("Failed to submit order. Please try again.") + "\n"
		view += faintStyle.Render(m.submitErr) + "\n"
	}

	view += "\n" + faintStyle.Render("c: "+t.ConfirmOrder+" • +/-: quantity • d: remove • esc: back")
	return view
}

func (m Model) trackingView() string {
	t := m.tr()
	snapshot := m.store.Snapshot()

	view := titleStyle.Render(t.ThankYou) + "\n\n"
	view += t.OrderProcessing + "\n\n"
	view += fmt.Sprintf("%s: #%s\n", t.OrderNumber, snapshot.OrderID)

	statusLabel := t.Statuses[snapshot.Status]
	if statusLabel == "" {
		statusLabel = t.Statuses[models.StatusUnknown]
	}
	switch snapshot.Status {
	case models.StatusCompleted:
		view += t.OrderStatus + ": " + successStyle.Render(statusLabel) + "\n"
	case models.StatusCancelled:
		view += t.OrderStatus + ": " + errorStyle.Render(statusLabel) + "\n"
	default:
		view += t.OrderStatus + ": " + infoStyle.Render(statusLabel) + "\n"
	}

	if m.statusErr != "" {
		view += "\n" + errorStyle.Render(t.Error) + " " + faintStyle.Render(m.statusErr) + "\n"
	}

	view += fmt.Sprintf("\n%s: %s%.2f\n", t.Total, t.Price, snapshot.Total)

	if snapshot.Status.Terminal() {
		view += "\n" + faintStyle.Render("n: "+t.NewOrder+" • q: quit")
	} else {
		view += "\n" + faintStyle.Render("r: "+t.Refresh+" • c: "+t.CancelOrder+" • q: quit")
	}
	return view
}

func (m Model) chatView() string {
	t := m.tr()
	view := titleStyle.Render(t.ChatbotTitle) + "\n\n"

	for _, msg := range m.transcript.Messages() {
		if msg.Sender == chat.SenderUser {
			view += selectedStyle.Render("You: ") + msg.Text + "\n"
		} else {
			view += infoStyle.Render("Bot:") + " " + msg.Text + "\n"
		}
	}

	view += "\n" + m.chatInput.View() + "\n"
	view += "\n" + faintStyle.Render("enter: "+t.Send+" • esc: back")
	return view
}
