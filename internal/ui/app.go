package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"lokma/internal/api"
	"lokma/internal/chat"
	"lokma/internal/flow"
	"lokma/internal/i18n"
	"lokma/internal/models"
	"lokma/internal/order"
	"lokma/internal/tracker"
)

// Contact form input indexes.
const (
	inputName = iota
	inputAddress
	inputPhone
	inputTable
	inputCount
)

// Model defines the kiosk application state: which screen is showing and
// the widgets each screen needs. All order data lives in the store; the
// model only keeps display state.
type Model struct {
	ctx        context.Context
	store      *order.Store
	submitter  *flow.Submitter
	tracker    *tracker.Tracker
	client     *api.Client
	responder  chat.Responder
	transcript *chat.Transcript
	log        logrus.FieldLogger

	currentView string
	spinner     spinner.Model

	// order type screen
	typeCursor int
	inputs     []textinput.Model
	focusIndex int
	fieldErrs  flow.FieldErrors

	// menu screen
	menuItems   []models.MenuItem
	menuLoading bool
	menuErr     string
	menuCursor  int
	catCursor   int
	quantity    int
	noteInput   textinput.Model
	noteFocused bool

	// summary screen
	summaryCursor int
	submitting    bool
	submitErr     string

	// tracking screen
	tracking  bool
	statusErr string

	// chat screen
	chatInput textinput.Model

	errText string
}

// New builds the kiosk UI over an already-wired store, submitter and
// tracker. ctx bounds every network call the screens make.
func New(ctx context.Context, store *order.Store, submitter *flow.Submitter, trk *tracker.Tracker,
	client *api.Client, responder chat.Responder, transcript *chat.Transcript, log logrus.FieldLogger) Model {

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 128
		inputs[i].Width = 40
	}

	note := textinput.New()
	note.CharLimit = 156
	note.Width = 40

	chatIn := textinput.New()
	chatIn.CharLimit = 280
	chatIn.Width = 50

	view := "start"
	if store.Snapshot().Submitted() {
		view = "tracking"
	} else if store.ItemCount() > 0 {
		// A restored draft drops the guest on the summary screen, the same
		// place a reload would land them.
		view = "summary"
	}

	return Model{
		ctx:         ctx,
		store:       store,
		submitter:   submitter,
		tracker:     trk,
		client:      client,
		responder:   responder,
		transcript:  transcript,
		log:         log,
		currentView: view,
		spinner:     s,
		inputs:      inputs,
		noteInput:   note,
		chatInput:   chatIn,
		quantity:    1,
	}
}

// tr returns the string table for the order's current language.
func (m Model) tr() i18n.Translations {
	return i18n.For(m.store.Snapshot().Language)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, tea.EnterAltScreen}
	if m.currentView == "tracking" {
		cmds = append(cmds, m.startTracking())
	}
	return tea.Batch(cmds...)
}

// startTracking spins the poll loop up exactly once and begins draining its
// updates into the UI.
func (m *Model) startTracking() tea.Cmd {
	if m.tracking {
		return nil
	}
	m.tracking = true
	m.tracker.Start(m.ctx)
	return waitForTracker(m.tracker.Updates())
}

// Update handles UI updates.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case menuMsg:
		m.menuLoading = false
		m.menuErr = ""
		m.menuItems = msg.items
		if m.menuCursor >= len(m.menuItems) {
			m.menuCursor = 0
		}
		return m, nil

	case menuErrMsg:
		m.menuLoading = false
		m.menuErr = msg.err.Error()
		return m, nil

	case submittedMsg:
		m.submitting = false
		m.submitErr = ""
		m.fieldErrs = nil
		m.currentView = "tracking"
		return m, m.startTracking()

	case submitErrMsg:
		m.submitting = false
		var verr *flow.ValidationError
		if errors.As(msg.err, &verr) {
			m.fieldErrs = verr.Fields
			m.currentView = "order_type"
			m.syncInputsFromStore()
			return m, nil
		}
		m.submitErr = msg.err.Error()
		return m, nil

	case trackerMsg:
		if msg.update.SessionCleared {
			m.resetToStart()
			return m, nil
		}
		if msg.update.Err != nil {
			m.statusErr = msg.update.Err.Error()
		} else {
			m.statusErr = ""
		}
		return m, waitForTracker(m.tracker.Updates())

	case chatReplyMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateWidgets(msg)
}

func (m *Model) resetToStart() {
	m.tracker.Stop()
	m.tracking = false
	m.statusErr = ""
	m.submitErr = ""
	m.fieldErrs = nil
	m.summaryCursor = 0
	m.quantity = 1
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.currentView = "start"
}

// syncInputsFromStore refills the contact form from the order, used when
// validation bounces the guest back to fix a field.
func (m *Model) syncInputsFromStore() {
	snapshot := m.store.Snapshot()
	m.inputs[inputName].SetValue(snapshot.CustomerName)
	m.inputs[inputAddress].SetValue(snapshot.Address)
	m.inputs[inputPhone].SetValue(snapshot.Phone)
	m.inputs[inputTable].SetValue(snapshot.TableNumber)
	switch snapshot.Type {
	case models.OrderTypeDineIn:
		m.typeCursor = 1
	case models.OrderTypeChatbot:
		m.typeCursor = 2
	default:
		m.typeCursor = 0
	}
}

// updateWidgets routes non-key messages into whichever widget has focus.
func (m Model) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case "order_type":
		if m.focusIndex >= 0 && m.focusIndex < len(m.inputs) {
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		}
	case "menu":
		if m.noteFocused {
			m.noteInput, cmd = m.noteInput.Update(msg)
		}
	case "chat":
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}
