package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"lokma/internal/api"
	"lokma/internal/chat"
	"lokma/internal/flow"
	"lokma/internal/models"
	"lokma/internal/monitoring"
	"lokma/internal/tracker"
)

// Custom message types for the tea.Model
type menuMsg struct {
	items []models.MenuItem
}

type menuErrMsg struct {
	err error
}

type submittedMsg struct {
	result *api.CreateOrderResult
}

type submitErrMsg struct {
	err error
}

type trackerMsg struct {
	update tracker.Update
}

type chatReplyMsg struct {
	text string
}

// fetchMenu retrieves the catalog from the backend.
func fetchMenu(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := client.FetchMenu(ctx)
		if err != nil {
			monitoring.MenuFetchFailures.Inc()
			return menuErrMsg{err: err}
		}
		return menuMsg{items: items}
	}
}

// submitOrder runs the submission flow off the UI loop.
func submitOrder(ctx context.Context, submitter *flow.Submitter) tea.Cmd {
	return func() tea.Msg {
		result, err := submitter.Submit(ctx)
		if err != nil {
			return submitErrMsg{err: err}
		}
		return submittedMsg{result: result}
	}
}

// waitForTracker delivers the next tracker update into the UI loop. The
// returned command is re-issued after every trackerMsg so the channel keeps
// draining.
func waitForTracker(updates <-chan tracker.Update) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return nil
		}
		return trackerMsg{update: update}
	}
}

// refreshStatus triggers a manual status fetch; coalesced requests are fine
// to ignore, the in-flight fetch will report back.
func refreshStatus(ctx context.Context, t *tracker.Tracker) tea.Cmd {
	return func() tea.Msg {
		t.Refresh(ctx)
		return nil
	}
}

// cancelTracked sends the cancel intent; outcome arrives as a trackerMsg.
func cancelTracked(ctx context.Context, t *tracker.Tracker) tea.Cmd {
	return func() tea.Msg {
		t.Cancel(ctx)
		return nil
	}
}

// askAssistant fetches the bot's reply to the guest's message.
func askAssistant(ctx context.Context, responder chat.Responder, transcript *chat.Transcript, message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := responder.Reply(ctx, message)
		if err != nil {
			reply = "Sorry, I could not answer that right now. Please try again."
		}
		transcript.Append(chat.SenderBot, reply)
		return chatReplyMsg{text: reply}
	}
}
