package chat

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Responder produces the assistant's reply to a guest message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// RuleResponder answers from a small set of keyword rules. It needs no
// network and is the default when no LLM is configured.
type RuleResponder struct{}

// Reply matches the guest's message against the known topics.
func (RuleResponder) Reply(_ context.Context, message string) (string, error) {
	reply := "I'd be happy to help you with your order! "
	lowered := strings.ToLower(message)

	switch {
	case strings.Contains(lowered, "menu"):
		reply += "Would you like me to see our menu? We have burgers, salads, pizza, seafood, and desserts."
	case strings.Contains(lowered, "burger"):
		reply += "Great choice! Our Classic Burger is very popular - a juicy beef patty with lettuce, tomato, onion, and our special sauce."
	case strings.Contains(lowered, "pizza"):
		reply += "Our Margherita Pizza is delicious! Fresh mozzarella, tomato sauce, and basil on thin crust."
	case strings.Contains(lowered, "price"), strings.Contains(lowered, "cost"):
		reply += "Our menu items range from beverages up to our premium dishes. Would you like to see the full menu?"
	case strings.Contains(lowered, "delivery"):
		reply += "Yes, we offer delivery! If you'd like to place an order for delivery, I can help you with that."
	default:
		reply += "Let me help you find something delicious. Are you looking for something specific, or would you like me to recommend some popular items?"
	}
	return reply, nil
}

const assistantPrompt = "You are a friendly restaurant ordering assistant. " +
	"Help the guest choose dishes from the menu and answer questions about " +
	"delivery, prices and ingredients. Keep replies short.\n\nGuest: %s"

// LLMResponder answers through a language model.
type LLMResponder struct {
	model llms.Model
}

// NewLLMResponder wraps a langchaingo model.
func NewLLMResponder(model llms.Model) *LLMResponder {
	return &LLMResponder{model: model}
}

// Reply asks the model for a response to the guest's message.
func (r *LLMResponder) Reply(ctx context.Context, message string) (string, error) {
	prompt := strings.Replace(assistantPrompt, "%s", message, 1)
	return llms.GenerateFromSinglePrompt(ctx, r.model, prompt)
}
