// Package processor answers assistant chat prompts with canned replies
// chosen by keyword.
package processor

import (
	"agent-server/internal/observability"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message is required")

type Topic string

const (
	TopicAnalysis Topic = "analysis"
	TopicEmail    Topic = "email"
	TopicTips     Topic = "tips"
	TopicMarket   Topic = "market"
	TopicHelp     Topic = "help"
)

const RoleAssistant = "assistant"

// routes are checked in order; the first keyword hit wins.
var routes = []struct {
	keywords []string
	topic    Topic
	reply    string
}{
	{[]string{"analyz", "performance"}, TopicAnalysis, analysisReply},
	{[]string{"email", "draft"}, TopicEmail, emailReply},
	{[]string{"tip", "conversion"}, TopicTips, tipsReply},
	{[]string{"market", "trend"}, TopicMarket, marketReply},
}

type QuickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Topic     Topic     `json:"topic,omitempty"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Prompts is what the chat page shows before the first message.
type Prompts struct {
	Greeting     Message       `json:"greeting"`
	Suggested    []string      `json:"suggested"`
	QuickActions []QuickAction `json:"quick_actions"`
}

type AssistantProcessor struct {
	logger *observability.Logger
	now    func() time.Time
}

func New(logger *observability.Logger) AssistantProcessor {
	return AssistantProcessor{
		logger: logger,
		now:    time.Now,
	}
}

// Route picks the topic and reply for a prompt, case-insensitively.
func Route(prompt string) (Topic, string) {
	lower := strings.ToLower(prompt)
	for _, r := range routes {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.topic, r.reply
			}
		}
	}
	return TopicHelp, helpReply
}

func (p *AssistantProcessor) Reply(ctx context.Context, prompt string) (Message, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Message{}, ErrEmptyMessage
	}

	topic, reply := Route(prompt)
	ctx = observability.WithFields(ctx, observability.Field{Key: "topic", Value: string(topic)})
	p.logger.Info(ctx, "assistant replied")

	return Message{
		ID:        uuid.New(),
		Role:      RoleAssistant,
		Topic:     topic,
		Content:   reply,
		Timestamp: p.now().UTC(),
	}, nil
}

func (p *AssistantProcessor) Prompts() Prompts {
	suggested := make([]string, len(suggestedPrompts))
	copy(suggested, suggestedPrompts)
	actions := make([]QuickAction, len(quickActions))
	copy(actions, quickActions)

	return Prompts{
		Greeting: Message{
			ID:        uuid.New(),
			Role:      RoleAssistant,
			Content:   greeting,
			Timestamp: p.now().UTC(),
		},
		Suggested:    suggested,
		QuickActions: actions,
	}
}
