package service

import "bariatric-gpt/backend/internal/model"

// Conversation log management: two bounded FIFO sequences of depth
// model.LogWindow. Existing entries are never reordered; the oldest entry
// is evicted first when the window overflows.

// NormalizeLog clamps an incoming log to the window, tolerating malformed
// input (over-long sequences, nil) by keeping only the most recent
// entries instead of failing.
func NormalizeLog(log *model.ConversationLog) *model.ConversationLog {
	if log == nil {
		return &model.ConversationLog{
			RecentUserPrompts:        []string{},
			RecentAssistantResponses: []string{},
		}
	}
	return &model.ConversationLog{
		RecentUserPrompts:        clampWindow(log.RecentUserPrompts),
		RecentAssistantResponses: clampWindow(log.RecentAssistantResponses),
	}
}

// AppendTurn records the turn's preprocessed user message and plain-text
// response, evicting from the front when a sequence exceeds the window.
func AppendTurn(log *model.ConversationLog, userMessage, assistantResponse string) *model.ConversationLog {
	normalized := NormalizeLog(log)
	normalized.RecentUserPrompts = clampWindow(append(normalized.RecentUserPrompts, userMessage))
	normalized.RecentAssistantResponses = clampWindow(append(normalized.RecentAssistantResponses, assistantResponse))
	return normalized
}

// lastAssistantResponse returns the most recent assistant response, or ""
// when the log is empty.
func lastAssistantResponse(log *model.ConversationLog) string {
	if log == nil || len(log.RecentAssistantResponses) == 0 {
		return ""
	}
	return log.RecentAssistantResponses[len(log.RecentAssistantResponses)-1]
}

func clampWindow(entries []string) []string {
	if entries == nil {
		return []string{}
	}
	if len(entries) > model.LogWindow {
		return entries[len(entries)-model.LogWindow:]
	}
	return entries
}
