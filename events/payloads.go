package events

import (
	"encoding/json"
	"time"
)

// EventPayload is the interface all typed payloads implement.
type EventPayload interface {
	EventType() EventType
}

// ExecutionStartedPayload is emitted just before a skill body runs.
type ExecutionStartedPayload struct {
	ExecutionID string         `json:"execution_id"`
	SkillName   string         `json:"skill_name"`
	Arguments   map[string]any `json:"arguments,omitempty"`
}

func (ExecutionStartedPayload) EventType() EventType { return EventExecutionStarted }

// ExecutionCompletedPayload is emitted after a skill body returns, whatever
// the outcome.
type ExecutionCompletedPayload struct {
	ExecutionID string        `json:"execution_id"`
	SkillName   string        `json:"skill_name"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration"`
}

func (ExecutionCompletedPayload) EventType() EventType { return EventExecutionCompleted }

// NewTypedEvent wraps a typed payload into an Event.
func NewTypedEvent(source EventSource, payload EventPayload) Event {
	return Event{
		ID:        generateEventID(),
		Type:      payload.EventType(),
		Timestamp: time.Now(),
		Source:    source,
		Payload:   toMap(payload),
	}
}

func toMap(v any) map[string]any {
	var result map[string]any
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return result
}

// ExtractPayload decodes an event's payload back into its typed form.
func ExtractPayload[T EventPayload](e Event) (T, bool) {
	var result T
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return result, false
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, false
	}
	return result, true
}

// GetExecutionStartedPayload extracts an ExecutionStartedPayload.
func GetExecutionStartedPayload(e Event) (ExecutionStartedPayload, bool) {
	return ExtractPayload[ExecutionStartedPayload](e)
}

// GetExecutionCompletedPayload extracts an ExecutionCompletedPayload.
func GetExecutionCompletedPayload(e Event) (ExecutionCompletedPayload, bool) {
	return ExtractPayload[ExecutionCompletedPayload](e)
}
