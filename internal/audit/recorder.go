package audit

import (
	"log/slog"

	"github.com/lmeynard/skillkit/events"
)

// Recorder subscribes to execution-completed events and persists them.
type Recorder struct {
	store       *Store
	unsubscribe func()
}

// NewRecorder attaches a recorder to the bus.
func NewRecorder(bus *events.Bus, store *Store) *Recorder {
	r := &Recorder{store: store}
	r.unsubscribe = bus.Subscribe(r.handleEvent, events.EventExecutionCompleted)
	return r
}

// Close unsubscribes the recorder from the event bus.
func (r *Recorder) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}
}

func (r *Recorder) handleEvent(e events.Event) {
	payload, ok := events.GetExecutionCompletedPayload(e)
	if !ok {
		return
	}

	err := r.store.Record(Entry{
		ID:         payload.ExecutionID,
		Skill:      payload.SkillName,
		Success:    payload.Success,
		Error:      payload.Error,
		Duration:   payload.Duration,
		FinishedAt: e.Timestamp,
	})
	if err != nil {
		slog.Error("audit: record execution", "skill", payload.SkillName, "error", err)
	}
}
