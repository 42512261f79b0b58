package events

import (
	"sync"

	"github.com/formlab/formlab/types"
	"github.com/google/uuid"
)

// RecordingPublisher implements types.ToastPublisher for testing. It records
// every event in order and tracks which loading handles were dismissed.
type RecordingPublisher struct {
	mu        sync.Mutex
	events    []types.ToastEvent
	dismissed map[string]bool
}

// NewRecordingPublisher creates a recording publisher for tests.
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{dismissed: make(map[string]bool)}
}

func (r *RecordingPublisher) record(e types.ToastEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *RecordingPublisher) Success(message string) {
	r.record(types.ToastEvent{Type: types.ToastSuccess, Message: message})
}

func (r *RecordingPublisher) Error(message string) {
	r.record(types.ToastEvent{Type: types.ToastError, Message: message})
}

func (r *RecordingPublisher) Loading(message string) string {
	handle := uuid.New().String()
	r.record(types.ToastEvent{Type: types.ToastLoading, Message: message, Handle: handle})
	return handle
}

func (r *RecordingPublisher) Dismiss(handle string) {
	r.mu.Lock()
	r.dismissed[handle] = true
	r.mu.Unlock()
	r.record(types.ToastEvent{Type: types.ToastDismiss, Handle: handle})
}

// Events returns a copy of the recorded events in publication order.
func (r *RecordingPublisher) Events() []types.ToastEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.ToastEvent, len(r.events))
	copy(out, r.events)
	return out
}

// EventsOfType returns recorded events matching the given type.
func (r *RecordingPublisher) EventsOfType(t types.ToastType) []types.ToastEvent {
	var out []types.ToastEvent
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Dismissed reports whether the given loading handle was dismissed.
func (r *RecordingPublisher) Dismissed(handle string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dismissed[handle]
}

// NopPublisher discards all events. Useful where no UI is attached.
type NopPublisher struct{}

func (NopPublisher) Success(string) {}

func (NopPublisher) Error(string) {}

func (NopPublisher) Loading(string) string { return uuid.New().String() }

func (NopPublisher) Dismiss(string) {}
