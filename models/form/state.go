// Package form implements the runtime state of a mounted form: current
// values, per-field touched/error/warning maps, and the in-flight flag the
// submission workflow toggles around an API call.
package form

import (
	"reflect"
	"strings"
	"sync"
)

// State tracks one mounted form. Values are recomputed against the validator
// and warner on every update; both funcs may be nil. All methods are safe for
// concurrent use so a submission goroutine and UI updates can interleave.
type State[T any] struct {
	mu              sync.Mutex
	initial         T
	values          T
	touched         map[string]bool
	errors          map[string]string
	warnings        map[string]string
	isSubmitting    bool
	submitAttempted bool

	validate func(T) map[string]string
	warn     func(T) map[string]string
}

// FieldView is the per-field render state consumed by the presentation layer.
// An error suppresses the field's warning; neither shows before the field has
// been interacted with (or a submit was attempted).
type FieldView struct {
	Value          any
	HasError       bool
	ErrorMessage   string
	HasWarning     bool
	WarningMessage string
	Disabled       bool
}

// NewState creates form state with all-default values and no touched fields.
func NewState[T any](initial T, validate func(T) map[string]string, warn func(T) map[string]string) *State[T] {
	s := &State[T]{
		initial:  initial,
		values:   initial,
		validate: validate,
		warn:     warn,
	}
	s.resetLocked()
	return s
}

func (s *State[T]) resetLocked() {
	s.values = s.initial
	s.touched = make(map[string]bool)
	s.errors = make(map[string]string)
	s.warnings = make(map[string]string)
	s.isSubmitting = false
	s.submitAttempted = false
	s.revalidateLocked()
}

func (s *State[T]) revalidateLocked() {
	if s.validate != nil {
		s.errors = s.validate(s.values)
	}
	if s.warn != nil {
		s.warnings = s.warn(s.values)
	}
}

// Values returns the current form values.
func (s *State[T]) Values() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Update mutates the values through fn and revalidates. It models the
// on-change path of a form field.
func (s *State[T]) Update(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.values)
	s.revalidateLocked()
}

// Touch marks a field as interacted with (the on-blur path).
func (s *State[T]) Touch(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched[field] = true
}

// Touched reports whether the field has been interacted with.
func (s *State[T]) Touched(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched[field]
}

// Reset restores initial values and clears touched/errors/warnings and the
// submit flags. Used after a successful submission and on unmount.
func (s *State[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Errors returns a copy of the current field error map.
func (s *State[T]) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Warnings returns a copy of the current field warning map.
func (s *State[T]) Warnings() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.warnings))
	for k, v := range s.warnings {
		out[k] = v
	}
	return out
}

// HasErrors reports whether any blocking error is present.
func (s *State[T]) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errors) > 0
}

// SetFieldError sets a single field error, as when mapping server-side
// errors back onto the form.
func (s *State[T]) SetFieldError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[field] = message
}

// ApplyErrors merges a batch of field errors into the form.
func (s *State[T]) ApplyErrors(errs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for field, message := range errs {
		s.errors[field] = message
	}
}

// IsSubmitting reports the in-flight flag.
func (s *State[T]) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSubmitting
}

// TryBeginSubmit atomically sets the in-flight flag, returning false when a
// submission is already running. Gates duplicate submit attempts.
func (s *State[T]) TryBeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isSubmitting {
		return false
	}
	s.isSubmitting = true
	return true
}

// SetSubmitting sets the in-flight flag directly.
func (s *State[T]) SetSubmitting(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = v
}

// MarkSubmitAttempted records that the user tried to submit; every field then
// surfaces its error regardless of touched state.
func (s *State[T]) MarkSubmitAttempted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitAttempted = true
}

// SubmitAttempted reports whether a submit has been attempted.
func (s *State[T]) SubmitAttempted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitAttempted
}

// FieldState derives the render state for one field. The field name matches
// the struct's json tag. Errors take precedence over warnings; inputs are
// disabled while a submission is in flight.
func (s *State[T]) FieldState(field string) FieldView {
	s.mu.Lock()
	defer s.mu.Unlock()

	interacted := s.touched[field] || s.submitAttempted
	errMsg, hasErr := s.errors[field]
	warnMsg, hasWarn := s.warnings[field]

	view := FieldView{
		Value:    fieldValue(s.values, field),
		Disabled: s.isSubmitting,
	}
	if interacted && hasErr {
		view.HasError = true
		view.ErrorMessage = errMsg
		return view
	}
	if interacted && hasWarn {
		view.HasWarning = true
		view.WarningMessage = warnMsg
	}
	return view
}

// fieldValue looks a struct field up by its json tag.
func fieldValue(values any, field string) any {
	v := reflect.ValueOf(values)
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if name, _, _ := strings.Cut(tag, ","); name == field {
			return v.Field(i).Interface()
		}
	}
	return nil
}
