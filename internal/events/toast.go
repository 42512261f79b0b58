package events

import (
	"fmt"

	"github.com/formlab/formlab/types"
)

// Helper functions mirroring the toast facade the forms use. They wrap any
// types.ToastPublisher with the default message conventions.

// FormSuccess emits the post-submit success toast, preferring a custom
// message when the API supplied one.
func FormSuccess(p types.ToastPublisher, formName, customMessage string) {
	if customMessage == "" {
		customMessage = fmt.Sprintf("%s submitted successfully!", formName)
	}
	p.Success(customMessage)
}

// FormError emits the post-submit failure toast, preferring a custom message
// when the API supplied one.
func FormError(p types.ToastPublisher, formName, customMessage string) {
	if customMessage == "" {
		customMessage = fmt.Sprintf("Failed to submit %s. Please try again.", formName)
	}
	p.Error(customMessage)
}

// Submitting emits the loading toast shown while a submission is in flight
// and returns its handle.
func Submitting(p types.ToastPublisher, formName string) string {
	return p.Loading(fmt.Sprintf("Submitting %s...", formName))
}

// ValidationError emits the blocked-by-validation toast.
func ValidationError(p types.ToastPublisher, message string) {
	if message == "" {
		message = "Please fix the errors below"
	}
	p.Error(message)
}

// NetworkError emits the generic unexpected-failure toast.
func NetworkError(p types.ToastPublisher) {
	p.Error("Network error. Please check your connection and try again.")
}
