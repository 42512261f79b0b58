package types

import "time"

// ToastType enumerates the notification event kinds.
type ToastType string

const (
	ToastSuccess ToastType = "TOAST_SUCCESS"
	ToastError   ToastType = "TOAST_ERROR"
	ToastLoading ToastType = "TOAST_LOADING"
	ToastDismiss ToastType = "TOAST_DISMISS"
)

// ToastEvent is a fire-and-forget notification consumed by a UI layer.
// Loading toasts carry a Handle and stay visible until a dismiss event
// referencing the same handle arrives. Multiple loading toasts may coexist
// with independent handles.
type ToastEvent struct {
	Type      ToastType `json:"type"`
	Message   string    `json:"message,omitempty"`
	Handle    string    `json:"handle,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ToastPublisher is the notification channel contract. Callers consume no
// return value except the loading handle. Dismissing a handle must not
// affect other concurrent notifications.
type ToastPublisher interface {
	Success(message string)
	Error(message string)
	Loading(message string) string
	Dismiss(handle string)
}
