package types

// MessageKind distinguishes blocking errors from advisory warnings.
type MessageKind string

const (
	MessageKindError   MessageKind = "error"
	MessageKindWarning MessageKind = "warning"
)

// ValidationMessage is a field-level message produced by the validation layer
// or carried back in an API response. Errors block submission; warnings never do.
type ValidationMessage struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Kind    MessageKind `json:"type"`
}

// ErrorMessage builds an error-kind validation message.
func ErrorMessage(field, message string) ValidationMessage {
	return ValidationMessage{Field: field, Message: message, Kind: MessageKindError}
}

// WarningMessage builds a warning-kind validation message.
func WarningMessage(field, message string) ValidationMessage {
	return ValidationMessage{Field: field, Message: message, Kind: MessageKindWarning}
}
