package types

// ApiResponse is the unified envelope returned by every simulated endpoint.
// Success=false responses may carry zero or more field-level errors that the
// submission workflow maps back onto the form. Warnings never originate from
// the API; only error-kind entries are applied.
type ApiResponse[T any] struct {
	Success bool                `json:"success"`
	Data    *T                  `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  []ValidationMessage `json:"errors,omitempty"`
}

// OK builds a success envelope with a payload.
func OK[T any](data T, message string) ApiResponse[T] {
	return ApiResponse[T]{Success: true, Data: &data, Message: message}
}

// OKMessage builds a success envelope without a payload.
func OKMessage[T any](message string) ApiResponse[T] {
	return ApiResponse[T]{Success: true, Message: message}
}

// Fail builds a failure envelope with optional field errors.
func Fail[T any](message string, errs ...ValidationMessage) ApiResponse[T] {
	return ApiResponse[T]{Success: false, Message: message, Errors: errs}
}

// FieldErrors returns the error-kind entries keyed by field. When a field
// appears more than once the last entry wins.
func (r ApiResponse[T]) FieldErrors() map[string]string {
	out := make(map[string]string)
	for _, e := range r.Errors {
		if e.Kind == MessageKindError {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Empty is the payload type for endpoints that return no data.
type Empty struct{}

// EmailAvailability is the payload of the ValidateEmail endpoint.
type EmailAvailability struct {
	Available bool `json:"available"`
}

// UploadResult is the payload of the UploadFile endpoint.
type UploadResult struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}
