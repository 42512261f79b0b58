package services

import (
	"context"

	apperrors "github.com/formlab/formlab/errors"
	"github.com/formlab/formlab/internal/events"
	"github.com/formlab/formlab/logger"
	"github.com/formlab/formlab/models/form"
	"github.com/formlab/formlab/types"
	"go.uber.org/zap"
)

// ErrSubmitInFlight is returned when a submission is attempted while an
// earlier one for the same form is still running.
var ErrSubmitInFlight = apperrors.NewConflictError("Submission already in progress", "")

// ErrValidationBlocked is returned when client-side validation stopped the
// submission before any endpoint call was made.
var ErrValidationBlocked = apperrors.ValidationFailed("Submission blocked by validation errors", "")

// SubmissionService drives the submit workflow for every form: the duplicate
// gate, the validation check, the loading toast around the endpoint call, and
// mapping the outcome back into toasts and field errors. Endpoint failures of
// any kind end in a toast, never in an error returned to the caller; only the
// two sentinel conditions above surface as errors.
type SubmissionService struct {
	log     *zap.SugaredLogger
	toasts  types.ToastPublisher
	metrics *metrics
}

// NewSubmissionService creates the workflow service publishing to the given
// toast sink.
func NewSubmissionService(toasts types.ToastPublisher) *SubmissionService {
	return &SubmissionService{
		log:     logger.GetLogger().Named("submission_service"),
		toasts:  toasts,
		metrics: newMetrics(),
	}
}

// Submit runs the full workflow for one form submission. It is a function
// rather than a method because methods cannot introduce type parameters.
//
// formName is the human-readable label used in toast messages ("Login",
// "Registration", ...). The endpoint receives the form's current values and
// returns the simulated API envelope.
func Submit[T any, R any](
	ctx context.Context,
	svc *SubmissionService,
	st *form.State[T],
	endpoint func(context.Context, T) (types.ApiResponse[R], error),
	formName string,
) error {
	if !st.TryBeginSubmit() {
		svc.log.Debugw("Duplicate submission ignored", "form", formName)
		return ErrSubmitInFlight
	}
	defer st.SetSubmitting(false)

	st.MarkSubmitAttempted()
	if st.HasErrors() {
		events.ValidationError(svc.toasts, "")
		svc.metrics.submissions.WithLabelValues(formName, submissionBlocked).Inc()
		return ErrValidationBlocked
	}

	handle := events.Submitting(svc.toasts, formName)
	resp, err := endpoint(ctx, st.Values())
	svc.toasts.Dismiss(handle)

	if err != nil {
		svc.log.Warnw("Submission endpoint error", "form", formName, "error", err)
		events.NetworkError(svc.toasts)
		svc.metrics.submissions.WithLabelValues(formName, submissionNetworkError).Inc()
		return nil
	}

	if !resp.Success {
		events.FormError(svc.toasts, formName, resp.Message)
		for field, message := range resp.FieldErrors() {
			st.SetFieldError(field, message)
		}
		svc.metrics.submissions.WithLabelValues(formName, submissionBusinessFail).Inc()
		return nil
	}

	events.FormSuccess(svc.toasts, formName, resp.Message)
	st.Reset()
	svc.log.Infow("Form submitted", "form", formName)
	svc.metrics.submissions.WithLabelValues(formName, submissionSuccess).Inc()
	return nil
}
