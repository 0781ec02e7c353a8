// Package registration drives the three-step provider sign-up wizard: it
// owns the draft, tracks which fields the user has touched, derives the
// visible error map, gates step navigation and submits the finished draft
// exactly once.
package registration

import (
	"context"
	"errors"
	"sync"

	"fixnow/models"
	"fixnow/utils"

	"go.uber.org/zap"
)

// Status is the wizard's lifecycle state.
type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
)

var (
	// ErrSubmitInProgress guards against a second submission racing an
	// in-flight one.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrAlreadySucceeded is returned once the wizard reached its terminal
	// state; the caller is expected to navigate away.
	ErrAlreadySucceeded = errors.New("registration already succeeded")
	// ErrValidationFailed means local validation blocked the submission;
	// details are in Errors().
	ErrValidationFailed = errors.New("form validation failed")
)

// RegistrationClient is the backend call the wizard makes on submit.
type RegistrationClient interface {
	CreateProvider(ctx context.Context, form models.ProviderForm, role string) error
}

// Engine is the wizard state machine. It is the sole owner of the draft,
// the touched set and the error map for one registration attempt.
type Engine struct {
	mu sync.Mutex

	client RegistrationClient

	form    models.ProviderForm
	touched map[Field]bool
	step    Step
	status  Status

	// submissionErr holds the backend's message from the last failed
	// submission, verbatim.
	submissionErr string
}

// NewEngine starts a fresh wizard at step 1 with an empty draft.
func NewEngine(client RegistrationClient) *Engine {
	return &Engine{
		client:  client,
		touched: make(map[Field]bool),
		step:    StepPersonalInfo,
		status:  StatusEditing,
	}
}

// UpdateField sets one field of the draft and marks it touched. The value
// must carry the field's type; unknown fields and mistyped values are
// rejected.
func (e *Engine) UpdateField(field Field, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case FieldFullName, FieldPhoneNumber, FieldEmail, FieldPassword,
		FieldConfirmPassword, FieldBusinessName, FieldDescription,
		FieldExperience, FieldAddress, FieldAvailableHours:
		s, ok := value.(string)
		if !ok {
			return ErrInvalidValue
		}
		e.setString(field, s)
	case FieldServiceTypes:
		types, ok := value.([]models.ServiceType)
		if !ok {
			return ErrInvalidValue
		}
		e.form.ServiceTypes = types
	case FieldHourlyRate, FieldLatitude, FieldLongitude:
		f, ok := value.(float64)
		if !ok {
			return ErrInvalidValue
		}
		e.setFloat(field, f)
	case FieldEmergencySupport:
		b, ok := value.(bool)
		if !ok {
			return ErrInvalidValue
		}
		e.form.EmergencySupport = b
	default:
		return ErrUnknownField
	}

	e.touched[field] = true
	return nil
}

func (e *Engine) setString(field Field, s string) {
	switch field {
	case FieldFullName:
		e.form.FullName = s
	case FieldPhoneNumber:
		e.form.PhoneNumber = s
	case FieldEmail:
		e.form.Email = s
	case FieldPassword:
		e.form.Password = s
	case FieldConfirmPassword:
		e.form.ConfirmPassword = s
	case FieldBusinessName:
		e.form.BusinessName = s
	case FieldDescription:
		e.form.Description = s
	case FieldExperience:
		e.form.Experience = s
	case FieldAddress:
		e.form.Address = s
	case FieldAvailableHours:
		e.form.AvailableHours = s
	}
}

func (e *Engine) setFloat(field Field, f float64) {
	switch field {
	case FieldHourlyRate:
		e.form.HourlyRate = f
	case FieldLatitude:
		e.form.Latitude = f
	case FieldLongitude:
		e.form.Longitude = f
	}
}

// Errors derives the visible error map from the draft and the touched set.
// A field the user has never interacted with never surfaces an error.
func (e *Engine) Errors() map[Field]string {
	e.mu.Lock()
	defer e.mu.Unlock()

	errs := make(map[Field]string)
	for _, f := range validatedFields {
		if !e.touched[f] {
			continue
		}
		if msg := ValidateField(f, e.form); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

// Advance touches the current step's fields and, if they all validate,
// moves forward. On the last step it submits instead. An invalid step keeps
// the wizard where it is with the errors now visible.
func (e *Engine) Advance(ctx context.Context) error {
	e.mu.Lock()
	switch e.status {
	case StatusSubmitting:
		e.mu.Unlock()
		return ErrSubmitInProgress
	case StatusSucceeded:
		e.mu.Unlock()
		return ErrAlreadySucceeded
	}

	for _, f := range e.step.Fields() {
		e.touched[f] = true
	}
	if !ValidateStep(e.step, e.form) {
		e.mu.Unlock()
		return nil
	}
	if e.step < StepLocationAvailability {
		e.step++
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()
	return e.Submit(ctx)
}

// Retreat moves one step back. No validation applies; the floor is step 1.
func (e *Engine) Retreat() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step > StepPersonalInfo {
		e.step--
	}
}

// Submit touches every field, runs full validation and sends the draft to
// the backend tagged with the provider role. A backend rejection returns
// the wizard to the last step with the message preserved and the draft
// intact; success is terminal.
func (e *Engine) Submit(ctx context.Context) error {
	e.mu.Lock()
	switch e.status {
	case StatusSubmitting:
		e.mu.Unlock()
		return ErrSubmitInProgress
	case StatusSucceeded:
		e.mu.Unlock()
		return ErrAlreadySucceeded
	}

	for _, f := range validatedFields {
		e.touched[f] = true
	}
	if !ValidateForm(e.form) {
		e.mu.Unlock()
		return ErrValidationFailed
	}

	e.status = StatusSubmitting
	e.submissionErr = ""
	form := e.form
	e.mu.Unlock()

	err := e.client.CreateProvider(ctx, form, models.RoleServiceProviders)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		utils.GetLogger().Warn("provider registration rejected", zap.Error(err))
		e.status = StatusEditing
		e.step = StepLocationAvailability
		e.submissionErr = err.Error()
		return err
	}
	e.status = StatusSucceeded
	return nil
}

// CurrentStep returns the active step.
func (e *Engine) CurrentStep() Step {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.step
}

// Status returns the wizard lifecycle state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// SubmissionError returns the backend's message from the last failed
// submission, or "" when none occurred.
func (e *Engine) SubmissionError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submissionErr
}

// Touched reports whether the user has interacted with the field.
func (e *Engine) Touched(field Field) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.touched[field]
}

// Form returns a copy of the current draft.
func (e *Engine) Form() models.ProviderForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// StepValid reports whether the given step currently validates, regardless
// of touched state. UIs use this to enable the Next button.
func (e *Engine) StepValid(step Step) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ValidateStep(step, e.form)
}
