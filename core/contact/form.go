package contact

import (
	"context"
	"fmt"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
)

// Form states
const (
	StateEditing State = iota
	StateSubmitting
)

var ErrSubmitInFlight = errors.New("a submission is already in flight")

type (
	State int

	// SubmissionError is returned when the relay failed to deliver a valid submission.
	// The form keeps its values so that the visitor can retry.
	SubmissionError struct {
		Err error
	}

	FormDeps struct {
		Relay      Relay
		RelayConf  RelayConfig
		Notifier   Notifier
		Validate   *validator.Validate
		Translator ut.Translator
		Logger     core.Logger
	}

	// Form is one mounted contact form: its field values, field errors & send state.
	// At most one relay call is in flight per Form.
	Form struct {
		id   string
		deps FormDeps

		mu     sync.Mutex
		state  State
		values Submission
		errors FieldErrors
	}
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (err *SubmissionError) Error() string {
	return "sending contact message: " + err.Err.Error()
}

func (err *SubmissionError) Unwrap() error { return err.Err }
func (err *SubmissionError) Cause() error  { return err.Err }

func NewForm(id string, deps FormDeps) *Form {
	return &Form{
		id:     id,
		deps:   deps,
		errors: make(FieldErrors),
	}
}

func (f *Form) ID() string { return f.id }

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns the raw (untrimmed) field values.
func (f *Form) Values() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.clone()
}

// Set edits one field and clears that field's error only.
func (f *Form) Set(field Field, value string) error {
	if !field.Valid() {
		return core.NewArgumentError(fmt.Sprintf("unknown field %q", field))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	f.values.set(field, value)
	delete(f.errors, field)
	return nil
}

// SetAll edits every field, as if the visitor typed each of them.
func (f *Form) SetAll(sub Submission) error {
	for _, field := range Fields {
		if err := f.Set(field, sub.Get(field)); err != nil {
			return err
		}
	}
	return nil
}

// Submit validates the form and, when valid, sends it through the relay.
//
// It returns a *core.ValidationError (nothing sent), ErrSubmitInFlight (nothing sent),
// a *SubmissionError (values kept) or nil (values cleared).
// Once started, the relay call is awaited even if ctx gets cancelled.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	sub := f.values.Clean()
	if err := sub.Validate(f.deps.Validate, f.deps.Translator); err != nil {
		if vErr, ok := err.(*core.ValidationError); ok {
			f.errors = fieldErrorsFrom(vErr)
		}
		f.mu.Unlock()
		return err
	}
	f.errors = make(FieldErrors)
	f.state = StateSubmitting
	f.mu.Unlock()

	err := f.send(context.WithoutCancel(ctx), sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateEditing
	if err != nil {
		f.deps.Logger.Warn(fmt.Sprintf("contact form %s: relay send failed: %v", f.id, err), err, sub)
		f.notify(failedNotice)
		return &SubmissionError{Err: err}
	}
	f.values = Submission{}
	f.errors = make(FieldErrors)
	f.notify(sentNotice)
	return nil
}

func (f *Form) send(ctx context.Context, sub Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("relay panicked: %v", r)
		}
	}()
	return f.deps.Relay.Send(ctx, f.deps.RelayConf.request(sub))
}

func (f *Form) notify(n Notice) {
	if f.deps.Notifier != nil {
		f.deps.Notifier.Notify(n)
	}
}
