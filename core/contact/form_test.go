package contact

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arlahanmanthrao1/school/core"
)

var validSubmission = Submission{
	Name:    "Jane Doe",
	Email:   "jane@example.com",
	Subject: "Tour",
	Message: "Can we visit?",
}

func newTestForm(t *testing.T) (*Form, *RelayMock, *NoticeBox) {
	t.Helper()
	relay := NewRelayMock()
	box := new(NoticeBox)
	deps := NewTestDeps(relay)
	deps.Notifier = box
	return NewForm("test-form", deps), relay, box
}

func fill(t *testing.T, f *Form, sub Submission) {
	t.Helper()
	require.NoError(t, f.SetAll(sub))
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *core.ValidationError
	require.True(t, errors.As(err, &vErr), "want *core.ValidationError, got %T: %v", err, err)
	return vErr.FieldMap()
}

func TestForm_Submit_emptyField(t *testing.T) {
	for _, field := range Fields {
		field := field
		t.Run(string(field), func(t *testing.T) {
			f, relay, box := newTestForm(t)
			fill(t, f, validSubmission)
			require.NoError(t, f.Set(field, ""))

			err := f.Submit(context.Background())

			flds := validationFields(t, err)
			assert.Len(t, flds, 1)
			assert.Contains(t, flds, string(field))
			assert.Equal(t, 0, relay.Calls())
			assert.Equal(t, StateEditing, f.State())
			_, ok := f.Errors().Lookup(field)
			assert.True(t, ok)
			_, ok = box.Take()
			assert.False(t, ok, "no notice on validation errors")
		})
	}
}

func TestForm_Submit_blankFieldsAreTrimmed(t *testing.T) {
	f, relay, _ := newTestForm(t)
	fill(t, f, Submission{Name: "   ", Email: " \t", Subject: "\n", Message: "  "})

	flds := validationFields(t, f.Submit(context.Background()))

	assert.Equal(t, map[string]string{
		"name":    "Name is required",
		"email":   "Please enter a valid email",
		"subject": "Subject is required",
		"message": "Message is required",
	}, flds)
	assert.Equal(t, 0, relay.Calls())
}

func TestForm_Submit_invalidEmail(t *testing.T) {
	f, relay, _ := newTestForm(t)
	sub := validSubmission
	sub.Email = "not-an-email"
	fill(t, f, sub)

	flds := validationFields(t, f.Submit(context.Background()))

	assert.Equal(t, map[string]string{"email": "Please enter a valid email"}, flds)
	assert.Equal(t, FieldErrors{FieldEmail: "Please enter a valid email"}, f.Errors())
	assert.Equal(t, 0, relay.Calls())
}

func TestForm_Submit_lengths(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		value   string
		wantErr bool
	}{
		{name: "message 1000", field: FieldMessage, value: strings.Repeat("a", 1000)},
		{name: "message 1001", field: FieldMessage, value: strings.Repeat("a", 1001), wantErr: true},
		{name: "message 1000 + padding", field: FieldMessage, value: "  " + strings.Repeat("a", 1000) + "  "},
		{name: "message 1000 multibyte", field: FieldMessage, value: strings.Repeat("é", 1000)},
		{name: "name 100", field: FieldName, value: strings.Repeat("n", 100)},
		{name: "name 101", field: FieldName, value: strings.Repeat("n", 101), wantErr: true},
		{name: "subject 200", field: FieldSubject, value: strings.Repeat("s", 200)},
		{name: "subject 201", field: FieldSubject, value: strings.Repeat("s", 201), wantErr: true},
		{name: "email 256", field: FieldEmail, value: strings.Repeat("e", 244) + "@example.com", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, relay, _ := newTestForm(t)
			fill(t, f, validSubmission)
			require.NoError(t, f.Set(tt.field, tt.value))

			err := f.Submit(context.Background())
			if tt.wantErr {
				flds := validationFields(t, err)
				assert.Len(t, flds, 1)
				assert.Contains(t, flds, string(tt.field))
				assert.Equal(t, 0, relay.Calls())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, relay.Calls())
		})
	}
}

func TestForm_Submit_success(t *testing.T) {
	f, relay, box := newTestForm(t)
	fill(t, f, validSubmission)

	require.NoError(t, f.Submit(context.Background()))

	reqs := relay.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, RelayRequest{
		ServiceID:  "service_test",
		TemplateID: "contact",
		PublicKey:  "public_test",
		Submission: validSubmission,
	}, reqs[0])
	assert.Equal(t, Submission{}, f.Values())
	assert.Empty(t, f.Errors())
	assert.Equal(t, StateEditing, f.State())

	n, ok := box.Take()
	require.True(t, ok)
	assert.Equal(t, sentNotice, n)
	assert.Equal(t, "We'll get back to you within 24 hours.", n.Description)
}

func TestForm_Submit_sendsTrimmedValues(t *testing.T) {
	f, relay, _ := newTestForm(t)
	fill(t, f, Submission{Name: "  Jane Doe ", Email: " jane@example.com", Subject: "Tour\n", Message: "\tCan we visit?"})

	require.NoError(t, f.Submit(context.Background()))

	reqs := relay.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, validSubmission, reqs[0].Submission)
}

func TestForm_Submit_failureKeepsValues(t *testing.T) {
	f, relay, box := newTestForm(t)
	relay.FailWith(errors.New("relay unavailable"))
	fill(t, f, validSubmission)

	err := f.Submit(context.Background())

	var sErr *SubmissionError
	require.True(t, errors.As(err, &sErr))
	assert.EqualError(t, errors.Cause(err), "relay unavailable")
	assert.Equal(t, validSubmission, f.Values())
	assert.Equal(t, StateEditing, f.State())
	n, ok := box.Take()
	require.True(t, ok)
	assert.Equal(t, failedNotice, n)

	// manual retry with unchanged input
	relay.FailWith(nil)
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, 2, relay.Calls())
	assert.Equal(t, Submission{}, f.Values())
	n, ok = box.Take()
	require.True(t, ok)
	assert.Equal(t, NoticeSuccess, n.Kind)
}

func TestForm_Submit_inFlight(t *testing.T) {
	f, relay, _ := newTestForm(t)
	fill(t, f, validSubmission)
	started, release := relay.Hold()
	defer release()

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("relay was never called")
	}
	assert.Equal(t, StateSubmitting, f.State())

	assert.Equal(t, ErrSubmitInFlight, f.Submit(context.Background()))
	assert.Equal(t, ErrSubmitInFlight, f.Set(FieldName, "John"))
	assert.Equal(t, 1, relay.Calls())

	release()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("submit never returned")
	}
	assert.Equal(t, 1, relay.Calls())
	assert.Equal(t, StateEditing, f.State())
}

func TestForm_Submit_awaitsRelayDespiteCancel(t *testing.T) {
	f, relay, box := newTestForm(t)
	fill(t, f, validSubmission)
	started, release := relay.Hold()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Submit(ctx) }()
	<-started
	cancel()
	release()

	assert.NoError(t, <-done)
	n, ok := box.Take()
	require.True(t, ok)
	assert.Equal(t, NoticeSuccess, n.Kind)
}

func TestForm_Set(t *testing.T) {
	f, _, _ := newTestForm(t)

	// every field invalid
	_ = f.Submit(context.Background())
	require.Len(t, f.Errors(), 4)

	// editing a field clears its error only
	require.NoError(t, f.Set(FieldEmail, "j"))
	errs := f.Errors()
	assert.Len(t, errs, 3)
	_, ok := errs.Lookup(FieldEmail)
	assert.False(t, ok)
	msg, ok := errs.Lookup(FieldName)
	assert.True(t, ok)
	assert.Equal(t, "Name is required", msg)

	// no re-validation on edit
	assert.Equal(t, "j", f.Values().Email)

	err := f.Set(Field("phone"), "123")
	var argErr *core.ArgumentError
	assert.True(t, errors.As(err, &argErr))
}
