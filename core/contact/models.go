package contact

import (
	"github.com/Arlahanmanthrao1/school/core"
)

// Form fields
const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

type (
	Field string

	// Submission is what a visitor fills in on the contact page.
	Submission struct {
		Name    string `json:"name" form:"name" validate:"notblank,max=100"`
		Email   string `json:"email" form:"email" validate:"required,email,max=255"`
		Subject string `json:"subject" form:"subject" validate:"notblank,max=200"`
		Message string `json:"message" form:"message" validate:"notblank,max=1000"`
	}

	// FieldErrors holds at most one message per field; a missing key means "no error".
	FieldErrors map[Field]string
)

var _ core.Person = Submission{}

func (f Field) Valid() bool {
	for _, fld := range Fields {
		if f == fld {
			return true
		}
	}
	return false
}

// Clean returns a copy of s with every field trimmed.
func (s Submission) Clean() Submission {
	return Submission{
		Name:    core.CleanString(s.Name),
		Email:   core.CleanString(s.Email),
		Subject: core.CleanString(s.Subject),
		Message: core.CleanString(s.Message),
	}
}

func (s Submission) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldSubject:
		return s.Subject
	case FieldMessage:
		return s.Message
	}
	return ""
}

func (s *Submission) set(f Field, value string) {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldSubject:
		s.Subject = value
	case FieldMessage:
		s.Message = value
	}
}

// Params returns the values keyed by field name, as sent to template based relays.
func (s Submission) Params() map[string]string {
	params := make(map[string]string, len(Fields))
	for _, f := range Fields {
		params[string(f)] = s.Get(f)
	}
	return params
}

// Person implements core.Person so that failures can be traced back to the visitor.
func (s Submission) Person() (id, username, email string) {
	email = core.CleanString(s.Email, true /* lower */)
	return email, core.CleanString(s.Name), email
}

func (fe FieldErrors) Lookup(f Field) (string, bool) {
	msg, ok := fe[f]
	return msg, ok
}

func (fe FieldErrors) clone() FieldErrors {
	c := make(FieldErrors, len(fe))
	for f, msg := range fe {
		c[f] = msg
	}
	return c
}

func fieldErrorsFrom(err *core.ValidationError) FieldErrors {
	fe := make(FieldErrors, len(err.Fields))
	for _, fErr := range err.Fields {
		fe[Field(fErr.Field)] = fErr.Error
	}
	return fe
}
