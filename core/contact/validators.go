package contact

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
)

var (
	errInvalidSubmission = errors.New("invalid contact submission")

	validEmailText = "Please enter a valid email"

	// messages shown next to the fields, by field & failed tag.
	// other failures fall back to the validator's english translations.
	fieldTexts = map[Field]map[string]string{
		FieldName:    {"notblank": "Name is required"},
		FieldEmail:   {"required": validEmailText, "email": validEmailText},
		FieldSubject: {"notblank": "Subject is required"},
		FieldMessage: {"notblank": "Message is required"},
	}
)

// Validate checks the (already cleaned) submission and reports one core.FieldError per invalid field.
func (s Submission) Validate(validate *validator.Validate, translator ut.Translator) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "validating submission")
	}

	flds := make([]core.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		flds = append(flds, core.FieldError{Field: fe.Field(), Error: translateFieldError(fe, translator)})
	}
	return core.NewValidationError(errInvalidSubmission, flds...)
}

func translateFieldError(fe validator.FieldError, translator ut.Translator) string {
	if texts, ok := fieldTexts[Field(fe.Field())]; ok {
		if text, ok := texts[fe.Tag()]; ok {
			return text
		}
	}
	return fe.Translate(translator)
}
