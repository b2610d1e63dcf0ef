package Models

import (
	"strings"

	"Courier/validation"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// EmailRequest is the parsed field set of one send request.
type EmailRequest struct {
	To             string `validate:"required,emaillist" form:"to"`
	CC             string `validate:"omitempty,emaillist" form:"cc"`
	BCC            string `validate:"omitempty,emaillist" form:"bcc"`
	Subject        string `validate:"required" form:"subject"`
	Message        string `validate:"required" form:"message"`
	SenderEmail    string `validate:"required,email" form:"senderEmail"`
	SenderPassword string `validate:"required" form:"senderPassword"`
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

// fieldNames maps struct fields to the names users see on the form.
var fieldNames = map[string]string{
	"To":             "recipients",
	"CC":             "cc recipients",
	"BCC":            "bcc recipients",
	"Subject":        "subject",
	"Message":        "message",
	"SenderEmail":    "sender email",
	"SenderPassword": "sender password",
}

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("emaillist", func(fl validator.FieldLevel) bool {
		return validation.ValidateEmailList(fl.Field().String())
	})

	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")

	registerMessage("required", "{0} is required")
	registerMessage("email", "{0} must be a valid email address")
	registerMessage("emaillist", "{0} must contain at least one valid email address")
}

func registerMessage(tag, text string) {
	_ = validate.RegisterTranslation(tag, translator,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			name := fieldNames[fe.StructField()]
			if name == "" {
				name = fe.StructField()
			}
			msg, err := ut.T(tag, name)
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

// Validate checks the request and returns a single human-readable
// message covering every failed field.
func (r EmailRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewRequestError(KindValidation, err.Error())
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, fe.Translate(translator))
	}
	return NewRequestError(KindValidation, strings.Join(details, "; "))
}
