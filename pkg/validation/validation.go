package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

const (
	seasonTag  = "season"
	seasonText = "{0} must be one of Spring, Summer or Fall"
)

// Validator bundles the struct validator with its English translator.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	validate := validator.New()
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(seasonTag, func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "Spring", "Summer", "Fall":
			return true
		}
		return false
	})
	_ = validate.RegisterTranslation(seasonTag, translator,
		func(t ut.Translator) error { return t.Add(seasonTag, seasonText, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(seasonTag, fe.Field())
			return s
		},
	)

	return &Validator{validate: validate, translator: translator}
}

// Engine exposes the underlying validator for callers that need the raw API.
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Struct validates req and converts failures into a VALIDATION_ERROR carrying per-field messages.
func (v *Validator) Struct(req interface{}, message string) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	appErr := appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		appErr.Fields = make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			appErr.Fields[fe.Field()] = fe.Translate(v.translator)
		}
	}
	return appErr
}
