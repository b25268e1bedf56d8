package utils

import (
	"errors"
	"html"
	"reflect"
	"regexp"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/truemail-rb/truemail-go"
)

const sanitizeTag = "sanitize"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)

type Validator struct {
	Validate    *validator.Validate
	VerifyEmail func(email string) bool
	policy      *bluemonday.Policy
}

var (
	instance      *Validator
	instanceOnce  sync.Once
	configuration *truemail.Configuration
)

// ConfigureEmailVerification enables the MX check of registration emails.
// It has to be called before the first call to GetValidator.
func ConfigureEmailVerification(enabled bool, verifierEmail string) error {
	if !enabled {
		configuration = nil
		return nil
	}

	cfg, err := truemail.NewConfiguration(truemail.ConfigurationAttr{
		VerifierEmail:         verifierEmail,
		ValidationTypeDefault: "mx",
		SmtpFailFast:          true,
	})
	if err != nil {
		return err
	}
	configuration = cfg

	return nil
}

func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = &Validator{
			Validate:    validator.New(validator.WithRequiredStructEnabled()),
			VerifyEmail: validateEmail,
			policy:      bluemonday.StrictPolicy(),
		}

		registerCustomValidators(instance.Validate)
	})

	return instance
}

func validateEmail(email string) bool {
	if configuration == nil {
		return true
	}
	return truemail.IsValid(email, configuration)
}

// SanitizeData strips all markup from string fields tagged with sanitize:"strict".
// Plain strings, string pointers and string slices are supported.
// The remaining text is stored unescaped, escaping is up to whoever renders it.
func (v *Validator) SanitizeData(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return errors.New("sanitize expects a pointer to a struct")
	}

	value = value.Elem()
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Tag.Get(sanitizeTag) != "strict" {
			continue
		}

		field := value.Field(i)
		switch {
		case field.Kind() == reflect.String:
			field.SetString(v.sanitize(field.String()))
		case field.Kind() == reflect.Ptr && !field.IsNil() && field.Elem().Kind() == reflect.String:
			field.Elem().SetString(v.sanitize(field.Elem().String()))
		case field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.String:
			for j := 0; j < field.Len(); j++ {
				field.Index(j).SetString(v.sanitize(field.Index(j).String()))
			}
		}
	}

	return nil
}

func (v *Validator) sanitize(value string) string {
	return html.UnescapeString(v.policy.Sanitize(value))
}

func registerCustomValidators(v *validator.Validate) {
	err := v.RegisterValidation("username_validation", usernameValidation)
	if err != nil {
		return
	}

	err = v.RegisterValidation("password_validation", passwordValidation)
	if err != nil {
		return
	}

	err = v.RegisterValidation("date_validation", dateValidation)
	if err != nil {
		return
	}
}

func usernameValidation(fl validator.FieldLevel) bool {
	// a-z, A-Z, 0-9, ., - and _
	return usernamePattern.MatchString(fl.Field().String())
}

func passwordValidation(fl validator.FieldLevel) bool {
	var upperLetter, lowerLetter, number bool

	value := fl.Field().String()
	for _, r := range value {
		if r > unicode.MaxASCII {
			return false
		}

		switch {
		case unicode.IsUpper(r):
			upperLetter = true
		case unicode.IsLower(r):
			lowerLetter = true
		case unicode.IsNumber(r):
			number = true
		}
	}

	return upperLetter && lowerLetter && number
}

// dateValidation accepts an empty value so optional dates can be cleared.
func dateValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := ParseDate(value)
	return err == nil
}
