// Package validation checks request payloads and reports every violated field
// at once as a ValidationFailed domain error.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/server/http/dto"
)

const (
	tagNotBlank = "notblank"
	tagEmail    = "emailaddr"
	tagPast     = "past"
)

// Dotless domains such as "localhost" are accepted.
var emailPattern = regexp.MustCompile(
	`(?i)^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*` +
		`@([a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)*|\[[0-9.:a-f]+\])$`,
)

// Validator validates request DTOs.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
	loc      *time.Location
}

// New returns a Validator deciding "today" with the wall clock in loc.
func New(loc *time.Location) *Validator {
	return NewWithClock(time.Now, loc)
}

// NewWithClock returns a Validator using now as its clock.
func NewWithClock(now func() time.Time, loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now, loc: loc}

	v.validate.RegisterTagNameFunc(jsonName)
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(model.Date).Time()
	}, model.Date{})
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(dto.Optional[string]).Ptr()
	}, dto.Optional[string]{})
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(dto.Optional[model.Date]).Value()
		if !ok {
			return (*time.Time)(nil)
		}
		t := d.Time()
		return &t
	}, dto.Optional[model.Date]{})

	mustRegister(v.validate, tagNotBlank, validators.NotBlank)
	mustRegister(v.validate, tagEmail, validEmail)
	mustRegister(v.validate, tagPast, v.isPast)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates req. A failed validation yields a ValidationFailed domain
// error listing every violation under objectName.
func (v *Validator) Struct(objectName string, req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]domainErrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		code, message := describe(fe)
		violations = append(violations, domainErrors.FieldViolation{
			ObjectName:     objectName,
			Field:          fe.Field(),
			RejectedValue:  rejectedValue(fe.Value()),
			DefaultMessage: message,
			Code:           code,
		})
	}
	return domainErrors.ValidationFailed(objectName, violations)
}

// Today returns the current calendar date in the configured location.
func (v *Validator) Today() model.Date {
	return model.DateOf(v.now().In(v.loc))
}

func (v *Validator) isPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return model.DateOf(t).Before(v.Today())
}

func validEmail(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	// An empty value is left to notblank.
	return s == "" || emailPattern.MatchString(s)
}

func describe(fe validator.FieldError) (code, message string) {
	switch fe.Tag() {
	case tagNotBlank:
		return "NotBlank", "must not be blank"
	case tagEmail:
		return "Email", "must be a well-formed email address"
	case tagPast:
		return "Past", "must be a past date"
	default:
		return fe.Tag(), fe.Error()
	}
}

func rejectedValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return model.DateOf(t).String()
	}
	return v
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
