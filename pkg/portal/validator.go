package portal

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	Errors   map[string]any
	instance *validator.Validate
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

func GetDefaultValidator() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	abstract.RegisterTagNameFunc(jsonFieldName)
	registerCustomValidations(abstract)

	return &Validator{
		Errors:   make(map[string]any),
		instance: abstract,
	}
}

func (v *Validator) Passes(data any) (bool, error) {
	violations, err := v.Violations(data)

	v.mu.Lock()
	v.Errors = violations
	v.mu.Unlock()

	if err != nil {
		return false, err
	}

	return true, nil
}

func (v *Validator) Rejects(data any) (bool, error) {
	passes, err := v.Passes(data)

	return !passes, err
}

// Violations validates data without touching the recorded errors, so it is
// safe to call from concurrent requests.
func (v *Validator) Violations(data any) (map[string]any, error) {
	violations := make(map[string]any)

	err := v.instance.Struct(data)
	if err == nil {
		return violations, nil
	}

	var fields validator.ValidationErrors
	if !asValidationErrors(err, &fields) {
		return violations, fmt.Errorf("validator: %w", err)
	}

	for _, field := range fields {
		violations[field.Namespace()] = fmt.Sprintf(
			"field [%s] failed on the [%s] rule, given value [%v]",
			field.Field(),
			field.ActualTag(),
			field.Value(),
		)
	}

	return violations, fmt.Errorf("validator: %d field(s) failed validation", len(fields))
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.Errors
}

func (v *Validator) GetErrorsAsJson() string {
	data, err := json.Marshal(v.GetErrors())
	if err != nil {
		return ""
	}

	return string(data)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fields, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fields
	}

	return ok
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

	if name == "-" || name == "" {
		return field.Name
	}

	return name
}
