package portal

import (
	"encoding/json"
	"errors"

	baseValidator "github.com/go-playground/validator/v10"
)

type Validator struct {
	strategy *baseValidator.Validate
	errors   map[string]string
}

func MakeValidator() *Validator {
	return &Validator{
		strategy: baseValidator.New(
			baseValidator.WithRequiredStructEnabled(),
		),
	}
}

// Rejects validates the given struct and reports true when it fails. Field
// errors are retained for GetErrorsAsJson.
func (v *Validator) Rejects(abstract any) (bool, error) {
	v.errors = nil

	err := v.strategy.Struct(abstract)
	if err == nil {
		return false, nil
	}

	var fieldErrors baseValidator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		v.errors = make(map[string]string, len(fieldErrors))

		for _, field := range fieldErrors {
			v.errors[field.Namespace()] = field.Tag()
		}
	}

	return true, err
}

func (v *Validator) Passes(abstract any) bool {
	rejected, _ := v.Rejects(abstract)

	return !rejected
}

func (v *Validator) GetErrorsAsJson() string {
	if len(v.errors) == 0 {
		return "{}"
	}

	content, err := json.Marshal(v.errors)
	if err != nil {
		return "{}"
	}

	return string(content)
}
