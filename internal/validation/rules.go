package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RequiredField fails with MissingParamError when the field is absent,
// nil, or an empty string. Every request field is contractually text,
// so a non-string value fails with InvalidParamError rather than
// slipping through as present.
type RequiredField struct {
	Field string
}

func NewRequiredField(field string) *RequiredField {
	return &RequiredField{Field: field}
}

func (r *RequiredField) Validate(input map[string]any) error {
	v, ok := input[r.Field]
	if !ok || v == nil {
		return &MissingParamError{Param: r.Field}
	}
	s, isStr := v.(string)
	if !isStr {
		return &InvalidParamError{Param: r.Field}
	}
	if s == "" {
		return &MissingParamError{Param: r.Field}
	}
	return nil
}

// Email fails with InvalidParamError when the field does not look like
// an email address. Presence is RequiredField's job: an absent value
// passes here so rule order stays meaningful.
type Email struct {
	Field string
}

func NewEmail(field string) *Email {
	return &Email{Field: field}
}

func (e *Email) Validate(input map[string]any) error {
	v, ok := input[e.Field]
	if !ok || v == nil {
		return nil
	}
	s, isStr := v.(string)
	if !isStr {
		return &InvalidParamError{Param: e.Field}
	}
	if s == "" {
		return nil
	}
	if err := validate.Var(s, "email"); err != nil {
		return &InvalidParamError{Param: e.Field}
	}
	return nil
}

// CompareFields fails with InvalidParamError naming FieldToCompare when
// the two fields differ.
type CompareFields struct {
	Field          string
	FieldToCompare string
}

func NewCompareFields(field, fieldToCompare string) *CompareFields {
	return &CompareFields{Field: field, FieldToCompare: fieldToCompare}
}

func (c *CompareFields) Validate(input map[string]any) error {
	// Both values must be strings before comparing; comparing raw any
	// values would panic on uncomparable types like JSON arrays.
	a, aOK := input[c.Field].(string)
	b, bOK := input[c.FieldToCompare].(string)
	if !aOK || !bOK || a != b {
		return &InvalidParamError{Param: c.FieldToCompare}
	}
	return nil
}

// ForSignup builds the production signup validation chain.
func ForSignup() *Composite {
	fields := []string{"name", "email", "password", "passwordConfirmation"}
	validators := make([]Validator, 0, len(fields)+2)
	for _, f := range fields {
		validators = append(validators, NewRequiredField(f))
	}
	validators = append(validators, NewEmail("email"))
	validators = append(validators, NewCompareFields("password", "passwordConfirmation"))
	return NewComposite(validators...)
}

// ForLogin builds the login validation chain.
func ForLogin() *Composite {
	return NewComposite(
		NewRequiredField("email"),
		NewRequiredField("password"),
		NewEmail("email"),
	)
}
