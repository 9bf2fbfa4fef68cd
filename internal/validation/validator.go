package validation

// Validator checks one rule against a raw request body. A nil return
// means the input passed.
type Validator interface {
	Validate(input map[string]any) error
}

// Composite runs an ordered list of validators and returns the first
// failure, short-circuiting the rest.
type Composite struct {
	validators []Validator
}

func NewComposite(validators ...Validator) *Composite {
	return &Composite{validators: validators}
}

func (c *Composite) Validate(input map[string]any) error {
	for _, v := range c.validators {
		if err := v.Validate(input); err != nil {
			return err
		}
	}
	return nil
}
