package audit

import (
	"net/mail"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Contact is what the gating form collects before results are shown
type Contact struct {
	Name    string `json:"name" masq:"secret"`
	Email   string `json:"email" masq:"secret"`
	Company string `json:"company,omitempty"`
}

// Normalize trims surrounding whitespace from every field
func (c Contact) Normalize() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Company: strings.TrimSpace(c.Company),
	}
}

// ValidationHint returns the visitor-facing message carried by a contact validation error
func ValidationHint(err error) string {
	if ge := goerr.Unwrap(err); ge != nil {
		if hint, ok := ge.Values()[HintKey].(string); ok {
			return hint
		}
	}
	return "Please check your details and try again."
}

// Validate requires a name and a well-formed email. Company is optional.
func (c Contact) Validate() error {
	if c.Name == "" {
		return goerr.Wrap(ErrValidation, "name is required",
			goerr.V(FieldKey, "name"), goerr.V(HintKey, "Please enter your name."))
	}
	if c.Email == "" {
		return goerr.Wrap(ErrValidation, "email is required",
			goerr.V(FieldKey, "email"), goerr.V(HintKey, "Please enter your email address."))
	}
	if _, err := mail.ParseAddress(c.Email); err != nil || strings.ContainsAny(c.Email, "<> ") {
		return goerr.Wrap(ErrValidation, "email address is malformed",
			goerr.V(FieldKey, "email"), goerr.V(HintKey, "Please enter a valid email address."))
	}
	return nil
}
