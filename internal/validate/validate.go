package validate

import (
	"fmt"
	"strings"
)

// Error is rendered by the HTTP layer as a 400 response with field-level detail.
type Error struct {
	Message string   `json:"message"`
	Issues  []string `json:"issues"`
}

func (e *Error) Error() string {
	return e.Message + ": " + strings.Join(e.Issues, "; ")
}

// Issues accumulates "<field path>: <message>" strings during validation.
type Issues []string

func (is *Issues) Add(field, msg string) {
	*is = append(*is, field+": "+msg)
}

func (is *Issues) Required(field string) {
	is.Add(field, "Required")
}

// MinString flags strings shorter than min runes. Empty strings count as missing.
func (is *Issues) MinString(field, v string, min int) {
	if v == "" {
		is.Required(field)
		return
	}
	if len([]rune(v)) < min {
		is.Add(field, fmt.Sprintf("String must contain at least %d character(s)", min))
	}
}

func (is *Issues) MaxString(field, v string, max int) {
	if len([]rune(v)) > max {
		is.Add(field, fmt.Sprintf("String must contain at most %d character(s)", max))
	}
}

func (is *Issues) Enum(field, v string, allowed []string) {
	for _, a := range allowed {
		if v == a {
			return
		}
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	is.Add(field, fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", strings.Join(quoted, " | "), v))
}

func (is *Issues) Positive(field string, n int) {
	if n <= 0 {
		is.Add(field, "Number must be greater than 0")
	}
}

func (is *Issues) NonNegative(field string, n int) {
	if n < 0 {
		is.Add(field, "Number must be greater than or equal to 0")
	}
}

// Err returns a *Error carrying the collected issues, or nil when valid.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	return &Error{Message: "Validation error", Issues: is}
}
