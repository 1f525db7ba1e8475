package validator

import "regexp"

var (
	HexRX   = regexp.MustCompile("^#[0-9a-fA-F]{6}$")
	ClockRX = regexp.MustCompile("^([01][0-9]|2[0-3]):[0-5][0-9]$")
)

// Validator collects field errors. Only the first message per field is kept.
type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

func In(value string, list ...string) bool {
	for _, l := range list {
		if value == l {
			return true
		}
	}
	return false
}
