package validator

// Rule is a single check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of the default
// message. The translation key is kept so the message can still be localized.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Valid runs the check. A rule without a check always passes.
func (r Rule) Valid() bool {
	return r.Check == nil || r.Check()
}

// Apply evaluates every rule and returns all failures as ValidationErrors, or
// nil when every rule passes.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Valid() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// First evaluates rules in order and returns the error of the first failing
// rule. The second result is false when every rule passes.
func First(rules ...Rule) (ValidationError, bool) {
	for _, r := range rules {
		if !r.Valid() {
			return r.Error, true
		}
	}
	return ValidationError{}, false
}
