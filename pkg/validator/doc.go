// Package validator provides rule-based validation with structured,
// translatable error messages.
//
// A [Rule] couples a check with the [ValidationError] reported when the check
// fails. Rules are plain values, so callers build them inline next to the data
// they validate:
//
//	err := validator.Apply(
//		validator.RequiredString("email", form.Email),
//		validator.MinLenString("password", form.Password, 8),
//	)
//	if validator.IsValidationError(err) {
//		errs := validator.ExtractValidationErrors(err)
//		_ = errs.Get("password")
//	}
//
// # Aggregation
//
// [Apply] evaluates every rule and collects all failures. [First] stops at the
// first failing rule and is intended for per-field rule lists where only one
// message should be shown at a time.
//
// # Messages
//
// Every built-in rule carries a default English message, a translation key and
// the values needed to render it (field, min, max). Use [Rule.WithMessage] to
// attach a domain-specific message.
//
// Lengths are measured in runes, not bytes.
package validator
