// Package letter holds the resignation letter data model together with its
// validation rules and the template renderer.
//
// # Validation
//
// [ValidateField] checks a single field against its ordered rule list and
// reports only the first failing rule. [ValidateForm] checks the five fields
// required for export and adds the cross-field rule that the last working day
// lies strictly after today. Validation never returns an error: results are
// data, so callers can render them next to the form inputs.
//
//	v := letter.ValidateForm(data, letter.WithLocation(loc))
//	if !letter.IsFormValid(v) {
//		// show v[letter.FieldEmployeeName] etc.
//	}
//
// # Rendering
//
// [Render] interpolates a template body with a [Data] record. The syntax is
// `{{identifier}}` for substitution and `{{#if identifier}}...{{/if}}` for
// conditional inclusion. Identity fields fall back to bracketed labels such as
// "[Your Name]" when blank, dates render in long form ("February 15, 2025"), and
// conditional blocks whose field is blank disappear together with the lines
// they occupied.
//
// Templates are processed in two passes: a lexer splits the body into text and
// tag tokens, and a stack-based parser pairs `#if` with `/if`. Unknown
// identifiers, stray `{{/if}}` tags and unclosed `{{#if}}` tags are kept as
// literal text. Nested conditionals are evaluated recursively.
//
// # Time
//
// "Today" is taken from a clock in a configured location, both overridable
// through [WithClock] and [WithLocation]. Dates in [Data] are civil dates
// (YYYY-MM-DD) interpreted in that location, so the future-date rule compares
// calendar days and never instants.
package letter
