// Package sanitizer cleans user input before it is rendered or sent.
//
// Letter fields and contact messages are plain text: StripHTML removes any
// markup a visitor pastes in. Blog posts are rendered from markdown and pass
// through SanitizeArticle, a bluemonday UGC policy that keeps the structure
// an article needs.
//
// Structs can declare their sanitizers in tags:
//
//	type contactForm struct {
//		Email   string `sanitize:"email"`
//		Subject string `sanitize:"text,single_line"`
//		Message string `sanitize:"text,trim"`
//	}
//
//	err := sanitizer.SanitizeStruct(&form)
package sanitizer
