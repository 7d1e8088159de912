// Package htmx detects htmx requests and sets htmx response headers.
//
// Handlers render partials for htmx requests and full pages otherwise:
//
//	if htmx.IsHTMX(r) {
//		// render the preview fragment
//	}
//
// Render options describe response headers. Events can carry a JSON detail,
// which htmx passes to listeners as event.detail:
//
//	cfg := htmx.NewConfig(
//		htmx.WithTrigger("letter:updated"),
//		htmx.WithTriggerDetail("letter:copy", map[string]string{"text": body}),
//	)
//	cfg.ApplyHeaders(w)
//
// Redirect answers htmx requests with HX-Redirect and others with a
// regular HTTP redirect.
package htmx
