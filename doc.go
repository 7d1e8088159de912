// Package resignly is the web layer of the resignation-letter generator.
//
// It re-exports the small HTTP framework in internal: an App built on chi,
// a Context that understands htmx, typed HTTP errors, health endpoints and
// a signal-aware runtime with startup and shutdown hooks.
//
// Handlers implement [Handler] and declare routes:
//
//	type Letter struct {
//	    exporter *export.Exporter
//	}
//
//	func (h *Letter) Routes(r resignly.Router) {
//	    r.POST("/letter/preview", h.preview)
//	    r.POST("/letter/export/{format}", h.export)
//	}
//
// Errors returned from handlers go to the [ErrorHandler] configured with
// [WithErrorHandler]. [HTTPError] keeps its status code; the handlers
// package maps domain errors (unknown template, export in progress, letter
// not ready) to statuses.
package resignly
