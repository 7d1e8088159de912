package htmx

import "net/http"

// Response headers.
const (
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXTrigger            = "HX-Trigger"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// Request headers.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)

// IsHTMX reports whether r was sent by htmx. History restore requests want
// the full page and are not counted.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true" &&
		r.Header.Get(HeaderHXHistoryRestoreRequest) != "true"
}

// IsBoosted reports whether r comes from an hx-boost link or form.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// Target returns the id of the element the response will be swapped into.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

// TriggerName returns the name of the element that triggered the request.
func TriggerName(r *http.Request) string {
	return r.Header.Get(HeaderHXTriggerName)
}
