// Package binder maps request form and query values onto structs.
//
// Fields are matched by the `form` or `query` tag; "-" skips a field and an
// untagged field is matched by its lowercased name:
//
//	type filter struct {
//		Category string `query:"category"`
//		Search   string `query:"q"`
//	}
//
//	var f filter
//	if err := binder.Query()(r, &f); err != nil {
//		return err
//	}
//
// Supported field types are string, the integer kinds, bool and slices of
// those. String values have NUL bytes and other control characters removed
// and line endings normalized to "\n", so textarea input keeps its lines.
package binder
