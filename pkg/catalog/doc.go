// Package catalog is the static, process-wide table of resignation letter
// templates.
//
// The table is built at package initialization and never changes. Lookups
// return copies, so callers cannot mutate shared state:
//
//	tpl, err := catalog.Get("standard-resignation")
//	if errors.Is(err, catalog.ErrTemplateNotFound) {
//		// 404
//	}
//
//	personal := catalog.ByCategory(catalog.CategoryPersonal)
//	matches := catalog.Search("career")
//
// Template bodies use the placeholder syntax understood by the letter package.
package catalog
